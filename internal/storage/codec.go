package storage

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/klauspost/compress/zstd"
)

// Codec turns state values into blobs and back.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// JSONCodec encodes values as JSON.
type JSONCodec struct{}

func (JSONCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (JSONCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// ZstdCodec compresses the output of an inner codec. Blobs without the
// zstd frame magic are passed to the inner codec as is, so compression can
// be enabled on an existing store.
type ZstdCodec struct {
	inner   Codec
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

// NewZstdCodec wraps inner with zstd compression.
func NewZstdCodec(inner Codec) (*ZstdCodec, error) {
	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
	}
	decoder, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(0))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
	}
	return &ZstdCodec{inner: inner, encoder: encoder, decoder: decoder}, nil
}

func (c *ZstdCodec) Marshal(v any) ([]byte, error) {
	raw, err := c.inner.Marshal(v)
	if err != nil {
		return nil, err
	}
	return c.encoder.EncodeAll(raw, make([]byte, 0, len(raw)/2)), nil
}

func (c *ZstdCodec) Unmarshal(data []byte, v any) error {
	if !bytes.HasPrefix(data, zstdMagic) {
		return c.inner.Unmarshal(data, v)
	}
	raw, err := c.decoder.DecodeAll(data, nil)
	if err != nil {
		return fmt.Errorf("zstd decode: %w", err)
	}
	return c.inner.Unmarshal(raw, v)
}

// NewCodec returns the JSON codec, compressed when compress is set.
func NewCodec(compress bool) (Codec, error) {
	if !compress {
		return JSONCodec{}, nil
	}
	return NewZstdCodec(JSONCodec{})
}
