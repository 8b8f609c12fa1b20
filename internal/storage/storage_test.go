package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/chalisa-kids-bot/internal/domain/entities"
)

func TestMemoryStore_GetSet(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Get(ctx, "quizStats")
	assert.ErrorIs(t, err, ErrNotFound)

	value := []byte(`{"a":1}`)
	require.NoError(t, s.Set(ctx, "quizStats", value))
	value[0] = 'x'

	got, err := s.Get(ctx, "quizStats")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(got))
	assert.Equal(t, 1, s.Len())
}

func TestPrefixed_NamespacesKeys(t *testing.T) {
	ctx := context.Background()
	base := NewMemoryStore()
	alice := WithPrefix(base, UserPrefix(1))
	bob := WithPrefix(base, UserPrefix(2))

	require.NoError(t, alice.Set(ctx, "dailyVerseProgress", []byte("a")))
	require.NoError(t, bob.Set(ctx, "dailyVerseProgress", []byte("b")))

	got, err := base.Get(ctx, "user:1:dailyVerseProgress")
	require.NoError(t, err)
	assert.Equal(t, "a", string(got))

	got, err = bob.Get(ctx, "dailyVerseProgress")
	require.NoError(t, err)
	assert.Equal(t, "b", string(got))

	_, err = WithPrefix(base, UserPrefix(3)).Get(ctx, "dailyVerseProgress")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCodecs_RoundTrip(t *testing.T) {
	last := time.Date(2026, time.April, 2, 9, 30, 0, 123, time.UTC)
	stats := map[string]*entities.QuizStats{
		"Hanuman Chalisa-1": {TotalAttempts: 5, CorrectAttempts: 4, CurrentStreak: 1, BestStreak: 3, LastAttemptDate: &last},
		"Hanuman Aarti-12":  {TotalAttempts: 1},
	}

	zc, err := NewZstdCodec(JSONCodec{})
	require.NoError(t, err)

	for name, codec := range map[string]Codec{"json": JSONCodec{}, "zstd": zc} {
		t.Run(name, func(t *testing.T) {
			blob, err := codec.Marshal(stats)
			require.NoError(t, err)

			var decoded map[string]*entities.QuizStats
			require.NoError(t, codec.Unmarshal(blob, &decoded))
			assert.Equal(t, stats, decoded)
		})
	}
}

func TestZstdCodec_ReadsUncompressedBlobs(t *testing.T) {
	zc, err := NewZstdCodec(JSONCodec{})
	require.NoError(t, err)

	var v map[string]int
	require.NoError(t, zc.Unmarshal([]byte(`{"streak":4}`), &v))
	assert.Equal(t, 4, v["streak"])

	blob, err := zc.Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, zstdMagic, blob[:4])
}

func TestNewCodec(t *testing.T) {
	c, err := NewCodec(false)
	require.NoError(t, err)
	assert.IsType(t, JSONCodec{}, c)

	c, err = NewCodec(true)
	require.NoError(t, err)
	assert.IsType(t, &ZstdCodec{}, c)
}

func TestQuizStorage(t *testing.T) {
	s := NewQuizStorage()
	session := entities.NewQuizSession("Hanuman Chalisa", []int{1, 2}, time.Now())

	s.Store(42, session)
	got, ok := s.Get(42)
	require.True(t, ok)
	assert.Same(t, session, got)

	s.Delete(42)
	_, ok = s.Get(42)
	assert.False(t, ok)
}

func TestReminderStorage_Swap(t *testing.T) {
	s := NewReminderStorage()
	now := time.Now()

	_, had := s.Swap(7, 100, now)
	assert.False(t, had)

	prev, had := s.Swap(7, 101, now.Add(24*time.Hour))
	require.True(t, had)
	assert.Equal(t, 100, prev.MessageID)

	s.Forget(7)
	_, had = s.Swap(7, 102, now)
	assert.False(t, had)
}
