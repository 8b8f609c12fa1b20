package service

import (
	"strings"
	"sync"
	"unsafe"

	"github.com/coocood/freecache"

	"github.com/aliskhannn/chalisa-kids-bot/internal/domain/entities"
)

// AnswerCache stores rendered answers by key.
type AnswerCache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}

type freeAnswerCache struct {
	cache *freecache.Cache
}

// NewAnswerCache returns a freecache of sizeMB megabytes, or a cache that
// stores nothing when disabled. Answers never expire: content is fixed.
func NewAnswerCache(enabled bool, sizeMB int) AnswerCache {
	if !enabled || sizeMB <= 0 {
		return noopCache{}
	}
	return &freeAnswerCache{cache: freecache.NewCache(sizeMB * 1024 * 1024)}
}

// unsafeStringToBytes converts s without allocation. freecache copies keys.
func unsafeStringToBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

func (c *freeAnswerCache) Get(key string) ([]byte, bool) {
	val, err := c.cache.Get(unsafeStringToBytes(key))
	if err != nil {
		return nil, false
	}
	return val, true
}

func (c *freeAnswerCache) Set(key string, value []byte) {
	_ = c.cache.Set(unsafeStringToBytes(key), value, 0)
}

type noopCache struct{}

func (noopCache) Get(string) ([]byte, bool) { return nil, false }
func (noopCache) Set(string, []byte)        {}

// CachedAnswerer memoizes Answer per prayer and question. Its output is
// identical to calling Answer with the prayer corpus.
type CachedAnswerer struct {
	cache   AnswerCache
	corpora sync.Map // prayer title -> corpus
	opts    options
}

func NewCachedAnswerer(cache AnswerCache, opts ...Option) *CachedAnswerer {
	if cache == nil {
		cache = noopCache{}
	}
	return &CachedAnswerer{cache: cache, opts: newOptions(opts)}
}

// Answer replies to question about prayer.
func (a *CachedAnswerer) Answer(question string, prayer *entities.Prayer) string {
	key := answerKey(prayer.Title, question)
	if cached, ok := a.cache.Get(key); ok {
		a.opts.metrics.IncAnswerCacheHits()
		a.opts.metrics.IncAnswers(string(Classify(question)))
		return string(cached)
	}

	answer := Answer(question, prayer, a.corpus(prayer))
	a.cache.Set(key, []byte(answer))
	a.opts.metrics.IncAnswers(string(Classify(question)))

	return answer
}

func (a *CachedAnswerer) corpus(prayer *entities.Prayer) string {
	if c, ok := a.corpora.Load(prayer.Title); ok {
		return c.(string)
	}
	c := BuildCorpus(prayer)
	a.corpora.Store(prayer.Title, c)
	return c
}

// answerKey normalizes the question the same way Answer reads it: case and
// surrounding whitespace never change the result.
func answerKey(title, question string) string {
	return title + "\x00" + strings.ToLower(strings.TrimSpace(question))
}
