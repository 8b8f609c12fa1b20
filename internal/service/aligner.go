package service

import (
	"strings"
	"unicode"

	"github.com/aliskhannn/chalisa-kids-bot/internal/domain/entities"
)

// Align pairs the words of a native text with its transliteration and groups
// the pairs by the lines of the native text.
//
// Native punctuation tokens are paired with themselves and consume no
// transliteration token. Transliteration punctuation is ignored. A native
// word left without a transliteration is paired with itself.
func Align(nativeText, transliteration string) [][]entities.WordPair {
	return groupByLines(nativeText, pairWords(Tokenize(nativeText), Tokenize(transliteration)))
}

// Tokenize splits text on whitespace and splits every punctuation character
// off into a token of its own.
func Tokenize(text string) []string {
	var tokens []string
	for _, field := range strings.Fields(text) {
		start := -1
		for i, r := range field {
			if !unicode.IsPunct(r) {
				if start < 0 {
					start = i
				}
				continue
			}
			if start >= 0 {
				tokens = append(tokens, field[start:i])
				start = -1
			}
			tokens = append(tokens, string(r))
		}
		if start >= 0 {
			tokens = append(tokens, field[start:])
		}
	}
	return tokens
}

func isPunctuation(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		if !unicode.IsPunct(r) {
			return false
		}
	}
	return true
}

func pairWords(native, translit []string) []entities.WordPair {
	words := make([]string, 0, len(translit))
	for _, t := range translit {
		if !isPunctuation(t) {
			words = append(words, t)
		}
	}

	pairs := make([]entities.WordPair, 0, max(len(native), len(words)))
	ti := 0
	for _, n := range native {
		if isPunctuation(n) {
			pairs = append(pairs, entities.WordPair{NativeWord: n, TransliteratedWord: n, IsPunctuation: true})
			continue
		}

		t := n
		if ti < len(words) {
			t = words[ti]
		}
		ti++
		pairs = append(pairs, entities.WordPair{NativeWord: n, TransliteratedWord: t})
	}

	// Surplus transliteration words have no native counterpart.
	for ; ti < len(words); ti++ {
		pairs = append(pairs, entities.WordPair{TransliteratedWord: words[ti]})
	}

	return pairs
}

func groupByLines(nativeText string, pairs []entities.WordPair) [][]entities.WordPair {
	lines := strings.Split(nativeText, "\n")
	grouped := make([][]entities.WordPair, 0, len(lines))

	next := 0
	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		count := len(Tokenize(line))

		group := make([]entities.WordPair, 0, count)
		for ; count > 0 && next < len(pairs); count-- {
			group = append(group, pairs[next])
			next++
		}
		grouped = append(grouped, group)
	}

	return grouped
}
