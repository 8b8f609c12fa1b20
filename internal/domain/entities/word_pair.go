package entities

// WordPair is one aligned token of a verse: the native word and the
// romanized word shown under it.
type WordPair struct {
	NativeWord         string `json:"nativeWord"`
	TransliteratedWord string `json:"transliteratedWord"`
	IsPunctuation      bool   `json:"isPunctuation"`
}
