// Package assets bundles the static prayer content shipped with the binary.
package assets

import _ "embed"

// Prayers is the bundled content: Hanuman Chalisa, Hanuman Baan,
// Hanuman Aarti and Gayatri Mantra.
//
//go:embed data/prayers.json
var Prayers []byte
