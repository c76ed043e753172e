package graphemes

import (
	"fmt"

	"github.com/clipperhouse/textsearch/internal/ucd"
)

// compiledUCDVersion is the Unicode Character Database version this
// package's break rules (GB1-GB999) were written against. It must match
// ucd.Version, the version the property tables were generated from --
// a mismatch means the rules and the data disagree about what a
// grapheme cluster is, which is always a bug worth failing loudly for
// rather than producing silently wrong boundaries.
const compiledUCDVersion = "15.1"

func init() {
	if ucd.Version != compiledUCDVersion {
		panic(fmt.Sprintf("graphemes: compiled for UCD %s, property tables are %s", compiledUCDVersion, ucd.Version))
	}
}
