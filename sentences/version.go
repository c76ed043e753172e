package sentences

import (
	"fmt"

	"github.com/clipperhouse/textsearch/internal/ucd"
)

// compiledUCDVersion is the Unicode Character Database version this
// package's break rules (SB1-SB998) were written against; see
// graphemes.compiledUCDVersion for why a mismatch is fatal.
const compiledUCDVersion = "15.1"

func init() {
	if ucd.Version != compiledUCDVersion {
		panic(fmt.Sprintf("sentences: compiled for UCD %s, property tables are %s", compiledUCDVersion, ucd.Version))
	}
}
