// Package raztext is a small text-buffer convenience layered on raz: the
// textbook use case for a zipper-backed sequence is an editable run of
// text with a cursor, so this package builds/reads a raz.Zipper[rune] from
// an ordinary Go string, the way a caller wiring raz into an editor would.
package raztext

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/samthor/raz/raz"
	"github.com/samthor/raz/razlevel"
	"github.com/samthor/raz/raztree"
)

// FromString builds a raz.Zipper[rune] holding the NFC-normalized runes of
// s, with the cursor left at the end of the string. Levels are drawn from
// razlevel.Default().
func FromString(s string) raz.Zipper[rune] {
	normalized := norm.NFC.String(s)
	level := razlevel.Default()

	z := raz.Empty[rune](level())
	for _, r := range normalized {
		z = raz.Insert(raz.Left, r, level, z)
	}
	return z
}

// String renders z's underlying rune sequence back to a string. z itself is
// untouched by Unfocus: raz.Zipper values are immutable, so there is
// nothing here to clone.
func String(z raz.Zipper[rune]) string {
	tr := raz.Unfocus(z)
	var b strings.Builder
	b.Grow(raz.Count(tr))
	writeRunes(&b, tr)
	return b.String()
}

// writeRunes walks t in-order, writing its leaves to b.
func writeRunes(b *strings.Builder, t *raztree.Tree[rune]) {
	switch t.Kind() {
	case raztree.KindNil:
		return
	case raztree.KindLeaf:
		b.WriteRune(t.Value())
	default:
		writeRunes(b, t.Left())
		writeRunes(b, t.Right())
	}
}
