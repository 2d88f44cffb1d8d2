package raz

import (
	"math/rand/v2"
	"testing"

	"golang.org/x/sync/errgroup"
)

// TestConcurrentReadsAgreeOnSequence exercises the concurrent-read claim: a
// tree built once may be Focus'd, Unfocus'd, and Count'd from many
// goroutines without coordination, and every goroutine observes the same
// element sequence, since none of these operations mutate the shared tree.
func TestConcurrentReadsAgreeOnSequence(t *testing.T) {
	r := rand.New(rand.NewPCG(70, 80))
	const n = 500
	tr := buildTree(r, n)
	want := flatten(tr)

	const readers = 32
	var g errgroup.Group
	for i := 0; i < readers; i++ {
		pos := i % (n + 1)
		g.Go(func() error {
			zf := Focus(tr, pos)
			got := flatten(Unfocus(zf))
			if len(got) != len(want) {
				t.Errorf("reader at pos %d: bad length: got %d want %d", pos, len(got), len(want))
				return nil
			}
			for j := range want {
				if got[j] != want[j] {
					t.Errorf("reader at pos %d: mismatch at %d: got %v want %v", pos, j, got[j], want[j])
					break
				}
			}
			if Count(tr) != n {
				t.Errorf("reader at pos %d: Count(tr) changed under concurrent reads: got %d want %d", pos, Count(tr), n)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
