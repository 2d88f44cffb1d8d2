package raz

import (
	"github.com/samthor/raz/raztree"
	"github.com/samthor/raz/razstream"
)

// Focus produces a zipper whose cursor falls between the pos-th and
// (pos+1)-th elements of t, clamping pos to [0, Count(t)].
func Focus[T any](t *raztree.Tree[T], pos int) Zipper[T] {
	n := raztree.Count(t)
	if pos < 0 {
		pos = 0
	} else if pos > n {
		pos = n
	}
	return focus(t, pos, nil, nil)
}

// focus descends t looking for the Bin whose left-subtree count equals pos,
// accumulating, on each side, the fragments the descent passes over so they
// can be streamed out later by Trim. accumL and accumR are ordered nearest
// the eventual cursor first.
func focus[T any](t *raztree.Tree[T], pos int, accumL, accumR []*raztree.Tree[T]) Zipper[T] {
	if t.Kind() != raztree.KindBin {
		panic("raz: focus: descent reached a non-Bin root; pos out of range or tree invariants violated")
	}

	l, r := t.Left(), t.Right()
	cL := raztree.Count(l)

	switch {
	case pos == cL:
		left := append([]*raztree.Tree[T]{l}, accumL...)
		right := append([]*raztree.Tree[T]{r}, accumR...)
		return Zipper[T]{Left: razstream.Trees(left), Right: razstream.Trees(right), Level: t.Level()}

	case pos < cL:
		// the sibling R and the current level ride along under a Nil
		// placeholder so Trim can later split them back open.
		carrier := raztree.Bin(t.Level(), raztree.Count(r), nil, r)
		return focus(l, pos, accumL, append([]*raztree.Tree[T]{carrier}, accumR...))

	default:
		carrier := raztree.Bin(t.Level(), cL, l, nil)
		return focus(r, pos-cL, append([]*raztree.Tree[T]{carrier}, accumL...), accumR)
	}
}

// Unfocus reassembles z into a single tree: the left stream folded in
// document order, a Bin carrying the cursor level, then the right stream
// folded in document order.
func Unfocus[T any](z Zipper[T]) *raztree.Tree[T] {
	left := foldLeft(z.Left)
	right := foldRight(z.Right)
	return raztree.Append(left, raztree.Append(raztree.LevelCarrier[T](z.Level), right))
}

// foldLeft drains s completely, building the tree whose in-order leaves are
// s's elements in document order (farthest from the cursor first). Fragments
// are split right child first, so the element nearest the cursor surfaces
// first, and each element's level is placed on its far side from the cursor.
func foldLeft[T any](s razstream.Stream[T]) *raztree.Tree[T] {
	elm, lev, rest, ok := razstream.Trim(razstream.Right, s)
	if !ok {
		return nil
	}
	return raztree.Append(foldLeft(rest), raztree.Append(raztree.LevelCarrier[T](lev), raztree.Leaf(elm)))
}

// foldRight drains s completely, building the tree whose in-order leaves are
// s's elements in document order (nearest the cursor first).
func foldRight[T any](s razstream.Stream[T]) *raztree.Tree[T] {
	elm, lev, rest, ok := razstream.Trim(razstream.Left, s)
	if !ok {
		return nil
	}
	return raztree.Append(raztree.Append(raztree.Leaf(elm), raztree.LevelCarrier[T](lev)), foldRight(rest))
}
