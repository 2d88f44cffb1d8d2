// Package razstream implements the element streams that flank a zipper's
// cursor: either an explicit chain of elements adjacent to the cursor, or a
// packaged list of tree fragments not yet exposed.
package razstream

import "github.com/samthor/raz/raztree"

// Direction biases which child of a Bin a Trim descends into first when it
// has to split a fragment open. It does not, by itself, say which side of a
// zipper is being read — see raz.DoCmd's documented use of Trim.
type Direction int

const (
	Left Direction = iota
	Right
)

// Stream is one side of a zipper: either Cons(elm, level, rest) — an
// element adjacent to the cursor, followed by its separating level,
// followed by the rest of the stream — or Trees(list) — a lazily-held
// list of tree fragments whose elements haven't been exposed yet.
//
// The zero Stream is Trees(nil): the legitimate "nothing past the cursor on
// this side" terminal.
type Stream[T any] struct {
	cons  bool
	elm   T
	level int
	rest  *Stream[T]

	trees []*raztree.Tree[T]
}

// Cons builds a stream whose head is an element adjacent to the cursor.
func Cons[T any](elm T, level int, rest Stream[T]) Stream[T] {
	return Stream[T]{cons: true, elm: elm, level: level, rest: &rest}
}

// Trees builds a stream backed by a list of unexposed tree fragments.
// A nil or empty list is the terminal "nothing past the cursor" stream.
func Trees[T any](list []*raztree.Tree[T]) Stream[T] {
	return Stream[T]{trees: list}
}

// IsCons reports whether s is a Cons stream.
func (s Stream[T]) IsCons() bool {
	return s.cons
}

// Trim exposes the next element-level pair from s in the given direction,
// or reports ok == false if s holds nothing more.
//
// direction only affects which child of a Bin is visited first when Trim
// has to split open a Trees fragment; it is independent of which side of
// the zipper s came from.
func Trim[T any](direction Direction, s Stream[T]) (elm T, level int, rest Stream[T], ok bool) {
	if s.cons {
		return s.elm, s.level, *s.rest, true
	}

	elm, level, list, ok := trimTrees(direction, s.trees)
	if !ok {
		var zero T
		return zero, 0, Stream[T]{}, false
	}
	return elm, level, Trees(list), true
}

// trimTrees walks a fragment list, carrying an "element seen but not yet
// paired with its level" slot, splitting any Bin with non-Nil children open
// until it either surfaces a complete (element, level) pair or exhausts the
// list.
func trimTrees[T any](direction Direction, list []*raztree.Tree[T]) (elm T, level int, rest []*raztree.Tree[T], ok bool) {
	var pending T
	have := false

	for len(list) > 0 {
		cur := list[0]
		list = list[1:]

		switch cur.Kind() {
		case raztree.KindNil:
			continue

		case raztree.KindLeaf:
			if have {
				panic("razstream: trim: two leaves in a row with no separating level")
			}
			pending = cur.Value()
			have = true

		default: // Bin
			l, r := cur.Left(), cur.Right()
			if l == nil && r == nil {
				// a pure level-carrier: pairs with whatever element we have pending
				if !have {
					panic("razstream: trim: a level with no preceding element")
				}
				return pending, cur.Level(), list, true
			}

			carrier := raztree.LevelCarrier[T](cur.Level())
			var head []*raztree.Tree[T]
			if direction == Left {
				head = []*raztree.Tree[T]{l, carrier, r}
			} else {
				head = []*raztree.Tree[T]{r, carrier, l}
			}
			list = append(append([]*raztree.Tree[T]{}, head...), list...)
		}
	}

	if have {
		panic("razstream: trim: an element with no following level")
	}
	return elm, 0, nil, false
}
