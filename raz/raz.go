// Package raz implements the focused half of a random access zipper: a
// cursor level flanked by two element streams, plus the four edit commands
// that operate on it in amortised constant time.
package raz

import (
	"github.com/samthor/raz/raztree"
	"github.com/samthor/raz/razstream"
)

// Direction selects which side of the zipper's cursor a command acts on.
type Direction = razstream.Direction

const (
	Left  = razstream.Left
	Right = razstream.Right
)

// Zipper is a cursor level flanked by a left and right element stream. The
// zero Zipper is not meaningful on its own; use Empty.
type Zipper[T any] struct {
	Left  razstream.Stream[T]
	Right razstream.Stream[T]
	Level int
}

// Empty returns the zipper for the empty sequence, with the given cursor
// level. The level is immaterial except that an immediately-following
// Unfocus yields Bin(level, 0, Nil, Nil).
func Empty[T any](level int) Zipper[T] {
	return Zipper[T]{Left: razstream.Trees[T](nil), Right: razstream.Trees[T](nil), Level: level}
}

// Singleton builds a one-element zipper, drawing both the cursor's initial
// level and the inserted element's level from level.
func Singleton[T any](x T, level func() int) Zipper[T] {
	z := Empty[T](level())
	return Insert(Left, x, level, z)
}

// Insert is a convenience for DoCmd(InsertCmd(dir, x, level()), z): it draws
// a fresh level from the supplied generator rather than requiring the
// caller to pass one explicitly.
func Insert[T any](dir Direction, x T, level func() int, z Zipper[T]) Zipper[T] {
	return insertAt(dir, x, level(), z)
}

// CommandKind is the tag of a Command.
type CommandKind int

const (
	CmdInsert CommandKind = iota
	CmdRemove
	CmdReplace
	CmdMove
)

// Command is one of the four zipper edits, each parameterised by a
// direction. Elm and Level are only meaningful for the kinds that use them
// (Insert uses both, Replace uses Elm, Remove and Move use neither).
type Command[T any] struct {
	Kind  CommandKind
	Dir   Direction
	Elm   T
	Level int
}

// InsertCmd builds a Command that prepends x at the given level on side dir.
func InsertCmd[T any](dir Direction, x T, level int) Command[T] {
	return Command[T]{Kind: CmdInsert, Dir: dir, Elm: x, Level: level}
}

// RemoveCmd builds a Command that drops the element nearest the cursor on
// side dir, together with its separating level.
func RemoveCmd[T any](dir Direction) Command[T] {
	return Command[T]{Kind: CmdRemove, Dir: dir}
}

// ReplaceCmd builds a Command that swaps the element nearest the cursor on
// side dir for x, keeping its separating level.
func ReplaceCmd[T any](dir Direction, x T) Command[T] {
	return Command[T]{Kind: CmdReplace, Dir: dir, Elm: x}
}

// MoveCmd builds a Command that carries the element nearest the cursor on
// side dir across the cursor to the opposite side.
func MoveCmd[T any](dir Direction) Command[T] {
	return Command[T]{Kind: CmdMove, Dir: dir}
}

// DoCmd dispatches cmd against z, returning the resulting zipper. It is
// total: every command has a defined result even when the side it acts on
// is exhausted (Remove/Replace/Move on an empty side return z unchanged).
func DoCmd[T any](cmd Command[T], z Zipper[T]) Zipper[T] {
	switch cmd.Kind {
	case CmdInsert:
		return insertAt(cmd.Dir, cmd.Elm, cmd.Level, z)
	case CmdRemove:
		return removeAt(cmd.Dir, z)
	case CmdReplace:
		return replaceAt(cmd.Dir, cmd.Elm, z)
	case CmdMove:
		return moveAt(cmd.Dir, z)
	default:
		panic("raz: do_cmd: unknown command kind")
	}
}

func insertAt[T any](dir Direction, x T, level int, z Zipper[T]) Zipper[T] {
	if dir == Left {
		z.Left = razstream.Cons(x, level, z.Left)
	} else {
		z.Right = razstream.Cons(x, level, z.Right)
	}
	return z
}

// removeAt, replaceAt and moveAt all trim the chosen side with a fixed Left
// bias, regardless of dir. This reproduces an apparent quirk of the source
// this behaviour is drawn from: the direction parameter only ever selects
// which of Left/Right stream is edited, never the in-order descent bias
// Trim uses to split an unexposed Trees fragment. Changing this to pass dir
// through to Trim would change which element surfaces when a fragment is
// ambiguous, so it is left exactly as documented rather than "fixed".

func removeAt[T any](dir Direction, z Zipper[T]) Zipper[T] {
	if dir == Left {
		_, _, rest, ok := razstream.Trim(razstream.Left, z.Left)
		if !ok {
			return z
		}
		z.Left = rest
		return z
	}
	_, _, rest, ok := razstream.Trim(razstream.Left, z.Right)
	if !ok {
		return z
	}
	z.Right = rest
	return z
}

func replaceAt[T any](dir Direction, x T, z Zipper[T]) Zipper[T] {
	if dir == Left {
		_, lev, rest, ok := razstream.Trim(razstream.Left, z.Left)
		if !ok {
			return z
		}
		z.Left = razstream.Cons(x, lev, rest)
		return z
	}
	_, lev, rest, ok := razstream.Trim(razstream.Left, z.Right)
	if !ok {
		return z
	}
	z.Right = razstream.Cons(x, lev, rest)
	return z
}

func moveAt[T any](dir Direction, z Zipper[T]) Zipper[T] {
	if dir == Left {
		elm, lev, rest, ok := razstream.Trim(razstream.Left, z.Left)
		if !ok {
			return z
		}
		return Zipper[T]{Left: rest, Level: lev, Right: razstream.Cons(elm, z.Level, z.Right)}
	}
	elm, lev, rest, ok := razstream.Trim(razstream.Left, z.Right)
	if !ok {
		return z
	}
	return Zipper[T]{Left: razstream.Cons(elm, z.Level, z.Left), Level: lev, Right: rest}
}

// Count returns the cached element count of t in O(1), re-exported from
// raztree so callers only need to import raz.
func Count[T any](t *raztree.Tree[T]) int {
	return raztree.Count(t)
}
