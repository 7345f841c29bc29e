// chain.go — chaining combinators.
//
// Chaining is the only growth operation. It always produces a new value
// and requires the receiver's category to be declared in the new
// category's links; an unlinked pair is a wiring bug and panics. The
// overflow policy is lossy by design: at full depth the oldest cause is
// dropped, never the most recent ones.
package xgxerrchain

import "fmt"

// Chain re-categorizes e under a new most recent error: next becomes
// slot 0 and every existing slot shifts one position deeper (at full
// depth the oldest slot is dropped). The receiver is not modified.
//
// The category of C must appear in next's category links; otherwise Chain
// panics.
func Chain[N Value, C Value](e Error[C], next N) Error[N] {
	return chainWord[N](e.w, categoryOf[C](), next)
}

// ChainValue chains a raw category value that was never packed, producing
// a depth-2 error in one step: next on top, v beneath it.
//
// The category of C must appear in next's category links; otherwise
// ChainValue panics.
func ChainValue[N Value, C Value](v C, next N) Error[N] {
	return Chain(New(v), next)
}

// ChainErr lifts Chain over the error half of a (T, error) return.
//
//   - nil passes through as nil.
//   - An Error of any category is chained under next.
//   - A DynError is chained under next (its record identifies the link).
//   - A raw category value used as an error is promoted to a depth-2
//     chain: next on top, the raw value beneath it.
//
// Any other error panics: a foreign error has no category and no 4-bit
// code, so it cannot be represented in a packed chain. Wrap foreign
// failures into a category at the boundary where they enter.
//
// As with Chain, the source's top category must appear in next's category
// links.
func ChainErr[N Value](err error, next N) error {
	if err == nil {
		return nil
	}
	switch src := err.(type) {
	case interface{ erase() (word, *Category) }:
		w, from := src.erase()
		return chainWord[N](w, from, next)
	case CategoryValue:
		return chainWord[N](newWord(src.Code()), src.Category(), next)
	}
	panic(fmt.Sprintf("xgxerrchain: cannot chain foreign error of type %T", err))
}

// chainWord packs next on top of w, whose current top category is from.
// Panics if from is not linked by next's category.
func chainWord[N Value](w word, from *Category, next N) Error[N] {
	to := next.Category()
	idx := to.linkIndexOf(from)
	if idx < 0 {
		panic(fmt.Sprintf("xgxerrchain: cannot chain %s into %s: categories are not linked", from.name, to.name))
	}
	return Error[N]{w.pushFront(next.Code(), idx)}
}
