// dyn.go — the type-erased packed error.
//
// DynError carries the same packed word as Error[C] plus one reference to
// the top category's capability record, bound at construction and never
// reassigned. That pointer is the full cost of erasure: it is what lets a
// boundary return complete chain fidelity without exposing its private
// category type, at the price of being one reference larger than the
// exactly-one-word Error[C].
package xgxerrchain

import "iter"

// DynError is the type-erased counterpart of Error. It formats, compares,
// and answers category queries without the static category type; it can
// never regain one, only hand back a typed Error via Typed.
//
// DynError is comparable: two values are equal iff their words are
// bit-identical and they reference the same category record.
//
// The zero value is not a valid DynError; construct with Erase, NewDyn,
// or DynFromBits.
type DynError struct {
	w   word
	cat *Category
}

// Erase drops e's static category type, binding its capability record
// instead. The chain content is carried over bit-for-bit.
func Erase[C Value](e Error[C]) DynError {
	return DynError{e.w, categoryOf[C]()}
}

// NewDyn creates a depth-1 type-erased error directly from a category
// value, equivalent to Erase(New(v)).
func NewDyn[C Value](v C) DynError {
	return DynError{newWord(v.Code()), v.Category()}
}

// DynFromBits reassembles a DynError from a raw packed word and the
// capability record of its top category, the inverse of Bits and
// Category. The caller vouches that the parts belong together.
func DynFromBits(bits uint32, cat *Category) DynError {
	return DynError{word(bits), cat}
}

// Code returns the most recent error's raw 4-bit code.
func (d DynError) Code() Code {
	return d.w.code()
}

// Depth returns the number of occupied slots.
func (d DynError) Depth() int {
	return d.w.depth()
}

// Bits returns the raw packed word.
func (d DynError) Bits() uint32 {
	return uint32(d.w)
}

// Category returns the capability record of the most recent error's
// category.
func (d DynError) Category() *Category {
	return d.cat
}

// Is reports whether the most recent error belongs to cat.
func (d DynError) Is(cat *Category) bool {
	return d.cat == cat
}

// CodeOf returns the code of the first (most recent) slot belonging to
// cat, walking the chain through the stored capability record. The second
// result is false if no slot belongs to cat or the walk hits a corrupt
// link index.
func (d DynError) CodeOf(cat *Category) (Code, bool) {
	return codeOf(d.cat, d.w, cat)
}

// CausedBy reports whether any slot holds exactly v: same category and
// same code.
func (d DynError) CausedBy(v CategoryValue) bool {
	return causedBy(d.cat, d.w, v)
}

// Codes iterates over the chain, most recent first, yielding each slot's
// code and resolved category. The walk stops early at a corrupt slot.
func (d DynError) Codes() iter.Seq2[Code, *Category] {
	return resolvedSlots(d.cat, d.w)
}

// Downcast returns the code of the first slot belonging to the category Q,
// typed as Q's enum. It is the erased equivalent of CodeOf on Error: for
// any chain, Downcast after Erase answers exactly what CodeOf answered
// before.
func Downcast[Q Value](d DynError) (Q, bool) {
	c, ok := d.CodeOf(categoryOf[Q]())
	return Q(c), ok
}

// Typed restores the static type of a DynError whose most recent error
// belongs to C. It reports false, with an invalid zero Error, otherwise.
func Typed[C Value](d DynError) (Error[C], bool) {
	if d.cat != categoryOf[C]() {
		return Error[C]{}, false
	}
	return Error[C]{d.w}, true
}

// TryChainDyn chains d under next if next's category links d's category.
// It reports false, with an invalid zero Error, when the categories are
// not linked: the dynamic counterpart of the static link requirement
// that Chain enforces by panicking.
func TryChainDyn[N Value](d DynError, next N) (Error[N], bool) {
	to := next.Category()
	idx := to.linkIndexOf(d.cat)
	if idx < 0 {
		return Error[N]{}, false
	}
	return Error[N]{d.w.pushFront(next.Code(), idx)}, true
}

// ChainDyn chains d under next, panicking if next's category does not
// link d's category. Use TryChainDyn when the link is not known to hold.
func ChainDyn[N Value](d DynError, next N) Error[N] {
	return chainWord[N](d.w, d.cat, next)
}

// erase surfaces the packed word and top category record; see Error.erase.
func (d DynError) erase() (word, *Category) {
	return d.w, d.cat
}
