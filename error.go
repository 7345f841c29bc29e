// error.go — the statically typed packed error.
//
// Error[C] is a value type: exactly one word, comparable with ==, and
// never mutated after construction. Every fluent operation returns a new
// value. The category of the most recent error is the type parameter, not
// data, which is what keeps the value at one word and makes slot 0 always
// interpretable without a lookup.
package xgxerrchain

import "iter"

// Error is a fixed-size chain of up to ChainCap categorized error codes.
// Slot 0 (the most recent error) always belongs to the category C. Deeper
// slots may belong to any category reachable through the link graph
// declared at registration.
//
// The zero value is not a valid Error; construct with New, Chain, or
// FromBits.
type Error[C Value] struct {
	w word
}

// New creates a depth-1 error from a single category value.
func New[C Value](v C) Error[C] {
	return Error[C]{newWord(v.Code())}
}

// Code returns the most recent error's code, typed as the category's enum.
func (e Error[C]) Code() C {
	return C(e.w.code())
}

// CodeValue returns the most recent error's raw 4-bit code.
func (e Error[C]) CodeValue() Code {
	return e.w.code()
}

// Depth returns the number of occupied slots, in [1, ChainCap] for any
// constructed error.
func (e Error[C]) Depth() int {
	return e.w.depth()
}

// WithCode returns a copy of e with the most recent error's code replaced
// by v. The chain below slot 0 is untouched. The receiver is not modified.
func (e Error[C]) WithCode(v C) Error[C] {
	return Error[C]{e.w.withCode(v.Code())}
}

// CodeOf returns the code of the first (most recent) slot in e that
// belongs to the category Q, walking the chain through the link graph.
// The second result is false if no slot belongs to Q, or if a corrupt
// link index makes the remainder of the chain unresolvable.
func CodeOf[Q Value, C Value](e Error[C]) (Q, bool) {
	c, ok := codeOf(categoryOf[C](), e.w, categoryOf[Q]())
	return Q(c), ok
}

// CausedBy reports whether any slot in e holds exactly v: same category
// and same code.
func (e Error[C]) CausedBy(v CategoryValue) bool {
	return causedBy(categoryOf[C](), e.w, v)
}

// Codes iterates over the chain, most recent first, yielding each slot's
// code and resolved category. The walk stops early at a corrupt slot.
func (e Error[C]) Codes() iter.Seq2[Code, *Category] {
	return resolvedSlots(categoryOf[C](), e.w)
}

// Bits returns the raw packed word, e.g. for storage in a fixed-size
// register or mailbox. Round-trips through FromBits.
func (e Error[C]) Bits() uint32 {
	return uint32(e.w)
}

// FromBits reconstructs an Error from a raw packed word, the inverse of
// Bits. The caller vouches that bits was produced by an Error whose top
// category is C; inspection of a word that was not remains memory-safe
// and panic-free but resolves categories arbitrarily or fails closed.
func FromBits[C Value](bits uint32) Error[C] {
	return Error[C]{word(bits)}
}

// erase surfaces the packed word and top category record without the
// static type. It is the hook ChainErr and Erase use to accept any
// Error[C] behind the error interface.
func (e Error[C]) erase() (word, *Category) {
	return e.w, categoryOf[C]()
}

// chainSlots walks w's slots, most recent first, yielding each slot's code
// and resolved category. Slot 0 resolves to cat; slot i resolves through
// slot i-1's category links. A link index out of range for its category
// means the word is corrupt: the offending slot is yielded with a nil
// category and the walk stops. Never panics.
func chainSlots(cat *Category, w word) iter.Seq2[Code, *Category] {
	return func(yield func(Code, *Category) bool) {
		cur := cat
		n := w.depth()
		for i := 0; i < n && cur != nil; i++ {
			link, c := w.slot(i)
			if i > 0 {
				cur = cur.linkAt(int(link) - 1)
			}
			if !yield(c, cur) {
				return
			}
		}
	}
}

// resolvedSlots is chainSlots with the corrupt sentinel slot elided: it
// yields resolved slots only and stops at the first unresolvable one.
func resolvedSlots(cat *Category, w word) iter.Seq2[Code, *Category] {
	return func(yield func(Code, *Category) bool) {
		for c, cur := range chainSlots(cat, w) {
			if cur == nil || !yield(c, cur) {
				return
			}
		}
	}
}

// codeOf returns the code of the first slot resolving to target.
func codeOf(cat *Category, w word, target *Category) (Code, bool) {
	for c, cur := range resolvedSlots(cat, w) {
		if cur == target {
			return c, true
		}
	}
	return 0, false
}

// causedBy reports whether any slot holds v's exact category and code.
func causedBy(cat *Category, w word, v CategoryValue) bool {
	target, code := v.Category(), v.Code()
	for c, cur := range resolvedSlots(cat, w) {
		if cur == target && c == code {
			return true
		}
	}
	return false
}
