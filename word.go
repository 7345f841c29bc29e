// word.go — the packed chain codec.
//
// The entire error chain lives in one uint32, laid out as four 8-bit
// slots. Slot i occupies bits [8i, 8i+8); slot 0 is the most recent error.
// Each slot byte is split into two nibbles:
//
//	b0..b4  code        4-bit error code within the slot's category
//	b4..b8  link field  how the slot's category is identified
//
// The link field of slot 0 is always linkSelf: slot 0's category is the
// word's statically known top category, carried by the type (Error[C]) or
// the capability record (DynError). For deeper slots the field holds
// linkIndex+1, where linkIndex locates the slot's category within the
// previous slot's category links. linkEmpty (0) marks an unoccupied slot,
// which is how depth is inferred without a separate length field.
//
// Unoccupied slots are always all-zero, so two words with equal logical
// content are bit-identical and plain == is a meaningful equality.
package xgxerrchain

// ChainCap is the maximum chain depth: the number of (link, code) slots a
// packed word can hold. Chaining a full word drops the oldest slot.
const ChainCap = 4

const (
	slotBits  = 8
	codeMask  = 0x0f
	linkShift = 4

	linkEmpty = 0x0 // slot unoccupied; depth sentinel
	linkSelf  = 0xf // slot 0 only: category is the word's top category
)

// word is the bit-packed chain value shared by Error and DynError.
type word uint32

// newWord packs a single code as a depth-1 chain.
func newWord(c Code) word {
	return word(linkSelf)<<linkShift | word(c&codeMask)
}

// slot returns the link field and code of slot i. i must be in [0, ChainCap).
func (w word) slot(i int) (link uint8, c Code) {
	b := uint8(w >> (i * slotBits))
	return b >> linkShift, Code(b & codeMask)
}

// code returns slot 0's code, the most recent error.
func (w word) code() Code {
	return Code(w & codeMask)
}

// withCode replaces slot 0's code, leaving the chain untouched. The new
// code must belong to the same category as the old one.
func (w word) withCode(c Code) word {
	return w&^codeMask | word(c&codeMask)
}

// depth returns the number of occupied slots: the index of the first slot
// whose link field is the empty sentinel.
func (w word) depth() int {
	for i := range ChainCap {
		if link, _ := w.slot(i); link == linkEmpty {
			return i
		}
	}
	return ChainCap
}

// pushFront prepends a new most-recent slot holding c and shifts every
// existing slot one position deeper; a fully occupied word silently drops
// its oldest slot. linkIdx is the index of the previous top category within
// the new top category's declared links; it overwrites the old slot 0
// link field, which held the self sentinel and now must name the old
// category relative to the new one.
func (w word) pushFront(c Code, linkIdx int) word {
	const slot1LinkMask = word(0xf) << (slotBits + linkShift)

	shifted := w << slotBits
	shifted &^= slot1LinkMask
	shifted |= word(uint8(linkIdx+1)&0xf) << (slotBits + linkShift)
	return shifted | newWord(c)
}
