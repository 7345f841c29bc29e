// doc.go — package documentation for xgx-errchain
//
// Package xgxerrchain provides a packed, allocation-free representation for
// chains of categorized error codes. An entire chain of up to four
// category-tagged codes fits in a single machine word, making error values
// cheap to construct, copy, compare, and carry across call boundaries in
// environments that cannot afford heap allocation (firmware-style cores,
// hot paths, fixed-size mailboxes).
//
// It is designed to be:
//   - Fixed-size: Error[C] is exactly one uint32; DynError adds one pointer.
//   - Allocation-free: construct, chain, and inspect never touch the heap.
//   - Cause-aware: each value carries "what caused what", newest first.
//
// # Model
//
// A *category* is a closed enumeration of at most 16 error codes, registered
// once (typically in a package var or init) via NewCategory. The returned
// *Category is the category's capability record: its name, its textual
// formatter, and the closed list of other categories it accepts as an
// immediate cause (its links). Category value types are small uint8-based
// enums that implement Code and Category accessors:
//
//	var spiCategory = xgxerrchain.NewCategory("SpiError", 2, spiText)
//
//	type SpiError uint8
//
//	const (
//		SpiBusError SpiError = iota
//		SpiTimeout
//	)
//
//	func (e SpiError) Code() xgxerrchain.Code          { return xgxerrchain.Code(e) }
//	func (e SpiError) Category() *xgxerrchain.Category { return spiCategory }
//
// An Error[C] packs an ordered sequence of 1–4 (link, code) slots into one
// word. Slot 0 is the most recent error and always belongs to C; deeper
// slots are resolved by following each slot's link index through the link
// graph declared at registration. Chaining prepends a slot; once the chain
// is full the oldest cause is dropped, because the most actionable
// information for a caller is the most proximate cause.
//
// # Chaining
//
// Producers create a single-category error with New and hand it upward.
// Each boundary may re-categorize into its own category:
//
//	func gyroInit() error {
//		return xgxerrchain.ChainErr(spiInit(), GyroInitFailed)
//	}
//
// Chain, ChainValue and ChainErr require the receiver's category to appear
// in the new category's declared links; chaining unlinked categories is a
// programming error and panics. ChainErr passes nil through untouched and
// promotes a raw category value (returned directly as an error) into a
// depth-2 chain in one step.
//
// # Type Erasure
//
// Erase converts an Error[C] into a DynError: the same word plus a
// reference to C's immutable capability record. A DynError can be stored
// and forwarded by code that has never seen C, and still formats its full
// chain and answers category queries (Downcast, CodeOf, CausedBy). The one
// pointer of overhead is the entire cost of erasure.
//
// # Failure Policy
//
//   - Registration misuse (more than 16 variants, more than 14 links, nil
//     link) panics at registration, before any value can exist.
//   - Chaining unlinked categories (or a foreign error) panics: the result
//     cannot be represented and indicates a wiring bug, not a runtime
//     condition.
//   - Everything else is total and panic-free. A corrupted word (link index
//     out of range for its resolved category) fails closed: lookups report
//     absence and formatting renders a fixed placeholder.
//
// # Formatting
//
// Error[C] and DynError implement fmt.Formatter:
//   - %v, %s  → concise, single-line, slots joined by " <- "
//   - %+v     → multi-line, one "- " line per chained slot
//   - %q      → quoted concise form
//
// # Concurrency
//
// All values are immutable after construction; every operation returns a
// new value. Category records are written only during registration and are
// read-only thereafter, so values and records may be shared across
// goroutines without synchronization. No operation blocks, performs I/O,
// or allocates.
package xgxerrchain
