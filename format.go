// format.go — fmt.Formatter implementations for Error and DynError.
//
// Behavior:
//
//	%s, %v   → concise single line, slots joined by " <- ":
//	             GyroAccError(0): init failed <- SpiError(0): bus error
//	%+v      → verbose multi-line, one "- " line per chained slot:
//	             GyroAccError(0): init failed
//	             - SpiError(0): bus error
//	%q       → quoted concise form.
//
// Formatting always succeeds: a slot whose link index cannot be resolved
// renders a fixed placeholder and ends the chain instead of aborting.
// Rendering is the only operation in the package that allocates (it
// builds a string); everything feeding it is table lookups on immutable
// category records.
package xgxerrchain

import (
	"fmt"
	"strings"
)

// Rendered in place of a slot whose category cannot be resolved.
const unresolved = "<unresolved>"

const (
	sepConcise = " <- "
	sepVerbose = "\n- "
)

// renderChain renders every slot of w, most recent first, joined by sep.
func renderChain(cat *Category, w word, sep string) string {
	var b strings.Builder
	first := true
	for c, cur := range chainSlots(cat, w) {
		if !first {
			b.WriteString(sep)
		}
		first = false
		renderSlot(&b, c, cur)
	}
	return b.String()
}

// renderSlot renders one slot as "Name(code): text". The text portion is
// omitted when the category has no formatter or the formatter returns "".
// A nil category is the corrupt-slot sentinel from chainSlots.
func renderSlot(b *strings.Builder, c Code, cat *Category) {
	if cat == nil {
		b.WriteString(unresolved)
		return
	}
	fmt.Fprintf(b, "%s(%d)", cat.name, c)
	if cat.format == nil {
		return
	}
	if text := cat.format(c); text != "" {
		b.WriteString(": ")
		b.WriteString(text)
	}
}

// formatChain implements the shared verb switch for both error types.
func formatChain(s fmt.State, verb rune, cat *Category, w word) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = fmt.Fprint(s, renderChain(cat, w, sepVerbose))
			return
		}
		_, _ = fmt.Fprint(s, renderChain(cat, w, sepConcise))
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", renderChain(cat, w, sepConcise))
	default:
		_, _ = fmt.Fprint(s, renderChain(cat, w, sepConcise))
	}
}

// -----------------------------------------------------------------------------
// Error[C]
// -----------------------------------------------------------------------------

// Error returns the concise single-line rendering of the chain.
func (e Error[C]) Error() string {
	return renderChain(categoryOf[C](), e.w, sepConcise)
}

// String returns the concise single-line rendering of the chain.
func (e Error[C]) String() string {
	return e.Error()
}

// Format implements fmt.Formatter; see the file header for verbs.
func (e Error[C]) Format(s fmt.State, verb rune) {
	formatChain(s, verb, categoryOf[C](), e.w)
}

// -----------------------------------------------------------------------------
// DynError
// -----------------------------------------------------------------------------

// Error returns the concise single-line rendering of the chain.
func (d DynError) Error() string {
	return renderChain(d.cat, d.w, sepConcise)
}

// String returns the concise single-line rendering of the chain.
func (d DynError) String() string {
	return d.Error()
}

// Format implements fmt.Formatter; see the file header for verbs.
func (d DynError) Format(s fmt.State, verb rune) {
	formatChain(s, verb, d.cat, d.w)
}
