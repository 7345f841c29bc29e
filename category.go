// category.go — error codes and the category capability record.
//
// A category is registered exactly once and its record is immutable after
// registration. The record is the only runtime artifact a category needs:
// name for rendering, variant count for validation, a formatter for code
// text, and the closed, ordered list of categories it may chain over.
// Registration misuse is fatal by contract: it is a wiring bug that must
// surface before any error value of the offending category can exist.
package xgxerrchain

import "fmt"

const (
	// MaxCodes is the number of codes a single category may declare.
	// A code occupies 4 bits in the packed word.
	MaxCodes = 16

	// MaxLinks is the number of categories a single category may declare
	// as chainable immediate causes. A link index occupies 4 bits in the
	// packed word, minus the reserved empty and self sentinels.
	MaxLinks = 14
)

// Code identifies one member of a category. Valid values are [0, MaxCodes).
type Code uint8

// FormatFunc renders the descriptive text for a single code of a category.
// It may close over contextual state captured at registration (a sensor
// readout, a counter) and interpolate it into the text. Returning "" omits
// the text portion; only "Name(code)" is rendered.
type FormatFunc func(Code) string

// Category is the immutable capability record of a registered category.
// Identity is pointer identity: two category values belong to the same
// category iff their Category() pointers are equal.
type Category struct {
	name     string
	variants int
	format   FormatFunc
	links    []*Category
}

// NewCategory registers a category and returns its capability record.
// variants is the number of codes the category declares; format may be nil.
// links lists the categories this one accepts as an immediate cause, in
// link-index order. Use Link to complete cyclic graphs that cannot be
// expressed in a single var initializer.
//
// NewCategory panics if variants is outside [1, MaxCodes], if more than
// MaxLinks links are given, or if any link is nil. These are registration
// faults: they are rejected before any value of the category can exist.
func NewCategory(name string, variants int, format FormatFunc, links ...*Category) *Category {
	if variants < 1 || variants > MaxCodes {
		panic(fmt.Sprintf("xgxerrchain: category %q declares %d variants, must be in [1,%d]", name, variants, MaxCodes))
	}
	c := &Category{name: name, variants: variants, format: format}
	return c.Link(links...)
}

// Link appends additional link targets to c and returns c for chaining.
// It exists for link graphs with cycles: Go var initialization cannot
// reference a category that is declared later, so mutually linked
// categories register first and link in an init function.
//
// Link must only be called during registration (package init), before the
// category is used to build error values. It panics if a target is nil or
// if the total link count would exceed MaxLinks.
func (c *Category) Link(targets ...*Category) *Category {
	for _, t := range targets {
		if t == nil {
			panic(fmt.Sprintf("xgxerrchain: category %q declares a nil link", c.name))
		}
	}
	if len(c.links)+len(targets) > MaxLinks {
		panic(fmt.Sprintf("xgxerrchain: category %q declares %d links, at most %d are supported", c.name, len(c.links)+len(targets), MaxLinks))
	}
	c.links = append(c.links, targets...)
	return c
}

// Name returns the category's registered name.
func (c *Category) Name() string { return c.name }

// Variants returns the number of codes the category declares.
func (c *Category) Variants() int { return c.variants }

// Links returns a copy of the category's declared links in link-index
// order. The copy is safe to mutate.
func (c *Category) Links() []*Category {
	out := make([]*Category, len(c.links))
	copy(out, c.links)
	return out
}

// linkIndexOf returns the index of target within c's declared links,
// or -1 if target is not linked.
func (c *Category) linkIndexOf(target *Category) int {
	for i, l := range c.links {
		if l == target {
			return i
		}
	}
	return -1
}

// linkAt returns the linked category at index i, or nil if i is out of
// range. A nil result during chain resolution means the word is corrupt;
// callers fail closed.
func (c *Category) linkAt(i int) *Category {
	if i < 0 || i >= len(c.links) {
		return nil
	}
	return c.links[i]
}

// CategoryValue is the runtime contract every category value type
// satisfies: a mapping to its 4-bit code and a reference to its registered
// capability record. It is the type-erased counterpart of the Value
// constraint, used where values arrive through the error interface.
type CategoryValue interface {
	// Code returns the value's code within its category. Must be < the
	// category's declared variant count.
	Code() Code

	// Category returns the value's registered capability record. Must
	// return the same pointer for every value of the type.
	Category() *Category
}

// Value is the generic constraint for category value types: a uint8-based
// enum implementing CategoryValue. The ~uint8 term is what lets typed
// getters convert a packed code back into the enum type.
type Value interface {
	~uint8
	CategoryValue
}

// categoryOf returns the capability record of the category type C.
// Category() must not depend on the receiver value, so the zero value
// suffices.
func categoryOf[C Value]() *Category {
	var zero C
	return zero.Category()
}
