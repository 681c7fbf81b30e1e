package findint

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownVariant is returned when a variant name does not match any
// implementation.
var ErrUnknownVariant = errors.New("unknown search variant")

// UnknownVariantError wraps ErrUnknownVariant with the offending name.
type UnknownVariantError struct {
	Name string
}

// Error implements the error interface
func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("%v %q (known: %s)", ErrUnknownVariant, e.Name, strings.Join(Names(), ", "))
}

// Unwrap returns the underlying error
func (e *UnknownVariantError) Unwrap() error {
	return ErrUnknownVariant
}

// Variant is a named search implementation.
type Variant struct {
	Name string
	Find Func
}

// Variants returns all implementations in canonical order: scalar,
// unrolled8, library, vectorized. The first entry is the reference.
// The returned slice is a fresh copy.
func Variants() []Variant {
	return []Variant{
		{Name: "scalar", Find: Scalar},
		{Name: "unrolled8", Find: Unrolled8},
		{Name: "library", Find: Library},
		{Name: "vectorized", Find: Vectorized},
	}
}

// Names returns the names of all variants in canonical order.
func Names() []string {
	all := Variants()
	names := make([]string, len(all))
	for i, v := range all {
		names[i] = v.Name
	}
	return names
}

// Lookup returns the variant with the given name (case-insensitive).
func Lookup(name string) (Variant, bool) {
	for _, v := range Variants() {
		if strings.EqualFold(v.Name, strings.TrimSpace(name)) {
			return v, true
		}
	}
	return Variant{}, false
}

// Select resolves names to variants, keeping canonical order and dropping
// duplicates. An empty list selects every variant.
func Select(names []string) ([]Variant, error) {
	if len(names) == 0 {
		return Variants(), nil
	}

	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		v, ok := Lookup(name)
		if !ok {
			return nil, &UnknownVariantError{Name: name}
		}
		wanted[v.Name] = true
	}

	selected := make([]Variant, 0, len(wanted))
	for _, v := range Variants() {
		if wanted[v.Name] {
			selected = append(selected, v)
		}
	}
	return selected, nil
}
