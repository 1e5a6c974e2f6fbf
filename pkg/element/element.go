// Package element provides an immutable periodic-table registry.
//
// The table is built once from a package-level literal and is read-only
// afterwards. Lookups resolve either by symbol or by atomic number:
//
//	c, err := element.BySymbol("C")
//	o, err := element.ByNumber(8)
//
// Element values are small and copied freely; identity comparisons between two
// atoms of the same element compare the atomic number.
package element

import (
	"github.com/skovanen/molgraph/pkg/errors"
)

// Element describes one entry of the periodic table.
type Element struct {
	// Number is the atomic number (number of protons).
	Number int

	// Symbol is the one- or two-letter IUPAC symbol.
	Symbol string

	// Mass is the standard atomic weight in g/mol.
	Mass float64
}

// IsZero reports whether e is the zero Element (no registry entry).
func (e Element) IsZero() bool { return e.Number == 0 }

// String returns the element symbol.
func (e Element) String() string { return e.Symbol }

// BySymbol resolves an element by its symbol, e.g. "C" or "Cl".
// Lookup is case-sensitive. Returns ELEMENT_NOT_FOUND if no entry matches.
func BySymbol(symbol string) (Element, error) {
	if err := errors.ValidateElementSymbol(symbol); err != nil {
		return Element{}, err
	}
	e, ok := bySymbol[symbol]
	if !ok {
		return Element{}, errors.New(errors.ErrCodeElementNotFound, "unknown element symbol: %q", symbol)
	}
	return e, nil
}

// ByNumber resolves an element by atomic number.
// Returns ELEMENT_NOT_FOUND if the number is outside the table.
func ByNumber(number int) (Element, error) {
	if number < 1 || number > len(table) {
		return Element{}, errors.New(errors.ErrCodeElementNotFound, "unknown atomic number: %d", number)
	}
	return table[number-1], nil
}

// MustBySymbol resolves an element by symbol and panics on failure.
// Intended for static initialization with known-good symbols.
func MustBySymbol(symbol string) Element {
	e, err := BySymbol(symbol)
	if err != nil {
		panic(err)
	}
	return e
}

// bySymbol indexes the table for symbol lookup. Populated once at init;
// never mutated afterwards.
var bySymbol = func() map[string]Element {
	m := make(map[string]Element, len(table))
	for _, e := range table {
		m[e.Symbol] = e
	}
	return m
}()
