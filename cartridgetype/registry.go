// This file is part of A8Carts.
//
// A8Carts is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// A8Carts is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with A8Carts.  If not, see <https://www.gnu.org/licenses/>.

package cartridgetype

import (
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/jetsetilly/a8carts/curated"
	"github.com/jetsetilly/a8carts/logger"
)

// UnknownID is the symbolic id of the sentinel entry. The sentinel always has
// numeric id zero.
const UnknownID = "UNKNOWN"

// Registry is an ordered collection of descriptors. A Registry is immutable
// once it has been created with NewRegistry() and is safe for concurrent use.
type Registry struct {
	// ordered by NumericID
	entries []Descriptor

	byNumeric  map[int]int
	bySymbolic map[string]int
}

// NewRegistry creates a registry from the list of descriptors. The list is
// validated as a whole and an error is returned if any descriptor breaks the
// rules of the catalogue:
//
//	symbolic id must not be empty
//	platform must be valid
//	numeric id and size must not be negative
//	symbolic and numeric ids must be unique
//	exactly one UNKNOWN entry, with numeric id zero
//
// No registry is returned on error.
func NewRegistry(entries []Descriptor) (*Registry, error) {
	reg := &Registry{
		entries:    make([]Descriptor, 0, len(entries)),
		byNumeric:  make(map[int]int, len(entries)),
		bySymbolic: make(map[string]int, len(entries)),
	}

	sorted := make([]Descriptor, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].NumericID < sorted[j].NumericID
	})

	for _, d := range sorted {
		if err := reg.add(d); err != nil {
			return nil, err
		}
	}

	if _, ok := reg.bySymbolic[UnknownID]; !ok {
		return nil, curated.Errorf(InvariantViolation, curated.Errorf(MissingUnknown))
	}

	return reg, nil
}

func (reg *Registry) add(d Descriptor) error {
	if d.SymbolicID == "" {
		return curated.Errorf(InvalidArgument, curated.Errorf(EmptySymbolicID, d.NumericID))
	}
	if !d.Platform.Valid() {
		return curated.Errorf(InvalidArgument, curated.Errorf(MissingPlatform, d.SymbolicID))
	}
	if d.NumericID < 0 {
		return curated.Errorf(InvariantViolation, curated.Errorf(NegativeNumericID, d.NumericID, d.SymbolicID))
	}
	if d.SizeInKB < 0 {
		return curated.Errorf(InvariantViolation, curated.Errorf(NegativeSize, d.SizeInKB, d.SymbolicID))
	}
	if (d.SymbolicID == UnknownID) != (d.NumericID == 0) {
		return curated.Errorf(InvariantViolation, curated.Errorf(ReservedUnknown, d.SymbolicID, d.NumericID))
	}
	if _, ok := reg.bySymbolic[d.SymbolicID]; ok {
		return curated.Errorf(InvariantViolation, curated.Errorf(DuplicateSymbolicID, d.SymbolicID))
	}
	if _, ok := reg.byNumeric[d.NumericID]; ok {
		return curated.Errorf(InvariantViolation, curated.Errorf(DuplicateNumericID, d.NumericID))
	}

	reg.entries = append(reg.entries, d)
	reg.byNumeric[d.NumericID] = len(reg.entries) - 1
	reg.bySymbolic[d.SymbolicID] = len(reg.entries) - 1

	return nil
}

// Len returns the number of descriptors in the registry.
func (reg *Registry) Len() int {
	return len(reg.entries)
}

// All returns every descriptor in ascending numeric id order. The returned
// slice is a copy and can be modified by the caller.
func (reg *Registry) All() []Descriptor {
	c := make([]Descriptor, len(reg.entries))
	copy(c, reg.entries)
	return c
}

// ByNumericID returns the descriptor with the numeric id. Returns false if
// there is no such descriptor.
func (reg *Registry) ByNumericID(id int) (Descriptor, bool) {
	if i, ok := reg.byNumeric[id]; ok {
		return reg.entries[i], true
	}
	return Descriptor{}, false
}

// BySymbolicID returns the descriptor with the symbolic id. The match is
// exact. Returns false if there is no such descriptor.
//
// An empty id results in an InvalidArgument error.
func (reg *Registry) BySymbolicID(id string) (Descriptor, bool, error) {
	if id == "" {
		return Descriptor{}, false, curated.Errorf(InvalidArgument, curated.Errorf(EmptyLookup))
	}
	if i, ok := reg.bySymbolic[id]; ok {
		return reg.entries[i], true, nil
	}
	return Descriptor{}, false, nil
}

// Lookup resolves a string that is either a decimal numeric id or a symbolic
// id. Symbolic ids are matched without regard to case.
func (reg *Registry) Lookup(s string) (Descriptor, bool, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		d, ok := reg.ByNumericID(n)
		return d, ok, nil
	}
	return reg.BySymbolicID(strings.ToUpper(s))
}

// ByPlatform returns every descriptor for the platform in ascending numeric
// id order.
func (reg *Registry) ByPlatform(p Platform) []Descriptor {
	var c []Descriptor
	for _, d := range reg.entries {
		if d.Platform == p {
			c = append(c, d)
		}
	}
	return c
}

// the catalogue is built on first use
var (
	catalogueOnce sync.Once
	catalogue     *Registry
)

// Catalogue returns the registry of all known cartridge types. The registry
// is built on the first call.
//
// Panics if the compiled-in table is not self-consistent.
func Catalogue() *Registry {
	catalogueOnce.Do(func() {
		reg, err := NewRegistry(table())
		if err != nil {
			panic(err)
		}
		catalogue = reg
		logger.Logf(logger.Allow, "cartridgetype", "%d cartridge types in catalogue", reg.Len())
	})
	return catalogue
}

// All returns every descriptor in the catalogue in ascending numeric id order.
func All() []Descriptor {
	return Catalogue().All()
}

// ByNumericID returns the descriptor in the catalogue with the numeric id.
func ByNumericID(id int) (Descriptor, bool) {
	return Catalogue().ByNumericID(id)
}

// BySymbolicID returns the descriptor in the catalogue with the symbolic id.
func BySymbolicID(id string) (Descriptor, bool, error) {
	return Catalogue().BySymbolicID(id)
}

// Lookup resolves either a numeric or a symbolic id in the catalogue.
func Lookup(s string) (Descriptor, bool, error) {
	return Catalogue().Lookup(s)
}

// ByPlatform returns every descriptor in the catalogue for the platform.
func ByPlatform(p Platform) []Descriptor {
	return Catalogue().ByPlatform(p)
}
