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

// Patterns for curated errors produced by the package.
const (
	// a required argument was empty or absent
	InvalidArgument = "cartridgetype: invalid argument: %s"

	// the table of descriptors is not self-consistent. only possible when
	// constructing a registry
	InvariantViolation = "cartridgetype: invariant violation: %s"
)

// Patterns for the detail of an InvalidArgument or InvariantViolation error.
// Test for them with curated.Has().
const (
	EmptySymbolicID      = "empty symbolic id for numeric id %d"
	EmptyLookup          = "symbolic id must not be empty"
	MissingPlatform      = "platform must be specified for %s"
	UnrecognisedPlatform = "unrecognised platform: %s"

	NegativeNumericID   = "negative numeric id (%d) for %s"
	NegativeSize        = "negative size (%d) for %s"
	ReservedUnknown     = "numeric id 0 is reserved for UNKNOWN (found %s with numeric id %d)"
	DuplicateSymbolicID = "duplicate symbolic id %s"
	DuplicateNumericID  = "duplicate numeric id %d"
	MissingUnknown      = "no UNKNOWN entry"
)
