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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with the Errorf() function, which takes a
// formatting pattern and placeholder values in the same way as fmt.Errorf().
//
// The pattern is what identifies the error. Packages that produce curated
// errors export their patterns as constants so that callers can test for
// them:
//
//	const InvalidArgument = "cartridgetype: invalid argument: %s"
//
//	_, _, err := cartridgetype.BySymbolicID("")
//	if curated.Is(err, cartridgetype.InvalidArgument) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain. A curated error is part of the chain if it is one of the
// values given to Errorf().
//
//	e := curated.Errorf("export: %v", err)
//	curated.Has(e, cartridgetype.InvalidArgument) // true
//	curated.Is(e, cartridgetype.InvalidArgument)  // false
//
// The Error() function normalises the message by removing duplicate adjacent
// parts. Wrapping an error with the same prefix more than once, for example
//
//	"cartridgetype: cartridgetype: invariant violation: duplicate numeric id 1"
//
// is reported as
//
//	"cartridgetype: invariant violation: duplicate numeric id 1"
//
// which means that code does not need to worry about whether its caller has
// already added context.
package curated
