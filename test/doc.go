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

// Package test bundles a bunch of useful functions useful for testing
// purposes, particularly useful in conjunction with the standard go test
// harness.
//
// The Expect*() functions report a failure with t.Errorf() and return false
// so that the test can continue. The Demand*() functions call t.Fatalf()
// instead and should be used when the remainder of the test depends on the
// value.
//
// The ExpectSuccess() and ExpectFailure() functions test for failure and
// success under generic conditions. The nil type is considered a success,
// which matches how errors are usually returned.
//
// All functions take an optional list of tags which are prefixed to the
// failure message. Useful for identifying the iteration of a loop:
//
//	for _, d := range cartridgetype.All() {
//		test.ExpectEquality(t, d.BankSize > 0, true, d.SymbolicID)
//	}
//
// The Writer type implements the io.Writer interface and should be used to
// capture output. The Writer.Compare() function can then be used to test for
// equality.
package test
