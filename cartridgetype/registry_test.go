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

package cartridgetype_test

import (
	"testing"

	"github.com/jetsetilly/a8carts/cartridgetype"
	"github.com/jetsetilly/a8carts/curated"
	"github.com/jetsetilly/a8carts/test"
)

var unknown = cartridgetype.Descriptor{
	SymbolicID: cartridgetype.UnknownID,
	NumericID:  0,
	Platform:   cartridgetype.Unknown,
}

func std8() cartridgetype.Descriptor {
	return cartridgetype.Descriptor{
		SymbolicID:         "CARTRIDGE_STD_8",
		NumericID:          1,
		Platform:           cartridgetype.Atari800,
		SizeInKB:           8,
		BankSize:           0x2000,
		InitialBankAddress: 0xa000,
	}
}

func TestNewRegistry(t *testing.T) {
	reg, err := cartridgetype.NewRegistry([]cartridgetype.Descriptor{std8(), unknown})
	test.DemandSuccess(t, err)
	test.DemandEquality(t, reg.Len(), 2)

	// entries are ordered by numeric id regardless of the order they were
	// given in
	all := reg.All()
	test.ExpectEquality(t, all[0].SymbolicID, cartridgetype.UnknownID)
	test.ExpectEquality(t, all[1].SymbolicID, "CARTRIDGE_STD_8")
}

func TestRegistryInvariants(t *testing.T) {
	dupNumeric := std8()
	dupNumeric.SymbolicID = "CARTRIDGE_OTHER"

	dupSymbolic := std8()
	dupSymbolic.NumericID = 2

	negativeID := std8()
	negativeID.NumericID = -1

	negativeSize := std8()
	negativeSize.SizeInKB = -8

	zeroID := std8()
	zeroID.NumericID = 0

	unknownID := std8()
	unknownID.SymbolicID = cartridgetype.UnknownID

	tests := []struct {
		name    string
		entries []cartridgetype.Descriptor
		detail  string
	}{
		{"duplicate numeric id", []cartridgetype.Descriptor{unknown, std8(), dupNumeric}, cartridgetype.DuplicateNumericID},
		{"duplicate symbolic id", []cartridgetype.Descriptor{unknown, std8(), dupSymbolic}, cartridgetype.DuplicateSymbolicID},
		{"negative numeric id", []cartridgetype.Descriptor{unknown, negativeID}, cartridgetype.NegativeNumericID},
		{"negative size", []cartridgetype.Descriptor{unknown, negativeSize}, cartridgetype.NegativeSize},
		{"numeric id zero is reserved", []cartridgetype.Descriptor{zeroID}, cartridgetype.ReservedUnknown},
		{"symbolic id UNKNOWN is reserved", []cartridgetype.Descriptor{unknown, unknownID}, cartridgetype.ReservedUnknown},
		{"missing UNKNOWN", []cartridgetype.Descriptor{std8()}, cartridgetype.MissingUnknown},
		{"empty registry", nil, cartridgetype.MissingUnknown},
	}

	for _, tt := range tests {
		reg, err := cartridgetype.NewRegistry(tt.entries)
		test.ExpectSuccess(t, reg == nil, tt.name)
		test.ExpectSuccess(t, curated.Is(err, cartridgetype.InvariantViolation), tt.name)
		test.ExpectSuccess(t, curated.Has(err, tt.detail), tt.name)
	}
}

func TestRegistryErrorDetail(t *testing.T) {
	dupNumeric := std8()
	dupNumeric.SymbolicID = "CARTRIDGE_OTHER"

	_, err := cartridgetype.NewRegistry([]cartridgetype.Descriptor{unknown, std8(), dupNumeric})
	test.ExpectEquality(t, err.Error(), "cartridgetype: invariant violation: duplicate numeric id 1")
	test.ExpectFailure(t, curated.Has(err, cartridgetype.DuplicateSymbolicID))

	_, err = cartridgetype.ParsePlatform("atari_2600")
	test.ExpectEquality(t, err.Error(), "cartridgetype: invalid argument: unrecognised platform: atari_2600")
	test.ExpectSuccess(t, curated.Has(err, cartridgetype.UnrecognisedPlatform))
}

func TestRegistryInvalidArgument(t *testing.T) {
	noPlatform := std8()
	noPlatform.Platform = 0

	noID := std8()
	noID.SymbolicID = ""

	tests := []struct {
		d      cartridgetype.Descriptor
		detail string
	}{
		{noPlatform, cartridgetype.MissingPlatform},
		{noID, cartridgetype.EmptySymbolicID},
	}

	for _, tt := range tests {
		reg, err := cartridgetype.NewRegistry([]cartridgetype.Descriptor{unknown, tt.d})
		test.ExpectSuccess(t, reg == nil, tt.d)
		test.ExpectSuccess(t, curated.Is(err, cartridgetype.InvalidArgument), tt.d)
		test.ExpectSuccess(t, curated.Has(err, tt.detail), tt.d)
	}
}

func TestRegistryLookups(t *testing.T) {
	reg, err := cartridgetype.NewRegistry([]cartridgetype.Descriptor{unknown, std8()})
	test.DemandSuccess(t, err)

	d, ok := reg.ByNumericID(1)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, d, std8())

	_, ok = reg.ByNumericID(2)
	test.ExpectFailure(t, ok)

	d, ok, err = reg.BySymbolicID("CARTRIDGE_STD_8")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, d.NumericID, 1)

	_, _, err = reg.BySymbolicID("")
	test.ExpectSuccess(t, curated.Is(err, cartridgetype.InvalidArgument))
	test.ExpectSuccess(t, curated.Has(err, cartridgetype.EmptyLookup))

	test.ExpectEquality(t, len(reg.ByPlatform(cartridgetype.Atari5200)), 0)
	test.ExpectEquality(t, len(reg.ByPlatform(cartridgetype.Atari800)), 1)
}
