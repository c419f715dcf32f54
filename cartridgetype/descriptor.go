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

import "fmt"

// Descriptor describes the memory layout of one cartridge type.
type Descriptor struct {
	// unique identifier, eg. "CARTRIDGE_STD_8". the value "UNKNOWN" is
	// reserved for the sentinel entry
	SymbolicID string `json:"symbolicId" yaml:"symbolicId"`

	// unique identifier matching the atari800 enumeration. zero is the
	// UNKNOWN sentinel
	NumericID int `json:"numericId" yaml:"numericId"`

	Platform Platform `json:"platform" yaml:"platform"`

	// size of the image file. larger than the CPU view of the cartridge for
	// all bank switching types. zero if the size is not defined
	SizeInKB int `json:"sizeInKB" yaml:"sizeInKB"`

	// size in bytes of one addressable bank
	BankSize int `json:"bankSize" yaml:"bankSize"`

	// the bank mapped at reset. InitialBankNumber is not derived from
	// InitialBankOffset and BankSize because not all bank switching schemes
	// are linear
	InitialBankOffset  int `json:"initialBankOffset" yaml:"initialBankOffset"`
	InitialBankAddress int `json:"initialBankAddress" yaml:"initialBankAddress"`
	InitialBankNumber  int `json:"initialBankNumber" yaml:"initialBankNumber"`

	// erase/program granularity in bytes. zero if the cartridge is not
	// flashable
	FlashBlockSize int `json:"flashBlockSize" yaml:"flashBlockSize"`

	// human readable name from the atari800 cartridge list
	Description string `json:"description" yaml:"description"`
}

func (d Descriptor) String() string {
	return fmt.Sprintf("%d %s (%s)", d.NumericID, d.SymbolicID, d.Description)
}

// SizeInBytes returns the size of the cartridge image in bytes.
func (d Descriptor) SizeInBytes() int {
	return d.SizeInKB * 1024
}

// NumBanks returns the number of banks in a cartridge image of nominal size.
// Returns zero if the bank size is not defined.
func (d Descriptor) NumBanks() int {
	if d.BankSize <= 0 {
		return 0
	}
	return d.SizeInBytes() / d.BankSize
}

// IsFlashable returns true if the cartridge type has a flash block size.
func (d Descriptor) IsFlashable() bool {
	return d.FlashBlockSize > 0
}

// the members of the The!Cart family
var theCart = map[string]bool{
	"CARTRIDGE_THECART_32M":  true,
	"CARTRIDGE_THECART_64M":  true,
	"CARTRIDGE_THECART_128M": true,
}

// IsTheCart returns true if the descriptor is one of the The!Cart cartridge
// types (32MB, 64MB and 128MB).
func IsTheCart(d Descriptor) bool {
	return theCart[d.SymbolicID]
}

// SupportsIncrementalFlashing returns true if the standard flasher for the
// cartridge type can reflash in place, in which case banks should be kept
// stable between flashes.
//
// Currently the same set of types as IsTheCart() but the hardware property is
// a different one.
func SupportsIncrementalFlashing(d Descriptor) bool {
	return IsTheCart(d)
}
