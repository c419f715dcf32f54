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

// Package cartridgetype is the catalogue of Atari 8-bit cartridge types. The
// catalogue mirrors the cartridge enumeration of the atari800 emulator (see
// cartridge_info.h and DOC/cart.txt in that project) and records, for each
// type, the memory layout a tool needs to know about: the size of the image,
// the size of one bank, where the bank that is active at reset is found in
// the image, where it is mapped in the CPU address space and which bank
// number it has.
//
// The catalogue is built on first use and is read-only afterwards. It can be
// queried by numeric id or by symbolic id:
//
//	d, ok := cartridgetype.ByNumericID(1)
//	if ok {
//		fmt.Println(d.SymbolicID) // CARTRIDGE_STD_8
//	}
//
//	d, ok, err := cartridgetype.BySymbolicID("CARTRIDGE_THECART_128M")
//
// A missing entry is not an error. Lookups return false in that case. The
// only error a lookup can return is for an empty symbolic id, which is a
// curated error matching the InvalidArgument pattern.
//
// Numeric ids are permanently bound to their meaning. New types may only be
// appended with previously unused ids.
//
// Descriptor values are copies. Nothing returned by the package can be used
// to change the catalogue.
package cartridgetype
