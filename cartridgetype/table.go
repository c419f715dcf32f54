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

// table returns the literal list of cartridge types. Transcribed from the
// atari800 emulator (src/cartridge_info.h, DOC/cart.txt). Initial bank
// details follow ResetCartState() in src/cartridge.c of the same project.
//
// Columns:
//
//	symbolic id, numeric id, platform, size (KB), bank size,
//	initial bank offset, initial bank address, initial bank number,
//	flash block size, description
//
// Initial bank addresses of 0x8000 and 0x9000 are not auto-startable.
func table() []Descriptor {
	return []Descriptor{
		{"UNKNOWN", 0, Unknown, 0, 0x0000, 0x0000, 0x0000, 0, 0, "Unknown cartridge type"},
		{"CARTRIDGE_STD_8", 1, Atari800, 8, 0x2000, 0x0000, 0xa000, 0, 0, "Standard 8 KB cartridge"},
		{"CARTRIDGE_STD_16", 2, Atari800, 16, 0x4000, 0x0000, 0x8000, 0, 0, "Standard 16 KB cartridge"},
		{"CARTRIDGE_OSS_034M_16", 3, Atari800, 16, 0x1000, 0x3000, 0xb000, 1, 0, "OSS two chip 16 KB cartridge (034M)"},
		{"CARTRIDGE_5200_32", 4, Atari5200, 32, 0x8000, 0x0000, 0x4000, 0, 0, "Standard 32 KB 5200 cartridge"},
		{"CARTRIDGE_DB_32", 5, Atari800, 32, 0x2000, 0x6000, 0xa000, 0, 0, "DB 32 KB cartridge"},
		{"CARTRIDGE_5200_EE_16", 6, Atari5200, 16, 0x4000, 0x0000, 0x4000, 0, 0, "Two chip 16 KB 5200 cartridge"},
		{"CARTRIDGE_5200_40", 7, Atari5200, 40, 0x2000, 0x8000, 0xa000, 0, 0, "Bounty Bob 40 KB 5200 cartridge"},
		{"CARTRIDGE_WILL_64", 8, Atari800, 64, 0x2000, 0x0000, 0xa000, 0, 0, "64 KB Williams cartridge"},
		{"CARTRIDGE_EXP_64", 9, Atari800, 64, 0x2000, 0x0000, 0xa000, 0, 0, "Express 64 KB cartridge"},
		{"CARTRIDGE_DIAMOND_64", 10, Atari800, 64, 0x2000, 0x0000, 0xa000, 0, 0, "Diamond 64 KB cartridge"},
		{"CARTRIDGE_SDX_64", 11, Atari800, 64, 0x2000, 0x0000, 0xa000, 0, 0, "SpartaDOS X 64 KB cartridge"},
		{"CARTRIDGE_XEGS_32", 12, Atari800, 32, 0x2000, 0x6000, 0xa000, 0, 0, "XEGS 32 KB cartridge"},
		{"CARTRIDGE_XEGS_64", 13, Atari800, 64, 0x2000, 0xe000, 0xa000, 0, 0, "XEGS 64 KB cartridge (banks 0-7)"},
		{"CARTRIDGE_XEGS_128", 14, Atari800, 128, 0x2000, 0x1e000, 0xa000, 0, 0, "XEGS 128 KB cartridge"},
		{"CARTRIDGE_OSS_M091_16", 15, Atari800, 16, 0x1000, 0x0000, 0xb000, 0, 0, "OSS one chip 16 KB cartridge"},
		{"CARTRIDGE_5200_NS_16", 16, Atari5200, 16, 0x4000, 0x0000, 0x8000, 0, 0, "One chip 16 KB 5200 cartridge"},
		{"CARTRIDGE_ATRAX_DEC_128", 17, Atari800, 128, 0x2000, 0x0000, 0xa000, 0, 0, "Decoded Atrax 128 KB cartridge"},
		{"CARTRIDGE_BBSB_40", 18, Atari800, 40, 0x2000, 0x8000, 0xa000, 0, 0, "Bounty Bob 40 KB cartridge"},
		{"CARTRIDGE_5200_8", 19, Atari5200, 8, 0x2000, 0x0000, 0xa000, 0, 0, "Standard 8 KB 5200 cartridge"},
		{"CARTRIDGE_5200_4", 20, Atari5200, 4, 0x1000, 0x0000, 0xa000, 0, 0, "Standard 4 KB 5200 cartridge"},
		// autostart only works with Atari 800 OS-A or OS-B
		{"CARTRIDGE_RIGHT_8", 21, Atari800, 8, 0x2000, 0x0000, 0x8000, 0, 0, "Right slot 8 KB cartridge"},
		{"CARTRIDGE_WILL_32", 22, Atari800, 32, 0x2000, 0x0000, 0xa000, 0, 0, "32 KB Williams cartridge"},
		{"CARTRIDGE_XEGS_256", 23, Atari800, 256, 0x2000, 0x3e000, 0xa000, 0, 0, "XEGS 256 KB cartridge"},
		{"CARTRIDGE_XEGS_512", 24, Atari800, 512, 0x2000, 0x7e000, 0xa000, 0, 0, "XEGS 512 KB cartridge"},
		{"CARTRIDGE_XEGS_1024", 25, Atari800, 1024, 0x2000, 0xfe000, 0xa000, 0, 0, "XEGS 1 MB cartridge"},
		{"CARTRIDGE_MEGA_16", 26, Atari800, 16, 0x4000, 0x0000, 0x8000, 0, 0, "MegaCart 16 KB cartridge"},
		{"CARTRIDGE_MEGA_32", 27, Atari800, 32, 0x4000, 0x0000, 0x8000, 0, 0, "MegaCart 32 KB cartridge"},
		{"CARTRIDGE_MEGA_64", 28, Atari800, 64, 0x4000, 0x0000, 0x8000, 0, 0, "MegaCart 64 KB cartridge"},
		{"CARTRIDGE_MEGA_128", 29, Atari800, 128, 0x4000, 0x0000, 0x8000, 0, 0, "MegaCart 128 KB cartridge"},
		{"CARTRIDGE_MEGA_256", 30, Atari800, 256, 0x4000, 0x0000, 0x8000, 0, 0, "MegaCart 256 KB cartridge"},
		{"CARTRIDGE_MEGA_512", 31, Atari800, 512, 0x4000, 0x0000, 0x8000, 0, 0, "MegaCart 512 KB cartridge"},
		{"CARTRIDGE_MEGA_1024", 32, Atari800, 1024, 0x4000, 0x0000, 0x8000, 0, 0, "MegaCart 1 MB cartridge"},
		{"CARTRIDGE_SWXEGS_32", 33, Atari800, 32, 0x2000, 0x6000, 0xa000, 0, 0, "Switchable XEGS 32 KB cartridge"},
		{"CARTRIDGE_SWXEGS_64", 34, Atari800, 64, 0x2000, 0xe000, 0xa000, 0, 0, "Switchable XEGS 64 KB cartridge"},
		{"CARTRIDGE_SWXEGS_128", 35, Atari800, 128, 0x2000, 0x1e000, 0xa000, 0, 0, "Switchable XEGS 128 KB cartridge"},
		{"CARTRIDGE_SWXEGS_256", 36, Atari800, 256, 0x2000, 0x3e000, 0xa000, 0, 0, "Switchable XEGS 256 KB cartridge"},
		{"CARTRIDGE_SWXEGS_512", 37, Atari800, 512, 0x2000, 0x7e000, 0xa000, 0, 0, "Switchable XEGS 512 KB cartridge"},
		{"CARTRIDGE_SWXEGS_1024", 38, Atari800, 1024, 0x2000, 0xfe000, 0xa000, 0, 0, "Switchable XEGS 1 MB cartridge"},
		{"CARTRIDGE_PHOENIX_8", 39, Atari800, 8, 0x2000, 0x0000, 0xa000, 0, 0, "Phoenix 8 KB cartridge"},
		{"CARTRIDGE_BLIZZARD_16", 40, Atari800, 16, 0x4000, 0x0000, 0x8000, 0, 0, "Blizzard 16 KB cartridge"},
		{"CARTRIDGE_ATMAX_128", 41, Atari800, 128, 0x2000, 0x0000, 0xa000, 0, 0x10000, "Atarimax 128 KB Flash cartridge"},
		// initial bank is the last 8k bank
		{"CARTRIDGE_ATMAX_1024", 42, Atari800, 1024, 0x2000, 0xfe000, 0xa000, 127, 0x10000, "Atarimax 1 MB Flash cartridge (old)"},
		{"CARTRIDGE_SDX_128", 43, Atari800, 128, 0x2000, 0x0000, 0xa000, 0, 0, "SpartaDOS X 128 KB cartridge"},
		{"CARTRIDGE_OSS_8", 44, Atari800, 8, 0x1000, 0x0000, 0xb000, 0, 0, "OSS 8 KB cartridge"},
		{"CARTRIDGE_OSS_043M_16", 45, Atari800, 16, 0x1000, 0x3000, 0xb000, 0, 0, "OSS two chip 16 KB cartridge (043M)"},
		{"CARTRIDGE_BLIZZARD_4", 46, Atari800, 4, 0x1000, 0x0000, 0xa000, 0, 0, "Blizzard 4 KB cartridge"},
		{"CARTRIDGE_AST_32", 47, Atari800, 32, 0x0100, 0x0000, 0xa000, 0, 0, "AST 32 KB cartridge"},
		// interleaved address and data bits, otherwise the same as type 11
		{"CARTRIDGE_ATRAX_SDX_64", 48, Atari800, 64, 0x2000, 0x0000, 0xa000, 0, 0, "Atrax SDX 64 KB cartridge"},
		// interleaved address and data bits, otherwise the same as type 43
		{"CARTRIDGE_ATRAX_SDX_128", 49, Atari800, 128, 0x2000, 0x0000, 0xa000, 0, 0, "Atrax SDX 128 KB cartridge"},
		{"CARTRIDGE_TURBOSOFT_64", 50, Atari800, 64, 0x2000, 0x0000, 0xa000, 0, 0, "Turbosoft 64 KB cartridge"},
		{"CARTRIDGE_TURBOSOFT_128", 51, Atari800, 128, 0x2000, 0x0000, 0xa000, 0, 0, "Turbosoft 128 KB cartridge"},
		{"CARTRIDGE_ULTRACART_32", 52, Atari800, 32, 0x2000, 0x0000, 0xa000, 0, 0, "Ultracart 32 KB cartridge"},
		{"CARTRIDGE_LOW_BANK_8", 53, Atari800, 8, 0x2000, 0x0000, 0x8000, 0, 0, "Low bank 8 KB cartridge"},
		{"CARTRIDGE_SIC_128", 54, Atari800, 128, 0x2000, 0x2000, 0xa000, 0, 0, "SIC! 128 KB cartridge"},
		{"CARTRIDGE_SIC_256", 55, Atari800, 256, 0x2000, 0x2000, 0xa000, 0, 0, "SIC! 256 KB cartridge"},
		{"CARTRIDGE_SIC_512", 56, Atari800, 512, 0x2000, 0x2000, 0xa000, 0, 0, "SIC! 512 KB cartridge"},
		{"CARTRIDGE_STD_2", 57, Atari800, 2, 0x0800, 0x0000, 0xb800, 0, 0, "Standard 2 KB cartridge"},
		{"CARTRIDGE_STD_4", 58, Atari800, 4, 0x1000, 0x0000, 0xb000, 0, 0, "Standard 4 KB cartridge"},
		// autostart only works with Atari 800 OS-A or OS-B
		{"CARTRIDGE_RIGHT_4", 59, Atari800, 4, 0x1000, 0x0000, 0x9000, 0, 0, "Right slot 4 KB cartridge"},
		{"CARTRIDGE_BLIZZARD_32", 60, Atari800, 32, 0x2000, 0x0000, 0xa000, 0, 0, "Blizzard 32 KB cartridge"},
		{"CARTRIDGE_MEGAMAX_2048", 61, Atari800, 2048, 0x4000, 0x0000, 0x8000, 0, 0, "MegaMax 2 MB cartridge"},
		{"CARTRIDGE_THECART_128M", 62, Atari800, 131072, 0x2000, 0x0000, 0xa000, 0, 0x20000, "The!Cart 128 MB cartridge"},
		// 16k banks starting at bank 254
		{"CARTRIDGE_MEGA_4096", 63, Atari800, 4096, 0x4000, 0x3f8000, 0x8000, 254, 0x10000, "Flash MegaCart 4 MB cartridge"},
		{"CARTRIDGE_MEGA_2048", 64, Atari800, 2048, 0x4000, 0x0000, 0x8000, 0, 0x10000, "MegaCart 2 MB cartridge"},
		{"CARTRIDGE_THECART_32M", 65, Atari800, 32768, 0x2000, 0x0000, 0xa000, 0, 0x20000, "The!Cart 32 MB cartridge"},
		{"CARTRIDGE_THECART_64M", 66, Atari800, 65536, 0x2000, 0x0000, 0xa000, 0, 0x20000, "The!Cart 64 MB cartridge"},
		{"CARTRIDGE_XEGS_8F_64", 67, Atari800, 64, 0x2000, 0xe000, 0xa000, 0, 0, "XEGS 64 KB cartridge (banks 8-15)"},
		// interleaved address and data bits, otherwise the same as type 17
		{"CARTRIDGE_ATRAX_128", 68, Atari800, 128, 0x2000, 0x0000, 0xa000, 0, 0, "Atrax 128 KB cartridge"},
		{"CARTRIDGE_ADAWLIAH_32", 69, Atari800, 32, 0x2000, 0x0000, 0xa000, 0, 0, "aDawliah 32 KB cartridge"},
		{"CARTRIDGE_ADAWLIAH_64", 70, Atari800, 64, 0x2000, 0x0000, 0xa000, 0, 0, "aDawliah 64 KB cartridge"},
		{"CARTRIDGE_5200_SUPER_64", 71, Atari5200, 64, 0x8000, 0x8000, 0x4000, 1, 0, "Super Cart 64 KB 5200 cartridge"},
		{"CARTRIDGE_5200_SUPER_128", 72, Atari5200, 128, 0x8000, 0x18000, 0x4000, 3, 0, "Super Cart 128 KB 5200 cartridge"},
		{"CARTRIDGE_5200_SUPER_256", 73, Atari5200, 256, 0x8000, 0x38000, 0x4000, 7, 0, "Super Cart 256 KB 5200 cartridge"},
		{"CARTRIDGE_5200_SUPER_512", 74, Atari5200, 512, 0x8000, 0x78000, 0x4000, 15, 0, "Super Cart 512 KB 5200 cartridge"},
		{"CARTRIDGE_ATMAX_NEW_1024", 75, Atari800, 1024, 0x2000, 0x0000, 0xa000, 0, 0x10000, "Atarimax 1 MB Flash cartridge (new)"},
	}
}
