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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Arguments are given with NewArgs() and parsed with Parse(). Flags are added
// before the call to Parse() in the same way as with the flag package:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	verbose := md.AddBool("log", false, "echo log entries")
//	md.AddSubModes("LIST", "SHOW", "VERSION")
//
//	p, err := md.Parse()
//	...
//
// A mode is a command line argument that puts the program into a different
// mode of operation, with its own flags and arguments. After Parse() the
// Mode() function returns the selected mode. The first sub-mode in the list
// is the default mode and is selected if the next argument is not a
// recognised mode. All sub-mode comparisons are case insensitive.
//
// A mode can have sub-modes of its own. Call NewMode() to begin a new layer,
// add flags and sub-modes as required and call Parse() again. Arguments
// already consumed are not seen again. The Path() function returns the list
// of modes that have been selected so far, separated by a slash.
//
// Help is printed automatically when -help or -h is found and Parse()
// returns ParseHelp.
package modalflag
