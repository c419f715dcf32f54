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
	"strings"

	"github.com/jetsetilly/a8carts/curated"
)

// Platform is the hardware family a cartridge type runs on.
type Platform int

// List of valid Platform values. The zero value of the type is not a
// valid platform and is rejected when a registry is built.
const (
	noPlatform Platform = iota
	Unknown
	Atari800
	Atari5200
)

// Platforms is the list of all valid platforms.
var Platforms = []Platform{Unknown, Atari800, Atari5200}

// String returns the symbolic name of the platform.
func (p Platform) String() string {
	switch p {
	case Unknown:
		return "UNKNOWN"
	case Atari800:
		return "ATARI_800"
	case Atari5200:
		return "ATARI_5200"
	}
	return "NONE"
}

// Name returns a name suitable for display.
func (p Platform) Name() string {
	switch p {
	case Unknown:
		return "Unknown"
	case Atari800:
		return "Atari 800"
	case Atari5200:
		return "Atari 5200"
	}
	return ""
}

// Valid returns false for the zero value of Platform and for any value
// outside of the enumeration.
func (p Platform) Valid() bool {
	return p >= Unknown && p <= Atari5200
}

// ParsePlatform returns the Platform with the symbolic name. Case insensitive.
func ParsePlatform(s string) (Platform, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for _, p := range Platforms {
		if p.String() == s {
			return p, nil
		}
	}
	return noPlatform, curated.Errorf(InvalidArgument, curated.Errorf(UnrecognisedPlatform, s))
}

// MarshalText implements the encoding.TextMarshaler interface.
func (p Platform) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (p *Platform) UnmarshalText(text []byte) error {
	v, err := ParsePlatform(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
