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


package modalflag

import (
	"fmt"
	"io"
	"strings"
)

// helpWriter collects the usage text written by the flag package. Help()
// writes it out again with the mode path, the list of sub-modes and any
// additional help text.
type helpWriter struct {
	strings.Builder
}

func (hw *helpWriter) Help(output io.Writer, banner string, subModes []string, additionalHelp string) {
	usage := hw.String()

	// the flag package writes a bare heading when there are no flags
	if usage == "Usage:\n" && len(subModes) == 0 {
		if banner == "" {
			fmt.Fprintln(output, "No help available")
		} else {
			fmt.Fprintf(output, "No help available for %s\n", banner)
		}
		return
	}

	heading, flags, _ := strings.Cut(usage, "\n")
	if banner != "" {
		heading = fmt.Sprintf("%s for %s mode", heading, banner)
	}
	fmt.Fprintln(output, heading)
	io.WriteString(output, flags)

	if len(subModes) > 0 {
		if strings.Contains(flags, "\n") {
			fmt.Fprintln(output)
		}
		fmt.Fprintf(output, "  available sub-modes: %s\n", strings.Join(subModes, ", "))
		fmt.Fprintf(output, "    default: %s\n", subModes[0])
	}

	if additionalHelp != "" {
		fmt.Fprintf(output, "\n%s\n", additionalHelp)
	}
}
