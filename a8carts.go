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

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/a8carts/cartridgetype"
	"github.com/jetsetilly/a8carts/curated"
	"github.com/jetsetilly/a8carts/export"
	"github.com/jetsetilly/a8carts/logger"
	"github.com/jetsetilly/a8carts/modalflag"
	"github.com/jetsetilly/a8carts/prefs"
	"github.com/jetsetilly/a8carts/version"
)

// exit values
const (
	exitOK         = 0
	exitParseError = 10
	exitModeError  = 20
)

// preference keys that can be given with the -prefs flag
const (
	prefExportFormat = "export.format"
	prefListFlash    = "list.flash"
)

func main() {
	os.Exit(launch(os.Stdout, os.Args[1:]))
}

// launch is separate from main() so that it can be tested. returns the value
// to use with os.Exit()
func launch(output io.Writer, args []string) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()

	echo := md.AddBool("log", false, "echo log entries to stderr")
	prefsString := md.AddString("prefs", "", "preference overrides (eg. \"export.format::yaml\")")
	md.AddSubModes("LIST", "SHOW", "PLATFORMS", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	if *echo {
		logger.SetEcho(os.Stderr)
		defer logger.SetEcho(nil)
	}

	prefs.PushCommandLineStack(*prefsString)
	defer func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "prefs", "unused preferences: %s", unused)
		}
	}()

	switch md.Mode() {
	case "LIST":
		err = list(md)

	case "SHOW":
		err = show(md)

	case "PLATFORMS":
		err = platforms(md)

	case "VERSION":
		fmt.Fprintln(md.Output, version.String())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		if curated.Has(err, export.UnsupportedFormat) {
			fmt.Fprintf(output, "  supported formats: %s\n", strings.Join(formatNames(), ", "))
		}
		return exitModeError
	}

	return exitOK
}

// formatFlag adds the -format flag to the current mode. the default can be
// changed with the export.format preference
func formatFlag(md *modalflag.Modes) *string {
	def := string(export.FormatTable)
	if ok, v := prefs.GetCommandLineString(prefExportFormat); ok {
		def = v
	}
	return md.AddString("format", def, fmt.Sprintf("output format (%s)", strings.Join(formatNames(), ", ")))
}

func formatNames() []string {
	n := make([]string, len(export.Formats))
	for i, f := range export.Formats {
		n[i] = string(f)
	}
	return n
}

func newWriter(md *modalflag.Modes, format string) (*export.Writer, error) {
	f, err := export.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	return export.NewWriter(f, md.Output)
}

func list(md *modalflag.Modes) error {
	md.NewMode()

	format := formatFlag(md)
	platform := md.AddString("platform", "", "only list cartridge types for platform (UNKNOWN, ATARI_800, ATARI_5200)")

	flashDefault := false
	if ok, v := prefs.GetCommandLineBool(prefListFlash); ok {
		flashDefault = v
	}
	flashOnly := md.AddBool("flash", flashDefault, "only list flashable cartridge types")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("no additional arguments required for %s mode", md)
	}

	var ds []cartridgetype.Descriptor
	if *platform == "" {
		ds = cartridgetype.All()
	} else {
		pl, err := cartridgetype.ParsePlatform(*platform)
		if err != nil {
			return err
		}
		ds = cartridgetype.ByPlatform(pl)
	}

	if *flashOnly {
		n := ds[:0]
		for _, d := range ds {
			if d.IsFlashable() {
				n = append(n, d)
			}
		}
		ds = n
	}

	w, err := newWriter(md, *format)
	if err != nil {
		return err
	}

	return w.WriteList(ds)
}

func show(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("flags must be given before the cartridge type, which is\neither a numeric id or a symbolic id (eg. 62 or CARTRIDGE_THECART_128M)")

	format := formatFlag(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("cartridge type required for %s mode", md)
	case 1:
		d, ok, err := cartridgetype.Lookup(md.GetArg(0))
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("unknown cartridge type: %s", md.GetArg(0))
		}

		w, err := newWriter(md, *format)
		if err != nil {
			return err
		}

		return w.WriteOne(d)
	default:
		for _, a := range md.RemainingArgs()[1:] {
			if strings.HasPrefix(a, "-") {
				return fmt.Errorf("flag %s must be given before the cartridge type", a)
			}
		}
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

func platforms(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	for _, pl := range cartridgetype.Platforms {
		fmt.Fprintf(md.Output, "%-12s %-12s %d\n", pl, pl.Name(), len(cartridgetype.ByPlatform(pl)))
	}

	return nil
}
