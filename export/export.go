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

// Package export writes cartridge type descriptors in one of several
// formats. The table format is meant for people, json and yaml for other
// tools and the dot format is a graphviz view of the descriptor values,
// useful when debugging.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/jetsetilly/a8carts/cartridgetype"
	"github.com/jetsetilly/a8carts/curated"
)

// UnsupportedFormat is the pattern for the curated error returned when a
// format is not recognised.
const UnsupportedFormat = "export: unsupported format: %s"

// Format represents the output format type.
type Format string

// List of valid Format values.
const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatDot   Format = "dot"
)

// Formats is the list of all supported formats.
var Formats = []Format{FormatTable, FormatJSON, FormatYAML, FormatDot}

// ParseFormat returns the Format named by the string. Case insensitive.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, v := range Formats {
		if f == v {
			return f, nil
		}
	}
	return "", curated.Errorf(UnsupportedFormat, s)
}

// Record is a descriptor with the derived properties added. This is the
// shape written by the json, yaml and dot formats.
type Record struct {
	cartridgetype.Descriptor `yaml:",inline"`

	NumBanks            int  `json:"numBanks" yaml:"numBanks"`
	Flashable           bool `json:"flashable" yaml:"flashable"`
	TheCart             bool `json:"theCart" yaml:"theCart"`
	IncrementalFlashing bool `json:"incrementalFlashing" yaml:"incrementalFlashing"`
}

// NewRecord creates a Record from a descriptor.
func NewRecord(d cartridgetype.Descriptor) Record {
	return Record{
		Descriptor:          d,
		NumBanks:            d.NumBanks(),
		Flashable:           d.IsFlashable(),
		TheCart:             cartridgetype.IsTheCart(d),
		IncrementalFlashing: cartridgetype.SupportsIncrementalFlashing(d),
	}
}

// Writer handles serialisation of descriptors to an io.Writer.
type Writer struct {
	format Format
	output io.Writer
}

// NewWriter is the preferred method of initialisation for the Writer type.
func NewWriter(format Format, output io.Writer) (*Writer, error) {
	if _, err := ParseFormat(string(format)); err != nil {
		return nil, err
	}
	return &Writer{
		format: format,
		output: output,
	}, nil
}

// WriteList outputs the list of descriptors.
func (w *Writer) WriteList(ds []cartridgetype.Descriptor) error {
	recs := make([]Record, len(ds))
	for i := range ds {
		recs[i] = NewRecord(ds[i])
	}

	switch w.format {
	case FormatTable:
		return w.tableList(ds)
	case FormatJSON:
		return w.encodeJSON(recs)
	case FormatYAML:
		return w.encodeYAML(recs)
	case FormatDot:
		return w.dotList(recs)
	}

	return curated.Errorf(UnsupportedFormat, w.format)
}

// WriteOne outputs a single descriptor.
func (w *Writer) WriteOne(d cartridgetype.Descriptor) error {
	rec := NewRecord(d)

	switch w.format {
	case FormatTable:
		return w.tableOne(rec)
	case FormatJSON:
		return w.encodeJSON(rec)
	case FormatYAML:
		return w.encodeYAML(rec)
	case FormatDot:
		return w.dotOne(rec)
	}

	return curated.Errorf(UnsupportedFormat, w.format)
}

func (w *Writer) encodeJSON(v any) error {
	enc := json.NewEncoder(w.output)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return curated.Errorf("export: json: %v", err)
	}
	return nil
}

func (w *Writer) encodeYAML(v any) error {
	enc := yaml.NewEncoder(w.output)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return curated.Errorf("export: yaml: %v", err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf("export: yaml: %v", err)
	}
	return nil
}

// hex formats a value for the table output. an address or offset of zero is
// still printed in full
func hex(v int) string {
	if v > 0xffff {
		return fmt.Sprintf("0x%06x", v)
	}
	return fmt.Sprintf("0x%04x", v)
}

// flash formats a flash block size, with a dash for cartridges that are not
// flashable
func flash(d cartridgetype.Descriptor) string {
	if !d.IsFlashable() {
		return "-"
	}
	return hex(d.FlashBlockSize)
}

func (w *Writer) tableList(ds []cartridgetype.Descriptor) error {
	tw := tabwriter.NewWriter(w.output, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSYMBOLIC ID\tPLATFORM\tSIZE (KB)\tBANK\tOFFSET\tADDRESS\tINITIAL\tFLASH\tDESCRIPTION")
	for _, d := range ds {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\t%s\t%s\t%d\t%s\t%s\n",
			d.NumericID, d.SymbolicID, d.Platform, d.SizeInKB,
			hex(d.BankSize), hex(d.InitialBankOffset), hex(d.InitialBankAddress),
			d.InitialBankNumber, flash(d), d.Description)
	}
	return tw.Flush()
}

func (w *Writer) tableOne(rec Record) error {
	tw := tabwriter.NewWriter(w.output, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "numeric id\t%d\n", rec.NumericID)
	fmt.Fprintf(tw, "symbolic id\t%s\n", rec.SymbolicID)
	fmt.Fprintf(tw, "description\t%s\n", rec.Description)
	fmt.Fprintf(tw, "platform\t%s\n", rec.Platform.Name())
	fmt.Fprintf(tw, "size\t%d KB\n", rec.SizeInKB)
	fmt.Fprintf(tw, "bank size\t%s\n", hex(rec.BankSize))
	fmt.Fprintf(tw, "banks\t%d\n", rec.NumBanks)
	fmt.Fprintf(tw, "initial bank offset\t%s\n", hex(rec.InitialBankOffset))
	fmt.Fprintf(tw, "initial bank address\t%s\n", hex(rec.InitialBankAddress))
	fmt.Fprintf(tw, "initial bank number\t%d\n", rec.InitialBankNumber)
	fmt.Fprintf(tw, "flash block size\t%s\n", flash(rec.Descriptor))
	fmt.Fprintf(tw, "the!cart\t%v\n", rec.TheCart)
	fmt.Fprintf(tw, "incremental flashing\t%v\n", rec.IncrementalFlashing)
	return tw.Flush()
}
