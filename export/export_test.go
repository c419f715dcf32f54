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

package export_test

import (
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/jetsetilly/a8carts/cartridgetype"
	"github.com/jetsetilly/a8carts/curated"
	"github.com/jetsetilly/a8carts/export"
	"github.com/jetsetilly/a8carts/test"
)

func theCart128M(t *testing.T) cartridgetype.Descriptor {
	t.Helper()
	d, ok := cartridgetype.ByNumericID(62)
	test.DemandSuccess(t, ok)
	return d
}

func TestParseFormat(t *testing.T) {
	for _, f := range export.Formats {
		v, err := export.ParseFormat(strings.ToUpper(string(f)))
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, v, f)
	}

	_, err := export.ParseFormat("xml")
	test.ExpectSuccess(t, curated.Is(err, export.UnsupportedFormat))

	w, err := export.NewWriter("xml", &test.Writer{})
	test.ExpectSuccess(t, w == nil)
	test.ExpectFailure(t, err)
}

func TestTable(t *testing.T) {
	tw := &test.Writer{}
	w, err := export.NewWriter(export.FormatTable, tw)
	test.DemandSuccess(t, err)

	d, _ := cartridgetype.ByNumericID(1)
	test.ExpectSuccess(t, w.WriteList([]cartridgetype.Descriptor{d, theCart128M(t)}))

	lines := strings.Split(strings.TrimSpace(tw.String()), "\n")
	test.DemandEquality(t, len(lines), 3)
	test.ExpectSuccess(t, strings.HasPrefix(lines[0], "ID"))
	test.ExpectEquality(t, strings.Join(strings.Fields(lines[1]), " "),
		"1 CARTRIDGE_STD_8 ATARI_800 8 0x2000 0x0000 0xa000 0 - Standard 8 KB cartridge")
	test.ExpectEquality(t, strings.Join(strings.Fields(lines[2]), " "),
		"62 CARTRIDGE_THECART_128M ATARI_800 131072 0x2000 0x0000 0xa000 0 0x020000 The!Cart 128 MB cartridge")
}

func TestTableOne(t *testing.T) {
	tw := &test.Writer{}
	w, err := export.NewWriter(export.FormatTable, tw)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, w.WriteOne(theCart128M(t)))
	test.ExpectSuccess(t, tw.Contains("CARTRIDGE_THECART_128M"))
	test.ExpectSuccess(t, tw.Contains("Atari 800"))
	test.ExpectSuccess(t, tw.Contains("16384"))
}

func TestJSON(t *testing.T) {
	tw := &test.Writer{}
	w, err := export.NewWriter(export.FormatJSON, tw)
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, w.WriteOne(theCart128M(t)))

	var m map[string]any
	test.DemandSuccess(t, json.Unmarshal([]byte(tw.String()), &m))
	test.ExpectEquality(t, m["symbolicId"], any("CARTRIDGE_THECART_128M"))
	test.ExpectEquality(t, m["platform"], any("ATARI_800"))
	test.ExpectEquality(t, m["flashBlockSize"], any(float64(0x20000)))
	test.ExpectEquality(t, m["theCart"], any(true))

	// list round trips to descriptors
	tw.Clear()
	all := cartridgetype.All()
	test.DemandSuccess(t, w.WriteList(all))

	var recs []export.Record
	test.DemandSuccess(t, json.Unmarshal([]byte(tw.String()), &recs))
	test.DemandEquality(t, len(recs), len(all))
	for i := range recs {
		test.ExpectEquality(t, recs[i].Descriptor, all[i], all[i].SymbolicID)
	}
}

func TestYAML(t *testing.T) {
	tw := &test.Writer{}
	w, err := export.NewWriter(export.FormatYAML, tw)
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, w.WriteList(cartridgetype.ByPlatform(cartridgetype.Atari5200)))

	var recs []map[string]any
	test.DemandSuccess(t, yaml.Unmarshal([]byte(tw.String()), &recs))
	test.DemandEquality(t, len(recs), 10)
	for _, r := range recs {
		test.ExpectEquality(t, r["platform"], any("ATARI_5200"))
		test.ExpectEquality(t, r["theCart"], any(false))
	}
}

func TestDot(t *testing.T) {
	tw := &test.Writer{}
	w, err := export.NewWriter(export.FormatDot, tw)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, w.WriteOne(theCart128M(t)))
	test.ExpectSuccess(t, tw.Contains("digraph"))
	test.ExpectSuccess(t, tw.Contains("CARTRIDGE_THECART_128M"))
	test.ExpectSuccess(t, tw.Contains("{<f3> SizeInKB | 131072}"))
	test.ExpectSuccess(t, tw.Contains("0x020000"))
	test.ExpectSuccess(t, tw.Contains("ATARI_800"))
	test.ExpectSuccess(t, tw.Contains("{<f13> IncrementalFlashing | true}"))

	// no field is drawn as a link back to its own record
	test.ExpectFailure(t, tw.Contains("-> 1:name"))

	tw.Clear()
	test.ExpectSuccess(t, w.WriteList(cartridgetype.ByPlatform(cartridgetype.Atari5200)))
	test.ExpectSuccess(t, tw.Contains("CARTRIDGE_5200_32"))
	test.ExpectSuccess(t, tw.Contains("CARTRIDGE_5200_40"))
	test.ExpectSuccess(t, tw.Contains(`{<f2> Platform | \"ATARI_5200\"}`))
}
