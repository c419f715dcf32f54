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


package export

import (
	"github.com/bradleyjkemp/memviz"
)

// dotRecord is the flattened Record given to memviz. memviz identifies a node
// by kind and address so the fields must all be basic types for them to be
// drawn inline. geometry is shown in the same hex notation as the table.
type dotRecord struct {
	SymbolicID          string
	NumericID           int
	Platform            string
	SizeInKB            int
	BankSize            string
	InitialBankOffset   string
	InitialBankAddress  string
	InitialBankNumber   int
	FlashBlockSize      string
	Description         string
	NumBanks            int
	Flashable           bool
	TheCart             bool
	IncrementalFlashing bool
}

func newDotRecord(rec Record) dotRecord {
	return dotRecord{
		SymbolicID:          rec.SymbolicID,
		NumericID:           rec.NumericID,
		Platform:            rec.Platform.String(),
		SizeInKB:            rec.SizeInKB,
		BankSize:            hex(rec.BankSize),
		InitialBankOffset:   hex(rec.InitialBankOffset),
		InitialBankAddress:  hex(rec.InitialBankAddress),
		InitialBankNumber:   rec.InitialBankNumber,
		FlashBlockSize:      flash(rec.Descriptor),
		Description:         rec.Description,
		NumBanks:            rec.NumBanks,
		Flashable:           rec.Flashable,
		TheCart:             rec.TheCart,
		IncrementalFlashing: rec.IncrementalFlashing,
	}
}

func (w *Writer) dotList(recs []Record) error {
	nodes := make([]dotRecord, len(recs))
	for i := range recs {
		nodes[i] = newDotRecord(recs[i])
	}
	memviz.Map(w.output, &nodes)
	return nil
}

func (w *Writer) dotOne(rec Record) error {
	node := newDotRecord(rec)
	memviz.Map(w.output, &node)
	return nil
}
