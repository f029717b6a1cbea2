package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"fieldsight-backend/internal/listing"
)

type row struct {
	Name   string
	Amount float64
	Date   time.Time
}

func testCols() []listing.Column[row] {
	return []listing.Column[row]{
		{Key: "name", Label: "Customer Name", Kind: listing.KindText, Value: func(r row) any { return r.Name }},
		{Key: "amount", Label: "Amount", Kind: listing.KindCurrency, Value: func(r row) any { return r.Amount }},
		{Key: "date", Label: "Date", Kind: listing.KindDate, Value: func(r row) any { return r.Date }},
	}
}

func TestWriteXLSX(t *testing.T) {
	rows := []row{
		{Name: "Ravi Kumar", Amount: 1234.5, Date: time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)},
		{Name: "Anita Sharma", Amount: 900, Date: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)},
	}

	var buf bytes.Buffer
	if err := WriteXLSX(&buf, "Reports", testCols(), rows); err != nil {
		t.Fatalf("WriteXLSX: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("workbook does not open: %v", err)
	}
	defer f.Close()

	if got := f.GetSheetList(); len(got) != 1 || got[0] != "Reports" {
		t.Fatalf("sheets = %v, want only Reports", got)
	}

	// header row carries the column labels
	for i, want := range []string{"Customer Name", "Amount", "Date"} {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		v, err := f.GetCellValue("Reports", cell)
		if err != nil {
			t.Fatalf("GetCellValue %s: %v", cell, err)
		}
		if v != want {
			t.Fatalf("header %s = %q, want %q", cell, v, want)
		}
	}

	// data rows pass through the column formatters
	checks := map[string]string{
		"A2": "Ravi Kumar",
		"B2": "1234.50",
		"C2": "09/03/2025",
		"A3": "Anita Sharma",
		"B3": "900.00",
		"C3": "15/06/2025",
	}
	for cell, want := range checks {
		v, _ := f.GetCellValue("Reports", cell)
		if v != want {
			t.Fatalf("%s = %q, want %q", cell, v, want)
		}
	}
}

func TestWriteXLSX_NoRowsStillWritesHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, "Reports", testCols(), nil); err != nil {
		t.Fatalf("WriteXLSX: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("workbook does not open: %v", err)
	}
	defer f.Close()

	v, _ := f.GetCellValue("Reports", "A1")
	if v != "Customer Name" {
		t.Fatalf("A1 = %q", v)
	}
	v, _ = f.GetCellValue("Reports", "A2")
	if v != "" {
		t.Fatalf("A2 should be empty, got %q", v)
	}
}
