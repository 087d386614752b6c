// Copyright Martin Halsall, 2026. All rights reserved.

package invoice

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/mhalsall/tradeinvoice/pkg/types"
)

func TestAppendOrderCSV(t *testing.T) {
	csvPath := filepath.Join(t.TempDir(), "out.csv")

	order := &types.Order{
		Vendor: "Screwfix",
		Date:   time.Date(2023, time.March, 15, 0, 0, 0, 0, time.UTC),
		Items: []types.Item{
			{Name: "Claw Hammer", Units: 2, UnitCost: 9.99, Total: 19.98},
			{Name: "Masking Tape 50m", Units: 1, UnitCost: 3.2, Total: 3.2},
		},
	}

	if err := AppendOrderCSV(order, csvPath); err != nil {
		t.Fatalf("AppendOrderCSV returned error: %v", err)
	}

	rows := readCSV(t, csvPath)
	want := [][]string{
		{"Screwfix", "", "15/03/2023", "Claw Hammer", "2", "9.99"},
		{"Screwfix", "", "15/03/2023", "Masking Tape 50m", "1", "3.2"},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("rows = %v, want %v", rows, want)
	}
}

func TestAppendOrderCSVAppends(t *testing.T) {
	csvPath := filepath.Join(t.TempDir(), "out.csv")

	order := &types.Order{
		Vendor: "Toolstation",
		Date:   time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC),
		Items:  []types.Item{{Name: "Screws Box", Units: 10, UnitCost: 3.49}},
	}

	if err := AppendOrderCSV(order, csvPath); err != nil {
		t.Fatal(err)
	}
	if err := AppendOrderCSV(order, csvPath); err != nil {
		t.Fatal(err)
	}

	rows := readCSV(t, csvPath)
	if len(rows) != 2 {
		t.Errorf("got %d rows after two appends, want 2", len(rows))
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	return rows
}
