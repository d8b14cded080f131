package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/daystreak/internal/models"
)

func testRecords() []models.DayRecord {
	logged := time.Date(2026, time.August, 30, 9, 0, 0, 0, time.UTC)
	return []models.DayRecord{
		{ID: "a", Day: "2026-08-28", Status: models.StatusZero, UpdatedAt: logged},
		{ID: "b", Day: "2026-08-29", Status: models.StatusReset, UpdatedAt: logged},
		{ID: "c", Day: "2026-08-30", Status: models.StatusZero, UpdatedAt: logged},
	}
}

func TestToJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.json")

	if err := ToJSON(testRecords(), path); err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read export: %v", err)
	}

	var out jsonExport
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}

	if out.Count != 3 {
		t.Errorf("expected count 3, got %d", out.Count)
	}
	if len(out.Records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(out.Records))
	}
	if out.Records[0].Day != "2026-08-28" || out.Records[0].Status != "zero" {
		t.Errorf("unexpected first record: %+v", out.Records[0])
	}
	if out.Records[1].Status != "reset" {
		t.Errorf("expected reset for the second record, got %q", out.Records[1].Status)
	}
}

func TestToCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.csv")

	if err := ToCSV(testRecords(), path); err != nil {
		t.Fatalf("ToCSV failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open export: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("export is not valid CSV: %v", err)
	}

	if len(rows) != 4 { // header + 3 records
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}
	if rows[0][0] != "Day" || rows[0][1] != "Status" {
		t.Errorf("unexpected header: %v", rows[0])
	}
	if rows[1][0] != "2026-08-28" || rows[1][1] != "zero" {
		t.Errorf("unexpected first record row: %v", rows[1])
	}
}

func TestToJSON_EmptyCollection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.json")

	if err := ToJSON(nil, path); err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read export: %v", err)
	}

	var out jsonExport
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if out.Count != 0 || len(out.Records) != 0 {
		t.Errorf("expected an empty export, got %+v", out)
	}
}
