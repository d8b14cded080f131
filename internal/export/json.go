package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/julianstephens/daystreak/internal/models"
)

type jsonExport struct {
	ExportedAt string    `json:"exported_at"`
	Count      int       `json:"count"`
	Records    []jsonDay `json:"records"`
}

type jsonDay struct {
	Day      string `json:"day"`
	Status   string `json:"status"`
	LoggedAt string `json:"logged_at"`
}

// ToJSON writes the record collection to path, in chronological order.
func ToJSON(records []models.DayRecord, path string) error {
	out := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Count:      len(records),
	}

	for _, rec := range records {
		out.Records = append(out.Records, jsonDay{
			Day:      rec.Day,
			Status:   string(rec.Status),
			LoggedAt: rec.UpdatedAt.UTC().Format(time.RFC3339),
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
