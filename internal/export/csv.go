package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/julianstephens/daystreak/internal/models"
)

// ToCSV writes the record collection to path, in chronological order.
func ToCSV(records []models.DayRecord, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	// Header
	if err := w.Write([]string{"Day", "Status", "Logged At"}); err != nil {
		return err
	}

	for _, rec := range records {
		row := []string{
			rec.Day,
			string(rec.Status),
			rec.UpdatedAt.UTC().Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}
