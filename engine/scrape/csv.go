package scrape

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
)

// csvHeader is the column layout downstream spreadsheets expect. Field names
// are fixed; do not reorder.
var csvHeader = []string{
	"Source", "Thread_URL", "Thread_Title", "Comment_ID", "Comment_Author",
	"Comment_Date", "Brand", "Reason", "Tariff", "Comment_Text",
}

// WriteCSV writes records to path, overwriting any existing file. An empty
// record set logs a warning and leaves the file untouched.
func WriteCSV(records []Record, path string) error {
	if len(records) == 0 {
		log.Printf("warning: no data to save")
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, rec := range records {
		row := []string{
			string(rec.Source),
			rec.ThreadURL,
			rec.ThreadTitle,
			rec.CommentID,
			rec.Author,
			rec.CapturedAt.Format("2006-01-02 15:04:05"),
			rec.Brand,
			rec.Reason,
			rec.Tariff,
			rec.Text,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}

	log.Printf("data saved to %s", path)
	return nil
}
