package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"punchcard/internal/punch"
)

func ToCSV(sessions []punch.Session, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	// Header
	if err := w.Write([]string{"Type", "In", "Out", "Hours", "Duration"}); err != nil {
		return err
	}

	for _, s := range sessions {
		outStr, hoursStr, durStr := "", "", ""
		if s.End != nil {
			outStr = s.End.Local().Format(time.RFC3339)
		}
		if s.Hours != nil {
			hoursStr = fmt.Sprintf("%.4f", *s.Hours)
			durStr = punch.FormatHours(*s.Hours)
		}

		row := []string{
			s.Kind,
			s.Start.Local().Format(time.RFC3339),
			outStr,
			hoursStr,
			durStr,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}
