package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"punchcard/internal/punch"
)

type jsonExport struct {
	ExportedAt string      `json:"exported_at"`
	Count      int         `json:"count"`
	Sessions   []jsonEntry `json:"sessions"`
}

type jsonEntry struct {
	Type     string   `json:"type"`
	In       string   `json:"in"`
	Out      string   `json:"out,omitempty"`
	Hours    *float64 `json:"hours,omitempty"`
	Duration string   `json:"duration,omitempty"`
}

func ToJSON(sessions []punch.Session, path string) error {
	export := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Count:      len(sessions),
	}

	for _, s := range sessions {
		entry := jsonEntry{
			Type: s.Kind,
			In:   s.Start.Local().Format(time.RFC3339),
		}
		if s.End != nil {
			entry.Out = s.End.Local().Format(time.RFC3339)
		}
		if s.Hours != nil {
			entry.Hours = s.Hours
			entry.Duration = punch.FormatHours(*s.Hours)
		}
		export.Sessions = append(export.Sessions, entry)
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
