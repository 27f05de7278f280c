package plan

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"boxtrack-backend/internal/model"
)

var (
	unsafeChars = regexp.MustCompile(`[^\p{L}\p{N}_\s-]`)
	separators  = regexp.MustCompile(`[-\s]+`)
)

// Snapshot is a saved production plan: a named selection of orders frozen at
// a point in time.
type Snapshot struct {
	PlanName string                  `json:"plan_adi"`
	SavedAt  string                  `json:"tarih"`
	Rows     []model.PlanningSummary `json:"veriler"`
}

// Save writes the plan as a timestamped JSON file under dir, creating the
// directory if needed, and returns the written path. The plan name is
// sanitized for use in the file name.
func Save(dir, name string, rows []model.PlanningSummary) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create plans dir: %w", err)
	}

	now := time.Now()
	snapshot := Snapshot{
		PlanName: name,
		SavedAt:  now.Format("02.01.2006 15:04:05"),
		Rows:     rows,
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode plan: %w", err)
	}

	safeName := unsafeChars.ReplaceAllString(name, "")
	safeName = separators.ReplaceAllString(safeName, "_")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.json", safeName, now.Format("20060102_150405")))

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write plan file: %w", err)
	}
	return path, nil
}
