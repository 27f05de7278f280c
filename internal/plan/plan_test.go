package plan

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boxtrack-backend/internal/model"
)

func TestSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "planlar")

	rows := []model.PlanningSummary{
		{ID: 1, CustomerName: "Acme", ProductName: "Kutu A", SheetCount: "100"},
		{ID: 2, CustomerName: "Globex", ProductName: "Kutu B"},
	}

	path, err := Save(dir, "Eylül Planı / 1. Hafta", rows)
	require.NoError(t, err)

	base := filepath.Base(path)
	assert.Regexp(t, `^Eylül_Planı_1_Hafta_\d{8}_\d{6}\.json$`, base)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got Snapshot
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "Eylül Planı / 1. Hafta", got.PlanName)
	assert.NotEmpty(t, got.SavedAt)
	assert.Equal(t, rows, got.Rows)
}
