package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"boxtrack-backend/config"
	"boxtrack-backend/internal/catalog"
	"boxtrack-backend/internal/model"
	"boxtrack-backend/internal/store"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()

	testDB, err := gorm.Open(sqlite.Open(filepath.Join(dir, "test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, testDB.AutoMigrate(&model.ProductionOrder{}))

	catalogPath := filepath.Join(dir, "urun_katalog.xlsx")
	writeTestCatalog(t, catalogPath)

	cfg := &config.Config{
		Server: config.ServerConfig{
			Port:            0,
			RateLimitPerSec: 1000,
			RateLimitBurst:  1000,
		},
		Catalog: config.CatalogConfig{
			Path:      catalogPath,
			SheetName: "Ürün Kataloğu",
			CacheTTL:  time.Minute,
		},
		Export: config.ExportConfig{
			CompanyName: "KUTU DÜNYASI",
			PlansDir:    filepath.Join(dir, "planlar"),
		},
	}

	return NewRouter(store.NewGormStore(testDB), catalog.NewService(&cfg.Catalog), cfg)
}

func writeTestCatalog(t *testing.T, path string) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Ürün Kataloğu"
	require.NoError(t, f.SetSheetName("Sheet1", sheet))

	rows := [][]any{
		{"Ürün Adı*", "Bıçak Kodu*", "Bıçak Ebadı En (mm)*", "Bıçak Ebadı Boy (mm)*"},
		{"Kutu A", "D123", 100, 200},
		{"Kutu B", "", 330, 480},
		{"Başka", "D999", 500, 700},
	}
	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cellRef, &row))
	}
	require.NoError(t, f.SaveAs(path))
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
