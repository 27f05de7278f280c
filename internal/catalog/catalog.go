package catalog

import (
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/patrickmn/go-cache"
	"github.com/xuri/excelize/v2"

	"boxtrack-backend/config"
)

// DieCodeNotFound is returned for catalog rows whose die code cell is blank.
const DieCodeNotFound = "Bıçak Kodu Bulunamadı"

// Column headers of the product master file.
const (
	colProductName = "Ürün Adı*"
	colDieCode     = "Bıçak Kodu*"
	colDieWidth    = "Bıçak Ebadı En (mm)*"
	colDieHeight   = "Bıçak Ebadı Boy (mm)*"
)

// searchResultLimit caps the number of autocomplete suggestions.
const searchResultLimit = 10

// Entry is a single catalog row. Dimensions are carried through as written
// in the master file, without unit conversion.
type Entry struct {
	ProductName string `json:"product_name"`
	DieCode     string `json:"die_code"`
	DieWidth    string `json:"die_width"`
	DieHeight   string `json:"die_height"`
}

// Service answers lookups against the externally maintained product master.
// The file is re-read whenever it changes on disk; a parse result is reused
// only while the file's mtime and size are unchanged, so queries always
// reflect the latest file without paying the parse cost on every call.
type Service struct {
	path      string
	sheetName string
	cache     *cache.Cache
	ttl       time.Duration
}

type cachedCatalog struct {
	modTime time.Time
	size    int64
	entries []Entry
}

// NewService creates a catalog service for the configured master file.
func NewService(cfg *config.CatalogConfig) *Service {
	return &Service{
		path:      cfg.Path,
		sheetName: cfg.SheetName,
		cache:     cache.New(cfg.CacheTTL, 2*cfg.CacheTTL),
		ttl:       cfg.CacheTTL,
	}
}

// SearchNames returns up to 10 product names containing the query,
// case-insensitively, in catalog order. Queries shorter than two characters
// return no matches.
func (s *Service) SearchNames(query string) []string {
	out := make([]string, 0, searchResultLimit)

	q := strings.TrimSpace(query)
	if utf8.RuneCountInString(q) < 2 {
		return out
	}
	q = strings.ToLower(q)

	seen := make(map[string]bool)
	for _, e := range s.entries() {
		if seen[e.ProductName] {
			continue
		}
		if strings.Contains(strings.ToLower(e.ProductName), q) {
			seen[e.ProductName] = true
			out = append(out, e.ProductName)
			if len(out) == searchResultLimit {
				break
			}
		}
	}
	return out
}

// ListNames returns all distinct product names, sorted ascending.
func (s *Service) ListNames() []string {
	entries := s.entries()
	seen := make(map[string]bool, len(entries))
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if !seen[e.ProductName] {
			seen[e.ProductName] = true
			out = append(out, e.ProductName)
		}
	}
	sort.Strings(out)
	return out
}

// Lookup finds the catalog entry whose product name exactly matches the
// trimmed input. A row with a blank die code yields the DieCodeNotFound
// sentinel. The second return value is false when no row matches or the
// catalog cannot be read.
func (s *Service) Lookup(name string) (Entry, bool) {
	wanted := strings.TrimSpace(name)
	if wanted == "" {
		return Entry{}, false
	}

	for _, e := range s.entries() {
		if e.ProductName == wanted {
			if e.DieCode == "" {
				e.DieCode = DieCodeNotFound
			}
			return e, true
		}
	}
	return Entry{}, false
}

// entries returns the current catalog rows, degrading to an empty catalog on
// any load error so that lookups stay available.
func (s *Service) entries() []Entry {
	entries, err := s.load()
	if err != nil {
		log.Printf("catalog load failed, degrading to empty catalog: %v", err)
		return nil
	}
	return entries
}

func (s *Service) load() ([]Entry, error) {
	fi, err := os.Stat(s.path)
	if err != nil {
		return nil, fmt.Errorf("stat catalog file: %w", err)
	}

	if v, ok := s.cache.Get(s.path); ok {
		cached := v.(cachedCatalog)
		if cached.modTime.Equal(fi.ModTime()) && cached.size == fi.Size() {
			return cached.entries, nil
		}
	}

	entries, err := s.parse()
	if err != nil {
		return nil, err
	}

	s.cache.Set(s.path, cachedCatalog{modTime: fi.ModTime(), size: fi.Size(), entries: entries}, s.ttl)
	log.Printf("catalog loaded from %s: %d products", s.path, len(entries))
	return entries, nil
}

func (s *Service) parse() ([]Entry, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("open catalog file: %w", err)
	}
	defer f.Close()

	sheet := s.sheetName
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheet)
	}

	cols := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		cols[strings.TrimSpace(h)] = i
	}
	for _, required := range []string{colProductName, colDieCode, colDieWidth, colDieHeight} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("sheet %q is missing column %q", sheet, required)
		}
	}

	entries := make([]Entry, 0, len(rows)-1)
	for _, row := range rows[1:] {
		name := strings.TrimSpace(cell(row, cols[colProductName]))
		if name == "" {
			continue
		}
		entries = append(entries, Entry{
			ProductName: name,
			DieCode:     strings.TrimSpace(cell(row, cols[colDieCode])),
			DieWidth:    strings.TrimSpace(cell(row, cols[colDieWidth])),
			DieHeight:   strings.TrimSpace(cell(row, cols[colDieHeight])),
		})
	}
	return entries, nil
}

// cell tolerates short rows; excelize omits trailing empty cells.
func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}
