package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"boxtrack-backend/internal/model"
	"boxtrack-backend/internal/weight"
)

func newTestStore(t *testing.T) Store {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.ProductionOrder{}))

	return NewGormStore(db)
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing customer name is rejected without a write", func(t *testing.T) {
		s := newTestStore(t)

		_, err := s.Create(ctx, map[string]string{"customer_name": "  "})
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "customer_name", ve.Field)

		all, err := s.ListAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("Minimal record gets defaults", func(t *testing.T) {
		s := newTestStore(t)

		id, err := s.Create(ctx, map[string]string{"customer_name": "Acme"})
		require.NoError(t, err)
		require.NotZero(t, id)

		o, err := s.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Acme", o.CustomerName)
		assert.Equal(t, "", o.ProductName)
		assert.Equal(t, "", o.Notes)
		assert.Equal(t, weight.NotComputed, o.SheetWeight)
		assert.Equal(t, time.Now().Format("02.01.2006"), o.OrderDate)
		assert.WithinDuration(t, time.Now(), o.CreatedAt, 5*time.Second)
	})

	t.Run("Weight is computed from dimension fields", func(t *testing.T) {
		s := newTestStore(t)

		id, err := s.Create(ctx, map[string]string{
			"customer_name": "Acme",
			"paper_width":   "500",
			"paper_height":  "700",
			"grammage":      "300",
			"sheet_count":   "1",
			"sheet_weight":  "999 kg", // client-sent value must be superseded
		})
		require.NoError(t, err)

		o, err := s.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "105,00 kg", o.SheetWeight)
	})

	t.Run("ISO order dates are normalized to the display layout", func(t *testing.T) {
		s := newTestStore(t)

		id, err := s.Create(ctx, map[string]string{
			"customer_name": "Acme",
			"order_date":    "2026-09-01",
		})
		require.NoError(t, err)

		o, err := s.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "01.09.2026", o.OrderDate)
	})

	t.Run("Unknown field names are ignored", func(t *testing.T) {
		s := newTestStore(t)

		id, err := s.Create(ctx, map[string]string{
			"customer_name": "Acme",
			"no_such_field": "x",
		})
		require.NoError(t, err)

		_, err = s.Get(ctx, id)
		assert.NoError(t, err)
	})
}

func TestGetNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Get(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateFull(t *testing.T) {
	ctx := context.Background()

	t.Run("Unspecified fields retain prior values", func(t *testing.T) {
		s := newTestStore(t)

		id, err := s.Create(ctx, map[string]string{
			"customer_name": "Acme",
			"product_name":  "Kutu A",
			"die_code":      "D123",
			"order_status":  "YENİ",
		})
		require.NoError(t, err)

		require.NoError(t, s.UpdateFull(ctx, id, map[string]string{"notes": "x"}))

		o, err := s.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Acme", o.CustomerName)
		assert.Equal(t, "Kutu A", o.ProductName)
		assert.Equal(t, "D123", o.DieCode)
		assert.Equal(t, "YENİ", o.OrderStatus)
		assert.Equal(t, "x", o.Notes)
	})

	t.Run("Weight is recomputed when an input changes", func(t *testing.T) {
		s := newTestStore(t)

		id, err := s.Create(ctx, map[string]string{
			"customer_name": "Acme",
			"paper_width":   "500",
			"paper_height":  "700",
			"grammage":      "300",
			"sheet_count":   "1",
		})
		require.NoError(t, err)

		require.NoError(t, s.UpdateFull(ctx, id, map[string]string{"sheet_count": "2"}))

		o, err := s.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "210,00 kg", o.SheetWeight)
	})

	t.Run("Clearing a weight input downgrades to the sentinel", func(t *testing.T) {
		s := newTestStore(t)

		id, err := s.Create(ctx, map[string]string{
			"customer_name": "Acme",
			"paper_width":   "500",
			"paper_height":  "700",
			"grammage":      "300",
			"sheet_count":   "1",
		})
		require.NoError(t, err)

		require.NoError(t, s.UpdateFull(ctx, id, map[string]string{"grammage": ""}))

		o, err := s.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, weight.NotComputed, o.SheetWeight)
	})

	t.Run("Unknown id", func(t *testing.T) {
		s := newTestStore(t)
		assert.ErrorIs(t, s.UpdateFull(ctx, 42, map[string]string{"notes": "x"}), ErrNotFound)
	})

	t.Run("Blanking the customer name is rejected", func(t *testing.T) {
		s := newTestStore(t)

		id, err := s.Create(ctx, map[string]string{"customer_name": "Acme"})
		require.NoError(t, err)

		err = s.UpdateFull(ctx, id, map[string]string{"customer_name": " "})
		var ve *ValidationError
		assert.ErrorAs(t, err, &ve)

		o, err := s.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Acme", o.CustomerName, "rejected update must not leave a partial write")
	})
}

func TestUpdateField(t *testing.T) {
	ctx := context.Background()

	t.Run("Recognized field", func(t *testing.T) {
		s := newTestStore(t)

		id, err := s.Create(ctx, map[string]string{"customer_name": "Acme"})
		require.NoError(t, err)

		require.NoError(t, s.UpdateField(ctx, id, "order_status", "TEKRAR"))

		o, err := s.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "TEKRAR", o.OrderStatus)
	})

	t.Run("Unrecognized field is rejected before any mutation", func(t *testing.T) {
		s := newTestStore(t)

		id, err := s.Create(ctx, map[string]string{"customer_name": "Acme"})
		require.NoError(t, err)

		assert.ErrorIs(t, s.UpdateField(ctx, id, "id", "7"), ErrInvalidField)
		assert.ErrorIs(t, s.UpdateField(ctx, id, "yok_boyle_alan", "x"), ErrInvalidField)
	})

	t.Run("Updating a weight input refreshes the weight", func(t *testing.T) {
		s := newTestStore(t)

		id, err := s.Create(ctx, map[string]string{
			"customer_name": "Acme",
			"paper_width":   "500",
			"paper_height":  "700",
			"grammage":      "300",
		})
		require.NoError(t, err)

		o, err := s.Get(ctx, id)
		require.NoError(t, err)
		require.Equal(t, weight.NotComputed, o.SheetWeight)

		require.NoError(t, s.UpdateField(ctx, id, "sheet_count", "1"))

		o, err = s.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "105,00 kg", o.SheetWeight)
	})

	t.Run("Unknown id", func(t *testing.T) {
		s := newTestStore(t)
		assert.ErrorIs(t, s.UpdateField(ctx, 42, "notes", "x"), ErrNotFound)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	id, err := s.Create(ctx, map[string]string{"customer_name": "Acme"})
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, id))
	_, err = s.Get(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.Delete(ctx, id), ErrNotFound)
}

func TestDeleteBatch(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	id1, err := s.Create(ctx, map[string]string{"customer_name": "Acme"})
	require.NoError(t, err)
	id2, err := s.Create(ctx, map[string]string{"customer_name": "Globex"})
	require.NoError(t, err)

	deleted, err := s.DeleteBatch(ctx, []int64{id1, 99999, id2})
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted, "missing ids are skipped, not fatal")

	all, err := s.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	deleted, err = s.DeleteBatch(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, deleted)
}

func TestSearchAndList(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	id1, err := s.Create(ctx, map[string]string{
		"customer_name": "Acme",
		"product_name":  "Kutu A",
		"die_code":      "D123",
		"order_status":  "YENİ",
	})
	require.NoError(t, err)
	id2, err := s.Create(ctx, map[string]string{
		"customer_name": "Globex",
		"product_name":  "Kutu B",
		"die_code":      "D456",
	})
	require.NoError(t, err)

	t.Run("Search by customer name", func(t *testing.T) {
		got, err := s.Search(ctx, "Acme")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, id1, got[0].ID)
		assert.Equal(t, "Acme", got[0].CustomerName)
		assert.Equal(t, "Kutu A", got[0].ProductName)
		assert.Equal(t, "D123", got[0].DieCode)
		assert.Equal(t, "YENİ", got[0].OrderStatus)
	})

	t.Run("Search by die code", func(t *testing.T) {
		got, err := s.Search(ctx, "D456")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, id2, got[0].ID)
	})

	t.Run("Search with no matches", func(t *testing.T) {
		got, err := s.Search(ctx, "NoSuchTerm")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("List all is newest first", func(t *testing.T) {
		got, err := s.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, id2, got[0].ID)
		assert.Equal(t, id1, got[1].ID)
	})
}

func TestListRecentAndGetBatch(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	var ids []int64
	for i := 0; i < 5; i++ {
		id, err := s.Create(ctx, map[string]string{
			"customer_name": "Acme",
			"sheet_count":   "100",
			"color_count":   "4",
			"color_info":    "CMYK",
			"notes":         "acele",
		})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	t.Run("Recent respects limit and order", func(t *testing.T) {
		got, err := s.ListRecent(ctx, 3)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, ids[4], got[0].ID)
		assert.Equal(t, "100", got[0].SheetCount)
		assert.Equal(t, "CMYK", got[0].ColorInfo)
		assert.Equal(t, "acele", got[0].Notes)
	})

	t.Run("Batch fetch skips unknown ids", func(t *testing.T) {
		got, err := s.GetBatch(ctx, []int64{ids[0], 99999, ids[2]})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, ids[0], got[0].ID)
		assert.Equal(t, ids[2], got[1].ID)
	})

	t.Run("Empty batch", func(t *testing.T) {
		got, err := s.GetBatch(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestValidationErrorKindIsDistinct(t *testing.T) {
	err := error(&ValidationError{Field: "customer_name", Message: "zorunlu"})
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrInvalidField))
}
