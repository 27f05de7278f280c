package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"boxtrack-backend/internal/model"
	"boxtrack-backend/internal/weight"
)

const orderDateLayout = "02.01.2006"

// summaryColumns are the projection for list and search responses.
const summaryColumns = "id, customer_name, product_name, die_code, order_status, order_date"

// planningColumns are the projection for the planning grid.
const planningColumns = "id, customer_name, product_name, sheet_count, color_count, color_info, notes"

// Store defines the persistence operations for production orders.
type Store interface {
	Create(ctx context.Context, fields map[string]string) (int64, error)
	Get(ctx context.Context, id int64) (*model.ProductionOrder, error)
	UpdateFull(ctx context.Context, id int64, fields map[string]string) error
	UpdateField(ctx context.Context, id int64, field, value string) error
	Delete(ctx context.Context, id int64) error
	DeleteBatch(ctx context.Context, ids []int64) (int64, error)
	Search(ctx context.Context, query string) ([]model.OrderSummary, error)
	ListAll(ctx context.Context) ([]model.OrderSummary, error)
	ListFull(ctx context.Context) ([]model.ProductionOrder, error)
	ListRecent(ctx context.Context, limit int) ([]model.PlanningSummary, error)
	GetBatch(ctx context.Context, ids []int64) ([]model.PlanningSummary, error)
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// Create validates and persists a new order, returning its id. The customer
// name is required; the order date defaults to today and the sheet weight is
// recomputed from the dimension fields so it can never be stale.
func (s *gormStore) Create(ctx context.Context, fields map[string]string) (int64, error) {
	var o model.ProductionOrder
	for name, value := range fields {
		setField(&o, name, value)
	}

	o.CustomerName = strings.TrimSpace(o.CustomerName)
	if o.CustomerName == "" {
		return 0, &ValidationError{Field: "customer_name", Message: "Müşteri adı zorunludur"}
	}

	if o.OrderDate == "" {
		o.OrderDate = time.Now().Format(orderDateLayout)
	} else {
		o.OrderDate = normalizeOrderDate(o.OrderDate)
	}
	refreshWeight(&o)

	if err := s.db.WithContext(ctx).Create(&o).Error; err != nil {
		return 0, fmt.Errorf("create order: %w", err)
	}
	return o.ID, nil
}

// Get returns the full record for the given id.
func (s *gormStore) Get(ctx context.Context, id int64) (*model.ProductionOrder, error) {
	var o model.ProductionOrder
	if err := s.db.WithContext(ctx).First(&o, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get order %d: %w", id, err)
	}
	return &o, nil
}

// UpdateFull applies the provided fields to an existing record; fields not
// present in the map keep their prior values. The sheet weight is recomputed
// from the merged record before it is written back.
func (s *gormStore) UpdateFull(ctx context.Context, id int64, fields map[string]string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var o model.ProductionOrder
		if err := tx.First(&o, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("load order %d: %w", id, err)
		}

		for name, value := range fields {
			setField(&o, name, value)
		}

		o.CustomerName = strings.TrimSpace(o.CustomerName)
		if o.CustomerName == "" {
			return &ValidationError{Field: "customer_name", Message: "Müşteri adı zorunludur"}
		}
		refreshWeight(&o)

		if err := tx.Save(&o).Error; err != nil {
			return fmt.Errorf("update order %d: %w", id, err)
		}
		return nil
	})
}

// UpdateField sets a single field on an existing record. The field name is
// validated against the closed set of writable fields before anything is
// touched. Updating a weight input also refreshes the stored weight.
func (s *gormStore) UpdateField(ctx context.Context, id int64, field, value string) error {
	if !writableFields[field] {
		return fmt.Errorf("%w: %q", ErrInvalidField, field)
	}
	if field == "customer_name" && strings.TrimSpace(value) == "" {
		return &ValidationError{Field: "customer_name", Message: "Müşteri adı zorunludur"}
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var o model.ProductionOrder
		if err := tx.First(&o, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("load order %d: %w", id, err)
		}

		setField(&o, field, value)
		updates := map[string]any{field: value}
		if weightInputs[field] {
			refreshWeight(&o)
			updates["sheet_weight"] = o.SheetWeight
		}

		if err := tx.Model(&model.ProductionOrder{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return fmt.Errorf("update field %q on order %d: %w", field, id, err)
		}
		return nil
	})
}

// Delete removes a single record by id.
func (s *gormStore) Delete(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Delete(&model.ProductionOrder{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete order %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteBatch removes the given ids best-effort: ids that do not resolve to
// a record are skipped, and the number of records actually deleted is
// returned. The whole batch commits as one transaction.
func (s *gormStore) DeleteBatch(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := s.db.WithContext(ctx).Delete(&model.ProductionOrder{}, ids)
	if res.Error != nil {
		return 0, fmt.Errorf("delete batch: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// Search matches the query as a substring of the customer name, product name
// or die code. Case sensitivity follows the underlying LIKE collation.
func (s *gormStore) Search(ctx context.Context, query string) ([]model.OrderSummary, error) {
	pattern := "%" + query + "%"
	out := make([]model.OrderSummary, 0)
	err := s.db.WithContext(ctx).
		Model(&model.ProductionOrder{}).
		Select(summaryColumns).
		Where("customer_name LIKE ? OR product_name LIKE ? OR die_code LIKE ?", pattern, pattern, pattern).
		Order("id DESC").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("search orders: %w", err)
	}
	return out, nil
}

// ListAll returns summaries of every record, newest id first.
func (s *gormStore) ListAll(ctx context.Context) ([]model.OrderSummary, error) {
	out := make([]model.OrderSummary, 0)
	err := s.db.WithContext(ctx).
		Model(&model.ProductionOrder{}).
		Select(summaryColumns).
		Order("id DESC").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return out, nil
}

// ListFull returns every stored record, newest id first, for export.
func (s *gormStore) ListFull(ctx context.Context) ([]model.ProductionOrder, error) {
	out := make([]model.ProductionOrder, 0)
	if err := s.db.WithContext(ctx).Order("id DESC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list orders for export: %w", err)
	}
	return out, nil
}

// ListRecent returns the newest records as planning summaries.
func (s *gormStore) ListRecent(ctx context.Context, limit int) ([]model.PlanningSummary, error) {
	if limit <= 0 {
		limit = 100
	}
	out := make([]model.PlanningSummary, 0)
	err := s.db.WithContext(ctx).
		Model(&model.ProductionOrder{}).
		Select(planningColumns).
		Order("id DESC").
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list recent orders: %w", err)
	}
	return out, nil
}

// GetBatch returns planning summaries for the given ids; unknown ids are
// silently skipped.
func (s *gormStore) GetBatch(ctx context.Context, ids []int64) ([]model.PlanningSummary, error) {
	out := make([]model.PlanningSummary, 0, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	err := s.db.WithContext(ctx).
		Model(&model.ProductionOrder{}).
		Select(planningColumns).
		Where("id IN ?", ids).
		Order("id").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("get batch: %w", err)
	}
	return out, nil
}

// normalizeOrderDate converts ISO dates coming from date pickers to the
// display layout. Anything else is stored as sent.
func normalizeOrderDate(s string) string {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.Format(orderDateLayout)
	}
	return s
}

// refreshWeight recomputes the stored sheet weight from the current
// dimension, grammage and sheet count fields. An incomplete input set yields
// the explicit sentinel, never an empty string or a zero.
func refreshWeight(o *model.ProductionOrder) {
	if w, ok := weight.Compute(o.PaperWidth, o.PaperHeight, o.Grammage, o.SheetCount); ok {
		o.SheetWeight = w
	} else {
		o.SheetWeight = weight.NotComputed
	}
}
