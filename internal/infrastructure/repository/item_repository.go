package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/sangkips/bizledger-api/internal/domain/entity"
	domainRepo "github.com/sangkips/bizledger-api/internal/domain/repository"
	"gorm.io/gorm"
)

type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository creates a new inventory item repository
func NewItemRepository(db *gorm.DB) domainRepo.ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(ctx context.Context, item *entity.InventoryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.InventoryItem, error) {
	var item entity.InventoryItem
	err := r.db.WithContext(ctx).Scopes(BusinessScope(ctx)).
		First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *itemRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.InventoryItem, error) {
	if len(ids) == 0 {
		return []entity.InventoryItem{}, nil
	}
	var items []entity.InventoryItem
	err := r.db.WithContext(ctx).Scopes(BusinessScope(ctx)).
		Where("id IN ?", ids).
		Find(&items).Error
	return items, err
}

func (r *itemRepository) GetByName(ctx context.Context, name string) ([]entity.InventoryItem, error) {
	var items []entity.InventoryItem
	err := r.db.WithContext(ctx).Scopes(BusinessScope(ctx)).
		Where("TRIM(name) = ?", strings.TrimSpace(name)).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

func (r *itemRepository) Update(ctx context.Context, item *entity.InventoryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *itemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Scopes(BusinessScope(ctx)).
		Delete(&entity.InventoryItem{}, "id = ?", id).Error
}

func (r *itemRepository) List(ctx context.Context, params *domainRepo.ItemFilterParams) ([]entity.InventoryItem, int64, error) {
	var items []entity.InventoryItem
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.InventoryItem{}).Scopes(BusinessScope(ctx))

	if params.Search != "" {
		query = query.Where("name ILIKE ?", "%"+params.Search+"%")
	}
	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}
	if params.Type != "" {
		query = query.Where("type = ?", params.Type)
	}
	if params.LowStock {
		query = query.Where("type = 'product' AND quantity <= low_stock_alert")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("name ASC, created_at ASC").
		Find(&items).Error

	return items, total, err
}

func (r *itemRepository) GetLowStock(ctx context.Context) ([]entity.InventoryItem, error) {
	var items []entity.InventoryItem
	err := r.db.WithContext(ctx).Scopes(BusinessScope(ctx)).
		Where("type = 'product' AND quantity <= low_stock_alert").
		Preload("Supplier").
		Find(&items).Error
	return items, err
}

// ReplaceNameGroup atomically swaps out every variant of one logical product.
// Variants previously in the group but absent from the new list are discarded.
// The delete is permanent so re-saved variants can keep their IDs.
func (r *itemRepository) ReplaceNameGroup(ctx context.Context, name string, variants []entity.InventoryItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Scopes(BusinessScope(ctx)).
			Where("TRIM(name) = ?", strings.TrimSpace(name)).
			Delete(&entity.InventoryItem{}).Error; err != nil {
			return err
		}
		if len(variants) == 0 {
			return nil
		}
		return tx.Create(&variants).Error
	})
}

// AdjustQuantityBatch applies signed quantity deltas in one transaction,
// rounding each result to two decimal places. Quantities may go negative.
func (r *itemRepository) AdjustQuantityBatch(ctx context.Context, deltas map[uuid.UUID]float64) error {
	if len(deltas) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for id, delta := range deltas {
			if err := tx.Model(&entity.InventoryItem{}).
				Scopes(BusinessScope(ctx)).
				Where("id = ?", id).
				Update("quantity", gorm.Expr("ROUND((quantity + ?)::numeric, 2)", delta)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *itemRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Scopes(BusinessScope(ctx)).
		Where("1 = 1").
		Delete(&entity.InventoryItem{}).Error
}
