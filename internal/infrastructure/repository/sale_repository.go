package repository

import (
	"context"
	"time"

	"github.com/sangkips/bizledger-api/internal/domain/entity"
	domainRepo "github.com/sangkips/bizledger-api/internal/domain/repository"
	"gorm.io/gorm"
)

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *gorm.DB) domainRepo.SaleRepository {
	return &saleRepository{db: db}
}

// CreateBatch writes every line of one checkout in a single transaction so a
// receipt is never half-persisted.
func (r *saleRepository) CreateBatch(ctx context.Context, sales []entity.Sale) error {
	if len(sales) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&sales).Error
	})
}

func (r *saleRepository) List(ctx context.Context, params *domainRepo.SaleFilterParams) ([]entity.Sale, int64, error) {
	var sales []entity.Sale
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Sale{}).Scopes(BusinessScope(ctx))

	if params.From != nil {
		query = query.Where("sale_date >= ?", *params.From)
	}
	if params.To != nil {
		query = query.Where("sale_date < ?", *params.To)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Customer").
		Order("sale_date DESC").
		Find(&sales).Error

	return sales, total, err
}

func (r *saleRepository) ListByDay(ctx context.Context, day time.Time) ([]entity.Sale, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	var sales []entity.Sale
	err := r.db.WithContext(ctx).Scopes(BusinessScope(ctx)).
		Where("sale_date >= ? AND sale_date < ?", start, end).
		Order("sale_date ASC").
		Find(&sales).Error
	return sales, err
}

func (r *saleRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Scopes(BusinessScope(ctx)).
		Where("1 = 1").
		Delete(&entity.Sale{}).Error
}
