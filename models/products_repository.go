package models

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductsRepository struct {
	db *gorm.DB
}

func NewProductsRepository(db *gorm.DB) *ProductsRepository {
	return &ProductsRepository{
		db: db,
	}
}

type ProductFilters struct {
	Search     string
	CategoryID *uint
}

// ProductPatch carries a sparse update: only non-nil fields touch their
// column. CategoryID is doubly indirect so a patch can set the reference
// to NULL.
type ProductPatch struct {
	Name          *string
	Description   *string
	Price         *decimal.Decimal
	CategoryID    **uint
	StockQuantity *int
	ImageURL      *string
	SKU           *string
}

func (r *ProductsRepository) GetAll(filters ProductFilters) ([]Product, error) {
	var products []Product

	query := r.db.Preload("Category").Order("created_at DESC")

	if filters.Search != "" {
		pattern := "%" + filters.Search + "%"
		query = query.Where("name ILIKE ? OR sku ILIKE ?", pattern, pattern)
	}
	if filters.CategoryID != nil {
		query = query.Where("category_id = ?", *filters.CategoryID)
	}

	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductsRepository) GetByID(id uint) (*Product, error) {
	var product Product
	if err := r.db.
		Preload("Category").
		First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *ProductsRepository) Create(product *Product) error {
	return r.db.Create(product).Error
}

func (r *ProductsRepository) Update(id uint, patch ProductPatch) (*Product, error) {
	updates := map[string]interface{}{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Price != nil {
		updates["price"] = *patch.Price
	}
	if patch.CategoryID != nil {
		updates["category_id"] = *patch.CategoryID
	}
	if patch.StockQuantity != nil {
		updates["stock_quantity"] = *patch.StockQuantity
	}
	if patch.ImageURL != nil {
		updates["image_url"] = *patch.ImageURL
	}
	if patch.SKU != nil {
		updates["sku"] = *patch.SKU
	}

	if len(updates) > 0 {
		res := r.db.Model(&Product{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, ErrProductNotFound
		}
	}
	return r.GetByID(id)
}

func (r *ProductsRepository) Delete(id uint) error {
	res := r.db.Delete(&Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

// AdjustStock adds delta (possibly negative) to a product's stock in one
// guarded statement. An adjustment that would drive the quantity below
// zero is rejected whole and leaves the row unchanged.
func (r *ProductsRepository) AdjustStock(id uint, delta int) (*Product, error) {
	res := r.db.Model(&Product{}).
		Where("id = ? AND stock_quantity + ? >= 0", id, delta).
		UpdateColumn("stock_quantity", gorm.Expr("stock_quantity + ?", delta))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// Either the product is missing or the guard fired.
		if _, err := r.GetByID(id); err != nil {
			return nil, err
		}
		return nil, ErrInsufficientStock
	}
	return r.GetByID(id)
}
