package models

import (
	"errors"

	"gorm.io/gorm"
)

type CustomersRepository struct {
	db *gorm.DB
}

func NewCustomersRepository(db *gorm.DB) *CustomersRepository {
	return &CustomersRepository{
		db: db,
	}
}

type CustomerPatch struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
}

func (r *CustomersRepository) GetAll(search string) ([]Customer, error) {
	var customers []Customer
	query := r.db.Order("created_at DESC")
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ?", pattern, pattern)
	}
	if err := query.Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *CustomersRepository) GetByID(id uint) (*Customer, error) {
	var customer Customer
	if err := r.db.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return &customer, nil
}

func (r *CustomersRepository) Create(customer *Customer) error {
	return r.db.Create(customer).Error
}

func (r *CustomersRepository) Update(id uint, patch CustomerPatch) (*Customer, error) {
	updates := map[string]interface{}{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Email != nil {
		updates["email"] = *patch.Email
	}
	if patch.Phone != nil {
		updates["phone"] = *patch.Phone
	}
	if patch.Address != nil {
		updates["address"] = *patch.Address
	}

	if len(updates) > 0 {
		res := r.db.Model(&Customer{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, ErrCustomerNotFound
		}
	}
	return r.GetByID(id)
}

// Delete refuses to remove a customer that orders still reference, so the
// dashboard never counts orders against a missing customer.
func (r *CustomersRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var orders int64
		if err := tx.Model(&Order{}).Where("customer_id = ?", id).Count(&orders).Error; err != nil {
			return err
		}
		if orders > 0 {
			return ErrCustomerHasOrders
		}
		res := tx.Delete(&Customer{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrCustomerNotFound
		}
		return nil
	})
}
