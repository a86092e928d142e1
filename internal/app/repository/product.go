package repository

import (
	"pos-backend/internal/app/ds"
)

// Методы для работы с товарами (складом)

func (r *Repository) GetProducts() ([]ds.Product, error) {
	var products []ds.Product
	err := r.db.Order("id_product").Find(&products).Error
	return products, err
}

func (r *Repository) UpdateProduct(id uint, name string, quantity int) error {
	result := r.db.Model(&ds.Product{}).
		Where("id_product = ?", id).
		Updates(map[string]interface{}{
			"name_product":     name,
			"quantity_product": quantity,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}
