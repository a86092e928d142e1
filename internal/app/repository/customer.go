package repository

import (
	"pos-backend/internal/app/ds"
)

// Методы для работы с клиентами

func (r *Repository) GetCustomers() ([]ds.Customer, error) {
	var customers []ds.Customer
	err := r.db.Order("id_customers").Find(&customers).Error
	return customers, err
}

func (r *Repository) CreateCustomer(name, email, phone string) (*ds.Customer, error) {
	customer := ds.Customer{
		Name:  name,
		Email: email,
		Phone: phone,
	}

	err := r.db.Create(&customer).Error
	if err != nil {
		return nil, err
	}

	return &customer, nil
}

func (r *Repository) UpdateCustomer(id uint, name, email, phone string) error {
	result := r.db.Model(&ds.Customer{}).
		Where("id_customers = ?", id).
		Updates(map[string]interface{}{
			"name":  name,
			"email": email,
			"phone": phone,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCustomerNotFound
	}
	return nil
}

func (r *Repository) DeleteCustomer(id uint) error {
	result := r.db.Where("id_customers = ?", id).Delete(&ds.Customer{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCustomerNotFound
	}
	return nil
}
