package repository

import (
	"errors"

	"pos-backend/internal/app/ds"

	"gorm.io/gorm"
)

// Методы для пользователей (ORM)

func (r *Repository) GetUsers() ([]ds.User, error) {
	var users []ds.User
	err := r.db.Order("id_users").Find(&users).Error
	return users, err
}

func (r *Repository) GetUserByID(id uint) (*ds.User, error) {
	var user ds.User
	err := r.db.First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *Repository) GetUserByUsername(username string) (*ds.User, error) {
	var user ds.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *Repository) UserExistsByUsername(username string) (bool, error) {
	var count int64
	err := r.db.Model(&ds.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

func (r *Repository) CreateUser(firstname, lastname, username, password, userRole string) (*ds.User, error) {
	user := ds.User{
		Firstname: firstname,
		Lastname:  lastname,
		Username:  username,
		Password:  password,
		Role:      userRole,
	}

	err := r.db.Create(&user).Error
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *Repository) UpdateUser(id uint, firstname, lastname, username, userRole string) error {
	result := r.db.Model(&ds.User{}).
		Where("id_users = ?", id).
		Updates(map[string]interface{}{
			"firstname": firstname,
			"lastname":  lastname,
			"username":  username,
			"role":      userRole,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *Repository) DeleteUser(id uint) error {
	result := r.db.Where("id_users = ?", id).Delete(&ds.User{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
