package repository

import (
	"errors"
	"fmt"

	"pos-backend/internal/app/ds"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Ошибки уровня хранилища. Обработчики превращают их в коды ответа.
var (
	ErrTransactionNotFound = errors.New("транзакция не найдена")
	ErrCustomerNotFound    = errors.New("клиент не найден")
	ErrUserNotFound        = errors.New("пользователь не найден")
	ErrProductNotFound     = errors.New("товар не найден")

	// Несколько услуг с одним названием: списание по имени неоднозначно,
	// вместо произвольного выбора прерываем всю операцию.
	ErrServiceNameConflict = errors.New("найдено несколько услуг с таким названием")

	// Остатка товара не хватает для списания.
	ErrInsufficientInventory = errors.New("недостаточно товара на складе")
)

type Repository struct {
	db *gorm.DB
}

func New(dsn string) (*Repository, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// Автоматическая миграция всех таблиц
	err = db.AutoMigrate(
		&ds.User{},
		&ds.Customer{},
		&ds.Product{},
		&ds.Service{},
		&ds.ServiceProduct{},
		&ds.Transaction{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Repository{
		db: db,
	}, nil
}
