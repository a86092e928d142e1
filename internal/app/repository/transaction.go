package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"pos-backend/internal/app/ds"

	"gorm.io/gorm"
)

// TransactionInput — проверенные данные для создания/изменения транзакции.
// Валидация формы (обязательные поля, равная длина списков) выполняется
// до обращения к хранилищу, на уровне обработчика.
type TransactionInput struct {
	Name       string
	Lines      []ds.TransactionLine
	Total      float64
	Issued     string
	CustomerID uint
	UserID     uint
}

// buildTransaction сплющивает позиции и собирает запись для вставки/обновления
func buildTransaction(in TransactionInput) ds.Transaction {
	names, prices, quantities := ds.FlattenLines(in.Lines)
	return ds.Transaction{
		Name:         in.Name,
		NameService:  names,
		PriceService: prices,
		Quantity:     quantities,
		Total:        in.Total,
		Issued:       in.Issued,
		CustomerID:   in.CustomerID,
		UserID:       in.UserID,
	}
}

// CreateTransaction создаёт транзакцию и списывает остатки товаров
// по каждой позиции как одну атомарную единицу работы.
// Любая ошибка после открытия скоупа откатывает и вставку, и все списания.
func (r *Repository) CreateTransaction(in TransactionInput) (*ds.Transaction, error) {
	txn := buildTransaction(in)

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&txn).Error; err != nil {
			return fmt.Errorf("не удалось сохранить транзакцию: %w", err)
		}

		for _, line := range in.Lines {
			if err := decrementInventory(tx, line.ServiceName, line.Quantity); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &txn, nil
}

// UpdateTransaction перезаписывает поля транзакции на месте одним UPDATE.
// Существование проверяется по RowsAffected самого UPDATE: postgres считает
// строку затронутой даже при записи тех же значений, поэтому отдельная
// проверка перед обновлением не нужна и открыла бы окно для гонки с удалением.
// Остатки товаров при редактировании не пересчитываются —
// поведение исходной системы сохранено намеренно.
func (r *Repository) UpdateTransaction(id uint, in TransactionInput) error {
	names, prices, quantities := ds.FlattenLines(in.Lines)
	result := r.db.Model(&ds.Transaction{}).
		Where("id_transactions = ?", id).
		Updates(map[string]interface{}{
			"name":                in.Name,
			"name_service":        names,
			"price_service":       prices,
			"quantity":            quantities,
			"total_transactions":  in.Total,
			"issued_transactions": in.Issued,
			"id_customers":        in.CustomerID,
			"id_users":            in.UserID,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// DeleteTransaction удаляет запись транзакции. Возврата товара на склад нет.
func (r *Repository) DeleteTransaction(id uint) error {
	result := r.db.Where("id_transactions = ?", id).Delete(&ds.Transaction{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// UpdateTransactionReceipt сохраняет имя файла чека
func (r *Repository) UpdateTransactionReceipt(id uint, receiptURL string) error {
	result := r.db.Model(&ds.Transaction{}).
		Where("id_transactions = ?", id).
		Update("receipt_url", receiptURL)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// TransactionListRow — строка списка транзакций с данными клиента, услуги и оператора
type TransactionListRow struct {
	ID            uint
	Name          string
	NameService   string
	Issued        string
	Total         float64
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	ServiceID     *uint
	UserFirstname string
	UserLastname  string
}

// GetTransactions возвращает список транзакций с join-ами на справочники
func (r *Repository) GetTransactions() ([]TransactionListRow, error) {
	query := `
		SELECT
			t.id_transactions,
			t.name,
			t.name_service,
			t.issued_transactions,
			t.total_transactions,
			COALESCE(c.name, '') AS customer_name,
			COALESCE(c.email, '') AS customer_email,
			COALESCE(c.phone, '') AS customer_phone,
			s.id_service,
			COALESCE(u.firstname, '') AS user_firstname,
			COALESCE(u.lastname, '') AS user_lastname
		FROM transactions t
		LEFT JOIN customers c ON t.id_customers = c.id_customers
		LEFT JOIN services s ON t.name_service = s.name_service
		LEFT JOIN users u ON t.id_users = u.id_users
		ORDER BY t.id_transactions`

	rows, err := r.db.Raw(query).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []TransactionListRow
	for rows.Next() {
		var row TransactionListRow
		err = rows.Scan(&row.ID, &row.Name, &row.NameService, &row.Issued, &row.Total,
			&row.CustomerName, &row.CustomerEmail, &row.CustomerPhone,
			&row.ServiceID, &row.UserFirstname, &row.UserLastname)
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// TransactionDetail — полная запись транзакции со сплющенными полями и join-ами
type TransactionDetail struct {
	ID            uint
	Name          string
	NameService   string
	PriceService  string
	Quantity      string
	Issued        string
	Total         float64
	CustomerID    uint
	UserID        uint
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	UserFirstname string
	UserLastname  string
	ReceiptURL    *string
}

// GetTransactionDetail возвращает одну транзакцию по ID
func (r *Repository) GetTransactionDetail(id uint) (*TransactionDetail, error) {
	query := `
		SELECT t.id_transactions, t.name, t.name_service, t.price_service, t.quantity,
		       t.issued_transactions, t.total_transactions, t.id_customers, t.id_users,
		       COALESCE(c.name, '') AS customer_name,
		       COALESCE(c.email, '') AS customer_email,
		       COALESCE(c.phone, '') AS customer_phone,
		       COALESCE(u.firstname, '') AS user_firstname,
		       COALESCE(u.lastname, '') AS user_lastname,
		       t.receipt_url
		FROM transactions t
		JOIN customers c ON t.id_customers = c.id_customers
		LEFT JOIN users u ON t.id_users = u.id_users
		WHERE t.id_transactions = $1`

	// Используем курсор (строковый указатель)
	row := r.db.Raw(query, id).Row()

	var d TransactionDetail
	err := row.Scan(&d.ID, &d.Name, &d.NameService, &d.PriceService, &d.Quantity,
		&d.Issued, &d.Total, &d.CustomerID, &d.UserID,
		&d.CustomerName, &d.CustomerEmail, &d.CustomerPhone,
		&d.UserFirstname, &d.UserLastname, &d.ReceiptURL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}

	return &d, nil
}
