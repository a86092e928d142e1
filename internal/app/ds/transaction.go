package ds

import (
	"fmt"
	"strconv"
	"strings"
)

// 1. Таблица транзакций. Списки услуг, цен и количеств хранятся
// сплющенными в текстовых колонках (разделитель — перевод строки),
// как в исходной схеме БД.
type Transaction struct {
	ID           uint    `gorm:"primaryKey;column:id_transactions" json:"id_transactions"`
	Name         string  `gorm:"type:varchar(100);not null" json:"name"`
	NameService  string  `gorm:"type:text;not null;column:name_service" json:"name_service"`
	PriceService string  `gorm:"type:text;column:price_service" json:"price_service"`
	Quantity     string  `gorm:"type:text;not null;column:quantity" json:"quantity"`
	Total        float64 `gorm:"type:decimal(12,2);not null;column:total_transactions" json:"total_transactions"`
	Issued       string  `gorm:"type:varchar(100);not null;column:issued_transactions" json:"issued_transactions"`
	CustomerID   uint    `gorm:"not null;column:id_customers" json:"id_customers"`
	UserID       uint    `gorm:"not null;column:id_users" json:"id_users"`
	ReceiptURL   *string `gorm:"type:varchar(255);column:receipt_url" json:"receipt_url,omitempty"` // Nullable, имя файла чека в MinIO

	Customer Customer `gorm:"foreignKey:CustomerID"`
	User     User     `gorm:"foreignKey:UserID"`
}

// TransactionLine — одна позиция транзакции: услуга, цена за единицу, количество.
type TransactionLine struct {
	ServiceName string
	UnitPrice   float64
	Quantity    int
}

const lineSeparator = "\n"

// FlattenLines сплющивает позиции в три параллельных текстовых поля.
// Порядок позиций сохраняется.
func FlattenLines(lines []TransactionLine) (names, prices, quantities string) {
	nameParts := make([]string, len(lines))
	priceParts := make([]string, len(lines))
	quantityParts := make([]string, len(lines))

	for i, line := range lines {
		nameParts[i] = line.ServiceName
		priceParts[i] = strconv.FormatFloat(line.UnitPrice, 'f', -1, 64)
		quantityParts[i] = strconv.Itoa(line.Quantity)
	}

	return strings.Join(nameParts, lineSeparator),
		strings.Join(priceParts, lineSeparator),
		strings.Join(quantityParts, lineSeparator)
}

// SplitLines восстанавливает позиции из сплющенных полей.
// Три списка обязаны иметь одинаковую длину, иначе запись считается битой.
func SplitLines(names, prices, quantities string) ([]TransactionLine, error) {
	nameParts := strings.Split(names, lineSeparator)
	priceParts := strings.Split(prices, lineSeparator)
	quantityParts := strings.Split(quantities, lineSeparator)

	if len(nameParts) != len(priceParts) || len(nameParts) != len(quantityParts) {
		return nil, fmt.Errorf("несовпадающая длина списков позиций: услуг %d, цен %d, количеств %d",
			len(nameParts), len(priceParts), len(quantityParts))
	}

	lines := make([]TransactionLine, len(nameParts))
	for i := range nameParts {
		price, err := strconv.ParseFloat(priceParts[i], 64)
		if err != nil {
			return nil, fmt.Errorf("не удалось разобрать цену %q: %w", priceParts[i], err)
		}
		quantity, err := strconv.Atoi(quantityParts[i])
		if err != nil {
			return nil, fmt.Errorf("не удалось разобрать количество %q: %w", quantityParts[i], err)
		}
		lines[i] = TransactionLine{
			ServiceName: nameParts[i],
			UnitPrice:   price,
			Quantity:    quantity,
		}
	}
	return lines, nil
}
