package ds

// 2. Таблица клиентов
type Customer struct {
	ID    uint   `gorm:"primaryKey;column:id_customers" json:"id_customers"`
	Name  string `gorm:"type:varchar(100);not null" json:"name"`
	Email string `gorm:"type:varchar(100)" json:"email"`
	Phone string `gorm:"type:varchar(30)" json:"phone"`
}
