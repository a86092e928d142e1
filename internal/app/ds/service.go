package ds

// 5. Таблица услуг. Название используется как естественный ключ:
// транзакции ссылаются на услугу по name_service, а не по ID.
type Service struct {
	ID   uint   `gorm:"primaryKey;column:id_service" json:"id_service"`
	Name string `gorm:"type:varchar(100);not null;column:name_service" json:"name_service"`
}

// 6. Таблица многие-ко-многим (услуги-товары) - состав услуги
type ServiceProduct struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	ServiceID uint `gorm:"not null;index;column:service_id" json:"service_id"`
	ProductID uint `gorm:"not null;index;column:product_id" json:"product_id"`

	Service Service `gorm:"foreignKey:ServiceID"`
	Product Product `gorm:"foreignKey:ProductID"`
}
