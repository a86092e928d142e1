package ds

// 4. Таблица товаров (общий складской запас).
// Один товар может входить в состав нескольких услуг.
type Product struct {
	ID       uint   `gorm:"primaryKey;column:id_product" json:"id_product"`
	Name     string `gorm:"type:varchar(100);not null;column:name_product" json:"name_product"`
	Quantity int    `gorm:"not null;default:0;column:quantity_product" json:"quantity_product"`
}
