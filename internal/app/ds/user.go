package ds

// 3. Таблица пользователей (операторов)
type User struct {
	ID        uint   `gorm:"primaryKey;column:id_users" json:"id_users"`
	Firstname string `gorm:"type:varchar(50);not null" json:"firstname"`
	Lastname  string `gorm:"type:varchar(50)" json:"lastname"`
	Username  string `gorm:"type:varchar(50);unique;not null" json:"username"`
	Password  string `gorm:"type:varchar(255);not null" json:"password"`
	Role      string `gorm:"type:varchar(20);default:'Employee';not null" json:"role"` // Employee, Manager, Admin
}
