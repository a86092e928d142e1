package role

// Role — роль пользователя в системе
type Role int

const (
	Employee Role = iota // Обычный сотрудник
	Manager              // Менеджер
	Admin                // Администратор
)

func (r Role) String() string {
	switch r {
	case Manager:
		return "Manager"
	case Admin:
		return "Admin"
	default:
		return "Employee"
	}
}

// FromString возвращает роль по её строковому представлению из БД.
// Неизвестные значения считаются Employee.
func FromString(s string) Role {
	switch s {
	case "Manager":
		return Manager
	case "Admin":
		return Admin
	default:
		return Employee
	}
}
