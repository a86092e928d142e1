package dto

// ============ Общие структуры ============

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"` // Диагностика хранилища, если есть
}

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ============ Транзакции (Transactions) ============

// TransactionRequest — тело create/update транзакции.
// Имена полей сохраняют исходный контракт API:
// три параллельных списка услуг, цен и количеств.
type TransactionRequest struct {
	Name         string    `json:"name" binding:"required"`
	NameService  []string  `json:"name_service" binding:"required,min=1"`
	PriceService []float64 `json:"price_service" binding:"required,min=1"`
	Quantity     []int     `json:"quantity" binding:"required,min=1,dive,gt=0"`
	Total        float64   `json:"total_transactions" binding:"required,gt=0"`
	Issued       string    `json:"issued_transactions" binding:"required"`
	CustomerID   uint      `json:"id_customers" binding:"required"`
	UserID       uint      `json:"id_users" binding:"required"`
}

// TransactionListItem — строка списка транзакций (join с клиентом, услугой и оператором)
type TransactionListItem struct {
	ID            uint    `json:"id_transactions"`
	Name          string  `json:"transaction_name"`
	NameService   string  `json:"transaction_name_service"`
	Issued        string  `json:"issued_transactions"`
	Total         float64 `json:"total_transactions"`
	CustomerName  string  `json:"customer_name"`
	CustomerEmail string  `json:"customer_email"`
	CustomerPhone string  `json:"customer_phone"`
	ServiceID     *uint   `json:"id_service"`
	UserFirstname string  `json:"user_firstname"`
	UserLastname  string  `json:"user_lastname"`
}

type TransactionListResponse struct {
	Transactions []TransactionListItem `json:"transactions"`
	Total        int                   `json:"total"`
}

// TransactionDetailResponse — одна транзакция со всеми сплющенными полями
type TransactionDetailResponse struct {
	ID            uint    `json:"id_transactions"`
	Name          string  `json:"name"`
	NameService   string  `json:"name_service"`
	PriceService  string  `json:"price_service"`
	Quantity      string  `json:"quantity"`
	Issued        string  `json:"issued_transactions"`
	Total         float64 `json:"total_transactions"`
	CustomerID    uint    `json:"id_customers"`
	UserID        uint    `json:"id_users"`
	CustomerName  string  `json:"customer_name"`
	CustomerEmail string  `json:"customer_email"`
	CustomerPhone string  `json:"customer_phone"`
	UserFirstname string  `json:"user_firstname"`
	UserLastname  string  `json:"user_lastname"`
	ReceiptURL    string  `json:"receipt_url,omitempty"`
}

// ============ Клиенты (Customers) ============

type CustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"omitempty,email"`
	Phone string `json:"phone"`
}

// ============ Товары (Products) ============

type UpdateProductRequest struct {
	Name     string `json:"name_product" binding:"required"`
	Quantity int    `json:"quantity_product" binding:"gte=0"`
}

// ServiceAvailability — услуга с флагом доступности.
// Доступность "No", если хотя бы один товар в составе услуги закончился.
type ServiceAvailability struct {
	ID           uint   `json:"id_service"`
	Name         string `json:"name_service"`
	Availability string `json:"availability"`
}

// ============ Пользователи (Users) ============

type UserResponse struct {
	ID        uint   `json:"id_users"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Username  string `json:"username"`
	Role      string `json:"role"`
}

type RegisterRequest struct {
	Firstname       string `json:"firstname" binding:"required"`
	Lastname        string `json:"lastname"`
	Username        string `json:"username" binding:"required,min=3,max=50"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
	Role            string `json:"role" binding:"omitempty,oneof=Employee Manager Admin"`
}

type CreateUserRequest struct {
	Firstname string `json:"firstname" binding:"required"`
	Lastname  string `json:"lastname"`
	Username  string `json:"username" binding:"required,min=3,max=50"`
	Password  string `json:"password" binding:"required,min=6"`
	Role      string `json:"role" binding:"omitempty,oneof=Employee Manager Admin"`
}

type UpdateUserRequest struct {
	Firstname string `json:"firstname" binding:"required"`
	Lastname  string `json:"lastname"`
	Username  string `json:"username" binding:"required,min=3,max=50"`
	Role      string `json:"role" binding:"omitempty,oneof=Employee Manager Admin"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
