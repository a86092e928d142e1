package handler

import (
	"pos-backend/internal/app/middleware"
	"pos-backend/internal/app/role"

	"github.com/gin-gonic/gin"
)

// RegisterAPIRoutes регистрирует все REST API маршруты с авторизацией
func (h *APIHandler) RegisterAPIRoutes(router *gin.Engine, authMiddleware *middleware.AuthMiddleware) {
	// REST API маршруты
	api := router.Group("/api")

	anyStaff := authMiddleware.WithAuthCheck(role.Employee, role.Manager, role.Admin)
	adminOnly := authMiddleware.WithAuthCheck(role.Admin)

	// ============ Транзакции (Transactions) ============
	transactions := api.Group("/transactions")
	transactions.Use(anyStaff)
	{
		transactions.GET("", h.GetTransactions)
		transactions.GET("/:id", h.GetTransactionDetail)
		transactions.POST("", h.CreateTransaction)
		transactions.PUT("/:id", h.UpdateTransaction)
		transactions.DELETE("/:id", h.DeleteTransaction)
		transactions.POST("/:id/receipt", h.UploadTransactionReceipt)
	}

	// ============ Клиенты (Customers) ============
	customers := api.Group("/customers")
	{
		customers.GET("", h.GetCustomers)
		customers.POST("", anyStaff, h.CreateCustomer)
		customers.PUT("/:id", anyStaff, h.UpdateCustomer)
		customers.DELETE("/:id", anyStaff, h.DeleteCustomer)
	}

	// ============ Пользователи (Users) - управление только для админов ============
	users := api.Group("/users")
	{
		users.GET("", anyStaff, h.GetUsers)
		users.POST("", adminOnly, h.CreateUser)
		users.PUT("/:id", adminOnly, h.UpdateUser)
		users.DELETE("/:id", adminOnly, h.DeleteUser)
	}

	// ============ Товары и услуги (справочники) ============
	api.GET("/products", h.GetProducts)
	api.PUT("/products/:id", anyStaff, h.UpdateProduct)
	api.GET("/services", h.GetServices)
	api.GET("/services-with-products", h.GetServicesWithProducts)

	// ============ Аутентификация ============
	auth := api.Group("/auth")
	{
		// Публичные эндпоинты
		auth.POST("/register", h.AuthHandler.RegisterUser)
		auth.POST("/login", h.AuthHandler.LoginUser)

		// Защищенные эндпоинты
		auth.GET("/profile", anyStaff, h.AuthHandler.GetUserProfile)
		auth.POST("/logout", anyStaff, h.AuthHandler.LogoutUser)
	}

	// Ping эндпоинт для проверки
	router.GET("/ping", h.Ping)
}

// Ping проверяет работоспособность API
// @Summary Проверка работоспособности
// @Description Возвращает простой ответ для проверки работы сервера
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func (h *APIHandler) Ping(ctx *gin.Context) {
	ctx.JSON(200, gin.H{"message": "pong"})
}
