package handler

import (
	"errors"
	"net/http"
	"strconv"

	"pos-backend/internal/app/dto"
	"pos-backend/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// GetCustomers возвращает список клиентов
// @Summary Список клиентов
// @Tags Customers
// @Produce json
// @Success 200 {array} ds.Customer
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/customers [get]
func (h *APIHandler) GetCustomers(c *gin.Context) {
	customers, err := h.Repository.GetCustomers()
	if err != nil {
		logrus.Error("Error getting customers: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения клиентов")
		return
	}

	c.JSON(http.StatusOK, customers)
}

// CreateCustomer добавляет клиента
// @Summary Добавление клиента
// @Tags Customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CustomerRequest true "Данные клиента"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/customers [post]
func (h *APIHandler) CreateCustomer(c *gin.Context) {
	var req dto.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	customer, err := h.Repository.CreateCustomer(req.Name, req.Email, req.Phone)
	if err != nil {
		logrus.Error("Error adding customer: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка добавления клиента")
		return
	}

	h.successResponse(c, http.StatusOK, "Клиент успешно добавлен", gin.H{
		"id_customers": customer.ID,
	})
}

// UpdateCustomer обновляет клиента
// @Summary Обновление клиента
// @Tags Customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID клиента"
// @Param request body dto.CustomerRequest true "Данные клиента"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/customers/{id} [put]
func (h *APIHandler) UpdateCustomer(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID клиента")
		return
	}

	var req dto.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	err = h.Repository.UpdateCustomer(uint(id), req.Name, req.Email, req.Phone)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			h.errorResponse(c, http.StatusNotFound, "Клиент не найден")
			return
		}
		logrus.Error("Error updating customer: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка обновления клиента")
		return
	}

	h.successResponse(c, http.StatusOK, "Клиент успешно обновлен", nil)
}

// DeleteCustomer удаляет клиента
// @Summary Удаление клиента
// @Tags Customers
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID клиента"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/customers/{id} [delete]
func (h *APIHandler) DeleteCustomer(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID клиента")
		return
	}

	err = h.Repository.DeleteCustomer(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			h.errorResponse(c, http.StatusNotFound, "Клиент не найден")
			return
		}
		logrus.Error("Error deleting customer: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка удаления клиента")
		return
	}

	h.successResponse(c, http.StatusOK, "Клиент успешно удален", nil)
}
