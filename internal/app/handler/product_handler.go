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

// GetProducts возвращает список товаров с остатками
// @Summary Список товаров
// @Tags Products
// @Produce json
// @Success 200 {array} ds.Product
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/products [get]
func (h *APIHandler) GetProducts(c *gin.Context) {
	products, err := h.Repository.GetProducts()
	if err != nil {
		logrus.Error("Error getting products: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения товаров")
		return
	}

	c.JSON(http.StatusOK, products)
}

// UpdateProduct обновляет товар
// @Summary Обновление товара
// @Tags Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID товара"
// @Param request body dto.UpdateProductRequest true "Данные товара"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/products/{id} [put]
func (h *APIHandler) UpdateProduct(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID товара")
		return
	}

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	err = h.Repository.UpdateProduct(uint(id), req.Name, req.Quantity)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			h.errorResponse(c, http.StatusNotFound, "Товар не найден")
			return
		}
		logrus.Error("Error updating product: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка обновления товара")
		return
	}

	h.successResponse(c, http.StatusOK, "Товар успешно обновлен", nil)
}

// GetServices возвращает список услуг
// @Summary Список услуг
// @Tags Services
// @Produce json
// @Success 200 {array} ds.Service
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/services [get]
func (h *APIHandler) GetServices(c *gin.Context) {
	services, err := h.Repository.GetServices()
	if err != nil {
		logrus.Error("Error getting services: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения услуг")
		return
	}

	c.JSON(http.StatusOK, services)
}

// GetServicesWithProducts возвращает услуги с признаком доступности
// @Summary Доступность услуг
// @Description Услуга недоступна, если хотя бы один товар из её состава закончился
// @Tags Services
// @Produce json
// @Success 200 {array} dto.ServiceAvailability
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/services-with-products [get]
func (h *APIHandler) GetServicesWithProducts(c *gin.Context) {
	rows, err := h.Repository.GetServicesWithAvailability()
	if err != nil {
		logrus.Error("Error getting services availability: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения доступности услуг")
		return
	}

	result := make([]dto.ServiceAvailability, len(rows))
	for i, row := range rows {
		result[i] = dto.ServiceAvailability{
			ID:           row.ID,
			Name:         row.Name,
			Availability: row.Availability,
		}
	}

	c.JSON(http.StatusOK, result)
}
