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

// GetUsers возвращает список пользователей
// @Summary Список пользователей
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.UserResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/users [get]
func (h *APIHandler) GetUsers(c *gin.Context) {
	users, err := h.Repository.GetUsers()
	if err != nil {
		logrus.Error("Error getting users: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения пользователей")
		return
	}

	// Пароли наружу не отдаем
	result := make([]dto.UserResponse, len(users))
	for i, u := range users {
		result[i] = dto.UserResponse{
			ID:        u.ID,
			Firstname: u.Firstname,
			Lastname:  u.Lastname,
			Username:  u.Username,
			Role:      u.Role,
		}
	}

	c.JSON(http.StatusOK, result)
}

// CreateUser добавляет пользователя
// @Summary Добавление пользователя
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateUserRequest true "Данные пользователя"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/users [post]
func (h *APIHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	userRole := req.Role
	if userRole == "" {
		userRole = "Employee"
	}

	user, err := h.Repository.CreateUser(req.Firstname, req.Lastname, req.Username, generateHashString(req.Password), userRole)
	if err != nil {
		logrus.Error("Error adding user: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка добавления пользователя")
		return
	}

	h.successResponse(c, http.StatusOK, "Пользователь успешно добавлен", gin.H{
		"id_users": user.ID,
	})
}

// UpdateUser обновляет пользователя (без смены пароля)
// @Summary Обновление пользователя
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID пользователя"
// @Param request body dto.UpdateUserRequest true "Данные пользователя"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/users/{id} [put]
func (h *APIHandler) UpdateUser(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID пользователя")
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	err = h.Repository.UpdateUser(uint(id), req.Firstname, req.Lastname, req.Username, req.Role)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			h.errorResponse(c, http.StatusNotFound, "Пользователь не найден")
			return
		}
		logrus.Error("Error updating user: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка обновления пользователя")
		return
	}

	h.successResponse(c, http.StatusOK, "Пользователь успешно обновлен", nil)
}

// DeleteUser удаляет пользователя
// @Summary Удаление пользователя
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID пользователя"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/users/{id} [delete]
func (h *APIHandler) DeleteUser(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID пользователя")
		return
	}

	err = h.Repository.DeleteUser(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			h.errorResponse(c, http.StatusNotFound, "Пользователь не найден")
			return
		}
		logrus.Error("Error deleting user: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка удаления пользователя")
		return
	}

	h.successResponse(c, http.StatusOK, "Пользователь успешно удален", nil)
}
