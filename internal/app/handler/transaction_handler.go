package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"pos-backend/internal/app/ds"
	"pos-backend/internal/app/dto"
	"pos-backend/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// TransactionStore описывает операции хранилища, которые нужны
// обработчикам транзакций. Реализуется *repository.Repository.
type TransactionStore interface {
	CreateTransaction(in repository.TransactionInput) (*ds.Transaction, error)
	UpdateTransaction(id uint, in repository.TransactionInput) error
	DeleteTransaction(id uint) error
	UpdateTransactionReceipt(id uint, receiptURL string) error
	GetTransactions() ([]repository.TransactionListRow, error)
	GetTransactionDetail(id uint) (*repository.TransactionDetail, error)
}

// validateTransactionRequest проверяет форму запроса до обращения к хранилищу.
// Три параллельных списка обязаны быть непустыми и одинаковой длины.
func validateTransactionRequest(req *dto.TransactionRequest) error {
	if len(req.NameService) == 0 {
		return errors.New("список услуг пуст")
	}
	if len(req.NameService) != len(req.PriceService) || len(req.NameService) != len(req.Quantity) {
		return fmt.Errorf("несовпадающая длина списков: услуг %d, цен %d, количеств %d",
			len(req.NameService), len(req.PriceService), len(req.Quantity))
	}
	return nil
}

// toTransactionInput собирает позиции из параллельных списков запроса
func toTransactionInput(req *dto.TransactionRequest) repository.TransactionInput {
	lines := make([]ds.TransactionLine, len(req.NameService))
	for i := range req.NameService {
		lines[i] = ds.TransactionLine{
			ServiceName: req.NameService[i],
			UnitPrice:   req.PriceService[i],
			Quantity:    req.Quantity[i],
		}
	}
	return repository.TransactionInput{
		Name:       req.Name,
		Lines:      lines,
		Total:      req.Total,
		Issued:     req.Issued,
		CustomerID: req.CustomerID,
		UserID:     req.UserID,
	}
}

// CreateTransaction создает транзакцию
// @Summary Создание транзакции
// @Description Сохраняет транзакцию и атомарно списывает остатки товаров по каждой позиции
// @Tags Transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.TransactionRequest true "Данные транзакции"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/transactions [post]
func (h *APIHandler) CreateTransaction(c *gin.Context) {
	var req dto.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Отсутствуют обязательные поля: "+err.Error())
		return
	}

	if err := validateTransactionRequest(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	txn, err := h.Store.CreateTransaction(toTransactionInput(&req))
	if err != nil {
		logrus.Error("Error creating transaction: ", err)
		switch {
		case errors.Is(err, repository.ErrInsufficientInventory),
			errors.Is(err, repository.ErrServiceNameConflict):
			h.errorResponseWithDetails(c, http.StatusConflict, "Транзакция отклонена", err)
		default:
			h.errorResponseWithDetails(c, http.StatusInternalServerError, "Ошибка сохранения транзакции", err)
		}
		return
	}

	// Аудит: кто из авторизованных оформил транзакцию
	if operatorID, operatorRole, err := h.getUserFromContext(c); err == nil {
		logrus.WithFields(logrus.Fields{
			"id_transactions": txn.ID,
			"operator_id":     operatorID,
			"operator_role":   operatorRole.String(),
		}).Info("транзакция оформлена")
	}

	h.successResponse(c, http.StatusOK, "Транзакция успешно добавлена", gin.H{
		"id_transactions": txn.ID,
	})
}

// UpdateTransaction обновляет транзакцию
// @Summary Обновление транзакции
// @Description Перезаписывает поля транзакции на месте, остатки товаров не пересчитываются
// @Tags Transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID транзакции"
// @Param request body dto.TransactionRequest true "Данные транзакции"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/transactions/{id} [put]
func (h *APIHandler) UpdateTransaction(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID транзакции")
		return
	}

	var req dto.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Отсутствуют обязательные поля: "+err.Error())
		return
	}

	if err := validateTransactionRequest(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	err = h.Store.UpdateTransaction(uint(id), toTransactionInput(&req))
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			h.errorResponse(c, http.StatusNotFound, "Транзакция не найдена")
			return
		}
		logrus.Error("Error updating transaction: ", err)
		h.errorResponseWithDetails(c, http.StatusInternalServerError, "Ошибка обновления транзакции", err)
		return
	}

	h.successResponse(c, http.StatusOK, "Транзакция успешно обновлена", nil)
}

// DeleteTransaction удаляет транзакцию
// @Summary Удаление транзакции
// @Description Удаляет запись транзакции, возврата товара на склад нет
// @Tags Transactions
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID транзакции"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/transactions/{id} [delete]
func (h *APIHandler) DeleteTransaction(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID транзакции")
		return
	}

	err = h.Store.DeleteTransaction(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			h.errorResponse(c, http.StatusNotFound, "Транзакция не найдена")
			return
		}
		logrus.Error("Error deleting transaction: ", err)
		h.errorResponseWithDetails(c, http.StatusInternalServerError, "Ошибка удаления транзакции", err)
		return
	}

	h.successResponse(c, http.StatusOK, "Транзакция успешно удалена", nil)
}

// GetTransactions возвращает список транзакций
// @Summary Список транзакций
// @Description Возвращает транзакции с данными клиента, услуги и оператора
// @Tags Transactions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.TransactionListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/transactions [get]
func (h *APIHandler) GetTransactions(c *gin.Context) {
	rows, err := h.Store.GetTransactions()
	if err != nil {
		logrus.Error("Error getting transactions: ", err)
		h.errorResponseWithDetails(c, http.StatusInternalServerError, "Ошибка получения транзакций", err)
		return
	}

	items := make([]dto.TransactionListItem, len(rows))
	for i, row := range rows {
		items[i] = dto.TransactionListItem{
			ID:            row.ID,
			Name:          row.Name,
			NameService:   row.NameService,
			Issued:        row.Issued,
			Total:         row.Total,
			CustomerName:  row.CustomerName,
			CustomerEmail: row.CustomerEmail,
			CustomerPhone: row.CustomerPhone,
			ServiceID:     row.ServiceID,
			UserFirstname: row.UserFirstname,
			UserLastname:  row.UserLastname,
		}
	}

	c.JSON(http.StatusOK, dto.TransactionListResponse{
		Transactions: items,
		Total:        len(items),
	})
}

// GetTransactionDetail возвращает одну транзакцию
// @Summary Детали транзакции
// @Description Возвращает транзакцию со сплющенными полями позиций
// @Tags Transactions
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID транзакции"
// @Success 200 {object} dto.TransactionDetailResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/transactions/{id} [get]
func (h *APIHandler) GetTransactionDetail(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID транзакции")
		return
	}

	d, err := h.Store.GetTransactionDetail(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			h.errorResponse(c, http.StatusNotFound, "Транзакция не найдена")
			return
		}
		logrus.Error("Error getting transaction detail: ", err)
		h.errorResponseWithDetails(c, http.StatusInternalServerError, "Ошибка получения транзакции", err)
		return
	}

	receiptURL := ""
	if d.ReceiptURL != nil {
		receiptURL = *d.ReceiptURL
	}

	c.JSON(http.StatusOK, dto.TransactionDetailResponse{
		ID:            d.ID,
		Name:          d.Name,
		NameService:   d.NameService,
		PriceService:  d.PriceService,
		Quantity:      d.Quantity,
		Issued:        d.Issued,
		Total:         d.Total,
		CustomerID:    d.CustomerID,
		UserID:        d.UserID,
		CustomerName:  d.CustomerName,
		CustomerEmail: d.CustomerEmail,
		CustomerPhone: d.CustomerPhone,
		UserFirstname: d.UserFirstname,
		UserLastname:  d.UserLastname,
		ReceiptURL:    receiptURL,
	})
}

// UploadTransactionReceipt загружает чек для транзакции
// @Summary Загрузка чека
// @Description Сохраняет файл чека в MinIO и привязывает его к транзакции
// @Tags Transactions
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID транзакции"
// @Param receipt formData file true "Файл чека"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/transactions/{id}/receipt [post]
func (h *APIHandler) UploadTransactionReceipt(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID транзакции")
		return
	}

	// Проверяем существование транзакции
	detail, err := h.Store.GetTransactionDetail(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			h.errorResponse(c, http.StatusNotFound, "Транзакция не найдена")
			return
		}
		logrus.Error("Error checking transaction: ", err)
		h.errorResponseWithDetails(c, http.StatusInternalServerError, "Ошибка получения транзакции", err)
		return
	}

	if h.MinIOClient == nil {
		h.errorResponse(c, http.StatusInternalServerError, "Хранилище файлов не настроено")
		return
	}

	file, err := c.FormFile("receipt")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Файл не найден в запросе")
		return
	}

	openedFile, err := file.Open()
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка чтения файла")
		return
	}
	defer openedFile.Close()

	fileData, err := io.ReadAll(openedFile)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка чтения файла")
		return
	}

	// Удаляем старый чек, если был
	if detail.ReceiptURL != nil && *detail.ReceiptURL != "" {
		if err := h.MinIOClient.DeleteFile(*detail.ReceiptURL); err != nil {
			logrus.Warnf("Failed to delete old receipt %s: %v", *detail.ReceiptURL, err)
		}
	}

	filename, err := h.MinIOClient.UploadReceipt(fileData, file.Filename)
	if err != nil {
		logrus.Error("Error uploading to MinIO: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка загрузки чека")
		return
	}

	if err := h.Store.UpdateTransactionReceipt(uint(id), filename); err != nil {
		logrus.Error("Error saving receipt url: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка привязки чека")
		return
	}

	h.successResponse(c, http.StatusOK, "Чек успешно загружен", gin.H{
		"receipt_url": filename,
	})
}
