package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"pos-backend/internal/app/ds"
	"pos-backend/internal/app/repository"
	"pos-backend/internal/app/role"

	"github.com/gin-gonic/gin"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockTransactionStore struct {
	mock.Mock
}

func (m *mockTransactionStore) CreateTransaction(in repository.TransactionInput) (*ds.Transaction, error) {
	args := m.Called(in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ds.Transaction), args.Error(1)
}

func (m *mockTransactionStore) UpdateTransaction(id uint, in repository.TransactionInput) error {
	args := m.Called(id, in)
	return args.Error(0)
}

func (m *mockTransactionStore) DeleteTransaction(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *mockTransactionStore) UpdateTransactionReceipt(id uint, receiptURL string) error {
	args := m.Called(id, receiptURL)
	return args.Error(0)
}

func (m *mockTransactionStore) GetTransactions() ([]repository.TransactionListRow, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.TransactionListRow), args.Error(1)
}

func (m *mockTransactionStore) GetTransactionDetail(id uint) (*repository.TransactionDetail, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.TransactionDetail), args.Error(1)
}

func setupRouter(store TransactionStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &APIHandler{Store: store}

	r := gin.New()
	r.POST("/api/transactions", h.CreateTransaction)
	r.PUT("/api/transactions/:id", h.UpdateTransaction)
	r.DELETE("/api/transactions/:id", h.DeleteTransaction)
	r.GET("/api/transactions/:id", h.GetTransactionDetail)
	r.POST("/api/transactions/:id/receipt", h.UploadTransactionReceipt)
	return r
}

func performJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validTransactionBody() map[string]interface{} {
	return map[string]interface{}{
		"name":                "Иван",
		"name_service":        []string{"Wash", "Wax"},
		"price_service":       []float64{15000, 25000},
		"quantity":            []int{5, 2},
		"total_transactions":  125000,
		"issued_transactions": "2024-01-15",
		"id_customers":        1,
		"id_users":            2,
	}
}

func TestCreateTransactionMissingFields(t *testing.T) {
	store := new(mockTransactionStore)
	r := setupRouter(store)

	body := validTransactionBody()
	delete(body, "name")

	w := performJSON(r, http.MethodPost, "/api/transactions", body)

	// Валидация должна сработать до обращения к хранилищу
	assert.Equal(t, http.StatusBadRequest, w.Code)
	store.AssertNotCalled(t, "CreateTransaction", mock.Anything)
}

func TestCreateTransactionRaggedLists(t *testing.T) {
	store := new(mockTransactionStore)
	r := setupRouter(store)

	body := validTransactionBody()
	body["quantity"] = []int{5} // две услуги, одно количество

	w := performJSON(r, http.MethodPost, "/api/transactions", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	store.AssertNotCalled(t, "CreateTransaction", mock.Anything)
}

func TestCreateTransactionSuccess(t *testing.T) {
	store := new(mockTransactionStore)
	r := setupRouter(store)

	expectedLines := []ds.TransactionLine{
		{ServiceName: "Wash", UnitPrice: 15000, Quantity: 5},
		{ServiceName: "Wax", UnitPrice: 25000, Quantity: 2},
	}
	store.On("CreateTransaction", mock.MatchedBy(func(in repository.TransactionInput) bool {
		return in.Name == "Иван" &&
			in.CustomerID == 1 && in.UserID == 2 &&
			assert.ObjectsAreEqual(expectedLines, in.Lines)
	})).Return(&ds.Transaction{ID: 42}, nil)

	w := performJSON(r, http.MethodPost, "/api/transactions", validTransactionBody())

	require.Equal(t, http.StatusOK, w.Code)
	store.AssertExpectations(t)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp["status"])
}

func TestCreateTransactionInsufficientInventory(t *testing.T) {
	store := new(mockTransactionStore)
	r := setupRouter(store)

	store.On("CreateTransaction", mock.Anything).
		Return(nil, fmt.Errorf("%w: услуга %q", repository.ErrInsufficientInventory, "Wash"))

	w := performJSON(r, http.MethodPost, "/api/transactions", validTransactionBody())

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateTransactionServiceNameConflict(t *testing.T) {
	store := new(mockTransactionStore)
	r := setupRouter(store)

	store.On("CreateTransaction", mock.Anything).
		Return(nil, fmt.Errorf("%w: %q", repository.ErrServiceNameConflict, "Wash"))

	w := performJSON(r, http.MethodPost, "/api/transactions", validTransactionBody())

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateTransactionStoreFailure(t *testing.T) {
	store := new(mockTransactionStore)
	r := setupRouter(store)

	store.On("CreateTransaction", mock.Anything).
		Return(nil, fmt.Errorf("не удалось сохранить транзакцию: connection refused"))

	w := performJSON(r, http.MethodPost, "/api/transactions", validTransactionBody())

	// Один терминальный отказ, без частичного успеха
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "fail", resp["status"])
	assert.Contains(t, resp["details"], "connection refused")
}

func TestUpdateTransactionNotFound(t *testing.T) {
	store := new(mockTransactionStore)
	r := setupRouter(store)

	store.On("UpdateTransaction", uint(99), mock.Anything).
		Return(repository.ErrTransactionNotFound)

	w := performJSON(r, http.MethodPut, "/api/transactions/99", validTransactionBody())

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateTransactionBadID(t *testing.T) {
	store := new(mockTransactionStore)
	r := setupRouter(store)

	w := performJSON(r, http.MethodPut, "/api/transactions/abc", validTransactionBody())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	store.AssertNotCalled(t, "UpdateTransaction", mock.Anything, mock.Anything)
}

func TestDeleteTransactionNotFound(t *testing.T) {
	store := new(mockTransactionStore)
	r := setupRouter(store)

	store.On("DeleteTransaction", uint(7)).Return(repository.ErrTransactionNotFound)

	w := performJSON(r, http.MethodDelete, "/api/transactions/7", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteTransactionSuccess(t *testing.T) {
	store := new(mockTransactionStore)
	r := setupRouter(store)

	store.On("DeleteTransaction", uint(7)).Return(nil)

	w := performJSON(r, http.MethodDelete, "/api/transactions/7", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	store.AssertExpectations(t)
}

func TestGetTransactionDetailNotFound(t *testing.T) {
	store := new(mockTransactionStore)
	r := setupRouter(store)

	store.On("GetTransactionDetail", uint(123)).
		Return(nil, repository.ErrTransactionNotFound)

	w := performJSON(r, http.MethodGet, "/api/transactions/123", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetTransactionDetailIdempotentRead(t *testing.T) {
	store := new(mockTransactionStore)
	r := setupRouter(store)

	detail := &repository.TransactionDetail{
		ID:           1,
		Name:         "Иван",
		NameService:  "Wash\nWax",
		PriceService: "15000\n25000",
		Quantity:     "5\n2",
		Issued:       "2024-01-15",
		Total:        125000,
		CustomerID:   1,
		UserID:       2,
		CustomerName: "ООО Ромашка",
	}
	store.On("GetTransactionDetail", uint(1)).Return(detail, nil)

	first := performJSON(r, http.MethodGet, "/api/transactions/1", nil)
	second := performJSON(r, http.MethodGet, "/api/transactions/1", nil)

	require.Equal(t, http.StatusOK, first.Code)
	// Повторное чтение без записи между запросами возвращает байт в байт тот же JSON
	assert.Equal(t, first.Body.Bytes(), second.Body.Bytes())
}

func TestCreateTransactionAuditLog(t *testing.T) {
	store := new(mockTransactionStore)
	gin.SetMode(gin.TestMode)
	h := &APIHandler{Store: store}

	r := gin.New()
	r.POST("/api/transactions", func(c *gin.Context) {
		// Контекст как после прохождения авторизации
		c.Set("userID", uint(7))
		c.Set("userRole", role.Admin)
	}, h.CreateTransaction)

	store.On("CreateTransaction", mock.Anything).Return(&ds.Transaction{ID: 42}, nil)

	hook := logrustest.NewGlobal()
	defer hook.Reset()

	w := performJSON(r, http.MethodPost, "/api/transactions", validTransactionBody())

	require.Equal(t, http.StatusOK, w.Code)

	var audited bool
	for _, entry := range hook.AllEntries() {
		if entry.Data["operator_id"] == uint(7) {
			audited = true
			assert.Equal(t, uint(42), entry.Data["id_transactions"])
			assert.Equal(t, "Admin", entry.Data["operator_role"])
		}
	}
	assert.True(t, audited, "запись аудита с оператором не найдена")
}

func TestUploadTransactionReceiptNotFound(t *testing.T) {
	store := new(mockTransactionStore)
	r := setupRouter(store)

	store.On("GetTransactionDetail", uint(5)).
		Return(nil, repository.ErrTransactionNotFound)

	w := performJSON(r, http.MethodPost, "/api/transactions/5/receipt", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUploadTransactionReceiptStoreFailure(t *testing.T) {
	store := new(mockTransactionStore)
	r := setupRouter(store)

	// Отказ хранилища при проверке существования — не то же самое,
	// что отсутствующая транзакция
	store.On("GetTransactionDetail", uint(5)).
		Return(nil, fmt.Errorf("connection refused"))

	w := performJSON(r, http.MethodPost, "/api/transactions/5/receipt", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["details"], "connection refused")
}
