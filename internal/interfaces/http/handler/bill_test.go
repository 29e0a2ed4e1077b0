package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	billingapp "github.com/tenantbill/backend/internal/application/billing"
	"github.com/tenantbill/backend/internal/domain/billing"
	"github.com/tenantbill/backend/internal/domain/shared"
	"github.com/tenantbill/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

var testDueDate = time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

func newTestBill(t *testing.T, id, tenantID int64, paid bool) *billing.Bill {
	t.Helper()
	bill, err := billing.NewBill(tenantID, billing.Charges{
		MonthlyFee:  decimal.RequireFromString("400"),
		Water:       decimal.RequireFromString("10.50"),
		Electricity: decimal.RequireFromString("20.25"),
		Waste:       decimal.RequireFromString("4.25"),
	}, testDueDate, paid)
	require.NoError(t, err)
	bill.ID = id
	return bill
}

func setupBillHandler() (*gin.Engine, *MockBillRepository) {
	repo := new(MockBillRepository)
	h := NewBillHandler(billingapp.NewBillService(repo, zap.NewNop()))

	router := newTestRouter()
	router.GET("/bills", h.List)
	router.POST("/bills", h.Create)
	router.GET("/bills/overdue", h.ListOverdue)
	router.GET("/bills/:id", h.GetByID)
	router.PUT("/bills/:id", h.Update)
	router.DELETE("/bills/:id", h.Delete)
	router.POST("/bills/:id/pay", h.Pay)
	router.POST("/bills/:id/payments", h.RecordPayment)
	router.GET("/tenants/:id/bills", h.ListByTenant)
	router.GET("/tenants/:id/bills/unpaid", h.ListUnpaidByTenant)
	router.GET("/tenants/:id/bills/totaldue", h.TotalDue)
	return router, repo
}

func createBillBody() map[string]any {
	return map[string]any{
		"tenantId":    1,
		"monthlyFee":  "400",
		"water":       "10.50",
		"electricity": "20.25",
		"waste":       "4.25",
		"dueDate":     "2024-01-31T00:00:00Z",
		"isPaid":      false,
		"invoice":     map[string]any{"invoiceDate": "2024-01-01T00:00:00Z", "totalAmount": "435", "status": "pending"},
		"payments":    []map[string]any{{"amount": "100", "paymentDate": "2024-01-15T00:00:00Z", "paymentMethod": "Cash"}},
		"services":    []map[string]any{{"serviceName": "Water", "serviceFee": "10.50"}},
	}
}

func TestBillHandler_Create(t *testing.T) {
	router, repo := setupBillHandler()
	repo.On("Create", mock.Anything, mock.AnythingOfType("*billing.Bill")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*billing.Bill).ID = 42
		}).
		Return(nil)

	w := doJSON(router, http.MethodPost, "/bills", createBillBody())

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "/bills/42", w.Header().Get("Location"))

	var resp billingapp.BillResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, int64(1), resp.TenantID)
	assert.True(t, resp.Water.Equal(decimal.RequireFromString("10.50")))
	assert.True(t, resp.DueDate.Equal(testDueDate))
	require.NotNil(t, resp.Invoice)
	assert.Equal(t, string(billing.InvoiceStatusPending), resp.Invoice.Status)
	require.Len(t, resp.Payments, 1)
	assert.Equal(t, "Cash", resp.Payments[0].PaymentMethod)
	require.Len(t, resp.Services, 1)
	assert.Equal(t, "Water", resp.Services[0].ServiceName)
}

func TestBillHandler_Create_Errors(t *testing.T) {
	t.Run("malformed JSON", func(t *testing.T) {
		router, repo := setupBillHandler()
		w := doJSON(router, http.MethodPost, "/bills", `{"tenantId":`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dto.ErrCodeBadRequest, decodeError(t, w).Code)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("missing tenant id", func(t *testing.T) {
		router, _ := setupBillHandler()
		body := createBillBody()
		delete(body, "tenantId")
		w := doJSON(router, http.MethodPost, "/bills", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		errInfo := decodeError(t, w)
		assert.Equal(t, dto.ErrCodeValidation, errInfo.Code)
		assert.NotEmpty(t, errInfo.Details)
	})

	t.Run("negative amount", func(t *testing.T) {
		router, repo := setupBillHandler()
		body := createBillBody()
		body["water"] = "-1"
		w := doJSON(router, http.MethodPost, "/bills", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dto.ErrCodeValidationRange, decodeError(t, w).Code)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("sub-cent amount", func(t *testing.T) {
		router, repo := setupBillHandler()
		body := createBillBody()
		body["monthlyFee"] = "100.005"
		w := doJSON(router, http.MethodPost, "/bills", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dto.ErrCodeValidationRange, decodeError(t, w).Code)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unknown tenant", func(t *testing.T) {
		router, repo := setupBillHandler()
		repo.On("Create", mock.Anything, mock.Anything).Return(shared.ErrInvalidInput)
		w := doJSON(router, http.MethodPost, "/bills", createBillBody())

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dto.ErrCodeInvalidInput, decodeError(t, w).Code)
	})

	t.Run("unexpected repository failure", func(t *testing.T) {
		router, repo := setupBillHandler()
		repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection reset"))
		w := doJSON(router, http.MethodPost, "/bills", createBillBody())

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		errInfo := decodeError(t, w)
		assert.Equal(t, dto.ErrCodeInternal, errInfo.Code)
		assert.Equal(t, internalErrorMessage, errInfo.Message)
		assert.NotContains(t, w.Body.String(), "connection reset")
	})
}

func TestBillHandler_GetByID(t *testing.T) {
	router, repo := setupBillHandler()
	repo.On("FindByID", mock.Anything, int64(3)).Return(newTestBill(t, 3, 1, false), nil)
	repo.On("FindByID", mock.Anything, int64(99)).Return(nil, shared.ErrNotFound)

	w := doJSON(router, http.MethodGet, "/bills/3", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp billingapp.BillResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(3), resp.ID)
	assert.NotNil(t, resp.Payments)

	w = doJSON(router, http.MethodGet, "/bills/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, dto.ErrCodeNotFound, decodeError(t, w).Code)

	for _, id := range []string{"abc", "0", "-4"} {
		w = doJSON(router, http.MethodGet, "/bills/"+id, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, id)
		assert.Equal(t, dto.ErrCodeBadRequest, decodeError(t, w).Code)
	}
}

func TestBillHandler_List(t *testing.T) {
	router, repo := setupBillHandler()
	repo.On("FindAll", mock.Anything).Return([]billing.Bill{}, nil)

	w := doJSON(router, http.MethodGet, "/bills", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestBillHandler_Update(t *testing.T) {
	router, repo := setupBillHandler()
	bill := newTestBill(t, 5, 1, false)
	repo.On("Update", mock.Anything, int64(5)).Return(bill, nil)
	repo.On("Update", mock.Anything, int64(6)).Return(nil, shared.ErrNotFound)

	body := map[string]any{
		"tenantId":    2,
		"monthlyFee":  "500",
		"water":       "0",
		"electricity": "0",
		"waste":       "0",
		"dueDate":     "2024-02-29T00:00:00Z",
		"isPaid":      true,
	}

	w := doJSON(router, http.MethodPut, "/bills/5", body)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Equal(t, int64(2), bill.TenantID)
	assert.True(t, bill.IsPaid)

	w = doJSON(router, http.MethodPut, "/bills/6", body)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBillHandler_Delete(t *testing.T) {
	router, repo := setupBillHandler()
	repo.On("Delete", mock.Anything, int64(8)).Return(newTestBill(t, 8, 1, true), nil)
	repo.On("Delete", mock.Anything, int64(9)).Return(nil, shared.ErrNotFound)

	w := doJSON(router, http.MethodDelete, "/bills/8", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp billingapp.BillResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(8), resp.ID)

	w = doJSON(router, http.MethodDelete, "/bills/9", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBillHandler_Pay(t *testing.T) {
	router, repo := setupBillHandler()
	repo.On("Update", mock.Anything, int64(4)).Return(newTestBill(t, 4, 1, false), nil)

	w := doJSON(router, http.MethodPost, "/bills/4/pay", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp billingapp.BillResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.IsPaid)
	assert.Empty(t, resp.Payments)
}

func TestBillHandler_RecordPayment(t *testing.T) {
	router, repo := setupBillHandler()
	repo.On("AddPayment", mock.Anything, int64(4), mock.AnythingOfType("*billing.Payment")).
		Run(func(args mock.Arguments) {
			p := args.Get(2).(*billing.Payment)
			p.ID = 11
			p.BillID = 4
		}).
		Return(nil)
	repo.On("AddPayment", mock.Anything, int64(5), mock.Anything).Return(shared.ErrNotFound)

	body := map[string]any{"amount": "100.00", "paymentDate": "2024-01-20T00:00:00Z", "paymentMethod": "Card"}

	w := doJSON(router, http.MethodPost, "/bills/4/payments", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp billingapp.PaymentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(11), resp.ID)
	assert.Equal(t, int64(4), resp.BillID)
	assert.Equal(t, "Card", resp.PaymentMethod)

	w = doJSON(router, http.MethodPost, "/bills/5/payments", body)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBillHandler_TenantQueries(t *testing.T) {
	router, repo := setupBillHandler()
	repo.On("FindByTenant", mock.Anything, int64(1)).Return([]billing.Bill{*newTestBill(t, 1, 1, true), *newTestBill(t, 2, 1, false)}, nil)
	repo.On("FindUnpaidByTenant", mock.Anything, int64(1)).Return([]billing.Bill{*newTestBill(t, 2, 1, false)}, nil)
	repo.On("SumUnpaidByTenant", mock.Anything, int64(1)).Return(decimal.RequireFromString("150.75"), nil)
	repo.On("SumUnpaidByTenant", mock.Anything, int64(77)).Return(decimal.Zero, nil)
	repo.On("FindOverdue", mock.Anything, mock.Anything).Return([]billing.Bill{*newTestBill(t, 2, 1, false)}, nil)

	var bills []billingapp.BillResponse

	w := doJSON(router, http.MethodGet, "/tenants/1/bills", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bills))
	assert.Len(t, bills, 2)

	w = doJSON(router, http.MethodGet, "/tenants/1/bills/unpaid", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bills))
	require.Len(t, bills, 1)
	assert.False(t, bills[0].IsPaid)

	w = doJSON(router, http.MethodGet, "/bills/overdue", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bills))
	assert.Len(t, bills, 1)

	w = doJSON(router, http.MethodGet, "/tenants/1/bills/totaldue", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `150.75`, w.Body.String())

	w = doJSON(router, http.MethodGet, "/tenants/77/bills/totaldue", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `0`, w.Body.String())

	w = doJSON(router, http.MethodGet, "/tenants/x/bills", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
