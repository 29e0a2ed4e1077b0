package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tenantbill/backend/internal/domain/billing"
	"github.com/tenantbill/backend/internal/domain/identity"
	"github.com/tenantbill/backend/internal/domain/shared"
	"github.com/tenantbill/backend/internal/domain/tenancy"
	"github.com/tenantbill/backend/internal/interfaces/http/dto"
	"github.com/tenantbill/backend/internal/interfaces/http/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// MockBillRepository implements billing.BillRepository for testing
type MockBillRepository struct {
	mock.Mock
}

func (m *MockBillRepository) FindByID(ctx context.Context, id int64) (*billing.Bill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Bill), args.Error(1)
}

func (m *MockBillRepository) FindAll(ctx context.Context) ([]billing.Bill, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]billing.Bill), args.Error(1)
}

func (m *MockBillRepository) Create(ctx context.Context, bill *billing.Bill) error {
	return m.Called(ctx, bill).Error(0)
}

func (m *MockBillRepository) Delete(ctx context.Context, id int64) (*billing.Bill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Bill), args.Error(1)
}

func (m *MockBillRepository) Update(ctx context.Context, id int64, fn shared.MutateFunc[billing.Bill]) (*billing.Bill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	bill := args.Get(0).(*billing.Bill)
	if err := fn(bill); err != nil {
		return nil, err
	}
	return bill, args.Error(1)
}

func (m *MockBillRepository) FindByTenant(ctx context.Context, tenantID int64) ([]billing.Bill, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]billing.Bill), args.Error(1)
}

func (m *MockBillRepository) FindUnpaidByTenant(ctx context.Context, tenantID int64) ([]billing.Bill, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]billing.Bill), args.Error(1)
}

func (m *MockBillRepository) FindOverdue(ctx context.Context, asOf time.Time) ([]billing.Bill, error) {
	args := m.Called(ctx, asOf)
	return args.Get(0).([]billing.Bill), args.Error(1)
}

func (m *MockBillRepository) SumUnpaidByTenant(ctx context.Context, tenantID int64) (decimal.Decimal, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockBillRepository) AddPayment(ctx context.Context, billID int64, payment *billing.Payment) error {
	return m.Called(ctx, billID, payment).Error(0)
}

// MockTenantRepository implements tenancy.TenantRepository for testing
type MockTenantRepository struct {
	mock.Mock
}

func (m *MockTenantRepository) FindByID(ctx context.Context, id int64) (*tenancy.Tenant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tenancy.Tenant), args.Error(1)
}

func (m *MockTenantRepository) FindAll(ctx context.Context) ([]tenancy.Tenant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tenancy.Tenant), args.Error(1)
}

func (m *MockTenantRepository) Create(ctx context.Context, tenant *tenancy.Tenant) error {
	return m.Called(ctx, tenant).Error(0)
}

func (m *MockTenantRepository) Delete(ctx context.Context, id int64) (*tenancy.Tenant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tenancy.Tenant), args.Error(1)
}

func (m *MockTenantRepository) Update(ctx context.Context, id int64, fn shared.MutateFunc[tenancy.Tenant]) (*tenancy.Tenant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	tenant := args.Get(0).(*tenancy.Tenant)
	if err := fn(tenant); err != nil {
		return nil, err
	}
	return tenant, args.Error(1)
}

// MockUserRepository implements identity.UserRepository for testing
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *identity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *identity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int64) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*identity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func newTestRouter() *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID())
	return router
}

func doJSON(router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		_ = json.NewEncoder(&buf).Encode(b)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) *dto.ErrorInfo {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	return resp.Error
}
