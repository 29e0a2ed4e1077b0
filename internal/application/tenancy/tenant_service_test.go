package tenancy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tenantbill/backend/internal/domain/shared"
	"github.com/tenantbill/backend/internal/domain/tenancy"
	"go.uber.org/zap"
)

// MockTenantRepository is a mock implementation of tenancy.TenantRepository.
// Update loads the entity through Called and applies fn to it like the real
// repository does inside its transaction.
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
	return args.Get(0).([]tenancy.Tenant), args.Error(1)
}

func (m *MockTenantRepository) Create(ctx context.Context, tenant *tenancy.Tenant) error {
	args := m.Called(ctx, tenant)
	return args.Error(0)
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

func newTenant(t *testing.T, id int64, name string) *tenancy.Tenant {
	t.Helper()
	tenant, err := tenancy.NewTenant(name, "", "555-0100", "1 Main St")
	require.NoError(t, err)
	tenant.ID = id
	return tenant
}

func TestTenantService_List(t *testing.T) {
	ctx := context.Background()
	repo := new(MockTenantRepository)
	repo.On("FindAll", ctx).Return([]tenancy.Tenant{*newTenant(t, 1, "Alice"), *newTenant(t, 2, "Bob")}, nil)

	svc := NewTenantService(repo, zap.NewNop())
	tenants, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, tenants, 2)
	assert.Equal(t, "Alice", tenants[0].Name)
	assert.Equal(t, int64(2), tenants[1].ID)
}

func TestTenantService_GetByID(t *testing.T) {
	ctx := context.Background()
	repo := new(MockTenantRepository)
	repo.On("FindByID", ctx, int64(1)).Return(newTenant(t, 1, "Alice"), nil)
	repo.On("FindByID", ctx, int64(9)).Return(nil, shared.ErrNotFound)
	svc := NewTenantService(repo, zap.NewNop())

	tenant, err := svc.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "555-0100", tenant.PhoneNumber)

	_, err = svc.GetByID(ctx, 9)
	assert.True(t, shared.IsNotFound(err))
}

func TestTenantService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("stores and returns tenant with id", func(t *testing.T) {
		repo := new(MockTenantRepository)
		repo.On("Create", ctx, mock.AnythingOfType("*tenancy.Tenant")).Run(func(args mock.Arguments) {
			args.Get(1).(*tenancy.Tenant).ID = 42
		}).Return(nil)
		svc := NewTenantService(repo, zap.NewNop())

		tenant, err := svc.Create(ctx, CreateTenantRequest{Name: " Alice ", Email: "alice@example.com"})
		require.NoError(t, err)
		assert.Equal(t, int64(42), tenant.ID)
		assert.Equal(t, "Alice", tenant.Name)
		repo.AssertExpectations(t)
	})

	t.Run("blank name is rejected", func(t *testing.T) {
		repo := new(MockTenantRepository)
		svc := NewTenantService(repo, zap.NewNop())

		_, err := svc.Create(ctx, CreateTenantRequest{Name: "   "})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "VALIDATION_REQUIRED", domainErr.Code)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestTenantService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("changes name and email only", func(t *testing.T) {
		tenant := newTenant(t, 1, "Alice")
		repo := new(MockTenantRepository)
		repo.On("Update", ctx, int64(1)).Return(tenant, nil)
		svc := NewTenantService(repo, zap.NewNop())

		err := svc.Update(ctx, 1, UpdateTenantRequest{Name: "Alicia", Email: "alicia@example.com"})
		require.NoError(t, err)
		assert.Equal(t, "Alicia", tenant.Name)
		assert.Equal(t, "alicia@example.com", tenant.Email)
		assert.Equal(t, "555-0100", tenant.PhoneNumber)
		assert.Equal(t, "1 Main St", tenant.Address)
	})

	t.Run("missing tenant", func(t *testing.T) {
		repo := new(MockTenantRepository)
		repo.On("Update", ctx, int64(9)).Return(nil, shared.ErrNotFound)
		svc := NewTenantService(repo, zap.NewNop())

		err := svc.Update(ctx, 9, UpdateTenantRequest{Name: "X"})
		assert.True(t, shared.IsNotFound(err))
	})
}

func TestTenantService_Delete(t *testing.T) {
	ctx := context.Background()
	repo := new(MockTenantRepository)
	repo.On("Delete", ctx, int64(1)).Return(newTenant(t, 1, "Alice"), nil)
	repo.On("Delete", ctx, int64(2)).Return(nil, shared.ErrConflict)
	svc := NewTenantService(repo, zap.NewNop())

	deleted, err := svc.Delete(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Alice", deleted.Name)

	_, err = svc.Delete(ctx, 2)
	assert.ErrorIs(t, err, shared.ErrConflict)
}
