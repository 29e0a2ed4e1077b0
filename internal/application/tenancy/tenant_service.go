package tenancy

import (
	"context"

	"github.com/tenantbill/backend/internal/domain/tenancy"
	"go.uber.org/zap"
)

// TenantService handles tenant-related business operations
type TenantService struct {
	tenantRepo tenancy.TenantRepository
	logger     *zap.Logger
}

// NewTenantService creates a new TenantService
func NewTenantService(tenantRepo tenancy.TenantRepository, logger *zap.Logger) *TenantService {
	return &TenantService{
		tenantRepo: tenantRepo,
		logger:     logger,
	}
}

// List returns every tenant
func (s *TenantService) List(ctx context.Context) ([]TenantResponse, error) {
	tenants, err := s.tenantRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToTenantResponses(tenants), nil
}

// GetByID retrieves a tenant by ID
func (s *TenantService) GetByID(ctx context.Context, id int64) (*TenantResponse, error) {
	tenant, err := s.tenantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToTenantResponse(tenant)
	return &response, nil
}

// Create creates a new tenant
func (s *TenantService) Create(ctx context.Context, req CreateTenantRequest) (*TenantResponse, error) {
	tenant, err := tenancy.NewTenant(req.Name, req.Email, req.PhoneNumber, req.Address)
	if err != nil {
		return nil, err
	}
	if err := s.tenantRepo.Create(ctx, tenant); err != nil {
		return nil, err
	}

	s.logger.Info("Tenant created", zap.Int64("tenant_id", tenant.ID))
	response := ToTenantResponse(tenant)
	return &response, nil
}

// Update changes the tenant's name and email
func (s *TenantService) Update(ctx context.Context, id int64, req UpdateTenantRequest) error {
	_, err := s.tenantRepo.Update(ctx, id, func(t *tenancy.Tenant) error {
		return t.UpdateContact(req.Name, req.Email)
	})
	return err
}

// Delete removes a tenant and returns it. Tenants that still have bills
// cannot be deleted.
func (s *TenantService) Delete(ctx context.Context, id int64) (*TenantResponse, error) {
	tenant, err := s.tenantRepo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Tenant deleted", zap.Int64("tenant_id", id))
	response := ToTenantResponse(tenant)
	return &response, nil
}
