package tenancy

import "github.com/tenantbill/backend/internal/domain/shared"

// TenantRepository persists tenants.
// Delete fails with shared.ErrConflict while bills still reference the tenant.
type TenantRepository interface {
	shared.Repository[Tenant]
	shared.Mutator[Tenant]
}
