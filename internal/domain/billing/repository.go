package billing

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tenantbill/backend/internal/domain/shared"
)

// BillRepository persists bills together with their invoice, payments and services.
// Create stores the whole bill in one transaction and fails with
// shared.ErrInvalidInput when TenantID references no tenant.
type BillRepository interface {
	shared.Repository[Bill]
	shared.Mutator[Bill]

	// FindByTenant returns every bill of a tenant; unknown tenants yield an empty slice
	FindByTenant(ctx context.Context, tenantID int64) ([]Bill, error)
	FindUnpaidByTenant(ctx context.Context, tenantID int64) ([]Bill, error)
	// FindOverdue returns unpaid bills whose due date is before asOf
	FindOverdue(ctx context.Context, asOf time.Time) ([]Bill, error)
	// SumUnpaidByTenant returns the total charges of the tenant's unpaid bills, zero if none
	SumUnpaidByTenant(ctx context.Context, tenantID int64) (decimal.Decimal, error)
	// AddPayment stores a payment against an existing bill
	AddPayment(ctx context.Context, billID int64, payment *Payment) error
}
