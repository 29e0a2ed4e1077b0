package billing

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tenantbill/backend/internal/domain/shared"
)

// Charges are the four recurring amounts that make up a bill
type Charges struct {
	MonthlyFee  decimal.Decimal
	Water       decimal.Decimal
	Electricity decimal.Decimal
	Waste       decimal.Decimal
}

// Total returns the sum of all charges
func (c Charges) Total() decimal.Decimal {
	return c.MonthlyFee.Add(c.Water).Add(c.Electricity).Add(c.Waste)
}

// Validate checks every charge is a storable non-negative amount
func (c Charges) Validate() error {
	fields := []struct {
		name   string
		amount decimal.Decimal
	}{
		{"monthlyFee", c.MonthlyFee},
		{"water", c.Water},
		{"electricity", c.Electricity},
		{"waste", c.Waste},
	}
	for _, f := range fields {
		if err := shared.ValidateAmount(f.name, f.amount); err != nil {
			return err
		}
	}
	return nil
}

func (c Charges) rounded() Charges {
	return Charges{
		MonthlyFee:  shared.RoundAmount(c.MonthlyFee),
		Water:       shared.RoundAmount(c.Water),
		Electricity: shared.RoundAmount(c.Electricity),
		Waste:       shared.RoundAmount(c.Waste),
	}
}

// Bill is one billing period's charges for a tenant.
// It owns an optional invoice plus payment and service records; none of them
// point back to the bill object, only to its ID.
type Bill struct {
	shared.BaseEntity
	TenantID int64
	Charges
	DueDate  time.Time
	IsPaid   bool
	Invoice  *Invoice
	Payments []Payment
	Services []ServiceCharge
}

// NewBill creates an unsaved bill for the given tenant
func NewBill(tenantID int64, charges Charges, dueDate time.Time, isPaid bool) (*Bill, error) {
	if err := validateBillHeader(tenantID, charges, dueDate); err != nil {
		return nil, err
	}

	return &Bill{
		BaseEntity: shared.NewBaseEntity(),
		TenantID:   tenantID,
		Charges:    charges.rounded(),
		DueDate:    dueDate,
		IsPaid:     isPaid,
		Payments:   []Payment{},
		Services:   []ServiceCharge{},
	}, nil
}

// Revise overwrites the tenant, charges, due date and paid flag.
// Invoice, payments and services are left as they are.
func (b *Bill) Revise(tenantID int64, charges Charges, dueDate time.Time, isPaid bool) error {
	if err := validateBillHeader(tenantID, charges, dueDate); err != nil {
		return err
	}

	b.TenantID = tenantID
	b.Charges = charges.rounded()
	b.DueDate = dueDate
	b.IsPaid = isPaid
	b.Touch()
	return nil
}

// MarkPaid sets the paid flag. It reports whether the flag changed;
// paying a paid bill is a no-op.
func (b *Bill) MarkPaid() bool {
	if b.IsPaid {
		return false
	}
	b.IsPaid = true
	b.Touch()
	return true
}

// IsOverdue reports whether the bill is unpaid and its due date has passed
func (b *Bill) IsOverdue(now time.Time) bool {
	return !b.IsPaid && b.DueDate.Before(now)
}

// AttachInvoice sets the bill's single invoice
func (b *Bill) AttachInvoice(invoice *Invoice) error {
	if b.Invoice != nil {
		return shared.NewDomainError("ALREADY_EXISTS", "Bill already has an invoice")
	}
	b.Invoice = invoice
	return nil
}

// AddPayment appends a payment record. It does not change IsPaid.
func (b *Bill) AddPayment(payment Payment) {
	b.Payments = append(b.Payments, payment)
}

// AddService appends a service line item
func (b *Bill) AddService(service ServiceCharge) {
	b.Services = append(b.Services, service)
}

// AmountPaid sums the recorded payments
func (b *Bill) AmountPaid() decimal.Decimal {
	total := decimal.Zero
	for _, p := range b.Payments {
		total = total.Add(p.Amount)
	}
	return total
}

// TotalDue sums the charges of unpaid bills. Payments and services are not netted.
func TotalDue(bills []Bill) decimal.Decimal {
	total := decimal.Zero
	for i := range bills {
		if bills[i].IsPaid {
			continue
		}
		total = total.Add(bills[i].Total())
	}
	return shared.RoundAmount(total)
}

func validateBillHeader(tenantID int64, charges Charges, dueDate time.Time) error {
	if tenantID <= 0 {
		return shared.NewDomainError("VALIDATION_REQUIRED", "Tenant ID is required")
	}
	if dueDate.IsZero() {
		return shared.NewDomainError("VALIDATION_REQUIRED", "Due date is required")
	}
	return charges.Validate()
}
