package billing

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tenantbill/backend/internal/domain/shared"
)

// InvoiceStatus is the closed set of invoice states
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "Pending"
	InvoiceStatusPaid    InvoiceStatus = "Paid"
	InvoiceStatusOverdue InvoiceStatus = "Overdue"
)

// ParseInvoiceStatus accepts any casing; empty means Pending
func ParseInvoiceStatus(s string) (InvoiceStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "pending":
		return InvoiceStatusPending, nil
	case "paid":
		return InvoiceStatusPaid, nil
	case "overdue":
		return InvoiceStatusOverdue, nil
	}
	return "", shared.NewDomainError("VALIDATION_FORMAT", "Invoice status must be one of Pending, Paid, Overdue")
}

// Invoice is the formal summary of a bill; at most one exists per bill
type Invoice struct {
	ID          int64
	BillID      int64
	InvoiceDate time.Time
	TotalAmount decimal.Decimal
	Status      InvoiceStatus
}

// NewInvoice validates and builds an invoice
func NewInvoice(invoiceDate time.Time, totalAmount decimal.Decimal, status string) (*Invoice, error) {
	parsed, err := ParseInvoiceStatus(status)
	if err != nil {
		return nil, err
	}
	if err := shared.ValidateAmount("invoice.totalAmount", totalAmount); err != nil {
		return nil, err
	}
	if invoiceDate.IsZero() {
		invoiceDate = time.Now()
	}

	return &Invoice{
		InvoiceDate: invoiceDate,
		TotalAmount: shared.RoundAmount(totalAmount),
		Status:      parsed,
	}, nil
}
