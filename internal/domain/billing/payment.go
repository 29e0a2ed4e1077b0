package billing

import (
	"strings"
	"unicode/utf8"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tenantbill/backend/internal/domain/shared"
)

// Common payment methods. PaymentMethod is free text; these are the usual values.
const (
	PaymentMethodCash         = "Cash"
	PaymentMethodCreditCard   = "Credit Card"
	PaymentMethodBankTransfer = "Bank Transfer"
)

const maxPaymentMethodLength = 50

// Payment is a recorded money transfer against a bill.
// Payments are stored passively; nothing here moves money.
type Payment struct {
	ID            int64
	BillID        int64
	Amount        decimal.Decimal
	PaymentDate   time.Time
	PaymentMethod string
}

// NewPayment validates and builds a payment record
func NewPayment(amount decimal.Decimal, paymentDate time.Time, method string) (*Payment, error) {
	if err := shared.ValidateAmount("payment.amount", amount); err != nil {
		return nil, err
	}
	method = strings.TrimSpace(method)
	if utf8.RuneCountInString(method) > maxPaymentMethodLength {
		return nil, shared.NewDomainError("VALIDATION_LENGTH", "Payment method cannot exceed 50 characters")
	}
	if paymentDate.IsZero() {
		paymentDate = time.Now()
	}

	return &Payment{
		Amount:        shared.RoundAmount(amount),
		PaymentDate:   paymentDate,
		PaymentMethod: method,
	}, nil
}
