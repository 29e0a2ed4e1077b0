package billing

import (
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/tenantbill/backend/internal/domain/shared"
)

const maxServiceNameLength = 100

// ServiceCharge is a utility line item attached to a bill (Water, Electricity, Waste, ...)
type ServiceCharge struct {
	ID          int64
	BillID      int64
	ServiceName string
	ServiceFee  decimal.Decimal
}

// NewServiceCharge validates and builds a service line item
func NewServiceCharge(name string, fee decimal.Decimal) (*ServiceCharge, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("VALIDATION_REQUIRED", "Service name cannot be empty")
	}
	if utf8.RuneCountInString(name) > maxServiceNameLength {
		return nil, shared.NewDomainError("VALIDATION_LENGTH", "Service name cannot exceed 100 characters")
	}
	if err := shared.ValidateAmount("service.serviceFee", fee); err != nil {
		return nil, err
	}

	return &ServiceCharge{
		ServiceName: name,
		ServiceFee:  shared.RoundAmount(fee),
	}, nil
}
