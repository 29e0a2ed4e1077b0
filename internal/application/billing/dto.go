package billing

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tenantbill/backend/internal/domain/billing"
)

// CreateBillRequest represents a request to create a bill with its dependents
type CreateBillRequest struct {
	TenantID    int64            `json:"tenantId" binding:"required,gt=0"`
	MonthlyFee  decimal.Decimal  `json:"monthlyFee"`
	Water       decimal.Decimal  `json:"water"`
	Electricity decimal.Decimal  `json:"electricity"`
	Waste       decimal.Decimal  `json:"waste"`
	DueDate     time.Time        `json:"dueDate"`
	IsPaid      bool             `json:"isPaid"`
	Invoice     *InvoiceRequest  `json:"invoice"`
	Payments    []PaymentRequest `json:"payments" binding:"omitempty,dive"`
	Services    []ServiceRequest `json:"services" binding:"omitempty,dive"`
}

// UpdateBillRequest overwrites a bill's header. Dependents sent alongside are ignored.
type UpdateBillRequest struct {
	TenantID    int64           `json:"tenantId" binding:"required,gt=0"`
	MonthlyFee  decimal.Decimal `json:"monthlyFee"`
	Water       decimal.Decimal `json:"water"`
	Electricity decimal.Decimal `json:"electricity"`
	Waste       decimal.Decimal `json:"waste"`
	DueDate     time.Time       `json:"dueDate"`
	IsPaid      bool            `json:"isPaid"`
}

// InvoiceRequest is the optional invoice submitted with a new bill
type InvoiceRequest struct {
	InvoiceDate time.Time       `json:"invoiceDate"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Status      string          `json:"status"`
}

// PaymentRequest records a payment, either inline on bill creation or on its own
type PaymentRequest struct {
	Amount        decimal.Decimal `json:"amount"`
	PaymentDate   time.Time       `json:"paymentDate"`
	PaymentMethod string          `json:"paymentMethod" binding:"max=50"`
}

// ServiceRequest is a service line item submitted with a new bill
type ServiceRequest struct {
	ServiceName string          `json:"serviceName" binding:"required,max=100"`
	ServiceFee  decimal.Decimal `json:"serviceFee"`
}

// BillResponse represents a bill and its dependents in API responses
type BillResponse struct {
	ID          int64             `json:"id"`
	TenantID    int64             `json:"tenantId"`
	MonthlyFee  decimal.Decimal   `json:"monthlyFee"`
	Water       decimal.Decimal   `json:"water"`
	Electricity decimal.Decimal   `json:"electricity"`
	Waste       decimal.Decimal   `json:"waste"`
	DueDate     time.Time         `json:"dueDate"`
	IsPaid      bool              `json:"isPaid"`
	Invoice     *InvoiceResponse  `json:"invoice"`
	Payments    []PaymentResponse `json:"payments"`
	Services    []ServiceResponse `json:"services"`
}

// InvoiceResponse represents an invoice in API responses
type InvoiceResponse struct {
	ID          int64           `json:"id"`
	BillID      int64           `json:"billId"`
	InvoiceDate time.Time       `json:"invoiceDate"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Status      string          `json:"status"`
}

// PaymentResponse represents a payment in API responses
type PaymentResponse struct {
	ID            int64           `json:"id"`
	BillID        int64           `json:"billId"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentDate   time.Time       `json:"paymentDate"`
	PaymentMethod string          `json:"paymentMethod"`
}

// ServiceResponse represents a service line item in API responses
type ServiceResponse struct {
	ID          int64           `json:"id"`
	BillID      int64           `json:"billId"`
	ServiceName string          `json:"serviceName"`
	ServiceFee  decimal.Decimal `json:"serviceFee"`
}

// ToBillResponse converts a domain Bill to BillResponse.
// Payments and services are never null in JSON.
func ToBillResponse(b *billing.Bill) BillResponse {
	response := BillResponse{
		ID:          b.ID,
		TenantID:    b.TenantID,
		MonthlyFee:  b.MonthlyFee,
		Water:       b.Water,
		Electricity: b.Electricity,
		Waste:       b.Waste,
		DueDate:     b.DueDate,
		IsPaid:      b.IsPaid,
		Payments:    make([]PaymentResponse, len(b.Payments)),
		Services:    make([]ServiceResponse, len(b.Services)),
	}
	if b.Invoice != nil {
		response.Invoice = &InvoiceResponse{
			ID:          b.Invoice.ID,
			BillID:      b.Invoice.BillID,
			InvoiceDate: b.Invoice.InvoiceDate,
			TotalAmount: b.Invoice.TotalAmount,
			Status:      string(b.Invoice.Status),
		}
	}
	for i := range b.Payments {
		response.Payments[i] = ToPaymentResponse(&b.Payments[i])
	}
	for i, s := range b.Services {
		response.Services[i] = ServiceResponse{
			ID:          s.ID,
			BillID:      s.BillID,
			ServiceName: s.ServiceName,
			ServiceFee:  s.ServiceFee,
		}
	}
	return response
}

// ToBillResponses converts a slice of bills
func ToBillResponses(bills []billing.Bill) []BillResponse {
	responses := make([]BillResponse, len(bills))
	for i := range bills {
		responses[i] = ToBillResponse(&bills[i])
	}
	return responses
}

// ToPaymentResponse converts a domain Payment to PaymentResponse
func ToPaymentResponse(p *billing.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		BillID:        p.BillID,
		Amount:        p.Amount,
		PaymentDate:   p.PaymentDate,
		PaymentMethod: p.PaymentMethod,
	}
}

func (r CreateBillRequest) charges() billing.Charges {
	return billing.Charges{
		MonthlyFee:  r.MonthlyFee,
		Water:       r.Water,
		Electricity: r.Electricity,
		Waste:       r.Waste,
	}
}

func (r UpdateBillRequest) charges() billing.Charges {
	return billing.Charges{
		MonthlyFee:  r.MonthlyFee,
		Water:       r.Water,
		Electricity: r.Electricity,
		Waste:       r.Waste,
	}
}
