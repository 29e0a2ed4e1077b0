package billing

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tenantbill/backend/internal/domain/billing"
	"github.com/tenantbill/backend/internal/infrastructure/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

const spanService = "BillService"

// BillService handles bill-related business operations
type BillService struct {
	billRepo       billing.BillRepository
	billingMetrics *telemetry.BillingMetrics
	now            func() time.Time
	logger         *zap.Logger
}

// NewBillService creates a new BillService
func NewBillService(billRepo billing.BillRepository, logger *zap.Logger) *BillService {
	return &BillService{
		billRepo: billRepo,
		now:      time.Now,
		logger:   logger,
	}
}

// SetBillingMetrics enables bill lifecycle counters
func (s *BillService) SetBillingMetrics(m *telemetry.BillingMetrics) {
	s.billingMetrics = m
}

// List returns every bill with its dependents
func (s *BillService) List(ctx context.Context) ([]BillResponse, error) {
	bills, err := s.billRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToBillResponses(bills), nil
}

// GetByID retrieves a bill by ID
func (s *BillService) GetByID(ctx context.Context, id int64) (*BillResponse, error) {
	bill, err := s.billRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToBillResponse(bill)
	return &response, nil
}

// Create creates a bill together with its invoice, payments and services
func (s *BillService) Create(ctx context.Context, req CreateBillRequest) (_ *BillResponse, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, spanService, "Create", attribute.Int64("tenant.id", req.TenantID))
	defer func() { telemetry.EndSpan(span, err) }()

	bill, err := buildBill(req)
	if err != nil {
		return nil, err
	}
	if err := s.billRepo.Create(ctx, bill); err != nil {
		return nil, err
	}

	s.billingMetrics.BillCreated(ctx, bill.TenantID, bill.Total())
	if bill.IsPaid {
		s.billingMetrics.BillPaid(ctx, bill.TenantID)
	}
	s.logger.Info("Bill created",
		zap.Int64("bill_id", bill.ID),
		zap.Int64("tenant_id", bill.TenantID),
		zap.String("total", bill.Total().String()))

	response := ToBillResponse(bill)
	return &response, nil
}

func buildBill(req CreateBillRequest) (*billing.Bill, error) {
	bill, err := billing.NewBill(req.TenantID, req.charges(), req.DueDate, req.IsPaid)
	if err != nil {
		return nil, err
	}

	if req.Invoice != nil {
		invoice, err := billing.NewInvoice(req.Invoice.InvoiceDate, req.Invoice.TotalAmount, req.Invoice.Status)
		if err != nil {
			return nil, err
		}
		if err := bill.AttachInvoice(invoice); err != nil {
			return nil, err
		}
	}
	for _, p := range req.Payments {
		payment, err := billing.NewPayment(p.Amount, p.PaymentDate, p.PaymentMethod)
		if err != nil {
			return nil, err
		}
		bill.AddPayment(*payment)
	}
	for _, sv := range req.Services {
		service, err := billing.NewServiceCharge(sv.ServiceName, sv.ServiceFee)
		if err != nil {
			return nil, err
		}
		bill.AddService(*service)
	}
	return bill, nil
}

// Update overwrites tenant, charges, due date and paid flag.
// Invoice, payments and services are left untouched.
func (s *BillService) Update(ctx context.Context, id int64, req UpdateBillRequest) error {
	var becamePaid bool
	bill, err := s.billRepo.Update(ctx, id, func(b *billing.Bill) error {
		wasPaid := b.IsPaid
		if err := b.Revise(req.TenantID, req.charges(), req.DueDate, req.IsPaid); err != nil {
			return err
		}
		becamePaid = !wasPaid && b.IsPaid
		return nil
	})
	if err != nil {
		return err
	}
	if becamePaid {
		s.billingMetrics.BillPaid(ctx, bill.TenantID)
	}
	return nil
}

// Delete removes a bill with its dependents and returns it
func (s *BillService) Delete(ctx context.Context, id int64) (*BillResponse, error) {
	bill, err := s.billRepo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.billingMetrics.BillDeleted(ctx, bill.TenantID)
	s.logger.Info("Bill deleted", zap.Int64("bill_id", id))
	response := ToBillResponse(bill)
	return &response, nil
}

// Pay marks a bill as paid. Paying a paid bill succeeds without change.
// No payment record is created.
func (s *BillService) Pay(ctx context.Context, id int64) (_ *BillResponse, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, spanService, "Pay", attribute.Int64("bill.id", id))
	defer func() { telemetry.EndSpan(span, err) }()

	var changed bool
	bill, err := s.billRepo.Update(ctx, id, func(b *billing.Bill) error {
		changed = b.MarkPaid()
		return nil
	})
	if err != nil {
		return nil, err
	}

	if changed {
		s.billingMetrics.BillPaid(ctx, bill.TenantID)
		s.logger.Info("Bill paid", zap.Int64("bill_id", id))
	}
	response := ToBillResponse(bill)
	return &response, nil
}

// RecordPayment stores a payment against a bill. The paid flag is not touched.
func (s *BillService) RecordPayment(ctx context.Context, billID int64, req PaymentRequest) (_ *PaymentResponse, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, spanService, "RecordPayment", attribute.Int64("bill.id", billID))
	defer func() { telemetry.EndSpan(span, err) }()

	payment, err := billing.NewPayment(req.Amount, req.PaymentDate, req.PaymentMethod)
	if err != nil {
		return nil, err
	}
	if err := s.billRepo.AddPayment(ctx, billID, payment); err != nil {
		return nil, err
	}

	s.logger.Info("Payment recorded",
		zap.Int64("bill_id", billID),
		zap.Int64("payment_id", payment.ID),
		zap.String("amount", payment.Amount.String()))
	s.billingMetrics.PaymentRecorded(ctx)

	response := ToPaymentResponse(payment)
	return &response, nil
}

// ListByTenant returns all bills of a tenant; unknown tenants yield an empty list
func (s *BillService) ListByTenant(ctx context.Context, tenantID int64) ([]BillResponse, error) {
	bills, err := s.billRepo.FindByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return ToBillResponses(bills), nil
}

// ListUnpaidByTenant returns the tenant's bills that are not paid
func (s *BillService) ListUnpaidByTenant(ctx context.Context, tenantID int64) ([]BillResponse, error) {
	bills, err := s.billRepo.FindUnpaidByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return ToBillResponses(bills), nil
}

// ListOverdue returns unpaid bills whose due date has passed at call time
func (s *BillService) ListOverdue(ctx context.Context) ([]BillResponse, error) {
	bills, err := s.billRepo.FindOverdue(ctx, s.now())
	if err != nil {
		return nil, err
	}
	return ToBillResponses(bills), nil
}

// TotalDue sums the charges of the tenant's unpaid bills. Payments and
// services are not netted; the result is zero when there is nothing due.
func (s *BillService) TotalDue(ctx context.Context, tenantID int64) (decimal.Decimal, error) {
	return s.billRepo.SumUnpaidByTenant(ctx, tenantID)
}
