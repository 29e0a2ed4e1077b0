package telemetry

import (
	"context"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/metric"
)

// BillingMetrics counts bill lifecycle events. A nil *BillingMetrics is valid
// and records nothing.
type BillingMetrics struct {
	billsCreated    *Counter
	billsPaid       *Counter
	billsDeleted    *Counter
	paymentsAdded   *Counter
	billAmount      *Histogram
	authentications *Counter
}

// NewBillingMetrics creates the billing instruments on meter.
func NewBillingMetrics(meter metric.Meter) (*BillingMetrics, error) {
	var (
		m   BillingMetrics
		err error
	)
	if m.billsCreated, err = NewCounter(meter, "bills_created_total", "Bills created", "{bill}"); err != nil {
		return nil, err
	}
	if m.billsPaid, err = NewCounter(meter, "bills_paid_total", "Bills marked paid", "{bill}"); err != nil {
		return nil, err
	}
	if m.billsDeleted, err = NewCounter(meter, "bills_deleted_total", "Bills deleted", "{bill}"); err != nil {
		return nil, err
	}
	if m.paymentsAdded, err = NewCounter(meter, "bill_payments_total", "Payments recorded against bills", "{payment}"); err != nil {
		return nil, err
	}
	if m.billAmount, err = NewHistogram(meter, HistogramOpts{
		Name:        "bill_amount",
		Description: "Total amount of created bills",
		Unit:        "{currency}",
		Boundaries:  BillAmountBuckets,
	}); err != nil {
		return nil, err
	}
	if m.authentications, err = NewCounter(meter, "auth_logins_total", "Login attempts by outcome", "{attempt}"); err != nil {
		return nil, err
	}
	return &m, nil
}

// BillCreated records a new bill and its total.
func (m *BillingMetrics) BillCreated(ctx context.Context, tenantID int64, total decimal.Decimal) {
	if m == nil {
		return
	}
	attr := AttrTenantID.Int64(tenantID)
	m.billsCreated.Inc(ctx, attr)
	m.billAmount.Record(ctx, total.InexactFloat64(), attr)
}

// BillPaid records a bill transitioning to paid.
func (m *BillingMetrics) BillPaid(ctx context.Context, tenantID int64) {
	if m == nil {
		return
	}
	m.billsPaid.Inc(ctx, AttrTenantID.Int64(tenantID))
}

// BillDeleted records a bill removal.
func (m *BillingMetrics) BillDeleted(ctx context.Context, tenantID int64) {
	if m == nil {
		return
	}
	m.billsDeleted.Inc(ctx, AttrTenantID.Int64(tenantID))
}

// PaymentRecorded records a payment row.
func (m *BillingMetrics) PaymentRecorded(ctx context.Context) {
	if m == nil {
		return
	}
	m.paymentsAdded.Inc(ctx)
}

// Login records a login attempt; outcome is "success" or "failure".
func (m *BillingMetrics) Login(ctx context.Context, outcome string) {
	if m == nil {
		return
	}
	m.authentications.Inc(ctx, AttrOutcome.String(outcome))
}
