package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tenantbill/backend/internal/domain/billing"
	"github.com/tenantbill/backend/internal/domain/shared"
	"github.com/tenantbill/backend/internal/infrastructure/persistence/models"
)

func TestGormBillRepository_CreateWithDependents(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormBillRepository(db)
	ctx := context.Background()
	tenant := createTestTenant(t, db, "Jane")

	due := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	bill := newTestBill(t, tenant.ID, "100.00", due, false)

	invoice, err := billing.NewInvoice(due, decimal.RequireFromString("135.00"), "pending")
	require.NoError(t, err)
	require.NoError(t, bill.AttachInvoice(invoice))
	payment, err := billing.NewPayment(decimal.RequireFromString("50"), due, billing.PaymentMethodCash)
	require.NoError(t, err)
	bill.AddPayment(*payment)
	service, err := billing.NewServiceCharge("Water", decimal.RequireFromString("10.50"))
	require.NoError(t, err)
	bill.AddService(*service)

	require.NoError(t, repo.Create(ctx, bill))
	require.Positive(t, bill.ID)
	assert.Positive(t, bill.Invoice.ID)
	assert.Equal(t, bill.ID, bill.Invoice.BillID)
	assert.Equal(t, bill.ID, bill.Payments[0].BillID)
	assert.Equal(t, bill.ID, bill.Services[0].BillID)

	found, err := repo.FindByID(ctx, bill.ID)
	require.NoError(t, err)
	assert.Equal(t, tenant.ID, found.TenantID)
	assert.True(t, found.MonthlyFee.Equal(decimal.RequireFromString("100")))
	assert.True(t, found.Water.Equal(decimal.RequireFromString("10.50")))
	assert.True(t, found.Electricity.Equal(decimal.RequireFromString("20.25")))
	assert.True(t, found.Waste.Equal(decimal.RequireFromString("4.25")))
	assert.True(t, found.DueDate.Equal(due))
	assert.False(t, found.IsPaid)

	require.NotNil(t, found.Invoice)
	assert.Equal(t, billing.InvoiceStatusPending, found.Invoice.Status)
	assert.True(t, found.Invoice.TotalAmount.Equal(decimal.RequireFromString("135")))
	require.Len(t, found.Payments, 1)
	assert.Equal(t, billing.PaymentMethodCash, found.Payments[0].PaymentMethod)
	require.Len(t, found.Services, 1)
	assert.Equal(t, "Water", found.Services[0].ServiceName)
}

func TestGormBillRepository_CreateUnknownTenant(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormBillRepository(db)

	err := repo.Create(context.Background(), newTestBill(t, 4242, "100", time.Now(), false))
	require.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrInvalidInput)

	var count int64
	require.NoError(t, db.Model(&models.BillModel{}).Count(&count).Error)
	assert.Zero(t, count, "nothing is persisted")
}

func TestGormBillRepository_ForeignKeysEnforced(t *testing.T) {
	db := setupTestDB(t)
	tenant := createTestTenant(t, db, "Jane")
	require.NoError(t, NewGormBillRepository(db).Create(context.Background(), newTestBill(t, tenant.ID, "1", time.Now(), false)))

	err := db.Exec("DELETE FROM tenants WHERE id = ?", tenant.ID).Error
	assert.True(t, IsForeignKeyViolation(err), "tenants referenced by bills cannot be deleted: %v", err)
}

func TestGormBillRepository_Queries(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormBillRepository(db)
	ctx := context.Background()

	jane := createTestTenant(t, db, "Jane")
	john := createTestTenant(t, db, "John")
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	pastUnpaid := newTestBill(t, jane.ID, "100", now.AddDate(0, -1, 0), false)
	pastPaid := newTestBill(t, jane.ID, "200", now.AddDate(0, -1, 0), true)
	futureUnpaid := newTestBill(t, jane.ID, "300", now.AddDate(0, 1, 0), false)
	johnPast := newTestBill(t, john.ID, "50", now.AddDate(0, 0, -1), false)
	for _, b := range []*billing.Bill{pastUnpaid, pastPaid, futureUnpaid, johnPast} {
		require.NoError(t, repo.Create(ctx, b))
	}

	t.Run("FindAll", func(t *testing.T) {
		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 4)
	})

	t.Run("FindByTenant", func(t *testing.T) {
		bills, err := repo.FindByTenant(ctx, jane.ID)
		require.NoError(t, err)
		assert.Len(t, bills, 3)

		bills, err = repo.FindByTenant(ctx, 999)
		require.NoError(t, err)
		assert.NotNil(t, bills)
		assert.Empty(t, bills)
	})

	t.Run("FindUnpaidByTenant", func(t *testing.T) {
		bills, err := repo.FindUnpaidByTenant(ctx, jane.ID)
		require.NoError(t, err)
		require.Len(t, bills, 2)
		assert.Equal(t, pastUnpaid.ID, bills[0].ID)
		assert.Equal(t, futureUnpaid.ID, bills[1].ID)
	})

	t.Run("FindOverdue", func(t *testing.T) {
		bills, err := repo.FindOverdue(ctx, now)
		require.NoError(t, err)
		require.Len(t, bills, 2)
		assert.Equal(t, pastUnpaid.ID, bills[0].ID)
		assert.Equal(t, johnPast.ID, bills[1].ID)
	})

	t.Run("SumUnpaidByTenant", func(t *testing.T) {
		// (100 + 35) + (300 + 35)
		total, err := repo.SumUnpaidByTenant(ctx, jane.ID)
		require.NoError(t, err)
		assert.Equal(t, "470", total.String())

		total, err = repo.SumUnpaidByTenant(ctx, 999)
		require.NoError(t, err)
		assert.True(t, total.IsZero())
	})
}

func TestGormBillRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormBillRepository(db)
	ctx := context.Background()
	tenant := createTestTenant(t, db, "Jane")
	other := createTestTenant(t, db, "John")

	bill := newTestBill(t, tenant.ID, "100", time.Now(), false)
	payment, _ := billing.NewPayment(decimal.NewFromInt(10), time.Now(), "Cash")
	bill.AddPayment(*payment)
	require.NoError(t, repo.Create(ctx, bill))

	t.Run("overwrites header and keeps dependents", func(t *testing.T) {
		due := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		_, err := repo.Update(ctx, bill.ID, func(b *billing.Bill) error {
			return b.Revise(other.ID, billing.Charges{
				MonthlyFee:  decimal.NewFromInt(500),
				Water:       decimal.Zero,
				Electricity: decimal.Zero,
				Waste:       decimal.Zero,
			}, due, true)
		})
		require.NoError(t, err)

		found, err := repo.FindByID(ctx, bill.ID)
		require.NoError(t, err)
		assert.Equal(t, other.ID, found.TenantID)
		assert.True(t, found.MonthlyFee.Equal(decimal.NewFromInt(500)))
		assert.True(t, found.DueDate.Equal(due))
		assert.True(t, found.IsPaid)
		assert.Len(t, found.Payments, 1)
	})

	t.Run("pay is idempotent", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			updated, err := repo.Update(ctx, bill.ID, func(b *billing.Bill) error {
				b.MarkPaid()
				return nil
			})
			require.NoError(t, err)
			assert.True(t, updated.IsPaid)
		}
	})

	t.Run("unknown tenant", func(t *testing.T) {
		_, err := repo.Update(ctx, bill.ID, func(b *billing.Bill) error {
			b.TenantID = 4242
			return nil
		})
		assert.ErrorIs(t, err, shared.ErrInvalidInput)
	})

	t.Run("missing bill", func(t *testing.T) {
		_, err := repo.Update(ctx, 999, func(*billing.Bill) error { return nil })
		assert.True(t, shared.IsNotFound(err))
	})
}

func TestGormBillRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormBillRepository(db)
	ctx := context.Background()
	tenant := createTestTenant(t, db, "Jane")

	bill := newTestBill(t, tenant.ID, "100", time.Now(), false)
	service, _ := billing.NewServiceCharge("Waste", decimal.NewFromInt(5))
	bill.AddService(*service)
	invoice, _ := billing.NewInvoice(time.Now(), decimal.NewFromInt(100), "")
	require.NoError(t, bill.AttachInvoice(invoice))
	require.NoError(t, repo.Create(ctx, bill))

	deleted, err := repo.Delete(ctx, bill.ID)
	require.NoError(t, err)
	assert.Equal(t, bill.ID, deleted.ID)
	assert.Len(t, deleted.Services, 1)
	assert.NotNil(t, deleted.Invoice)

	_, err = repo.FindByID(ctx, bill.ID)
	assert.True(t, shared.IsNotFound(err))

	for _, m := range []any{&models.ServiceModel{}, &models.InvoiceModel{}, &models.PaymentModel{}} {
		var count int64
		require.NoError(t, db.Model(m).Count(&count).Error)
		assert.Zero(t, count)
	}

	_, err = repo.Delete(ctx, bill.ID)
	assert.True(t, shared.IsNotFound(err))
}

func TestGormBillRepository_AddPayment(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormBillRepository(db)
	ctx := context.Background()
	tenant := createTestTenant(t, db, "Jane")

	bill := newTestBill(t, tenant.ID, "100", time.Now(), false)
	require.NoError(t, repo.Create(ctx, bill))

	payment, err := billing.NewPayment(decimal.RequireFromString("25.50"), time.Now(), billing.PaymentMethodBankTransfer)
	require.NoError(t, err)
	require.NoError(t, repo.AddPayment(ctx, bill.ID, payment))
	assert.Positive(t, payment.ID)
	assert.Equal(t, bill.ID, payment.BillID)

	found, err := repo.FindByID(ctx, bill.ID)
	require.NoError(t, err)
	require.Len(t, found.Payments, 1)
	assert.True(t, found.Payments[0].Amount.Equal(decimal.RequireFromString("25.50")))
	assert.False(t, found.IsPaid, "recording a payment does not toggle isPaid")

	err = repo.AddPayment(ctx, 999, payment)
	assert.True(t, shared.IsNotFound(err))
}
