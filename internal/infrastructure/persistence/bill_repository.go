package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tenantbill/backend/internal/domain/billing"
	"github.com/tenantbill/backend/internal/domain/shared"
	"github.com/tenantbill/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormBillRepository implements BillRepository using GORM.
// Dependents are loaded with one IN query per table, never through
// association preloading.
type GormBillRepository struct {
	db *gorm.DB
}

// NewGormBillRepository creates a new GormBillRepository
func NewGormBillRepository(db *gorm.DB) *GormBillRepository {
	return &GormBillRepository{db: db}
}

// FindByID finds a bill with its invoice, payments and services
func (r *GormBillRepository) FindByID(ctx context.Context, id int64) (*billing.Bill, error) {
	db := r.db.WithContext(ctx)
	model, err := findBill(db, id)
	if err != nil {
		return nil, err
	}
	bills, err := withDependents(db, []models.BillModel{*model})
	if err != nil {
		return nil, err
	}
	return &bills[0], nil
}

// FindAll returns every bill ordered by ID
func (r *GormBillRepository) FindAll(ctx context.Context) ([]billing.Bill, error) {
	return r.find(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Order("id")
	})
}

// FindByTenant returns every bill of a tenant
func (r *GormBillRepository) FindByTenant(ctx context.Context, tenantID int64) ([]billing.Bill, error) {
	return r.find(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("tenant_id = ?", tenantID).Order("id")
	})
}

// FindUnpaidByTenant returns the tenant's bills that are not paid
func (r *GormBillRepository) FindUnpaidByTenant(ctx context.Context, tenantID int64) ([]billing.Bill, error) {
	return r.find(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("tenant_id = ? AND is_paid = ?", tenantID, false).Order("id")
	})
}

// FindOverdue returns unpaid bills due strictly before asOf
func (r *GormBillRepository) FindOverdue(ctx context.Context, asOf time.Time) ([]billing.Bill, error) {
	return r.find(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("is_paid = ? AND due_date < ?", false, asOf.UTC()).Order("due_date, id")
	})
}

// SumUnpaidByTenant totals the charges of the tenant's unpaid bills in SQL
func (r *GormBillRepository) SumUnpaidByTenant(ctx context.Context, tenantID int64) (decimal.Decimal, error) {
	var total decimal.Decimal
	row := r.db.WithContext(ctx).
		Model(&models.BillModel{}).
		Select("COALESCE(SUM(monthly_fee + water + electricity + waste), 0)").
		Where("tenant_id = ? AND is_paid = ?", tenantID, false).
		Row()
	if err := row.Scan(&total); err != nil {
		return decimal.Zero, err
	}
	return shared.RoundAmount(total), nil
}

// Create inserts the bill and its dependents in one transaction and fills in
// the generated IDs. An unknown TenantID yields INVALID_INPUT.
func (r *GormBillRepository) Create(ctx context.Context, bill *billing.Bill) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model := models.BillModelFromDomain(bill)
		if err := tx.Omit(clause.Associations).Create(model).Error; err != nil {
			return err
		}
		if err := insertDependents(tx, model.ID, bill); err != nil {
			return err
		}
		bill.BaseEntity = model.BaseModel.ToDomain()
		bill.DueDate = model.DueDate
		return nil
	})
	if IsForeignKeyViolation(err) {
		return unknownTenant(bill.TenantID)
	}
	return err
}

// Update loads the bill and its dependents under a row lock, applies fn and
// saves the header. Dependents are not rewritten.
func (r *GormBillRepository) Update(ctx context.Context, id int64, fn shared.MutateFunc[billing.Bill]) (*billing.Bill, error) {
	var updated *billing.Bill
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model, err := findBill(forUpdate(tx), id)
		if err != nil {
			return err
		}
		bills, err := withDependents(tx, []models.BillModel{*model})
		if err != nil {
			return err
		}

		bill := &bills[0]
		if err := fn(bill); err != nil {
			return err
		}
		bill.ID = id

		model.FromDomain(bill)
		if err := tx.Omit(clause.Associations).Save(model).Error; err != nil {
			return err
		}
		bill.UpdatedAt = model.UpdatedAt
		updated = bill
		return nil
	})
	if IsForeignKeyViolation(err) {
		return nil, shared.NewDomainError("INVALID_INPUT", "Bill references a tenant that does not exist")
	}
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the bill and its dependents and returns the removed bill
func (r *GormBillRepository) Delete(ctx context.Context, id int64) (*billing.Bill, error) {
	var deleted *billing.Bill
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model, err := findBill(forUpdate(tx), id)
		if err != nil {
			return err
		}
		bills, err := withDependents(tx, []models.BillModel{*model})
		if err != nil {
			return err
		}

		for _, dependent := range []any{&models.ServiceModel{}, &models.PaymentModel{}, &models.InvoiceModel{}} {
			if err := tx.Where("bill_id = ?", id).Delete(dependent).Error; err != nil {
				return err
			}
		}
		if err := tx.Delete(&models.BillModel{}, id).Error; err != nil {
			return err
		}
		deleted = &bills[0]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

// AddPayment stores a payment against an existing bill. The bill row is
// locked so a concurrent delete cannot orphan the payment.
func (r *GormBillRepository) AddPayment(ctx context.Context, billID int64, payment *billing.Payment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findBill(forUpdate(tx), billID); err != nil {
			return err
		}

		payment.BillID = billID
		model := models.PaymentModelFromDomain(payment)
		if err := tx.Omit(clause.Associations).Create(model).Error; err != nil {
			return err
		}
		payment.ID = model.ID
		return nil
	})
}

func (r *GormBillRepository) find(ctx context.Context, scope func(*gorm.DB) *gorm.DB) ([]billing.Bill, error) {
	db := r.db.WithContext(ctx)

	var billModels []models.BillModel
	if err := scope(db.Model(&models.BillModel{})).Find(&billModels).Error; err != nil {
		return nil, err
	}
	return withDependents(db, billModels)
}

func findBill(db *gorm.DB, id int64) (*models.BillModel, error) {
	var model models.BillModel
	if err := db.First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Bill", id)
		}
		return nil, err
	}
	return &model, nil
}

// withDependents converts bill headers to domain bills and attaches their
// invoices, payments and services.
func withDependents(db *gorm.DB, billModels []models.BillModel) ([]billing.Bill, error) {
	bills := make([]billing.Bill, len(billModels))
	if len(billModels) == 0 {
		return bills, nil
	}

	ids := make([]int64, len(billModels))
	index := make(map[int64]int, len(billModels))
	for i := range billModels {
		bills[i] = *billModels[i].ToDomain()
		ids[i] = billModels[i].ID
		index[billModels[i].ID] = i
	}

	var invoices []models.InvoiceModel
	if err := db.Where("bill_id IN ?", ids).Find(&invoices).Error; err != nil {
		return nil, err
	}
	for i := range invoices {
		bills[index[invoices[i].BillID]].Invoice = invoices[i].ToDomain()
	}

	var payments []models.PaymentModel
	if err := db.Where("bill_id IN ?", ids).Order("id").Find(&payments).Error; err != nil {
		return nil, err
	}
	for i := range payments {
		b := &bills[index[payments[i].BillID]]
		b.Payments = append(b.Payments, payments[i].ToDomain())
	}

	var services []models.ServiceModel
	if err := db.Where("bill_id IN ?", ids).Order("id").Find(&services).Error; err != nil {
		return nil, err
	}
	for i := range services {
		b := &bills[index[services[i].BillID]]
		b.Services = append(b.Services, services[i].ToDomain())
	}

	return bills, nil
}

func insertDependents(tx *gorm.DB, billID int64, bill *billing.Bill) error {
	if bill.Invoice != nil {
		bill.Invoice.BillID = billID
		m := models.InvoiceModelFromDomain(bill.Invoice)
		if err := tx.Omit(clause.Associations).Create(m).Error; err != nil {
			return err
		}
		bill.Invoice.ID = m.ID
	}

	for i := range bill.Payments {
		bill.Payments[i].BillID = billID
		m := models.PaymentModelFromDomain(&bill.Payments[i])
		if err := tx.Omit(clause.Associations).Create(m).Error; err != nil {
			return err
		}
		bill.Payments[i].ID = m.ID
	}

	for i := range bill.Services {
		bill.Services[i].BillID = billID
		m := models.ServiceModelFromDomain(&bill.Services[i])
		if err := tx.Omit(clause.Associations).Create(m).Error; err != nil {
			return err
		}
		bill.Services[i].ID = m.ID
	}
	return nil
}

// Ensure GormBillRepository implements BillRepository
var _ billing.BillRepository = (*GormBillRepository)(nil)
