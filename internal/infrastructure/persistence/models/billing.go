package models

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tenantbill/backend/internal/domain/billing"
)

// BillModel is the persistence model for the Bill aggregate header.
// Tenant is declared only so the foreign key is created; it is never loaded.
type BillModel struct {
	BaseModel
	TenantID    int64           `gorm:"not null;index"`
	Tenant      *TenantModel    `gorm:"foreignKey:TenantID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	MonthlyFee  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Water       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Electricity decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Waste       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DueDate     time.Time       `gorm:"not null;index"`
	IsPaid      bool            `gorm:"not null"`
}

// TableName returns the table name for GORM
func (BillModel) TableName() string {
	return "bills"
}

// ToDomain converts the header to a domain Bill with empty dependents
func (m *BillModel) ToDomain() *billing.Bill {
	return &billing.Bill{
		BaseEntity: m.BaseModel.ToDomain(),
		TenantID:   m.TenantID,
		Charges: billing.Charges{
			MonthlyFee:  m.MonthlyFee,
			Water:       m.Water,
			Electricity: m.Electricity,
			Waste:       m.Waste,
		},
		DueDate:  m.DueDate,
		IsPaid:   m.IsPaid,
		Payments: []billing.Payment{},
		Services: []billing.ServiceCharge{},
	}
}

// FromDomain populates the header columns from a domain Bill
func (m *BillModel) FromDomain(b *billing.Bill) {
	m.FromDomainBaseEntity(b.BaseEntity)
	m.TenantID = b.TenantID
	m.MonthlyFee = b.MonthlyFee
	m.Water = b.Water
	m.Electricity = b.Electricity
	m.Waste = b.Waste
	m.DueDate = b.DueDate.UTC()
	m.IsPaid = b.IsPaid
}

// BillModelFromDomain creates a new persistence model from a domain Bill
func BillModelFromDomain(b *billing.Bill) *BillModel {
	m := &BillModel{}
	m.FromDomain(b)
	return m
}

// InvoiceModel is the persistence model for an Invoice; one per bill
type InvoiceModel struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	BillID      int64           `gorm:"not null;uniqueIndex"`
	Bill        *BillModel      `gorm:"foreignKey:BillID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	InvoiceDate time.Time       `gorm:"not null"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status      string          `gorm:"type:varchar(20);not null"`
}

// TableName returns the table name for GORM
func (InvoiceModel) TableName() string {
	return "invoices"
}

// ToDomain converts the persistence model to a domain Invoice
func (m *InvoiceModel) ToDomain() *billing.Invoice {
	return &billing.Invoice{
		ID:          m.ID,
		BillID:      m.BillID,
		InvoiceDate: m.InvoiceDate,
		TotalAmount: m.TotalAmount,
		Status:      billing.InvoiceStatus(m.Status),
	}
}

// InvoiceModelFromDomain creates a new persistence model from a domain Invoice
func InvoiceModelFromDomain(i *billing.Invoice) *InvoiceModel {
	return &InvoiceModel{
		ID:          i.ID,
		BillID:      i.BillID,
		InvoiceDate: i.InvoiceDate,
		TotalAmount: i.TotalAmount,
		Status:      string(i.Status),
	}
}

// PaymentModel is the persistence model for a Payment
type PaymentModel struct {
	ID            int64           `gorm:"primaryKey;autoIncrement"`
	BillID        int64           `gorm:"not null;index"`
	Bill          *BillModel      `gorm:"foreignKey:BillID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Amount        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PaymentDate   time.Time       `gorm:"not null"`
	PaymentMethod string          `gorm:"type:varchar(50)"`
}

// TableName returns the table name for GORM
func (PaymentModel) TableName() string {
	return "payments"
}

// ToDomain converts the persistence model to a domain Payment
func (m *PaymentModel) ToDomain() billing.Payment {
	return billing.Payment{
		ID:            m.ID,
		BillID:        m.BillID,
		Amount:        m.Amount,
		PaymentDate:   m.PaymentDate,
		PaymentMethod: m.PaymentMethod,
	}
}

// PaymentModelFromDomain creates a new persistence model from a domain Payment
func PaymentModelFromDomain(p *billing.Payment) *PaymentModel {
	return &PaymentModel{
		ID:            p.ID,
		BillID:        p.BillID,
		Amount:        p.Amount,
		PaymentDate:   p.PaymentDate,
		PaymentMethod: p.PaymentMethod,
	}
}

// ServiceModel is the persistence model for a ServiceCharge
type ServiceModel struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	BillID      int64           `gorm:"not null;index"`
	Bill        *BillModel      `gorm:"foreignKey:BillID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	ServiceName string          `gorm:"type:varchar(100);not null"`
	ServiceFee  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName returns the table name for GORM
func (ServiceModel) TableName() string {
	return "services"
}

// ToDomain converts the persistence model to a domain ServiceCharge
func (m *ServiceModel) ToDomain() billing.ServiceCharge {
	return billing.ServiceCharge{
		ID:          m.ID,
		BillID:      m.BillID,
		ServiceName: m.ServiceName,
		ServiceFee:  m.ServiceFee,
	}
}

// ServiceModelFromDomain creates a new persistence model from a domain ServiceCharge
func ServiceModelFromDomain(s *billing.ServiceCharge) *ServiceModel {
	return &ServiceModel{
		ID:          s.ID,
		BillID:      s.BillID,
		ServiceName: s.ServiceName,
		ServiceFee:  s.ServiceFee,
	}
}
