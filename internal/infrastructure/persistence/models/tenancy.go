package models

import (
	"github.com/tenantbill/backend/internal/domain/tenancy"
)

// TenantModel is the persistence model for the Tenant domain entity.
type TenantModel struct {
	BaseModel
	Name        string `gorm:"type:varchar(200);not null"`
	Email       string `gorm:"type:varchar(200)"`
	PhoneNumber string `gorm:"type:varchar(50)"`
	Address     string `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (TenantModel) TableName() string {
	return "tenants"
}

// ToDomain converts the persistence model to a domain Tenant entity
func (m *TenantModel) ToDomain() *tenancy.Tenant {
	return &tenancy.Tenant{
		BaseEntity:  m.BaseModel.ToDomain(),
		Name:        m.Name,
		Email:       m.Email,
		PhoneNumber: m.PhoneNumber,
		Address:     m.Address,
	}
}

// FromDomain populates the persistence model from a domain Tenant entity
func (m *TenantModel) FromDomain(t *tenancy.Tenant) {
	m.FromDomainBaseEntity(t.BaseEntity)
	m.Name = t.Name
	m.Email = t.Email
	m.PhoneNumber = t.PhoneNumber
	m.Address = t.Address
}

// TenantModelFromDomain creates a new persistence model from a domain Tenant entity
func TenantModelFromDomain(t *tenancy.Tenant) *TenantModel {
	m := &TenantModel{}
	m.FromDomain(t)
	return m
}
