// Package models contains GORM-specific persistence models that map to database tables.
// These models are separate from domain entities to keep the domain layer free
// from ORM concerns.
//
// Relations are declared only in the child-to-parent direction (Bill -> Tenant,
// Invoice/Payment/Service -> Bill) so AutoMigrate emits the foreign keys without
// giving any model a navigable path back to its children.
//
// Structure:
// - base.go: BaseModel and the AutoMigrate model list
// - tenancy.go: Tenant
// - billing.go: Bill, Invoice, Payment, Service
// - identity.go: User
package models
