package tenancy

import "github.com/tenantbill/backend/internal/domain/tenancy"

// CreateTenantRequest represents a request to create a tenant
type CreateTenantRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Email       string `json:"email" binding:"omitempty,email,max=200"`
	PhoneNumber string `json:"phoneNumber" binding:"max=50"`
	Address     string `json:"address" binding:"max=500"`
}

// UpdateTenantRequest carries the mutable tenant fields.
// Phone number and address sent alongside are ignored.
type UpdateTenantRequest struct {
	Name  string `json:"name" binding:"required,max=200"`
	Email string `json:"email" binding:"omitempty,email,max=200"`
}

// TenantResponse represents a tenant in API responses
type TenantResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
}

// ToTenantResponse converts a domain Tenant to TenantResponse
func ToTenantResponse(t *tenancy.Tenant) TenantResponse {
	return TenantResponse{
		ID:          t.ID,
		Name:        t.Name,
		Email:       t.Email,
		PhoneNumber: t.PhoneNumber,
		Address:     t.Address,
	}
}

// ToTenantResponses converts a slice of tenants
func ToTenantResponses(tenants []tenancy.Tenant) []TenantResponse {
	responses := make([]TenantResponse, len(tenants))
	for i := range tenants {
		responses[i] = ToTenantResponse(&tenants[i])
	}
	return responses
}
