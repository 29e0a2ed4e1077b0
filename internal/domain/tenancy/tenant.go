package tenancy

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/tenantbill/backend/internal/domain/shared"
)

const (
	maxNameLength    = 200
	maxEmailLength   = 200
	maxPhoneLength   = 50
	maxAddressLength = 500
)

// Tenant is the billed customer or resident.
// It never embeds its bills; bills point back through TenantID.
type Tenant struct {
	shared.BaseEntity
	Name        string
	Email       string
	PhoneNumber string
	Address     string
}

// NewTenant creates a new tenant with validated contact details
func NewTenant(name, email, phoneNumber, address string) (*Tenant, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if utf8.RuneCountInString(phoneNumber) > maxPhoneLength {
		return nil, shared.NewDomainError("VALIDATION_LENGTH", "Phone number cannot exceed 50 characters")
	}
	if utf8.RuneCountInString(address) > maxAddressLength {
		return nil, shared.NewDomainError("VALIDATION_LENGTH", "Address cannot exceed 500 characters")
	}

	return &Tenant{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		Email:       email,
		PhoneNumber: strings.TrimSpace(phoneNumber),
		Address:     strings.TrimSpace(address),
	}, nil
}

// UpdateContact changes the name and email.
// Phone number and address are immutable through this path.
func (t *Tenant) UpdateContact(name, email string) error {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if err := validateName(name); err != nil {
		return err
	}
	if err := validateEmail(email); err != nil {
		return err
	}

	t.Name = name
	t.Email = email
	t.Touch()
	return nil
}

func validateName(name string) error {
	if name == "" {
		return shared.NewDomainError("VALIDATION_REQUIRED", "Tenant name cannot be empty")
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return shared.NewDomainError("VALIDATION_LENGTH", "Tenant name cannot exceed 200 characters")
	}
	return nil
}

// email is optional, but when present it must parse as a bare address
func validateEmail(email string) error {
	if email == "" {
		return nil
	}
	if utf8.RuneCountInString(email) > maxEmailLength {
		return shared.NewDomainError("VALIDATION_LENGTH", "Email cannot exceed 200 characters")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return shared.NewDomainError("VALIDATION_FORMAT", "Email is not a valid address")
	}
	return nil
}
