package persistence

import (
	"context"
	"errors"

	"github.com/tenantbill/backend/internal/domain/shared"
	"github.com/tenantbill/backend/internal/domain/tenancy"
	"github.com/tenantbill/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormTenantRepository implements TenantRepository using GORM
type GormTenantRepository struct {
	db *gorm.DB
}

// NewGormTenantRepository creates a new GormTenantRepository
func NewGormTenantRepository(db *gorm.DB) *GormTenantRepository {
	return &GormTenantRepository{db: db}
}

// FindByID finds a tenant by its ID
func (r *GormTenantRepository) FindByID(ctx context.Context, id int64) (*tenancy.Tenant, error) {
	model, err := findTenant(r.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns every tenant ordered by ID
func (r *GormTenantRepository) FindAll(ctx context.Context) ([]tenancy.Tenant, error) {
	var tenantModels []models.TenantModel
	if err := r.db.WithContext(ctx).Order("id").Find(&tenantModels).Error; err != nil {
		return nil, err
	}

	tenants := make([]tenancy.Tenant, len(tenantModels))
	for i := range tenantModels {
		tenants[i] = *tenantModels[i].ToDomain()
	}
	return tenants, nil
}

// Create inserts the tenant and sets its ID
func (r *GormTenantRepository) Create(ctx context.Context, tenant *tenancy.Tenant) error {
	model := models.TenantModelFromDomain(tenant)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	tenant.BaseEntity = model.BaseModel.ToDomain()
	return nil
}

// Update loads the tenant under a row lock, applies fn and saves the result
// in one transaction.
func (r *GormTenantRepository) Update(ctx context.Context, id int64, fn shared.MutateFunc[tenancy.Tenant]) (*tenancy.Tenant, error) {
	var updated *tenancy.Tenant
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model, err := findTenant(forUpdate(tx), id)
		if err != nil {
			return err
		}

		tenant := model.ToDomain()
		if err := fn(tenant); err != nil {
			return err
		}
		tenant.ID = id
		tenant.Touch()

		model.FromDomain(tenant)
		if err := tx.Save(model).Error; err != nil {
			return err
		}
		updated = tenant
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the tenant and returns it. A tenant that still has bills
// is not removed and yields a CONFLICT error.
func (r *GormTenantRepository) Delete(ctx context.Context, id int64) (*tenancy.Tenant, error) {
	var deleted *tenancy.Tenant
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model, err := findTenant(forUpdate(tx), id)
		if err != nil {
			return err
		}

		var billCount int64
		if err := tx.Model(&models.BillModel{}).Where("tenant_id = ?", id).Count(&billCount).Error; err != nil {
			return err
		}
		if billCount > 0 {
			return tenantHasBills(id, billCount)
		}

		if err := tx.Delete(&models.TenantModel{}, id).Error; err != nil {
			if IsForeignKeyViolation(err) {
				return tenantHasBills(id, 0)
			}
			return err
		}
		deleted = model.ToDomain()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

func findTenant(db *gorm.DB, id int64) (*models.TenantModel, error) {
	var model models.TenantModel
	if err := db.First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Tenant", id)
		}
		return nil, err
	}
	return &model, nil
}

// Ensure GormTenantRepository implements TenantRepository
var _ tenancy.TenantRepository = (*GormTenantRepository)(nil)
