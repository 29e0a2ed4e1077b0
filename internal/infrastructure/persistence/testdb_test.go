package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/tenantbill/backend/internal/domain/billing"
	"github.com/tenantbill/backend/internal/domain/tenancy"
	"github.com/tenantbill/backend/internal/infrastructure/persistence/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens an in-memory SQLite database with foreign keys enforced.
// A single connection keeps every query on the same in-memory database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := Open(sqlite.Open(":memory:?_foreign_keys=on"), nil)
	require.NoError(t, err)

	sqlDB, err := database.DB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.DB.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, database.DB.AutoMigrate(models.All()...))
	return database.DB
}

func createTestTenant(t *testing.T, db *gorm.DB, name string) *tenancy.Tenant {
	t.Helper()
	tenant, err := tenancy.NewTenant(name, "", "", "")
	require.NoError(t, err)
	require.NoError(t, NewGormTenantRepository(db).Create(context.Background(), tenant))
	return tenant
}

func newTestBill(t *testing.T, tenantID int64, fee string, due time.Time, paid bool) *billing.Bill {
	t.Helper()
	bill, err := billing.NewBill(tenantID, billing.Charges{
		MonthlyFee:  decimal.RequireFromString(fee),
		Water:       decimal.RequireFromString("10.50"),
		Electricity: decimal.RequireFromString("20.25"),
		Waste:       decimal.RequireFromString("4.25"),
	}, due, paid)
	require.NoError(t, err)
	return bill
}
