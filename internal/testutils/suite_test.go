package testutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupTestSuiteMigratesSchema(t *testing.T) {
	s := SetupTestSuite(t)
	require.NotNil(t, s.DB)

	m := s.DB.Migrator()
	for _, table := range []string{"tenant_businesses", "accounts", "properties", "tenants", "payments", "expenses"} {
		assert.True(t, m.HasTable(table), table)
	}
}

func TestFactoryGraphPersists(t *testing.T) {
	s := SetupTestSuite(t)
	defer s.CleanTestDB()

	fs := NewFactorySet()
	business, account, property, tenant := fs.CreateBusinessGraph()
	require.NoError(t, s.DB.Create(business).Error)
	require.NoError(t, s.DB.Omit("TenantBusiness").Create(account).Error)
	require.NoError(t, s.DB.Create(property).Error)
	require.NoError(t, s.DB.Create(tenant).Error)

	var count int64
	require.NoError(t, s.DB.Table("tenants").Where("property_id = ?", property.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	s.CleanTestDB()
	require.NoError(t, s.DB.Table("tenant_businesses").Count(&count).Error)
	assert.Zero(t, count)
}
