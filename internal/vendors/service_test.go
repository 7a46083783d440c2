package vendors

import (
	"context"
	"testing"
	"time"

	"github.com/marketconnect/backend/pkg/db/models"
	pkgerrors "github.com/marketconnect/backend/pkg/errors"
	"github.com/marketconnect/backend/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupVendorsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:vendors_test?mode=memory&cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Vendor{}))

	t.Cleanup(func() {
		db.Exec("DELETE FROM vendors")
	})
	return db
}

func newTestService(t *testing.T) (Service, *gorm.DB) {
	t.Helper()
	db := setupVendorsTestDB(t)
	svc, err := NewService(NewRepository(db))
	require.NoError(t, err)
	return svc, db
}

func validInput() CreateVendorInput {
	return CreateVendorInput{
		FullName:              "Asha Pawar",
		MobileNumber:          "9876543210",
		LanguagePreference:    "hi",
		StallName:             "Asha Chaat Corner",
		StallAddress:          "12 Linking Road",
		City:                  "Mumbai",
		Pincode:               "400050",
		State:                 "Maharashtra",
		StallType:             "chaat",
		RawMaterialNeeds:      []string{"Spices", "Oil"},
		PreferredDeliveryTime: "morning",
	}
}

func TestCreateVendor(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validInput())
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Asha Pawar", created.FullName)
	assert.Equal(t, []string{"Spices", "Oil"}, created.RawMaterialNeeds)

	var row models.Vendor
	require.NoError(t, db.First(&row, created.ID).Error)
	assert.Equal(t, types.StringList{"Spices", "Oil"}, row.RawMaterialNeeds)
	assert.Equal(t, "chaat", row.StallType)
}

func TestCreateVendorValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	cases := map[string]func(*CreateVendorInput){
		"missing full name":  func(in *CreateVendorInput) { in.FullName = "" },
		"missing mobile":     func(in *CreateVendorInput) { in.MobileNumber = "" },
		"missing city":       func(in *CreateVendorInput) { in.City = "" },
		"empty material set": func(in *CreateVendorInput) { in.RawMaterialNeeds = nil },
		"blank state":        func(in *CreateVendorInput) { in.State = "   " },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			input := validInput()
			mutate(&input)

			_, err := svc.Create(ctx, input)
			require.Error(t, err)

			typed := pkgerrors.As(err)
			require.NotNil(t, typed)
			assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
			// the full mandatory list is reported, not just the missing field
			assert.Equal(t, requiredFields, typed.Required())
		})
	}
}

func TestCreateVendorOptionalFields(t *testing.T) {
	svc, _ := newTestService(t)

	input := validInput()
	input.StallName = ""
	input.Latitude = ""
	input.Longitude = ""

	created, err := svc.Create(context.Background(), input)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
}

func TestGetVendorByID(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	vendor, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Asha Pawar", vendor.FullName)
	assert.Equal(t, types.StringList{"Spices", "Oil"}, vendor.RawMaterialNeeds)

	_, err = svc.GetByID(ctx, created.ID+100)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestListVendorsNewestFirst(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	first := validInput()
	first.FullName = "First Vendor"
	older, err := svc.Create(ctx, first)
	require.NoError(t, err)

	second := validInput()
	second.FullName = "Second Vendor"
	newer, err := svc.Create(ctx, second)
	require.NoError(t, err)

	// spread created_at so ordering is deterministic
	require.NoError(t, db.Model(&models.Vendor{}).
		Where("id = ?", older.ID).
		Update("created_at", time.Now().Add(-time.Hour)).Error)
	require.NoError(t, db.Model(&models.Vendor{}).
		Where("id = ?", newer.ID).
		Update("created_at", time.Now()).Error)

	vendors, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, vendors, 2)
	assert.Equal(t, "Second Vendor", vendors[0].FullName)
	assert.Equal(t, "First Vendor", vendors[1].FullName)
}

func TestListVendorsEmpty(t *testing.T) {
	svc, _ := newTestService(t)

	vendors, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, vendors)
	assert.Empty(t, vendors)
}
