package orders

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/marketconnect/backend/pkg/db/models"
	"github.com/marketconnect/backend/pkg/enums"
	pkgerrors "github.com/marketconnect/backend/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupOrdersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:orders_test?mode=memory&cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Order{}))

	t.Cleanup(func() {
		db.Exec("DELETE FROM orders")
	})
	return db
}

func newTestService(t *testing.T) (Service, *gorm.DB) {
	t.Helper()
	db := setupOrdersTestDB(t)
	svc, err := NewService(NewRepository(db))
	require.NoError(t, err)
	return svc, db
}

func validInput(id string) CreateOrderInput {
	return CreateOrderInput{
		ID:          id,
		VendorID:    3,
		Items:       json.RawMessage(`[{"name":"Onions","qty":25}]`),
		Subtotal:    decimal.NewFromInt(700),
		Tax:         decimal.NewFromInt(35),
		TotalAmount: decimal.NewFromInt(735),
	}
}

func TestCreateOrder(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validInput("ORD-1001"))
	require.NoError(t, err)
	assert.Equal(t, "ORD-1001", created.ID)
	assert.Equal(t, enums.OrderTypeIndividual, created.OrderType)
	assert.Equal(t, enums.OrderStatusPending, created.Status)
	assert.Equal(t, enums.PaymentStatusPending, created.PaymentStatus)
	assert.True(t, created.TotalAmount.Equal(decimal.NewFromInt(735)))

	var row models.Order
	require.NoError(t, db.First(&row, "id = ?", "ORD-1001").Error)
	assert.JSONEq(t, `[{"name":"Onions","qty":25}]`, row.Items)
	assert.EqualValues(t, 3, row.VendorID)
}

func TestCreateOrderPreSerializedItems(t *testing.T) {
	svc, db := newTestService(t)

	input := validInput("ORD-1002")
	input.Items = json.RawMessage(`"[{\"name\":\"Oil\",\"qty\":2}]"`)

	_, err := svc.Create(context.Background(), input)
	require.NoError(t, err)

	var row models.Order
	require.NoError(t, db.First(&row, "id = ?", "ORD-1002").Error)
	assert.JSONEq(t, `[{"name":"Oil","qty":2}]`, row.Items)
}

func TestCreateOrderValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	cases := map[string]func(*CreateOrderInput){
		"missing id":     func(in *CreateOrderInput) { in.ID = "" },
		"missing vendor": func(in *CreateOrderInput) { in.VendorID = 0 },
		"zero total":     func(in *CreateOrderInput) { in.TotalAmount = decimal.Zero },
		"missing items":  func(in *CreateOrderInput) { in.Items = nil },
		"null items":     func(in *CreateOrderInput) { in.Items = json.RawMessage(`null`) },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			input := validInput("ORD-bad")
			mutate(&input)

			_, err := svc.Create(ctx, input)
			typed := pkgerrors.As(err)
			require.NotNil(t, typed)
			assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
			assert.Equal(t, requiredFields, typed.Required())
		})
	}
}

func TestCreateOrderRejectsUnknownEnums(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	input := validInput("ORD-1003")
	input.Status = "shipped"
	_, err := svc.Create(ctx, input)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())

	input = validInput("ORD-1003")
	input.PaymentMethod = "cheque"
	_, err = svc.Create(ctx, input)
	typed = pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestGetOrderByID(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, validInput("ORD-2001"))
	require.NoError(t, err)

	order, err := svc.GetByID(ctx, "ORD-2001")
	require.NoError(t, err)
	assert.EqualValues(t, 3, order.VendorID)

	_, err = svc.GetByID(ctx, "ORD-nope")
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestListOrdersByParty(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	mine := validInput("ORD-3001")
	_, err := svc.Create(ctx, mine)
	require.NoError(t, err)

	supplierID := int64(9)
	theirs := validInput("ORD-3002")
	theirs.VendorID = 4
	theirs.SupplierID = &supplierID
	_, err = svc.Create(ctx, theirs)
	require.NoError(t, err)

	byVendor, err := svc.ListByVendor(ctx, 3)
	require.NoError(t, err)
	require.Len(t, byVendor, 1)
	assert.Equal(t, "ORD-3001", byVendor[0].ID)

	bySupplier, err := svc.ListBySupplier(ctx, supplierID)
	require.NoError(t, err)
	require.Len(t, bySupplier, 1)
	assert.Equal(t, "ORD-3002", bySupplier[0].ID)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	none, err := svc.ListByVendor(ctx, 555)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestUpdateOrderStatus(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, validInput("ORD-4001"))
	require.NoError(t, err)

	t.Run("requires at least one field", func(t *testing.T) {
		_, err := svc.UpdateStatus(ctx, "ORD-4001", StatusUpdateInput{})
		typed := pkgerrors.As(err)
		require.NotNil(t, typed)
		assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
	})

	t.Run("partial update only touches supplied field", func(t *testing.T) {
		_, err := svc.UpdateStatus(ctx, "ORD-4001", StatusUpdateInput{Status: "accepted"})
		require.NoError(t, err)

		var row models.Order
		require.NoError(t, db.First(&row, "id = ?", "ORD-4001").Error)
		assert.Equal(t, enums.OrderStatusAccepted, row.Status)
		assert.Equal(t, enums.PaymentStatusPending, row.PaymentStatus)
	})

	t.Run("updated_at is refreshed", func(t *testing.T) {
		var before models.Order
		require.NoError(t, db.First(&before, "id = ?", "ORD-4001").Error)

		time.Sleep(10 * time.Millisecond)
		_, err := svc.UpdateStatus(ctx, "ORD-4001", StatusUpdateInput{PaymentStatus: "completed"})
		require.NoError(t, err)

		var after models.Order
		require.NoError(t, db.First(&after, "id = ?", "ORD-4001").Error)
		assert.True(t, after.UpdatedAt.After(before.UpdatedAt))
		assert.Equal(t, enums.PaymentStatusCompleted, after.PaymentStatus)
	})

	t.Run("illegal transition is a state conflict", func(t *testing.T) {
		_, err := svc.UpdateStatus(ctx, "ORD-4001", StatusUpdateInput{Status: "pending"})
		typed := pkgerrors.As(err)
		require.NotNil(t, typed)
		assert.Equal(t, pkgerrors.CodeStateConflict, typed.Code())
	})

	t.Run("self transition skips the write", func(t *testing.T) {
		var before models.Order
		require.NoError(t, db.First(&before, "id = ?", "ORD-4001").Error)

		time.Sleep(10 * time.Millisecond)
		_, err := svc.UpdateStatus(ctx, "ORD-4001", StatusUpdateInput{Status: "accepted"})
		require.NoError(t, err)

		var after models.Order
		require.NoError(t, db.First(&after, "id = ?", "ORD-4001").Error)
		assert.Equal(t, before.UpdatedAt, after.UpdatedAt)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		_, err := svc.UpdateStatus(ctx, "ORD-4001", StatusUpdateInput{Status: "shipped"})
		typed := pkgerrors.As(err)
		require.NotNil(t, typed)
		assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
	})

	t.Run("missing order", func(t *testing.T) {
		_, err := svc.UpdateStatus(ctx, "ORD-nope", StatusUpdateInput{Status: "accepted"})
		typed := pkgerrors.As(err)
		require.NotNil(t, typed)
		assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
	})
}

func TestPaymentStatusMachine(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, validInput("ORD-5001"))
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, "ORD-5001", StatusUpdateInput{PaymentStatus: "completed"})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, "ORD-5001", StatusUpdateInput{PaymentStatus: "failed"})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeStateConflict, typed.Code())

	_, err = svc.UpdateStatus(ctx, "ORD-5001", StatusUpdateInput{PaymentStatus: "refunded"})
	require.NoError(t, err)
}

func TestDeleteOrder(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, validInput("ORD-6001"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "ORD-6001"))

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count)

	err = svc.Delete(ctx, "ORD-6001")
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}
