//go:build unit

package order_test

import (
	"testing"
	"time"

	"shopcompare/internal/domain/order"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func validParams() order.NewOrderParams {
	return order.NewOrderParams{
		UserID:       uuid.New(),
		OrderID:      " 402-1234567 ",
		ProductName:  "Sony WH-1000XM4",
		Platform:     "Amazon",
		PurchaseDate: now.Add(-48 * time.Hour),
		OrderURL:     "https://www.amazon.in/gp/your-account/order-details?orderID=402-1234567",
	}
}

func TestNew(t *testing.T) {
	t.Run("starts pending", func(t *testing.T) {
		p := validParams()
		o, err := order.New(p, now)
		require.NoError(t, err)

		assert.Equal(t, "402-1234567", o.OrderID)
		assert.Equal(t, order.StatusPending, o.Status)
		assert.Equal(t, p.PurchaseDate, o.PurchaseDate)
		assert.Nil(t, o.LastStatusCheckAt)
		assert.True(t, o.OwnedBy(p.UserID))
		assert.False(t, o.OwnedBy(uuid.New()))
	})

	t.Run("purchase date defaults to now", func(t *testing.T) {
		p := validParams()
		p.PurchaseDate = time.Time{}
		o, err := order.New(p, now)
		require.NoError(t, err)
		assert.Equal(t, now, o.PurchaseDate)
	})

	tests := []struct {
		name   string
		mutate func(*order.NewOrderParams)
		errIs  error
	}{
		{"missing order id", func(p *order.NewOrderParams) { p.OrderID = " " }, order.ErrMissingOrderID},
		{"missing product", func(p *order.NewOrderParams) { p.ProductName = "" }, order.ErrMissingProductName},
		{"missing platform", func(p *order.NewOrderParams) { p.Platform = "" }, order.ErrMissingPlatform},
		{"non http url", func(p *order.NewOrderParams) { p.OrderURL = "ftp://example.com/o/1" }, order.ErrInvalidOrderURL},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validParams()
			tt.mutate(&p)
			o, err := order.New(p, now)
			assert.Nil(t, o)
			assert.ErrorIs(t, err, tt.errIs)
		})
	}
}

func TestApplyStatus(t *testing.T) {
	o, err := order.New(validParams(), now)
	require.NoError(t, err)

	checked := now.Add(time.Hour)
	o.ApplyStatus(order.StatusShipped, checked)

	assert.Equal(t, order.StatusShipped, o.Status)
	require.NotNil(t, o.LastStatusCheckAt)
	assert.Equal(t, checked, *o.LastStatusCheckAt)
	assert.Equal(t, checked, o.UpdatedAt)
	assert.Equal(t, now, o.CreatedAt)
}

func TestDetectStatus(t *testing.T) {
	tests := []struct {
		page string
		want string
	}{
		{"Your package was shipped on Monday. Delivered today.", order.StatusDelivered},
		{"OUT FOR DELIVERY - arriving by 9pm", order.StatusOutForDelivery},
		{"Order confirmed and shipped", order.StatusShipped},
		{"Payment confirmed", order.StatusConfirmed},
		{"Status: pending approval", order.StatusPending},
		{"Sign in to continue", order.StatusUnavailable},
		{"", order.StatusUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, order.DetectStatus(tt.page))
		})
	}
}
