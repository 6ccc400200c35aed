package email_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bebeboutique.mx/app/internal/mailer"
	"bebeboutique.mx/app/internal/modules/email"
)

func TestSendOrderConfirmation(t *testing.T) {
	mock := &mailer.Mock{}
	svc := email.NewService(mock, "Bebé Boutique", "no-reply@bebeboutique.mx")

	err := svc.SendOrderConfirmation(t.Context(), email.OrderSummary{
		OrderID:    "ord-123",
		Email:      "ana@example.com",
		Name:       "Ana",
		TotalCents: 87550,
		Currency:   "MXN",
		ETA:        "5-7 días hábiles",
	})
	require.NoError(t, err)

	sent, ok := mock.Last()
	require.True(t, ok)
	assert.Equal(t, []string{"ana@example.com"}, sent.To)
	assert.Equal(t, "no-reply@bebeboutique.mx", sent.From)
	assert.Contains(t, sent.Subject, "ord-123")
	assert.Contains(t, sent.TextBody, "Ana")
	assert.Contains(t, sent.TextBody, "$875.50")
	assert.Contains(t, sent.TextBody, "5-7 días hábiles")
}

func TestSendOrderConfirmationMailerDown(t *testing.T) {
	mock := &mailer.Mock{Err: errors.New("smtp down")}
	svc := email.NewService(mock, "Bebé Boutique", "no-reply@bebeboutique.mx")

	err := svc.SendOrderConfirmation(t.Context(), email.OrderSummary{
		OrderID:  "ord-124",
		Email:    "ana@example.com",
		Name:     "Ana",
		Currency: "MXN",
	})
	assert.Error(t, err)

	_, ok := mock.Last()
	assert.False(t, ok, "failed sends must not be recorded")
}
