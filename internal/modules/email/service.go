package email

import (
	"context"
	"fmt"

	"bebeboutique.mx/app/internal/mailer"
	"bebeboutique.mx/app/pkg/view"
)

// Service composes and sends transactional mail for the shop.
type Service struct {
	m        mailer.Service
	fromName string
	fromAddr string
}

func NewService(m mailer.Service, fromName, fromAddr string) *Service {
	return &Service{m: m, fromName: fromName, fromAddr: fromAddr}
}

type OrderSummary struct {
	OrderID    string
	Email      string
	Name       string
	TotalCents int
	Currency   string
	ETA        string
}

func (s *Service) SendOrderConfirmation(ctx context.Context, o OrderSummary) error {
	total := view.MoneyFromCents(o.TotalCents, o.Currency)

	text := fmt.Sprintf(
		"Hola %s,\n\nrecibimos tu pedido %s por %s.\nEntrega estimada: %s.\n\nGracias por comprar en Bebé Boutique.\n",
		o.Name, o.OrderID, total, o.ETA,
	)

	return s.m.Send(ctx, mailer.Email{
		FromName: s.fromName,
		From:     s.fromAddr,
		To:       []string{o.Email},
		Subject:  fmt.Sprintf("Tu pedido %s está confirmado", o.OrderID),
		TextBody: text,
	})
}
