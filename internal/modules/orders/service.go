package orders

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"bebeboutique.mx/app/internal/modules/cart"
	"bebeboutique.mx/app/internal/modules/checkout"
	"bebeboutique.mx/app/internal/modules/email"
	"bebeboutique.mx/app/internal/modules/shipping"
	"bebeboutique.mx/app/internal/notify"
	"bebeboutique.mx/app/internal/shared/apperr"
)

// Packed baby garments run 0.1-0.5 kg; flat per-unit estimate for the
// checkout shipping quote.
var itemWeightKg = decimal.NewFromFloat(0.35)

type Service struct {
	db        *gorm.DB
	repo      *Repo
	carts     *cart.Service
	estimator *shipping.Estimator
	mail      *email.Service
	notifier  notify.Notifier
}

func NewService(db *gorm.DB, repo *Repo, carts *cart.Service, estimator *shipping.Estimator, mail *email.Service, notifier notify.Notifier) *Service {
	if notifier == nil {
		notifier = notify.Noop{}
	}
	return &Service{db: db, repo: repo, carts: carts, estimator: estimator, mail: mail, notifier: notifier}
}

type PlaceOrderInput struct {
	Email       string
	Name        string
	AddressLine string
	City        string
	PostalCode  string
	Destination string

	ShippingLevel string
}

// PlaceOrder freezes the cart into an order: one transaction creates
// the order rows and deducts stock under row locks, then the cart is
// cleared and the confirmation mail goes out.
func (s *Service) PlaceOrder(ctx context.Context, cartID string, in PlaceOrderInput) (Order, []OrderItem, error) {
	ledger, err := s.carts.Load(ctx, cartID)
	if err != nil {
		return Order{}, nil, err
	}
	lines := ledger.Items()
	if len(lines) == 0 {
		return Order{}, nil, ErrCartEmpty
	}

	currency := ""
	for _, it := range lines {
		cur := strings.ToUpper(strings.TrimSpace(it.Snapshot.Currency))
		if cur == "" {
			continue
		}
		if currency == "" {
			currency = cur
		} else if currency != cur {
			return Order{}, nil, ErrCurrencyMismatch
		}
	}
	if currency == "" {
		currency = "MXN"
	}

	subtotal := ledger.SubtotalCents()
	weight := itemWeightKg.Mul(decimal.NewFromInt(int64(ledger.TotalItems())))

	rate, err := s.estimator.PriceFor(ctx, in.ShippingLevel, shipping.QuoteInput{
		WeightKg:           weight,
		Destination:        in.Destination,
		DeclaredValueCents: int64(subtotal),
	}, int64(subtotal))
	if err != nil {
		return Order{}, nil, err
	}

	order := Order{
		ID:            uuid.NewString(),
		Status:        StatusConfirmed,
		Email:         in.Email,
		Name:          in.Name,
		AddressLine:   in.AddressLine,
		City:          in.City,
		PostalCode:    in.PostalCode,
		Destination:   in.Destination,
		Currency:      currency,
		SubtotalCents: subtotal,
		ShippingCents: int(rate.PriceCents),
		TotalCents:    subtotal + int(rate.PriceCents),
		ShippingLevel: rate.Code,
		ShippingETA:   rate.ETA,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	items := make([]OrderItem, 0, len(lines))
	stock := make([]checkout.StockLine, 0, len(lines))
	for _, it := range lines {
		optsJSON, err := json.Marshal(it.Snapshot.Options)
		if err != nil {
			return Order{}, nil, err
		}
		items = append(items, OrderItem{
			ID:             uuid.NewString(),
			ProductID:      it.ProductID,
			VariantID:      it.VariantID,
			Name:           it.Snapshot.Name,
			Slug:           it.Snapshot.Slug,
			ImageURL:       it.Snapshot.ImageURL,
			OptionsJSON:    optsJSON,
			UnitPriceCents: it.Snapshot.PriceCents,
			Quantity:       it.Qty,
			LineTotalCents: it.Snapshot.PriceCents * it.Qty,
			CreatedAt:      time.Now(),
		})
		stock = append(stock, checkout.StockLine{VariantID: it.VariantID, Qty: it.Qty})
	}

	err = checkout.WithTxRetry(ctx, s.db, 3, func(tx *gorm.DB) error {
		if err := checkout.DeductStockInTx(ctx, tx, stock); err != nil {
			return err
		}
		return CreateInTx(ctx, tx, &order, items)
	})
	if err != nil {
		var oos *checkout.OutOfStockError
		if errors.As(err, &oos) {
			s.notifier.Notify(ctx, notify.KindError, "Some items in your cart just sold out.")
			return Order{}, nil, apperr.ConflictErr("Some items in your cart are no longer in stock.")
		}
		return Order{}, nil, err
	}

	if err := s.carts.Clear(ctx, cartID); err != nil {
		// The order exists; an orphaned cart is recoverable, log and move on.
		log.Printf("checkout: clear cart %s after order %s: %v", cartID, order.ID, err)
	}

	if s.mail != nil {
		if err := s.mail.SendOrderConfirmation(ctx, email.OrderSummary{
			OrderID:    order.ID,
			Email:      order.Email,
			Name:       order.Name,
			TotalCents: order.TotalCents,
			Currency:   order.Currency,
			ETA:        order.ShippingETA,
		}); err != nil {
			log.Printf("checkout: confirmation mail for order %s: %v", order.ID, err)
		}
	}

	s.notifier.Notify(ctx, notify.KindSuccess, "Order placed. ¡Gracias!")
	return order, items, nil
}
