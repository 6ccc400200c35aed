package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"bebeboutique.mx/app/internal/http/middleware"
	"bebeboutique.mx/app/internal/http/validation"
	"bebeboutique.mx/app/internal/modules/shipping"
	"bebeboutique.mx/app/internal/shared/apperr"
	"bebeboutique.mx/app/pkg/view"
)

type ShippingHandler struct {
	Estimator *shipping.Estimator
}

func NewShippingHandler(est *shipping.Estimator) *ShippingHandler {
	return &ShippingHandler{Estimator: est}
}

type quoteRequest struct {
	WeightKg    float64 `json:"weight_kg" binding:"required,gt=0,lte=30"`
	Destination string  `json:"destination" binding:"required"`
	PostalCode  string  `json:"postal_code" binding:"required,len=5,numeric"`
	ValueCents  int64   `json:"value_cents" binding:"omitempty,gte=0"`
}

// Quote handles POST /api/shipping/quote
func (h *ShippingHandler) Quote(c *gin.Context) {
	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Please complete all required fields.", validation.FromBindError(err, &req)))
		return
	}

	rates, err := h.Estimator.Quote(c.Request.Context(), shipping.QuoteInput{
		WeightKg:           decimal.NewFromFloat(req.WeightKg),
		Destination:        req.Destination,
		DeclaredValueCents: req.ValueCents,
	})
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	cfg := h.Estimator.Config()
	out := view.ShippingQuote{
		Currency:                   cfg.Currency,
		FreeShippingThresholdCents: int(cfg.FreeShippingThresholdCents),
		FreeShippingThreshold:      view.MoneyFromCents(int(cfg.FreeShippingThresholdCents), cfg.Currency),
	}
	for _, r := range rates {
		out.Rates = append(out.Rates, view.ShippingRate{
			Code:        r.Code,
			Name:        r.Name,
			Description: r.Description,
			ETA:         r.ETA,
			PriceCents:  int(r.PriceCents),
			Price:       view.MoneyFromCents(int(r.PriceCents), cfg.Currency),
		})
	}

	c.JSON(http.StatusOK, out)
}
