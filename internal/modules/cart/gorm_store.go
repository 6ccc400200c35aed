package cart

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormStore persists ledgers as cart + cart_items rows. Save replaces
// the item rows wholesale so the ledger stays the single source of
// truth; totals are always recomputed from rows on load.
type GormStore struct{ db *gorm.DB }

func NewGormStore(db *gorm.DB) *GormStore { return &GormStore{db: db} }

func (s *GormStore) Load(ctx context.Context, cartID string) (*Ledger, bool, error) {
	var c Cart
	err := s.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		First(&c, "id = ? AND status = ?", cartID, "open").Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	l := NewLedger()
	for _, it := range c.Items {
		var opts map[string]string
		if len(it.OptionsJSON) > 0 {
			if err := json.Unmarshal(it.OptionsJSON, &opts); err != nil {
				log.Printf("cart: item %s has malformed options_json: %v", it.ID, err)
			}
		}
		l.Add(it.ProductID, it.VariantID, it.Quantity, Snapshot{
			Name:       it.NameSnapshot,
			Slug:       it.SlugSnapshot,
			PriceCents: it.PriceCents,
			Currency:   it.Currency,
			ImageURL:   it.ImageURL,
			Options:    opts,
		})
	}
	return l, true, nil
}

func (s *GormStore) Save(ctx context.Context, cartID string, l *Ledger) error {
	items := l.Items()

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var c Cart
		err := tx.First(&c, "id = ?", cartID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c = Cart{ID: cartID, Status: "open", CreatedAt: time.Now(), UpdatedAt: time.Now()}
			if err := tx.Create(&c).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		} else {
			if err := tx.Model(&Cart{}).Where("id = ?", cartID).
				Update("updated_at", time.Now()).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("cart_id = ?", cartID).Delete(&CartItem{}).Error; err != nil {
			return err
		}

		for pos, it := range items {
			optsJSON, err := json.Marshal(it.Snapshot.Options)
			if err != nil {
				return err
			}
			row := CartItem{
				ID:           uuid.NewString(),
				CartID:       cartID,
				ProductID:    it.ProductID,
				VariantID:    it.VariantID,
				Quantity:     it.Qty,
				Position:     pos,
				NameSnapshot: it.Snapshot.Name,
				SlugSnapshot: it.Snapshot.Slug,
				PriceCents:   it.Snapshot.PriceCents,
				Currency:     it.Snapshot.Currency,
				ImageURL:     it.Snapshot.ImageURL,
				OptionsJSON:  optsJSON,
				CreatedAt:    time.Now(),
				UpdatedAt:    time.Now(),
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *GormStore) Delete(ctx context.Context, cartID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", cartID).Delete(&CartItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Cart{}, "id = ?", cartID).Error
	})
}
