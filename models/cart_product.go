package models

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrInvalidQty = errors.New("quantity must be at least 1")

// CartProduct is one line in a Cart. FinalPrice is never taken from the
// client - it is derived from the referenced product on every save.
type CartProduct struct {
	ID          uint64 `gorm:"primaryKey"`
	CreatedAt   int64
	UpdatedAt   int64
	CustomerID  *uint64
	Customer    *Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CartID      uint64    `gorm:"index;not null"`
	Qty         uint      `gorm:"not null;default:1"`
	FinalPrice  decimal.Decimal `gorm:"type:decimal(9,2)"`
	ContentType string          `gorm:"type:varchar(50);not null"`
	ObjectID    uint64          `gorm:"not null"`
}

func (cp *CartProduct) BeforeSave(tx *gorm.DB) error {
	if cp.Qty < 1 {
		return ErrInvalidQty
	}
	product, err := ResolveProduct(tx, cp.ContentType, cp.ObjectID)
	if err != nil {
		return err
	}
	cp.FinalPrice = product.ProductPrice().Mul(decimal.NewFromInt(int64(cp.Qty)))
	return nil
}

func (cp *CartProduct) Product(tx *gorm.DB) (Product, error) {
	return ResolveProduct(tx, cp.ContentType, cp.ObjectID)
}
