package models

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrCartLocked = errors.New("cart is already attached to an order")

// Cart belongs to either a Customer or, while the visitor is anonymous,
// to a session token. Once an Order is created from it InOrder is set and
// the cart refuses any further mutation.
type Cart struct {
	ID               uint64 `gorm:"primaryKey"`
	CreatedAt        int64
	UpdatedAt        int64
	OwnerID          *uint64
	Owner            *Customer     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Token            string        `gorm:"type:varchar(64);index"`
	Products         []CartProduct `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	TotalProducts    uint          `gorm:"not null;default:0"`
	FinalPrice       decimal.Decimal `gorm:"type:decimal(9,2)"`
	InOrder          bool            `gorm:"not null;default:false"`
	ForAnonymousUser bool            `gorm:"not null;default:false"`
}

// CartForCustomer returns the customer's open cart, creating one if needed
func CartForCustomer(tx *gorm.DB, customer *Customer) (cart Cart, err error) {
	err = tx.Preload("Products").
		Where("owner_id = ? and in_order = ?", customer.ID, false).
		First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = Cart{OwnerID: &customer.ID}
		err = tx.Create(&cart).Error
	}
	return
}

// CartForToken returns the open anonymous cart for a session token,
// creating one if needed
func CartForToken(tx *gorm.DB, token string) (cart Cart, err error) {
	err = tx.Preload("Products").
		Where("token = ? and in_order = ?", token, false).
		First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = Cart{Token: token, ForAnonymousUser: true}
		err = tx.Create(&cart).Error
	}
	return
}

// AddProduct appends a product to the cart, or bumps the quantity if the
// same product is already in it
func (c *Cart) AddProduct(tx *gorm.DB, contentType string, objectID uint64, qty uint) (cp CartProduct, err error) {
	if c.InOrder {
		return cp, ErrCartLocked
	}
	if qty < 1 {
		return cp, ErrInvalidQty
	}
	err = tx.Where("cart_id = ? and content_type = ? and object_id = ?",
		c.ID, contentType, objectID).First(&cp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cp = CartProduct{
			CartID:      c.ID,
			CustomerID:  c.OwnerID,
			ContentType: contentType,
			ObjectID:    objectID,
			Qty:         qty,
		}
		err = tx.Create(&cp).Error
	} else if err == nil {
		cp.Qty += qty
		err = tx.Save(&cp).Error
	}
	if err != nil {
		return
	}
	return cp, c.Recalculate(tx)
}

// SetQty changes the quantity of one cart line (and re-derives its price)
func (c *Cart) SetQty(tx *gorm.DB, cartProductID uint64, qty uint) error {
	if c.InOrder {
		return ErrCartLocked
	}
	if qty < 1 {
		return ErrInvalidQty
	}
	var cp CartProduct
	if err := tx.Where("cart_id = ?", c.ID).First(&cp, cartProductID).Error; err != nil {
		return err
	}
	cp.Qty = qty
	if err := tx.Save(&cp).Error; err != nil {
		return err
	}
	return c.Recalculate(tx)
}

func (c *Cart) RemoveProduct(tx *gorm.DB, cartProductID uint64) error {
	if c.InOrder {
		return ErrCartLocked
	}
	result := tx.Where("cart_id = ?", c.ID).Delete(&CartProduct{}, cartProductID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return c.Recalculate(tx)
}

// Recalculate restores the aggregate invariants from the cart lines:
// TotalProducts = sum of quantities, FinalPrice = sum of line prices
func (c *Cart) Recalculate(tx *gorm.DB) error {
	var products []CartProduct
	if err := tx.Where("cart_id = ?", c.ID).Find(&products).Error; err != nil {
		return err
	}
	total := uint(0)
	price := decimal.Zero
	for _, cp := range products {
		total += cp.Qty
		price = price.Add(cp.FinalPrice)
	}
	c.Products = products
	c.TotalProducts = total
	c.FinalPrice = price
	return tx.Model(c).Updates(map[string]interface{}{
		"total_products": total,
		"final_price":    price,
	}).Error
}

// ReassignAnonymousCart hands the anonymous session cart over to the
// customer who just logged in or registered. Ownership is transferred, not
// copied: when the customer has no open cart (or an empty one) the
// anonymous cart simply becomes theirs; otherwise its lines are moved into
// the existing cart and the empty shell is deleted.
func ReassignAnonymousCart(tx *gorm.DB, token string, customer *Customer) error {
	if token == "" {
		return nil
	}
	var anon Cart
	err := tx.Where("token = ? and for_anonymous_user = ? and in_order = ?",
		token, true, false).First(&anon).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	var own Cart
	err = tx.Where("owner_id = ? and in_order = ?", customer.ID, false).First(&own).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && own.TotalProducts == 0) {
		if err == nil {
			// Replace the empty cart with the anonymous one
			if err = tx.Delete(&own).Error; err != nil {
				return err
			}
		}
		err = tx.Model(&anon).Updates(map[string]interface{}{
			"owner_id":           customer.ID,
			"token":              "",
			"for_anonymous_user": false,
		}).Error
		if err != nil {
			return err
		}
		return tx.Model(&CartProduct{}).Where("cart_id = ?", anon.ID).
			Update("customer_id", customer.ID).Error
	}
	if err != nil {
		return err
	}

	// Move the anonymous lines into the customer's cart
	err = tx.Model(&CartProduct{}).Where("cart_id = ?", anon.ID).
		Updates(map[string]interface{}{
			"cart_id":     own.ID,
			"customer_id": customer.ID,
		}).Error
	if err != nil {
		return err
	}
	if err = tx.Delete(&anon).Error; err != nil {
		return err
	}
	return own.Recalculate(tx)
}
