package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type OrderStatus string
type BuyingType string

const (
	OrderStatusNew        OrderStatus = "new"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusReady      OrderStatus = "is_ready"
	OrderStatusCompleted  OrderStatus = "completed"

	BuyingTypeSelf     BuyingType = "self"
	BuyingTypeDelivery BuyingType = "delivery"
)

// statusRank orders the statuses; transitions only ever move up
var statusRank = map[OrderStatus]int{
	OrderStatusNew:        0,
	OrderStatusInProgress: 1,
	OrderStatusReady:      2,
	OrderStatusCompleted:  3,
}

var (
	ErrStatusTransition = errors.New("order status can only move forward")
	ErrUnknownStatus    = errors.New("unknown order status")
	ErrAddressRequired  = errors.New("delivery orders require an address")
	ErrEmptyCart        = errors.New("cannot check out an empty cart")
)

// Order is the checked-out snapshot of a Cart. The cart is referenced, not
// owned - it stays around as the historical record of what was bought.
type Order struct {
	ID         uint64 `gorm:"primaryKey"`
	CreatedAt  int64
	UpdatedAt  int64
	CustomerID uint64   `gorm:"not null;index"`
	Customer   Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	FirstName  string   `gorm:"type:varchar(100)"`
	LastName   string   `gorm:"type:varchar(100)"`
	Phone      string   `gorm:"type:varchar(20)"`
	CartID     uint64   `gorm:"not null"`
	Cart       Cart
	Address    string      `gorm:"type:varchar(1024)"`
	Status     OrderStatus `gorm:"type:varchar(100);default:'new'"`
	BuyingType BuyingType  `gorm:"type:varchar(100)"`
	Comment    string      `gorm:"type:text"`
	OrderDate  time.Time   // requested fulfillment date, defaults to "now"
}

type CheckoutDetails struct {
	FirstName  string
	LastName   string
	Phone      string
	Address    string
	BuyingType BuyingType
	Comment    string
	OrderDate  time.Time
}

// CheckoutCart turns the customer's open cart into a new Order. The cart is
// locked (InOrder) and a fresh empty cart is created for further shopping.
// Must run inside a transaction - all three writes commit or none do.
func CheckoutCart(tx *gorm.DB, customer *Customer, cart *Cart, details CheckoutDetails) (order Order, err error) {
	if cart.InOrder {
		return order, ErrCartLocked
	}
	if cart.TotalProducts == 0 {
		return order, ErrEmptyCart
	}
	if details.BuyingType != BuyingTypeSelf && details.BuyingType != BuyingTypeDelivery {
		details.BuyingType = BuyingTypeSelf
	}
	if details.BuyingType == BuyingTypeDelivery && details.Address == "" {
		return order, ErrAddressRequired
	}
	if details.OrderDate.IsZero() {
		details.OrderDate = time.Now()
	}
	order = Order{
		CustomerID: customer.ID,
		FirstName:  details.FirstName,
		LastName:   details.LastName,
		Phone:      details.Phone,
		CartID:     cart.ID,
		Address:    details.Address,
		Status:     OrderStatusNew,
		BuyingType: details.BuyingType,
		Comment:    details.Comment,
		OrderDate:  details.OrderDate,
	}
	if err = tx.Create(&order).Error; err != nil {
		return
	}
	// Lock the cart for good
	err = tx.Model(cart).Updates(map[string]interface{}{
		"in_order": true,
		"token":    "",
	}).Error
	if err != nil {
		return
	}
	cart.InOrder = true
	// A new cart for subsequent shopping
	next := Cart{OwnerID: &customer.ID}
	return order, tx.Create(&next).Error
}

// SetStatus moves the order along new -> in_progress -> is_ready ->
// completed. Skipping ahead is allowed, going back is not.
func (o *Order) SetStatus(tx *gorm.DB, next OrderStatus) error {
	nextRank, ok := statusRank[next]
	if !ok {
		return ErrUnknownStatus
	}
	if nextRank <= statusRank[o.Status] {
		return ErrStatusTransition
	}
	o.Status = next
	return tx.Model(o).Update("status", next).Error
}

func OrdersForCustomer(tx *gorm.DB, customerID uint64) (orders []Order, err error) {
	err = tx.Preload("Cart").Preload("Cart.Products").
		Where("customer_id = ?", customerID).
		Order("created_at desc").Find(&orders).Error
	return
}
