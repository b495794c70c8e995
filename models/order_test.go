package models

import (
	"testing"
	"time"

	"gorm.io/gorm"
)

func checkoutTestCart(t *testing.T, tdb *gorm.DB, customer *Customer, album *Album) Cart {
	t.Helper()
	cart, err := CartForCustomer(tdb, customer)
	if err != nil {
		t.Fatalf("getting cart: %v", err)
	}
	if _, err = cart.AddProduct(tdb, ContentTypeAlbum, album.ID, 1); err != nil {
		t.Fatalf("adding product: %v", err)
	}
	return cart
}

func TestCheckoutCreatesNewOrder(t *testing.T) {
	tdb := testDB(t)
	album := testAlbum(t, tdb, "the-wall", "25.00", 3)
	customer := testCustomer(t, tdb, "roger")
	cart := checkoutTestCart(t, tdb, &customer, &album)

	order, err := CheckoutCart(tdb, &customer, &cart, CheckoutDetails{
		FirstName:  "Roger",
		LastName:   "Waters",
		Phone:      "555-0199",
		BuyingType: BuyingTypeSelf,
	})
	if err != nil {
		t.Fatalf("checking out: %v", err)
	}
	if order.Status != OrderStatusNew {
		t.Errorf("order status = %q, want %q", order.Status, OrderStatusNew)
	}
	if order.CartID != cart.ID {
		t.Errorf("order bound to cart %d, want %d", order.CartID, cart.ID)
	}
	if order.OrderDate.IsZero() {
		t.Errorf("order date was not defaulted")
	}

	// The cart is locked and a fresh one is waiting
	var locked Cart
	if err = tdb.First(&locked, cart.ID).Error; err != nil {
		t.Fatalf("reloading cart: %v", err)
	}
	if !locked.InOrder {
		t.Errorf("checked-out cart is not locked")
	}
	next, err := CartForCustomer(tdb, &customer)
	if err != nil {
		t.Fatalf("getting next cart: %v", err)
	}
	if next.ID == cart.ID {
		t.Errorf("no fresh cart was created after checkout")
	}
	if next.TotalProducts != 0 {
		t.Errorf("fresh cart is not empty")
	}

	// Checking out the same cart again must fail
	if _, err = CheckoutCart(tdb, &customer, &locked, CheckoutDetails{BuyingType: BuyingTypeSelf}); err != ErrCartLocked {
		t.Errorf("second checkout: got %v, want ErrCartLocked", err)
	}
}

func TestCheckoutDeliveryRequiresAddress(t *testing.T) {
	tdb := testDB(t)
	album := testAlbum(t, tdb, "animals", "17.50", 3)
	customer := testCustomer(t, tdb, "david")
	cart := checkoutTestCart(t, tdb, &customer, &album)

	_, err := CheckoutCart(tdb, &customer, &cart, CheckoutDetails{BuyingType: BuyingTypeDelivery})
	if err != ErrAddressRequired {
		t.Errorf("delivery without address: got %v, want ErrAddressRequired", err)
	}
	order, err := CheckoutCart(tdb, &customer, &cart, CheckoutDetails{
		BuyingType: BuyingTypeDelivery,
		Address:    "12 Abbey Road, London",
	})
	if err != nil {
		t.Fatalf("delivery checkout: %v", err)
	}
	if order.BuyingType != BuyingTypeDelivery {
		t.Errorf("buying type = %q, want delivery", order.BuyingType)
	}
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	tdb := testDB(t)
	customer := testCustomer(t, tdb, "nick")
	cart, err := CartForCustomer(tdb, &customer)
	if err != nil {
		t.Fatalf("getting cart: %v", err)
	}
	if _, err = CheckoutCart(tdb, &customer, &cart, CheckoutDetails{BuyingType: BuyingTypeSelf}); err != ErrEmptyCart {
		t.Errorf("empty checkout: got %v, want ErrEmptyCart", err)
	}
}

func TestOrderDateIsKept(t *testing.T) {
	tdb := testDB(t)
	album := testAlbum(t, tdb, "meddle", "9.99", 3)
	customer := testCustomer(t, tdb, "rick")
	cart := checkoutTestCart(t, tdb, &customer, &album)

	wanted := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	order, err := CheckoutCart(tdb, &customer, &cart, CheckoutDetails{
		BuyingType: BuyingTypeSelf,
		OrderDate:  wanted,
	})
	if err != nil {
		t.Fatalf("checking out: %v", err)
	}
	if !order.OrderDate.Equal(wanted) {
		t.Errorf("order date = %v, want %v", order.OrderDate, wanted)
	}
}

func TestOrderStatusIsMonotonic(t *testing.T) {
	tdb := testDB(t)
	album := testAlbum(t, tdb, "the-division-bell", "12.00", 3)
	customer := testCustomer(t, tdb, "syd")
	cart := checkoutTestCart(t, tdb, &customer, &album)

	order, err := CheckoutCart(tdb, &customer, &cart, CheckoutDetails{BuyingType: BuyingTypeSelf})
	if err != nil {
		t.Fatalf("checking out: %v", err)
	}

	if err = order.SetStatus(tdb, OrderStatusInProgress); err != nil {
		t.Fatalf("new -> in_progress: %v", err)
	}
	if err = order.SetStatus(tdb, OrderStatusNew); err != ErrStatusTransition {
		t.Errorf("backward move: got %v, want ErrStatusTransition", err)
	}
	if err = order.SetStatus(tdb, OrderStatusInProgress); err != ErrStatusTransition {
		t.Errorf("repeated status: got %v, want ErrStatusTransition", err)
	}
	// Skipping ahead is fine, as long as the move goes forward
	if err = order.SetStatus(tdb, OrderStatusCompleted); err != nil {
		t.Fatalf("in_progress -> completed: %v", err)
	}
	if err = order.SetStatus(tdb, "lost_in_the_mail"); err != ErrUnknownStatus {
		t.Errorf("unknown status: got %v, want ErrUnknownStatus", err)
	}

	var reloaded Order
	if err = tdb.First(&reloaded, order.ID).Error; err != nil {
		t.Fatalf("reloading order: %v", err)
	}
	if reloaded.Status != OrderStatusCompleted {
		t.Errorf("stored status = %q, want %q", reloaded.Status, OrderStatusCompleted)
	}
}
