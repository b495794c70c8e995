package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCartProductPriceDerivation(t *testing.T) {
	tdb := testDB(t)
	album := testAlbum(t, tdb, "the-wall", "25.00", 10)
	customer := testCustomer(t, tdb, "roger")

	cart, err := CartForCustomer(tdb, &customer)
	if err != nil {
		t.Fatalf("getting cart: %v", err)
	}
	cp, err := cart.AddProduct(tdb, ContentTypeAlbum, album.ID, 3)
	if err != nil {
		t.Fatalf("adding product: %v", err)
	}
	want := decimal.RequireFromString("75.00")
	if !cp.FinalPrice.Equal(want) {
		t.Errorf("line price = %s, want %s", cp.FinalPrice, want)
	}

	// The derived price follows every quantity change
	if err = cart.SetQty(tdb, cp.ID, 5); err != nil {
		t.Fatalf("changing qty: %v", err)
	}
	if err = tdb.First(&cp, cp.ID).Error; err != nil {
		t.Fatalf("reloading line: %v", err)
	}
	want = decimal.RequireFromString("125.00")
	if !cp.FinalPrice.Equal(want) {
		t.Errorf("line price after qty change = %s, want %s", cp.FinalPrice, want)
	}

	// A stale FinalPrice on the struct is ignored on save
	cp.FinalPrice = decimal.RequireFromString("1.00")
	if err = tdb.Save(&cp).Error; err != nil {
		t.Fatalf("saving line: %v", err)
	}
	if !cp.FinalPrice.Equal(want) {
		t.Errorf("line price after save = %s, want %s", cp.FinalPrice, want)
	}
}

func TestCartProductRejectsZeroQty(t *testing.T) {
	tdb := testDB(t)
	album := testAlbum(t, tdb, "wish-you-were-here", "19.99", 4)
	customer := testCustomer(t, tdb, "david")

	cart, err := CartForCustomer(tdb, &customer)
	if err != nil {
		t.Fatalf("getting cart: %v", err)
	}
	if _, err = cart.AddProduct(tdb, ContentTypeAlbum, album.ID, 0); err != ErrInvalidQty {
		t.Errorf("expected ErrInvalidQty, got %v", err)
	}
}

func TestCartAggregates(t *testing.T) {
	tdb := testDB(t)
	first := testAlbum(t, tdb, "meddle", "9.99", 10)
	second := testAlbum(t, tdb, "animals", "14.50", 10)
	customer := testCustomer(t, tdb, "nick")

	cart, err := CartForCustomer(tdb, &customer)
	if err != nil {
		t.Fatalf("getting cart: %v", err)
	}
	if _, err = cart.AddProduct(tdb, ContentTypeAlbum, first.ID, 2); err != nil {
		t.Fatalf("adding first album: %v", err)
	}
	if _, err = cart.AddProduct(tdb, ContentTypeAlbum, second.ID, 1); err != nil {
		t.Fatalf("adding second album: %v", err)
	}

	if cart.TotalProducts != 3 {
		t.Errorf("total products = %d, want 3", cart.TotalProducts)
	}
	want := decimal.RequireFromString("34.48") // 2*9.99 + 14.50
	if !cart.FinalPrice.Equal(want) {
		t.Errorf("cart price = %s, want %s", cart.FinalPrice, want)
	}

	// Adding the same album again bumps the existing line
	if _, err = cart.AddProduct(tdb, ContentTypeAlbum, first.ID, 1); err != nil {
		t.Fatalf("re-adding first album: %v", err)
	}
	var lines []CartProduct
	if err = tdb.Where("cart_id = ?", cart.ID).Find(&lines).Error; err != nil {
		t.Fatalf("loading lines: %v", err)
	}
	if len(lines) != 2 {
		t.Errorf("expected 2 cart lines, got %d", len(lines))
	}
	if cart.TotalProducts != 4 {
		t.Errorf("total products = %d, want 4", cart.TotalProducts)
	}

	if err = cart.RemoveProduct(tdb, lines[1].ID); err != nil {
		t.Fatalf("removing line: %v", err)
	}
	sum := decimal.Zero
	count := uint(0)
	if err = tdb.Where("cart_id = ?", cart.ID).Find(&lines).Error; err != nil {
		t.Fatalf("reloading lines: %v", err)
	}
	for _, line := range lines {
		sum = sum.Add(line.FinalPrice)
		count += line.Qty
	}
	if !cart.FinalPrice.Equal(sum) {
		t.Errorf("cart price %s does not match line sum %s", cart.FinalPrice, sum)
	}
	if cart.TotalProducts != count {
		t.Errorf("total products %d does not match line sum %d", cart.TotalProducts, count)
	}
}

func TestLockedCartRejectsMutation(t *testing.T) {
	tdb := testDB(t)
	album := testAlbum(t, tdb, "the-division-bell", "12.00", 2)
	customer := testCustomer(t, tdb, "rick")

	cart, err := CartForCustomer(tdb, &customer)
	if err != nil {
		t.Fatalf("getting cart: %v", err)
	}
	cp, err := cart.AddProduct(tdb, ContentTypeAlbum, album.ID, 1)
	if err != nil {
		t.Fatalf("adding product: %v", err)
	}
	cart.InOrder = true

	if _, err = cart.AddProduct(tdb, ContentTypeAlbum, album.ID, 1); err != ErrCartLocked {
		t.Errorf("AddProduct on locked cart: got %v, want ErrCartLocked", err)
	}
	if err = cart.SetQty(tdb, cp.ID, 2); err != ErrCartLocked {
		t.Errorf("SetQty on locked cart: got %v, want ErrCartLocked", err)
	}
	if err = cart.RemoveProduct(tdb, cp.ID); err != ErrCartLocked {
		t.Errorf("RemoveProduct on locked cart: got %v, want ErrCartLocked", err)
	}
}

func TestReassignAnonymousCart(t *testing.T) {
	tdb := testDB(t)
	album := testAlbum(t, tdb, "atom-heart-mother", "11.00", 5)

	anon, err := CartForToken(tdb, "session-token-1")
	if err != nil {
		t.Fatalf("getting anonymous cart: %v", err)
	}
	if !anon.ForAnonymousUser {
		t.Fatalf("cart is not marked anonymous")
	}
	if _, err = anon.AddProduct(tdb, ContentTypeAlbum, album.ID, 2); err != nil {
		t.Fatalf("adding product: %v", err)
	}

	customer := testCustomer(t, tdb, "syd")
	if err = ReassignAnonymousCart(tdb, "session-token-1", &customer); err != nil {
		t.Fatalf("reassigning cart: %v", err)
	}

	// Ownership moved, nothing was copied: same cart row, new owner
	owned, err := CartForCustomer(tdb, &customer)
	if err != nil {
		t.Fatalf("getting customer cart: %v", err)
	}
	if owned.ID != anon.ID {
		t.Errorf("customer cart ID = %d, want reassigned cart %d", owned.ID, anon.ID)
	}
	if owned.ForAnonymousUser {
		t.Errorf("reassigned cart still marked anonymous")
	}
	if owned.TotalProducts != 2 {
		t.Errorf("total products = %d, want 2", owned.TotalProducts)
	}
	var lines []CartProduct
	if err = tdb.Where("cart_id = ?", owned.ID).Find(&lines).Error; err != nil {
		t.Fatalf("loading lines: %v", err)
	}
	for _, line := range lines {
		if line.CustomerID == nil || *line.CustomerID != customer.ID {
			t.Errorf("cart line %d not reassigned to customer", line.ID)
		}
	}

	// A later session with the same token gets a fresh cart
	fresh, err := CartForToken(tdb, "session-token-1")
	if err != nil {
		t.Fatalf("getting fresh cart: %v", err)
	}
	if fresh.ID == anon.ID {
		t.Errorf("token still resolves to the reassigned cart")
	}
}

func TestReassignMergesIntoExistingCart(t *testing.T) {
	tdb := testDB(t)
	first := testAlbum(t, tdb, "meddle", "9.99", 10)
	second := testAlbum(t, tdb, "animals", "14.50", 10)
	customer := testCustomer(t, tdb, "roger")

	owned, err := CartForCustomer(tdb, &customer)
	if err != nil {
		t.Fatalf("getting customer cart: %v", err)
	}
	if _, err = owned.AddProduct(tdb, ContentTypeAlbum, first.ID, 1); err != nil {
		t.Fatalf("adding to customer cart: %v", err)
	}

	anon, err := CartForToken(tdb, "session-token-2")
	if err != nil {
		t.Fatalf("getting anonymous cart: %v", err)
	}
	if _, err = anon.AddProduct(tdb, ContentTypeAlbum, second.ID, 1); err != nil {
		t.Fatalf("adding to anonymous cart: %v", err)
	}

	if err = ReassignAnonymousCart(tdb, "session-token-2", &customer); err != nil {
		t.Fatalf("reassigning cart: %v", err)
	}
	merged, err := CartForCustomer(tdb, &customer)
	if err != nil {
		t.Fatalf("getting merged cart: %v", err)
	}
	if merged.ID != owned.ID {
		t.Errorf("merged cart ID = %d, want existing cart %d", merged.ID, owned.ID)
	}
	if merged.TotalProducts != 2 {
		t.Errorf("total products = %d, want 2", merged.TotalProducts)
	}
	want := decimal.RequireFromString("24.49")
	if !merged.FinalPrice.Equal(want) {
		t.Errorf("merged price = %s, want %s", merged.FinalPrice, want)
	}
}
