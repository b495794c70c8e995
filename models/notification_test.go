package models

import "testing"

func TestNotifications(t *testing.T) {
	tdb := testDB(t)
	customer := testCustomer(t, tdb, "roger")

	first, err := NotifyCustomer(tdb, customer.ID, "Your order is registered")
	if err != nil {
		t.Fatalf("creating notification: %v", err)
	}
	if _, err = NotifyCustomer(tdb, customer.ID, "Your order is ready"); err != nil {
		t.Fatalf("creating notification: %v", err)
	}

	unread, err := NotificationsForCustomer(tdb, customer.ID, true)
	if err != nil {
		t.Fatalf("listing notifications: %v", err)
	}
	if len(unread) != 2 {
		t.Fatalf("unread count = %d, want 2", len(unread))
	}

	if err = first.MarkRead(tdb); err != nil {
		t.Fatalf("marking read: %v", err)
	}
	unread, err = NotificationsForCustomer(tdb, customer.ID, true)
	if err != nil {
		t.Fatalf("listing notifications: %v", err)
	}
	if len(unread) != 1 {
		t.Errorf("unread count after read = %d, want 1", len(unread))
	}
	all, err := NotificationsForCustomer(tdb, customer.ID, false)
	if err != nil {
		t.Fatalf("listing notifications: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("total count = %d, want 2", len(all))
	}
}
