package forms

import (
	"testing"

	"musicshop/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	tdb, err := gorm.Open(sqlite.Open(t.TempDir()+"/test.db"), &gorm.Config{})
	if err != nil {
		t.Fatalf("opening test DB: %v", err)
	}
	if err = tdb.AutoMigrate(&models.User{}, &models.Grant{}); err != nil {
		t.Fatalf("migrating test DB: %v", err)
	}
	return tdb
}

func registeredUser(t *testing.T, tdb *gorm.DB, username, email, password string) models.User {
	t.Helper()
	user, err := models.UserCreate(tdb, username, email, password)
	if err != nil {
		t.Fatalf("creating user: %v", err)
	}
	return user
}

func TestRegistrationValidation(t *testing.T) {
	tdb := testDB(t)
	registeredUser(t, tdb, "alice", "alice@example.com", "wonderland")

	valid := Registration{
		Username:        "bob",
		Email:           "bob@example.com",
		Password:        "builder",
		ConfirmPassword: "builder",
	}

	tests := []struct {
		name      string
		change    func(r *Registration)
		wantField string
	}{
		{
			name:   "valid form",
			change: func(r *Registration) {},
		},
		{
			name:      "duplicate username",
			change:    func(r *Registration) { r.Username = "alice" },
			wantField: "username",
		},
		{
			name:      "duplicate email",
			change:    func(r *Registration) { r.Email = "alice@example.com" },
			wantField: "email",
		},
		{
			name:      "net domain is disallowed",
			change:    func(r *Registration) { r.Email = "user@example.net" },
			wantField: "email",
		},
		{
			name:      "xyz domain is disallowed",
			change:    func(r *Registration) { r.Email = "user@example.xyz" },
			wantField: "email",
		},
		{
			name:      "malformed email",
			change:    func(r *Registration) { r.Email = "not-an-email" },
			wantField: "email",
		},
		{
			name:      "password mismatch",
			change:    func(r *Registration) { r.ConfirmPassword = "somethingelse" },
			wantField: FormField,
		},
		{
			name:      "missing username",
			change:    func(r *Registration) { r.Username = "" },
			wantField: "username",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := valid
			tt.change(&form)
			formErrors := form.Validate(tdb)
			if tt.name == "valid form" {
				if !formErrors.Valid() {
					t.Fatalf("valid form rejected: %v", formErrors)
				}
				return
			}
			if formErrors.Valid() {
				t.Fatalf("invalid form accepted")
			}
			if _, ok := formErrors[tt.wantField]; !ok {
				t.Errorf("expected an error on field %q, got %v", tt.wantField, formErrors)
			}
		})
	}
}

func TestRegistrationAcceptsComDomain(t *testing.T) {
	tdb := testDB(t)
	form := Registration{
		Username:        "carol",
		Email:           "user@example.com",
		Password:        "s3cret",
		ConfirmPassword: "s3cret",
	}
	if formErrors := form.Validate(tdb); !formErrors.Valid() {
		t.Errorf("com address rejected: %v", formErrors)
	}
}

func TestLoginValidation(t *testing.T) {
	tdb := testDB(t)
	registeredUser(t, tdb, "alice", "alice@example.com", "wonderland")

	// Unknown username
	form := Login{Username: "nosuchuser", Password: "whatever"}
	if _, formErrors := form.Validate(tdb); formErrors.Valid() {
		t.Errorf("unknown username accepted")
	}

	// Wrong password
	form = Login{Username: "alice", Password: "not-wonderland"}
	if _, formErrors := form.Validate(tdb); formErrors.Valid() {
		t.Errorf("wrong password accepted")
	}

	// Correct credentials
	form = Login{Username: "alice", Password: "wonderland"}
	user, formErrors := form.Validate(tdb)
	if !formErrors.Valid() {
		t.Fatalf("valid credentials rejected: %v", formErrors)
	}
	if user.Username != "alice" {
		t.Errorf("validated user = %q, want alice", user.Username)
	}
}
