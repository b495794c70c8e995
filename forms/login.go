package forms

import (
	"errors"

	"musicshop/models"

	"gorm.io/gorm"
)

type Login struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// Validate checks the credentials against the accounts table. On success
// the matched user is returned; otherwise the errors say what went wrong.
func (f *Login) Validate(tx *gorm.DB) (models.User, Errors) {
	formErrors := Errors{}
	if f.Username == "" {
		formErrors.Add("username", "This field is required")
	}
	if f.Password == "" {
		formErrors.Add("password", "This field is required")
	}
	if !formErrors.Valid() {
		return models.User{}, formErrors
	}
	user, err := models.UserByUsername(tx, f.Username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		formErrors.Add(FormField, "User "+f.Username+" was not found")
		return models.User{}, formErrors
	}
	if err != nil {
		formErrors.Add(FormField, "Something went wrong, please try again")
		return models.User{}, formErrors
	}
	if !user.CheckPassword(f.Password) {
		formErrors.Add(FormField, "Wrong password")
		return models.User{}, formErrors
	}
	return user, formErrors
}
