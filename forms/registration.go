package forms

import (
	"strings"

	"musicshop/config"
	"musicshop/models"

	"gorm.io/gorm"
)

type Registration struct {
	Username        string `form:"username"`
	Email           string `form:"email"`
	Password        string `form:"password"`
	ConfirmPassword string `form:"confirm_password"`
	FirstName       string `form:"first_name"`
	LastName        string `form:"last_name"`
	Phone           string `form:"phone"`
	Address         string `form:"address"`
}

func (f *Registration) Validate(tx *gorm.DB) Errors {
	formErrors := Errors{}
	if f.Username == "" {
		formErrors.Add("username", "This field is required")
	}
	if f.Password == "" {
		formErrors.Add("password", "This field is required")
	}
	f.validateEmail(tx, formErrors)
	f.validateUsername(tx, formErrors)
	if f.Password != f.ConfirmPassword {
		formErrors.Add(FormField, "Passwords do not match")
	}
	return formErrors
}

func (f *Registration) validateEmail(tx *gorm.DB, formErrors Errors) {
	at := strings.LastIndex(f.Email, "@")
	if at < 1 || !strings.Contains(f.Email[at:], ".") {
		formErrors.Add("email", "Enter a valid email address")
		return
	}
	parts := strings.Split(f.Email, ".")
	domain := strings.ToLower(parts[len(parts)-1])
	for _, disallowed := range config.DisallowedEmailDomains() {
		if domain == disallowed {
			formErrors.Add("email", "Registration for domain "+domain+" is not possible")
			return
		}
	}
	var count int64
	if tx.Model(&models.User{}).Where("email = ?", f.Email).Count(&count); count > 0 {
		formErrors.Add("email", "This email address is already registered")
	}
}

func (f *Registration) validateUsername(tx *gorm.DB, formErrors Errors) {
	if f.Username == "" {
		return
	}
	var count int64
	if tx.Model(&models.User{}).Where("username = ?", f.Username).Count(&count); count > 0 {
		formErrors.Add("username", "The username "+f.Username+" is already taken")
	}
}
