package models

import (
	"musicshop/utils"

	"gorm.io/gorm"
)

// User is the login account. Shop-related profile data lives in Customer.
type User struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	UpdatedAt int64
	Username  string  `gorm:"type:varchar(100);index:uniq_username,unique"`
	Email     string  `gorm:"type:varchar(150);index:uniq_email,unique"`
	FirstName string  `gorm:"type:varchar(100)"`
	LastName  string  `gorm:"type:varchar(100)"`
	Password  string  `gorm:"type:varchar(128)"`
	PassSalt  string  `gorm:"type:varchar(200)"`
	Grants    []Grant `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

const saltSize = 60

func UserCreate(tx *gorm.DB, username, email, plainTextPassword string) (u User, err error) {
	u.Username = username
	u.Email = email
	u.SetPassword(plainTextPassword)
	return u, tx.Create(&u).Error
}

func (u *User) SetPassword(plainTextPassword string) {
	u.PassSalt = utils.RandSalt(saltSize)
	u.Password = utils.Sha512String(plainTextPassword + u.PassSalt)
}

func (u *User) CheckPassword(plainTextPassword string) bool {
	return u.Password == utils.Sha512String(plainTextPassword+u.PassSalt)
}

// UserByUsername returns gorm.ErrRecordNotFound when no such account exists
func UserByUsername(tx *gorm.DB, username string) (u User, err error) {
	err = tx.Preload("Grants").First(&u, "username = ?", username).Error
	return
}

func (u *User) HasPermission(required Permission) bool {
	for _, grant := range u.Grants {
		if grant.Permission == required {
			return true
		}
	}
	return false
}

func (u *User) HasPermissions(required []Permission) bool {
	for _, permission := range required {
		if !u.HasPermission(permission) {
			return false
		}
	}
	return true
}
