package models

import "gorm.io/gorm"

// Customer is the shop profile attached 1:1 to a login account
type Customer struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	UpdatedAt int64
	UserID    uint64 `gorm:"index:uniq_customer_user,unique;not null"`
	User      User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	IsActive  bool   `gorm:"not null;default:true"`
	Phone     string `gorm:"type:varchar(20)"`
	Address   string `gorm:"type:varchar(255)"`
	Wishlist  []Album `gorm:"many2many:customer_wishlist;"`
	Orders    []Order `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func CustomerCreate(tx *gorm.DB, user *User, phone, address string) (c Customer, err error) {
	c.UserID = user.ID
	c.IsActive = true
	c.Phone = phone
	c.Address = address
	return c, tx.Create(&c).Error
}

func CustomerByUserID(tx *gorm.DB, userID uint64) (c Customer, err error) {
	err = tx.Preload("User").First(&c, "user_id = ?", userID).Error
	return
}

func (c *Customer) AddToWishlist(tx *gorm.DB, album *Album) error {
	return tx.Model(c).Association("Wishlist").Append(album)
}

func (c *Customer) RemoveFromWishlist(tx *gorm.DB, album *Album) error {
	return tx.Model(c).Association("Wishlist").Delete(album)
}

func (c *Customer) LoadWishlist(tx *gorm.DB) error {
	return tx.Model(c).Association("Wishlist").Find(&c.Wishlist)
}
