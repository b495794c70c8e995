package models

import "gorm.io/gorm"

type Notification struct {
	ID          uint64 `gorm:"primaryKey"`
	CreatedAt   int64
	RecipientID uint64   `gorm:"not null;index"`
	Recipient   Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Text        string   `gorm:"type:text"`
	Read        bool     `gorm:"not null;default:false"`
}

func NotifyCustomer(tx *gorm.DB, customerID uint64, text string) (n Notification, err error) {
	n.RecipientID = customerID
	n.Text = text
	return n, tx.Create(&n).Error
}

func (n *Notification) MarkRead(tx *gorm.DB) error {
	n.Read = true
	return tx.Model(n).Update("read", true).Error
}

func NotificationsForCustomer(tx *gorm.DB, customerID uint64, unreadOnly bool) (result []Notification, err error) {
	query := tx.Where("recipient_id = ?", customerID)
	if unreadOnly {
		query = query.Where("read = ?", false)
	}
	err = query.Order("created_at desc").Find(&result).Error
	return
}
