package models

import "musicshop/db"

func Init() {
	db.Instance.AutoMigrate(&User{})
	db.Instance.AutoMigrate(&Grant{})
	db.Instance.AutoMigrate(&MediaType{})
	db.Instance.AutoMigrate(&Genre{})
	db.Instance.AutoMigrate(&Member{})
	db.Instance.AutoMigrate(&Artist{})
	db.Instance.AutoMigrate(&Album{})
	db.Instance.AutoMigrate(&Customer{})
	db.Instance.AutoMigrate(&Cart{})
	db.Instance.AutoMigrate(&CartProduct{})
	db.Instance.AutoMigrate(&Order{})
	db.Instance.AutoMigrate(&Notification{})
	db.Instance.AutoMigrate(&ImageGallery{})
}
