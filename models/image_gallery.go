package models

import (
	"musicshop/media"

	"gorm.io/gorm"
)

// ImageGallery is an extra image attached to any catalog entity. Its file
// lives under the owning entity's upload directory, so path resolution
// goes through the content object.
type ImageGallery struct {
	ID          uint64 `gorm:"primaryKey"`
	CreatedAt   int64
	Image       string `gorm:"type:varchar(500)"`
	UseInSlider bool   `gorm:"not null;default:false"`
	ContentType string `gorm:"type:varchar(50);not null"`
	ObjectID    uint64 `gorm:"not null"`
}

// galleryOwners maps content types to loaders for the owning entity
var galleryOwners = map[string]func(tx *gorm.DB, id uint64) (media.Object, error){
	"member": func(tx *gorm.DB, id uint64) (media.Object, error) {
		var m Member
		return &m, tx.First(&m, id).Error
	},
	"artist": func(tx *gorm.DB, id uint64) (media.Object, error) {
		var a Artist
		return &a, tx.First(&a, id).Error
	},
	ContentTypeAlbum: func(tx *gorm.DB, id uint64) (media.Object, error) {
		var a Album
		return &a, tx.First(&a, id).Error
	},
}

func (ig *ImageGallery) ContentObject(tx *gorm.DB) (media.Object, error) {
	resolve, ok := galleryOwners[ig.ContentType]
	if !ok {
		return nil, ErrUnknownContentType
	}
	return resolve(tx, ig.ObjectID)
}

// attachedGallery adapts an ImageGallery plus a DB handle to media.Attached
type attachedGallery struct {
	gallery *ImageGallery
	tx      *gorm.DB
}

func (ag attachedGallery) MediaObject() (media.Object, error) {
	return ag.gallery.ContentObject(ag.tx)
}

// UploadTarget returns the value to hand to media.Path for this gallery entry
func (ig *ImageGallery) UploadTarget(tx *gorm.DB) media.Attached {
	return attachedGallery{gallery: ig, tx: tx}
}

func GalleryFor(tx *gorm.DB, contentType string, objectID uint64) (result []ImageGallery, err error) {
	err = tx.Where("content_type = ? and object_id = ?", contentType, objectID).
		Find(&result).Error
	return
}

func SliderImages(tx *gorm.DB) (result []ImageGallery, err error) {
	err = tx.Where("use_in_slider = ?", true).Find(&result).Error
	return
}
