package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrNegativePrice = errors.New("album price must not be negative")

type Album struct {
	ID             uint64 `gorm:"primaryKey"`
	ArtistID       uint64 `gorm:"not null"`
	Artist         Artist `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Name           string `gorm:"type:varchar(255);not null"`
	Description    string `gorm:"type:text"`
	Image          string `gorm:"type:varchar(500)"`
	MediaTypeID    uint64 `gorm:"not null"`
	MediaType      MediaType `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	SongsList      string    `gorm:"type:text"`
	ReleaseDate    time.Time
	Price          decimal.Decimal `gorm:"type:decimal(9,2)"`
	Stock          uint            `gorm:"not null;default:0"`
	OfferOfTheWeek bool            `gorm:"not null;default:false"`
	Slug           string          `gorm:"type:varchar(100);index:uniq_album_slug,unique;not null"`
}

func (a *Album) BeforeSave(tx *gorm.DB) error {
	if a.Price.IsNegative() {
		return ErrNegativePrice
	}
	return nil
}

func AlbumBySlug(tx *gorm.DB, artistSlug, albumSlug string) (a Album, err error) {
	err = tx.Preload("Artist").Preload("Artist.Genre").Preload("MediaType").
		Joins("join artists on artists.id = albums.artist_id").
		Where("albums.slug = ? and artists.slug = ?", albumSlug, artistSlug).
		First(&a).Error
	return
}

func (a *Album) AbsoluteURL() string {
	return "/" + a.Artist.Slug + "/" + a.Slug + "/"
}

// Product interface - albums are sellable
func (a *Album) ProductID() uint64 {
	return a.ID
}

func (a *Album) ProductName() string {
	return a.Name
}

func (a *Album) ProductPrice() decimal.Decimal {
	return a.Price
}

// Media path interface
func (a *Album) MediaKind() string {
	return "album"
}

func (a *Album) MediaValue(field string) (string, bool) {
	if field == "slug" {
		return a.Slug, true
	}
	return "", false
}
