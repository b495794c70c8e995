package models

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product is anything that can be put in a cart. Records referencing a
// product store a (content type, object id) pair which is resolved through
// the registry below - adding a new sellable type means registering it here.
type Product interface {
	ProductID() uint64
	ProductName() string
	ProductPrice() decimal.Decimal
}

const ContentTypeAlbum = "album"

var (
	ErrUnknownContentType = errors.New("content type is not registered")

	productTypes = map[string]func(tx *gorm.DB, id uint64) (Product, error){
		ContentTypeAlbum: func(tx *gorm.DB, id uint64) (Product, error) {
			var album Album
			if err := tx.First(&album, id).Error; err != nil {
				return nil, err
			}
			return &album, nil
		},
	}
)

// RegisterProductType makes a new content type resolvable by ResolveProduct
func RegisterProductType(contentType string, resolve func(tx *gorm.DB, id uint64) (Product, error)) {
	productTypes[contentType] = resolve
}

func ResolveProduct(tx *gorm.DB, contentType string, objectID uint64) (Product, error) {
	resolve, ok := productTypes[contentType]
	if !ok {
		return nil, ErrUnknownContentType
	}
	return resolve(tx, objectID)
}
