package handlers

import (
	"net/http"

	"musicshop/auth"
	"musicshop/db"
	"musicshop/models"

	"github.com/gin-gonic/gin"
)

type WishlistRequest struct {
	AlbumID uint64 `form:"album_id" json:"album_id" binding:"required"`
}

type WishlistAlbumInfo struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Price string `json:"price"`
}

func wishlistCustomer(c *gin.Context) (models.Customer, bool) {
	session := auth.LoadSession(c)
	customer := session.Customer()
	if customer.ID == 0 {
		c.JSON(http.StatusUnauthorized, LoginFirstResponse)
		return customer, false
	}
	return customer, true
}

func WishlistList(c *gin.Context) {
	customer, ok := wishlistCustomer(c)
	if !ok {
		return
	}
	if err := customer.LoadWishlist(db.Instance); err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	result := []WishlistAlbumInfo{}
	for _, album := range customer.Wishlist {
		result = append(result, WishlistAlbumInfo{
			ID:    album.ID,
			Name:  album.Name,
			Slug:  album.Slug,
			Price: album.Price.StringFixed(2),
		})
	}
	c.JSON(http.StatusOK, result)
}

func WishlistAdd(c *gin.Context) {
	customer, ok := wishlistCustomer(c)
	if !ok {
		return
	}
	r := WishlistRequest{}
	if err := c.ShouldBind(&r); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	var album models.Album
	if err := db.Instance.First(&album, r.AlbumID).Error; err != nil {
		c.JSON(http.StatusNotFound, NotFoundResponse)
		return
	}
	if err := customer.AddToWishlist(db.Instance, &album); err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	c.JSON(http.StatusOK, OKResponse)
}

func WishlistRemove(c *gin.Context) {
	customer, ok := wishlistCustomer(c)
	if !ok {
		return
	}
	r := WishlistRequest{}
	if err := c.ShouldBind(&r); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	var album models.Album
	if err := db.Instance.First(&album, r.AlbumID).Error; err != nil {
		c.JSON(http.StatusNotFound, NotFoundResponse)
		return
	}
	if err := customer.RemoveFromWishlist(db.Instance, &album); err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	c.JSON(http.StatusOK, OKResponse)
}
