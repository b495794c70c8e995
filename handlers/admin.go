package handlers

import (
	"net/http"
	"time"

	"musicshop/db"
	"musicshop/models"
	"musicshop/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// Thin CRUD layer over the catalog entities, available to users holding
// the admin permission.

type GenreSaveRequest struct {
	ID   uint64 `form:"id" json:"id"`
	Name string `form:"name" json:"name" binding:"required"`
	Slug string `form:"slug" json:"slug"`
}

type MediaTypeSaveRequest struct {
	ID   uint64 `form:"id" json:"id"`
	Name string `form:"name" json:"name" binding:"required"`
}

type MemberSaveRequest struct {
	ID   uint64 `form:"id" json:"id"`
	Name string `form:"name" json:"name" binding:"required"`
	Slug string `form:"slug" json:"slug"`
}

type ArtistSaveRequest struct {
	ID        uint64   `form:"id" json:"id"`
	Name      string   `form:"name" json:"name" binding:"required"`
	GenreID   uint64   `form:"genre_id" json:"genre_id" binding:"required"`
	MemberIDs []uint64 `form:"member_ids" json:"member_ids"`
	Slug      string   `form:"slug" json:"slug"`
}

type AlbumSaveRequest struct {
	ID             uint64 `form:"id" json:"id"`
	ArtistID       uint64 `form:"artist_id" json:"artist_id" binding:"required"`
	Name           string `form:"name" json:"name" binding:"required"`
	Description    string `form:"description" json:"description"`
	MediaTypeID    uint64 `form:"media_type_id" json:"media_type_id" binding:"required"`
	SongsList      string `form:"songs_list" json:"songs_list"`
	ReleaseDate    string `form:"release_date" json:"release_date"` // 2006-01-02
	Price          string `form:"price" json:"price" binding:"required"`
	Stock          uint   `form:"stock" json:"stock"`
	OfferOfTheWeek bool   `form:"offer_of_the_week" json:"offer_of_the_week"`
	Slug           string `form:"slug" json:"slug"`
}

type DeleteRequest struct {
	ID uint64 `form:"id" json:"id" binding:"required"`
}

func saveEntity(c *gin.Context, entity interface{}) bool {
	if err := db.Instance.Save(entity).Error; err != nil {
		c.JSON(http.StatusInternalServerError, Response{err.Error()})
		return false
	}
	return true
}

func deleteEntity(c *gin.Context, entity interface{}) {
	r := DeleteRequest{}
	if err := c.ShouldBind(&r); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	result := db.Instance.Delete(entity, r.ID)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, NotFoundResponse)
		return
	}
	c.JSON(http.StatusOK, OKResponse)
}

func GenreSave(c *gin.Context, user *models.User) {
	r := GenreSaveRequest{}
	if err := c.ShouldBind(&r); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	if r.Slug == "" {
		r.Slug = utils.Slugify(r.Name)
	}
	genre := models.Genre{ID: r.ID, Name: r.Name, Slug: r.Slug}
	if saveEntity(c, &genre) {
		c.JSON(http.StatusOK, genre)
	}
}

func GenreDelete(c *gin.Context, user *models.User) {
	deleteEntity(c, &models.Genre{})
}

func MediaTypeSave(c *gin.Context, user *models.User) {
	r := MediaTypeSaveRequest{}
	if err := c.ShouldBind(&r); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	mediaType := models.MediaType{ID: r.ID, Name: r.Name}
	if saveEntity(c, &mediaType) {
		c.JSON(http.StatusOK, mediaType)
	}
}

func MediaTypeDelete(c *gin.Context, user *models.User) {
	deleteEntity(c, &models.MediaType{})
}

func MemberSave(c *gin.Context, user *models.User) {
	r := MemberSaveRequest{}
	if err := c.ShouldBind(&r); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	if r.Slug == "" {
		r.Slug = utils.Slugify(r.Name)
	}
	member := models.Member{ID: r.ID, Name: r.Name, Slug: r.Slug}
	if r.ID != 0 {
		// Keep the stored image path on updates
		var existing models.Member
		if db.Instance.First(&existing, r.ID).Error == nil {
			member.Image = existing.Image
		}
	}
	if saveEntity(c, &member) {
		c.JSON(http.StatusOK, member)
	}
}

func MemberDelete(c *gin.Context, user *models.User) {
	deleteEntity(c, &models.Member{})
}

func ArtistSave(c *gin.Context, user *models.User) {
	r := ArtistSaveRequest{}
	if err := c.ShouldBind(&r); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	if r.Slug == "" {
		r.Slug = utils.Slugify(r.Name)
	}
	artist := models.Artist{ID: r.ID, Name: r.Name, GenreID: r.GenreID, Slug: r.Slug}
	if r.ID != 0 {
		var existing models.Artist
		if db.Instance.First(&existing, r.ID).Error == nil {
			artist.Image = existing.Image
		}
	}
	if !saveEntity(c, &artist) {
		return
	}
	if r.MemberIDs != nil {
		var members []models.Member
		if err := db.Instance.Find(&members, r.MemberIDs).Error; err != nil {
			c.JSON(http.StatusInternalServerError, DBError1Response)
			return
		}
		if err := db.Instance.Model(&artist).Association("Members").Replace(members); err != nil {
			c.JSON(http.StatusInternalServerError, DBError2Response)
			return
		}
	}
	c.JSON(http.StatusOK, artist)
}

func ArtistDelete(c *gin.Context, user *models.User) {
	deleteEntity(c, &models.Artist{})
}

func AlbumSave(c *gin.Context, user *models.User) {
	r := AlbumSaveRequest{}
	if err := c.ShouldBind(&r); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	price, err := decimal.NewFromString(r.Price)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{"price must be a decimal number"})
		return
	}
	if price.IsNegative() {
		c.JSON(http.StatusBadRequest, Response{models.ErrNegativePrice.Error()})
		return
	}
	if r.Slug == "" {
		r.Slug = utils.Slugify(r.Name)
	}
	album := models.Album{
		ID:             r.ID,
		ArtistID:       r.ArtistID,
		Name:           r.Name,
		Description:    r.Description,
		MediaTypeID:    r.MediaTypeID,
		SongsList:      r.SongsList,
		Price:          price,
		Stock:          r.Stock,
		OfferOfTheWeek: r.OfferOfTheWeek,
		Slug:           r.Slug,
	}
	if r.ReleaseDate != "" {
		releaseDate, err := time.Parse("2006-01-02", r.ReleaseDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, Response{"release_date must look like 2006-01-02"})
			return
		}
		album.ReleaseDate = releaseDate
	}
	if r.ID != 0 {
		var existing models.Album
		if db.Instance.First(&existing, r.ID).Error == nil {
			album.Image = existing.Image
			if album.ReleaseDate.IsZero() {
				album.ReleaseDate = existing.ReleaseDate
			}
		}
	}
	if saveEntity(c, &album) {
		c.JSON(http.StatusOK, album)
	}
}

func AlbumDelete(c *gin.Context, user *models.User) {
	deleteEntity(c, &models.Album{})
}
