package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"strings"

	"musicshop/db"
	"musicshop/media"
	"musicshop/models"
	"musicshop/storage"
	"musicshop/utils"

	"github.com/gin-gonic/gin"
)

const thumbSize = 400

type ImageUploadRequest struct {
	Kind        string `form:"kind" binding:"required"` // member, artist, album or gallery
	ID          uint64 `form:"id"`
	ContentType string `form:"content_type"` // gallery only: owning entity kind
	ObjectID    uint64 `form:"object_id"`    // gallery only: owning entity id
	UseInSlider bool   `form:"use_in_slider"`
}

// ImageUpload stores an uploaded image under the deterministic path derived
// from the owning entity, generates a thumbnail next to it and records the
// path on the entity (or as a new gallery row).
func ImageUpload(c *gin.Context, user *models.User) {
	r := ImageUploadRequest{}
	if err := c.ShouldBind(&r); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{"an image file is required"})
		return
	}

	var target interface{}
	var saveImagePath func(path string) error
	switch r.Kind {
	case "member":
		var member models.Member
		if err = db.Instance.First(&member, r.ID).Error; err != nil {
			c.JSON(http.StatusNotFound, NotFoundResponse)
			return
		}
		target = &member
		saveImagePath = func(path string) error {
			return db.Instance.Model(&member).Update("image", path).Error
		}
	case "artist":
		var artist models.Artist
		if err = db.Instance.First(&artist, r.ID).Error; err != nil {
			c.JSON(http.StatusNotFound, NotFoundResponse)
			return
		}
		target = &artist
		saveImagePath = func(path string) error {
			return db.Instance.Model(&artist).Update("image", path).Error
		}
	case "album":
		var album models.Album
		if err = db.Instance.First(&album, r.ID).Error; err != nil {
			c.JSON(http.StatusNotFound, NotFoundResponse)
			return
		}
		target = &album
		saveImagePath = func(path string) error {
			return db.Instance.Model(&album).Update("image", path).Error
		}
	case "gallery":
		gallery := models.ImageGallery{
			ContentType: r.ContentType,
			ObjectID:    r.ObjectID,
			UseInSlider: r.UseInSlider,
		}
		target = gallery.UploadTarget(db.Instance)
		saveImagePath = func(path string) error {
			gallery.Image = path
			return db.Instance.Create(&gallery).Error
		}
	default:
		c.JSON(http.StatusBadRequest, Response{"unknown upload kind"})
		return
	}

	path, err := media.Path(target, file.Filename)
	if err != nil {
		uploadError(c, err)
		return
	}
	reader, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, Response{err.Error()})
		return
	}
	defer reader.Close()

	// Buffer the upload so the thumbnail can be made from the same bytes
	var buf bytes.Buffer
	if _, err = buf.ReadFrom(reader); err != nil {
		c.JSON(http.StatusInternalServerError, Response{err.Error()})
		return
	}
	store := storage.GetDefaultStorage()
	if _, err = store.Save(path, bytes.NewReader(buf.Bytes())); err != nil {
		c.JSON(http.StatusInternalServerError, Response{err.Error()})
		return
	}
	var thumb bytes.Buffer
	if _, err = utils.CreateThumb(thumbSize, bytes.NewReader(buf.Bytes()), &thumb); err == nil {
		_, _ = store.Save(thumbPath(path), &thumb)
	}
	if err = saveImagePath(path); err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	c.JSON(http.StatusOK, gin.H{"error": "", "path": path, "url": store.FileURL(path)})
}

// thumbPath swaps the extension for _thumb.jpg - thumbs are always JPEG
func thumbPath(path string) string {
	if dot := strings.LastIndex(path, "."); dot > 0 {
		path = path[:dot]
	}
	return path + "_thumb.jpg"
}

func uploadError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, media.ErrNoPathField), errors.Is(err, media.ErrNotPathable),
		errors.Is(err, models.ErrUnknownContentType):
		// Configuration problem - the entity kind is not registered for uploads
		c.JSON(http.StatusBadRequest, Response{err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, Response{err.Error()})
	}
}
