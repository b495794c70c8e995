package web

import (
	"net/http"

	"musicshop/auth"
	"musicshop/db"
	"musicshop/models"
	"musicshop/storage"

	"github.com/gin-gonic/gin"
)

type albumView struct {
	ID          uint64
	Name        string
	Slug        string
	URL         string
	Price       string
	Stock       uint
	ImageURL    string
	ArtistName  string
	MediaType   string
	ReleaseDate string
}

type sliderView struct {
	ImageURL string
}

func imageURL(path string) string {
	if path == "" {
		return ""
	}
	return storage.GetDefaultStorage().FileURL(path)
}

func albumViewFrom(album *models.Album) albumView {
	view := albumView{
		ID:         album.ID,
		Name:       album.Name,
		Slug:       album.Slug,
		Price:      album.Price.StringFixed(2),
		Stock:      album.Stock,
		ImageURL:   imageURL(album.Image),
		ArtistName: album.Artist.Name,
		MediaType:  album.MediaType.Name,
	}
	if album.Artist.Slug != "" {
		view.URL = album.AbsoluteURL()
	}
	if !album.ReleaseDate.IsZero() {
		view.ReleaseDate = album.ReleaseDate.Format("2 Jan 2006")
	}
	return view
}

func sessionUsername(c *gin.Context) string {
	user := auth.LoadSession(c).User()
	return user.Username
}

// Home renders the storefront root: the latest albums, the offer of the
// week and the gallery slider
func Home(c *gin.Context) {
	var albums []models.Album
	err := db.Instance.Preload("Artist").Preload("MediaType").
		Order("release_date desc").Limit(24).Find(&albums).Error
	if err != nil {
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}
	albumViews := []albumView{}
	var offer *albumView
	for i := range albums {
		view := albumViewFrom(&albums[i])
		albumViews = append(albumViews, view)
		if albums[i].OfferOfTheWeek && offer == nil {
			offerCopy := view
			offer = &offerCopy
		}
	}
	slider := []sliderView{}
	if images, err := models.SliderImages(db.Instance); err == nil {
		for _, image := range images {
			slider = append(slider, sliderView{ImageURL: imageURL(image.Image)})
		}
	}
	c.HTML(http.StatusOK, "base.tmpl", gin.H{
		"albums":   albumViews,
		"offer":    offer,
		"slider":   slider,
		"username": sessionUsername(c),
	})
}

func ArtistDetail(c *gin.Context) {
	artist, err := models.ArtistBySlug(db.Instance, c.Param("artist_slug"))
	if err != nil {
		c.HTML(http.StatusNotFound, "not_found.tmpl", gin.H{})
		return
	}
	var albums []models.Album
	err = db.Instance.Preload("MediaType").
		Where("artist_id = ?", artist.ID).
		Order("release_date desc").Find(&albums).Error
	if err != nil {
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}
	albumViews := []albumView{}
	for i := range albums {
		albums[i].Artist = artist
		albumViews = append(albumViews, albumViewFrom(&albums[i]))
	}
	gallery := []sliderView{}
	if images, err := models.GalleryFor(db.Instance, "artist", artist.ID); err == nil {
		for _, image := range images {
			gallery = append(gallery, sliderView{ImageURL: imageURL(image.Image)})
		}
	}
	c.HTML(http.StatusOK, "artist_detail.tmpl", gin.H{
		"artist":   artist,
		"imageURL": imageURL(artist.Image),
		"albums":   albumViews,
		"gallery":  gallery,
		"username": sessionUsername(c),
	})
}

func AlbumDetail(c *gin.Context) {
	album, err := models.AlbumBySlug(db.Instance, c.Param("artist_slug"), c.Param("album_slug"))
	if err != nil {
		c.HTML(http.StatusNotFound, "not_found.tmpl", gin.H{})
		return
	}
	c.HTML(http.StatusOK, "album_detail.tmpl", gin.H{
		"album":    album,
		"view":     albumViewFrom(&album),
		"username": sessionUsername(c),
	})
}
