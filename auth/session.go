package auth

import (
	"musicshop/db"
	"musicshop/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	userIdKey    = "id"
	cartTokenKey = "cart_token"
)

type Session struct {
	sessions.Session
}

func LoadSession(c *gin.Context) *Session {
	return &Session{
		Session: sessions.Default(c),
	}
}

func (s *Session) LoginUser(user *models.User) {
	s.Set(userIdKey, user.ID)
	s.Save()
}

func (s *Session) LogoutUser() {
	s.Delete(userIdKey)
	s.Clear()
	s.Options(sessions.Options{Path: "/", MaxAge: -1})
	s.Save()
}

func (s *Session) User() (user models.User) {
	id := s.Get(userIdKey)
	if id == nil {
		return
	}
	user.ID = id.(uint64)
	if db.Instance.Preload("Grants").First(&user).Error != nil {
		user.ID = 0
	}
	return
}

// Customer returns the shop profile of the logged-in user, zero when the
// visitor is anonymous
func (s *Session) Customer() (customer models.Customer) {
	user := s.User()
	if user.ID == 0 {
		return
	}
	customer, err := models.CustomerByUserID(db.Instance, user.ID)
	if err != nil {
		return models.Customer{}
	}
	return customer
}

// CartToken returns the anonymous cart token for this session, minting one
// on first use
func (s *Session) CartToken() string {
	if token := s.Get(cartTokenKey); token != nil {
		return token.(string)
	}
	token := uuid.NewString()
	s.Set(cartTokenKey, token)
	s.Save()
	return token
}

// PeekCartToken returns the anonymous cart token without creating one
func (s *Session) PeekCartToken() string {
	if token := s.Get(cartTokenKey); token != nil {
		return token.(string)
	}
	return ""
}
