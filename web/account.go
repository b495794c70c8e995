package web

import (
	"net/http"

	"musicshop/auth"
	"musicshop/db"
	"musicshop/forms"
	"musicshop/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.tmpl", gin.H{
		"form":   forms.Login{},
		"errors": forms.Errors{},
	})
}

func LoginSubmit(c *gin.Context) {
	form := forms.Login{}
	_ = c.ShouldBind(&form)
	user, formErrors := form.Validate(db.Instance)
	if !formErrors.Valid() {
		c.HTML(http.StatusOK, "login.tmpl", gin.H{
			"form":   form,
			"errors": formErrors,
		})
		return
	}
	session := auth.LoadSession(c)
	if token := session.PeekCartToken(); token != "" {
		// Hand the anonymous session cart over to the account's customer
		err := db.Instance.Transaction(func(tx *gorm.DB) error {
			customer, err := models.CustomerByUserID(tx, user.ID)
			if err != nil {
				return err
			}
			return models.ReassignAnonymousCart(tx, token, &customer)
		})
		if err != nil {
			formErrors.Add(forms.FormField, "Something went wrong, please try again")
			c.HTML(http.StatusOK, "login.tmpl", gin.H{
				"form":   form,
				"errors": formErrors,
			})
			return
		}
	}
	session.LoginUser(&user)
	c.Redirect(http.StatusFound, "/")
}

func RegistrationPage(c *gin.Context) {
	c.HTML(http.StatusOK, "registration.tmpl", gin.H{
		"form":   forms.Registration{},
		"errors": forms.Errors{},
	})
}

func RegistrationSubmit(c *gin.Context) {
	form := forms.Registration{}
	_ = c.ShouldBind(&form)
	formErrors := form.Validate(db.Instance)
	if !formErrors.Valid() {
		c.HTML(http.StatusOK, "registration.tmpl", gin.H{
			"form":   form,
			"errors": formErrors,
		})
		return
	}
	session := auth.LoadSession(c)
	var user models.User
	// The account and its customer profile must not diverge - both are
	// created in one transaction, together with the cart hand-over
	err := db.Instance.Transaction(func(tx *gorm.DB) error {
		var err error
		user, err = models.UserCreate(tx, form.Username, form.Email, form.Password)
		if err != nil {
			return err
		}
		user.FirstName = form.FirstName
		user.LastName = form.LastName
		if err = tx.Model(&user).Updates(map[string]interface{}{
			"first_name": form.FirstName,
			"last_name":  form.LastName,
		}).Error; err != nil {
			return err
		}
		customer, err := models.CustomerCreate(tx, &user, form.Phone, form.Address)
		if err != nil {
			return err
		}
		return models.ReassignAnonymousCart(tx, session.PeekCartToken(), &customer)
	})
	if err != nil {
		formErrors.Add(forms.FormField, "Registration failed, please try again")
		c.HTML(http.StatusOK, "registration.tmpl", gin.H{
			"form":   form,
			"errors": formErrors,
		})
		return
	}
	session.LoginUser(&user)
	c.Redirect(http.StatusFound, "/")
}
