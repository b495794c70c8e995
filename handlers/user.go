package handlers

import (
	"net/http"

	"musicshop/auth"

	"github.com/gin-gonic/gin"
)

func UserLogout(c *gin.Context) {
	session := auth.LoadSession(c)
	session.LogoutUser()
	c.JSON(http.StatusOK, OKResponse)
}

func UserGetStatus(c *gin.Context) {
	session := auth.LoadSession(c)
	user := session.User()
	if user.ID == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not Found", "username": ""})
		return
	}
	c.JSON(http.StatusOK, gin.H{"error": "", "username": user.Username})
}
