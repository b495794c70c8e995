package main

import (
	"log"
	"strings"
	"time"

	"musicshop/auth"
	"musicshop/config"
	"musicshop/db"
	"musicshop/handlers"
	"musicshop/models"
	"musicshop/storage"
	"musicshop/utils"
	"musicshop/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/autotls"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

const (
	sessionCookieName     = "token"
	sessionExpirationTime = 365 * 86400 // 1 year
)

func main() {
	_ = godotenv.Load()
	config.Init()
	db.Init()
	models.Init()
	storage.Init()

	if !config.DEBUG_MODE {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	_ = router.SetTrustedProxies([]string{})
	if config.DEBUG_MODE {
		router.Use(utils.ErrorLogMiddleware)
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "PUT", "POST", "DELETE"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           30 * 24 * time.Hour,
	}))

	// HTML templates
	router.LoadHTMLGlob(config.TEMPLATES_DIR + "/*.tmpl")

	cookieStore := gormsessions.NewStore(db.Instance, true, []byte(config.SESSION_KEY))
	cookieStore.Options(sessions.Options{Path: "/", MaxAge: sessionExpirationTime})
	router.Use(sessions.Sessions(sessionCookieName, cookieStore))
	if !config.DEBUG_MODE {
		router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/notification/socket", "/media"})))
	}
	router.Use((&utils.CacheRouter{CacheTime: utils.CacheNoCache}).Handler()) // No cache by default, individual end-points can override that

	// Custom Auth Router for the protected surface
	authRouter := &auth.Router{Base: router}

	// Uploaded images
	router.GET("/media/*path", func(c *gin.Context) {
		path := strings.TrimPrefix(c.Param("path"), "/")
		storage.GetDefaultStorage().Serve(path, c.Request, c.Writer)
	})

	// Account handlers
	router.POST("/user/logout", handlers.UserLogout)
	router.GET("/user/status", handlers.UserGetStatus)
	// Cart handlers - work for both logged-in and anonymous visitors
	router.GET("/cart", handlers.CartGet)
	router.POST("/cart/add", handlers.CartAdd)
	router.POST("/cart/qty", handlers.CartSetQty)
	router.POST("/cart/remove", handlers.CartRemove)
	router.POST("/checkout", handlers.Checkout)
	// Order handlers
	router.GET("/order/list", handlers.OrderList)
	// Wishlist handlers
	router.GET("/wishlist/list", handlers.WishlistList)
	router.POST("/wishlist/add", handlers.WishlistAdd)
	router.POST("/wishlist/remove", handlers.WishlistRemove)
	// Notification handlers
	router.GET("/notification/list", handlers.NotificationList)
	router.POST("/notification/read", handlers.NotificationRead)
	router.GET("/notification/socket", handlers.NotificationSocket)
	// Catalog management
	authRouter.POST("/admin/genre/save", handlers.GenreSave, models.PermissionAdmin)
	authRouter.POST("/admin/genre/delete", handlers.GenreDelete, models.PermissionAdmin)
	authRouter.POST("/admin/media-type/save", handlers.MediaTypeSave, models.PermissionAdmin)
	authRouter.POST("/admin/media-type/delete", handlers.MediaTypeDelete, models.PermissionAdmin)
	authRouter.POST("/admin/member/save", handlers.MemberSave, models.PermissionAdmin)
	authRouter.POST("/admin/member/delete", handlers.MemberDelete, models.PermissionAdmin)
	authRouter.POST("/admin/artist/save", handlers.ArtistSave, models.PermissionAdmin)
	authRouter.POST("/admin/artist/delete", handlers.ArtistDelete, models.PermissionAdmin)
	authRouter.POST("/admin/album/save", handlers.AlbumSave, models.PermissionAdmin)
	authRouter.POST("/admin/album/delete", handlers.AlbumDelete, models.PermissionAdmin)
	authRouter.POST("/admin/image/upload", handlers.ImageUpload, models.PermissionAdmin)
	// Order management
	authRouter.GET("/admin/order/list", handlers.AdminOrderList, models.PermissionOrderManage)
	authRouter.POST("/admin/order/status", handlers.AdminOrderStatus, models.PermissionOrderManage)

	/*
	 *	Web interface
	 */
	router.GET("/", web.Home)
	router.GET("/login/", web.LoginPage)
	router.POST("/login/", web.LoginSubmit)
	router.GET("/registration/", web.RegistrationPage)
	router.POST("/registration/", web.RegistrationSubmit)
	// Catalog detail pages - the slug wildcards come last
	router.GET("/:artist_slug/", web.ArtistDetail)
	router.GET("/:artist_slug/:album_slug/", web.AlbumDetail)

	var err error
	if config.TLS_DOMAINS != "" {
		err = autotls.Run(router, strings.Split(config.TLS_DOMAINS, ",")...)
	} else {
		err = router.Run(config.BIND_ADDRESS)
	}
	log.Fatalf("Server stopped: %v", err)
}
