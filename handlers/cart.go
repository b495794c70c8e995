package handlers

import (
	"errors"
	"net/http"

	"musicshop/auth"
	"musicshop/db"
	"musicshop/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CartAddRequest struct {
	ContentType string `form:"content_type" json:"content_type"`
	ObjectID    uint64 `form:"object_id" json:"object_id" binding:"required"`
	Qty         uint   `form:"qty" json:"qty"`
}

type CartQtyRequest struct {
	CartProductID uint64 `form:"cart_product_id" json:"cart_product_id" binding:"required"`
	Qty           uint   `form:"qty" json:"qty" binding:"required"`
}

type CartRemoveRequest struct {
	CartProductID uint64 `form:"cart_product_id" json:"cart_product_id" binding:"required"`
}

type CartProductInfo struct {
	ID          uint64 `json:"id"`
	ContentType string `json:"content_type"`
	ObjectID    uint64 `json:"object_id"`
	Name        string `json:"name"`
	Qty         uint   `json:"qty"`
	FinalPrice  string `json:"final_price"`
}

type CartInfo struct {
	ID            uint64            `json:"id"`
	TotalProducts uint              `json:"total_products"`
	FinalPrice    string            `json:"final_price"`
	Anonymous     bool              `json:"anonymous"`
	Products      []CartProductInfo `json:"products"`
}

// sessionCart finds the open cart for this visitor - the customer's cart
// when logged in, the token-bound anonymous cart otherwise
func sessionCart(c *gin.Context) (cart models.Cart, customer models.Customer, err error) {
	session := auth.LoadSession(c)
	customer = session.Customer()
	if customer.ID != 0 {
		cart, err = models.CartForCustomer(db.Instance, &customer)
		return
	}
	cart, err = models.CartForToken(db.Instance, session.CartToken())
	return
}

func cartInfo(cart *models.Cart) CartInfo {
	info := CartInfo{
		ID:            cart.ID,
		TotalProducts: cart.TotalProducts,
		FinalPrice:    cart.FinalPrice.StringFixed(2),
		Anonymous:     cart.ForAnonymousUser,
		Products:      []CartProductInfo{},
	}
	for _, cp := range cart.Products {
		line := CartProductInfo{
			ID:          cp.ID,
			ContentType: cp.ContentType,
			ObjectID:    cp.ObjectID,
			Qty:         cp.Qty,
			FinalPrice:  cp.FinalPrice.StringFixed(2),
		}
		if product, err := cp.Product(db.Instance); err == nil {
			line.Name = product.ProductName()
		}
		info.Products = append(info.Products, line)
	}
	return info
}

func CartGet(c *gin.Context) {
	cart, _, err := sessionCart(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	c.JSON(http.StatusOK, cartInfo(&cart))
}

func CartAdd(c *gin.Context) {
	r := CartAddRequest{}
	if err := c.ShouldBind(&r); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	if r.ContentType == "" {
		r.ContentType = models.ContentTypeAlbum
	}
	if r.Qty == 0 {
		r.Qty = 1
	}
	cart, _, err := sessionCart(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	err = db.Instance.Transaction(func(tx *gorm.DB) error {
		_, err := cart.AddProduct(tx, r.ContentType, r.ObjectID, r.Qty)
		return err
	})
	if err != nil {
		cartError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartInfo(&cart))
}

func CartSetQty(c *gin.Context) {
	r := CartQtyRequest{}
	if err := c.ShouldBind(&r); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	cart, _, err := sessionCart(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	err = db.Instance.Transaction(func(tx *gorm.DB) error {
		return cart.SetQty(tx, r.CartProductID, r.Qty)
	})
	if err != nil {
		cartError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartInfo(&cart))
}

func CartRemove(c *gin.Context) {
	r := CartRemoveRequest{}
	if err := c.ShouldBind(&r); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	cart, _, err := sessionCart(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	err = db.Instance.Transaction(func(tx *gorm.DB) error {
		return cart.RemoveProduct(tx, r.CartProductID)
	})
	if err != nil {
		cartError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartInfo(&cart))
}

func cartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrCartLocked),
		errors.Is(err, models.ErrInvalidQty),
		errors.Is(err, models.ErrUnknownContentType):
		c.JSON(http.StatusBadRequest, Response{err.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, NotFoundResponse)
	default:
		c.JSON(http.StatusInternalServerError, DBError2Response)
	}
}
