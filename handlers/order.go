package handlers

import (
	"errors"
	"net/http"
	"time"

	"musicshop/auth"
	"musicshop/db"
	"musicshop/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CheckoutRequest struct {
	FirstName  string `form:"first_name" json:"first_name"`
	LastName   string `form:"last_name" json:"last_name"`
	Phone      string `form:"phone" json:"phone"`
	Address    string `form:"address" json:"address"`
	BuyingType string `form:"buying_type" json:"buying_type"`
	Comment    string `form:"comment" json:"comment"`
	OrderDate  string `form:"order_date" json:"order_date"` // 2006-01-02, defaults to today
}

type OrderInfo struct {
	ID         uint64 `json:"id"`
	Status     string `json:"status"`
	BuyingType string `json:"buying_type"`
	Address    string `json:"address,omitempty"`
	FinalPrice string `json:"final_price"`
	OrderDate  string `json:"order_date"`
	CreatedAt  int64  `json:"created_at"`
}

func orderInfo(order *models.Order) OrderInfo {
	return OrderInfo{
		ID:         order.ID,
		Status:     string(order.Status),
		BuyingType: string(order.BuyingType),
		Address:    order.Address,
		FinalPrice: order.Cart.FinalPrice.StringFixed(2),
		OrderDate:  order.OrderDate.Format("2006-01-02"),
		CreatedAt:  order.CreatedAt,
	}
}

// Checkout turns the current cart into an Order. Only logged-in customers
// can check out - anonymous visitors are asked to register first.
func Checkout(c *gin.Context) {
	r := CheckoutRequest{}
	if err := c.ShouldBind(&r); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	session := auth.LoadSession(c)
	customer := session.Customer()
	if customer.ID == 0 {
		c.JSON(http.StatusUnauthorized, LoginFirstResponse)
		return
	}
	details := models.CheckoutDetails{
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Phone:      r.Phone,
		Address:    r.Address,
		BuyingType: models.BuyingType(r.BuyingType),
		Comment:    r.Comment,
	}
	if details.FirstName == "" {
		details.FirstName = customer.User.FirstName
	}
	if details.LastName == "" {
		details.LastName = customer.User.LastName
	}
	if details.Phone == "" {
		details.Phone = customer.Phone
	}
	if r.OrderDate != "" {
		orderDate, err := time.Parse("2006-01-02", r.OrderDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, Response{"order_date must look like 2006-01-02"})
			return
		}
		details.OrderDate = orderDate
	}
	var order models.Order
	err := db.Instance.Transaction(func(tx *gorm.DB) error {
		cart, err := models.CartForCustomer(tx, &customer)
		if err != nil {
			return err
		}
		order, err = models.CheckoutCart(tx, &customer, &cart, details)
		if err != nil {
			return err
		}
		order.Cart = cart
		_, err = models.NotifyCustomer(tx, customer.ID,
			"Your order is registered and will be processed shortly")
		return err
	})
	switch {
	case err == nil:
		PushToCustomer(customer.ID, "Your order is registered and will be processed shortly")
		c.JSON(http.StatusOK, orderInfo(&order))
	case errors.Is(err, models.ErrEmptyCart),
		errors.Is(err, models.ErrAddressRequired),
		errors.Is(err, models.ErrCartLocked):
		c.JSON(http.StatusBadRequest, Response{err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, DBError1Response)
	}
}

// OrderList returns the logged-in customer's orders, newest first
func OrderList(c *gin.Context) {
	session := auth.LoadSession(c)
	customer := session.Customer()
	if customer.ID == 0 {
		c.JSON(http.StatusUnauthorized, LoginFirstResponse)
		return
	}
	orders, err := models.OrdersForCustomer(db.Instance, customer.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	result := []OrderInfo{}
	for i := range orders {
		result = append(result, orderInfo(&orders[i]))
	}
	c.JSON(http.StatusOK, result)
}

type OrderStatusRequest struct {
	OrderID uint64 `form:"order_id" json:"order_id" binding:"required"`
	Status  string `form:"status" json:"status" binding:"required"`
}

// AdminOrderList lists every order (order-management permission)
func AdminOrderList(c *gin.Context, user *models.User) {
	var orders []models.Order
	err := db.Instance.Preload("Cart").Preload("Customer").Preload("Customer.User").
		Order("created_at desc").Find(&orders).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	result := []OrderInfo{}
	for i := range orders {
		result = append(result, orderInfo(&orders[i]))
	}
	c.JSON(http.StatusOK, result)
}

var statusTexts = map[models.OrderStatus]string{
	models.OrderStatusInProgress: "Your order is now being processed",
	models.OrderStatusReady:      "Your order is ready",
	models.OrderStatusCompleted:  "Your order is completed. Thank you for shopping with us!",
}

// AdminOrderStatus advances an order to its next status and notifies the
// customer about it
func AdminOrderStatus(c *gin.Context, user *models.User) {
	r := OrderStatusRequest{}
	if err := c.ShouldBind(&r); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	var order models.Order
	if err := db.Instance.First(&order, r.OrderID).Error; err != nil {
		c.JSON(http.StatusNotFound, NotFoundResponse)
		return
	}
	err := db.Instance.Transaction(func(tx *gorm.DB) error {
		if err := order.SetStatus(tx, models.OrderStatus(r.Status)); err != nil {
			return err
		}
		if text, ok := statusTexts[order.Status]; ok {
			if _, err := models.NotifyCustomer(tx, order.CustomerID, text); err != nil {
				return err
			}
		}
		return nil
	})
	switch {
	case err == nil:
		if text, ok := statusTexts[order.Status]; ok {
			PushToCustomer(order.CustomerID, text)
		}
		c.JSON(http.StatusOK, OKResponse)
	case errors.Is(err, models.ErrStatusTransition), errors.Is(err, models.ErrUnknownStatus):
		c.JSON(http.StatusBadRequest, Response{err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, DBError2Response)
	}
}
