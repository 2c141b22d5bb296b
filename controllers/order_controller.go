package controllers

import (
	"github.com/gin-gonic/gin"

	"restaurant/entity"
	"restaurant/pkg/resp"
	"restaurant/services"
)

type OrderController struct {
	Orders   *services.OrderService
	Payments *services.PaymentService
}

func NewOrderController(orders *services.OrderService, payments *services.PaymentService) *OrderController {
	return &OrderController{Orders: orders, Payments: payments}
}

type CreateOrderReq struct {
	Items         []entity.CartEntry `json:"items"`
	Customer      entity.Customer    `json:"customer"`
	PaymentMethod string             `json:"paymentMethod"`
}

type CreateOrderRes struct {
	Order   *entity.Order         `json:"order"`
	Payment *services.PaymentInfo `json:"payment,omitempty"`
}

type UpdateStatusReq struct {
	Status string `json:"status"`
}

// POST /orders
func (oc *OrderController) Create(c *gin.Context) {
	var req CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid request body")
		return
	}

	o, err := oc.Orders.Create(c.Request.Context(), &services.CreateOrderInput{
		Items:         req.Items,
		Customer:      req.Customer,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		resp.Error(c, err, "order not found")
		return
	}
	resp.Created(c, CreateOrderRes{Order: o, Payment: oc.Payments.CheckoutInfo(o)})
}

// GET /orders/:token
func (oc *OrderController) Detail(c *gin.Context) {
	o, err := oc.Orders.Get(c.Request.Context(), c.Param("token"))
	if err != nil {
		resp.Error(c, err, "order not found")
		return
	}
	resp.OK(c, o)
}

// PATCH /orders/:token
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	var req UpdateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		resp.BadRequest(c, "status is required")
		return
	}
	o, err := oc.Orders.SetStatus(c.Request.Context(), c.Param("token"), req.Status)
	if err != nil {
		resp.Error(c, err, "order not found")
		return
	}
	resp.OK(c, o)
}
