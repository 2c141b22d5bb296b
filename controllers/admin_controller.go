package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"restaurant/pkg/resp"
	"restaurant/services"
	"restaurant/utils"
)

// AdminController backs the order-status console.
type AdminController struct {
	Orders       *services.OrderService
	Reservations *services.ReservationService
}

func NewAdminController(orders *services.OrderService, reservations *services.ReservationService) *AdminController {
	return &AdminController{Orders: orders, Reservations: reservations}
}

type AdminUpdateStatusReq struct {
	Token  string `json:"token"`
	Status string `json:"status"`
}

// GET /admin/orders
func (ac *AdminController) ListOrders(c *gin.Context) {
	orders, err := ac.Orders.List(c.Request.Context())
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// PATCH /admin/orders
func (ac *AdminController) UpdateOrderStatus(c *gin.Context) {
	var req AdminUpdateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Token == "" || req.Status == "" {
		resp.BadRequest(c, "token and status are required")
		return
	}
	o, err := ac.Orders.SetStatus(c.Request.Context(), req.Token, req.Status)
	if err != nil {
		resp.Error(c, err, "order not found")
		return
	}
	log.Info().
		Str("token", o.Token).
		Str("status", string(o.Status)).
		Str("by", utils.CurrentUserID(c)).
		Str("role", utils.CurrentRole(c)).
		Msg("admin status update")
	resp.OK(c, gin.H{"success": true, "order": o})
}

// GET /admin/reservations
func (ac *AdminController) ListReservations(c *gin.Context) {
	list, err := ac.Reservations.List(c.Request.Context())
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, list)
}
