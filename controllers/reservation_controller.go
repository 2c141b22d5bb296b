package controllers

import (
	"github.com/gin-gonic/gin"

	"restaurant/pkg/resp"
	"restaurant/services"
)

type ReservationController struct {
	Reservations *services.ReservationService
}

func NewReservationController(reservations *services.ReservationService) *ReservationController {
	return &ReservationController{Reservations: reservations}
}

type CreateReservationReq struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
	PartySize int    `json:"partySize" binding:"required,min=1"`
	Notes     string `json:"notes"`
}

// POST /reservations
func (rc *ReservationController) Create(c *gin.Context) {
	var req CreateReservationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "missing required fields")
		return
	}
	res, err := rc.Reservations.Create(c.Request.Context(), &services.CreateReservationInput{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Date:      req.Date,
		Time:      req.Time,
		PartySize: req.PartySize,
		Notes:     req.Notes,
	})
	if err != nil {
		resp.Error(c, err, "reservation not found")
		return
	}
	resp.Created(c, gin.H{"token": res.Token, "reservation": res})
}

// GET /reservations/:token
func (rc *ReservationController) Detail(c *gin.Context) {
	res, err := rc.Reservations.Get(c.Request.Context(), c.Param("token"))
	if err != nil {
		resp.Error(c, err, "reservation not found")
		return
	}
	resp.OK(c, res)
}
