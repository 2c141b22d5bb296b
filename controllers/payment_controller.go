package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant/pkg/resp"
	"restaurant/services"
)

type PaymentController struct {
	Payments    *services.PaymentService
	FrontendURL string
}

func NewPaymentController(payments *services.PaymentService, frontendURL string) *PaymentController {
	return &PaymentController{Payments: payments, FrontendURL: frontendURL}
}

// GET /payment?orderToken=
// Always redirects: to the order page once paid, back to checkout otherwise.
func (pc *PaymentController) Return(c *gin.Context) {
	target, err := pc.Payments.Simulate(c.Request.Context(), c.Query("orderToken"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.Redirect(http.StatusFound, pc.FrontendURL+target)
}
