package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant/entity"
	"restaurant/pkg/resp"
	"restaurant/services"
	"restaurant/utils"
)

type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

func userJSON(u *entity.User) gin.H {
	return gin.H{"id": u.ID, "email": u.Email, "name": u.Name, "role": u.Role}
}

// POST /auth/signup
func (a *AuthController) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	token, u, err := a.Auth.Signup(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		resp.Error(c, err, "user not found")
		return
	}
	resp.Created(c, gin.H{"ok": true, "token": token, "user": userJSON(u)})
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	token, u, err := a.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		resp.Error(c, err, "user not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "token": token, "user": userJSON(u)})
}

// GET /auth/me
func (a *AuthController) Me(c *gin.Context) {
	u, err := a.Auth.GetProfile(c.Request.Context(), utils.CurrentEmail(c))
	if err != nil {
		resp.Error(c, err, "user not found")
		return
	}
	resp.OK(c, userJSON(u))
}
