package utils

import "github.com/gin-gonic/gin"

const (
	CtxUserID    = "userId"
	CtxRole      = "role"
	CtxEmail     = "email"
	CtxRequestID = "requestId"
)

func CurrentUserID(c *gin.Context) string {
	return c.GetString(CtxUserID)
}

func CurrentRole(c *gin.Context) string {
	return c.GetString(CtxRole)
}

func CurrentEmail(c *gin.Context) string {
	return c.GetString(CtxEmail)
}

func RequestID(c *gin.Context) string {
	return c.GetString(CtxRequestID)
}
