package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const apiVersion = "1.0.0"

// MetaHandler serves the discovery endpoints at the API root.
type MetaHandler struct{}

// NewMetaHandler constructs a meta handler.
func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

// Root responds with the welcome message and an endpoint map.
func (h *MetaHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to TARS Club API",
		"version": apiVersion,
		"endpoints": gin.H{
			"health": "/api/health/",
			"info":   "/api/info/",
			"home":   "/api/home/",
			"admin":  "/api/admin/",
			"auth": gin.H{
				"register": "/api/auth/register/",
				"login":    "/api/auth/login/",
				"logout":   "/api/auth/logout/",
				"profile":  "/api/auth/profile/",
			},
			"data": gin.H{
				"site_settings": "/api/site-settings/",
				"sponsors":      "/api/sponsors/",
				"social_links":  "/api/social-links/",
				"classes":       "/api/classes/",
				"resources":     "/api/resources/",
			},
		},
	})
}

// Info responds with basic API identification.
func (h *MetaHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    "TARS Club Website API",
		"version": apiVersion,
		"endpoints": gin.H{
			"health": "/api/health/",
			"admin":  "/api/admin/",
			"info":   "/api/info/",
		},
	})
}
