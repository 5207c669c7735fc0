package handler

import (
	"github.com/gin-gonic/gin"

	"renova/internal/service"
)

// ProxyHandler relays validated images from the trusted hosting provider.
type ProxyHandler struct {
	proxyService service.ImageProxyService
}

// NewProxyHandler creates a new ProxyHandler.
func NewProxyHandler(proxyService service.ImageProxyService) *ProxyHandler {
	return &ProxyHandler{proxyService: proxyService}
}

// Serve handles GET /api/proxy-image?url=...
// @Summary Proxy a hosted image
// @Description Fetch an image from the allowed hosting provider and re-serve it with cache headers
// @Tags proxy
// @Produce image/*
// @Param url query string true "Hosted image URL"
// @Success 200 "Raw image bytes"
// @Failure 400 {object} APIResponse "Missing, malformed, or unsupported URL"
// @Failure 403 {object} APIResponse "URL not on the allowed host"
// @Failure 413 {object} APIResponse "Image exceeds maximum allowed size"
// @Failure 502 {object} APIResponse "Upstream fetch failed"
// @Router /proxy-image [get]
func (h *ProxyHandler) Serve(c *gin.Context) {
	img, err := h.proxyService.Fetch(c.Request.Context(), c.Query("url"))
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Cache-Control", img.CacheControl)
	c.Data(200, img.ContentType, img.Data)
}
