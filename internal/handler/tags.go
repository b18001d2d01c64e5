package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Liuma02/trade-journal-reports/internal/service"
)

// TagsHandler manages the per-session tag catalog offered when labeling
// trades. It does not touch tags already attached to trades.
type TagsHandler struct {
	Sessions *service.Sessions
}

func (h *TagsHandler) Register(r *gin.Engine) {
	g := r.Group("/api/v1/tags")
	g.GET("", h.list)
	g.POST("", h.add)
	g.DELETE("/:tag", h.remove)
}

func (h *TagsHandler) list(c *gin.Context) {
	Ok(c, h.Sessions.Get(sessionKey(c)).Store.CustomTags(), nil)
}

type tagRequest struct {
	Tag string `json:"tag"`
}

func (h *TagsHandler) add(c *gin.Context) {
	var req tagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid body", nil)
		return
	}
	if strings.TrimSpace(req.Tag) == "" {
		Error(c, http.StatusBadRequest, "tag is required", nil)
		return
	}
	s := h.Sessions.Get(sessionKey(c)).Store
	s.AddCustomTag(req.Tag)
	Created(c, s.CustomTags())
}

func (h *TagsHandler) remove(c *gin.Context) {
	tag := strings.TrimSpace(c.Param("tag"))
	if tag == "" {
		Error(c, http.StatusBadRequest, "invalid tag", nil)
		return
	}
	s := h.Sessions.Get(sessionKey(c)).Store
	s.RemoveCustomTag(tag)
	Ok(c, s.CustomTags(), nil)
}
