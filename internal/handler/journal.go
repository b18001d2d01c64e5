package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Liuma02/trade-journal-reports/internal/models"
	"github.com/Liuma02/trade-journal-reports/internal/service"
	"github.com/Liuma02/trade-journal-reports/internal/store"
)

type JournalHandler struct {
	Sessions *service.Sessions
}

func (h *JournalHandler) Register(r *gin.Engine) {
	g := r.Group("/api/v1/journal")
	g.GET("", h.list)
	g.POST("", h.create)
	g.PATCH("/:id", h.update)
	g.DELETE("/:id", h.remove)
}

func (h *JournalHandler) list(c *gin.Context) {
	entries := h.Sessions.Get(sessionKey(c)).Entries()
	if date := strings.TrimSpace(c.Query("date")); date != "" {
		filtered := entries[:0]
		for _, e := range entries {
			if e.DateKey() == date {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}
	Ok(c, entries, map[string]any{"total": len(entries)})
}

type journalEntryRequest struct {
	Date    string `json:"date"`
	Notes   string `json:"notes"`
	Mood    string `json:"mood"`
	Lessons string `json:"lessons"`
}

func (h *JournalHandler) create(c *gin.Context) {
	var req journalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid body", nil)
		return
	}
	date, ok := parseTimestamp(req.Date)
	if !ok {
		Error(c, http.StatusBadRequest, "invalid date", nil)
		return
	}
	mood := strings.ToLower(strings.TrimSpace(req.Mood))
	switch mood {
	case models.MoodPositive, models.MoodNeutral, models.MoodNegative:
	case "":
		mood = models.MoodNeutral
	default:
		Error(c, http.StatusBadRequest, "invalid mood", nil)
		return
	}
	entry := models.JournalEntry{
		Date:    date,
		Notes:   req.Notes,
		Mood:    mood,
		Lessons: req.Lessons,
	}
	added, err := h.Sessions.Get(sessionKey(c)).AddEntry(c.Request.Context(), entry)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Created(c, added)
}

type journalPatchRequest struct {
	Date    *string `json:"date"`
	Notes   *string `json:"notes"`
	Mood    *string `json:"mood"`
	Lessons *string `json:"lessons"`
}

func (h *JournalHandler) update(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	var req journalPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid body", nil)
		return
	}
	patch := store.EntryPatch{
		Notes:   req.Notes,
		Mood:    req.Mood,
		Lessons: req.Lessons,
	}
	if req.Date != nil {
		ts, ok := parseTimestamp(*req.Date)
		if !ok {
			Error(c, http.StatusBadRequest, "invalid date", nil)
			return
		}
		patch.Date = &ts
	}
	updated, err := h.Sessions.Get(sessionKey(c)).UpdateEntry(c.Request.Context(), id, patch)
	if err != nil {
		if err == store.ErrNotFound {
			Error(c, http.StatusNotFound, "entry not found", nil)
			return
		}
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, updated, nil)
}

func (h *JournalHandler) remove(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	if err := h.Sessions.Get(sessionKey(c)).RemoveEntry(c.Request.Context(), id); err != nil {
		if err == store.ErrNotFound {
			Error(c, http.StatusNotFound, "entry not found", nil)
			return
		}
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, gin.H{"id": id}, nil)
}
