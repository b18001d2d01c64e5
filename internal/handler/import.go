package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Liuma02/trade-journal-reports/internal/service"
)

type ImportHandler struct {
	Sessions *service.Sessions
	// MaxBodyBytes caps the accepted CSV payload; zero means no cap.
	MaxBodyBytes int64
}

func (h *ImportHandler) Register(r *gin.Engine) {
	r.POST("/api/v1/import", h.importCSV)
}

type importRequest struct {
	CSV string `json:"csv"`
}

// importCSV accepts either a JSON body {"csv": "..."} or the raw CSV
// text itself (text/csv or text/plain).
func (h *ImportHandler) importCSV(c *gin.Context) {
	body := c.Request.Body
	if h.MaxBodyBytes > 0 {
		body = http.MaxBytesReader(c.Writer, body, h.MaxBodyBytes)
	}
	raw, err := io.ReadAll(body)
	if err != nil {
		Error(c, http.StatusRequestEntityTooLarge, "body too large", nil)
		return
	}

	csvText := string(raw)
	if strings.Contains(c.ContentType(), "json") {
		var req importRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			Error(c, http.StatusBadRequest, "invalid body", nil)
			return
		}
		csvText = req.CSV
	}

	res, err := h.Sessions.Get(sessionKey(c)).ImportCSV(c.Request.Context(), csvText)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	if !res.Success {
		Error(c, http.StatusUnprocessableEntity, "import failed", map[string]any{
			"errors": res.Errors,
		})
		return
	}
	Ok(c, res, nil)
}
