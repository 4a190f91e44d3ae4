package analyzer

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"PokerAssist/internal/utils"
)

type Handler struct {
	svc Analyzer
}

func NewHandler(svc Analyzer) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(r gin.IRoutes) {
	r.POST("/analyze", h.Analyze)
	r.GET("/practice", h.Practice)
}

// POST /analyze  body: AnalyzeRequest
func (h *Handler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: CodeValidation, Error: err.Error()})
		return
	}
	a, err := h.svc.Analyze(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// GET /practice?opponents=&position=&street=&seed=
func (h *Handler) Practice(c *gin.Context) {
	var req PracticeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: CodeValidation, Error: err.Error()})
		return
	}
	a, err := h.svc.Practice(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *Handler) fail(c *gin.Context, err error) {
	status, body := NewErrorResponse(err)
	if status >= http.StatusInternalServerError {
		utils.Log.Error("analysis failed", "path", c.FullPath(), "err", err)
	}
	c.JSON(status, body)
}
