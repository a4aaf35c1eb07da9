package external

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Agg *Aggregator
}

func NewHandler(agg *Aggregator) *Handler {
	return &Handler{Agg: agg}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.list) // GET /api/external-jobs
}

// list always answers 200: external listings are supplementary, so the
// frontend must never see a hard error from this endpoint. Degraded
// fetches produce an empty success:false payload instead.
func (h *Handler) list(c *gin.Context) {
	jobs, err := h.Agg.FetchExternalJobs(c.Request.Context(), true)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"count":   0,
			"data":    []any{},
			"message": "Unable to fetch external jobs at the moment",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(jobs),
		"data":    jobs,
		"message": "External jobs fetched successfully",
	})
}
