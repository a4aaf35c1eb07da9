package companies

import (
	"context"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/Sahil9505/JobFinder/internal/external"
	"github.com/Sahil9505/JobFinder/internal/jobs"
	"github.com/Sahil9505/JobFinder/pkg/models"
)

type Handler struct {
	Jobs *jobs.Repo
	Agg  *external.Aggregator
}

func NewHandler(jobsRepo *jobs.Repo, agg *external.Aggregator) *Handler {
	return &Handler{Jobs: jobsRepo, Agg: agg}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.list)             // GET /api/companies
	rg.GET("/:id/jobs", h.jobsFor) // GET /api/companies/:id/jobs
}

// fetchBoth loads internal and external jobs concurrently. Each side
// tolerates the other's failure: an external fetch problem must never
// hide internal-only results, and vice versa.
func (h *Handler) fetchBoth(ctx context.Context) ([]models.Job, []models.ExternalJob) {
	var (
		internal     []models.Job
		externalJobs []models.ExternalJob
		wg           sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		var err error
		internal, err = h.Jobs.ListAll(ctx)
		if err != nil {
			log.Printf("[companies] internal jobs unavailable: %v", err)
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		externalJobs, err = h.Agg.FetchExternalJobs(ctx, true)
		if err != nil {
			log.Printf("[companies] external jobs unavailable: %v", err)
		}
	}()
	wg.Wait()

	return internal, externalJobs
}

func (h *Handler) list(c *gin.Context) {
	internal, externalJobs := h.fetchBoth(c.Request.Context())
	aggregates := Aggregate(internal, externalJobs)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(aggregates),
		"data":    aggregates,
	})
}

func (h *Handler) jobsFor(c *gin.Context) {
	comp, ok := FindBySlug(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Company not found"})
		return
	}

	internal, externalJobs := h.fetchBoth(c.Request.Context())
	list := JobsForCompany(comp, internal, externalJobs)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(list),
		"data":    list,
	})
}
