package jobs

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Sahil9505/JobFinder/pkg/models"
)

type Handler struct {
	Repo *Repo
}

func NewHandler(repo *Repo) *Handler {
	return &Handler{Repo: repo}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/add", h.add)      // POST /api/jobs/add
	rg.GET("", h.list)          // GET /api/jobs
	rg.GET("/:id", h.getByID)   // GET /api/jobs/:id
	rg.DELETE("/:id", h.delete) // DELETE /api/jobs/:id
}

type addReq struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

func (h *Handler) add(c *gin.Context) {
	var req addReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid json"})
		return
	}

	if req.Title == "" || req.Company == "" || req.Location == "" || req.Type == "" || req.Description == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Please provide all fields: title, company, location, type, description",
		})
		return
	}
	if req.Type != models.JobTypeJob && req.Type != models.JobTypeInternship {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": `Type must be either "Job" or "Internship"`,
		})
		return
	}

	job := models.Job{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(req.Title),
		Company:     strings.TrimSpace(req.Company),
		Location:    strings.TrimSpace(req.Location),
		Type:        req.Type,
		Description: strings.TrimSpace(req.Description),
	}

	if err := h.Repo.Create(c.Request.Context(), job); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Job added successfully",
		"data":    job,
	})
}

var indiaRe = regexp.MustCompile(`(?i)india`)

func (h *Handler) list(c *gin.Context) {
	jobs, err := h.Repo.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	country := c.Query("country")
	platform := c.Query("platform")
	city := c.Query("city")
	jobType := c.Query("type")

	out := make([]gin.H, 0, len(jobs))
	for _, j := range jobs {
		if country != "" && strings.EqualFold(country, "india") {
			if !strings.EqualFold(j.Country, "India") && !indiaRe.MatchString(j.Location+" "+j.City) {
				continue
			}
		}
		if platform != "" && !strings.EqualFold(j.Platform, platform) {
			continue
		}
		if city != "" && !strings.Contains(strings.ToLower(cityOrLocation(j)), strings.ToLower(city)) {
			continue
		}
		if jobType != "" && !strings.EqualFold(j.Type, jobType) {
			continue
		}

		enriched := Enrich(j)
		out = append(out, gin.H{
			"id":            j.ID,
			"title":         j.Title,
			"company":       j.Company,
			"location":      j.Location,
			"city":          cityOrLocation(j),
			"country":       j.Country,
			"type":          j.Type,
			"jobType":       j.JobType,
			"applyType":     j.ApplyType,
			"applyUrl":      j.ApplyURL,
			"platform":      j.Platform,
			"isVerified":    j.IsVerified,
			"createdAt":     j.CreatedAt,
			"salaryDisplay": enriched.SalaryDisplay,
			"skills":        enriched.Skills,
		})
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(out), "data": out})
}

func (h *Handler) getByID(c *gin.Context) {
	job, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}
	if job == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Job not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": Enrich(*job)})
}

func (h *Handler) delete(c *gin.Context) {
	deleted, err := h.Repo.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Job not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Job deleted successfully",
		"data":    gin.H{},
	})
}

func cityOrLocation(j models.Job) string {
	if j.City != "" {
		return j.City
	}
	return j.Location
}
