package applications

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Sahil9505/JobFinder/internal/auth"
	"github.com/Sahil9505/JobFinder/internal/jobs"
	"github.com/Sahil9505/JobFinder/pkg/models"
)

const maxResumeSize = 5 << 20 // 5 MB

type Handler struct {
	Repo      *Repo
	Jobs      *jobs.Repo
	UploadDir string
}

func NewHandler(repo *Repo, jobsRepo *jobs.Repo, uploadDir string) *Handler {
	return &Handler{Repo: repo, Jobs: jobsRepo, UploadDir: uploadDir}
}

// RegisterRoutes expects a group that already carries the auth
// middleware: every application route requires a logged-in user.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/applications/apply", h.apply)
	rg.GET("/applications/my", h.listMine)
	rg.PATCH("/applications/:id/cancel", h.cancel)
}

func (h *Handler) apply(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not authorized"})
		return
	}

	jobID := strings.TrimSpace(c.PostForm("jobId"))
	fullName := strings.TrimSpace(c.PostForm("fullName"))
	email := strings.TrimSpace(c.PostForm("email"))
	if jobID == "" || fullName == "" || email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "jobId, fullName and email are required"})
		return
	}

	job, err := h.Jobs.GetByID(c.Request.Context(), jobID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}
	if job == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Job not found"})
		return
	}
	if job.ApplyType != "" && job.ApplyType != "internal" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Cannot apply here. Please use external platform link."})
		return
	}

	existing, err := h.Repo.GetByUserAndJob(c.Request.Context(), claims.UserID, jobID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}
	if existing != nil && existing.Status == models.ApplicationApplied {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "You have already applied for this job"})
		return
	}

	resumeURL, err := h.saveResume(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	var skills []string
	if raw := strings.TrimSpace(c.PostForm("skills")); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				skills = append(skills, s)
			}
		}
	}

	app := models.Application{
		ID:          uuid.NewString(),
		UserID:      claims.UserID,
		JobID:       jobID,
		FullName:    fullName,
		Email:       email,
		Phone:       strings.TrimSpace(c.PostForm("phone")),
		College:     strings.TrimSpace(c.PostForm("college")),
		Degree:      strings.TrimSpace(c.PostForm("degree")),
		CurrentYear: strings.TrimSpace(c.PostForm("currentYear")),
		Skills:      skills,
		Message:     strings.TrimSpace(c.PostForm("message")),
		ResumeURL:   resumeURL,
		Status:      models.ApplicationApplied,
	}

	// previously cancelled: reuse the row instead of inserting a duplicate
	if existing != nil && existing.Status == models.ApplicationCancelled {
		app.ID = existing.ID
		if err := h.Repo.Reapply(c.Request.Context(), app); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Application re-submitted", "data": app})
		return
	}

	if err := h.Repo.Create(c.Request.Context(), app); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Application submitted", "data": app})
}

// saveResume stores an uploaded PDF under the blob dir and returns its
// served path. A missing file is fine — the resume is optional here.
func (h *Handler) saveResume(c *gin.Context) (string, error) {
	file, err := c.FormFile("resume")
	if err != nil || file == nil {
		return "", nil
	}
	if !strings.EqualFold(filepath.Ext(file.Filename), ".pdf") {
		return "", fmt.Errorf("Only PDF resumes allowed")
	}
	if file.Size > maxResumeSize {
		return "", fmt.Errorf("Resume must be under 5MB")
	}

	dir := filepath.Join(h.UploadDir, "resumes")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("could not store resume")
	}
	name := uuid.NewString() + ".pdf"
	if err := c.SaveUploadedFile(file, filepath.Join(dir, name)); err != nil {
		return "", fmt.Errorf("could not store resume")
	}
	return "/uploads/resumes/" + name, nil
}

func (h *Handler) listMine(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not authorized"})
		return
	}

	apps, err := h.Repo.ListByUser(c.Request.Context(), claims.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}
	if apps == nil {
		apps = []models.Application{}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(apps), "data": apps})
}

func (h *Handler) cancel(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not authorized"})
		return
	}

	app, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}
	if app == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Application not found"})
		return
	}
	if app.UserID != claims.UserID {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Not authorized"})
		return
	}

	if err := h.Repo.Cancel(c.Request.Context(), app.ID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Application is not active"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Application cancelled"})
}
