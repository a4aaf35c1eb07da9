package jobs

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/Sahil9505/JobFinder/pkg/models"
)

var seedJobs = []models.Job{
	{
		Title: "Frontend Developer Intern", Company: "Zoho", Location: "Chennai",
		City: "Chennai", Type: models.JobTypeInternship,
		Description: "Work on Zoho's web products with React and modern JavaScript. Mentored internship with a path to a full-time offer.",
		Stipend:     "₹20,000 / month", Skills: []string{"React", "JavaScript", "CSS"},
	},
	{
		Title: "Backend Developer", Company: "Razorpay", Location: "Bangalore",
		City: "Bangalore", Type: models.JobTypeJob,
		Description: "Build and scale payment APIs handling millions of transactions a day.",
		Salary:      "₹12 LPA – ₹18 LPA", Skills: []string{"Go", "Node.js", "PostgreSQL"},
	},
	{
		Title: "Data Analyst Intern", Company: "Flipkart", Location: "Bangalore",
		City: "Bangalore", Type: models.JobTypeInternship,
		Description: "Analyze marketplace data and build dashboards for category teams.",
		Stipend:     "₹15,000 / month", Skills: []string{"SQL", "Python", "Excel"},
	},
	{
		Title: "Software Engineer", Company: "TCS", Location: "Mumbai",
		City: "Mumbai", Type: models.JobTypeJob,
		Description: "Join TCS digital: enterprise application development for global clients.",
	},
	{
		Title: "Marketing Intern", Company: "Swiggy", Location: "Remote, India",
		City: "Remote India", Type: models.JobTypeInternship,
		Description: "Run social campaigns and growth experiments for Swiggy Instamart.",
	},
	{
		Title: "Full Stack Developer", Company: "Paytm", Location: "Noida",
		City: "Noida", Type: models.JobTypeJob,
		Description: "MERN stack development on merchant-facing products.",
		Salary:      "₹10 LPA – ₹16 LPA",
	},
}

// SeedIfEmpty inserts the sample postings when the jobs table has no
// rows, mirroring the original auto-seed on first boot.
func SeedIfEmpty(ctx context.Context, repo *Repo) (int, error) {
	count, err := repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	seeded := 0
	for _, j := range seedJobs {
		j.ID = uuid.NewString()
		j.Country = "India"
		if err := repo.Create(ctx, j); err != nil {
			return seeded, fmt.Errorf("seed job %q: %w", j.Title, err)
		}
		seeded++
	}
	log.Printf("[jobs] seeded %d sample jobs", seeded)
	return seeded, nil
}
