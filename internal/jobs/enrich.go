package jobs

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Sahil9505/JobFinder/pkg/models"
)

// JobDetail is a Job plus the display defaults the detail page expects
// when a posting omits optional fields.
type JobDetail struct {
	models.Job
	SalaryDisplay string `json:"salaryDisplay"`
}

var (
	backendTitleRe   = regexp.MustCompile(`back|node|express|java|python|django|spring`)
	fullstackTitleRe = regexp.MustCompile(`full|mern|fullstack`)
)

var (
	defaultResponsibilities = []string{
		"Write clean, maintainable code",
		"Collaborate with the team",
		"Implement assigned features and fixes",
	}
	defaultPerks       = []string{"Certificate", "PPO opportunity", "Flexible hours", "Work from home"}
	defaultEligibility = "Students and freshers (0-2 years) or relevant experience"
)

// Enrich fills sensible defaults for skills, responsibilities, perks,
// eligibility, about-company and the salary display string.
func Enrich(j models.Job) JobDetail {
	title := strings.ToLower(j.Title)

	skills := j.Skills
	if len(skills) == 0 {
		skills = []string{"React", "HTML", "CSS", "JavaScript"}
		if backendTitleRe.MatchString(title) {
			skills = []string{"Node.js", "Express", "MongoDB"}
		}
		if fullstackTitleRe.MatchString(title) {
			skills = []string{"React", "Node.js", "Express", "MongoDB"}
		}
	}

	salaryDisplay := j.Salary
	if salaryDisplay == "" {
		if j.Type == models.JobTypeInternship {
			salaryDisplay = j.Stipend
			if salaryDisplay == "" {
				salaryDisplay = "₹8,000 – ₹15,000 / month"
			}
		} else {
			salaryDisplay = "₹3 LPA – ₹8 LPA"
		}
	}

	out := JobDetail{Job: j, SalaryDisplay: salaryDisplay}
	out.Skills = skills
	if len(out.Responsibilities) == 0 {
		out.Responsibilities = defaultResponsibilities
	}
	if len(out.Perks) == 0 {
		out.Perks = defaultPerks
	}
	if out.Eligibility == "" {
		out.Eligibility = defaultEligibility
	}
	if out.AboutCompany == "" {
		out.AboutCompany = fmt.Sprintf("%s is hiring for this role. Apply to learn more about the company's projects and culture.", j.Company)
	}
	return out
}
