package companies

import (
	"regexp"
	"strings"

	"github.com/Sahil9505/JobFinder/pkg/models"
)

// Whitelist is the static set of Indian companies surfaced on the
// companies page. Aggregates are only ever computed for these entries.
var Whitelist = []models.CompanyInfo{
	{Name: "TCS", Industry: "IT & Software", Logo: "/logos/tcs.png", IsVerified: true},
	{Name: "Infosys", Industry: "IT & Software", Logo: "/logos/infosys.png", IsVerified: true},
	{Name: "Wipro", Industry: "IT & Software", Logo: "/logos/wipro.png", IsVerified: true},
	{Name: "Accenture India", Industry: "IT & Software", Logo: "/logos/accenture-india.png", IsVerified: true},
	{Name: "Cognizant India", Industry: "IT & Software", Logo: "/logos/cognizant-india.png", IsVerified: true},
	{Name: "Capgemini India", Industry: "IT & Software", Logo: "/logos/capgemini-india.png", IsVerified: true},
	{Name: "Tech Mahindra", Industry: "IT & Software", Logo: "/logos/tech-mahindra.png", IsVerified: true},
	{Name: "HCL Technologies", Industry: "IT & Software", Logo: "/logos/hcl-technologies.png", IsVerified: true},
	{Name: "Zoho", Industry: "IT & Software", Logo: "/logos/zoho.png", IsVerified: true},
	{Name: "Paytm", Industry: "FinTech", Logo: "/logos/paytm.png", IsVerified: true},
	{Name: "Flipkart", Industry: "E-commerce", Logo: "/logos/flipkart.png", IsVerified: true},
	{Name: "Razorpay", Industry: "FinTech", Logo: "/logos/razorpay.png", IsVerified: true},
	{Name: "Swiggy", Industry: "E-commerce", Logo: "/logos/swiggy.png", IsVerified: true},
	{Name: "Zomato", Industry: "E-commerce", Logo: "/logos/zomato.png", IsVerified: true},
	{Name: "Byju's", Industry: "EdTech", Logo: "/logos/byjus.png", IsVerified: true},
	{Name: "Internshala", Industry: "EdTech", Logo: "/logos/internshala.png", IsVerified: true},
	{Name: "Unstop", Industry: "EdTech", Logo: "/logos/unstop.png", IsVerified: true},
	{Name: "Microsoft India", Industry: "IT & Software", Logo: "/logos/microsoft-india.png", IsVerified: true},
	{Name: "Amazon India", Industry: "E-commerce", Logo: "/logos/amazon-india.png", IsVerified: true},
	{Name: "Google India", Industry: "IT & Software", Logo: "/logos/google-india.png", IsVerified: true},
}

var slugSpaces = regexp.MustCompile(`\s+`)

// Slug derives the URL id for a whitelist entry ("Tech Mahindra" ->
// "tech-mahindra").
func Slug(name string) string {
	return slugSpaces.ReplaceAllString(strings.ToLower(name), "-")
}

// FindBySlug looks a whitelist entry up by its URL id.
func FindBySlug(id string) (models.CompanyInfo, bool) {
	for _, comp := range Whitelist {
		if Slug(comp.Name) == id {
			return comp, true
		}
	}
	return models.CompanyInfo{}, false
}

var industryPatterns = []struct {
	re       *regexp.Regexp
	industry string
}{
	{regexp.MustCompile(`\b(software|developer|programmer|coding|tech|it|engineering|full.?stack|frontend|backend|react|node|python|java|javascript)\b`), "IT & Software"},
	{regexp.MustCompile(`\b(marketing|digital marketing|social media|content|seo|sem|advertising|brand)\b`), "Marketing"},
	{regexp.MustCompile(`\b(finance|financial|accounting|banking|investment|accountant)\b`), "Finance"},
	{regexp.MustCompile(`\b(design|ui|ux|graphic|creative|illustrator|photoshop)\b`), "Design"},
	{regexp.MustCompile(`\b(sales|business development|bde|bdm)\b`), "Sales"},
	{regexp.MustCompile(`\b(hr|human resources|recruitment|talent)\b`), "Human Resources"},
	{regexp.MustCompile(`\b(data|analyst|data science|machine learning|ai|analytics)\b`), "Data & Analytics"},
}

// DetectIndustry classifies a job by simple keyword matching on its
// title and description. First matching category wins.
func DetectIndustry(title, description string) string {
	combined := strings.ToLower(title) + " " + strings.ToLower(description)
	for _, p := range industryPatterns {
		if p.re.MatchString(combined) {
			return p.industry
		}
	}
	return "Other"
}
