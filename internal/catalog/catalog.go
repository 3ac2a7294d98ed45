// Package catalog holds the static assessment question catalog. The catalog
// is fixed configuration data: loaded once, never mutated at runtime, and its
// order is meaningful (presentation order and resume cursor).
package catalog

import (
	"github.com/ndevrinc/outdoor-quiz/internal/models"
)

// MaxOptionValue is the highest selectable value on every shipped question.
const MaxOptionValue = 6

var questions = []models.Question{
	{
		ID:       "audience-1",
		Category: models.CategoryAudienceExperience,
		Prompt:   "How does your site perform during seasonal traffic spikes?",
		Weight:   1,
		Options: []models.Option{
			{Value: 0, Label: "Crashes frequently during Memorial Day, Black Friday, spring launches", Description: "Site goes down during peak seasons"},
			{Value: 2, Label: "Slows down but stays online during peak seasons", Description: "Performance degrades but remains accessible"},
			{Value: 4, Label: "Handles 5× traffic increases with minor issues", Description: "Good performance with occasional slowdowns"},
			{Value: 6, Label: "Seamlessly manages 10× traffic surges with zero downtime", Description: "Enterprise-grade performance during peaks"},
		},
	},
	{
		ID:       "audience-2",
		Category: models.CategoryAudienceExperience,
		Prompt:   "What's your mobile page load speed on outdoor/remote LTE connections?",
		Weight:   1,
		Options: []models.Option{
			{Value: 0, Label: "5+ seconds, customers complain about slow loading", Description: "Poor mobile performance in remote areas"},
			{Value: 2, Label: "3-5 seconds, decent but could be faster", Description: "Acceptable but not optimized for mobile"},
			{Value: 4, Label: "2-3 seconds, good performance most of the time", Description: "Well-optimized for most mobile connections"},
			{Value: 6, Label: "<1 second globally via edge caching, lightning fast anywhere", Description: "Enterprise CDN with global edge optimization"},
		},
	},
	{
		ID:       "audience-3",
		Category: models.CategoryAudienceExperience,
		Prompt:   "What's your mobile conversion rate compared to desktop?",
		Weight:   1,
		Options: []models.Option{
			{Value: 0, Label: "Mobile converts 50%+ lower than desktop", Description: "Poor mobile commerce experience"},
			{Value: 2, Label: "Mobile converts 25-50% lower than desktop", Description: "Mobile experience needs improvement"},
			{Value: 4, Label: "Mobile converts within 15% of desktop rates", Description: "Good mobile optimization"},
			{Value: 6, Label: "Mobile converts equal to or better than desktop", Description: "Mobile-first commerce experience"},
		},
	},
	{
		ID:       "creator-1",
		Category: models.CategoryCreatorExperience,
		Prompt:   "How quickly can your team publish installation guides and product content?",
		Weight:   1,
		Options: []models.Option{
			{Value: 0, Label: "Requires developer help, takes weeks to publish new content", Description: "Technical bottlenecks slow content creation"},
			{Value: 2, Label: "Content team can publish but process is slow and clunky", Description: "Basic CMS with workflow limitations"},
			{Value: 4, Label: "Fairly efficient publishing but some bottlenecks remain", Description: "Good content workflow with minor issues"},
			{Value: 6, Label: "Content team publishes instantly with reusable blocks and patterns", Description: "Advanced content management with automation"},
		},
	},
	{
		ID:       "creator-2",
		Category: models.CategoryCreatorExperience,
		Prompt:   "How do you handle seasonal content planning and execution?",
		Weight:   1,
		Options: []models.Option{
			{Value: 0, Label: "Scramble each season, often miss key content deadlines", Description: "Reactive content planning"},
			{Value: 2, Label: "Basic planning but execution is often rushed and stressful", Description: "Simple editorial calendar"},
			{Value: 4, Label: "Decent seasonal planning with some workflow bottlenecks", Description: "Good planning with execution challenges"},
			{Value: 6, Label: "Advanced editorial calendars with automated seasonal workflows", Description: "Enterprise content planning and automation"},
		},
	},
	{
		ID:       "developer-1",
		Category: models.CategoryDeveloperExperience,
		Prompt:   "How does your platform handle complex integrations?",
		Weight:   1,
		Options: []models.Option{
			{Value: 0, Label: "Custom development required for every integration, expensive and slow", Description: "No API or integration framework"},
			{Value: 2, Label: "Some pre-built connectors but still need custom work", Description: "Limited integration options"},
			{Value: 4, Label: "Good API support, can handle most integrations efficiently", Description: "Solid API and integration capabilities"},
			{Value: 6, Label: "API-first architecture with headless capabilities and enterprise connectors", Description: "Enterprise-grade API and headless architecture"},
		},
	},
	{
		ID:       "developer-2",
		Category: models.CategoryDeveloperExperience,
		Prompt:   "How do you manage security and compliance requirements?",
		Weight:   1,
		Options: []models.Option{
			{Value: 0, Label: "Basic security, worried about vulnerabilities and compliance gaps", Description: "Minimal security measures"},
			{Value: 2, Label: "Decent security but some concerns about enterprise requirements", Description: "Good security with some gaps"},
			{Value: 4, Label: "Good security practices with regular updates and monitoring", Description: "Solid security practices and monitoring"},
			{Value: 6, Label: "SOC-2 compliance, enterprise security with proactive monitoring", Description: "Enterprise-grade security and compliance"},
		},
	},
	{
		ID:       "business-1",
		Category: models.CategoryBusinessImpact,
		Prompt:   "How effectively do you track adventure content to commerce conversion?",
		Weight:   1,
		Options: []models.Option{
			{Value: 0, Label: "Can't measure how installation guides/stories drive product sales", Description: "No content attribution tracking"},
			{Value: 2, Label: "Basic analytics but limited insight into content impact", Description: "Simple analytics with limited attribution"},
			{Value: 4, Label: "Good tracking of content engagement and some sales attribution", Description: "Decent content performance tracking"},
			{Value: 6, Label: "Advanced analytics connecting every piece of content to revenue", Description: "Complete content-to-commerce attribution"},
		},
	},
	{
		ID:       "business-2",
		Category: models.CategoryBusinessImpact,
		Prompt:   "What's your average annual platform maintenance and development cost?",
		Weight:   1,
		Options: []models.Option{
			{Value: 0, Label: "$200K+ annually, costs keep growing unexpectedly", Description: "High and unpredictable platform costs"},
			{Value: 2, Label: "$100K-200K annually, reasonable but could be more efficient", Description: "Moderate platform costs"},
			{Value: 4, Label: "$50K-100K annually, good value for features received", Description: "Efficient platform investment"},
			{Value: 6, Label: "<$50K annually through managed platform with predictable costs", Description: "Highly efficient managed platform"},
		},
	},
	{
		ID:       "business-3",
		Category: models.CategoryBusinessImpact,
		Prompt:   "How prepared are you for the next level of growth?",
		Weight:   1,
		Options: []models.Option{
			{Value: 0, Label: "Current platform will break if we double in size", Description: "Platform cannot handle growth"},
			{Value: 2, Label: "Platform might handle 2× growth but will need major work", Description: "Limited scalability without major investment"},
			{Value: 4, Label: "Platform can handle 2-3× growth with some optimizations", Description: "Good scalability with minor improvements"},
			{Value: 6, Label: "Platform built to scale 10× current size without major changes", Description: "Enterprise-grade scalability built-in"},
		},
	},
}

// Questions returns the catalog in presentation order. The returned slice is
// shared; callers must not mutate it.
func Questions() []models.Question {
	return questions
}

// Count returns the catalog length.
func Count() int {
	return len(questions)
}

// ByID returns the question with the given id, if present.
func ByID(id string) (models.Question, bool) {
	for _, q := range questions {
		if q.ID == id {
			return q, true
		}
	}
	return models.Question{}, false
}

// Categories returns the distinct category values in catalog order of first
// appearance.
func Categories() []models.Category {
	seen := make(map[models.Category]bool)
	var out []models.Category
	for _, q := range questions {
		if !seen[q.Category] {
			seen[q.Category] = true
			out = append(out, q.Category)
		}
	}
	return out
}

// CountByCategory returns the number of catalog questions in the category.
func CountByCategory(category models.Category) int {
	n := 0
	for _, q := range questions {
		if q.Category == category {
			n++
		}
	}
	return n
}

// MaxOverallScore is the highest achievable overall score, derived from the
// live catalog rather than hard-coded so the level bands cannot silently
// desync if the catalog changes.
func MaxOverallScore() int {
	return Count() * MaxOptionValue
}
