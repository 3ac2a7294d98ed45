package scoring

import (
	"github.com/ndevrinc/outdoor-quiz/internal/models"
)

// Pre-authored recommendation lists, four entries per (category, tier) pair.
var recommendationTable = map[models.Category]map[models.RecommendationTier][]string{
	models.CategoryAudienceExperience: {
		models.TierHigh: {
			"Implement AI-powered personalization for adventure gear recommendations",
			"Add augmented reality features for gear visualization on vehicles",
			"Optimize for voice commerce and emerging mobile technologies",
			"Create immersive 360° product experiences with adventure context",
		},
		models.TierMedium: {
			"Implement advanced caching and CDN for global performance",
			"Add progressive web app features for offline browsing",
			"Enhance mobile checkout flow to match desktop conversion rates",
			"Create vehicle-specific product recommendation engines",
		},
		models.TierLow: {
			"Prioritize mobile-first responsive design optimization",
			"Implement basic CDN for improved loading speeds",
			"Create simple vehicle fitment guides and compatibility charts",
			"Optimize images for mobile and slow connections",
		},
	},
	models.CategoryCreatorExperience: {
		models.TierHigh: {
			"Implement advanced editorial workflows with AI content suggestions",
			"Create automated seasonal content planning and publishing",
			"Build advanced UGC curation with automated rights management",
			"Develop cross-brand content syndication and governance",
		},
		models.TierMedium: {
			"Set up content workflow automation and approval processes",
			"Implement basic UGC collection and display systems",
			"Create shared content libraries across sub-brands",
			"Add collaborative editing and review workflows",
		},
		models.TierLow: {
			"Implement basic content management system with user roles",
			"Create simple editorial calendar and planning tools",
			"Set up basic social media content integration",
			"Establish content approval and publishing workflows",
		},
	},
	models.CategoryDeveloperExperience: {
		models.TierHigh: {
			"Implement microservices architecture for ultimate scalability",
			"Add advanced API management and developer portal",
			"Create custom integrations with outdoor industry platforms",
			"Implement advanced security monitoring and threat detection",
		},
		models.TierMedium: {
			"Set up proper CI/CD pipeline with automated testing",
			"Implement API-first architecture for better integrations",
			"Add comprehensive security monitoring and compliance",
			"Create staging and development environment workflows",
		},
		models.TierLow: {
			"Establish basic development and staging environments",
			"Implement fundamental security measures and SSL",
			"Set up basic API endpoints for essential integrations",
			"Create simple deployment and backup procedures",
		},
	},
	models.CategoryBusinessImpact: {
		models.TierHigh: {
			"Implement advanced attribution modeling for content ROI",
			"Create predictive analytics for inventory and demand planning",
			"Build advanced international commerce capabilities",
			"Develop custom analytics for outdoor industry insights",
		},
		models.TierMedium: {
			"Set up content-to-commerce attribution tracking",
			"Implement multi-currency and basic international features",
			"Create comprehensive analytics dashboards",
			"Add automated reporting for key business metrics",
		},
		models.TierLow: {
			"Implement basic Google Analytics and conversion tracking",
			"Set up simple sales and performance reporting",
			"Create basic customer journey and funnel analysis",
			"Establish key performance indicator monitoring",
		},
	},
}

// TierForRatio maps a category score ratio to a recommendation tier.
// Boundaries are inclusive: exactly 0.7 is high, exactly 0.4 is medium.
func TierForRatio(ratio float64) models.RecommendationTier {
	switch {
	case ratio >= 0.7:
		return models.TierHigh
	case ratio >= 0.4:
		return models.TierMedium
	default:
		return models.TierLow
	}
}

// RecommendationsFor returns the pre-authored list for the category at the
// tier implied by score/maxScore.
func RecommendationsFor(category models.Category, score, maxScore int) []string {
	tiers, ok := recommendationTable[category]
	if !ok {
		return []string{}
	}
	ratio := 0.0
	if maxScore > 0 {
		ratio = float64(score) / float64(maxScore)
	}
	return tiers[TierForRatio(ratio)]
}
