// Package report renders the printable results document handed to the
// respondent after completion.
package report

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/ndevrinc/outdoor-quiz/internal/catalog"
	"github.com/ndevrinc/outdoor-quiz/internal/models"
)

type categoryView struct {
	Name            string
	Icon            string
	Score           int
	MaxScore        int
	Percentage      int
	Recommendations []string
}

type reportData struct {
	Website          string
	Email            string
	CompletedAt      string
	OverallScore     int
	MaxOverallScore  int
	Level            string
	LevelIcon        string
	LevelDescription string
	QuickWinTip      string
	Categories       []categoryView
	ActionPlanFocus  string
	ActionPlanItems  []string
}

// Render produces the standalone printable HTML document for a completed
// assessment.
func Render(result models.AssessmentResult, gate models.EmailGateData) ([]byte, error) {
	data := reportData{
		Website:          gate.Website,
		Email:            gate.Email,
		CompletedAt:      result.CompletedAt.Format("January 2, 2006"),
		OverallScore:     result.OverallScore,
		MaxOverallScore:  catalog.MaxOverallScore(),
		Level:            string(result.Level),
		LevelIcon:        result.LevelIcon,
		LevelDescription: result.LevelDescription,
		QuickWinTip:      result.QuickWinTip,
		ActionPlanFocus:  actionPlanFocus(result.Level),
		ActionPlanItems:  actionPlanItems(result.Level),
	}

	for _, cs := range result.CategoryScores {
		data.Categories = append(data.Categories, categoryView{
			Name:            string(cs.Category),
			Icon:            categoryIcon(cs.Category),
			Score:           cs.Score,
			MaxScore:        cs.MaxScore,
			Percentage:      cs.Percentage,
			Recommendations: cs.Recommendations,
		})
	}

	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}
	return buf.Bytes(), nil
}

func categoryIcon(category models.Category) string {
	switch category {
	case models.CategoryAudienceExperience:
		return "📱"
	case models.CategoryCreatorExperience:
		return "✏️"
	case models.CategoryDeveloperExperience:
		return "⚙️"
	case models.CategoryBusinessImpact:
		return "💰"
	default:
		return "📊"
	}
}

func actionPlanFocus(level models.ReadinessLevel) string {
	switch level {
	case models.LevelSummitReady:
		return "🎯 Advanced Optimization Focus"
	case models.LevelBaseCampStrong:
		return "⚡ Performance & Scale Focus"
	case models.LevelTrailReady:
		return "🔧 Foundation Strengthening Focus"
	default:
		return "🚀 Platform Transformation Focus"
	}
}

func actionPlanItems(level models.ReadinessLevel) []string {
	switch level {
	case models.LevelSummitReady:
		return []string{
			"Implement AI-powered personalization engines for enhanced customer experience",
			"Deploy advanced analytics and attribution modeling for better ROI tracking",
			"Accelerate international expansion with multi-currency capabilities",
			"Integrate emerging technologies (AR/VR) for immersive product experiences",
			"Optimize for voice commerce and next-generation interfaces",
		}
	case models.LevelBaseCampStrong:
		return []string{
			"Implement advanced CDN and caching optimization for 40%+ performance improvement",
			"Set up content workflow automation to streamline publishing processes",
			"Create integration enhancement roadmap for better system connectivity",
			"Deploy advanced security and compliance measures for enterprise readiness",
			"Establish automated monitoring and alerting systems",
		}
	case models.LevelTrailReady:
		return []string{
			"Prioritize mobile experience optimization for better conversion rates",
			"Implement basic content management workflow improvements",
			"Conduct comprehensive performance audit and implement fixes",
			"Set up essential integrations for core business functions",
			"Establish proper development and staging environments",
		}
	default:
		return []string{
			"Begin comprehensive platform migration planning and assessment",
			"Evaluate WordPress VIP and other enterprise solutions",
			"Conduct legacy system assessment and data migration planning",
			"Set up foundation infrastructure for scalable growth",
			"Establish basic security measures and backup procedures",
		}
	}
}

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Adventure Commerce Readiness Assessment Results</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            line-height: 1.6; color: #1f2937; background: #ffffff;
            padding: 40px; max-width: 800px; margin: 0 auto;
        }
        .header { text-align: center; margin-bottom: 40px; padding-bottom: 30px; border-bottom: 3px solid #fe1132; }
        .logo { font-size: 48px; margin-bottom: 20px; }
        .title { font-size: 32px; font-weight: bold; margin-bottom: 10px; }
        .subtitle { font-size: 18px; color: #6b7280; font-style: italic; }
        .company-info { background: #f9fafb; padding: 20px; border-radius: 4px; margin-bottom: 30px; border-left: 4px solid #fe1132; }
        .company-info h3 { margin-bottom: 10px; font-size: 18px; }
        .company-info p { margin: 5px 0; color: #4b5563; }
        .overall-score { text-align: center; background: #f9fafb; padding: 40px; border-radius: 6px; margin-bottom: 40px; border: 2px solid #e5e7eb; }
        .score-icon { font-size: 48px; }
        .score-number { font-size: 48px; font-weight: bold; }
        .score-level { font-size: 24px; font-weight: bold; margin: 10px 0; }
        .score-description { color: #4b5563; }
        .quick-tip { background: #fef9f2; border: 1px solid #fbd38d; border-radius: 4px; padding: 20px; margin-bottom: 40px; }
        .quick-tip h4 { margin-bottom: 8px; }
        .section-title { font-size: 24px; margin-bottom: 20px; }
        .category-card { border: 1px solid #e5e7eb; border-radius: 6px; padding: 20px; margin-bottom: 20px; }
        .category-header { display: flex; justify-content: space-between; margin-bottom: 10px; }
        .category-name { font-size: 18px; font-weight: bold; }
        .category-score { text-align: right; }
        .progress-bar { background: #e5e7eb; border-radius: 4px; height: 8px; margin: 10px 0; }
        .progress-fill { background: #fe1132; border-radius: 4px; height: 8px; }
        .recommendations h5 { margin: 10px 0 5px; }
        .recommendations li { margin-left: 20px; color: #4b5563; }
        .action-plan { background: #f9fafb; padding: 30px; border-radius: 6px; margin: 40px 0; }
        .action-plan h3 { margin-bottom: 10px; }
        .action-plan h4 { margin-bottom: 15px; color: #4b5563; }
        .action-plan li { margin: 8px 0 8px 20px; }
        .footer { text-align: center; margin-top: 40px; padding-top: 30px; border-top: 1px solid #e5e7eb; color: #6b7280; }
        .tagline { font-style: italic; margin-top: 10px; }
        @media print { body { padding: 20px; } }
    </style>
</head>
<body>
    <div class="header">
        <div class="logo">🏔️</div>
        <h1 class="title">Adventure Commerce Readiness Assessment</h1>
        <p class="subtitle">Results Report</p>
    </div>

    <div class="company-info">
        <h3>Assessment Details</h3>
        <p><strong>Company Website:</strong> {{.Website}}</p>
        <p><strong>Contact Email:</strong> {{.Email}}</p>
        <p><strong>Assessment Date:</strong> {{.CompletedAt}}</p>
    </div>

    <div class="overall-score">
        <div class="score-icon">{{.LevelIcon}}</div>
        <div class="score-number">{{.OverallScore}}/{{.MaxOverallScore}}</div>
        <div class="score-level">{{.Level}}</div>
        <p class="score-description">{{.LevelDescription}}</p>
    </div>

    <div class="quick-tip">
        <h4>🎯 Quick Win Tip</h4>
        <p>{{.QuickWinTip}}</p>
    </div>

    <div class="section">
        <h2 class="section-title">Category Breakdown</h2>
        {{range .Categories}}
        <div class="category-card">
            <div class="category-header">
                <div class="category-name"><span>{{.Icon}}</span> {{.Name}}</div>
                <div class="category-score">
                    <div>{{.Score}}/{{.MaxScore}}</div>
                    <div>{{.Percentage}}%</div>
                </div>
            </div>
            <div class="progress-bar">
                <div class="progress-fill" style="width: {{.Percentage}}%"></div>
            </div>
            <div class="recommendations">
                <h5>Priority Recommendations:</h5>
                <ul>
                    {{range .Recommendations}}<li>{{.}}</li>{{end}}
                </ul>
            </div>
        </div>
        {{end}}
    </div>

    <div class="action-plan">
        <h3>Your Personalized Action Plan</h3>
        <h4>{{.ActionPlanFocus}}</h4>
        <ol>
            {{range .ActionPlanItems}}<li>{{.}}</li>{{end}}
        </ol>
    </div>

    <div class="footer">
        <p>This report was generated by the Adventure Commerce Readiness Assessment</p>
        <p class="tagline">"Build Adventure-Grade Commerce on Publisher-Grade Infrastructure"</p>
    </div>
</body>
</html>
`))
