package analysis

import (
	"math/rand/v2"

	"github.com/Freeeeeet/health_wallet/internal/model"
)

const disclaimer = "This AI analysis is for informational purposes only and should not replace professional medical advice. " +
	"Please consult with a qualified healthcare provider for proper diagnosis and treatment."

var summaries = map[string]string{
	model.AnalysisBasic: "Basic Analysis Summary: the medical report shows generally normal findings. " +
		"Most parameters are within normal reference ranges and no immediate red flags were identified.",
	model.AnalysisDetailed: "Detailed Medical Analysis: laboratory values are predominantly within normal ranges. " +
		"Low risk profile based on current results; preventive care and regular monitoring are suggested.",
	model.AnalysisComprehensive: "Comprehensive Medical Report Analysis: a generally healthy profile with several areas " +
		"for optimization. No urgent interventions required; routine follow-up within 1-3 months.",
}

// cannedResult собирает результат анализа без обращения к модели
func cannedResult(analysisType string) *model.AnalysisResult {
	summary, ok := summaries[analysisType]
	if !ok {
		summary = summaries[model.AnalysisBasic]
	}

	recommendations := []string{
		"Maintain regular exercise routine",
		"Follow balanced diet rich in fruits and vegetables",
		"Stay hydrated with adequate water intake",
		"Get regular sleep (7-9 hours per night)",
		"Schedule routine follow-up appointments",
	}
	if analysisType == model.AnalysisComprehensive {
		recommendations = append(recommendations,
			"Consider stress management techniques",
			"Monitor blood pressure regularly",
			"Maintain healthy weight range",
			"Avoid smoking and limit alcohol consumption",
		)
	}

	return &model.AnalysisResult{
		Analysis:        summary,
		Confidence:      0.7 + rand.Float64()*0.3,
		Recommendations: recommendations,
		RiskFactors: []model.RiskFactor{
			{Factor: "Age-related changes", Level: "Low", Description: "Normal aging process considerations"},
			{Factor: "Lifestyle factors", Level: "Moderate", Description: "Areas for optimization identified"},
			{Factor: "Genetic predisposition", Level: "Unknown", Description: "Family history assessment recommended"},
		},
		FollowUpSuggestions: []string{
			"Schedule routine check-up in 6 months",
			"Discuss results with primary care physician",
			"Consider preventive health screening updates",
			"Monitor any new symptoms or changes",
		},
		Disclaimer: disclaimer,
	}
}
