package Inference

import (
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSeverityFor(t *testing.T) {
	cases := []struct {
		disease    string
		confidence float64
		want       string
	}{
		{"Normal", 99.0, "None"},
		{"COVID-19", 95.0, "Severe"},
		{"COVID-19", 90.0, "Severe"},
		{"COVID-19", 89.9, "Moderate"},
		{"COVID-19", 75.0, "Moderate"},
		{"COVID-19", 74.9, "Mild"},
	}

	for _, tc := range cases {
		if got := severityFor(tc.disease, tc.confidence); got != tc.want {
			t.Errorf("severityFor(%q, %.1f) = %q, want %q", tc.disease, tc.confidence, got, tc.want)
		}
	}
}

func TestRegionsForUnknownDisease(t *testing.T) {
	got := regionsFor("Aspergillosis")
	if len(got) != 1 || got[0] != "Bilateral lung fields" {
		t.Errorf("regionsFor fallback = %v", got)
	}

	if regions := regionsFor("Normal"); len(regions) != 0 {
		t.Errorf("Normal must report no regions, got %v", regions)
	}
}

func TestRecommendationsSeverityOrdering(t *testing.T) {
	severe := recommendationsFor("Bacterial Pneumonia", "Severe")
	if severe[0] != "URGENT: Consider ICU admission" || severe[1] != "Immediate specialist consultation required" {
		t.Errorf("severe recommendations must lead with the urgent entries, got %v", severe[:2])
	}

	moderate := recommendationsFor("Bacterial Pneumonia", "Moderate")
	if moderate[0] != "Hospital admission recommended" {
		t.Errorf("moderate recommendations = %v", moderate)
	}

	mild := recommendationsFor("Bacterial Pneumonia", "Mild")
	if mild[0] != "Initiate broad-spectrum antibiotic therapy" {
		t.Errorf("mild recommendations must not carry admission entries, got %v", mild)
	}

	normal := recommendationsFor("Normal", "None")
	if len(normal) != 2 || normal[0] != "No immediate treatment required" {
		t.Errorf("normal recommendations = %v", normal)
	}
}

func TestPredictOutputRanges(t *testing.T) {
	imagePath := writeTestJPEG(t)
	engine := NewEngine()

	for i := 0; i < 25; i++ {
		prediction, err := engine.Predict(imagePath)
		if err != nil {
			t.Fatalf("Predict: %v", err)
		}
		if prediction.Disease == "Normal" {
			t.Error("reference engine never draws Normal")
		}
		if prediction.Confidence < 75 || prediction.Confidence >= 95 {
			t.Errorf("confidence %.2f out of range [75, 95)", prediction.Confidence)
		}
		if len(prediction.Recommendations) == 0 {
			t.Error("expected recommendations")
		}
		if prediction.GradcamPath == "" {
			t.Error("expected a gradcam path")
		}
	}
}

func TestPredictGradcamFallback(t *testing.T) {
	engine := NewEngine()

	prediction, err := engine.Predict("does/not/exist.jpg")
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if prediction.GradcamPath != "does/not/exist.jpg" {
		t.Errorf("heatmap failure must fall back to the source image, got %q", prediction.GradcamPath)
	}
}

func TestWriteGradcam(t *testing.T) {
	imagePath := writeTestJPEG(t)

	gradcamPath, err := WriteGradcam(imagePath)
	if err != nil {
		t.Fatalf("WriteGradcam: %v", err)
	}
	if !strings.HasPrefix(filepath.Base(gradcamPath), "gradcam_") {
		t.Errorf("gradcam filename = %q", filepath.Base(gradcamPath))
	}
	if info, err := os.Stat(gradcamPath); err != nil || info.Size() == 0 {
		t.Errorf("gradcam file missing or empty: %v", err)
	}
}

func writeTestJPEG(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "xray.jpg")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()

	img := image.NewGray(image.Rect(0, 0, 64, 64))
	if err := jpeg.Encode(f, img, nil); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return path
}
