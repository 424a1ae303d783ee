package Client

import (
	"bytes"
	"errors"
	"mime/multipart"
	"testing"
)

func TestSymptomString(t *testing.T) {
	form := &AnalysisForm{Symptoms: []string{"Cough", "Fever", "Shortness of breath"}}
	if got := form.SymptomString(); got != "Cough, Fever, Shortness of breath" {
		t.Errorf("SymptomString() = %q", got)
	}

	form.Symptoms = nil
	if got := form.SymptomString(); got != "None reported" {
		t.Errorf("no symptoms: got %q, want None reported", got)
	}
}

func TestSelectFileRejectsNonImage(t *testing.T) {
	form := &AnalysisForm{}
	if err := form.SelectFile("xray.png", pngBytes); err != nil {
		t.Fatalf("SelectFile image: %v", err)
	}

	err := form.SelectFile("notes.txt", []byte("plain text, not an x-ray"))
	if !errors.Is(err, ErrNotAnImage) {
		t.Fatalf("got %v, want ErrNotAnImage", err)
	}

	// A rejected pick must not disturb the existing selection.
	if file := form.SelectedFile(); file == nil || file.Name != "xray.png" {
		t.Errorf("selection changed after rejected pick: %+v", file)
	}
}

func TestValidateRequiresFile(t *testing.T) {
	form := &AnalysisForm{PatientName: "Jane Doe", PatientAge: 34, PatientGender: "Female"}
	if err := form.Validate(); !errors.Is(err, ErrNoFileSelected) {
		t.Errorf("got %v, want ErrNoFileSelected", err)
	}
}

func TestWriteMultipartOmitsBlankOptionals(t *testing.T) {
	form := &AnalysisForm{
		PatientName:   "Jane Doe",
		PatientAge:    34,
		PatientGender: "Female",
		Symptoms:      []string{"Cough"},
	}
	if err := form.SelectFile("xray.png", pngBytes); err != nil {
		t.Fatalf("SelectFile: %v", err)
	}

	fields := writeAndParse(t, form)

	for _, absent := range []string{"medical_history", "temperature", "oxygen_saturation", "heart_rate", "respiratory_rate"} {
		if _, ok := fields[absent]; ok {
			t.Errorf("blank optional %q was sent; it must be omitted", absent)
		}
	}
	if fields["patient_name"] != "Jane Doe" || fields["patient_age"] != "34" {
		t.Errorf("required fields = %v", fields)
	}
	if fields["symptoms"] != "Cough" {
		t.Errorf("symptoms = %q", fields["symptoms"])
	}
}

func TestWriteMultipartIncludesProvidedVitals(t *testing.T) {
	temp := 38.5
	spo2 := 94
	form := &AnalysisForm{
		PatientName:      "Jane Doe",
		PatientAge:       34,
		PatientGender:    "Female",
		MedicalHistory:   "Asthma",
		Temperature:      &temp,
		OxygenSaturation: &spo2,
	}
	if err := form.SelectFile("xray.png", pngBytes); err != nil {
		t.Fatalf("SelectFile: %v", err)
	}

	fields := writeAndParse(t, form)

	if fields["temperature"] != "38.5" {
		t.Errorf("temperature = %q", fields["temperature"])
	}
	if fields["oxygen_saturation"] != "94" {
		t.Errorf("oxygen_saturation = %q", fields["oxygen_saturation"])
	}
	if fields["medical_history"] != "Asthma" {
		t.Errorf("medical_history = %q", fields["medical_history"])
	}
	if fields["symptoms"] != "None reported" {
		t.Errorf("symptoms = %q", fields["symptoms"])
	}
}

func writeAndParse(t *testing.T, form *AnalysisForm) map[string]string {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if err := form.WriteMultipart(writer); err != nil {
		t.Fatalf("WriteMultipart: %v", err)
	}
	writer.Close()

	reader := multipart.NewReader(&body, writer.Boundary())
	parsed, err := reader.ReadForm(1 << 20)
	if err != nil {
		t.Fatalf("ReadForm: %v", err)
	}

	if len(parsed.File["image"]) != 1 {
		t.Fatalf("expected exactly one image part, got %d", len(parsed.File["image"]))
	}

	fields := make(map[string]string)
	for name, values := range parsed.Value {
		fields[name] = values[0]
	}
	return fields
}
