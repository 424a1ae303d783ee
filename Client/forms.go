package Client

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// NoSymptomsReported is sent when the doctor checked no symptom boxes.
const NoSymptomsReported = "None reported"

var (
	ErrNotAnImage     = errors.New("Please select an image file")
	ErrNoFileSelected = errors.New("Please select an X-ray image first")
)

var validate = validator.New()

// SelectedFile is the single file slot of the upload form.
type SelectedFile struct {
	Name string
	MIME string
	Data []byte
}

// AnalysisForm assembles one analysis request: patient fields, checked
// symptoms, optional vitals and exactly one selected image.
type AnalysisForm struct {
	PatientName    string `validate:"required"`
	PatientAge     int    `validate:"gt=0"`
	PatientGender  string `validate:"required"`
	Symptoms       []string
	MedicalHistory string

	Temperature      *float64
	OxygenSaturation *int
	HeartRate        *int
	RespiratoryRate  *int

	file *SelectedFile
}

// SelectFile fills the file slot, replacing any previous choice. Non-image
// content is rejected and the slot is left untouched.
func (f *AnalysisForm) SelectFile(name string, data []byte) error {
	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return ErrNotAnImage
	}

	f.file = &SelectedFile{Name: name, MIME: mime, Data: data}
	return nil
}

func (f *AnalysisForm) SelectedFile() *SelectedFile {
	return f.file
}

// RemoveFile clears the slot, the explicit "remove" action in the form.
func (f *AnalysisForm) RemoveFile() {
	f.file = nil
}

// SymptomString joins the checked symptoms the way the server stores them.
func (f *AnalysisForm) SymptomString() string {
	if len(f.Symptoms) == 0 {
		return NoSymptomsReported
	}
	return strings.Join(f.Symptoms, ", ")
}

// Validate runs every local precondition before any network traffic.
func (f *AnalysisForm) Validate() error {
	if f.file == nil {
		return ErrNoFileSelected
	}
	if err := validate.Struct(f); err != nil {
		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
			field := fieldErrors[0].Field()
			return &ValidationError{Field: field, Message: fmt.Sprintf("%s is required", field)}
		}
		return err
	}
	return nil
}

// WriteMultipart serializes the form. Blank optional fields are omitted
// entirely, never sent as empty strings.
func (f *AnalysisForm) WriteMultipart(w *multipart.Writer) error {
	if f.file == nil {
		return ErrNoFileSelected
	}

	fields := map[string]string{
		"patient_name":   f.PatientName,
		"patient_age":    strconv.Itoa(f.PatientAge),
		"patient_gender": f.PatientGender,
		"symptoms":       f.SymptomString(),
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return err
		}
	}

	if f.MedicalHistory != "" {
		if err := w.WriteField("medical_history", f.MedicalHistory); err != nil {
			return err
		}
	}
	if f.Temperature != nil {
		if err := w.WriteField("temperature", strconv.FormatFloat(*f.Temperature, 'f', -1, 64)); err != nil {
			return err
		}
	}
	if f.OxygenSaturation != nil {
		if err := w.WriteField("oxygen_saturation", strconv.Itoa(*f.OxygenSaturation)); err != nil {
			return err
		}
	}
	if f.HeartRate != nil {
		if err := w.WriteField("heart_rate", strconv.Itoa(*f.HeartRate)); err != nil {
			return err
		}
	}
	if f.RespiratoryRate != nil {
		if err := w.WriteField("respiratory_rate", strconv.Itoa(*f.RespiratoryRate)); err != nil {
			return err
		}
	}

	part, err := w.CreateFormFile("image", f.file.Name)
	if err != nil {
		return err
	}
	if _, err := part.Write(f.file.Data); err != nil {
		return err
	}

	return nil
}

// ValidateProfile checks a registration profile locally; the password-length
// rule runs here so a short password never reaches the server.
func ValidateProfile(profile RegisterProfile) error {
	if err := validate.Struct(profile); err != nil {
		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
			fe := fieldErrors[0]
			if fe.Field() == "Password" && fe.Tag() == "min" {
				return &ValidationError{Field: "Password", Message: "Password must be at least 8 characters"}
			}
			return &ValidationError{Field: fe.Field(), Message: fmt.Sprintf("%s is invalid", fe.Field())}
		}
		return err
	}
	return nil
}
