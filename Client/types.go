package Client

// TokenResponse is the shared success shape of login and register.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	DoctorName  string `json:"doctor_name"`
	DoctorID    uint   `json:"doctor_id"`
}

type RegisterProfile struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required,min=8"`
	Specialty     string `json:"specialty" validate:"required"`
	LicenseNumber string `json:"license_number" validate:"required"`
}

type AnalysisResult struct {
	AnalysisID      uint     `json:"analysis_id"`
	Disease         string   `json:"disease"`
	Severity        string   `json:"severity"`
	Confidence      float64  `json:"confidence"`
	AffectedRegions []string `json:"affected_regions"`
	Recommendations []string `json:"recommendations"`
	GradcamImage    string   `json:"gradcam_image"`
	ReportPath      string   `json:"report_path"`
	Timestamp       string   `json:"timestamp"`
}

type Record struct {
	ID              uint    `json:"id"`
	PatientName     string  `json:"patient_name"`
	PatientAge      int     `json:"patient_age"`
	PatientGender   string  `json:"patient_gender"`
	Disease         string  `json:"disease"`
	Severity        string  `json:"severity"`
	Confidence      float64 `json:"confidence"`
	Timestamp       string  `json:"timestamp"`
	ReportAvailable bool    `json:"report_available"`
}

type RecordsResponse struct {
	Records []Record `json:"records"`
}

type PatientDetail struct {
	Name           string `json:"name"`
	Age            int    `json:"age"`
	Gender         string `json:"gender"`
	MedicalHistory string `json:"medical_history"`
}

// VitalSigns mirrors the optional vitals; a nil field was never recorded.
type VitalSigns struct {
	Temperature      *float64 `json:"temperature"`
	OxygenSaturation *int     `json:"oxygen_saturation"`
	HeartRate        *int     `json:"heart_rate"`
	RespiratoryRate  *int     `json:"respiratory_rate"`
}

type AnalysisDetail struct {
	Disease          string     `json:"disease"`
	Severity         string     `json:"severity"`
	Confidence       float64    `json:"confidence"`
	Symptoms         string     `json:"symptoms"`
	VitalSigns       VitalSigns `json:"vital_signs"`
	Recommendations  string     `json:"recommendations"`
	Timestamp        string     `json:"timestamp"`
	GradcamAvailable bool       `json:"gradcam_available"`
}

type RecordDetail struct {
	Patient  PatientDetail  `json:"patient"`
	Analysis AnalysisDetail `json:"analysis"`
}

type Stats struct {
	TotalAnalyses       int64            `json:"total_analyses"`
	DiseaseDistribution map[string]int64 `json:"disease_distribution"`
	RecentCount         int              `json:"recent_count"`
}

// ReportDownload is the result of a report export: raw PDF bytes plus the
// filename the save-as dialog should offer.
type ReportDownload struct {
	Filename string
	Data     []byte
}
