package Models

import (
	"errors"

	"gorm.io/gorm"
)

// Analysis is one inference run over one uploaded image. Rows are immutable
// once created, except for the report path filled in right after generation.
// Vital signs are pointers: an absent reading is not a zero reading.
type Analysis struct {
	gorm.Model
	PatientID        uint     `json:"patient_id"`
	Patient          Patient  `json:"-"`
	DoctorID         uint     `json:"doctor_id"`
	Disease          string   `gorm:"not null" json:"disease"`
	Severity         string   `json:"severity"`
	Confidence       float64  `json:"confidence"`
	Symptoms         string   `gorm:"type:text" json:"symptoms"`
	Temperature      *float64 `json:"temperature" gorm:"default:null"`
	OxygenSaturation *int     `json:"oxygen_saturation" gorm:"default:null"`
	HeartRate        *int     `json:"heart_rate" gorm:"default:null"`
	RespiratoryRate  *int     `json:"respiratory_rate" gorm:"default:null"`
	Recommendations  string   `gorm:"type:text" json:"recommendations"`
	ImagePath        string   `json:"image_path"`
	GradcamPath      string   `json:"gradcam_path"`
	ReportPath       string   `json:"report_path"`
}

func FetchAnalyses(doctorID uint) ([]Analysis, error) {
	var analyses []Analysis
	err := DB.Model(&Analysis{}).
		Where("doctor_id = ?", doctorID).
		Preload("Patient").
		Order("created_at desc").
		Find(&analyses).Error
	if err != nil {
		return nil, err
	}
	return analyses, nil
}

func GetAnalysisForDoctor(analysisID uint, doctorID uint) (Analysis, error) {
	var analysis Analysis
	err := DB.Model(&Analysis{}).
		Where("id = ? AND doctor_id = ?", analysisID, doctorID).
		Preload("Patient").
		First(&analysis).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Analysis{}, errors.New("Analysis not found")
		}
		return Analysis{}, err
	}
	return analysis, nil
}

func CountAnalyses(doctorID uint) (int64, error) {
	var count int64
	if err := DB.Model(&Analysis{}).Where("doctor_id = ?", doctorID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func DiseaseDistribution(doctorID uint) (map[string]int64, error) {
	type diseaseCount struct {
		Disease string
		Count   int64
	}

	var counts []diseaseCount
	err := DB.Model(&Analysis{}).
		Select("disease, count(*) as count").
		Where("doctor_id = ?", doctorID).
		Group("disease").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}

	distribution := make(map[string]int64, len(counts))
	for _, dc := range counts {
		distribution[dc.Disease] = dc.Count
	}
	return distribution, nil
}

func RecentAnalysesCount(doctorID uint, limit int) (int, error) {
	var analyses []Analysis
	err := DB.Model(&Analysis{}).
		Where("doctor_id = ?", doctorID).
		Order("created_at desc").
		Limit(limit).
		Find(&analyses).Error
	if err != nil {
		return 0, err
	}
	return len(analyses), nil
}
