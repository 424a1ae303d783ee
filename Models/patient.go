package Models

import (
	"gorm.io/gorm"
)

// Patient is a per-analysis snapshot, not a longitudinal chart. Patients are
// matched by name on intake and never edited afterwards.
type Patient struct {
	gorm.Model
	Name           string     `json:"name"`
	Age            int        `json:"age"`
	Gender         string     `json:"gender"`
	MedicalHistory string     `gorm:"type:text" json:"medical_history"`
	Analyses       []Analysis `gorm:"foreignKey:PatientID" json:"-"`
}

func FindOrCreatePatient(name string, age int, gender string, medicalHistory string) (Patient, error) {
	var patient Patient

	err := DB.Where("name = ?", name).First(&patient).Error
	if err == nil {
		return patient, nil
	}

	patient = Patient{
		Name:           name,
		Age:            age,
		Gender:         gender,
		MedicalHistory: medicalHistory,
	}
	if err := DB.Create(&patient).Error; err != nil {
		return Patient{}, err
	}

	return patient, nil
}
