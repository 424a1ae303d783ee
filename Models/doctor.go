package Models

import (
	"errors"
	"html"
	"strings"

	"ChestVision/Utils/Token"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Doctor struct {
	gorm.Model
	Name          string     `gorm:"size:255;not null" json:"name"`
	Email         string     `gorm:"size:255;not null;unique" json:"email"`
	Password      string     `gorm:"size:255;not null;" json:"password"`
	Specialty     string     `json:"specialty"`
	LicenseNumber string     `gorm:"unique" json:"license_number"`
	Analyses      []Analysis `gorm:"foreignKey:DoctorID" json:"-"`
}

func GetDoctorByID(uid uint) (Doctor, error) {
	var doctor Doctor

	if err := DB.First(&doctor, uid).Error; err != nil {
		return doctor, errors.New("Doctor not found")
	}

	doctor.PrepareGive()

	return doctor, nil
}

func EmailTaken(email string) (bool, error) {
	var count int64
	err := DB.Model(&Doctor{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (doctor *Doctor) PrepareGive() {
	doctor.Password = ""
}

func VerifyPassword(password, hashedPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func LoginCheck(email string, password string) (uint, string, error) {

	var err error

	doctor := Doctor{}

	err = DB.Model(Doctor{}).Where("email = ?", email).Take(&doctor).Error

	if err != nil {
		return 0, "", err
	}

	// Any verification failure refuses the login, a corrupt stored hash
	// included, not just a wrong password.
	err = VerifyPassword(password, doctor.Password)

	if err != nil {
		return 0, "", err
	}

	token, err := Token.GenerateToken(doctor.ID)

	if err != nil {
		return 0, "", err
	}

	return doctor.ID, token, nil

}

func (doctor *Doctor) SaveDoctor() (*Doctor, error) {

	if err := doctor.BeforeSave(); err != nil {
		return &Doctor{}, err
	}

	if err := DB.Create(&doctor).Error; err != nil {
		return &Doctor{}, err
	}

	return doctor, nil
}

func (doctor *Doctor) BeforeSave() error {

	//turn password into hash
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(doctor.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	doctor.Password = string(hashedPassword)

	//remove spaces in email
	doctor.Email = html.EscapeString(strings.TrimSpace(doctor.Email))

	return nil

}
