package models

import (
	"time"
)

const (
	UserTypeEmployer = "employer"
	UserTypeEmployee = "employee"
)

const (
	JobStatusOpen   = "open"
	JobStatusClosed = "closed"

	DefaultJobType = "Part-time"
)

type Employer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name         string   `gorm:"size:255;not null" json:"name"`
	Email        string   `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"size:255;not null" json:"-"`
	CompanyName  string   `gorm:"size:255;not null" json:"company_name"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`

	Jobs []Job `json:"jobs,omitempty"`
}

type Employee struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name         string   `gorm:"size:255;not null" json:"name"`
	Email        string   `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"size:255;not null" json:"-"`
	DOB          string   `gorm:"column:dob;size:32" json:"dob"`
	Education    string   `gorm:"type:text" json:"education"`
	Skills       []string `gorm:"type:text;serializer:json" json:"skills"`
	Experience   int      `gorm:"default:0" json:"experience"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
}

type Job struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Foreign Key
	EmployerID uint `gorm:"not null;index" json:"employer_id"`
	// Association: filled by Preload("Employer")
	Employer Employer `json:"-"`

	Title       string   `gorm:"size:255;not null" json:"title"`
	Description string   `gorm:"type:text;not null" json:"description"`
	Salary      *float64 `json:"salary"`
	JobType     string   `gorm:"size:64;default:'Part-time'" json:"job_type"`
	TimeSlot    string   `gorm:"size:255" json:"time_slot"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Status      string   `gorm:"size:16;default:'open';index" json:"status"`
}

type Application struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// One application per employee and job.
	JobID      uint     `gorm:"not null;uniqueIndex:idx_job_employee" json:"job_id"`
	Job        Job      `json:"-"`
	EmployeeID uint     `gorm:"not null;uniqueIndex:idx_job_employee;index" json:"employee_id"`
	Employee   Employee `json:"-"`

	CoverLetter string    `gorm:"type:text" json:"cover_letter"`
	Status      string    `gorm:"size:16;default:'waiting'" json:"status"`
	AppliedAt   time.Time `gorm:"autoCreateTime" json:"applied_at"`
}

// ValidJobStatus reports whether s is a job status.
func ValidJobStatus(s string) bool {
	return s == JobStatusOpen || s == JobStatusClosed
}

// ValidUserType reports whether t names one of the two account roles.
func ValidUserType(t string) bool {
	return t == UserTypeEmployer || t == UserTypeEmployee
}
