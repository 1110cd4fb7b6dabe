package dtos

import "github.com/justsurfingit/job-board/internal/models"

// JobView is a job as listed to clients, with its employer's names.
type JobView struct {
	models.Job
	EmployerName string   `json:"employer_name"`
	CompanyName  string   `json:"company_name"`
	Distance     *float64 `json:"distance,omitempty"` // km, proximity search only
}

func NewJobView(j models.Job) JobView {
	return JobView{Job: j, EmployerName: j.Employer.Name, CompanyName: j.Employer.CompanyName}
}

// TalentView is an employee found by proximity search. Email is withheld.
type TalentView struct {
	ID         uint     `json:"id"`
	Name       string   `json:"name"`
	Education  string   `json:"education"`
	Skills     []string `json:"skills"`
	Experience int      `json:"experience"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
	Distance   float64  `json:"distance"`
}

// Applicant is the employee side of an application, as employers see it.
type Applicant struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Education  string   `json:"education"`
	Skills     []string `json:"skills"`
	Experience int      `json:"experience"`
}

func NewApplicant(e models.Employee) Applicant {
	return Applicant{
		Name:       e.Name,
		Email:      e.Email,
		Education:  e.Education,
		Skills:     NonNilSkills(e.Skills),
		Experience: e.Experience,
	}
}

// EmployeeApplicationView is one of an employee's own applications.
type EmployeeApplicationView struct {
	models.Application
	JobTitle    string `json:"job_title"`
	TimeSlot    string `json:"time_slot"`
	CompanyName string `json:"company_name"`
}

// EmployerApplicationView is an application received for one of the employer's jobs.
type EmployerApplicationView struct {
	models.Application
	Applicant
	JobTitle string `json:"job_title"`
}

type ApplicationDetail struct {
	models.Application
	Applicant
	JobTitle       string `json:"job_title"`
	JobDescription string `json:"job_description"`
	CompanyName    string `json:"company_name"`
}

// NonNilSkills makes sure skills encode as [] rather than null.
func NonNilSkills(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
