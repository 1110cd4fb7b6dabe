package services

import (
	"context"
	"errors"

	"github.com/justsurfingit/job-board/internal/dtos"
	"github.com/justsurfingit/job-board/internal/events"
	"github.com/justsurfingit/job-board/internal/models"
	"gorm.io/gorm"
)

const msgAlreadyApplied = "You have already applied for this job"

type ApplicationService struct {
	DB     *gorm.DB
	Events events.Publisher
}

func NewApplicationService(db *gorm.DB, pub events.Publisher) *ApplicationService {
	if pub == nil {
		pub = events.Noop{}
	}
	return &ApplicationService{DB: db, Events: pub}
}

// Apply files an application from employeeID to an open job.
func (s *ApplicationService) Apply(ctx context.Context, jobID, employeeID uint, coverLetter string) (*models.Application, error) {
	app := &models.Application{
		JobID:       jobID,
		EmployeeID:  employeeID,
		CoverLetter: coverLetter,
		Status:      models.ApplicationStatusWaiting,
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var job models.Job
		if err := first(tx, &job, jobID, "Job"); err != nil {
			return err
		}
		if job.Status != models.JobStatusOpen {
			return invalid("This job is no longer accepting applications")
		}

		var employee models.Employee
		if err := first(tx, &employee, employeeID, "Employee"); err != nil {
			return err
		}

		var count int64
		err := tx.Model(&models.Application{}).
			Where("job_id = ? AND employee_id = ?", jobID, employeeID).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return invalid(msgAlreadyApplied)
		}

		if err := tx.Create(app).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return invalid(msgAlreadyApplied)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	ev := events.New(events.ApplicationSubmitted)
	ev.ApplicationID = app.ID
	ev.JobID = jobID
	ev.EmployeeID = employeeID
	ev.Status = app.Status
	publish(ctx, s.Events, ev)

	return app, nil
}

// UpdateStatus moves a waiting application to status. Only the employer
// who posted the job may do so.
func (s *ApplicationService) UpdateStatus(ctx context.Context, appID, employerID uint, status string) (*models.Application, error) {
	if !models.ValidApplicationStatus(status) {
		return nil, invalid("Invalid status. Must be: waiting, accepted, or rejected")
	}

	var app models.Application
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := first(tx.Preload("Job"), &app, appID, "Application"); err != nil {
			return err
		}
		if app.Job.EmployerID != employerID {
			return forbidden("You are not authorized to update this application")
		}

		if err := models.CanTransition(app.Status, status); err != nil {
			if errors.Is(err, models.ErrStatusLocked) {
				return invalid("Cannot change status of an application that has already been %s", app.Status)
			}
			return invalid("Invalid status. Must be: waiting, accepted, or rejected")
		}

		// Only a row still waiting may change, so a concurrent decision wins.
		res := tx.Model(&models.Application{}).
			Where("id = ? AND status = ?", app.ID, models.ApplicationStatusWaiting).
			Update("status", status)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var current models.Application
			if err := first(tx, &current, app.ID, "Application"); err != nil {
				return err
			}
			return invalid("Cannot change status of an application that has already been %s", current.Status)
		}
		app.Status = status
		return nil
	})
	if err != nil {
		return nil, err
	}

	ev := events.New(events.ApplicationStatusChanged)
	ev.ApplicationID = app.ID
	ev.JobID = app.JobID
	ev.EmployerID = employerID
	ev.EmployeeID = app.EmployeeID
	ev.Status = status
	publish(ctx, s.Events, ev)

	return &app, nil
}

// GetApplication returns an application with its applicant and job. Only
// the applicant and the employer who posted the job may see it.
func (s *ApplicationService) GetApplication(ctx context.Context, appID uint, userType string, userID uint) (*dtos.ApplicationDetail, error) {
	var app models.Application
	q := s.DB.WithContext(ctx).Preload("Job.Employer").Preload("Employee")
	if err := first(q, &app, appID, "Application"); err != nil {
		return nil, err
	}

	switch {
	case userType == models.UserTypeEmployee && app.EmployeeID == userID:
	case userType == models.UserTypeEmployer && app.Job.EmployerID == userID:
	default:
		return nil, forbidden("You are not authorized to view this application")
	}

	return &dtos.ApplicationDetail{
		Application:    app,
		Applicant:      dtos.NewApplicant(app.Employee),
		JobTitle:       app.Job.Title,
		JobDescription: app.Job.Description,
		CompanyName:    app.Job.Employer.CompanyName,
	}, nil
}

// EmployerApplications lists the applications received across all of the
// employer's jobs, newest first.
func (s *ApplicationService) EmployerApplications(ctx context.Context, employerID uint) ([]dtos.EmployerApplicationView, error) {
	db := s.DB.WithContext(ctx)
	if err := first(db, &models.Employer{}, employerID, "Employer"); err != nil {
		return nil, err
	}

	var apps []models.Application
	err := db.Preload("Job").Preload("Employee").
		Where("job_id IN (?)", db.Model(&models.Job{}).Select("id").Where("employer_id = ?", employerID)).
		Order("applied_at DESC, id DESC").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}

	views := make([]dtos.EmployerApplicationView, 0, len(apps))
	for _, a := range apps {
		views = append(views, dtos.EmployerApplicationView{
			Application: a,
			Applicant:   dtos.NewApplicant(a.Employee),
			JobTitle:    a.Job.Title,
		})
	}
	return views, nil
}

// EmployeeApplications lists the employee's own applications, newest first.
func (s *ApplicationService) EmployeeApplications(ctx context.Context, employeeID uint) ([]dtos.EmployeeApplicationView, error) {
	db := s.DB.WithContext(ctx)
	if err := first(db, &models.Employee{}, employeeID, "Employee"); err != nil {
		return nil, err
	}

	var apps []models.Application
	err := db.Preload("Job.Employer").
		Where("employee_id = ?", employeeID).
		Order("applied_at DESC, id DESC").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}

	views := make([]dtos.EmployeeApplicationView, 0, len(apps))
	for _, a := range apps {
		views = append(views, dtos.EmployeeApplicationView{
			Application: a,
			JobTitle:    a.Job.Title,
			TimeSlot:    a.Job.TimeSlot,
			CompanyName: a.Job.Employer.CompanyName,
		})
	}
	return views, nil
}
