package services

import (
	"context"
	"strings"

	"github.com/justsurfingit/job-board/internal/dtos"
	"github.com/justsurfingit/job-board/internal/events"
	"github.com/justsurfingit/job-board/internal/geo"
	"github.com/justsurfingit/job-board/internal/models"
	"gorm.io/gorm"
)

type JobService struct {
	DB     *gorm.DB
	Events events.Publisher
}

func NewJobService(db *gorm.DB, pub events.Publisher) *JobService {
	if pub == nil {
		pub = events.Noop{}
	}
	return &JobService{
		DB:     db,
		Events: pub,
	}
}

// ListJobs returns every job, newest first. A non-empty status keeps only
// jobs with that status.
func (s *JobService) ListJobs(ctx context.Context, status string) ([]dtos.JobView, error) {
	q := s.DB.WithContext(ctx).Preload("Employer").Order("created_at DESC, id DESC")
	if status != "" {
		if !models.ValidJobStatus(status) {
			return nil, invalid("Invalid status filter. Must be: open or closed")
		}
		q = q.Where("status = ?", status)
	}

	var jobs []models.Job
	if err := q.Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobViews(jobs), nil
}

func (s *JobService) GetJob(ctx context.Context, id uint) (*dtos.JobView, error) {
	var job models.Job
	if err := first(s.DB.WithContext(ctx).Preload("Employer"), &job, id, "Job"); err != nil {
		return nil, err
	}
	v := dtos.NewJobView(job)
	return &v, nil
}

func (s *JobService) CreateJob(ctx context.Context, employerID uint, req *dtos.JobCreationRequest) (*models.Job, error) {
	db := s.DB.WithContext(ctx)

	var employer models.Employer
	if err := first(db, &employer, employerID, "Employer"); err != nil {
		return nil, err
	}

	jobType := strings.TrimSpace(req.JobType)
	if jobType == "" {
		jobType = models.DefaultJobType
	}

	job := &models.Job{
		EmployerID:  employer.ID,
		Title:       req.Title,
		Description: req.Description,
		Salary:      req.Salary,
		JobType:     jobType,
		TimeSlot:    req.TimeSlot,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Status:      models.JobStatusOpen,
	}
	if err := db.Create(job).Error; err != nil {
		return nil, err
	}

	ev := events.New(events.JobCreated)
	ev.JobID = job.ID
	ev.EmployerID = job.EmployerID
	publish(ctx, s.Events, ev)

	return job, nil
}

// UpdateJob applies the fields present in req to a job owned by employerID.
func (s *JobService) UpdateJob(ctx context.Context, jobID, employerID uint, req *dtos.JobUpdateRequest) (*models.Job, error) {
	db := s.DB.WithContext(ctx)

	job, err := ownedJob(db, jobID, employerID, "You are not authorized to update this job")
	if err != nil {
		return nil, err
	}
	if req.Empty() {
		return nil, invalid(msgNothingToUpdate)
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Salary != nil {
		job.Salary = req.Salary
	}
	if req.JobType != nil {
		job.JobType = *req.JobType
	}
	if req.TimeSlot != nil {
		job.TimeSlot = *req.TimeSlot
	}
	if req.Latitude != nil {
		job.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		job.Longitude = req.Longitude
	}
	if req.Status != nil {
		job.Status = *req.Status
	}

	if err := db.Save(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// DeleteJob removes a job owned by employerID along with its applications
// and reports how many applications went with it.
func (s *JobService) DeleteJob(ctx context.Context, jobID, employerID uint) (int64, error) {
	var removed int64
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		job, err := ownedJob(tx, jobID, employerID, "You are not authorized to delete this job")
		if err != nil {
			return err
		}

		res := tx.Where("job_id = ?", job.ID).Delete(&models.Application{})
		if res.Error != nil {
			return res.Error
		}
		removed = res.RowsAffected

		return tx.Delete(job).Error
	})
	if err != nil {
		return 0, err
	}

	ev := events.New(events.JobDeleted)
	ev.JobID = jobID
	ev.EmployerID = employerID
	publish(ctx, s.Events, ev)

	return removed, nil
}

// NearbyJobs returns open jobs within the query radius, closest first.
func (s *JobService) NearbyJobs(ctx context.Context, q geo.Query) ([]dtos.JobView, error) {
	var jobs []models.Job
	err := s.DB.WithContext(ctx).
		Preload("Employer").
		Where("status = ?", models.JobStatusOpen).
		Where("latitude IS NOT NULL AND longitude IS NOT NULL").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}

	ranked := geo.Nearby(q.Origin, jobs, func(j models.Job) (geo.Point, bool) {
		return geo.PointOf(j.Latitude, j.Longitude)
	}, q.RadiusKm)

	views := make([]dtos.JobView, 0, len(ranked))
	for _, r := range ranked {
		v := dtos.NewJobView(r.Item)
		d := r.Distance
		v.Distance = &d
		views = append(views, v)
	}
	return views, nil
}

func (s *JobService) EmployerJobs(ctx context.Context, employerID uint) ([]dtos.JobView, error) {
	db := s.DB.WithContext(ctx)

	var employer models.Employer
	if err := first(db, &employer, employerID, "Employer"); err != nil {
		return nil, err
	}

	var jobs []models.Job
	err := db.Where("employer_id = ?", employer.ID).Order("created_at DESC, id DESC").Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	for i := range jobs {
		jobs[i].Employer = employer
	}
	return jobViews(jobs), nil
}

// ownedJob loads a job and checks that employerID posted it.
func ownedJob(db *gorm.DB, jobID, employerID uint, deniedMsg string) (*models.Job, error) {
	var job models.Job
	if err := first(db, &job, jobID, "Job"); err != nil {
		return nil, err
	}
	if job.EmployerID != employerID {
		return nil, forbidden(deniedMsg)
	}
	return &job, nil
}

func jobViews(jobs []models.Job) []dtos.JobView {
	views := make([]dtos.JobView, 0, len(jobs))
	for _, j := range jobs {
		views = append(views, dtos.NewJobView(j))
	}
	return views
}
