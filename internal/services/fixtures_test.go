package services_test

import (
	"context"
	"testing"

	"github.com/justsurfingit/job-board/internal/auth"
	"github.com/justsurfingit/job-board/internal/events"
	"github.com/justsurfingit/job-board/internal/models"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, e events.Event) error {
	return m.Called(ctx, e).Error(0)
}

// expect registers one Publish call for an event of the given type.
func (m *mockPublisher) expect(eventType string, err error) {
	m.On("Publish", mock.Anything, mock.MatchedBy(func(e events.Event) bool {
		return e.Type == eventType
	})).Return(err).Once()
}

func ptr[T any](v T) *T { return &v }

func seedEmployer(t *testing.T, db *gorm.DB, email string) models.Employer {
	t.Helper()
	hash, err := auth.HashPassword("secret")
	require.NoError(t, err)

	e := models.Employer{Name: "Ada", Email: email, PasswordHash: hash, CompanyName: "Engines Ltd"}
	require.NoError(t, db.Create(&e).Error)
	return e
}

func seedEmployee(t *testing.T, db *gorm.DB, email string) models.Employee {
	t.Helper()
	hash, err := auth.HashPassword("secret")
	require.NoError(t, err)

	e := models.Employee{Name: "Bo", Email: email, PasswordHash: hash, Education: "BSc", Skills: []string{"go"}}
	require.NoError(t, db.Create(&e).Error)
	return e
}

func seedJob(t *testing.T, db *gorm.DB, employerID uint, title string, lat, lng *float64) models.Job {
	t.Helper()
	j := models.Job{
		EmployerID:  employerID,
		Title:       title,
		Description: title + " wanted",
		JobType:     models.DefaultJobType,
		Latitude:    lat,
		Longitude:   lng,
		Status:      models.JobStatusOpen,
	}
	require.NoError(t, db.Create(&j).Error)
	return j
}

func seedApplication(t *testing.T, db *gorm.DB, jobID, employeeID uint, status string) models.Application {
	t.Helper()
	a := models.Application{JobID: jobID, EmployeeID: employeeID, Status: status}
	require.NoError(t, db.Create(&a).Error)
	return a
}
