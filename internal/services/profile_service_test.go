package services_test

import (
	"context"
	"testing"

	"github.com/justsurfingit/job-board/internal/auth"
	"github.com/justsurfingit/job-board/internal/database/dbtest"
	"github.com/justsurfingit/job-board/internal/dtos"
	"github.com/justsurfingit/job-board/internal/geo"
	"github.com/justsurfingit/job-board/internal/models"
	"github.com/justsurfingit/job-board/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateEmployerPartial(t *testing.T) {
	ctx := context.Background()
	db := dbtest.New(t)
	svc := services.NewProfileService(db)
	employer := seedEmployer(t, db, "ada@example.com")

	updated, err := svc.UpdateEmployer(ctx, employer.ID, &dtos.EmployerUpdateRequest{CompanyName: ptr("Analytical")})
	require.NoError(t, err)
	assert.Equal(t, "Analytical", updated.CompanyName)
	assert.Equal(t, "Ada", updated.Name)

	reloaded, err := svc.GetEmployer(ctx, employer.ID)
	require.NoError(t, err)
	assert.Equal(t, "Analytical", reloaded.CompanyName)
}

func TestUpdateProfileErrors(t *testing.T) {
	ctx := context.Background()
	db := dbtest.New(t)
	svc := services.NewProfileService(db)
	employee := seedEmployee(t, db, "bo@example.com")

	_, err := svc.UpdateEmployee(ctx, employee.ID, &dtos.EmployeeUpdateRequest{})
	require.ErrorIs(t, err, services.ErrInvalid)
	assert.EqualError(t, err, "No valid fields to update")

	_, err = svc.UpdateEmployee(ctx, 999, &dtos.EmployeeUpdateRequest{Name: ptr("X")})
	require.ErrorIs(t, err, services.ErrNotFound)
	assert.EqualError(t, err, "Employee not found")
}

func TestUpdateEmployeeSkills(t *testing.T) {
	ctx := context.Background()
	db := dbtest.New(t)
	svc := services.NewProfileService(db)
	employee := seedEmployee(t, db, "bo@example.com")

	_, err := svc.UpdateEmployee(ctx, employee.ID, &dtos.EmployeeUpdateRequest{
		Skills:     []string{"go", "sql"},
		Experience: ptr(3),
	})
	require.NoError(t, err)

	reloaded, err := svc.GetEmployee(ctx, employee.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "sql"}, reloaded.Skills)
	assert.Equal(t, 3, reloaded.Experience)
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	db := dbtest.New(t)
	svc := services.NewProfileService(db)
	employer := seedEmployer(t, db, "ada@example.com")

	err := svc.ChangeEmployerPassword(ctx, employer.ID, &dtos.PasswordChangeRequest{CurrentPassword: "nope", NewPassword: "new"})
	require.ErrorIs(t, err, services.ErrUnauthorized)
	assert.EqualError(t, err, "Current password is incorrect")

	require.NoError(t, svc.ChangeEmployerPassword(ctx, employer.ID, &dtos.PasswordChangeRequest{CurrentPassword: "secret", NewPassword: "new"}))

	var reloaded models.Employer
	require.NoError(t, db.First(&reloaded, employer.ID).Error)
	assert.True(t, auth.CheckPassword(reloaded.PasswordHash, "new"))
	assert.False(t, auth.CheckPassword(reloaded.PasswordHash, "secret"))

	err = svc.ChangeEmployeePassword(ctx, 42, &dtos.PasswordChangeRequest{CurrentPassword: "a", NewPassword: "b"})
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestNearbyTalent(t *testing.T) {
	ctx := context.Background()
	db := dbtest.New(t)
	svc := services.NewProfileService(db)

	near := seedEmployee(t, db, "near@example.com")
	far := seedEmployee(t, db, "far@example.com")
	seedEmployee(t, db, "nowhere@example.com")
	require.NoError(t, db.Model(&near).Updates(map[string]any{"latitude": 12.98, "longitude": 77.6}).Error)
	require.NoError(t, db.Model(&far).Updates(map[string]any{"latitude": 13.5, "longitude": 77.6}).Error)

	q := geo.Query{Origin: geo.Point{Lat: 12.97, Lng: 77.59}, RadiusKm: 10}
	talent, err := svc.NearbyTalent(ctx, q)
	require.NoError(t, err)
	require.Len(t, talent, 1)
	assert.Equal(t, near.ID, talent[0].ID)
	assert.Less(t, talent[0].Distance, 2.0)

	q.RadiusKm = 100
	talent, err = svc.NearbyTalent(ctx, q)
	require.NoError(t, err)
	require.Len(t, talent, 2)
	assert.Equal(t, far.ID, talent[1].ID)
	assert.LessOrEqual(t, talent[0].Distance, talent[1].Distance)
}
