package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/justsurfingit/job-board/internal/auth"
	"github.com/justsurfingit/job-board/internal/database/dbtest"
	"github.com/justsurfingit/job-board/internal/dtos"
	"github.com/justsurfingit/job-board/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterEmployerHashesPassword(t *testing.T) {
	svc := services.NewAccountService(dbtest.New(t))

	employer, err := svc.RegisterEmployer(context.Background(), &dtos.EmployerRegisterRequest{
		Name: "Ada", Email: " Ada@Example.com ", Password: "hunter2", CompanyName: "Engines",
	})
	require.NoError(t, err)

	assert.NotZero(t, employer.ID)
	assert.Equal(t, "ada@example.com", employer.Email)
	assert.NotEqual(t, "hunter2", employer.PasswordHash)
	assert.True(t, auth.CheckPassword(employer.PasswordHash, "hunter2"))
}

func TestRegisterRejectsLongPassword(t *testing.T) {
	ctx := context.Background()
	svc := services.NewAccountService(dbtest.New(t))

	// 40 runes, 80 bytes
	long := strings.Repeat("é", 40)
	_, err := svc.RegisterEmployer(ctx, &dtos.EmployerRegisterRequest{
		Name: "Ada", Email: "ada@example.com", Password: long, CompanyName: "Engines",
	})
	require.ErrorIs(t, err, services.ErrInvalid)
	assert.EqualError(t, err, "Password must be at most 72 bytes")

	_, err = svc.RegisterEmployee(ctx, &dtos.RegisterRequest{
		Name: "Bo", Email: "bo@example.com", Password: long, UserType: "employee", DOB: "2000-01-01", Education: "BSc",
	})
	assert.ErrorIs(t, err, services.ErrInvalid)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := services.NewAccountService(dbtest.New(t))

	req := &dtos.RegisterRequest{Name: "Bo", Email: "bo@example.com", Password: "pw", UserType: "employee", DOB: "2000-01-01", Education: "BSc"}
	_, err := svc.RegisterEmployee(ctx, req)
	require.NoError(t, err)

	_, err = svc.RegisterEmployee(ctx, req)
	require.ErrorIs(t, err, services.ErrInvalid)
	assert.EqualError(t, err, "Email already registered")
}

func TestRegisterEmployeeDefaultsSkills(t *testing.T) {
	svc := services.NewAccountService(dbtest.New(t))

	employee, err := svc.RegisterEmployee(context.Background(), &dtos.RegisterRequest{
		Name: "Bo", Email: "bo@example.com", Password: "pw", UserType: "employee", DOB: "2000-01-01", Education: "BSc",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{}, employee.Skills)
	assert.Zero(t, employee.Experience)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	db := dbtest.New(t)
	svc := services.NewAccountService(db)
	seedEmployer(t, db, "ada@example.com")
	seedEmployee(t, db, "bo@example.com")

	employer, err := svc.LoginEmployer(ctx, "ADA@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "Engines Ltd", employer.CompanyName)

	employee, err := svc.LoginEmployee(ctx, "bo@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, []string{"go"}, employee.Skills)

	_, err = svc.LoginEmployee(ctx, "bo@example.com", "wrong")
	assert.ErrorIs(t, err, services.ErrUnauthorized)

	_, err = svc.LoginEmployee(ctx, "ada@example.com", "secret")
	assert.ErrorIs(t, err, services.ErrUnauthorized, "employer credentials must not log in as employee")

	_, err = svc.LoginEmployer(ctx, "nobody@example.com", "secret")
	assert.EqualError(t, err, "Invalid credentials")
}
