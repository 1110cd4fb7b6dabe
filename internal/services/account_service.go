package services

import (
	"context"
	"errors"
	"strings"

	"github.com/justsurfingit/job-board/internal/auth"
	"github.com/justsurfingit/job-board/internal/dtos"
	"github.com/justsurfingit/job-board/internal/models"
	"gorm.io/gorm"
)

const msgEmailTaken = "Email already registered"

// AccountService registers and authenticates employers and employees.
type AccountService struct {
	DB *gorm.DB
}

func NewAccountService(db *gorm.DB) *AccountService {
	return &AccountService{DB: db}
}

func (s *AccountService) RegisterEmployer(ctx context.Context, req *dtos.EmployerRegisterRequest) (*models.Employer, error) {
	email := normalizeEmail(req.Email)
	if err := s.ensureEmailFree(ctx, &models.Employer{}, email); err != nil {
		return nil, err
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	employer := &models.Employer{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: hash,
		CompanyName:  strings.TrimSpace(req.CompanyName),
	}
	if err := s.DB.WithContext(ctx).Create(employer).Error; err != nil {
		return nil, createError(err)
	}
	return employer, nil
}

// RegisterEmployee expects dob and education to have been checked by the caller.
func (s *AccountService) RegisterEmployee(ctx context.Context, req *dtos.RegisterRequest) (*models.Employee, error) {
	email := normalizeEmail(req.Email)
	if err := s.ensureEmailFree(ctx, &models.Employee{}, email); err != nil {
		return nil, err
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	employee := &models.Employee{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: hash,
		DOB:          req.DOB,
		Education:    req.Education,
		Skills:       dtos.NonNilSkills(req.Skills),
		Experience:   req.Experience,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
	}
	if err := s.DB.WithContext(ctx).Create(employee).Error; err != nil {
		return nil, createError(err)
	}
	return employee, nil
}

func (s *AccountService) LoginEmployer(ctx context.Context, email, password string) (*models.Employer, error) {
	var employer models.Employer
	if err := s.findByEmail(ctx, &employer, email); err != nil {
		return nil, err
	}
	if !auth.CheckPassword(employer.PasswordHash, password) {
		return nil, unauthorized("Invalid credentials")
	}
	return &employer, nil
}

func (s *AccountService) LoginEmployee(ctx context.Context, email, password string) (*models.Employee, error) {
	var employee models.Employee
	if err := s.findByEmail(ctx, &employee, email); err != nil {
		return nil, err
	}
	if !auth.CheckPassword(employee.PasswordHash, password) {
		return nil, unauthorized("Invalid credentials")
	}
	employee.Skills = dtos.NonNilSkills(employee.Skills)
	return &employee, nil
}

func (s *AccountService) findByEmail(ctx context.Context, dest any, email string) error {
	err := s.DB.WithContext(ctx).Where("email = ?", normalizeEmail(email)).First(dest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return unauthorized("Invalid credentials")
	}
	return err
}

func (s *AccountService) ensureEmailFree(ctx context.Context, model any, email string) error {
	var count int64
	if err := s.DB.WithContext(ctx).Model(model).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return invalid(msgEmailTaken)
	}
	return nil
}

// createError turns a unique violation that slipped past ensureEmailFree
// into the same message.
func createError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return invalid(msgEmailTaken)
	}
	return err
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func hashPassword(password string) (string, error) {
	hash, err := auth.HashPassword(password)
	if errors.Is(err, auth.ErrPasswordTooLong) {
		return "", invalid("Password must be at most %d bytes", auth.MaxPasswordBytes)
	}
	return hash, err
}
