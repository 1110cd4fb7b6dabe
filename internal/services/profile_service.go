package services

import (
	"context"
	"errors"

	"github.com/justsurfingit/job-board/internal/auth"
	"github.com/justsurfingit/job-board/internal/dtos"
	"github.com/justsurfingit/job-board/internal/geo"
	"github.com/justsurfingit/job-board/internal/models"
	"gorm.io/gorm"
)

const msgNothingToUpdate = "No valid fields to update"

// ProfileService reads and edits employer and employee profiles.
type ProfileService struct {
	DB *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{DB: db}
}

func (s *ProfileService) GetEmployer(ctx context.Context, id uint) (*models.Employer, error) {
	var employer models.Employer
	if err := first(s.DB.WithContext(ctx), &employer, id, "Employer"); err != nil {
		return nil, err
	}
	return &employer, nil
}

func (s *ProfileService) UpdateEmployer(ctx context.Context, id uint, req *dtos.EmployerUpdateRequest) (*models.Employer, error) {
	employer, err := s.GetEmployer(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Empty() {
		return nil, invalid(msgNothingToUpdate)
	}

	if req.Name != nil {
		employer.Name = *req.Name
	}
	if req.CompanyName != nil {
		employer.CompanyName = *req.CompanyName
	}
	if req.Latitude != nil {
		employer.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		employer.Longitude = req.Longitude
	}

	if err := s.DB.WithContext(ctx).Save(employer).Error; err != nil {
		return nil, err
	}
	return employer, nil
}

func (s *ProfileService) ChangeEmployerPassword(ctx context.Context, id uint, req *dtos.PasswordChangeRequest) error {
	var employer models.Employer
	db := s.DB.WithContext(ctx)
	if err := first(db, &employer, id, "Employer"); err != nil {
		return err
	}
	return updatePassword(db, &employer, employer.PasswordHash, req)
}

func (s *ProfileService) GetEmployee(ctx context.Context, id uint) (*models.Employee, error) {
	var employee models.Employee
	if err := first(s.DB.WithContext(ctx), &employee, id, "Employee"); err != nil {
		return nil, err
	}
	employee.Skills = dtos.NonNilSkills(employee.Skills)
	return &employee, nil
}

func (s *ProfileService) UpdateEmployee(ctx context.Context, id uint, req *dtos.EmployeeUpdateRequest) (*models.Employee, error) {
	employee, err := s.GetEmployee(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Empty() {
		return nil, invalid(msgNothingToUpdate)
	}

	if req.Name != nil {
		employee.Name = *req.Name
	}
	if req.Education != nil {
		employee.Education = *req.Education
	}
	if req.Experience != nil {
		employee.Experience = *req.Experience
	}
	if req.Latitude != nil {
		employee.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		employee.Longitude = req.Longitude
	}
	if req.Skills != nil {
		employee.Skills = req.Skills
	}

	if err := s.DB.WithContext(ctx).Save(employee).Error; err != nil {
		return nil, err
	}
	return employee, nil
}

func (s *ProfileService) ChangeEmployeePassword(ctx context.Context, id uint, req *dtos.PasswordChangeRequest) error {
	var employee models.Employee
	db := s.DB.WithContext(ctx)
	if err := first(db, &employee, id, "Employee"); err != nil {
		return err
	}
	return updatePassword(db, &employee, employee.PasswordHash, req)
}

// updatePassword checks the current password against currentHash and
// stores the hash of the new one on model.
func updatePassword(db *gorm.DB, model any, currentHash string, req *dtos.PasswordChangeRequest) error {
	if !auth.CheckPassword(currentHash, req.CurrentPassword) {
		return unauthorized("Current password is incorrect")
	}

	newHash, err := hashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	return db.Model(model).Update("password_hash", newHash).Error
}

// NearbyTalent finds employees with a location inside the query radius.
func (s *ProfileService) NearbyTalent(ctx context.Context, q geo.Query) ([]dtos.TalentView, error) {
	var employees []models.Employee
	err := s.DB.WithContext(ctx).
		Where("latitude IS NOT NULL AND longitude IS NOT NULL").
		Find(&employees).Error
	if err != nil {
		return nil, err
	}

	ranked := geo.Nearby(q.Origin, employees, func(e models.Employee) (geo.Point, bool) {
		return geo.PointOf(e.Latitude, e.Longitude)
	}, q.RadiusKm)

	talent := make([]dtos.TalentView, 0, len(ranked))
	for _, r := range ranked {
		e := r.Item
		talent = append(talent, dtos.TalentView{
			ID:         e.ID,
			Name:       e.Name,
			Education:  e.Education,
			Skills:     dtos.NonNilSkills(e.Skills),
			Experience: e.Experience,
			Latitude:   e.Latitude,
			Longitude:  e.Longitude,
			Distance:   r.Distance,
		})
	}
	return talent, nil
}

// first loads the row with the given primary key, reporting a missing row
// as "<what> not found".
func first(db *gorm.DB, dest any, id uint, what string) error {
	err := db.First(dest, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(what)
	}
	return err
}
