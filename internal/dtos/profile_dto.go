package dtos

// EmployerUpdateRequest and EmployeeUpdateRequest change only the fields
// present in the body. Anything else in the body is ignored.
type EmployerUpdateRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=1"`
	CompanyName *string  `json:"company_name" binding:"omitempty,min=1"`
	Latitude    *float64 `json:"latitude" binding:"omitempty,latitude"`
	Longitude   *float64 `json:"longitude" binding:"omitempty,longitude"`
}

func (r EmployerUpdateRequest) Empty() bool {
	return r.Name == nil && r.CompanyName == nil && r.Latitude == nil && r.Longitude == nil
}

type EmployeeUpdateRequest struct {
	Name       *string   `json:"name" binding:"omitempty,min=1"`
	Education  *string   `json:"education"`
	Experience *int      `json:"experience" binding:"omitempty,min=0"`
	Latitude   *float64  `json:"latitude" binding:"omitempty,latitude"`
	Longitude  *float64  `json:"longitude" binding:"omitempty,longitude"`
	Skills     SkillList `json:"skills"`
}

func (r EmployeeUpdateRequest) Empty() bool {
	return r.Name == nil && r.Education == nil && r.Experience == nil &&
		r.Latitude == nil && r.Longitude == nil && r.Skills == nil
}
