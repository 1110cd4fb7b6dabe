package dtos

// RegisterRequest covers both roles; the role specific fields are checked
// once userType is known.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	UserType string `json:"userType" binding:"required"`

	// Employer
	CompanyName string `json:"companyName"`

	// Employee
	DOB        string    `json:"dob"`
	Education  string    `json:"education"`
	Skills     SkillList `json:"skills"`
	Experience int       `json:"experience" binding:"min=0"`
	Latitude   *float64  `json:"latitude" binding:"omitempty,latitude"`
	Longitude  *float64  `json:"longitude" binding:"omitempty,longitude"`
}

type EmployerRegisterRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	CompanyName string `json:"companyName" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	UserType string `json:"userType" binding:"required"`
}

type EmployerLoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type PasswordChangeRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}
