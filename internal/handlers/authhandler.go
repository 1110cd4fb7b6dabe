package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/job-board/internal/auth"
	"github.com/justsurfingit/job-board/internal/dtos"
	"github.com/justsurfingit/job-board/internal/models"
	"github.com/justsurfingit/job-board/internal/services"
)

type AuthHandler struct {
	Accounts *services.AccountService
	Tokens   *auth.TokenManager
}

func NewAuthHandler(accounts *services.AccountService, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{Accounts: accounts, Tokens: tokens}
}

// Register is POST /api/register. It creates either kind of account and
// logs the new user in.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dtos.RegisterRequest
	if !bind(c, &req, "") {
		return
	}

	switch req.UserType {
	case models.UserTypeEmployer:
		if req.CompanyName == "" {
			fail(c, http.StatusBadRequest, "Missing company name")
			return
		}
		h.registerEmployer(c, &dtos.EmployerRegisterRequest{
			Name:        req.Name,
			Email:       req.Email,
			Password:    req.Password,
			CompanyName: req.CompanyName,
		})

	case models.UserTypeEmployee:
		if req.DOB == "" {
			fail(c, http.StatusBadRequest, "Missing field: dob")
			return
		}
		if req.Education == "" {
			fail(c, http.StatusBadRequest, "Missing field: education")
			return
		}
		employee, err := h.Accounts.RegisterEmployee(c.Request.Context(), &req)
		if err != nil {
			fromError(c, err)
			return
		}
		token, issued := h.issue(c, employee.ID, models.UserTypeEmployee)
		if !issued {
			return
		}
		ok(c, http.StatusCreated, gin.H{
			"message":  "Employee registered successfully",
			"userId":   employee.ID,
			"userType": models.UserTypeEmployee,
			"name":     employee.Name,
			"token":    token,
		})

	default:
		fail(c, http.StatusBadRequest, "Invalid user type")
	}
}

// RegisterEmployer is POST /api/register/employer.
func (h *AuthHandler) RegisterEmployer(c *gin.Context) {
	var req dtos.EmployerRegisterRequest
	if !bind(c, &req, "Missing required fields") {
		return
	}
	h.registerEmployer(c, &req)
}

func (h *AuthHandler) registerEmployer(c *gin.Context, req *dtos.EmployerRegisterRequest) {
	employer, err := h.Accounts.RegisterEmployer(c.Request.Context(), req)
	if err != nil {
		fromError(c, err)
		return
	}
	token, issued := h.issue(c, employer.ID, models.UserTypeEmployer)
	if !issued {
		return
	}
	ok(c, http.StatusCreated, gin.H{
		"message":     "Employer registered successfully",
		"userId":      employer.ID,
		"userType":    models.UserTypeEmployer,
		"name":        employer.Name,
		"companyName": employer.CompanyName,
		"token":       token,
	})
}

// Login is POST /api/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if !bind(c, &req, "") {
		return
	}

	var (
		id     uint
		name   string
		extras gin.H
	)
	switch req.UserType {
	case models.UserTypeEmployer:
		employer, err := h.Accounts.LoginEmployer(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			fromError(c, err)
			return
		}
		id, name = employer.ID, employer.Name
		extras = gin.H{"companyName": employer.CompanyName}

	case models.UserTypeEmployee:
		employee, err := h.Accounts.LoginEmployee(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			fromError(c, err)
			return
		}
		id, name = employee.ID, employee.Name
		extras = gin.H{"skills": employee.Skills, "education": employee.Education}

	default:
		fail(c, http.StatusBadRequest, "Invalid user type")
		return
	}

	token, issued := h.issue(c, id, req.UserType)
	if !issued {
		return
	}
	body := gin.H{
		"message":  "Login successful",
		"token":    token,
		"userId":   id,
		"userType": req.UserType,
		"name":     name,
	}
	for k, v := range extras {
		body[k] = v
	}
	ok(c, http.StatusOK, body)
}

// EmployerLogin is POST /api/employer/login.
func (h *AuthHandler) EmployerLogin(c *gin.Context) {
	var req dtos.EmployerLoginRequest
	if !bind(c, &req, "Missing email or password") {
		return
	}

	employer, err := h.Accounts.LoginEmployer(c.Request.Context(), req.Email, req.Password)
	if errors.Is(err, services.ErrUnauthorized) {
		fail(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if err != nil {
		fromError(c, err)
		return
	}

	token, issued := h.issue(c, employer.ID, models.UserTypeEmployer)
	if !issued {
		return
	}
	ok(c, http.StatusOK, gin.H{
		"message":     "Login successful",
		"token":       token,
		"userId":      employer.ID,
		"userType":    models.UserTypeEmployer,
		"name":        employer.Name,
		"companyName": employer.CompanyName,
	})
}

func (h *AuthHandler) issue(c *gin.Context, id uint, userType string) (string, bool) {
	token, err := h.Tokens.Issue(id, userType)
	if err != nil {
		fromError(c, err)
		return "", false
	}
	return token, true
}
