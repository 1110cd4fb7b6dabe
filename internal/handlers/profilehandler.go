package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/job-board/internal/dtos"
	"github.com/justsurfingit/job-board/internal/geo"
	"github.com/justsurfingit/job-board/internal/services"
)

const msgPasswordsRequired = "Current password and new password are required"

// ProfileHandler serves /api/employers/:id and /api/employees/:id.
type ProfileHandler struct {
	Profiles     *services.ProfileService
	Jobs         *services.JobService
	Applications *services.ApplicationService
}

func NewProfileHandler(profiles *services.ProfileService, jobs *services.JobService, apps *services.ApplicationService) *ProfileHandler {
	return &ProfileHandler{Profiles: profiles, Jobs: jobs, Applications: apps}
}

func (h *ProfileHandler) GetEmployer(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	employer, err := h.Profiles.GetEmployer(c.Request.Context(), id)
	if err != nil {
		fromError(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"employer": employer})
}

func (h *ProfileHandler) UpdateEmployer(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	if _, allowed := self(c, id); !allowed {
		return
	}
	var req dtos.EmployerUpdateRequest
	if !bind(c, &req, "") {
		return
	}

	employer, err := h.Profiles.UpdateEmployer(c.Request.Context(), id, &req)
	if err != nil {
		fromError(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"message": "Profile updated successfully", "employer": employer})
}

func (h *ProfileHandler) ChangeEmployerPassword(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	if _, allowed := self(c, id); !allowed {
		return
	}
	var req dtos.PasswordChangeRequest
	if !bind(c, &req, msgPasswordsRequired) {
		return
	}

	if err := h.Profiles.ChangeEmployerPassword(c.Request.Context(), id, &req); err != nil {
		fromError(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"message": "Password updated successfully"})
}

// EmployerJobs is GET /api/employers/:id/jobs
func (h *ProfileHandler) EmployerJobs(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	jobs, err := h.Jobs.EmployerJobs(c.Request.Context(), id)
	if err != nil {
		fromError(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"jobs": jobs})
}

// EmployerApplications is GET /api/employers/:id/applications
func (h *ProfileHandler) EmployerApplications(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	if _, allowed := self(c, id); !allowed {
		return
	}
	apps, err := h.Applications.EmployerApplications(c.Request.Context(), id)
	if err != nil {
		fromError(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"applications": apps})
}

func (h *ProfileHandler) GetEmployee(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	employee, err := h.Profiles.GetEmployee(c.Request.Context(), id)
	if err != nil {
		fromError(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"employee": employee})
}

func (h *ProfileHandler) UpdateEmployee(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	if _, allowed := self(c, id); !allowed {
		return
	}
	var req dtos.EmployeeUpdateRequest
	if !bind(c, &req, "") {
		return
	}

	employee, err := h.Profiles.UpdateEmployee(c.Request.Context(), id, &req)
	if err != nil {
		fromError(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"message": "Profile updated successfully", "employee": employee})
}

func (h *ProfileHandler) ChangeEmployeePassword(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	if _, allowed := self(c, id); !allowed {
		return
	}
	var req dtos.PasswordChangeRequest
	if !bind(c, &req, msgPasswordsRequired) {
		return
	}

	if err := h.Profiles.ChangeEmployeePassword(c.Request.Context(), id, &req); err != nil {
		fromError(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"message": "Password updated successfully"})
}

// EmployeeApplications is GET /api/employees/:id/applications
func (h *ProfileHandler) EmployeeApplications(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	if _, allowed := self(c, id); !allowed {
		return
	}
	apps, err := h.Applications.EmployeeApplications(c.Request.Context(), id)
	if err != nil {
		fromError(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"applications": apps})
}

// NearbyTalent is GET /api/employees/nearby?lat=&lng=&radius=
func (h *ProfileHandler) NearbyTalent(c *gin.Context) {
	q, err := geo.ParseQuery(c.Query("lat"), c.Query("lng"), c.Query("radius"))
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid location parameters")
		return
	}

	talent, err := h.Profiles.NearbyTalent(c.Request.Context(), q)
	if err != nil {
		fromError(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"talent": talent, "count": len(talent)})
}
