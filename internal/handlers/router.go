package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/job-board/internal/auth"
	"github.com/justsurfingit/job-board/internal/logger"
	"github.com/justsurfingit/job-board/internal/models"
	"github.com/justsurfingit/job-board/internal/services"
	"gorm.io/gorm"
)

// Deps is everything the router needs to serve the API.
type Deps struct {
	DB           *gorm.DB
	Tokens       *auth.TokenManager
	Accounts     *services.AccountService
	Profiles     *services.ProfileService
	Jobs         *services.JobService
	Applications *services.ApplicationService

	CORSOrigins []string
	StaticDir   string // optional single page app
}

func NewRouter(d Deps) *gin.Engine {
	useJSONFieldNames()

	r := gin.New()
	r.Use(logger.Middleware(), gin.CustomRecovery(recovered), cors.New(corsConfig(d.CORSOrigins)))

	health := NewHealthHandler(d.DB)
	accounts := NewAuthHandler(d.Accounts, d.Tokens)
	jobs := NewJobHandler(d.Jobs, d.Applications)
	profiles := NewProfileHandler(d.Profiles, d.Jobs, d.Applications)
	apps := NewApplicationHandler(d.Applications)

	anyUser := auth.Middleware(d.Tokens)
	employer := auth.Middleware(d.Tokens, models.UserTypeEmployer)
	employee := auth.Middleware(d.Tokens, models.UserTypeEmployee)

	api := r.Group("/api")
	{
		api.GET("/test", health.DatabaseCheck)
		api.GET("/health", health.Health)

		api.POST("/register", accounts.Register)
		api.POST("/register/employer", accounts.RegisterEmployer)
		api.POST("/login", accounts.Login)
		api.POST("/employer/login", accounts.EmployerLogin)

		// Job Routes
		api.GET("/jobs", jobs.ListJobs)
		api.GET("/jobs/nearby", jobs.NearbyJobs)
		api.POST("/jobs", employer, jobs.CreateJob)
		api.GET("/jobs/:id", jobs.GetJob)
		api.PUT("/jobs/:id", employer, jobs.UpdateJob)
		api.DELETE("/jobs/:id", employer, jobs.DeleteJob)
		api.POST("/jobs/:id/apply", employee, jobs.Apply)

		api.GET("/employees/nearby", profiles.NearbyTalent)
		api.GET("/employees/:id", profiles.GetEmployee)
		api.PUT("/employees/:id", employee, profiles.UpdateEmployee)
		api.PUT("/employees/:id/password", employee, profiles.ChangeEmployeePassword)
		api.GET("/employees/:id/applications", employee, profiles.EmployeeApplications)

		api.GET("/employers/:id", profiles.GetEmployer)
		api.PUT("/employers/:id", employer, profiles.UpdateEmployer)
		api.PUT("/employers/:id/password", employer, profiles.ChangeEmployerPassword)
		api.GET("/employers/:id/jobs", profiles.EmployerJobs)
		api.GET("/employers/:id/applications", employer, profiles.EmployerApplications)

		api.PUT("/applications/:id/status", employer, apps.UpdateStatus)
		api.GET("/applications/:id", anyUser, apps.GetApplication)
	}

	r.NoRoute(spa(d.StaticDir))
	return r
}

func recovered(c *gin.Context, err any) {
	logger.FromContext(c).WithField("panic", err).Error("recovered from panic")
	fail(c, http.StatusInternalServerError, "Internal server error")
}

func corsConfig(origins []string) cors.Config {
	config := cors.DefaultConfig()
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", logger.RequestIDHeader}
	config.ExposeHeaders = []string{logger.RequestIDHeader}
	config.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}
	config.MaxAge = 12 * time.Hour

	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = origins
	}
	return config
}

// spa serves files from dir, falling back to index.html so client side
// routes work. Unknown /api paths always get a JSON 404.
func spa(dir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if dir == "" || path == "/api" || strings.HasPrefix(path, "/api/") {
			fail(c, http.StatusNotFound, "Endpoint not found")
			return
		}

		file := filepath.Join(dir, filepath.FromSlash(filepath.Clean("/"+path)))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			c.File(file)
			return
		}
		index := filepath.Join(dir, "index.html")
		if info, err := os.Stat(index); err != nil || info.IsDir() {
			fail(c, http.StatusNotFound, "Endpoint not found")
			return
		}
		c.File(index)
	}
}
