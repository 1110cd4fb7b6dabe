package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/justsurfingit/job-board/internal/dtos"
	"github.com/justsurfingit/job-board/internal/logger"
	"github.com/justsurfingit/job-board/internal/services"
)

var registerTagNames sync.Once

// useJSONFieldNames makes validation errors report the json name of a
// field instead of its Go name.
func useJSONFieldNames() {
	registerTagNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

func ok(c *gin.Context, code int, body gin.H) {
	if body == nil {
		body = gin.H{}
	}
	body["status"] = "success"
	c.JSON(code, body)
}

func fail(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"status": "error", "message": message})
}

// fromError writes the response for an error returned by a service.
func fromError(c *gin.Context, err error) {
	var se *services.Error
	if !errors.As(err, &se) {
		logger.FromContext(c).WithError(err).Error("request failed")
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	switch {
	case errors.Is(se, services.ErrNotFound):
		fail(c, http.StatusNotFound, se.Message)
	case errors.Is(se, services.ErrUnauthorized):
		fail(c, http.StatusUnauthorized, se.Message)
	case errors.Is(se, services.ErrForbidden):
		fail(c, http.StatusForbidden, se.Message)
	default:
		fail(c, http.StatusBadRequest, se.Message)
	}
}

// bind decodes the JSON body into dst. On failure it writes a 400 and
// returns false. A non-empty missing replaces the "Missing fields" message.
func bind(c *gin.Context, dst any, missing string) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return true
	}
	fail(c, http.StatusBadRequest, bindMessage(err, missing))
	return false
}

// bindOptional is bind for endpoints whose body may be left out entirely.
func bindOptional(c *gin.Context, dst any) bool {
	if c.Request.ContentLength == 0 {
		return true
	}
	err := c.ShouldBindJSON(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	fail(c, http.StatusBadRequest, bindMessage(err, ""))
	return false
}

func bindMessage(err error, missing string) string {
	var (
		verrs   validator.ValidationErrors
		syntax  *json.SyntaxError
		typeErr *json.UnmarshalTypeError
	)
	switch {
	case errors.Is(err, io.EOF):
		return "No data provided"
	case errors.Is(err, dtos.ErrInvalidSkills):
		return "Invalid skills format"
	case errors.As(err, &verrs):
		return validationMessage(verrs, missing)
	case errors.As(err, &syntax), errors.As(err, &typeErr), errors.Is(err, io.ErrUnexpectedEOF):
		return "Invalid JSON format: " + err.Error()
	default:
		return "Invalid request: " + err.Error()
	}
}

func validationMessage(verrs validator.ValidationErrors, missing string) string {
	var absent, bad []string
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			absent = append(absent, fe.Field())
		} else {
			bad = append(bad, fe.Field())
		}
	}

	if len(absent) > 0 {
		if missing != "" {
			return missing
		}
		return "Missing fields: " + strings.Join(absent, ", ")
	}
	return "Invalid value for fields: " + strings.Join(bad, ", ")
}

// pathID parses the named path parameter as a positive id.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		fail(c, http.StatusBadRequest, "Invalid "+name)
		return 0, false
	}
	return uint(id), true
}
