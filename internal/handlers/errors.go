package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ValidationError marks malformed or missing input. Always 400.
type ValidationError struct {
	Msg string
}

func (e ValidationError) Error() string { return e.Msg }

// NotFoundError marks a missing resource. Ownership failures are raised as
// NotFound too, so callers cannot distinguish "absent" from "not yours".
type NotFoundError struct {
	Resource string
}

func (e NotFoundError) Error() string { return e.Resource + " not found" }

// ConflictError marks a valid request the current state forbids. Always 409.
type ConflictError struct {
	Msg string
}

func (e ConflictError) Error() string { return e.Msg }

// DependencyError marks a failed external collaborator on a hard path.
type DependencyError struct {
	Op  string
	Err error
}

func (e DependencyError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e DependencyError) Unwrap() error { return e.Err }

// respondWithDomainError maps the error taxonomy 1:1 onto HTTP statuses.
func respondWithDomainError(c *gin.Context, route string, err error) {
	var validationErr ValidationError
	if errors.As(err, &validationErr) {
		respondWithError(c, http.StatusBadRequest, route, validationErr.Msg)
		return
	}
	var notFoundErr NotFoundError
	if errors.As(err, &notFoundErr) {
		respondWithError(c, http.StatusNotFound, route, notFoundErr.Error())
		return
	}
	var conflictErr ConflictError
	if errors.As(err, &conflictErr) {
		respondWithError(c, http.StatusConflict, route, conflictErr.Msg)
		return
	}
	var dependencyErr DependencyError
	if errors.As(err, &dependencyErr) {
		respondWithError(c, http.StatusInternalServerError, route, "dependency failure")
		return
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondWithError(c, http.StatusNotFound, route, "not found")
		return
	}
	respondWithError(c, http.StatusInternalServerError, route, "db error")
}
