package models

import "errors"

const (
	ApplicationStatusWaiting  = "waiting"
	ApplicationStatusAccepted = "accepted"
	ApplicationStatusRejected = "rejected"
)

var (
	ErrInvalidStatus = errors.New("invalid application status")
	ErrStatusLocked  = errors.New("application status is locked")
)

// ValidApplicationStatus reports whether s is one of the three application states.
func ValidApplicationStatus(s string) bool {
	switch s {
	case ApplicationStatusWaiting, ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

// IsFinal reports whether an application in status s can no longer change.
func IsFinal(s string) bool {
	return s == ApplicationStatusAccepted || s == ApplicationStatusRejected
}

// CanTransition checks moving an application from current to next.
// Only a waiting application may change; accepted and rejected are final.
func CanTransition(current, next string) error {
	if !ValidApplicationStatus(next) {
		return ErrInvalidStatus
	}
	if IsFinal(current) {
		return ErrStatusLocked
	}
	return nil
}
