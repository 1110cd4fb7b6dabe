package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		current string
		next    string
		want    error
	}{
		{ApplicationStatusWaiting, ApplicationStatusAccepted, nil},
		{ApplicationStatusWaiting, ApplicationStatusRejected, nil},
		{ApplicationStatusWaiting, ApplicationStatusWaiting, nil},
		{ApplicationStatusAccepted, ApplicationStatusRejected, ErrStatusLocked},
		{ApplicationStatusAccepted, ApplicationStatusWaiting, ErrStatusLocked},
		{ApplicationStatusRejected, ApplicationStatusAccepted, ErrStatusLocked},
		{ApplicationStatusRejected, ApplicationStatusRejected, ErrStatusLocked},
		{ApplicationStatusWaiting, "hired", ErrInvalidStatus},
		{ApplicationStatusAccepted, "", ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.current+"->"+tt.next, func(t *testing.T) {
			assert.ErrorIs(t, CanTransition(tt.current, tt.next), tt.want)
		})
	}
}

func TestIsFinal(t *testing.T) {
	assert.False(t, IsFinal(ApplicationStatusWaiting))
	assert.True(t, IsFinal(ApplicationStatusAccepted))
	assert.True(t, IsFinal(ApplicationStatusRejected))
}

func TestValidJobStatus(t *testing.T) {
	assert.True(t, ValidJobStatus(JobStatusOpen))
	assert.True(t, ValidJobStatus(JobStatusClosed))
	assert.False(t, ValidJobStatus("paused"))
}
