package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/joshua-takyi/orange/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "not found", err: models.ErrNotFound, want: http.StatusNotFound},
		{name: "forbidden", err: models.ErrForbidden, want: http.StatusForbidden},
		{name: "unauthorized", err: models.ErrUnauthorized, want: http.StatusUnauthorized},
		{name: "email taken", err: models.ErrEmailTaken, want: http.StatusBadRequest},
		{name: "invalid input", err: models.ErrInvalidInput, want: http.StatusBadRequest},
		{name: "invalid transition", err: models.ErrInvalidTransition, want: http.StatusBadRequest},
		{name: "unknown error", err: errors.New("mongo timeout"), want: http.StatusInternalServerError},
		{name: "wrapped not found", err: fmt.Errorf("creator not found: %w", models.ErrNotFound), want: http.StatusNotFound},
		{name: "wrapped forbidden", err: fmt.Errorf("only the creator can update request status: %w", models.ErrForbidden), want: http.StatusForbidden},
		{name: "wrapped transition", err: fmt.Errorf("request is no longer pending: %w", models.ErrInvalidTransition), want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}
