package validation_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/listenupapp/readconfig/internal/errors"
	"github.com/listenupapp/readconfig/internal/validation"
)

type testRequest struct {
	FontSize *int    `json:"font_size" validate:"omitempty,gte=8,lte=72"`
	Theme    string  `json:"theme" validate:"required,oneof=light dark"`
	Color    string  `json:"color" validate:"omitempty,hexcolor"`
	Spacing  float64 `json:"spacing" validate:"min=0,max=100"`
}

func intPtr(v int) *int { return &v }

func TestValidator_ValidateSuccess(t *testing.T) {
	v := validation.New()

	err := v.Validate(testRequest{FontSize: intPtr(18), Theme: "dark", Color: "#FFFFFF", Spacing: 12})
	assert.NoError(t, err)
}

func TestValidator_NilPointerSkipped(t *testing.T) {
	v := validation.New()

	err := v.Validate(testRequest{Theme: "light"})
	assert.NoError(t, err)
}

func TestValidator_ValidateErrors(t *testing.T) {
	v := validation.New()

	tests := []struct {
		name      string
		req       testRequest
		wantField string
		wantMsg   string
	}{
		{
			name:      "font size too small",
			req:       testRequest{FontSize: intPtr(2), Theme: "light"},
			wantField: "testRequest.font_size",
			wantMsg:   "must be greater than or equal to 8",
		},
		{
			name:      "theme missing",
			req:       testRequest{},
			wantField: "testRequest.theme",
			wantMsg:   "is required",
		},
		{
			name:      "theme not allowed",
			req:       testRequest{Theme: "sepia"},
			wantField: "testRequest.theme",
			wantMsg:   "must be one of: light dark",
		},
		{
			name:      "bad color",
			req:       testRequest{Theme: "light", Color: "red"},
			wantField: "testRequest.color",
			wantMsg:   "must be a hex color like #RRGGBB",
		},
		{
			name:      "spacing above max",
			req:       testRequest{Theme: "light", Spacing: 150},
			wantField: "testRequest.spacing",
			wantMsg:   "must not exceed 100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.req)
			require.Error(t, err)

			var domainErr *domainerrors.Error
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, domainerrors.CodeValidation, domainErr.Code)
			assert.Equal(t, http.StatusBadRequest, domainErr.HTTPStatus())

			details, ok := domainErr.Details.(map[string]string)
			require.True(t, ok)
			assert.Equal(t, tt.wantMsg, details[tt.wantField])
		})
	}
}
