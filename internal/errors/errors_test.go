package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_IsMatchesByCode(t *testing.T) {
	err := InvalidEnumValuef("unknown page type %q", "flip")

	assert.True(t, Is(err, ErrInvalidEnumValue))
	assert.False(t, Is(err, ErrValidation))
	assert.Equal(t, `unknown page type "flip"`, err.Error())
}

func TestError_WrappedStillMatches(t *testing.T) {
	err := fmt.Errorf("update page type: %w", InvalidEnumValue("bad"))

	assert.True(t, Is(err, ErrInvalidEnumValue))

	var domainErr *Error
	assert.True(t, As(err, &domainErr))
	assert.Equal(t, CodeInvalidEnumValue, domainErr.Code)
}

func TestStorageWrite_Unwraps(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := StorageWrite("reading:font_size", cause)

	assert.True(t, Is(err, ErrStorageWrite))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "write reading:font_size: disk full", err.Error())
}

func TestStorageRead_MatchesSentinel(t *testing.T) {
	err := StorageRead("reading:page_type", fmt.Errorf("io timeout"))

	assert.True(t, Is(err, ErrStorageRead))
	assert.False(t, Is(err, ErrStorageWrite))
}

func TestInternal_WrapsCause(t *testing.T) {
	cause := fmt.Errorf("encoder exploded")
	err := Internal("internal server error", cause)

	assert.True(t, Is(err, ErrInternal))
	assert.False(t, Is(err, ErrNotFound))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPStatus())
}

func TestNotFound_MatchesSentinel(t *testing.T) {
	err := NotFound("route not found")

	assert.True(t, Is(err, ErrNotFound))
	assert.Equal(t, http.StatusNotFound, err.HTTPStatus())
}

func TestCode_HTTPStatus(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeInvalidEnumValue, http.StatusBadRequest},
		{CodeValidation, http.StatusBadRequest},
		{CodeNotFound, http.StatusNotFound},
		{CodeConflict, http.StatusConflict},
		{CodeStorageWrite, http.StatusServiceUnavailable},
		{CodeInternal, http.StatusInternalServerError},
		{Code("SOMETHING_ELSE"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.code.HTTPStatus())
		})
	}
}

func TestWithDetails_KeepsCode(t *testing.T) {
	err := ErrValidation.WithDetails(map[string]string{"font_size": "is required"})

	assert.Equal(t, CodeValidation, err.Code)
	assert.NotNil(t, err.Details)
	assert.Nil(t, ErrValidation.Details)
}
