package svcerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsServiceError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr *ServiceError
		wantOk  bool
	}{
		{
			name:    "nil input",
			err:     nil,
			wantErr: nil,
			wantOk:  false,
		},
		{
			name:    "regular error",
			err:     errors.New("x"),
			wantErr: nil,
			wantOk:  false,
		},
		{
			name:    "direct ServiceError",
			err:     NewInvalidArgumentError("ANL_1002", "validation failed", nil),
			wantErr: NewInvalidArgumentError("ANL_1002", "validation failed", nil),
			wantOk:  true,
		},
		{
			name:    "wrapped ServiceError",
			err:     fmt.Errorf("wrap: %w", NewInternalError("ANL_9000", nil)),
			wantErr: NewInternalError("ANL_9000", nil),
			wantOk:  true,
		},
		{
			name:    "not found ServiceError",
			err:     NewNotFoundError("ANL_1000", "no candidate log file", nil),
			wantErr: NewNotFoundError("ANL_1000", "no candidate log file", nil),
			wantOk:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotErr, gotOk := AsServiceError(tt.err)

			assert.Equal(t, tt.wantOk, gotOk, "AsServiceError() ok value mismatch")

			if tt.wantErr == nil {
				assert.Nil(t, gotErr, "AsServiceError() should return nil error")
			} else {
				require.NotNil(t, gotErr, "AsServiceError() should return non-nil error")
				assert.Equal(t, tt.wantErr.Category, gotErr.Category, "Category mismatch")
				assert.Equal(t, tt.wantErr.Code, gotErr.Code, "Code mismatch")
				assert.Equal(t, tt.wantErr.Message, gotErr.Message, "Message mismatch")
			}
		})
	}
}

func TestServiceError_UnwrapAndCategories(t *testing.T) {
	t.Parallel()

	cause := errors.New("open /var/log/nginx: permission denied")
	svcErr := NewInternalError("ANL_9000", cause)

	assert.ErrorIs(t, svcErr, cause)
	assert.True(t, svcErr.IsInternalError())
	assert.False(t, svcErr.IsNotFound())
	assert.Equal(t, "ANL_9000: internal server error", svcErr.Error())

	notFound := NewNotFoundError("ANL_1000", "no candidate log file", nil)
	assert.True(t, notFound.IsNotFound())
	assert.False(t, notFound.IsInternalError())
	assert.Equal(t, 404, notFound.HttpStatusCode)
}
