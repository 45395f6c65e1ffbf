package database

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrewrin/LeadTransfer/pkg/apperror"
)

func TestHandleError(t *testing.T) {
	plain := errors.New("connection reset")

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "no rows becomes not found",
			err:        fmt.Errorf("scan: %w", pgx.ErrNoRows),
			wantStatus: http.StatusNotFound,
			wantMsg:    "UserProfile not found",
		},
		{
			name:       "unique violation becomes conflict",
			err:        &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_email_key"},
			wantStatus: http.StatusConflict,
			wantMsg:    "UserProfile already exists",
		},
		{
			name:       "foreign key violation becomes validation error",
			err:        &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "referenced record does not exist",
		},
		{
			name:       "check violation names the constraint",
			err:        &pgconn.PgError{Code: pgerrcode.CheckViolation, ConstraintName: "listings_price_check"},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "constraint violation: listings_price_check",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr, ok := apperror.As(HandleError(tt.err, "UserProfile"))
			require.True(t, ok)
			assert.Equal(t, tt.wantStatus, appErr.HTTPStatus)
			assert.Equal(t, tt.wantMsg, appErr.Message)
		})
	}

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, HandleError(nil, "UserProfile"))
	})

	t.Run("unknown errors pass through", func(t *testing.T) {
		assert.Same(t, plain, HandleError(plain, "UserProfile"))
	})
}

func TestIsUniqueViolation(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_email_key"})

	assert.True(t, IsUniqueViolation(err, ""))
	assert.True(t, IsUniqueViolation(err, "users_email_key"))
	assert.False(t, IsUniqueViolation(err, "roles_name_key"))
	assert.False(t, IsUniqueViolation(errors.New("boom"), ""))
}
