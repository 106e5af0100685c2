package errors

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapDBError(t *testing.T) {
	tests := []struct {
		name  string
		in    error
		check func(error) bool
	}{
		{name: "no rows", in: pgx.ErrNoRows, check: IsNotFound},
		{name: "deadline", in: context.DeadlineExceeded, check: IsTimeout},
		{name: "canceled", in: context.Canceled, check: IsCanceled},
		{name: "unique violation", in: &pgconn.PgError{Code: pgerrcode.UniqueViolation}, check: IsConflict},
		{name: "check violation", in: &pgconn.PgError{Code: pgerrcode.CheckViolation}, check: IsValidation},
		{name: "not null violation", in: &pgconn.PgError{Code: pgerrcode.NotNullViolation}, check: IsValidation},
		{name: "other pg error", in: &pgconn.PgError{Code: pgerrcode.SerializationFailure}, check: IsInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := MapDBError(tt.in)
			assert.True(t, tt.check(mapped))
			assert.ErrorIs(t, mapped, tt.in)
		})
	}
}

func TestMapDBError_Passthrough(t *testing.T) {
	assert.NoError(t, MapDBError(nil))

	plain := errors.New("driver hiccup")
	assert.Equal(t, plain, MapDBError(plain))
}
