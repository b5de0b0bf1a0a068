package postgres

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/Daikoman-palanarame2/Pokedex/internal/domain"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// fakeNetError satisfies net.Error with a controllable timeout flag, standing
// in for the driver's connection-level failures.
type fakeNetError struct {
	msg     string
	timeout bool
}

func (e fakeNetError) Error() string   { return e.msg }
func (e fakeNetError) Timeout() bool   { return e.timeout }
func (e fakeNetError) Temporary() bool { return false }

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{
			name: "nil passes through",
			in:   nil,
			want: nil,
		},
		{
			name: "context deadline is a timeout",
			in:   context.DeadlineExceeded,
			want: domain.ErrDatabaseTimeout,
		},
		{
			name: "wrapped context deadline is a timeout",
			in:   fmt.Errorf("query failed: %w", context.DeadlineExceeded),
			want: domain.ErrDatabaseTimeout,
		},
		{
			name: "network timeout is a timeout",
			in:   fakeNetError{msg: "read tcp: i/o timeout", timeout: true},
			want: domain.ErrDatabaseTimeout,
		},
		{
			name: "non-timeout network failure is unavailable",
			in:   fakeNetError{msg: "read tcp: connection reset by peer"},
			want: domain.ErrDatabaseUnavailable,
		},
		{
			name: "bad connection is unavailable",
			in:   driver.ErrBadConn,
			want: domain.ErrDatabaseUnavailable,
		},
		{
			name: "refused dial is unavailable",
			in: &net.OpError{
				Op:  "dial",
				Net: "tcp",
				Err: errors.New("connect: connection refused"),
			},
			want: domain.ErrDatabaseUnavailable,
		},
		{
			name: "record not found passes through",
			in:   gorm.ErrRecordNotFound,
			want: gorm.ErrRecordNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.want == nil {
				assert.NoError(t, translate(tt.in))
				return
			}
			assert.ErrorIs(t, translate(tt.in), tt.want)
		})
	}
}

func TestTranslate_UnknownErrorUnchanged(t *testing.T) {
	err := errors.New("duplicate key value violates unique constraint")
	assert.Equal(t, err, translate(err))
}
