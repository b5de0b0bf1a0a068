package postgres

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"
	"os"

	"github.com/Daikoman-palanarame2/Pokedex/internal/domain"
)

// translate converts driver-level failures into the availability error
// taxonomy. A connection can drop between the pre-flight guard check and the
// store call, so call-time failures must surface as timeout/unavailable rather
// than a generic server error. gorm.ErrRecordNotFound passes through for the
// service layer to interpret.
func translate(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || os.IsTimeout(err) {
		return domain.ErrDatabaseTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return domain.ErrDatabaseTimeout
		}
		return domain.ErrDatabaseUnavailable
	}
	if errors.Is(err, driver.ErrBadConn) {
		return domain.ErrDatabaseUnavailable
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return domain.ErrDatabaseUnavailable
	}

	return err
}
