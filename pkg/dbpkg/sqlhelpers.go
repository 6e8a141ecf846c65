package dbpkg

import (
	"context"
	"database/sql"
	"time"
)

const pingTimeout = 5 * time.Second

// Setup sets up connection with database and checks that it is reachable.
func Setup(driver, source string) (*sql.DB, error) {
	db, err := sql.Open(driver, source)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}
