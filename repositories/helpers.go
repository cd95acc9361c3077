package repositories

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

func checkAffectedRows(result sql.Result, notFoundError error) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if rowsAffected == 0 {
		return notFoundError
	}
	return nil
}

// asPQError unwraps a postgres error, if err is one.
func asPQError(err error) (*pq.Error, bool) {
	pqErr, ok := err.(*pq.Error)
	return pqErr, ok
}
