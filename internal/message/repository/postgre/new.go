package postgre

import (
	"database/sql"
	"fmt"

	"ai-brain/internal/message/repository"
	"ai-brain/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

var _ repository.MessageRepository = (*implRepository)(nil)

// New creates a PostgreSQL-backed MessageRepository.
func New(db *sql.DB, l log.Logger) repository.MessageRepository {
	if db == nil {
		panic("message/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn returns a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("message/repository/postgre.%s", method)
}
