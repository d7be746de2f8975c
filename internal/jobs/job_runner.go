package jobs

import (
	"database/sql"

	"car-rental-backend/internal/config"
	"car-rental-backend/internal/logger"
)

// JobRunner executes scheduled maintenance jobs against the database.
type JobRunner struct {
	db  *sql.DB
	cfg *config.Config
}

func NewJobRunner(db *sql.DB, cfg *config.Config) *JobRunner {
	return &JobRunner{db: db, cfg: cfg}
}

func (jr *JobRunner) Config() *config.Config {
	return jr.cfg
}

// runWithRecovery guards a job against panics so one bad run cannot take the
// scheduler down.
func (jr *JobRunner) runWithRecovery(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("job panicked", "job", name, "panic", r)
		}
	}()
	logger.Info("job started", "job", name)
	fn()
	logger.Info("job finished", "job", name)
}
