package repo

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type op func(tx *gorm.DB) error

// session is the state shared by every repository of one unit of work:
// the connection, an optional explicit transaction and the write queue.
type session struct {
	db      *gorm.DB
	tx      *gorm.DB
	pending []op
	now     func() time.Time
}

func (s *session) conn() *gorm.DB {
	if s.tx != nil {
		return s.tx
	}
	return s.db
}

func (s *session) enqueue(o op) { s.pending = append(s.pending, o) }

// flush applies the queued writes in one transaction. The queue is emptied
// whether or not the flush succeeds.
func (s *session) flush(ctx context.Context) error {
	ops := s.pending
	s.pending = nil
	if len(ops) == 0 {
		return nil
	}
	run := func(tx *gorm.DB) error {
		for _, o := range ops {
			if err := o(tx); err != nil {
				return err
			}
		}
		return nil
	}
	if s.tx != nil {
		// inside an explicit transaction: use a savepoint so a failed flush
		// leaves earlier saved work intact until Commit or Rollback
		return s.tx.WithContext(ctx).Transaction(run)
	}
	return s.db.WithContext(ctx).Transaction(run)
}
