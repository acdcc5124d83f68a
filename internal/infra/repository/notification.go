package repository

import (
	"context"

	"stayhub/internal/infra"
	"stayhub/internal/usecase/commands"

	"github.com/jackc/pgx/v5/pgxpool"
)

// notificationJobRepository enqueues outbound notifications as rows for
// an external worker to drain. Enqueue runs outside the booking
// transaction so a failure here never unwinds a committed write.
type notificationJobRepository struct {
	pool *pgxpool.Pool
}

func NewNotificationJobRepository(pool *pgxpool.Pool) commands.Notifier {
	return &notificationJobRepository{pool: pool}
}

const insertNotificationJobQuery = `
INSERT INTO notification_jobs (topic, payload)
VALUES ($1, $2)`

func (r *notificationJobRepository) Enqueue(ctx context.Context, topic string, payload []byte) error {
	if _, err := r.pool.Exec(ctx, insertNotificationJobQuery, topic, payload); err != nil {
		return infra.WrapRepoErr("failed to enqueue notification job", err)
	}
	return nil
}
