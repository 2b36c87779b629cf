package database

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/KASHINO-SHINO/SYOUYA/logging"
	"github.com/KASHINO-SHINO/SYOUYA/types"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockPostgres(t *testing.T) (*Postgres, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return &Postgres{connections: sqlxDB, logger: logging.Default()}, mock
}

func TestInsertDelivery(t *testing.T) {
	postgres, mock := newMockPostgres(t)

	delivery := types.Delivery{
		ID:        "a5a1c3a0-1111-4222-8333-444455556666",
		Kind:      "reminder",
		Category:  "",
		Message:   "朝だぞ",
		ChannelID: "chan-1",
		SentAt:    time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
	}

	mock.ExpectExec("INSERT INTO deliveries").
		WithArgs(delivery.ID, delivery.Kind, delivery.Category, delivery.Message, delivery.ChannelID, delivery.SentAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := postgres.InsertDelivery(context.Background(), delivery)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecentDeliveries(t *testing.T) {
	postgres, mock := newMockPostgres(t)

	expected := []types.Delivery{
		{
			ID:        "a5a1c3a0-1111-4222-8333-444455556666",
			Kind:      "announcement",
			Category:  "motivational",
			Message:   "頑張ろうぜ",
			ChannelID: "chan-1",
			SentAt:    time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:        "b6b2d4b1-2222-4333-9444-555566667777",
			Kind:      "reminder",
			Category:  "",
			Message:   "朝だぞ",
			ChannelID: "chan-1",
			SentAt:    time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
		},
	}

	rows := sqlmock.NewRows([]string{"id", "kind", "category", "message", "channel_id", "sent_at"})
	for _, d := range expected {
		rows.AddRow(d.ID, d.Kind, d.Category, d.Message, d.ChannelID, d.SentAt)
	}

	mock.ExpectQuery("SELECT id, kind, category, message, channel_id, sent_at FROM deliveries ORDER BY sent_at DESC LIMIT \\$1").
		WithArgs(10).
		WillReturnRows(rows)

	deliveries, err := postgres.RecentDeliveries(context.Background(), 10)

	assert.NoError(t, err)
	assert.Equal(t, expected, deliveries)
	assert.NoError(t, mock.ExpectationsWereMet())
}
