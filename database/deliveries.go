package database

import (
	"context"
	"fmt"

	"github.com/KASHINO-SHINO/SYOUYA/types"
)

// DeliveryWriter is an interface for recording posted scheduled messages.
type DeliveryWriter interface {
	InsertDelivery(ctx context.Context, delivery types.Delivery) error
	RecentDeliveries(ctx context.Context, limit int) ([]types.Delivery, error)
}

// InsertDelivery records one posted reminder or announcement.
func (p *Postgres) InsertDelivery(ctx context.Context, delivery types.Delivery) error {
	query := "INSERT INTO deliveries (id, kind, category, message, channel_id, sent_at) VALUES (:id, :kind, :category, :message, :channel_id, :sent_at)"
	_, err := p.connections.NamedExecContext(ctx, query, delivery)
	if err != nil {
		return fmt.Errorf("error inserting delivery: %w", err)
	}
	return nil
}

// RecentDeliveries returns the most recently posted messages, newest first.
func (p *Postgres) RecentDeliveries(ctx context.Context, limit int) ([]types.Delivery, error) {
	var deliveries []types.Delivery
	query := "SELECT id, kind, category, message, channel_id, sent_at FROM deliveries ORDER BY sent_at DESC LIMIT $1"
	rows, err := p.connections.QueryxContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("error getting recent deliveries: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var delivery types.Delivery
		err = rows.StructScan(&delivery)
		if err != nil {
			return nil, fmt.Errorf("error scanning delivery: %w", err)
		}
		deliveries = append(deliveries, delivery)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error scanning deliveries: %w", err)
	}
	return deliveries, nil
}
