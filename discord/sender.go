package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/KASHINO-SHINO/SYOUYA/metrics"
	"github.com/KASHINO-SHINO/SYOUYA/types"
	"github.com/google/uuid"
)

// SendReminder posts a scheduled reminder to the default channel.
func (d Client) SendReminder(ctx context.Context, message string) error {
	return d.sendScheduled(ctx, "reminder", message, emojiReminder, colorReminder)
}

// SendAnnouncement posts a scheduled announcement to the default channel.
func (d Client) SendAnnouncement(ctx context.Context, message string) error {
	return d.sendScheduled(ctx, "announcement", message, emojiAnnouncement, colorAnnouncement)
}

func (d Client) sendScheduled(ctx context.Context, kind, message, emoji string, color int) error {
	channelID := d.settings.DefaultChannelID
	embed := d.characterEmbed(message, emoji, color)
	if _, err := d.Session.ChannelMessageSendEmbed(channelID, embed); err != nil {
		return fmt.Errorf("error sending %s to channel %s: %w", kind, channelID, err)
	}
	metrics.DiscordMessageSent.Add(1)
	d.recordDelivery(ctx, kind, message, channelID)
	return nil
}

// recordDelivery writes to the delivery history when one is configured.
// A failed write is logged; the message already went out.
func (d Client) recordDelivery(ctx context.Context, kind, message, channelID string) {
	if d.db == nil {
		return
	}
	err := d.db.InsertDelivery(ctx, types.Delivery{
		ID:        uuid.NewString(),
		Kind:      kind,
		Message:   message,
		ChannelID: channelID,
		SentAt:    time.Now(),
	})
	if err != nil {
		d.logger.Error("failed to record delivery", "error", err.Error(), "kind", kind)
	}
}
