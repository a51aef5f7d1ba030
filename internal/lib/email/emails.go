package email

import (
	"context"
	"fmt"
	"time"
)

// RecordChange describes one admin edit.
type RecordChange struct {
	Entity     string
	Action     string // created, updated or deleted
	RecordID   int64
	RecordName string
	OccurredAt time.Time
}

// SendRecordChanged notifies admins about a change.
func (c *Client) SendRecordChanged(ctx context.Context, to []string, change RecordChange) error {
	data := map[string]any{
		"Entity":     change.Entity,
		"Action":     change.Action,
		"RecordID":   change.RecordID,
		"RecordName": change.RecordName,
		"OccurredAt": change.OccurredAt.UTC().Format(time.RFC1123),
	}

	return c.SendEmail(
		ctx,
		to,
		fmt.Sprintf("[Procurement CMS] %s %s: %s", change.Entity, change.Action, change.RecordName),
		TemplateRecordChanged,
		data,
	)
}
