// Package sentlog remembers which WhatsApp reminders an admin has already
// sent, so the stamp task list can hide them by default. The record is a
// plain set of task IDs under a single key; it is advisory bookkeeping, not
// part of the billing data, so losing it only makes sent tasks reappear.
package sentlog

import "context"

// Store is a set of sent task IDs.
type Store interface {
	// Sent returns every recorded task ID.
	Sent(ctx context.Context) (map[string]bool, error)
	// MarkSent records a task ID. Re-marking is a no-op.
	MarkSent(ctx context.Context, id string) error
	// Clear drops the whole record.
	Clear(ctx context.Context) error
}
