package grid

import (
	"context"
	"time"
)

// GridEventType identifies an event emitted on the processor's bus.
type GridEventType string

// Supported event types.
const (
	ComputeStart     GridEventType = "compute:start"
	ComputeSuccess   GridEventType = "compute:success"
	CellDiagnostic   GridEventType = "cell:diagnostic"
	ColumnsValidated GridEventType = "columns:validated"
)

// GridEvent is the envelope emitted during grid operations.
type GridEvent struct {
	Type      GridEventType `json:"type"`
	Timestamp int64         `json:"timestamp"`          // Unix milliseconds.
	Column    *string       `json:"column,omitempty"`   // Column involved, if any.
	Rows      int           `json:"rows,omitempty"`     // Number of rows in the operation.
	Value     any           `json:"value,omitempty"`    // Diagnostic value for cell:diagnostic events.
	Issues    []Issue       `json:"issues,omitempty"`   // Validation issues, if any.
	Duration  *int64        `json:"duration,omitempty"` // Operation duration in milliseconds.
}

// EventCallback is the signature for grid event subscribers.
type EventCallback func(ctx context.Context, event GridEvent) error

// SubscriptionInfo describes an active event subscription.
type SubscriptionInfo struct {
	ID          string        `json:"id"`
	Event       GridEventType `json:"event"`
	Label       *string       `json:"label,omitempty"`
	Unsubscribe func()        `json:"-"`
}

// Issue represents a validation problem with a column definition.
type Issue struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Column   string `json:"column,omitempty"`
	Severity string `json:"severity,omitempty"` // "error" or "warning"
}

func createEvent(
	eventType GridEventType,
	column *string,
	rows int,
	value any,
	issues []Issue,
	startTime time.Time,
) GridEvent {
	var duration *int64
	if !startTime.IsZero() {
		d := time.Since(startTime).Milliseconds()
		duration = &d
	}

	return GridEvent{
		Type:      eventType,
		Timestamp: time.Now().UnixMilli(),
		Column:    column,
		Rows:      rows,
		Value:     value,
		Issues:    issues,
		Duration:  duration,
	}
}
