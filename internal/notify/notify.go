package notify

import (
	"context"

	"github.com/vk/gridcalc/internal/sheet"
)

// DefaultEvent is the event name evaluated tables are emitted on.
const DefaultEvent = "table:evaluated"

// Publisher delivers evaluated tables to subscribers.
type Publisher interface {
	Publish(ctx context.Context, tbl *sheet.Table) error
	Close(ctx context.Context) error
}

// Noop discards every table.
type Noop struct{}

var _ Publisher = Noop{}

func (Noop) Publish(context.Context, *sheet.Table) error { return nil }
func (Noop) Close(context.Context) error                 { return nil }
