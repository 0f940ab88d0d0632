package share

import (
	"context"
	"errors"
	"time"

	"github.com/nhle/kitchen-tracker/internal/grocery"
	"github.com/nhle/kitchen-tracker/internal/model"
)

// ErrNotConfigured is returned when share.email is missing its host,
// username or recipient.
var ErrNotConfigured = errors.New("email sharing is not configured")

// ErrNothingToShare is returned when every item is already checked off.
var ErrNothingToShare = errors.New("no open grocery items to share")

// Appender saves a raw message into a mailbox.
type Appender interface {
	Append(ctx context.Context, mailbox string, msg []byte) error
}

// Result describes a shared list.
type Result struct {
	Mailbox string
	Items   int
}

// GroceryList composes the open items of list and appends them to the
// configured mailbox.
func GroceryList(
	ctx context.Context,
	a Appender,
	cfg model.EmailShareConfig,
	items []model.GroceryItem,
	now time.Time,
) (Result, error) {
	if !cfg.Configured() {
		return Result{}, ErrNotConfigured
	}

	open := grocery.OpenItems(items)
	if len(open) == 0 {
		return Result{}, ErrNothingToShare
	}

	from := cfg.From
	if from == "" {
		from = cfg.Username
	}
	msg, err := Compose(from, cfg.To, grocery.GroupByCategory(open), now)
	if err != nil {
		return Result{}, err
	}
	if err := a.Append(ctx, cfg.Mailbox, msg); err != nil {
		return Result{}, err
	}
	return Result{Mailbox: cfg.Mailbox, Items: len(open)}, nil
}
