// Package notify combines notification transports.
//
// FanOut delivers every notification to each of its notifiers and reports
// the joined failures; a failing transport never hides the others.
package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"pressing/internal/core/ports"
)

var _ ports.Notifier = (*FanOut)(nil)
var _ ports.Notifier = (*LogNotifier)(nil)

type FanOut struct {
	notifiers []ports.Notifier
}

func NewFanOut(notifiers ...ports.Notifier) *FanOut {
	return &FanOut{notifiers: notifiers}
}

func (f *FanOut) Notify(ctx context.Context, n ports.Notification) error {
	var errs []error
	for i, notifier := range f.notifiers {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if err := notifier.Notify(ctx, n); err != nil {
			errs = append(errs, fmt.Errorf("notifier %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// LogNotifier writes notifications to the log.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With("component", "log_notifier")}
}

func (l *LogNotifier) Notify(ctx context.Context, n ports.Notification) error {
	l.logger.InfoContext(ctx, "Notification sent",
		"user_id", n.UserID,
		"kind", n.Kind.String(),
		"order_number", n.OrderNumber,
		"title", n.Title,
	)
	return nil
}
