package ui

import (
	"time"

	"github.com/marcus/catatan/internal/styles"
)

// Toast is a transient status message.
type Toast struct {
	Message string
	IsError bool
	Expires time.Time
}

// Active reports whether the toast should still be shown at now.
func (t Toast) Active(now time.Time) bool {
	return t.Message != "" && now.Before(t.Expires)
}

// Render styles the toast for its kind.
func (t Toast) Render() string {
	if t.IsError {
		return styles.ToastError.Render(t.Message)
	}
	return styles.ToastSuccess.Render(t.Message)
}
