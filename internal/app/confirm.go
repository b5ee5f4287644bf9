package app

import (
	"context"
	"sync"
)

const (
	DefaultConfirmTitle       = "Are you sure you want to delete?"
	DefaultConfirmDescription = "This action cannot be undone."

	HotelDeleteTitle       = "Do you want to delete the hotel?"
	HotelDeleteDescription = "Once confirmed, the selected hotel and all its data will be removed from the system. This cannot be undone."
	UserDeleteTitle        = "Do you want to delete the user?"
	UserDeleteDescription  = "Once confirmed, the selected user and all its data will be removed from the system. This cannot be undone."
)

// DeleteConfirmation gates a destructive action behind an explicit confirm.
// Nothing runs unless Confirm is called while the prompt is open.
type DeleteConfirmation struct {
	Title       string
	Description string

	action func(ctx context.Context) bool

	mu   sync.Mutex
	open bool
}

func NewDeleteConfirmation(title, description string, action func(ctx context.Context) bool) *DeleteConfirmation {
	if title == "" {
		title = DefaultConfirmTitle
	}
	if description == "" {
		description = DefaultConfirmDescription
	}
	return &DeleteConfirmation{Title: title, Description: description, action: action, open: true}
}

func (c *DeleteConfirmation) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open
}

// Confirm runs the action once and closes the prompt. A closed prompt
// reports false without calling anything.
func (c *DeleteConfirmation) Confirm(ctx context.Context) bool {
	c.mu.Lock()
	if !c.open {
		c.mu.Unlock()
		return false
	}
	c.open = false
	c.mu.Unlock()
	return c.action(ctx)
}

func (c *DeleteConfirmation) Dismiss() {
	c.mu.Lock()
	c.open = false
	c.mu.Unlock()
}
