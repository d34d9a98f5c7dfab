// Package lifecycle implements the group order state machine:
// status parsing, deadline expiry, and the mutation guard.
package lifecycle

import (
	"errors"
	"fmt"
	"time"

	"github.com/mmynk/drinkorder/internal/models"
)

var (
	// ErrInvalidStatus is returned for status labels outside the enum.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrNotAcceptingChanges is returned when line items are changed on an
	// order that is not open.
	ErrNotAcceptingChanges = errors.New("group order is no longer accepting changes")
)

// Statuses lists every valid status in lifecycle order.
var Statuses = []models.Status{models.StatusOpen, models.StatusClosed, models.StatusFinalized}

// ParseStatus accepts exactly one of the three status labels.
func ParseStatus(s string) (models.Status, error) {
	for _, status := range Statuses {
		if string(status) == s {
			return status, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// Policy decides which explicit status updates are allowed.
type Policy struct {
	// AllowReopen permits moving a closed or finalized order back to open.
	AllowReopen bool
}

// DefaultPolicy accepts every valid target from every state, including
// re-opening a closed or finalized order.
var DefaultPolicy = Policy{AllowReopen: true}

// CanTransition reports whether an explicit status update from one state to
// another is allowed under p.
func (p Policy) CanTransition(from, to models.Status) bool {
	if _, err := ParseStatus(string(to)); err != nil {
		return false
	}
	if to == models.StatusOpen && from != models.StatusOpen {
		return p.AllowReopen
	}
	return true
}

// CanTransition reports whether DefaultPolicy allows the update.
func CanTransition(from, to models.Status) bool {
	return DefaultPolicy.CanTransition(from, to)
}

// ReconcileExpiry closes an open order whose deadline has passed.
//
// It returns the possibly updated order and whether the status changed. The
// caller is responsible for persisting the change when changed is true.
// Orders that are not open are returned untouched.
func ReconcileExpiry(order models.GroupOrder, now time.Time) (models.GroupOrder, bool) {
	if order.Status != models.StatusOpen {
		return order, false
	}
	if now.Before(order.Deadline) {
		return order, false
	}
	order.Status = models.StatusClosed
	return order, true
}

// EnsureAcceptingChanges guards line item add and edit.
func EnsureAcceptingChanges(order *models.GroupOrder) error {
	if !order.AcceptsChanges() {
		return ErrNotAcceptingChanges
	}
	return nil
}
