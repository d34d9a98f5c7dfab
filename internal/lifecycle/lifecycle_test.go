package lifecycle

import (
	"errors"
	"testing"
	"time"

	"github.com/mmynk/drinkorder/internal/models"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    models.Status
		wantErr bool
	}{
		{"開放中", models.StatusOpen, false},
		{"已截止", models.StatusClosed, false},
		{"已結單", models.StatusFinalized, false},
		{"未知", "", true},
		{"", "", true},
		{" 開放中", "", true},
		{"open", "", true},
	}

	for _, tt := range tests {
		got, err := ParseStatus(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseStatus(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if tt.wantErr && !errors.Is(err, ErrInvalidStatus) {
			t.Errorf("ParseStatus(%q) error = %v, want ErrInvalidStatus", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseStatus(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to models.Status
		want     bool
	}{
		{models.StatusOpen, models.StatusClosed, true},
		{models.StatusOpen, models.StatusFinalized, true},
		{models.StatusClosed, models.StatusFinalized, true},
		{models.StatusClosed, models.StatusOpen, true},
		{models.StatusFinalized, models.StatusOpen, true},
		{models.StatusOpen, "未知", false},
		{models.StatusClosed, "", false},
	}
	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransition(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestPolicy_WithoutReopen(t *testing.T) {
	policy := Policy{AllowReopen: false}

	tests := []struct {
		from, to models.Status
		want     bool
	}{
		{models.StatusOpen, models.StatusClosed, true},
		{models.StatusOpen, models.StatusOpen, true},
		{models.StatusClosed, models.StatusFinalized, true},
		{models.StatusFinalized, models.StatusClosed, true},
		{models.StatusClosed, models.StatusOpen, false},
		{models.StatusFinalized, models.StatusOpen, false},
		{models.StatusOpen, "未知", false},
	}
	for _, tt := range tests {
		if got := policy.CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransition(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestReconcileExpiry(t *testing.T) {
	now := time.Date(2026, 10, 18, 15, 0, 0, 0, time.Local)

	tests := []struct {
		name        string
		status      models.Status
		deadline    time.Time
		wantStatus  models.Status
		wantChanged bool
	}{
		{"open before deadline stays open", models.StatusOpen, now.Add(time.Hour), models.StatusOpen, false},
		{"open at deadline closes", models.StatusOpen, now, models.StatusClosed, true},
		{"open past deadline closes", models.StatusOpen, now.Add(-time.Minute), models.StatusClosed, true},
		{"closed past deadline untouched", models.StatusClosed, now.Add(-time.Hour), models.StatusClosed, false},
		{"finalized past deadline untouched", models.StatusFinalized, now.Add(-time.Hour), models.StatusFinalized, false},
		{"finalized before deadline untouched", models.StatusFinalized, now.Add(time.Hour), models.StatusFinalized, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := models.GroupOrder{ID: "g1", Status: tt.status, Deadline: tt.deadline}
			got, changed := ReconcileExpiry(order, now)
			if changed != tt.wantChanged {
				t.Errorf("changed = %v, want %v", changed, tt.wantChanged)
			}
			if got.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", got.Status, tt.wantStatus)
			}
			if order.Status != tt.status {
				t.Errorf("input order mutated: status %q", order.Status)
			}
		})
	}
}

func TestEnsureAcceptingChanges(t *testing.T) {
	tests := []struct {
		status  models.Status
		wantErr bool
	}{
		{models.StatusOpen, false},
		{models.StatusClosed, true},
		{models.StatusFinalized, true},
	}
	for _, tt := range tests {
		err := EnsureAcceptingChanges(&models.GroupOrder{Status: tt.status})
		if (err != nil) != tt.wantErr {
			t.Errorf("EnsureAcceptingChanges(%q) error = %v, wantErr %v", tt.status, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrNotAcceptingChanges) {
			t.Errorf("EnsureAcceptingChanges(%q) error = %v, want ErrNotAcceptingChanges", tt.status, err)
		}
	}
}

func TestReopenedOrderAcceptsChanges(t *testing.T) {
	order := models.GroupOrder{Status: models.StatusFinalized}
	if err := EnsureAcceptingChanges(&order); err == nil {
		t.Fatal("expected finalized order to reject changes")
	}
	if !CanTransition(order.Status, models.StatusOpen) {
		t.Fatal("expected re-open to be allowed")
	}
	order.Status = models.StatusOpen
	if err := EnsureAcceptingChanges(&order); err != nil {
		t.Errorf("re-opened order rejected changes: %v", err)
	}
}
