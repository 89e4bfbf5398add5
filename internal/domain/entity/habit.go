package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gstippagol/habit/pkg/dateutil"
)

// EditWindowDays is how far back a completion may still be toggled:
// today plus the two preceding days. Anti-backfill policy.
const EditWindowDays = 2

// RetentionDays is how long a soft-deleted habit stays restorable before
// it is eligible for permanent purge.
const RetentionDays = 30

// Habit is a user's tracked habit. The JSON field names are the wire
// contract shared with storage and reporting and must not change.
type Habit struct {
	ID      uuid.UUID `json:"id"`
	OwnerID uuid.UUID `json:"owner"`
	Title   string    `json:"title"`

	// CompletedDates holds one YYYY-MM-DD key per calendar day the habit
	// was marked done. Membership is unique; insertion order is kept.
	CompletedDates []string `json:"completedDates"`

	// Streak is derived from CompletedDates on every toggle and never
	// mutated independently.
	Streak int32 `json:"streak"`

	IsArchived bool       `json:"isArchived"`
	IsDeleted  bool       `json:"isDeleted"`
	DeletedAt  *time.Time `json:"deletedAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewHabit creates an active habit owned by the given user.
func NewHabit(ownerID uuid.UUID, title string, now time.Time) (*Habit, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	return &Habit{
		ID:             uuid.New(),
		OwnerID:        ownerID,
		Title:          title,
		CompletedDates: []string{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// IsActive reports whether the habit shows up on the active dashboard.
func (h *Habit) IsActive() bool {
	return !h.IsArchived && !h.IsDeleted
}

// IsCompletedOn reports whether dateKey is a recorded completion.
func (h *Habit) IsCompletedOn(dateKey string) bool {
	for _, d := range h.CompletedDates {
		if d == dateKey {
			return true
		}
	}
	return false
}

// createdDay returns the habit's creation date truncated to midnight UTC.
func (h *Habit) createdDay() time.Time {
	return dateutil.Midnight(h.CreatedAt.UTC())
}

// Toggle flips the completion state of dateKey. The current date is
// injected rather than read from a wall clock.
//
// Validation order: the target must not be in the future (ErrFutureDate),
// must be within the editable window of today and the two preceding days
// (ErrWindowClosed), and must not predate the habit (ErrPreCreation).
// On success Streak is recomputed. Applying Toggle twice restores the
// original membership.
func (h *Habit) Toggle(dateKey string, today time.Time) error {
	target, err := dateutil.ParseKey(dateKey)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrMalformedDate, dateKey)
	}

	diffDays := dateutil.DaysBetween(today, target)
	if diffDays < 0 {
		return ErrFutureDate
	}
	if diffDays > EditWindowDays {
		return ErrWindowClosed
	}
	if target.Before(h.createdDay()) {
		return ErrPreCreation
	}

	if h.IsCompletedOn(dateKey) {
		kept := h.CompletedDates[:0]
		for _, d := range h.CompletedDates {
			if d != dateKey {
				kept = append(kept, d)
			}
		}
		h.CompletedDates = kept
	} else {
		h.CompletedDates = append(h.CompletedDates, dateKey)
	}

	h.RecomputeStreak()
	return nil
}

// RecomputeStreak rescans CompletedDates and replaces Streak with the
// count of consecutive completed days ending at the most recent
// completion, stopping at the first gap or at a day before CreatedAt.
func (h *Habit) RecomputeStreak() {
	latest := h.latestCompletion()
	if latest.IsZero() {
		h.Streak = 0
		return
	}

	created := h.createdDay()
	var streak int32
	for day := latest; !day.Before(created); day = day.AddDate(0, 0, -1) {
		if !h.IsCompletedOn(dateutil.KeyFromTime(day)) {
			break
		}
		streak++
	}
	h.Streak = streak
}

// latestCompletion returns the most recent completed day, or the zero
// time when there are none. CompletedDates is not kept sorted.
func (h *Habit) latestCompletion() time.Time {
	var latest time.Time
	for _, key := range h.CompletedDates {
		day, err := dateutil.ParseKey(key)
		if err != nil {
			continue
		}
		if day.After(latest) {
			latest = day
		}
	}
	return latest
}

// SetArchived toggles the archive flag. Deleted habits cannot be
// archived or unarchived.
func (h *Habit) SetArchived(archived bool, now time.Time) error {
	if h.IsDeleted {
		return ErrInvalidTransition
	}
	h.IsArchived = archived
	h.UpdatedAt = now
	return nil
}

// SoftDelete moves the habit to the recycle bin, stamping DeletedAt.
// The archive flag is preserved but irrelevant while deleted.
func (h *Habit) SoftDelete(now time.Time) error {
	if h.IsDeleted {
		return ErrInvalidTransition
	}
	h.IsDeleted = true
	h.DeletedAt = &now
	h.UpdatedAt = now
	return nil
}

// Restore brings a deleted habit back to the active dashboard. The
// archive flag is always cleared: restore never lands in the archive.
func (h *Habit) Restore(now time.Time) error {
	if !h.IsDeleted {
		return ErrInvalidTransition
	}
	h.IsDeleted = false
	h.DeletedAt = nil
	h.IsArchived = false
	h.UpdatedAt = now
	return nil
}

// PurgeDeadline returns when a deleted habit becomes eligible for
// permanent purge, or the zero time when the habit is not deleted.
func (h *Habit) PurgeDeadline() time.Time {
	if h.DeletedAt == nil {
		return time.Time{}
	}
	return h.DeletedAt.AddDate(0, 0, RetentionDays)
}

// DaysUntilPurge returns how many whole days remain before the purge
// deadline. Advisory only; the sweep itself is an explicit operation.
// The calendar day is taken in UTC regardless of now's zone.
func (h *Habit) DaysUntilPurge(now time.Time) int {
	deadline := h.PurgeDeadline()
	if deadline.IsZero() {
		return 0
	}
	days := dateutil.DaysBetween(deadline, now.UTC())
	if days < 0 {
		return 0
	}
	return days
}
