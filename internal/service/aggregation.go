package service

import (
	"math"
	"strings"
	"time"

	"github.com/gstippagol/habit/internal/domain/entity"
	"github.com/gstippagol/habit/pkg/dateutil"
)

// InactivityLookbackDays is the window the reminder scan checks for
// recent completions: today and the two preceding days.
const InactivityLookbackDays = 2

// ActivityStatus classifies one user's recent engagement.
type ActivityStatus int

const (
	// ActivityNoHabits: the user has no active habits at all. Kept
	// distinct from inactive so the starter nudge differs from the
	// discipline nudge.
	ActivityNoHabits ActivityStatus = iota
	ActivityInactive
	ActivityActive
)

// ClassifyActivity inspects a user's habits as of now. Only active
// (neither archived nor deleted) habits count; a single completion
// within the lookback window makes the user active.
func ClassifyActivity(habits []*entity.Habit, now time.Time) ActivityStatus {
	windowStart := dateutil.Midnight(now).AddDate(0, 0, -InactivityLookbackDays)

	hasActive := false
	for _, h := range habits {
		if !h.IsActive() {
			continue
		}
		hasActive = true

		for _, key := range h.CompletedDates {
			day, err := dateutil.ParseKey(key)
			if err != nil {
				continue
			}
			if !day.Before(windowStart) {
				return ActivityActive
			}
		}
	}

	if !hasActive {
		return ActivityNoHabits
	}
	return ActivityInactive
}

// IncludeInMonth reports whether a habit belongs in the month's rollup:
// it must have existed on or before the month's last day, or have at
// least one completion recorded in the month. Habits deleted before the
// month started are excluded. Deleted-during-the-month habits stay in,
// so historical reports survive deletion.
func IncludeInMonth(h *entity.Habit, year int, month time.Month) bool {
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	if h.IsDeleted && h.DeletedAt != nil && h.DeletedAt.Before(monthStart) {
		return false
	}

	monthEnd := time.Date(year, month, dateutil.DaysInMonth(year, month), 23, 59, 59, 0, time.UTC)
	if !h.CreatedAt.After(monthEnd) {
		return true
	}

	prefix := dateutil.MonthPrefix(year, month)
	for _, key := range h.CompletedDates {
		if strings.HasPrefix(key, prefix) {
			return true
		}
	}
	return false
}

// MonthlyRollup summarizes one habit's completions for a month.
type MonthlyRollup struct {
	Completed   int
	DaysInMonth int
	Percent     int
}

// RollupMonth counts the habit's completions carrying the month's prefix
// and computes the rounded completion percentage.
func RollupMonth(h *entity.Habit, year int, month time.Month) MonthlyRollup {
	prefix := dateutil.MonthPrefix(year, month)

	completed := 0
	for _, key := range h.CompletedDates {
		if strings.HasPrefix(key, prefix) {
			completed++
		}
	}

	days := dateutil.DaysInMonth(year, month)
	return MonthlyRollup{
		Completed:   completed,
		DaysInMonth: days,
		Percent:     int(math.Round(float64(completed) / float64(days) * 100)),
	}
}

// LedgerCell is one day-by-habit cell of the monthly ledger.
type LedgerCell string

const (
	LedgerDone   LedgerCell = "YES"
	LedgerMissed LedgerCell = "NO"
	// LedgerNotApplicable marks days before the habit existed; those are
	// rendered as locked, not missed.
	LedgerNotApplicable LedgerCell = "-"
)

// MonthlyLedger is the day grid for one user's month, ready for layout.
type MonthlyLedger struct {
	Year   int
	Month  time.Month
	Titles []string
	// Rows has one entry per day of the month, indexed day-1, each with
	// one cell per habit in Titles order.
	Rows    [][]LedgerCell
	Rollups []MonthlyRollup
}

// BuildMonthlyLedger filters the habits through IncludeInMonth and lays
// out the per-day completion grid with totals. Returns nil when no habit
// qualifies, which skips the user's report entirely.
func BuildMonthlyLedger(habits []*entity.Habit, year int, month time.Month) *MonthlyLedger {
	var included []*entity.Habit
	for _, h := range habits {
		if IncludeInMonth(h, year, month) {
			included = append(included, h)
		}
	}
	if len(included) == 0 {
		return nil
	}

	days := dateutil.DaysInMonth(year, month)
	ledger := &MonthlyLedger{
		Year:  year,
		Month: month,
		Rows:  make([][]LedgerCell, days),
	}

	for _, h := range included {
		ledger.Titles = append(ledger.Titles, h.Title)
		ledger.Rollups = append(ledger.Rollups, RollupMonth(h, year, month))
	}

	for day := 1; day <= days; day++ {
		key := dateutil.FormatKey(year, month, day)
		row := make([]LedgerCell, len(included))
		for i, h := range included {
			switch {
			case key < dateutil.KeyFromTime(h.CreatedAt.UTC()):
				row[i] = LedgerNotApplicable
			case h.IsCompletedOn(key):
				row[i] = LedgerDone
			default:
				row[i] = LedgerMissed
			}
		}
		ledger.Rows[day-1] = row
	}

	return ledger
}
