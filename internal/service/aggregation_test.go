package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/gstippagol/habit/internal/domain/entity"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func habitWith(created time.Time, dates ...string) *entity.Habit {
	return &entity.Habit{
		ID:             uuid.New(),
		OwnerID:        uuid.New(),
		Title:          "Drink 2L Water",
		CompletedDates: dates,
		CreatedAt:      created,
		UpdatedAt:      created,
	}
}

func TestClassifyActivity(t *testing.T) {
	now := day(2024, 3, 10)

	t.Run("no habits", func(t *testing.T) {
		if got := ClassifyActivity(nil, now); got != ActivityNoHabits {
			t.Errorf("status = %v, want ActivityNoHabits", got)
		}
	})

	t.Run("last completion three days ago is inactive", func(t *testing.T) {
		habits := []*entity.Habit{habitWith(day(2024, 1, 1), "2024-03-07")}
		if got := ClassifyActivity(habits, now); got != ActivityInactive {
			t.Errorf("status = %v, want ActivityInactive", got)
		}
	})

	t.Run("completion yesterday is active", func(t *testing.T) {
		habits := []*entity.Habit{habitWith(day(2024, 1, 1), "2024-03-07", "2024-03-09")}
		if got := ClassifyActivity(habits, now); got != ActivityActive {
			t.Errorf("status = %v, want ActivityActive", got)
		}
	})

	t.Run("window boundary counts", func(t *testing.T) {
		habits := []*entity.Habit{habitWith(day(2024, 1, 1), "2024-03-08")}
		if got := ClassifyActivity(habits, now); got != ActivityActive {
			t.Errorf("status = %v, want ActivityActive (exactly 2 days back)", got)
		}
	})

	t.Run("archived habits do not count", func(t *testing.T) {
		h := habitWith(day(2024, 1, 1), "2024-03-09")
		h.IsArchived = true
		if got := ClassifyActivity([]*entity.Habit{h}, now); got != ActivityNoHabits {
			t.Errorf("status = %v, want ActivityNoHabits", got)
		}
	})

	t.Run("deleted habits do not count", func(t *testing.T) {
		h := habitWith(day(2024, 1, 1), "2024-03-09")
		deletedAt := day(2024, 3, 9)
		h.IsDeleted = true
		h.DeletedAt = &deletedAt
		if got := ClassifyActivity([]*entity.Habit{h}, now); got != ActivityNoHabits {
			t.Errorf("status = %v, want ActivityNoHabits", got)
		}
	})
}

func TestRollupMonth(t *testing.T) {
	// Ten completions in a 30-day month round to 33%.
	dates := make([]string, 0, 10)
	for d := 1; d <= 10; d++ {
		dates = append(dates, time.Date(2024, 4, d, 0, 0, 0, 0, time.UTC).Format("2006-01-02"))
	}
	h := habitWith(day(2024, 4, 1), dates...)

	got := RollupMonth(h, 2024, time.April)
	if got.Completed != 10 || got.DaysInMonth != 30 || got.Percent != 33 {
		t.Errorf("rollup = %+v, want 10/30 = 33%%", got)
	}

	// Completions from other months never leak in.
	h.CompletedDates = append(h.CompletedDates, "2024-03-31", "2024-05-01")
	got = RollupMonth(h, 2024, time.April)
	if got.Completed != 10 {
		t.Errorf("completed = %d, want 10 after adding out-of-month dates", got.Completed)
	}
}

func TestRollupMonthRounding(t *testing.T) {
	// 15/31 rounds to 48, 16/31 rounds to 52.
	tests := []struct {
		completed int
		want      int
	}{
		{15, 48},
		{16, 52},
		{0, 0},
		{31, 100},
	}

	for _, tt := range tests {
		dates := make([]string, 0, tt.completed)
		for d := 1; d <= tt.completed; d++ {
			dates = append(dates, time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC).Format("2006-01-02"))
		}
		h := habitWith(day(2024, 1, 1), dates...)
		if got := RollupMonth(h, 2024, time.January); got.Percent != tt.want {
			t.Errorf("percent(%d/31) = %d, want %d", tt.completed, got.Percent, tt.want)
		}
	}
}

func TestIncludeInMonth(t *testing.T) {
	t.Run("created during the month", func(t *testing.T) {
		h := habitWith(day(2024, 4, 20))
		if !IncludeInMonth(h, 2024, time.April) {
			t.Error("habit created mid-month excluded")
		}
	})

	t.Run("created after the month without completions", func(t *testing.T) {
		h := habitWith(day(2024, 5, 2))
		if IncludeInMonth(h, 2024, time.April) {
			t.Error("future habit included")
		}
	})

	t.Run("created later but has a completion in the month", func(t *testing.T) {
		// Backdated data can exist after imports; completions win.
		h := habitWith(day(2024, 5, 2), "2024-04-15")
		if !IncludeInMonth(h, 2024, time.April) {
			t.Error("habit with in-month completion excluded")
		}
	})

	t.Run("deleted before the month starts", func(t *testing.T) {
		h := habitWith(day(2024, 1, 1), "2024-02-10")
		deletedAt := day(2024, 3, 15)
		h.IsDeleted = true
		h.DeletedAt = &deletedAt
		if IncludeInMonth(h, 2024, time.April) {
			t.Error("habit deleted before the month included")
		}
	})

	t.Run("deleted during the month stays for historical reporting", func(t *testing.T) {
		h := habitWith(day(2024, 1, 1), "2024-04-02")
		deletedAt := day(2024, 4, 20)
		h.IsDeleted = true
		h.DeletedAt = &deletedAt
		if !IncludeInMonth(h, 2024, time.April) {
			t.Error("habit deleted mid-month excluded")
		}
	})
}

func TestBuildMonthlyLedger(t *testing.T) {
	created := day(2024, 4, 10)
	h := habitWith(created, "2024-04-10", "2024-04-12")

	ledger := BuildMonthlyLedger([]*entity.Habit{h}, 2024, time.April)
	if ledger == nil {
		t.Fatal("ledger is nil")
	}
	if len(ledger.Rows) != 30 {
		t.Fatalf("rows = %d, want 30", len(ledger.Rows))
	}

	// Day 9 predates creation, day 10 is done, day 11 is missed.
	if got := ledger.Rows[8][0]; got != LedgerNotApplicable {
		t.Errorf("day 9 = %q, want %q", got, LedgerNotApplicable)
	}
	if got := ledger.Rows[9][0]; got != LedgerDone {
		t.Errorf("day 10 = %q, want %q", got, LedgerDone)
	}
	if got := ledger.Rows[10][0]; got != LedgerMissed {
		t.Errorf("day 11 = %q, want %q", got, LedgerMissed)
	}

	if ledger.Rollups[0].Completed != 2 {
		t.Errorf("rollup completed = %d, want 2", ledger.Rollups[0].Completed)
	}
}

func TestBuildMonthlyLedgerEmpty(t *testing.T) {
	h := habitWith(day(2024, 6, 1)) // created after April
	if ledger := BuildMonthlyLedger([]*entity.Habit{h}, 2024, time.April); ledger != nil {
		t.Error("expected nil ledger when no habit qualifies")
	}
}
