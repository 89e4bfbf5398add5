package service

import (
	"context"
	"testing"
	"time"

	"github.com/gstippagol/habit/internal/domain/entity"
)

// fakeRenderer returns a fixed payload and records what it rendered.
type fakeRenderer struct {
	rendered []*MonthlyLedger
}

func (r *fakeRenderer) Render(_ string, ledger *MonthlyLedger) ([]byte, error) {
	r.rendered = append(r.rendered, ledger)
	return []byte("%PDF-stub"), nil
}

func TestRunMonthlyReports(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 31, 23, 59, 0, 0, time.UTC)

	tracker := testUser("tracker@example.com", now.AddDate(0, -2, 0))
	idle := testUser("idle@example.com", now.AddDate(0, -2, 0))

	users := newFakeUserRepo(tracker, idle)
	habits := newFakeHabitRepo()
	notifications := &fakeNotificationRepo{}
	email := &fakeEmailService{}
	renderer := &fakeRenderer{}

	habit, err := entity.NewHabit(tracker.ID, "Read", now.AddDate(0, -2, 0))
	if err != nil {
		t.Fatalf("NewHabit: %v", err)
	}
	habit.CompletedDates = []string{"2024-03-01", "2024-03-02", "2024-03-15"}
	if err := habits.Create(ctx, habit); err != nil {
		t.Fatalf("Create: %v", err)
	}

	svc := NewReportService(users, habits, notifications, renderer, email)
	if err := svc.RunMonthlyReports(ctx, now); err != nil {
		t.Fatalf("RunMonthlyReports: %v", err)
	}

	// Only the user who tracked anything gets a report.
	if len(email.reports) != 1 || email.reports[0] != "tracker@example.com" {
		t.Fatalf("reports sent to %v, want only tracker@example.com", email.reports)
	}
	if string(email.attachments[0]) != "%PDF-stub" {
		t.Error("rendered document was not attached")
	}

	if len(renderer.rendered) != 1 {
		t.Fatalf("rendered %d ledgers, want 1", len(renderer.rendered))
	}
	ledger := renderer.rendered[0]
	if ledger.Year != 2024 || ledger.Month != time.March {
		t.Errorf("ledger month = %s %d, want March 2024", ledger.Month, ledger.Year)
	}

	if len(notifications.created) != 1 {
		t.Fatalf("notification records = %d, want 1", len(notifications.created))
	}
	record := notifications.created[0]
	if record.Type != entity.NotificationTypeMonthlyReport {
		t.Errorf("notification type = %s, want monthly_report", record.Type)
	}
	if record.Status != entity.NotificationStatusSent {
		t.Errorf("notification status = %s, want sent", record.Status)
	}
}

func TestRunMonthlyReportsIncludesDeletedHabits(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 31, 23, 59, 0, 0, time.UTC)

	user := testUser("quitter@example.com", now.AddDate(0, -2, 0))
	users := newFakeUserRepo(user)
	habits := newFakeHabitRepo()
	notifications := &fakeNotificationRepo{}
	email := &fakeEmailService{}
	renderer := &fakeRenderer{}

	// Tracked mid-month, then binned: the month's history still counts.
	habit, err := entity.NewHabit(user.ID, "Run", now.AddDate(0, -2, 0))
	if err != nil {
		t.Fatalf("NewHabit: %v", err)
	}
	habit.CompletedDates = []string{"2024-03-10"}
	deletedAt := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	habit.IsDeleted = true
	habit.DeletedAt = &deletedAt
	if err := habits.Create(ctx, habit); err != nil {
		t.Fatalf("Create: %v", err)
	}

	svc := NewReportService(users, habits, notifications, renderer, email)
	if err := svc.RunMonthlyReports(ctx, now); err != nil {
		t.Fatalf("RunMonthlyReports: %v", err)
	}

	if len(email.reports) != 1 {
		t.Errorf("reports = %v, want 1 for mid-month deleted habit", email.reports)
	}
}
