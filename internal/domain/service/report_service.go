package service

import (
	"context"
	"time"
)

// ReminderService scans users for inactivity and dispatches nudges.
type ReminderService interface {
	// RunInactivityScan processes every active user once. A failure for
	// one user is logged and must not abort the rest of the batch.
	RunInactivityScan(ctx context.Context, now time.Time) error
}

// ReportService assembles and dispatches the monthly habit reports.
type ReportService interface {
	// RunMonthlyReports builds and emails one ledger per eligible user
	// for the month containing now. Per-user failures are isolated.
	RunMonthlyReports(ctx context.Context, now time.Time) error
}

// EmailService defines the outbound mail operations. Implementations own
// all transport and templating concerns.
type EmailService interface {
	SendVerificationEmail(ctx context.Context, to, username, token string) error
	SendStarterNudge(ctx context.Context, to, username string) error
	SendInactivityNudge(ctx context.Context, to, username string) error
	SendMonthlyReport(ctx context.Context, to, username, monthLabel string, pdf []byte) error
}
