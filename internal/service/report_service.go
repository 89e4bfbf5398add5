package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gstippagol/habit/internal/domain/entity"
	"github.com/gstippagol/habit/internal/domain/repository"
	"github.com/gstippagol/habit/internal/domain/service"
)

// LedgerRenderer turns a month's completion grid into the document the
// report mail attaches. Implementations own all layout concerns.
type LedgerRenderer interface {
	Render(username string, ledger *MonthlyLedger) ([]byte, error)
}

type reportService struct {
	userRepo         repository.UserRepository
	habitRepo        repository.HabitRepository
	notificationRepo repository.NotificationRepository
	renderer         LedgerRenderer
	email            service.EmailService
}

// NewReportService creates the monthly report dispatcher.
func NewReportService(
	userRepo repository.UserRepository,
	habitRepo repository.HabitRepository,
	notificationRepo repository.NotificationRepository,
	renderer LedgerRenderer,
	email service.EmailService,
) service.ReportService {
	return &reportService{
		userRepo:         userRepo,
		habitRepo:        habitRepo,
		notificationRepo: notificationRepo,
		renderer:         renderer,
		email:            email,
	}
}

func (s *reportService) RunMonthlyReports(ctx context.Context, now time.Time) error {
	year, month := now.Year(), now.Month()
	log.Printf("Starting monthly report generation for %s %d", month, year)

	users, err := s.userRepo.GetActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to list active users: %w", err)
	}

	for _, user := range users {
		if err := s.processUser(ctx, user, year, month, now); err != nil {
			// Per-user isolation: log and carry on with the batch.
			log.Printf("Monthly report failed for user %s: %v", user.ID, err)
		}
	}

	log.Printf("Monthly report generation for %s %d finished", month, year)
	return nil
}

func (s *reportService) processUser(ctx context.Context, user *entity.User, year int, month time.Month, now time.Time) error {
	habits, err := s.habitRepo.GetAllByOwner(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("failed to load habits: %w", err)
	}

	ledger := BuildMonthlyLedger(habits, year, month)
	if ledger == nil {
		// Nothing tracked this month, no report to send.
		return nil
	}

	pdf, err := s.renderer.Render(user.Username, ledger)
	if err != nil {
		return fmt.Errorf("failed to render ledger: %w", err)
	}

	monthLabel := fmt.Sprintf("%s %d", month, year)

	record := entity.NewNotification(user.ID, entity.NotificationTypeMonthlyReport,
		"Your Monthly Habit Report: "+monthLabel, user.Email, now)
	if err := s.notificationRepo.Create(ctx, record); err != nil {
		return fmt.Errorf("failed to record notification: %w", err)
	}

	if err := s.email.SendMonthlyReport(ctx, user.Email, user.Username, monthLabel, pdf); err != nil {
		record.MarkFailed(err.Error(), now)
		if uerr := s.notificationRepo.Update(ctx, record); uerr != nil {
			log.Printf("Failed to mark notification failed: %v", uerr)
		}
		return fmt.Errorf("failed to send monthly report: %w", err)
	}

	record.MarkSent(now)
	if err := s.notificationRepo.Update(ctx, record); err != nil {
		log.Printf("Failed to mark notification sent: %v", err)
	}

	log.Printf("Report sent to %s", user.Username)
	return nil
}
