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

const (
	// starterNudgeMinAge: freshly registered users get a day of grace
	// before the "create your first habit" nudge.
	starterNudgeMinAge = 24 * time.Hour

	// nudgeCooldown rate-limits inactivity nudges per user.
	nudgeCooldown = 3 * 24 * time.Hour
)

type reminderService struct {
	userRepo         repository.UserRepository
	habitRepo        repository.HabitRepository
	notificationRepo repository.NotificationRepository
	email            service.EmailService
}

// NewReminderService creates the daily inactivity scanner.
func NewReminderService(
	userRepo repository.UserRepository,
	habitRepo repository.HabitRepository,
	notificationRepo repository.NotificationRepository,
	email service.EmailService,
) service.ReminderService {
	return &reminderService{
		userRepo:         userRepo,
		habitRepo:        habitRepo,
		notificationRepo: notificationRepo,
		email:            email,
	}
}

func (s *reminderService) RunInactivityScan(ctx context.Context, now time.Time) error {
	users, err := s.userRepo.GetActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to list active users: %w", err)
	}

	for _, user := range users {
		if err := s.processUser(ctx, user, now); err != nil {
			// One user's failure never aborts the batch.
			log.Printf("Inactivity scan failed for user %s: %v", user.ID, err)
		}
	}

	return nil
}

func (s *reminderService) processUser(ctx context.Context, user *entity.User, now time.Time) error {
	habits, err := s.habitRepo.GetAllByOwner(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("failed to load habits: %w", err)
	}

	switch ClassifyActivity(habits, now) {
	case ActivityNoHabits:
		return s.sendStarterNudge(ctx, user, now)
	case ActivityInactive:
		return s.sendInactivityNudge(ctx, user, now)
	default:
		return nil
	}
}

func (s *reminderService) sendStarterNudge(ctx context.Context, user *entity.User, now time.Time) error {
	if now.Sub(user.CreatedAt) < starterNudgeMinAge {
		return nil
	}
	// The starter nudge goes out once, ever.
	if user.LastReminderSent != nil {
		return nil
	}

	log.Printf("Sending starter nudge to %s", user.Username)

	record := entity.NewNotification(user.ID, entity.NotificationTypeStarterNudge,
		"Your journey starts today", user.Email, now)
	if err := s.notificationRepo.Create(ctx, record); err != nil {
		return fmt.Errorf("failed to record notification: %w", err)
	}

	if err := s.email.SendStarterNudge(ctx, user.Email, user.Username); err != nil {
		record.MarkFailed(err.Error(), now)
		if uerr := s.notificationRepo.Update(ctx, record); uerr != nil {
			log.Printf("Failed to mark notification failed: %v", uerr)
		}
		return fmt.Errorf("failed to send starter nudge: %w", err)
	}

	record.MarkSent(now)
	if err := s.notificationRepo.Update(ctx, record); err != nil {
		log.Printf("Failed to mark notification sent: %v", err)
	}

	return s.userRepo.SetLastReminderSent(ctx, user.ID, now)
}

func (s *reminderService) sendInactivityNudge(ctx context.Context, user *entity.User, now time.Time) error {
	if user.LastReminderSent != nil && now.Sub(*user.LastReminderSent) < nudgeCooldown {
		return nil
	}

	log.Printf("Sending inactivity nudge to %s", user.Username)

	record := entity.NewNotification(user.ID, entity.NotificationTypeInactivity,
		"Discipline equals freedom", user.Email, now)
	if err := s.notificationRepo.Create(ctx, record); err != nil {
		return fmt.Errorf("failed to record notification: %w", err)
	}

	if err := s.email.SendInactivityNudge(ctx, user.Email, user.Username); err != nil {
		record.MarkFailed(err.Error(), now)
		if uerr := s.notificationRepo.Update(ctx, record); uerr != nil {
			log.Printf("Failed to mark notification failed: %v", uerr)
		}
		return fmt.Errorf("failed to send inactivity nudge: %w", err)
	}

	record.MarkSent(now)
	if err := s.notificationRepo.Update(ctx, record); err != nil {
		log.Printf("Failed to mark notification sent: %v", err)
	}

	return s.userRepo.SetLastReminderSent(ctx, user.ID, now)
}
