package cron

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/gstippagol/habit/internal/domain/service"
)

const (
	// Daily inactivity scan at 10:00.
	reminderSpec = "0 10 * * *"

	// Last-day-of-month dispatch: fire on the 28th-31st at 23:59 and
	// only proceed when tomorrow is the 1st.
	reportSpec = "59 23 28-31 * *"

	jobTimeout = 10 * time.Minute
)

// Scheduler runs the periodic reminder and report jobs.
type Scheduler struct {
	reminders service.ReminderService
	reports   service.ReportService
	cron      *cron.Cron
}

// NewScheduler creates a new job scheduler.
func NewScheduler(reminders service.ReminderService, reports service.ReportService) *Scheduler {
	return &Scheduler{
		reminders: reminders,
		reports:   reports,
		cron:      cron.New(),
	}
}

// Start registers the jobs and starts the cron loop.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(reminderSpec, s.runInactivityScan); err != nil {
		return fmt.Errorf("failed to add reminder job: %w", err)
	}

	if _, err := s.cron.AddFunc(reportSpec, s.runMonthlyReports); err != nil {
		return fmt.Errorf("failed to add report job: %w", err)
	}

	s.cron.Start()
	log.Println("Scheduler started: inactivity scan @ 10:00, report dispatch @ month end 23:59")

	return nil
}

// Stop stops the scheduler and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	log.Println("Stopping scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("Scheduler stopped")
}

func (s *Scheduler) runInactivityScan() {
	log.Println("Running inactivity scan...")

	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	if err := s.reminders.RunInactivityScan(ctx, time.Now().UTC()); err != nil {
		log.Printf("Error running inactivity scan: %v", err)
		return
	}

	log.Println("Inactivity scan completed successfully")
}

func (s *Scheduler) runMonthlyReports() {
	now := time.Now()
	if now.AddDate(0, 0, 1).Day() != 1 {
		// The 28th-31st spec overshoots in shorter months.
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	if err := s.reports.RunMonthlyReports(ctx, now.UTC()); err != nil {
		log.Printf("Error running monthly reports: %v", err)
		return
	}

	log.Println("Monthly report dispatch completed successfully")
}
