package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/gstippagol/habit/internal/domain/entity"
)

// fakeUserRepo is an in-memory UserRepository for scan tests.
type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, userID uuid.UUID) (*entity.User, error) {
	user, ok := r.users[userID]
	if !ok {
		return nil, entity.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, entity.ErrUserNotFound
}

func (r *fakeUserRepo) GetActive(_ context.Context) ([]*entity.User, error) {
	var out []*entity.User
	for _, user := range r.users {
		if user.IsActive {
			out = append(out, user)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) SetLastReminderSent(_ context.Context, userID uuid.UUID, at time.Time) error {
	user, ok := r.users[userID]
	if !ok {
		return entity.ErrUserNotFound
	}
	stamp := at
	user.LastReminderSent = &stamp
	return nil
}

func (r *fakeUserRepo) SetVerified(_ context.Context, userID uuid.UUID) error {
	user, ok := r.users[userID]
	if !ok {
		return entity.ErrUserNotFound
	}
	user.IsVerified = true
	return nil
}

// fakeNotificationRepo records notification rows without persistence.
type fakeNotificationRepo struct {
	created []*entity.Notification
}

func (r *fakeNotificationRepo) Create(_ context.Context, n *entity.Notification) error {
	r.created = append(r.created, n)
	return nil
}

func (r *fakeNotificationRepo) Update(_ context.Context, n *entity.Notification) error {
	for i, existing := range r.created {
		if existing.ID == n.ID {
			r.created[i] = n
		}
	}
	return nil
}

func (r *fakeNotificationRepo) GetByUserID(_ context.Context, userID uuid.UUID, _, _ int32) ([]*entity.Notification, error) {
	var out []*entity.Notification
	for _, n := range r.created {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

// fakeEmailService captures outbound mail instead of sending it.
type fakeEmailService struct {
	starterNudges    []string
	inactivityNudges []string
	reports          []string
	attachments      [][]byte
}

func (s *fakeEmailService) SendVerificationEmail(_ context.Context, to, _, _ string) error {
	return nil
}

func (s *fakeEmailService) SendStarterNudge(_ context.Context, to, _ string) error {
	s.starterNudges = append(s.starterNudges, to)
	return nil
}

func (s *fakeEmailService) SendInactivityNudge(_ context.Context, to, _ string) error {
	s.inactivityNudges = append(s.inactivityNudges, to)
	return nil
}

func (s *fakeEmailService) SendMonthlyReport(_ context.Context, to, _, _ string, pdf []byte) error {
	s.reports = append(s.reports, to)
	s.attachments = append(s.attachments, pdf)
	return nil
}

func testUser(email string, createdAt time.Time) *entity.User {
	return &entity.User{
		ID:        uuid.New(),
		Email:     email,
		Username:  email,
		IsActive:  true,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func TestInactivityScanStarterNudge(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC)

	oldUser := testUser("old@example.com", now.Add(-48*time.Hour))
	freshUser := testUser("fresh@example.com", now.Add(-1*time.Hour))

	users := newFakeUserRepo(oldUser, freshUser)
	habits := newFakeHabitRepo()
	notifications := &fakeNotificationRepo{}
	email := &fakeEmailService{}

	svc := NewReminderService(users, habits, notifications, email)
	if err := svc.RunInactivityScan(ctx, now); err != nil {
		t.Fatalf("RunInactivityScan: %v", err)
	}

	if len(email.starterNudges) != 1 || email.starterNudges[0] != "old@example.com" {
		t.Errorf("starter nudges = %v, want only old@example.com", email.starterNudges)
	}
	if oldUser.LastReminderSent == nil {
		t.Error("LastReminderSent not stamped after starter nudge")
	}
	if len(notifications.created) != 1 {
		t.Fatalf("notification records = %d, want 1", len(notifications.created))
	}
	if notifications.created[0].Status != entity.NotificationStatusSent {
		t.Errorf("notification status = %s, want sent", notifications.created[0].Status)
	}

	// The starter nudge goes out once, ever.
	if err := svc.RunInactivityScan(ctx, now.Add(24*time.Hour)); err != nil {
		t.Fatalf("second RunInactivityScan: %v", err)
	}
	if len(email.starterNudges) != 1 {
		t.Errorf("starter nudges after rescan = %d, want still 1", len(email.starterNudges))
	}
}

func TestInactivityScanNudgesInactiveUser(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC)

	user := testUser("lazy@example.com", now.AddDate(0, 0, -30))
	users := newFakeUserRepo(user)
	habits := newFakeHabitRepo()
	notifications := &fakeNotificationRepo{}
	email := &fakeEmailService{}

	// One habit whose last completion is outside the lookback.
	habit, err := entity.NewHabit(user.ID, "Run", now.AddDate(0, 0, -20))
	if err != nil {
		t.Fatalf("NewHabit: %v", err)
	}
	habit.CompletedDates = []string{"2024-03-05"}
	if err := habits.Create(ctx, habit); err != nil {
		t.Fatalf("Create: %v", err)
	}

	svc := NewReminderService(users, habits, notifications, email)
	if err := svc.RunInactivityScan(ctx, now); err != nil {
		t.Fatalf("RunInactivityScan: %v", err)
	}

	if len(email.inactivityNudges) != 1 {
		t.Fatalf("inactivity nudges = %v, want 1", email.inactivityNudges)
	}
	if len(email.starterNudges) != 0 {
		t.Errorf("starter nudges = %v, want none for a user with habits", email.starterNudges)
	}

	// Cooldown: a rescan the next day stays silent.
	if err := svc.RunInactivityScan(ctx, now.Add(24*time.Hour)); err != nil {
		t.Fatalf("rescan: %v", err)
	}
	if len(email.inactivityNudges) != 1 {
		t.Errorf("nudges within cooldown = %d, want still 1", len(email.inactivityNudges))
	}

	// Past the cooldown the nudge repeats.
	if err := svc.RunInactivityScan(ctx, now.Add(73*time.Hour)); err != nil {
		t.Fatalf("post-cooldown rescan: %v", err)
	}
	if len(email.inactivityNudges) != 2 {
		t.Errorf("nudges past cooldown = %d, want 2", len(email.inactivityNudges))
	}
}

func TestInactivityScanSkipsActiveUser(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC)

	user := testUser("diligent@example.com", now.AddDate(0, 0, -30))
	users := newFakeUserRepo(user)
	habits := newFakeHabitRepo()
	notifications := &fakeNotificationRepo{}
	email := &fakeEmailService{}

	habit, err := entity.NewHabit(user.ID, "Read", now.AddDate(0, 0, -20))
	if err != nil {
		t.Fatalf("NewHabit: %v", err)
	}
	habit.CompletedDates = []string{"2024-03-09"}
	if err := habits.Create(ctx, habit); err != nil {
		t.Fatalf("Create: %v", err)
	}

	svc := NewReminderService(users, habits, notifications, email)
	if err := svc.RunInactivityScan(ctx, now); err != nil {
		t.Fatalf("RunInactivityScan: %v", err)
	}

	if len(email.starterNudges)+len(email.inactivityNudges) != 0 {
		t.Errorf("active user was nudged: starter=%v inactivity=%v",
			email.starterNudges, email.inactivityNudges)
	}
	if len(notifications.created) != 0 {
		t.Errorf("notification records = %d, want 0", len(notifications.created))
	}
}
