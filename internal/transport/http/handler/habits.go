package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/gstippagol/habit/internal/domain/service"
	"github.com/gstippagol/habit/internal/transport/http/middleware"
)

// HabitHandler handles habit-related HTTP requests
type HabitHandler struct {
	habits service.HabitService
}

// NewHabitHandler creates a new habit handler
func NewHabitHandler(habits service.HabitService) *HabitHandler {
	return &HabitHandler{
		habits: habits,
	}
}

// habitID extracts and parses the habit ID query parameter. Writes the
// error response itself and reports ok=false when the ID is unusable.
func habitID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := r.URL.Query().Get("id")
	if raw == "" {
		http.Error(w, "Habit ID is required", http.StatusBadRequest)
		return uuid.Nil, false
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		http.Error(w, "Invalid habit ID", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

// CreateHabit handles habit creation
// @Summary Create a new habit
// @Description Create a new habit with the given title
// @Tags habits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{title=string} true "Create habit request"
// @Success 201 {object} object{id=string,title=string,streak=int,completedDates=[]string}
// @Failure 400 {object} object{error=string}
// @Failure 401 {object} object{error=string}
// @Router /api/v1/habits/create [post]
func (h *HabitHandler) CreateHabit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID := middleware.GetUserID(r)
	if userID == uuid.Nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req struct {
		Title string `json:"title"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	habit, err := h.habits.CreateHabit(r.Context(), userID, req.Title)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, habit)
}

// GetHabit retrieves a single habit by ID
// @Summary Get habit by ID
// @Tags habits
// @Produce json
// @Security BearerAuth
// @Param id query string true "Habit ID"
// @Success 200 {object} object{id=string,title=string,streak=int,completedDates=[]string}
// @Failure 400 {object} object{error=string}
// @Failure 401 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /api/v1/habits/get [get]
func (h *HabitHandler) GetHabit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID := middleware.GetUserID(r)
	if userID == uuid.Nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, ok := habitID(w, r)
	if !ok {
		return
	}

	habit, err := h.habits.GetHabit(r.Context(), id, userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, habit)
}

// ListHabits retrieves all habits for the authenticated user
// @Summary List habits
// @Description Get the dashboard habits; archived ones only when requested
// @Tags habits
// @Produce json
// @Security BearerAuth
// @Param include_archived query boolean false "Include archived habits"
// @Success 200 {object} object{habits=[]object,total_count=int}
// @Failure 401 {object} object{error=string}
// @Router /api/v1/habits/list [get]
func (h *HabitHandler) ListHabits(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID := middleware.GetUserID(r)
	if userID == uuid.Nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	includeArchived := r.URL.Query().Get("include_archived") == "true"

	habits, err := h.habits.ListHabits(r.Context(), userID, includeArchived)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"habits":      habits,
		"total_count": len(habits),
	})
}

// ListBin retrieves the user's soft-deleted habits
// @Summary List recycle bin
// @Description Get soft-deleted habits with days remaining until purge
// @Tags habits
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{habits=[]object,total_count=int}
// @Failure 401 {object} object{error=string}
// @Router /api/v1/habits/bin [get]
func (h *HabitHandler) ListBin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID := middleware.GetUserID(r)
	if userID == uuid.Nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	habits, err := h.habits.ListBin(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	type binEntry struct {
		Habit          interface{} `json:"habit"`
		DaysUntilPurge int         `json:"days_until_purge"`
	}

	now := time.Now().UTC()
	entries := make([]binEntry, 0, len(habits))
	for _, habit := range habits {
		entries = append(entries, binEntry{
			Habit:          habit,
			DaysUntilPurge: habit.DaysUntilPurge(now),
		})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"habits":      entries,
		"total_count": len(entries),
	})
}

// UpdateHabit renames a habit
// @Summary Update habit
// @Tags habits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id query string true "Habit ID"
// @Param request body object{title=string} true "Update habit request"
// @Success 200 {object} object{id=string,title=string}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /api/v1/habits/update [post]
func (h *HabitHandler) UpdateHabit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut && r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID := middleware.GetUserID(r)
	if userID == uuid.Nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, ok := habitID(w, r)
	if !ok {
		return
	}

	var req struct {
		Title string `json:"title"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	habit, err := h.habits.UpdateTitle(r.Context(), id, userID, req.Title)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, habit)
}

// ToggleCompletion flips the completion state of a date
// @Summary Toggle completion
// @Description Mark or unmark a date as completed; only today and the
// two previous days are editable
// @Tags habits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id query string true "Habit ID"
// @Param request body object{date=string} true "Date in YYYY-MM-DD"
// @Success 200 {object} object{id=string,streak=int,completedDates=[]string}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /api/v1/habits/toggle [post]
func (h *HabitHandler) ToggleCompletion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID := middleware.GetUserID(r)
	if userID == uuid.Nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, ok := habitID(w, r)
	if !ok {
		return
	}

	var req struct {
		Date string `json:"date"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Date == "" {
		http.Error(w, "Date is required", http.StatusBadRequest)
		return
	}

	habit, err := h.habits.ToggleCompletion(r.Context(), id, userID, req.Date)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, habit)
}

// SetArchived archives or unarchives a habit
// @Summary Archive or unarchive habit
// @Description Archived habits keep their history but leave the active dashboard
// @Tags habits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id query string true "Habit ID"
// @Param request body object{archived=boolean} true "Archive request"
// @Success 200 {object} object{id=string,isArchived=boolean}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /api/v1/habits/archive [post]
func (h *HabitHandler) SetArchived(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID := middleware.GetUserID(r)
	if userID == uuid.Nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, ok := habitID(w, r)
	if !ok {
		return
	}

	var req struct {
		Archived bool `json:"archived"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	habit, err := h.habits.SetArchived(r.Context(), id, userID, req.Archived)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, habit)
}

// DeleteHabit soft deletes a habit into the recycle bin
// @Summary Delete habit
// @Description Move a habit to the recycle bin; it is purged after 30 days
// @Tags habits
// @Produce json
// @Security BearerAuth
// @Param id query string true "Habit ID"
// @Success 200 {object} object{message=string,days_until_purge=int}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /api/v1/habits/delete [post]
func (h *HabitHandler) DeleteHabit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete && r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID := middleware.GetUserID(r)
	if userID == uuid.Nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, ok := habitID(w, r)
	if !ok {
		return
	}

	habit, err := h.habits.DeleteHabit(r.Context(), id, userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":          "Habit moved to recycle bin",
		"days_until_purge": habit.DaysUntilPurge(time.Now().UTC()),
	})
}

// RestoreHabit brings a deleted habit back to the active dashboard
// @Summary Restore habit
// @Description Restore a habit from the recycle bin; it returns unarchived
// @Tags habits
// @Produce json
// @Security BearerAuth
// @Param id query string true "Habit ID"
// @Success 200 {object} object{id=string,isDeleted=boolean,isArchived=boolean}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /api/v1/habits/restore [post]
func (h *HabitHandler) RestoreHabit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID := middleware.GetUserID(r)
	if userID == uuid.Nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, ok := habitID(w, r)
	if !ok {
		return
	}

	habit, err := h.habits.RestoreHabit(r.Context(), id, userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, habit)
}

// PermanentDelete destroys a soft-deleted habit irreversibly
// @Summary Permanently delete habit
// @Description Remove a habit from the recycle bin forever
// @Tags habits
// @Produce json
// @Security BearerAuth
// @Param id query string true "Habit ID"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /api/v1/habits/permanent-delete [post]
func (h *HabitHandler) PermanentDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete && r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID := middleware.GetUserID(r)
	if userID == uuid.Nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, ok := habitID(w, r)
	if !ok {
		return
	}

	if err := h.habits.PermanentDelete(r.Context(), id, userID); err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Habit permanently deleted",
	})
}

// PurgeExpired removes habits past their retention deadline
// @Summary Purge expired habits
// @Description Permanently remove all habits deleted more than 30 days ago
// @Tags habits
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{purged=int}
// @Failure 401 {object} object{error=string}
// @Router /api/v1/habits/purge-expired [post]
func (h *HabitHandler) PurgeExpired(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	purged, err := h.habits.PurgeExpired(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"purged": purged,
	})
}
