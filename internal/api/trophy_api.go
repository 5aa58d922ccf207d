package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/fapmap/trophy/internal/app/trophy"
	"github.com/fapmap/trophy/internal/domain"
)

// ─── Posts & Comments ───────────────────────────────────────────────────────

type createPostRequest struct {
	UserID          string  `json:"user_id"`
	CreatedAt       string  `json:"created_at"` // RFC 3339; "" = now
	DurationSeconds int     `json:"duration_seconds"`
	RatingAverage   float64 `json:"rating_average"`
	Location        string  `json:"location"`
}

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	var req createPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.UserID == "" {
		writeError(w, http.StatusBadRequest, domain.ErrUserRequired.Error())
		return
	}

	createdAt := time.Now()
	if req.CreatedAt != "" {
		t, err := time.Parse(time.RFC3339, req.CreatedAt)
		if err != nil {
			writeError(w, http.StatusBadRequest, "created_at must be RFC 3339")
			return
		}
		createdAt = t
	}

	post := domain.ActivityRecord{
		ID:              uuid.NewString(),
		UserID:          req.UserID,
		Timestamp:       createdAt,
		DurationSeconds: req.DurationSeconds,
		RatingAverage:   req.RatingAverage,
		LocationLabel:   req.Location,
	}
	if err := s.db.InsertPost(post); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, post)
}

func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	posts, err := s.db.ListPosts(userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"posts": posts,
		"count": len(posts),
	})
}

type createCommentRequest struct {
	UserID string `json:"user_id"`
	PostID string `json:"post_id"`
	Body   string `json:"body"`
}

func (s *Server) handleCreateComment(w http.ResponseWriter, r *http.Request) {
	var req createCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.UserID == "" {
		writeError(w, http.StatusBadRequest, domain.ErrUserRequired.Error())
		return
	}

	id := uuid.NewString()
	if err := s.db.InsertComment(id, req.UserID, req.PostID, req.Body, time.Now()); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// ─── Trophies ───────────────────────────────────────────────────────────────

// trophyView is one grid cell: definition metadata plus unlocked styling.
type trophyView struct {
	ID          string                     `json:"id"`
	Title       string                     `json:"title"`
	Description string                     `json:"description"`
	Category    domain.AchievementCategory `json:"category"`
	Icon        string                     `json:"icon"`
	Unlocked    bool                       `json:"unlocked"`
}

// handleTrophies renders the grid: every catalog entry with live unlocked
// styling plus the summary header. Read-only — the ledger is not written.
func (s *Server) handleTrophies(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	records, social, err := s.loadActivity(userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	snap := trophy.Aggregate(records, social, time.Now())
	defs := s.engine.Definitions()
	unlocked := trophy.Evaluate(snap, defs)

	unlockedSet := make(map[string]bool, len(unlocked))
	for _, id := range unlocked {
		unlockedSet[id] = true
	}

	grid := make([]trophyView, 0, len(defs))
	for _, def := range defs {
		grid = append(grid, trophyView{
			ID:          def.ID,
			Title:       def.Title,
			Description: def.Description,
			Category:    def.Category,
			Icon:        def.Icon,
			Unlocked:    unlockedSet[def.ID],
		})
	}

	pct := 0
	if len(defs) > 0 {
		pct = len(unlocked) * 100 / len(defs)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"trophies":     grid,
		"unlocked":     len(unlocked),
		"total":        len(defs),
		"progress_pct": pct,
		"stats":        snap,
	})
}

// handleEvaluate is the "evaluate now" entry point: full pipeline, ledger
// write, and toast queueing for anything newly unlocked.
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	records, social, err := s.loadActivity(userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	now := time.Now()
	eval, err := s.engine.EvaluateNow(userID, records, social, now)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if _, err := s.notifs.QueueUnlocks(userID, eval.Events, now); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, eval)
}

func (s *Server) loadActivity(userID string) ([]domain.ActivityRecord, domain.SocialCounters, error) {
	records, err := s.db.ListPosts(userID)
	if err != nil {
		return nil, domain.SocialCounters{}, err
	}
	comments, err := s.db.CommentCount(userID)
	if err != nil {
		return nil, domain.SocialCounters{}, err
	}
	return records, domain.SocialCounters{CommentCount: comments}, nil
}

// ─── Notifications ──────────────────────────────────────────────────────────

func (s *Server) handleNotifications(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	limit := 10
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	pending, err := s.notifs.Pending(userID, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"notifications": pending,
		"count":         len(pending),
	})
}

func (s *Server) handleNotificationShown(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid notification id")
		return
	}
	if err := s.notifs.MarkShown(id); err != nil {
		if err == domain.ErrNotificationNotFound {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
