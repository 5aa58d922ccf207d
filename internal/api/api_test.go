package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fapmap/trophy/internal/app/trophy"
	"github.com/fapmap/trophy/internal/infra/sqlite"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	db, err := sqlite.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	engine := trophy.New(db)
	notifs := trophy.NewNotificationService(db)
	return NewServer(db, engine, notifs)
}

func doJSON(t *testing.T, h http.Handler, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var out map[string]interface{}
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("decode response %q: %v", w.Body.String(), err)
		}
	}
	return w, out
}

func TestHealth(t *testing.T) {
	h := newTestServer(t).Handler()
	w, out := doJSON(t, h, "GET", "/health", nil)
	if w.Code != http.StatusOK || out["status"] != "ok" {
		t.Errorf("health = %d %v", w.Code, out)
	}
}

func TestCreatePost_Validation(t *testing.T) {
	h := newTestServer(t).Handler()

	w, _ := doJSON(t, h, "POST", "/api/posts", map[string]interface{}{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing user_id: code = %d, want 400", w.Code)
	}

	w, _ = doJSON(t, h, "POST", "/api/posts", map[string]interface{}{
		"user_id":    "u1",
		"created_at": "not-a-time",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad timestamp: code = %d, want 400", w.Code)
	}
}

func TestPostAndTrophyFlow(t *testing.T) {
	h := newTestServer(t).Handler()

	// One post: today, 90 seconds, perfect rating, named place.
	w, _ := doJSON(t, h, "POST", "/api/posts", map[string]interface{}{
		"user_id":          "u1",
		"created_at":       time.Now().Add(-time.Hour).Format(time.RFC3339),
		"duration_seconds": 90,
		"rating_average":   5.0,
		"location":         "Parc",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create post: code = %d", w.Code)
	}

	// One authored comment.
	w, _ = doJSON(t, h, "POST", "/api/comments", map[string]interface{}{
		"user_id": "u1",
		"post_id": "p1",
		"body":    "superbe",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create comment: code = %d", w.Code)
	}

	// The grid shows all 27 trophies with unlocked styling.
	w, out := doJSON(t, h, "GET", "/api/users/u1/trophies", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("trophies: code = %d", w.Code)
	}
	if total := out["total"].(float64); total != 27 {
		t.Errorf("total = %v, want 27", total)
	}
	if unlocked := out["unlocked"].(float64); unlocked < 6 {
		t.Errorf("unlocked = %v, want >= 6", unlocked)
	}

	// Evaluate: first run, delta equals the full unlocked set.
	w, out = doJSON(t, h, "POST", "/api/users/u1/trophies/evaluate", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("evaluate: code = %d", w.Code)
	}
	delta := out["delta"].([]interface{})
	unlocked := out["unlocked"].([]interface{})
	if len(delta) != len(unlocked) || len(delta) == 0 {
		t.Errorf("delta = %d, unlocked = %d", len(delta), len(unlocked))
	}

	// Second evaluation with no data change is silent.
	_, out = doJSON(t, h, "POST", "/api/users/u1/trophies/evaluate", nil)
	if d, ok := out["delta"].([]interface{}); ok && len(d) != 0 {
		t.Errorf("second delta = %v, want empty", d)
	}

	// Toasts were queued in delta order; acknowledge the first.
	_, out = doJSON(t, h, "GET", "/api/users/u1/notifications?limit=50", nil)
	notifs := out["notifications"].([]interface{})
	if len(notifs) != len(delta) {
		t.Fatalf("notifications = %d, want %d", len(notifs), len(delta))
	}
	first := notifs[0].(map[string]interface{})
	id := int64(first["id"].(float64))

	w, _ = doJSON(t, h, "POST", fmt.Sprintf("/api/notifications/%d/shown", id), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("mark shown: code = %d", w.Code)
	}

	_, out = doJSON(t, h, "GET", "/api/users/u1/notifications?limit=50", nil)
	if remaining := out["notifications"].([]interface{}); len(remaining) != len(notifs)-1 {
		t.Errorf("remaining = %d, want %d", len(remaining), len(notifs)-1)
	}
}

func TestMarkShown_UnknownID(t *testing.T) {
	h := newTestServer(t).Handler()
	w, _ := doJSON(t, h, "POST", "/api/notifications/12345/shown", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("code = %d, want 404", w.Code)
	}
}

func TestTrophies_EmptyHistory(t *testing.T) {
	h := newTestServer(t).Handler()
	w, out := doJSON(t, h, "GET", "/api/users/nobody/trophies", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d", w.Code)
	}
	if unlocked := out["unlocked"].(float64); unlocked != 0 {
		t.Errorf("unlocked = %v, want 0 on empty history", unlocked)
	}
}
