package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	gosync "sync"
	"testing"

	"golang.org/x/exp/slog"

	"boxmate/internal/app/client/config"
)

// fakeStore - тестовый дублёр удалённого хранилища коллекций.
type fakeStore struct {
	t *testing.T

	mu       gosync.Mutex
	spaces   []remoteSpace
	items    []remoteItem
	nextID   int
	requests map[string]int

	failItems   bool
	onListItems func() bool
	auth        *AuthResponse

	srv *httptest.Server
}

func newFakeStore(t *testing.T) *fakeStore {
	t.Helper()

	f := &fakeStore{
		t:        t,
		nextID:   1,
		requests: make(map[string]int),
	}
	f.srv = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.srv.Close)

	return f
}

func (f *fakeStore) count(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[key]
}

func (f *fakeStore) totalRequests() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, n := range f.requests {
		total += n
	}
	return total
}

func (f *fakeStore) handle(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.requests[r.Method+" "+r.URL.Path]++
	f.mu.Unlock()

	switch {
	case r.Method == http.MethodPost && (r.URL.Path == "/api/auth/login" || r.URL.Path == "/api/auth/register"):
		f.mu.Lock()
		auth := f.auth
		f.mu.Unlock()
		if auth == nil {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
			return
		}
		writeJSON(w, http.StatusOK, auth)

	case r.Method == http.MethodGet && r.URL.Path == "/api/health":
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})

	case r.Method == http.MethodGet && r.URL.Path == "/spaces":
		f.mu.Lock()
		spaces := append([]remoteSpace(nil), f.spaces...)
		f.mu.Unlock()
		writeJSON(w, http.StatusOK, spaces)

	case r.Method == http.MethodPost && r.URL.Path == "/spaces":
		var sp remoteSpace
		decodeBody(f.t, r, &sp)
		f.mu.Lock()
		f.spaces = append(f.spaces, sp)
		f.mu.Unlock()
		writeJSON(w, http.StatusCreated, sp)

	case r.Method == http.MethodPatch && strings.HasPrefix(r.URL.Path, "/spaces/"):
		var patch map[string]any
		decodeBody(f.t, r, &patch)
		id := strings.TrimPrefix(r.URL.Path, "/spaces/")
		f.mu.Lock()
		for i := range f.spaces {
			if f.spaces[i].ID == id {
				if img, ok := patch["image"].(string); ok {
					f.spaces[i].Image = img
				}
			}
		}
		f.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]string{"id": id})

	case r.Method == http.MethodGet && r.URL.Path == "/items":
		var hook func() bool
		f.mu.Lock()
		hook = f.onListItems
		fail := f.failItems
		f.mu.Unlock()
		if hook != nil && hook() {
			fail = true
		}
		if fail {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "boom"})
			return
		}
		f.mu.Lock()
		items := append([]remoteItem(nil), f.items...)
		f.mu.Unlock()
		writeJSON(w, http.StatusOK, items)

	case r.Method == http.MethodPost && r.URL.Path == "/items":
		var it remoteItem
		decodeBody(f.t, r, &it)
		f.mu.Lock()
		it.ID = fmt.Sprintf("srv-%d", f.nextID)
		f.nextID++
		f.items = append(f.items, it)
		f.mu.Unlock()
		writeJSON(w, http.StatusCreated, it)

	case r.Method == http.MethodPatch && strings.HasPrefix(r.URL.Path, "/items/"):
		var patch map[string]any
		decodeBody(f.t, r, &patch)
		writeJSON(w, http.StatusOK, map[string]string{"id": strings.TrimPrefix(r.URL.Path, "/items/")})

	case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/items/"):
		id := strings.TrimPrefix(r.URL.Path, "/items/")
		f.mu.Lock()
		kept := f.items[:0]
		for _, it := range f.items {
			if it.ID != id {
				kept = append(kept, it)
			}
		}
		f.items = kept
		f.mu.Unlock()
		w.WriteHeader(http.StatusNoContent)

	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func decodeBody(t *testing.T, r *http.Request, dst any) {
	t.Helper()
	data, err := io.ReadAll(r.Body)
	if err != nil {
		t.Fatalf("чтение тела запроса: %v", err)
	}
	if len(data) == 0 {
		return
	}
	if err := json.Unmarshal(data, dst); err != nil {
		t.Fatalf("разбор тела запроса: %v", err)
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func testStoreClient(f *fakeStore) *storeClient {
	cfg := &config.Config{StoreAddress: f.srv.URL}
	return newStoreClient(cfg, testLogger())
}
