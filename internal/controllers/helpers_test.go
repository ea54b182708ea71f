package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"safari_tours/internal/middleware"
	"safari_tours/internal/session"
)

// memSessions is an in-memory session.Store for tests.
type memSessions struct {
	mu      sync.Mutex
	entries map[string]sessionEntry
}

type sessionEntry struct {
	data      session.Data
	expiresAt time.Time
}

func newMemSessions() *memSessions {
	return &memSessions{entries: map[string]sessionEntry{}}
}

func (s *memSessions) Get(sid string) (session.Data, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[sid]
	if !ok || time.Now().After(e.expiresAt) {
		return session.Data{}, false, nil
	}
	return e.data, true, nil
}

func (s *memSessions) Set(sid string, data session.Data, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[sid] = sessionEntry{data: data, expiresAt: expiresAt}
	return nil
}

func (s *memSessions) Destroy(sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, sid)
	return nil
}

// newTestRouter wires the full API surface against the given store, the
// same shape the routes package assembles in production.
func newTestRouter(t *testing.T, store *memStore, uploadDir string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sessions := session.NewManager(newMemSessions(), "test-secret", time.Hour)
	auth, err := NewAuthController(sessions, "admin", "admin123", "admin@safaritours.local")
	if err != nil {
		t.Fatalf("auth controller: %v", err)
	}

	r := gin.New()
	r.MaxMultipartMemory = 8 << 20

	public := r.Group("/api")
	admin := r.Group("/api")
	admin.Use(middleware.RequireAdmin(sessions))

	public.POST("/login", auth.Login)
	public.POST("/logout", auth.Logout)
	public.GET("/auth/user", auth.CurrentUser)

	upload := NewUploadController(uploadDir)
	public.POST("/upload", upload.Upload)

	vehicles := NewVehicleController(store)
	public.GET("/vehicles", vehicles.List)
	public.GET("/vehicles/:id", vehicles.Get)
	admin.POST("/vehicles", vehicles.Create)
	admin.PUT("/vehicles/:id", vehicles.Update)
	admin.DELETE("/vehicles/:id", vehicles.Delete)

	packages := NewPackageController(store)
	public.GET("/packages", packages.List)
	public.GET("/packages/:id", packages.Get)
	admin.POST("/packages", packages.Create)
	admin.PUT("/packages/:id", packages.Update)
	admin.DELETE("/packages/:id", packages.Delete)

	photos := NewPhotoController(store)
	public.GET("/photos", photos.List)
	public.GET("/photos/featured", photos.Featured)
	public.GET("/photos/:id", photos.Get)
	admin.POST("/photos", photos.Create)
	admin.PUT("/photos/:id", photos.Update)
	admin.DELETE("/photos/:id", photos.Delete)

	testimonials := NewTestimonialController(store)
	public.GET("/testimonials", testimonials.List)
	public.POST("/testimonials", testimonials.Create)
	admin.DELETE("/testimonials/:id", testimonials.Delete)

	bookings := NewBookingController(store)
	public.POST("/bookings", bookings.Create)
	admin.GET("/bookings", bookings.List)
	admin.GET("/bookings/:id", bookings.Get)
	admin.PATCH("/bookings/:id/status", bookings.UpdateStatus)
	admin.DELETE("/bookings/:id", bookings.Delete)

	contacts := NewContactController(store)
	public.POST("/contacts", contacts.Create)
	admin.GET("/contacts", contacts.List)
	admin.PATCH("/contacts/:id/read", contacts.MarkRead)
	admin.DELETE("/contacts/:id", contacts.Delete)

	dashboard := NewDashboardController(store)
	admin.GET("/admin/dashboard", dashboard.Stats)

	return r
}

// doJSON performs a request with an optional JSON body and cookie.
func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, cookie string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// loginAdmin logs in with the test credentials and returns the session
// cookie to replay on admin requests.
func loginAdmin(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/login", gin.H{"username": "admin", "password": "admin123"}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("login failed: status %d body %s", w.Code, w.Body.String())
	}
	cookies := w.Result().Cookies()
	for _, c := range cookies {
		if c.Name == session.CookieName {
			return c.Name + "=" + c.Value
		}
	}
	t.Fatal("login response did not set a session cookie")
	return ""
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}
