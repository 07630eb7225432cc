package ui

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parmatma/app"
	apperrors "parmatma/internal/errors"
	"parmatma/internal/session"
	"parmatma/models"
	"parmatma/ports"
)

// In-memory fakes for the external ports. The handler tests exercise the
// full middleware + service + domain path with only I/O stubbed out.

type memProfileRepo struct {
	mu       sync.Mutex
	profiles map[uuid.UUID]*models.UserProfile
}

func newMemProfileRepo() *memProfileRepo {
	return &memProfileRepo{profiles: make(map[uuid.UUID]*models.UserProfile)}
}

func (r *memProfileRepo) Create(_ context.Context, p *models.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[p.ID] = p
	return nil
}

func (r *memProfileRepo) GetByID(_ context.Context, id uuid.UUID) (*models.UserProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.profiles[id]; ok {
		return p, nil
	}
	return nil, apperrors.NotFound("profile")
}

type memAppointmentRepo struct {
	mu    sync.Mutex
	appts []*models.Appointment
}

func (r *memAppointmentRepo) Create(_ context.Context, a *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.appts = append(r.appts, a)
	return nil
}

func (r *memAppointmentRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Appointment
	for _, a := range r.appts {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *memAppointmentRepo) Latest(_ context.Context, userID uuid.UUID) (*models.Appointment, error) {
	list, _ := r.ListByUser(context.Background(), userID)
	if len(list) == 0 {
		return nil, nil
	}
	return list[len(list)-1], nil
}

type memSymptomRepo struct{}

func (memSymptomRepo) Create(context.Context, *models.SymptomEntry) error { return nil }
func (memSymptomRepo) ListByUser(context.Context, uuid.UUID) ([]*models.SymptomEntry, error) {
	return nil, nil
}
func (memSymptomRepo) Latest(context.Context, uuid.UUID) (*models.SymptomEntry, error) {
	return nil, nil
}

type memMoodRepo struct{}

func (memMoodRepo) Create(context.Context, *models.MoodEntry) error { return nil }
func (memMoodRepo) ListByUser(context.Context, uuid.UUID) ([]*models.MoodEntry, error) {
	return nil, nil
}

type stubGenerator struct{ reply string }

func (g stubGenerator) GenerateText(context.Context, ports.GenerateRequest) (string, error) {
	return g.reply, nil
}

type stubScorer struct{ score float64 }

func (s stubScorer) Score(string) float64 { return s.score }

type stubGeocoder struct{ point models.GeoPoint }

func (g stubGeocoder) Geocode(context.Context, string) (models.GeoPoint, error) {
	return g.point, nil
}

type stubHospitalFinder struct{ hospitals []models.Hospital }

func (f stubHospitalFinder) NearbyHospitals(context.Context, models.GeoPoint, int) ([]models.Hospital, error) {
	return f.hospitals, nil
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	profiles := newMemProfileRepo()
	appts := &memAppointmentRepo{}
	symptoms := memSymptomRepo{}
	moods := memMoodRepo{}
	generator := stubGenerator{reply: "generated advice"}
	scorer := stubScorer{score: 0.3}

	return NewServer(session.NewManager(), Services{
		Wellness:     app.NewWellnessService(scorer),
		Profiles:     app.NewProfileService(profiles),
		Coach:        app.NewCoachService(generator, profiles, symptoms, "test-model"),
		Chat:         app.NewChatService(generator, scorer, moods, "test-model", ""),
		Appointments: app.NewAppointmentService(appts),
		Emergency:    app.NewEmergencyService(stubGeocoder{point: models.GeoPoint{Lat: 19.07, Lon: 72.87}}, stubHospitalFinder{hospitals: []models.Hospital{{Name: "City Hospital"}}}, 5000),
		Reports:      app.NewReportService(profiles, symptoms, moods, appts),
	})
}

// doJSON issues a request, carrying the session cookie across calls.
func doJSON(t *testing.T, srv *Server, cookie *http.Cookie, method, path string, body interface{}) (*httptest.ResponseRecorder, *http.Cookie) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	for _, c := range w.Result().Cookies() {
		if c.Name == sessionCookie {
			cookie = c
		}
	}
	return w, cookie
}

func TestSessionCookieIsIssuedOnce(t *testing.T) {
	srv := newTestServer(t)

	w, cookie := doJSON(t, srv, nil, http.MethodGet, "/api/wellness/records", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, cookie, "first request mints a session cookie")

	w2, cookie2 := doJSON(t, srv, cookie, http.MethodGet, "/api/wellness/records", nil)
	require.Equal(t, http.StatusOK, w2.Code)
	assert.Equal(t, cookie.Value, cookie2.Value, "existing session is reused")
}

func TestRecordAndSummarizeFlow(t *testing.T) {
	srv := newTestServer(t)

	w, cookie := doJSON(t, srv, nil, http.MethodPost, "/api/wellness/records", map[string]interface{}{
		"date":             "2025-06-01",
		"sleep_hours":      12,
		"exercise_minutes": 120,
		"meal_quality":     "Healthy",
		"mood_text":        "wonderful day",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w, _ = doJSON(t, srv, cookie, http.MethodGet, "/api/wellness/summary?as_of=2025-06-01", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var summary struct {
		WellnessScore float64 `json:"wellness_score"`
		Prediction    string  `json:"prediction"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	// sleep 12/12 + exercise 120/120 + Healthy meal, sentiment stubbed at 0.3
	assert.InDelta(t, 0.9125, summary.WellnessScore, 1e-9)
	assert.Contains(t, summary.Prediction, "healthy path")
}

func TestSummaryWithoutRecords(t *testing.T) {
	srv := newTestServer(t)

	w, _ := doJSON(t, srv, nil, http.MethodGet, "/api/wellness/summary", nil)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "INSUFFICIENT_DATA")
}

func TestRecordDayRejectsUnknownMeal(t *testing.T) {
	srv := newTestServer(t)

	w, _ := doJSON(t, srv, nil, http.MethodPost, "/api/wellness/records", map[string]interface{}{
		"meal_quality": "Gourmet",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_CATEGORY")
}

func TestProfileFlow(t *testing.T) {
	srv := newTestServer(t)

	w, cookie := doJSON(t, srv, nil, http.MethodPost, "/api/profile", map[string]interface{}{
		"name":      "Asha",
		"age":       34,
		"gender":    "Female",
		"height_cm": 165,
		"weight_kg": 60,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"Normal"`)

	w, _ = doJSON(t, srv, cookie, http.MethodGet, "/api/profile", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Asha")

	w, _ = doJSON(t, srv, cookie, http.MethodGet, "/api/profile/bmi", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "22.0")
}

func TestProfileMissingReturnsNotFound(t *testing.T) {
	srv := newTestServer(t)

	w, _ := doJSON(t, srv, nil, http.MethodGet, "/api/profile", nil)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestChatSendAndHistory(t *testing.T) {
	srv := newTestServer(t)

	w, cookie := doJSON(t, srv, nil, http.MethodPost, "/api/chat", map[string]interface{}{
		"message": "feeling hopeful today",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "generated advice")
	assert.Contains(t, w.Body.String(), "Positive")

	w, _ = doJSON(t, srv, cookie, http.MethodGet, "/api/chat/history", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var history struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
	assert.Equal(t, 2, history.Count)
}

func TestBookAppointmentRequiresProfile(t *testing.T) {
	srv := newTestServer(t)

	w, _ := doJSON(t, srv, nil, http.MethodPost, "/api/appointments", map[string]interface{}{
		"specialty": "General",
		"location":  "Mumbai",
		"date":      "2025-07-01",
		"time":      "10:30",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookAndListAppointments(t *testing.T) {
	srv := newTestServer(t)

	_, cookie := doJSON(t, srv, nil, http.MethodPost, "/api/profile", map[string]interface{}{
		"name": "Asha", "age": 34, "gender": "Female", "height_cm": 165, "weight_kg": 60,
	})

	w, _ := doJSON(t, srv, cookie, http.MethodPost, "/api/appointments", map[string]interface{}{
		"specialty": "Dentist",
		"location":  "Mumbai",
		"date":      "2025-07-01",
		"time":      "10:30",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "Booked")

	w, _ = doJSON(t, srv, cookie, http.MethodGet, "/api/appointments", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Dentist")
}

func TestPlatformsDirectory(t *testing.T) {
	srv := newTestServer(t)

	w, _ := doJSON(t, srv, nil, http.MethodGet, "/api/telemedicine/platforms?city=Delhi", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Practo")
	assert.Contains(t, w.Body.String(), "1mg")
}

func TestHospitalSearch(t *testing.T) {
	srv := newTestServer(t)

	w, _ := doJSON(t, srv, nil, http.MethodGet, "/api/emergency/hospitals?location=Mumbai", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "City Hospital")

	w, _ = doJSON(t, srv, nil, http.MethodGet, "/api/emergency/hospitals", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHabitExportDownload(t *testing.T) {
	srv := newTestServer(t)

	_, cookie := doJSON(t, srv, nil, http.MethodPost, "/api/wellness/records", map[string]interface{}{
		"sleep_hours":      7,
		"exercise_minutes": 30,
		"meal_quality":     "Average",
		"mood_text":        "okay",
	})

	w, _ := doJSON(t, srv, cookie, http.MethodGet, "/api/wellness/export", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "habit_history.xlsx")
	assert.Greater(t, w.Body.Len(), 0)
}
