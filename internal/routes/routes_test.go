package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/gym-scheduler/internal/audit"
	"github.com/BruksfildServices01/gym-scheduler/internal/config"
	domain "github.com/BruksfildServices01/gym-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/gym-scheduler/internal/dto"
	"github.com/BruksfildServices01/gym-scheduler/internal/httperr"
	"github.com/BruksfildServices01/gym-scheduler/internal/infra/cache"
	"github.com/BruksfildServices01/gym-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/gym-scheduler/internal/metrics"
	"github.com/BruksfildServices01/gym-scheduler/internal/models"
	"github.com/BruksfildServices01/gym-scheduler/internal/routes"
	"github.com/BruksfildServices01/gym-scheduler/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/gym-scheduler/internal/usecase/appointment"
	"github.com/BruksfildServices01/gym-scheduler/internal/validators"
)

const secret = "test-secret"

type testServer struct {
	router *gin.Engine
	clock  *timezone.FixedClock
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, validators.RegisterWithGin())

	store := repository.NewMemory()
	store.PutTrainer(models.Trainer{ID: 7, Name: "Rita", Active: true})
	require.NoError(t, store.ReplaceWeeklyAvailability(context.Background(), 7, domain.WeeklyAvailability{
		{Weekday: time.Tuesday, Available: true, WorkingHours: []domain.TimeSlot{
			{Start: "09:00", End: "10:00"},
			{Start: "10:00", End: "11:00"},
		}},
	}))

	clock := &timezone.FixedClock{T: time.Date(2025, 3, 31, 10, 0, 0, 0, time.UTC)}
	registry := prometheus.NewRegistry()
	collector := metrics.New(registry, "test")

	dispatcher := audit.NewDispatcher(audit.NewLogStore(zerolog.Nop()), zerolog.Nop())
	t.Cleanup(dispatcher.Close)

	r := gin.New()
	routes.RegisterRoutes(r, routes.Deps{
		Config: &config.Config{
			JWTSecret:      secret,
			MetricsEnabled: true,
			MetricsPath:    "/metrics",
		},
		Logger:   zerolog.Nop(),
		Gatherer: registry,
		Metrics:  collector,
		UseCases: ucAppointment.Deps{
			Repo:     store,
			Trainers: store,
			Tx:       store,
			Cache:    cache.NewLRUCalendarCache(16, time.Minute),
			Clock:    clock,
			Audit:    dispatcher,
			Metrics:  collector,
			Logger:   zerolog.Nop(),
			Policy:   domain.DefaultPolicy(),
		},
	})

	return &testServer{router: r, clock: clock}
}

func token(t *testing.T, sub uint, role domain.Role) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  sub,
		"role": string(role),
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	s, err := tok.SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func (s *testServer) do(t *testing.T, method, path, bearer string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func bookBody(date, start, end string) gin.H {
	return gin.H{
		"trainer_id": 7,
		"date":       date,
		"time":       gin.H{"start": start, "end": end},
		"location":   "Main gym",
	}
}

func TestHealthAndMetrics(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "test_http_requests_total")
}

func TestAuth(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/appointments", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(t, http.MethodGet, "/api/appointments", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(t, http.MethodGet, "/api/appointments", token(t, 21, "coach"), nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(t, http.MethodPost, "/api/appointments", token(t, 7, domain.RoleTrainer), bookBody("2025-04-01", "09:00", "10:00"))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCalendarEndpoint(t *testing.T) {
	s := newTestServer(t)
	member := token(t, 21, domain.RoleMember)

	w := s.do(t, http.MethodGet, "/api/trainers/7/calendar", member, nil)
	require.Equal(t, http.StatusOK, w.Code)

	cal := decode[dto.CalendarDTO](t, w)
	require.Len(t, cal.Days, 14)
	assert.Equal(t, "2025-03-31", cal.Days[0].Date)
	assert.False(t, cal.Days[0].Available)
	assert.True(t, cal.Days[1].Available)
	assert.Contains(t, w.Body.String(), `"time_slots":[]`)

	w = s.do(t, http.MethodGet, "/api/trainers/7/calendar?purpose=reschedule", member, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2025-04-01", decode[dto.CalendarDTO](t, w).Days[0].Date)

	w = s.do(t, http.MethodGet, "/api/trainers/7/calendar?purpose=later", member, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodGet, "/api/trainers/99/calendar", member, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAppointmentLifecycle(t *testing.T) {
	s := newTestServer(t)
	member := token(t, 21, domain.RoleMember)
	trainer := token(t, 7, domain.RoleTrainer)

	w := s.do(t, http.MethodPost, "/api/appointments", member, bookBody("2025-04-08", "09:00", "10:00"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[dto.AppointmentDTO](t, w)
	assert.Equal(t, "pending", created.Status)
	assert.Equal(t, "morning", created.TimeOfDay)
	path := "/api/appointments/" + created.ID.String()

	w = s.do(t, http.MethodPatch, path+"/confirm", trainer, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	confirmed := decode[dto.AppointmentDTO](t, w)
	assert.Equal(t, "confirmed", confirmed.Status)
	assert.Equal(t, "upcoming", confirmed.DisplayStatus)

	w = s.do(t, http.MethodGet, "/api/appointments?status=upcoming", member, nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[struct {
		Data  []dto.AppointmentDTO `json:"data"`
		Total int                  `json:"total"`
	}](t, w)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, created.ID, list.Data[0].ID)

	w = s.do(t, http.MethodGet, path, token(t, 22, domain.RoleMember), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	s.clock.Set(time.Date(2025, 4, 8, 8, 0, 0, 0, time.UTC))
	w = s.do(t, http.MethodPatch, path+"/cancel", member, nil)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "cancel_window_closed", decode[httperr.HTTPError](t, w).Code)

	s.clock.Set(time.Date(2025, 4, 8, 10, 5, 0, 0, time.UTC))
	w = s.do(t, http.MethodPatch, path+"/complete", trainer, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "completed", decode[dto.AppointmentDTO](t, w).Status)

	w = s.do(t, http.MethodPatch, path+"/complete", trainer, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestBookRejections(t *testing.T) {
	s := newTestServer(t)
	member := token(t, 21, domain.RoleMember)

	w := s.do(t, http.MethodPost, "/api/appointments", member, bookBody("2025-03-31", "09:00", "10:00"))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "trainer_unavailable", decode[httperr.HTTPError](t, w).Code)

	w = s.do(t, http.MethodPost, "/api/appointments", member, bookBody("2025-04-01", "9:00", "10:00"))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPost, "/api/appointments", member, gin.H{"trainer_id": 7})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReschedule(t *testing.T) {
	s := newTestServer(t)
	member := token(t, 21, domain.RoleMember)

	w := s.do(t, http.MethodPost, "/api/appointments", member, bookBody("2025-04-01", "09:00", "10:00"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id := decode[dto.AppointmentDTO](t, w).ID

	body := gin.H{
		"date":     "2025-04-08",
		"time":     gin.H{"start": "10:00", "end": "11:00"},
		"location": "Studio 2",
	}
	w = s.do(t, http.MethodPatch, fmt.Sprintf("/api/appointments/%s/reschedule", id), member, body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	moved := decode[dto.AppointmentDTO](t, w)
	assert.Equal(t, id, moved.ID)
	assert.Equal(t, "2025-04-08", moved.Date)
	assert.Equal(t, dto.TimeSlotDTO{Start: "10:00", End: "11:00"}, moved.Time)

	w = s.do(t, http.MethodPatch, "/api/appointments/not-a-uuid/reschedule", member, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateAvailability(t *testing.T) {
	s := newTestServer(t)
	trainer := token(t, 7, domain.RoleTrainer)

	body := `{"days":[{"day_of_week":1,"available":true,"working_hours":[{"start":"07:00","end":"08:00"}]}]}`
	req := httptest.NewRequest(http.MethodPut, "/api/trainers/me/availability", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+trainer)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
	saved := decode[dto.WeeklyAvailabilityDTO](t, w)
	assert.Equal(t, uint(7), saved.TrainerID)
	require.Len(t, saved.Days, 1)

	w = s.do(t, http.MethodGet, "/api/trainers/7/calendar", token(t, 21, domain.RoleMember), nil)
	require.Equal(t, http.StatusOK, w.Code)
	cal := decode[dto.CalendarDTO](t, w)
	assert.True(t, cal.Days[0].Available)
	assert.False(t, cal.Days[1].Available)

	overlapping := gin.H{"days": []gin.H{{
		"day_of_week": 1, "available": true,
		"working_hours": []gin.H{{"start": "07:00", "end": "08:30"}, {"start": "08:00", "end": "09:00"}},
	}}}
	w = s.do(t, http.MethodPut, "/api/trainers/me/availability", trainer, overlapping)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodGet, "/api/trainers/7/availability", trainer, nil)
	require.Equal(t, http.StatusOK, w.Code)
	weekly := decode[dto.WeeklyAvailabilityDTO](t, w)
	require.Len(t, weekly.Days, 1)
	assert.Equal(t, time.Monday, weekly.Days[0].Weekday)
}
