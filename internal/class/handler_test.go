package class_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"

	"github.com/wangserena1960-stack/fitcircle-backend/internal/class"
	"github.com/wangserena1960-stack/fitcircle-backend/internal/coach"
	"github.com/wangserena1960-stack/fitcircle-backend/internal/metrics"
	"github.com/wangserena1960-stack/fitcircle-backend/internal/testdb"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassHandler_Shared(t *testing.T) {
	pgContainer := testdb.SetupSharedPostgres(t)
	defer pgContainer.Cleanup(t)

	pgContainer.RunMigrations(t, (*coach.Coach)(nil), (*class.Class)(nil))

	mockMetrics := metrics.NewMock()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	coachRepo := coach.NewRepository(pgContainer.DB, mockMetrics)
	repo := class.NewRepository(pgContainer.DB, mockMetrics)
	service := class.NewService(repo, coachRepo)
	handler := class.NewHandler(service, logger, mockMetrics)
	router := chi.NewRouter()
	handler.RegisterRoutes(router)

	seedCoach := func(t *testing.T, name string) *coach.Coach {
		t.Helper()
		c := &coach.Coach{Name: name, IsActive: 1}
		_, err := pgContainer.DB.NewInsert().Model(c).Exec(context.Background())
		require.NoError(t, err)
		return c
	}

	seedClass := func(t *testing.T, coachID int, name string) *class.Class {
		t.Helper()
		cls := &class.Class{CoachID: coachID, Name: name, Capacity: 10}
		_, err := pgContainer.DB.NewInsert().Model(cls).Exec(context.Background())
		require.NoError(t, err)
		return cls
	}

	t.Run("Create_Success", func(t *testing.T) {
		testdb.CleanupTables(t, pgContainer.DB, "classes", "coaches")
		co := seedCoach(t, "Alex")

		payload := map[string]interface{}{
			"coach_id":          co.ID,
			"name":              "Morning Yoga",
			"location":          "Studio A",
			"schedule_text":     "Mon/Wed 07:00",
			"capacity":          12,
			"term_price":        4800,
			"term_classes":      12,
			"dropin_price":      500,
			"rule_no_leave":     true,
			"rule_allow_dropin": true,
		}
		body, _ := json.Marshal(payload)

		req := httptest.NewRequest(http.MethodPost, "/classes", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response map[string]int
		err := json.NewDecoder(w.Body).Decode(&response)
		require.NoError(t, err)
		assert.Greater(t, response["id"], 0)

		var stored class.Class
		err = pgContainer.DB.NewSelect().Model(&stored).Where("c.id = ?", response["id"]).Scan(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, stored.RuleNoLeave)
		assert.Equal(t, 0, stored.RuleAllowDelay)
		assert.Equal(t, 1, stored.RuleAllowDropin)
	})

	t.Run("Create_MissingFields", func(t *testing.T) {
		testdb.CleanupTables(t, pgContainer.DB, "classes", "coaches")

		body := []byte(`{"name": "Orphan Class"}`)
		req := httptest.NewRequest(http.MethodPost, "/classes", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "coach_id and name are required")
	})

	t.Run("Create_UnknownCoach", func(t *testing.T) {
		testdb.CleanupTables(t, pgContainer.DB, "classes", "coaches")

		body := []byte(`{"coach_id": 999, "name": "Ghost Class"}`)
		req := httptest.NewRequest(http.MethodPost, "/classes", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "coach_id does not reference an existing coach")

		count, err := pgContainer.DB.NewSelect().Model((*class.Class)(nil)).Count(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("List_JoinsCoachName", func(t *testing.T) {
		testdb.CleanupTables(t, pgContainer.DB, "classes", "coaches")
		co := seedCoach(t, "Brooke")
		seedClass(t, co.ID, "Evening HIIT")

		req := httptest.NewRequest(http.MethodGet, "/classes", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var classes []class.Class
		err := json.NewDecoder(w.Body).Decode(&classes)
		require.NoError(t, err)
		require.Len(t, classes, 1)
		assert.Equal(t, "Evening HIIT", classes[0].Name)
		assert.Equal(t, "Brooke", classes[0].CoachName)
	})

	t.Run("List_Empty", func(t *testing.T) {
		testdb.CleanupTables(t, pgContainer.DB, "classes", "coaches")

		req := httptest.NewRequest(http.MethodGet, "/classes", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})

	t.Run("Update_RuleFlagFalseStoresZero", func(t *testing.T) {
		testdb.CleanupTables(t, pgContainer.DB, "classes", "coaches")
		co := seedCoach(t, "Casey")
		cls := seedClass(t, co.ID, "Spin")

		_, err := pgContainer.DB.NewUpdate().Model((*class.Class)(nil)).
			Set("rule_no_leave = 1").Where("id = ?", cls.ID).Exec(context.Background())
		require.NoError(t, err)

		body := []byte(`{"rule_no_leave": false, "capacity": 20}`)
		req := httptest.NewRequest(http.MethodPut, "/classes/"+strconv.Itoa(cls.ID), bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var stored class.Class
		err = pgContainer.DB.NewSelect().Model(&stored).Where("c.id = ?", cls.ID).Scan(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, stored.RuleNoLeave)
		assert.Equal(t, 20, stored.Capacity)
		assert.Equal(t, "Spin", stored.Name)
	})

	t.Run("Update_UnknownCoach", func(t *testing.T) {
		testdb.CleanupTables(t, pgContainer.DB, "classes", "coaches")
		co := seedCoach(t, "Drew")
		cls := seedClass(t, co.ID, "Pilates")

		body := []byte(`{"coach_id": 999}`)
		req := httptest.NewRequest(http.MethodPut, "/classes/"+strconv.Itoa(cls.ID), bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var stored class.Class
		err := pgContainer.DB.NewSelect().Model(&stored).Where("c.id = ?", cls.ID).Scan(context.Background())
		require.NoError(t, err)
		assert.Equal(t, co.ID, stored.CoachID)
	})

	t.Run("Update_NotFound", func(t *testing.T) {
		testdb.CleanupTables(t, pgContainer.DB, "classes", "coaches")

		body := []byte(`{"name": "Ghost"}`)
		req := httptest.NewRequest(http.MethodPut, "/classes/9999", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "class not found")
	})

	t.Run("Delete_Success", func(t *testing.T) {
		testdb.CleanupTables(t, pgContainer.DB, "classes", "coaches")
		co := seedCoach(t, "Emery")
		cls := seedClass(t, co.ID, "Boxing")

		req := httptest.NewRequest(http.MethodDelete, "/classes/"+strconv.Itoa(cls.ID), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		count, err := pgContainer.DB.NewSelect().Model((*class.Class)(nil)).Count(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})
}
