package payment_test

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
	"github.com/wangserena1960-stack/fitcircle-backend/internal/payment"
	"github.com/wangserena1960-stack/fitcircle-backend/internal/student"
	"github.com/wangserena1960-stack/fitcircle-backend/internal/testdb"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentHandler_Shared(t *testing.T) {
	pgContainer := testdb.SetupSharedPostgres(t)
	defer pgContainer.Cleanup(t)

	pgContainer.RunMigrations(t,
		(*coach.Coach)(nil),
		(*student.Student)(nil),
		(*class.Class)(nil),
		(*payment.Payment)(nil),
	)

	mockMetrics := metrics.NewMock()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	studentRepo := student.NewRepository(pgContainer.DB, mockMetrics)
	classRepo := class.NewRepository(pgContainer.DB, mockMetrics)
	repo := payment.NewRepository(pgContainer.DB, mockMetrics)
	// nil producer: publishing is skipped, which is the no-broker configuration
	service := payment.NewService(repo, studentRepo, classRepo, nil, logger)
	handler := payment.NewHandler(service, logger, mockMetrics)
	router := chi.NewRouter()
	handler.RegisterRoutes(router)

	seedStudent := func(t *testing.T, name string) *student.Student {
		t.Helper()
		s := &student.Student{Name: name}
		_, err := pgContainer.DB.NewInsert().Model(s).Exec(context.Background())
		require.NoError(t, err)
		return s
	}

	seedClass := func(t *testing.T, name string) *class.Class {
		t.Helper()
		co := &coach.Coach{Name: "Coach for " + name, IsActive: 1}
		_, err := pgContainer.DB.NewInsert().Model(co).Exec(context.Background())
		require.NoError(t, err)
		cls := &class.Class{CoachID: co.ID, Name: name}
		_, err = pgContainer.DB.NewInsert().Model(cls).Exec(context.Background())
		require.NoError(t, err)
		return cls
	}

	cleanup := func(t *testing.T) {
		testdb.CleanupTables(t, pgContainer.DB, "payments", "classes", "students", "coaches")
	}

	t.Run("Create_Success", func(t *testing.T) {
		cleanup(t)
		s := seedStudent(t, "Mika")
		cls := seedClass(t, "Morning Yoga")

		payload := map[string]interface{}{
			"class_id": cls.ID,
			"amount":   4800,
			"paid_at":  "2026-08-01",
			"channel":  "transfer",
			"note":     "term fee",
		}
		body, _ := json.Marshal(payload)

		req := httptest.NewRequest(http.MethodPost, "/students/"+strconv.Itoa(s.ID)+"/payments", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response map[string]int
		err := json.NewDecoder(w.Body).Decode(&response)
		require.NoError(t, err)
		assert.Greater(t, response["id"], 0)

		var stored payment.Payment
		err = pgContainer.DB.NewSelect().Model(&stored).Where("p.id = ?", response["id"]).Scan(context.Background())
		require.NoError(t, err)
		assert.Equal(t, s.ID, stored.StudentID)
		assert.Equal(t, "2026-08-01", stored.PaidAt)
		assert.InDelta(t, 4800, stored.Amount, 0.001)
	})

	t.Run("Create_WithoutClass", func(t *testing.T) {
		cleanup(t)
		s := seedStudent(t, "Noah")

		body := []byte(`{"amount": 500, "paid_at": "2026-08-02", "channel": "cash"}`)
		req := httptest.NewRequest(http.MethodPost, "/students/"+strconv.Itoa(s.ID)+"/payments", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var stored payment.Payment
		err := pgContainer.DB.NewSelect().Model(&stored).Where("p.student_id = ?", s.ID).Scan(context.Background())
		require.NoError(t, err)
		assert.Nil(t, stored.ClassID)
	})

	t.Run("Create_MissingAmount", func(t *testing.T) {
		cleanup(t)
		s := seedStudent(t, "Olive")

		body := []byte(`{"paid_at": "2026-08-02", "channel": "cash"}`)
		req := httptest.NewRequest(http.MethodPost, "/students/"+strconv.Itoa(s.ID)+"/payments", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "amount, paid_at and channel are required")
	})

	t.Run("Create_UnknownStudent", func(t *testing.T) {
		cleanup(t)

		body := []byte(`{"amount": 500, "paid_at": "2026-08-02", "channel": "cash"}`)
		req := httptest.NewRequest(http.MethodPost, "/students/9999/payments", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "student not found")
	})

	t.Run("Create_UnknownClass", func(t *testing.T) {
		cleanup(t)
		s := seedStudent(t, "Parker")

		body := []byte(`{"class_id": 999, "amount": 500, "paid_at": "2026-08-02", "channel": "cash"}`)
		req := httptest.NewRequest(http.MethodPost, "/students/"+strconv.Itoa(s.ID)+"/payments", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "class_id does not reference an existing class")
	})

	t.Run("ListByStudent_JoinsClassName", func(t *testing.T) {
		cleanup(t)
		s := seedStudent(t, "Quinn")
		other := seedStudent(t, "Riley")
		cls := seedClass(t, "Evening HIIT")

		for _, p := range []*payment.Payment{
			{StudentID: s.ID, ClassID: &cls.ID, Amount: 500, PaidAt: "2026-08-01", Channel: "cash"},
			{StudentID: s.ID, Amount: 300, PaidAt: "2026-08-02", Channel: "transfer"},
			{StudentID: other.ID, Amount: 999, PaidAt: "2026-08-03", Channel: "cash"},
		} {
			_, err := pgContainer.DB.NewInsert().Model(p).Exec(context.Background())
			require.NoError(t, err)
		}

		req := httptest.NewRequest(http.MethodGet, "/students/"+strconv.Itoa(s.ID)+"/payments", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var payments []payment.Payment
		err := json.NewDecoder(w.Body).Decode(&payments)
		require.NoError(t, err)
		require.Len(t, payments, 2)

		// newest first
		assert.Equal(t, "", payments[0].ClassName)
		assert.Equal(t, "Evening HIIT", payments[1].ClassName)
	})

	t.Run("ListByStudent_Empty", func(t *testing.T) {
		cleanup(t)
		s := seedStudent(t, "Sage")

		req := httptest.NewRequest(http.MethodGet, "/students/"+strconv.Itoa(s.ID)+"/payments", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})

	t.Run("ListByStudent_InvalidID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/students/abc/payments", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
