package controller

import (
	"bytes"
	"context"
	"edusphere_backend/internal/model"
	"edusphere_backend/internal/service"
	"edusphere_backend/pkg/logger"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

type stubStore struct {
	created   []*model.EvaluationTest
	createErr error
}

func (s *stubStore) Create(e *model.EvaluationTest) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.created = append(s.created, e)
	return nil
}

func (s *stubStore) FindByID(ctx context.Context, id string) (*model.EvaluationTest, error) {
	for _, e := range s.created {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, errors.New("record not found")
}

func (s *stubStore) List(studentID string, page, limit int) ([]model.EvaluationTest, int64, error) {
	var out []model.EvaluationTest
	for _, e := range s.created {
		if studentID == "" || e.StudentID == studentID {
			out = append(out, *e)
		}
	}
	return out, int64(len(out)), nil
}

func (s *stubStore) CountAndAverageScore() (int64, float64, error) {
	return int64(len(s.created)), 0, nil
}

type stubCompleter struct{ err error }

func (s *stubCompleter) Complete(ctx context.Context, system, prompt string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "", errors.New("no reply configured")
}

func newTestRouter(store *stubStore) *gin.Engine {
	svc := service.NewEvaluationService(store, &stubCompleter{err: errors.New("ai down")})
	c := NewEvaluationController(svc)

	router := gin.New()
	router.POST("/api/evaluations", c.Evaluate)
	router.GET("/api/evaluations/:id", c.GetEvaluation)
	router.GET("/api/students/:studentId/evaluations", c.ListStudentEvaluations)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestEvaluate_MissingRequiredFields(t *testing.T) {
	router := newTestRouter(&stubStore{})

	cases := []struct {
		name string
		body map[string]interface{}
	}{
		{"no assessment_id", map[string]interface{}{
			"student_id":      "s1",
			"student_answers": map[string][]interface{}{"1": {true}},
		}},
		{"no student_id", map[string]interface{}{
			"assessment_id":   "1",
			"student_answers": map[string][]interface{}{"1": {true}},
		}},
		{"no student_answers", map[string]interface{}{
			"assessment_id": "1",
			"student_id":    "s1",
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := postJSON(t, router, "/api/evaluations", tc.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "Missing required fields", resp["error"])
		})
	}
}

func TestEvaluate_Success(t *testing.T) {
	store := &stubStore{}
	router := newTestRouter(store)

	w := postJSON(t, router, "/api/evaluations", map[string]interface{}{
		"assessment_id": "11",
		"student_id":    "s1",
		"student_answers": map[string][]interface{}{
			"11": {true, false},
		},
		"questions": []map[string]interface{}{
			{"assessmentId": "11", "questionType": "TrueFalse", "question": "q1", "correctAnswer": true},
			{"assessmentId": "11", "questionType": "TrueFalse", "question": "q2", "correctAnswer": true},
		},
	})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Evaluation struct {
			Score       int    `json:"score"`
			Performance string `json:"performance"`
			StudentID   string `json:"student_id"`
		} `json:"evaluation"`
		IndividualEvaluations []json.RawMessage `json:"individual_evaluations"`
		AllAssessmentIDs      []string          `json:"all_assessment_ids"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, 50, resp.Evaluation.Score)
	assert.Equal(t, "Needs Improvement", resp.Evaluation.Performance)
	assert.Equal(t, "s1", resp.Evaluation.StudentID)
	assert.Len(t, resp.IndividualEvaluations, 1)
	assert.Equal(t, []string{"11"}, resp.AllAssessmentIDs)
	assert.Len(t, store.created, 1)
}

func TestEvaluate_StoreFailure(t *testing.T) {
	router := newTestRouter(&stubStore{createErr: errors.New("mysql gone away")})

	w := postJSON(t, router, "/api/evaluations", map[string]interface{}{
		"assessment_id": "1",
		"student_id":    "s1",
		"student_answers": map[string][]interface{}{
			"1": {true},
		},
		"questions": []map[string]interface{}{
			{"questionType": "TrueFalse", "question": "q1", "correctAnswer": true},
		},
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Failed to evaluate assessment", resp["error"])
	assert.Contains(t, resp["details"], "mysql gone away")
}

func TestGetEvaluation_NotFound(t *testing.T) {
	router := newTestRouter(&stubStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/evaluations/nope", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListStudentEvaluations(t *testing.T) {
	store := &stubStore{created: []*model.EvaluationTest{
		{StudentID: "s1", Score: 80},
		{StudentID: "s2", Score: 60},
	}}
	router := newTestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/students/s1/evaluations", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Code int `json:"code"`
		Data struct {
			Total int64 `json:"total"`
			Page  int   `json:"page"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, int64(1), resp.Data.Total)
	assert.Equal(t, 1, resp.Data.Page)
}
