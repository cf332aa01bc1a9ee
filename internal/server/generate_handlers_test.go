package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/examgenius/exam-platform/internal/auth"
	"github.com/examgenius/exam-platform/internal/auth/jwt"
	"github.com/examgenius/exam-platform/internal/config"
	"github.com/examgenius/exam-platform/internal/curriculum"
	"github.com/examgenius/exam-platform/internal/export"
	"github.com/examgenius/exam-platform/internal/generate"
)

type memoryUserStore struct {
	mu    sync.Mutex
	users map[uuid.UUID]auth.UserRecord
}

func newMemoryUserStore() *memoryUserStore {
	return &memoryUserStore{users: make(map[uuid.UUID]auth.UserRecord)}
}

func (s *memoryUserStore) Create(_ context.Context, rec auth.UserRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[rec.ID] = rec
	return nil
}

func (s *memoryUserStore) GetByEmail(_ context.Context, email string) (auth.UserRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.users {
		if rec.Email != nil && *rec.Email == email {
			return rec, nil
		}
	}
	return auth.UserRecord{}, auth.ErrUserNotFound
}

func (s *memoryUserStore) GetByID(_ context.Context, id uuid.UUID) (auth.UserRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.users[id]
	if !ok {
		return auth.UserRecord{}, auth.ErrUserNotFound
	}
	return rec, nil
}

func (s *memoryUserStore) UpdateLastLogin(_ context.Context, _ uuid.UUID) error { return nil }

type memoryRequestStore struct {
	mu       sync.Mutex
	requests map[string]generate.Request
}

func newMemoryRequestStore() *memoryRequestStore {
	return &memoryRequestStore{requests: make(map[string]generate.Request)}
}

func (s *memoryRequestStore) CreateRequest(_ context.Context, req generate.Request) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests[req.ID] = req
	return nil
}

func (s *memoryRequestStore) GetRequest(_ context.Context, id string) (generate.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	req, ok := s.requests[id]
	if !ok {
		return generate.Request{}, generate.ErrRequestNotFound
	}
	return req, nil
}

func (s *memoryRequestStore) UpdateProgress(_ context.Context, id, status string, progressPct int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	req, ok := s.requests[id]
	if !ok {
		return generate.ErrRequestNotFound
	}
	req.Status = status
	if progressPct > req.ProgressPct {
		req.ProgressPct = progressPct
	}
	s.requests[id] = req
	return nil
}

func (s *memoryRequestStore) MarkFailed(_ context.Context, id, errMsg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	req, ok := s.requests[id]
	if !ok {
		return generate.ErrRequestNotFound
	}
	req.Status = generate.StatusFailed
	req.Error = errMsg
	s.requests[id] = req
	return nil
}

func (s *memoryRequestStore) MarkComplete(_ context.Context, id, setID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	req, ok := s.requests[id]
	if !ok {
		return generate.ErrRequestNotFound
	}
	req.Status = generate.StatusComplete
	req.ProgressPct = 100
	req.SetID = setID
	s.requests[id] = req
	return nil
}

type memorySetStore struct {
	mu   sync.Mutex
	sets map[string]generate.QuestionSet
}

func newMemorySetStore() *memorySetStore {
	return &memorySetStore{sets: make(map[string]generate.QuestionSet)}
}

func (s *memorySetStore) CreateSet(_ context.Context, set generate.QuestionSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sets[set.ID] = set
	return nil
}

func (s *memorySetStore) GetSet(_ context.Context, id string) (generate.QuestionSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	set, ok := s.sets[id]
	if !ok {
		return generate.QuestionSet{}, generate.ErrSetNotFound
	}
	return set, nil
}

func (s *memorySetStore) ReplaceQuestions(_ context.Context, id string, questions []generate.Question, updatedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	set, ok := s.sets[id]
	if !ok {
		return generate.ErrSetNotFound
	}
	set.Questions = questions
	set.UpdatedAt = updatedAt
	s.sets[id] = set
	return nil
}

func (s *memorySetStore) ListSetsByOwner(_ context.Context, ownerID string) ([]generate.QuestionSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []generate.QuestionSet
	for _, set := range s.sets {
		if set.OwnerID == ownerID {
			out = append(out, set)
		}
	}
	return out, nil
}

type nopStatusCache struct{}

func (nopStatusCache) Get(context.Context, string) (*generate.Request, error) { return nil, nil }
func (nopStatusCache) Set(context.Context, generate.Request) error            { return nil }

type stubResolver struct{}

func (stubResolver) Resolve(context.Context, string, string, curriculum.Selection) (string, error) {
	return "reference text", nil
}

type stubCompleter struct{}

func (stubCompleter) Complete(context.Context, string) (string, error) {
	return `{"questions":[]}`, nil
}

type testServer struct {
	handler  http.Handler
	authSvc  *auth.Service
	sets     *memorySetStore
	requests *memoryRequestStore
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := zerolog.Nop()
	tokenCfg := jwt.TokenConfig{
		AccessSecret:  []byte("test-access-secret"),
		RefreshSecret: []byte("test-refresh-secret"),
	}
	authSvc := auth.NewService(newMemoryUserStore(), tokenCfg, logger)

	requests := newMemoryRequestStore()
	sets := newMemorySetStore()
	genSvc := generate.NewService(
		curriculum.Default(),
		stubResolver{},
		stubCompleter{},
		requests,
		sets,
		nopStatusCache{},
		nil,
		logger,
		generate.ServiceOptions{QueueSize: 4},
	)

	handlers := Handlers{
		Auth:       auth.NewHTTPHandlers(authSvc, nil, logger),
		Curriculum: NewCurriculumHandlers(curriculum.Default()),
		Generate:   NewGenerateHandlers(genSvc, logger),
	}
	srv := NewHTTPServer(&config.App{HTTPAddr: "127.0.0.1:0"}, logger, nil, nil, authSvc, handlers)

	return &testServer{handler: srv.Handler, authSvc: authSvc, sets: sets, requests: requests}
}

func (ts *testServer) token(t *testing.T) (string, string) {
	t.Helper()
	user, tokens, err := ts.authSvc.CreateGuest(context.Background(), auth.GuestRequest{DisplayName: "Ama"})
	require.NoError(t, err)
	return tokens.AccessToken, user.ID.String()
}

func (ts *testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func validSubmitBody() map[string]interface{} {
	return map[string]interface{}{
		"documentId": "tm4",
		"selection": map[string]interface{}{
			"classLevel":         "SHS",
			"classGrade":         "shs1",
			"subjectId":          "comp_shs",
			"strandId":           "comp1",
			"subStrandId":        "comp1_1",
			"learningIndicators": []string{"li_comp1_1_1"},
		},
		"questionTypes": []map[string]interface{}{
			{"type": "MCQ", "count": 2},
		},
	}
}

func TestSubmitRequestAccepted(t *testing.T) {
	ts := newTestServer(t)
	token, _ := ts.token(t)

	rec := ts.do(t, http.MethodPost, "/v1/requests", token, validSubmitBody())

	require.Equal(t, http.StatusAccepted, rec.Code)
	var body struct {
		RequestID string `json:"request_id"`
		Status    string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.RequestID, "req_")
	assert.Equal(t, generate.StatusPending, body.Status)
}

func TestSubmitRequestRequiresAuth(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/v1/requests", "", validSubmitBody())

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSubmitRequestValidationFailure(t *testing.T) {
	ts := newTestServer(t)
	token, _ := ts.token(t)

	body := validSubmitBody()
	body["documentId"] = ""
	rec := ts.do(t, http.MethodPost, "/v1/requests", token, body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp struct {
		Field string `json:"field"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "documentId", resp.Field)
}

func TestRequestStatusOwnership(t *testing.T) {
	ts := newTestServer(t)
	token, _ := ts.token(t)

	rec := ts.do(t, http.MethodPost, "/v1/requests", token, validSubmitBody())
	require.Equal(t, http.StatusAccepted, rec.Code)
	var submitted struct {
		RequestID string `json:"request_id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &submitted))

	rec = ts.do(t, http.MethodGet, "/v1/requests/"+submitted.RequestID, token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	otherToken, _ := ts.token(t)
	rec = ts.do(t, http.MethodGet, "/v1/requests/"+submitted.RequestID, otherToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGetAndSaveSet(t *testing.T) {
	ts := newTestServer(t)
	token, userID := ts.token(t)

	set := generate.QuestionSet{
		ID:      "set_12345",
		OwnerID: userID,
		Questions: []generate.Question{
			{ID: "q1", Type: generate.TypeTrueFalse, Text: "Water boils at 100 degrees Celsius at sea level.", Answer: generate.BoolAnswer(true)},
		},
	}
	require.NoError(t, ts.sets.CreateSet(context.Background(), set))

	rec := ts.do(t, http.MethodGet, "/v1/sets/set_12345", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	edited := map[string]interface{}{
		"questions": []map[string]interface{}{
			{"id": "q1", "type": "True/False", "text": "Sound travels faster in water than in air.", "answer": false},
		},
	}
	rec = ts.do(t, http.MethodPut, "/v1/sets/set_12345", token, edited)
	require.Equal(t, http.StatusOK, rec.Code)

	stored, err := ts.sets.GetSet(context.Background(), "set_12345")
	require.NoError(t, err)
	val, ok := stored.Questions[0].Answer.Bool()
	require.True(t, ok)
	assert.False(t, val)
}

func TestSaveSetRejectsBadShape(t *testing.T) {
	ts := newTestServer(t)
	token, userID := ts.token(t)

	require.NoError(t, ts.sets.CreateSet(context.Background(), generate.QuestionSet{
		ID:      "set_54321",
		OwnerID: userID,
		Questions: []generate.Question{
			{ID: "q1", Type: generate.TypeShortAnswer, Text: "Explain photosynthesis.", Answer: generate.TextAnswer("Plants convert light energy.")},
		},
	}))

	// MCQ with three options instead of four
	edited := map[string]interface{}{
		"questions": []map[string]interface{}{
			{"id": "q1", "type": "MCQ", "text": "Pick one.", "options": []string{"a", "b", "c"}, "answer": 0},
		},
	}
	rec := ts.do(t, http.MethodPut, "/v1/sets/set_54321", token, edited)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExportSetDownload(t *testing.T) {
	ts := newTestServer(t)
	token, userID := ts.token(t)

	require.NoError(t, ts.sets.CreateSet(context.Background(), generate.QuestionSet{
		ID:      "set_abcde123",
		OwnerID: userID,
		Questions: []generate.Question{
			{ID: "q1", Type: generate.TypeMCQ, Text: "Which unit measures force?",
				Options: []string{"Newton", "Joule", "Watt", "Pascal"}, Answer: generate.IndexAnswer(0)},
		},
	}))

	rec := ts.do(t, http.MethodGet, "/v1/sets/set_abcde123/export", token, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, export.ContentType, rec.Header().Get("Content-Type"))
	assert.Equal(t, fmt.Sprintf("attachment; filename=%q", "exam-questions-set_abcde123.doc"), rec.Header().Get("Content-Disposition"))
	assert.Contains(t, rec.Body.String(), "MULTIPLE CHOICE QUESTIONS")
}

func TestListSetsEmpty(t *testing.T) {
	ts := newTestServer(t)
	token, _ := ts.token(t)

	rec := ts.do(t, http.MethodGet, "/v1/sets", token, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"sets":[]}`, rec.Body.String())
}
