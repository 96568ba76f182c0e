package controller

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard-be/internal/dto"
	"jobboard-be/internal/pkg/apperror"
	"jobboard-be/internal/pkg/serverutils"
	"jobboard-be/internal/pkg/session"
)

type stubChatService struct {
	historyErr error
	postErr    error

	lastJobId     uuid.UUID
	lastSessionId string
	lastText      string
}

func (s *stubChatService) GetHistory(_ context.Context, jobId uuid.UUID, sessionId string) (*dto.ChatHistoryResponse, error) {
	s.lastJobId = jobId
	s.lastSessionId = sessionId
	if s.historyErr != nil {
		return nil, s.historyErr
	}
	return &dto.ChatHistoryResponse{Messages: []dto.MessageResponse{}}, nil
}

func (s *stubChatService) PostMessage(_ context.Context, jobId uuid.UUID, sessionId string, text string) (*dto.SendMessageResponse, error) {
	s.lastJobId = jobId
	s.lastSessionId = sessionId
	s.lastText = text
	if s.postErr != nil {
		return nil, s.postErr
	}
	return &dto.SendMessageResponse{Message: dto.MessageResponse{
		Id:        uuid.NewString(),
		Role:      "assistant",
		Content:   "stub reply",
		CreatedAt: time.Now(),
	}}, nil
}

type quietLogger struct{}

func (quietLogger) Debug(string, string, map[string]interface{}) {}
func (quietLogger) Info(string, string, map[string]interface{})  {}
func (quietLogger) Warn(string, string, map[string]interface{})  {}
func (quietLogger) Error(string, string, map[string]interface{}) {}
func (quietLogger) Sync() error                                  { return nil }

func newChatTestApp(svc *stubChatService) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: serverutils.NewErrorHandler(quietLogger{}),
	})
	NewChatController(svc).RegisterRoutes(app.Group("/api"))
	return app
}

func sessionCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	return nil
}

func TestGetHistoryIssuesCookieWhenAbsent(t *testing.T) {
	svc := &stubChatService{}
	app := newChatTestApp(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/jobs/"+uuid.NewString()+"/chat", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cookie := sessionCookie(resp)
	require.NotNil(t, cookie, "a fresh visitor must receive a session cookie")
	assert.True(t, cookie.HttpOnly)
	_, err = uuid.Parse(cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, cookie.Value, svc.lastSessionId, "service must see the newly issued id")

	var body dto.ChatHistoryResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotNil(t, body.Messages)
}

func TestGetHistoryReusesExistingCookie(t *testing.T) {
	svc := &stubChatService{}
	app := newChatTestApp(svc)

	existing := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/api/jobs/"+uuid.NewString()+"/chat", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: existing})

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Nil(t, sessionCookie(resp), "an existing session must not be re-issued")
	assert.Equal(t, existing, svc.lastSessionId)
}

func TestGetHistoryMalformedJobId(t *testing.T) {
	app := newChatTestApp(&stubChatService{})

	req := httptest.NewRequest(http.MethodGet, "/api/jobs/not-a-uuid/chat", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"error":"job not found"}`, string(raw))
}

func TestPostMessageHappyPath(t *testing.T) {
	svc := &stubChatService{}
	app := newChatTestApp(svc)

	jobId := uuid.New()
	req := httptest.NewRequest(http.MethodPost, "/api/jobs/"+jobId.String()+"/chat",
		strings.NewReader(`{"message":"Is this remote?"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, jobId, svc.lastJobId)
	assert.Equal(t, "Is this remote?", svc.lastText)
	require.NotNil(t, sessionCookie(resp))

	var body dto.SendMessageResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "assistant", body.Message.Role)
	assert.Equal(t, "stub reply", body.Message.Content)
}

func TestPostMessageValidation(t *testing.T) {
	svc := &stubChatService{}
	app := newChatTestApp(svc)
	url := "/api/jobs/" + uuid.NewString() + "/chat"

	t.Run("missing message field", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, url, strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Empty(t, svc.lastText, "service must not be called on invalid input")
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, url, strings.NewReader(`{not json`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		raw, _ := io.ReadAll(resp.Body)
		var body map[string]string
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.Contains(t, body, "error")
	})
}

func TestPostMessageServiceErrorsMapToStatus(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"not found", apperror.NotFound("job not found"), http.StatusNotFound, `{"error":"job not found"}`},
		{"invalid input", apperror.InvalidInput("message is required"), http.StatusBadRequest, `{"error":"message is required"}`},
		{"collaborator failure", apperror.Collaborator("failed to process chat message", assert.AnError),
			http.StatusInternalServerError, `{"error":"failed to process chat message"}`},
		{"internal details stay hidden", apperror.Internal("db exploded", assert.AnError),
			http.StatusInternalServerError, `{"error":"internal server error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubChatService{postErr: tt.err}
			app := newChatTestApp(svc)

			req := httptest.NewRequest(http.MethodPost, "/api/jobs/"+uuid.NewString()+"/chat",
				strings.NewReader(`{"message":"hi"}`))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			raw, _ := io.ReadAll(resp.Body)
			assert.JSONEq(t, tt.wantBody, string(raw))

			// The cookie is only set after a successful turn.
			assert.Nil(t, sessionCookie(resp))
		})
	}
}
