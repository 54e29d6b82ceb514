package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/docusage/docusage-be/database"
	"github.com/docusage/docusage-be/service"
	"github.com/docusage/docusage-be/types"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCompletion struct {
	raw []byte
}

func (s *stubCompletion) Complete(ctx context.Context, req service.CompletionRequest) ([]byte, error) {
	return s.raw, nil
}

func newAskRouter(t *testing.T, completion service.CompletionService) (*gin.Engine, database.DocumentStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store, err := database.NewFileStore(t.TempDir())
	require.NoError(t, err)
	answerService := service.NewAnswerService(store, completion, time.Minute)
	h := NewAskHandler(answerService)

	router := gin.New()
	router.POST("/api/v1/ask", h.HandleAsk)
	router.GET("/api/v1/ask/suggestions", h.HandleSuggestions)
	return router, store
}

func TestHandleAsk_EmptyKnowledgeBase(t *testing.T) {
	router, _ := newAskRouter(t, &stubCompletion{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ask", strings.NewReader(`{"question":"anything"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Status string             `json:"status"`
		Data   types.AnswerResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, service.NoKnowledgeBaseAnswer, resp.Data.Answer)
	assert.Empty(t, resp.Data.Sources)
}

func TestHandleAsk_Answer(t *testing.T) {
	completion := &stubCompletion{raw: []byte(`{"answer":"42","sources":["Doc A"]}`)}
	router, store := newAskRouter(t, completion)
	_, err := store.Append(context.Background(), types.DocumentInput{
		Source: types.SourceNotion, Name: "Doc A", Content: "The answer is 42.",
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ask", strings.NewReader(`{"question":"What is the answer?"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data types.AnswerResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "42", resp.Data.Answer)
	assert.Equal(t, []string{"Doc A"}, resp.Data.Sources)
}

func TestHandleAsk_InvalidBody(t *testing.T) {
	router, _ := newAskRouter(t, &stubCompletion{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ask", strings.NewReader(`{`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleAsk_EmptyQuestion(t *testing.T) {
	router, _ := newAskRouter(t, &stubCompletion{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ask", strings.NewReader(`{"question":""}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleSuggestions(t *testing.T) {
	router, _ := newAskRouter(t, &stubCompletion{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/ask/suggestions", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data []string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Data)
}
