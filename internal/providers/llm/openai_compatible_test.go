package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sandevgo/auralis/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAICompatible_ChatWithFormat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "local-model", body["model"])

		rf, ok := body["response_format"].(map[string]any)
		require.True(t, ok, "response_format missing")
		assert.Equal(t, "json_schema", rf["type"])
		js := rf["json_schema"].(map[string]any)
		assert.Equal(t, "auralis_output", js["name"])
		assert.Equal(t, true, js["strict"])

		_, _ = io.WriteString(w, `{"choices":[{"message":{"role":"assistant","content":"{\"response\":\"oi\"}","reasoning_content":"pensando"}}]}`)
	}))
	defer srv.Close()

	p := NewCustomOpenAI(srv.URL+"/v1/", "secret", "local-model")
	msg, err := p.Chat(context.Background(), []core.Message{
		{Role: core.RoleSystem, Content: "sys"},
		{Role: core.RoleUser, Content: "Hello"},
	}, &core.ResponseFormat{Name: "auralis_output", Schema: json.RawMessage(`{"type":"object"}`)})

	require.NoError(t, err)
	assert.Equal(t, core.RoleAssistant, msg.Role)
	assert.Equal(t, `{"response":"oi"}`, msg.Content)
	assert.Equal(t, "pensando", msg.Reasoning)
}

func TestOpenAICompatible_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "http error", status: http.StatusTooManyRequests, body: `{"error":"rate limited"}`},
		{name: "empty choices", status: http.StatusOK, body: `{"choices":[]}`},
		{name: "garbage", status: http.StatusOK, body: `not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			p := NewCustomOpenAI(srv.URL, "", "m")
			_, err := p.Chat(context.Background(), []core.Message{{Role: core.RoleUser, Content: "x"}}, nil)
			assert.Error(t, err)
		})
	}
}

func TestOpenAICompatible_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, "bad key")
	}))
	defer srv.Close()

	_, err := NewCustomOpenAI(srv.URL, "k", "m").Models(context.Background())

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnauthorized, statusErr.Status)
	assert.Equal(t, "http 401: bad key", err.Error())
}

func TestOpenAICompatible_Models(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/models", r.URL.Path)
		_, _ = io.WriteString(w, `{"data":[{"id":"a"},{"id":"b"}]}`)
	}))
	defer srv.Close()

	models, err := NewCustomOpenAI(srv.URL, "k", "a").Models(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []core.Model{{ID: "a", Name: "a"}, {ID: "b", Name: "b"}}, models)
}

func TestOllama_Models(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tags", r.URL.Path)
		_, _ = io.WriteString(w, `{"models":[{"name":"llama3.1"}]}`)
	}))
	defer srv.Close()

	models, err := NewOllama(srv.URL, "", "llama3.1").Models(context.Background())
	require.NoError(t, err)
	require.Len(t, models, 1)
	assert.Equal(t, "llama3.1", models[0].ID)
}
