package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sivadev/folio/internal/api/rest"
	"github.com/sivadev/folio/internal/errs"
)

func TestSendOmitsEmptyCaptchaToken(t *testing.T) {
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(201)
		_, _ = w.Write([]byte(`{"data": {"id": 7, "name": "Jane"}, "error": null}`))
	}))
	t.Cleanup(srv.Close)

	s := NewContactService(rest.New(srv.URL))
	receipt, err := s.Send(context.Background(), ContactInput{
		Name:    "Jane",
		Email:   "jane@example.com",
		Message: "Hello, I would like to talk.",
	})
	require.NoError(t, err)
	assert.Equal(t, 7, receipt.ID)
	_, hasToken := gotBody["captcha_token"]
	assert.False(t, hasToken, "empty token must not be sent")
}

func TestSendIncludesCaptchaToken(t *testing.T) {
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(201)
		_, _ = w.Write([]byte(`{"data": null, "error": null}`))
	}))
	t.Cleanup(srv.Close)

	s := NewContactService(rest.New(srv.URL))
	_, err := s.Send(context.Background(), ContactInput{
		Name:         "Jane",
		Email:        "jane@example.com",
		Message:      "Hello, I would like to talk.",
		CaptchaToken: "tok-abc",
	})
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", gotBody["captcha_token"])
}

func TestSendStructuredServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(400)
		_, _ = w.Write([]byte(`{"data": null, "error": {"code": "CAPTCHA_FAILED", "message": "Captcha verification failed."}}`))
	}))
	t.Cleanup(srv.Close)

	s := NewContactService(rest.New(srv.URL))
	_, err := s.Send(context.Background(), ContactInput{Name: "Jane", Email: "jane@example.com", Message: "Hello there."})
	require.Error(t, err)
	assert.Equal(t, "Captcha verification failed.", err.Error())
	assert.Equal(t, errs.KindServer, errs.KindOf(err))
}

func TestSendStringifiedErrorObject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(400)
		_, _ = w.Write([]byte(`{"data": null, "error": {"code": "EMPTY_AFTER_SANITIZE"}}`))
	}))
	t.Cleanup(srv.Close)

	s := NewContactService(rest.New(srv.URL))
	_, err := s.Send(context.Background(), ContactInput{Name: "Jane", Email: "jane@example.com", Message: "Hello there."})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EMPTY_AFTER_SANITIZE")
}
