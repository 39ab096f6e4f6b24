package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Acidburn0zzz/docsync/internal/config"
	"github.com/Acidburn0zzz/docsync/internal/logger"
)

func newTestFunctionService(t *testing.T, handler http.HandlerFunc) RemoteFunctionService {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	svc, err := NewHTTPFunctionService(
		config.ClientAdapter{BaseURL: srv.URL, RequestTimeout: 5 * time.Second},
		config.ClientApp{ClientAppID: "test-app"},
		nil,
		logger.Nop(),
	)
	require.NoError(t, err)
	return svc
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "full url kept", input: "https://sync.example.com", want: "https://sync.example.com"},
		{name: "trailing slash trimmed", input: "https://sync.example.com/", want: "https://sync.example.com"},
		{name: "scheme defaulted", input: "sync.example.com:8080", want: "http://sync.example.com:8080"},
		{name: "empty rejected", input: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHTTPFunctionService_CallFunction(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody functionCallRequest

	svc := newTestFunctionService(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"insertedId": "abc"}`))
	})
	svc.SetToken("tok-1")

	var result struct {
		InsertedID string `json:"insertedId"`
	}
	err := svc.CallFunction(context.Background(), "insertOne", []any{map[string]any{"database": "db"}}, &result)
	require.NoError(t, err)

	assert.Equal(t, "/app/test-app/functions/call", gotPath)
	assert.Equal(t, "Bearer tok-1", gotAuth)
	assert.Equal(t, "insertOne", gotBody.Name)
	require.Len(t, gotBody.Arguments, 1)
	assert.Equal(t, "abc", result.InsertedID)
}

func TestHTTPFunctionService_NilResultSkipsDecode(t *testing.T) {
	svc := newTestFunctionService(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json at all`))
	})

	assert.NoError(t, svc.CallFunction(context.Background(), "deleteOne", nil, nil))
}

func TestHTTPFunctionService_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "bad request", status: http.StatusBadRequest, wantErr: ErrBadRequest},
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, wantErr: ErrUnauthorized},
		{name: "not found", status: http.StatusNotFound, wantErr: ErrFunctionNotFound},
		{name: "conflict", status: http.StatusConflict, wantErr: ErrVersionConflict},
		{name: "precondition failed", status: http.StatusPreconditionFailed, wantErr: ErrVersionConflict},
		{name: "too many requests", status: http.StatusTooManyRequests, wantErr: ErrTransientNetwork},
		{name: "internal error", status: http.StatusInternalServerError, wantErr: ErrTransientNetwork},
		{name: "bad gateway", status: http.StatusBadGateway, wantErr: ErrTransientNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestFunctionService(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			})

			err := svc.CallFunction(context.Background(), "findOne", nil, nil)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestHTTPFunctionService_ConnectionFailureIsTransient(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	svc, err := NewHTTPFunctionService(
		config.ClientAdapter{BaseURL: srv.URL, RequestTimeout: time.Second},
		config.ClientApp{ClientAppID: "test-app"},
		nil,
		logger.Nop(),
	)
	require.NoError(t, err)

	err = svc.CallFunction(context.Background(), "findOne", nil, nil)
	assert.True(t, IsTransient(err))
}

type staticTokenSource struct {
	token string
	err   error
	calls int
}

func (s *staticTokenSource) RefreshToken(context.Context) (string, error) {
	s.calls++
	return s.token, s.err
}

func TestHTTPFunctionService_RefreshesMissingToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	source := &staticTokenSource{token: "fresh-token"}
	svc, err := NewHTTPFunctionService(
		config.ClientAdapter{BaseURL: srv.URL, RequestTimeout: time.Second},
		config.ClientApp{ClientAppID: "test-app"},
		source,
		logger.Nop(),
	)
	require.NoError(t, err)

	require.NoError(t, svc.CallFunction(context.Background(), "findOne", nil, nil))

	assert.Equal(t, 1, source.calls)
	assert.Equal(t, "Bearer fresh-token", gotAuth)
	assert.Equal(t, "fresh-token", svc.Token())
}

func TestHTTPFunctionService_RefreshFailureIsUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(srv.Close)

	source := &staticTokenSource{err: errors.New("login required")}
	svc, err := NewHTTPFunctionService(
		config.ClientAdapter{BaseURL: srv.URL, RequestTimeout: time.Second},
		config.ClientApp{ClientAppID: "test-app"},
		source,
		logger.Nop(),
	)
	require.NoError(t, err)

	err = svc.CallFunction(context.Background(), "findOne", nil, nil)
	assert.ErrorIs(t, err, ErrUnauthorized)
}
