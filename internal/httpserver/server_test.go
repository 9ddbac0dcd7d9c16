package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"view-cache-policy/internal/cache/l1"
	"view-cache-policy/internal/cache/noop"
	"view-cache-policy/internal/cache/service"
	"view-cache-policy/internal/config"
	"view-cache-policy/internal/models"
	"view-cache-policy/internal/policy"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	logger := zaptest.NewLogger(t)

	l1Store, err := l1.NewBigCacheStore(&config.BigCacheConfig{Enabled: true, Size: 16, EvictionMinutes: 10}, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = l1Store.Close() })

	policies := map[string]*models.PolicyConfig{
		"frontpage": {
			CacheTags:        []string{"vact:node_list:test"},
			CacheTagsExclude: []string{"node_list"},
			ResultsLifetime:  models.CustomLifetime(600),
			OutputLifetime:   models.CustomLifetime(600),
		},
		"uncached": {
			ResultsLifetime: models.PresetLifetime(0),
			OutputLifetime:  models.PresetLifetime(0),
		},
	}
	provider := policy.NewProvider(policies, logger)

	svc := service.NewEvaluationService(l1Store, noop.NewNoOpStore(), provider, logger)
	return NewServer(svc, logger)
}

func doRequest(t *testing.T, server *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody []byte
	if body != nil {
		var err error
		reqBody, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(reqBody))
	recorder := httptest.NewRecorder()
	server.createRouter().ServeHTTP(recorder, req)

	return recorder
}

func TestHandleEvaluate(t *testing.T) {
	server := newTestServer(t)

	recorder := doRequest(t, server, "POST", "/policy/evaluate", &EvaluateRequest{
		View:         "frontpage",
		Contributors: []models.ContributedMetadata{{Tags: []string{"node_list", "config:views.view.x"}}},
		BaseTags:     []string{"node_list"},
		BaseContexts: []string{"url.query_args"},
	})

	require.Equal(t, http.StatusOK, recorder.Code)

	var resp EvaluateResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.NotNil(t, resp.Descriptor)

	assert.Contains(t, resp.Descriptor.Tags, "vact:node_list:test")
	assert.Contains(t, resp.Descriptor.Tags, "config:views.view.x")
	assert.Contains(t, resp.Descriptor.Tags, "node_list") // base tag re-added
	assert.Equal(t, []string{"url.query_args"}, resp.Descriptor.Contexts)
	assert.Equal(t, int64(600), resp.Descriptor.MaxAge)
}

func TestHandleEvaluate_UnknownView(t *testing.T) {
	server := newTestServer(t)

	recorder := doRequest(t, server, "POST", "/policy/evaluate", &EvaluateRequest{View: "missing"})

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestHandleEvaluate_MissingView(t *testing.T) {
	server := newTestServer(t)

	recorder := doRequest(t, server, "POST", "/policy/evaluate", &EvaluateRequest{})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandleEvaluate_InvalidJSON(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest("POST", "/policy/evaluate", bytes.NewReader([]byte("not json")))
	recorder := httptest.NewRecorder()
	server.createRouter().ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandleSetAndGet_Roundtrip(t *testing.T) {
	server := newTestServer(t)

	setRecorder := doRequest(t, server, "POST", "/cache/set", &EvaluateRequest{
		View: "frontpage",
		Data: "<div>rendered</div>",
	})
	require.Equal(t, http.StatusOK, setRecorder.Code)

	getRecorder := doRequest(t, server, "POST", "/cache/get", &EvaluateRequest{View: "frontpage"})
	require.Equal(t, http.StatusOK, getRecorder.Code)

	var resp CacheResponse
	require.NoError(t, json.Unmarshal(getRecorder.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.True(t, resp.Found)
	assert.Equal(t, models.CacheStatusHit, resp.CacheStatus)
	assert.Equal(t, "<div>rendered</div>", resp.Data)
}

func TestHandleGet_Miss(t *testing.T) {
	server := newTestServer(t)

	recorder := doRequest(t, server, "POST", "/cache/get", &EvaluateRequest{View: "frontpage"})
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp CacheResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.False(t, resp.Found)
	assert.Equal(t, models.CacheStatusMiss, resp.CacheStatus)
}

func TestHandleGet_Bypass(t *testing.T) {
	server := newTestServer(t)

	recorder := doRequest(t, server, "POST", "/cache/get", &EvaluateRequest{View: "uncached"})
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp CacheResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, models.CacheStatusBypass, resp.CacheStatus)
}

func TestHandleSet_MissingData(t *testing.T) {
	server := newTestServer(t)

	recorder := doRequest(t, server, "POST", "/cache/set", &EvaluateRequest{View: "frontpage"})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandleInvalidate(t *testing.T) {
	server := newTestServer(t)

	// Store an entry, invalidate one of its tags, expect a miss afterwards.
	setRecorder := doRequest(t, server, "POST", "/cache/set", &EvaluateRequest{
		View: "frontpage",
		Data: "<div>rendered</div>",
	})
	require.Equal(t, http.StatusOK, setRecorder.Code)

	invalidateRecorder := doRequest(t, server, "POST", "/cache/invalidate", &InvalidateRequest{
		Tags: []string{"vact:node_list:test"},
	})
	require.Equal(t, http.StatusOK, invalidateRecorder.Code)

	getRecorder := doRequest(t, server, "POST", "/cache/get", &EvaluateRequest{View: "frontpage"})
	var resp CacheResponse
	require.NoError(t, json.Unmarshal(getRecorder.Body.Bytes(), &resp))
	assert.False(t, resp.Found)
}

func TestHandleInvalidate_MissingTags(t *testing.T) {
	server := newTestServer(t)

	recorder := doRequest(t, server, "POST", "/cache/invalidate", &InvalidateRequest{})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandleHealth(t *testing.T) {
	server := newTestServer(t)

	recorder := doRequest(t, server, "GET", "/health", nil)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "healthy")
}
