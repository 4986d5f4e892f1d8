package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trovehq/trove/internal/model"
	"github.com/trovehq/trove/internal/platform/logger"
	"github.com/trovehq/trove/internal/store/sqlite"
)

const testAPIKey = "test-api-key"

var testServer *httptest.Server

// TestMain boots one HTTP server over a real router and a temp sqlite store.
func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "trove-api-test")
	if err != nil {
		fmt.Printf("temp dir: %v\n", err)
		os.Exit(1)
	}

	kv, err := sqlite.New(filepath.Join(dir, "trove.db"))
	if err != nil {
		fmt.Printf("open store: %v\n", err)
		os.Exit(1)
	}

	router := NewRouter(kv, testAPIKey, logger.New("api-test"))
	testServer = httptest.NewServer(router)

	code := m.Run()

	testServer.Close()
	_ = kv.Close()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

func doJSON(t *testing.T, method, path string, body interface{}, key string) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, testServer.URL+path, rd)
	require.NoError(t, err)
	if key != "" {
		req.Header.Set("X-API-Key", key)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeItemBody(t *testing.T, resp *http.Response) model.Item {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	var it model.Item
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&it))
	return it
}

func TestUnauthorizedWithoutKey(t *testing.T) {
	for _, tc := range []struct {
		method, path string
	}{
		{http.MethodGet, "/items"},
		{http.MethodPost, "/items"},
		{http.MethodGet, "/items/some-id"},
		{http.MethodDelete, "/items/some-id"},
		{http.MethodPost, "/items/capture"},
	} {
		resp := doJSON(t, tc.method, tc.path, nil, "")
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "%s %s", tc.method, tc.path)
	}
}

func TestUnauthorizedWithWrongKey(t *testing.T) {
	resp := doJSON(t, http.MethodGet, "/items/some-id", nil, "wrong-key")
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	// no leakage about the expected secret or the target id
	assert.NotContains(t, string(body), testAPIKey)
	assert.NotContains(t, string(body), "some-id")
}

func TestHealthNeedsNoKey(t *testing.T) {
	resp, err := http.Get(testServer.URL + "/api/health")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
}

func TestItemCRUD(t *testing.T) {
	// create
	resp := doJSON(t, http.MethodPost, "/items", map[string]interface{}{
		"type":    "task",
		"title":   "water plants",
		"content": "the ficus too",
		"tags":    []string{"home"},
	}, testAPIKey)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeItemBody(t, resp)

	assert.NotEmpty(t, created.ID)
	assert.NotZero(t, created.CreatedAt)
	assert.Equal(t, "task", created.Type)
	require.NotNil(t, created.Content)
	assert.Equal(t, "the ficus too", *created.Content)

	// fetch
	resp = doJSON(t, http.MethodGet, "/items/"+created.ID, nil, testAPIKey)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	fetched := decodeItemBody(t, resp)
	assert.Equal(t, created, fetched)

	// partial update: only the title changes, and id/created_at in the
	// payload are ignored
	resp = doJSON(t, http.MethodPatch, "/items/"+created.ID, map[string]interface{}{
		"id":         "forged-id",
		"created_at": 1,
		"title":      "water all plants",
	}, testAPIKey)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decodeItemBody(t, resp)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "water all plants", updated.Title)
	assert.Equal(t, created.Tags, updated.Tags)
	require.NotNil(t, updated.Content)
	assert.Equal(t, "the ficus too", *updated.Content)

	// PUT carries the same merge semantics
	resp = doJSON(t, http.MethodPut, "/items/"+created.ID, map[string]interface{}{
		"completed": true,
	}, testAPIKey)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated = decodeItemBody(t, resp)
	require.NotNil(t, updated.Completed)
	assert.True(t, *updated.Completed)
	assert.Equal(t, "water all plants", updated.Title)

	// delete, then every further access is a 404
	resp = doJSON(t, http.MethodDelete, "/items/"+created.ID, nil, testAPIKey)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, "/items/"+created.ID, nil, testAPIKey)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, http.MethodDelete, "/items/"+created.ID, nil, testAPIKey)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUpdateMissingItem(t *testing.T) {
	resp := doJSON(t, http.MethodPatch, "/items/does-not-exist", map[string]interface{}{
		"title": "x",
	}, testAPIKey)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateInvalidJSON(t *testing.T) {
	req, err := http.NewRequest(http.MethodPost, testServer.URL+"/items", bytes.NewReader([]byte("{nope")))
	require.NoError(t, err)
	req.Header.Set("X-API-Key", testAPIKey)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	_ = resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestFilterQuery(t *testing.T) {
	mk := func(typ, title string, tags []string) model.Item {
		resp := doJSON(t, http.MethodPost, "/items", map[string]interface{}{
			"type": typ, "title": title, "tags": tags,
		}, testAPIKey)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		return decodeItemBody(t, resp)
	}
	a := mk("task", "filter-A", []string{"filter-urgent", "filter-home"})
	mk("task", "filter-B", []string{"filter-home"})
	mk("note", "filter-C", []string{"filter-urgent"})

	resp := doJSON(t, http.MethodGet, "/items?type=task&tags=filter-urgent", nil, testAPIKey)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer func() { _ = resp.Body.Close() }()

	var items []model.Item
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
	require.Len(t, items, 1)
	assert.Equal(t, a.ID, items[0].ID)
}

func TestCaptureEndpoint(t *testing.T) {
	resp := doJSON(t, http.MethodPost, "/items/capture", map[string]interface{}{
		"text": "Dentist on Friday #event #health\nbring insurance card",
	}, testAPIKey)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	it := decodeItemBody(t, resp)

	assert.Equal(t, "event", it.Type)
	assert.Equal(t, "Dentist on Friday", it.Title)
	assert.Equal(t, []string{"event", "health"}, it.Tags)
	require.NotNil(t, it.Content)
	assert.Equal(t, "bring insurance card", *it.Content)

	// the captured item is persisted and retrievable
	resp = doJSON(t, http.MethodGet, "/items/"+it.ID, nil, testAPIKey)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	stored := decodeItemBody(t, resp)
	assert.Equal(t, it, stored)
}
