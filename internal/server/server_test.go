package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func seedOutput(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "index.html"), "<h1>home</h1>")
	writeFile(t, filepath.Join(root, "404.html"), "<h1>404: Blog not found</h1>")
	writeFile(t, filepath.Join(root, "hello", "index.html"), "<h1>hello</h1>")
	writeFile(t, filepath.Join(root, "styles.css"), "body{}")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "empty"), 0o755))
	return root
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestHandler_Routes(t *testing.T) {
	ts := httptest.NewServer(New(seedOutput(t), nil).Handler())
	defer ts.Close()

	tests := []struct {
		path   string
		status int
		body   string
	}{
		{path: "/", status: http.StatusOK, body: "home"},
		{path: "/hello/", status: http.StatusOK, body: "hello"},
		{path: "/styles.css", status: http.StatusOK, body: "body{}"},
		{path: "/missing/", status: http.StatusNotFound, body: "404: Blog not found"},
		{path: "/empty/", status: http.StatusNotFound, body: "404: Blog not found"},
		{path: "/../etc/passwd", status: http.StatusNotFound, body: "404: Blog not found"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, body := get(t, ts.URL+tt.path)
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Contains(t, body, tt.body)
			assert.Equal(t, "no-cache, no-store, must-revalidate", resp.Header.Get("Cache-Control"))
		})
	}
}

func TestHandler_NoNotFoundPage(t *testing.T) {
	root := t.TempDir()
	ts := httptest.NewServer(New(root, nil).Handler())
	defer ts.Close()

	resp, _ := get(t, ts.URL+"/anything")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestLiveReload_Broadcast(t *testing.T) {
	srv := New(seedOutput(t), nil)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + LiveReloadPath
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)

	require.Eventually(t, func() bool { return srv.Clients() == 1 }, 2*time.Second, 10*time.Millisecond)

	srv.Broadcast()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg Message
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "RELOAD", msg.Type)

	require.NoError(t, conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))
	conn.Close()
	assert.Eventually(t, func() bool { return srv.Clients() == 0 }, 2*time.Second, 10*time.Millisecond)
}
