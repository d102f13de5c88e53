package preview

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestWatcher(t *testing.T) {
	t.Run("reports modification after start", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "page.html")
		if err := os.WriteFile(path, []byte("v1"), 0o644); err != nil {
			t.Fatal(err)
		}

		changed := make(chan string, 1)
		w := NewWatcher([]string{path}, 10*time.Millisecond, func(p string) {
			select {
			case changed <- p:
			default:
			}
		})
		w.Start()
		defer w.Stop()

		// Push the mtime forward past the seeded timestamp.
		future := time.Now().Add(2 * time.Second)
		if err := os.Chtimes(path, future, future); err != nil {
			t.Fatal(err)
		}

		select {
		case p := <-changed:
			if p != path {
				t.Errorf("changed path = %v, want %v", p, path)
			}
		case <-time.After(2 * time.Second):
			t.Fatal("no change reported")
		}
	})

	t.Run("startup does not fire for existing files", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "page.html")
		if err := os.WriteFile(path, []byte("v1"), 0o644); err != nil {
			t.Fatal(err)
		}

		changed := make(chan string, 1)
		w := NewWatcher([]string{path}, 10*time.Millisecond, func(p string) {
			changed <- p
		})
		w.Start()
		defer w.Stop()

		select {
		case p := <-changed:
			t.Errorf("unexpected change for %v", p)
		case <-time.After(100 * time.Millisecond):
		}
	})

	t.Run("missing files are ignored", func(t *testing.T) {
		w := NewWatcher([]string{"/nonexistent/file"}, 10*time.Millisecond, func(string) {
			t.Error("onChange fired for missing file")
		})
		w.Start()
		time.Sleep(50 * time.Millisecond)
		w.Stop()
	})

	t.Run("stop is idempotent", func(t *testing.T) {
		w := NewWatcher([]string{t.TempDir()}, time.Millisecond, nil)
		w.Start()
		w.Stop()
		w.Stop()
	})
}

func TestReloadServer(t *testing.T) {
	rs := NewReloadServer()
	srv := httptest.NewServer(http.HandlerFunc(rs.HandleWebSocket))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	waitForClients(t, rs, 1)

	t.Run("reload message reaches the client", func(t *testing.T) {
		rs.NotifyReload("page.html")

		var msg ReloadMessage
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("read: %v", err)
		}
		if msg.Type != ReloadTypeFull {
			t.Errorf("Type = %v, want %v", msg.Type, ReloadTypeFull)
		}
		if msg.File != "page.html" {
			t.Errorf("File = %v, want page.html", msg.File)
		}
	})

	t.Run("error message carries the text", func(t *testing.T) {
		rs.NotifyError("boom")

		var msg ReloadMessage
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("read: %v", err)
		}
		if msg.Type != ReloadTypeError || msg.Error != "boom" {
			t.Errorf("msg = %+v", msg)
		}
	})

	t.Run("disconnect drops the client", func(t *testing.T) {
		conn.Close()
		waitForClients(t, rs, 0)
	})
}

func waitForClients(t *testing.T, rs *ReloadServer, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if rs.ClientCount() == want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("ClientCount = %v, want %v", rs.ClientCount(), want)
}
