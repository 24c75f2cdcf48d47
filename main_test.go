package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"comicreader/browser"
	"comicreader/config"
	"comicreader/storage"
	"comicreader/utils"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func noLaunch(browser.Choice, string) {}

func TestRunStartupFailures(t *testing.T) {
	empty := t.TempDir()
	tests := []struct {
		name    string
		dir     string
		wantErr error
	}{
		{"empty directory", empty, storage.ErrEmptyDirectory},
		{"missing directory", filepath.Join(empty, "missing"), utils.ErrInvalidPath},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{Dir: tt.dir, Port: 0}
			err := run(context.Background(), cfg, noLaunch, nil)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("run() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRunServesAndShutsDown(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "001.png"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	launched := make(chan string, 1)
	launch := func(_ browser.Choice, url string) { launched <- url }
	ready := make(chan string, 1)
	done := make(chan error, 1)
	go func() {
		done <- run(ctx, &config.Config{Dir: dir, Port: 0, Browser: browser.Edge}, launch, ready)
	}()

	var url string
	select {
	case url = <-ready:
	case err := <-done:
		t.Fatalf("run() exited early: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not start")
	}
	if got := <-launched; got != url {
		t.Errorf("launched %q, want %q", got, url)
	}

	resp, err := http.Get(url + "/api/images")
	if err != nil {
		t.Fatalf("GET /api/images: %v", err)
	}
	var body struct {
		Images   []string `json:"images"`
		PageSize int      `json:"page_size"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if len(body.Images) != 1 || body.Images[0] != "001.png" || body.PageSize != 20 {
		t.Errorf("images = %+v", body)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("run() returned %v after shutdown", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
