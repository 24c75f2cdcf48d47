package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/fatih/color"
	"golang.org/x/sync/errgroup"

	"comicreader/browser"
	"comicreader/config"
	"comicreader/handlers"
	"comicreader/storage"
)

var version = "dev"

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fatal(err)
	}
	if cfg.ShowVersion {
		fmt.Printf("comic-reader %s\n", version)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, browser.Start, nil); err != nil {
		fatal(err)
	}
}

// run serves until ctx is done. ready, when non-nil, receives the base URL
// once the listener is bound.
func run(ctx context.Context, cfg *config.Config, launch func(browser.Choice, string), ready chan<- string) error {
	lib, err := storage.Open(cfg.Dir, storage.ListOptions{VerifyHeaders: cfg.Verify})
	if err != nil {
		return err
	}
	if cfg.Dir != "" {
		log.Printf("Loaded %d images from %s", len(lib.Snapshot().Images), cfg.Dir)
	}

	addr := net.JoinHostPort(config.ListenHost, strconv.Itoa(cfg.Port))
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to bind to %s: %w", addr, err)
	}
	url := "http://" + listener.Addr().String()

	server := &http.Server{Handler: handlers.New(lib).Routes()}

	launch(cfg.Browser, url)
	if ready != nil {
		ready <- url
	}

	color.New(color.FgGreen, color.Bold).Printf("Serving comics at %s\n", url)
	fmt.Println("Press Ctrl+C to stop the server.")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		fmt.Println("\nShutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Println("Server stopped")
	return nil
}

func fatal(err error) {
	color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
