package browser

import (
	"fmt"
	"log"
	"os/exec"
	"runtime"

	pkgbrowser "github.com/pkg/browser"
)

// Runner executes a command and reports whether it succeeded.
type Runner interface {
	Run(name string, args ...string) error
}

// ExecRunner runs commands with os/exec and waits for them to exit.
type ExecRunner struct{}

func (ExecRunner) Run(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

type Launcher interface {
	Launch(url string) error
}

// DefaultOpener hands the URL to the OS-registered default browser.
type DefaultOpener struct {
	// Open defaults to github.com/pkg/browser.OpenURL.
	Open func(url string) error
}

func (d DefaultOpener) Launch(url string) error {
	open := d.Open
	if open == nil {
		open = pkgbrowser.OpenURL
	}
	if err := open(url); err != nil {
		return fmt.Errorf("open default browser failed: %w", err)
	}
	return nil
}

// NamedAppLauncher starts a specific browser using the platform's
// conventions for GOOS.
type NamedAppLauncher struct {
	App    Choice
	GOOS   string
	Runner Runner
}

func (n NamedAppLauncher) Launch(url string) error {
	name, args, err := n.command(url)
	if err != nil {
		return err
	}
	if err := n.Runner.Run(name, args...); err != nil {
		return fmt.Errorf("failed to launch %s with %s: %w", n.App, name, err)
	}
	return nil
}

func (n NamedAppLauncher) command(url string) (string, []string, error) {
	switch n.App {
	case Edge:
		switch n.GOOS {
		case "darwin":
			return "open", []string{"-a", "Microsoft Edge", url}, nil
		case "windows":
			return "cmd", []string{"/C", "start", "microsoft-edge:" + url}, nil
		default:
			return "microsoft-edge", []string{url}, nil
		}
	case Brave:
		switch n.GOOS {
		case "darwin":
			return "open", []string{"-a", "Brave Browser", url}, nil
		case "windows":
			return "cmd", []string{"/C", "start", "", "brave", url}, nil
		default:
			return "brave-browser", []string{url}, nil
		}
	}
	return "", nil, fmt.Errorf("no named application for browser %s", n.App)
}

// FallbackToDefault tries Primary and falls back to Fallback when it fails.
type FallbackToDefault struct {
	Primary  Launcher
	Fallback Launcher
}

func (f FallbackToDefault) Launch(url string) error {
	err := f.Primary.Launch(url)
	if err == nil {
		return nil
	}
	log.Printf("Warning: %v; falling back to the default browser", err)
	if ferr := f.Fallback.Launch(url); ferr != nil {
		return fmt.Errorf("fallback to default browser after failure: %w", ferr)
	}
	return nil
}

// New returns the launcher for choice on goos.
func New(choice Choice, runner Runner, goos string) Launcher {
	def := DefaultOpener{}
	if choice == Default {
		return def
	}
	return FallbackToDefault{
		Primary:  NamedAppLauncher{App: choice, GOOS: goos, Runner: runner},
		Fallback: def,
	}
}

// Start launches url in the background. Failures are logged, never returned.
func Start(choice Choice, url string) {
	launcher := New(choice, ExecRunner{}, runtime.GOOS)
	go func() {
		if err := launcher.Launch(url); err != nil {
			log.Printf("Warning: browser launch failed: %v. Open %s manually", err, url)
		}
	}()
}
