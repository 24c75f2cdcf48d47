package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"comicreader/browser"
)

type Config struct {
	Dir         string
	Port        int
	Browser     browser.Choice
	Verify      bool
	ShowVersion bool
}

// Load reads an optional .env file, then parses args on top of the
// environment defaults. Explicit flags always win.
func Load(args []string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Warning: failed to parse .env: %v", err)
	}
	return Parse(args, os.Getenv)
}

// Parse builds a Config from args, using getenv for defaults. It returns
// flag.ErrHelp when -h or --help was given.
func Parse(args []string, getenv func(string) string) (*Config, error) {
	cfg := &Config{Port: DefaultPort, Browser: browser.Default}
	applyEnv(cfg, getenv)

	fset := flag.NewFlagSet("comic-reader", flag.ContinueOnError)
	fset.StringVar(&cfg.Dir, "dir", cfg.Dir, "folder that holds comic images (001.png, 002.png, ...); pick one in the web UI when omitted")
	fset.StringVar(&cfg.Dir, "d", cfg.Dir, "shorthand for --dir")
	fset.IntVar(&cfg.Port, "port", cfg.Port, "HTTP port to listen on (0 picks a free port)")
	fset.Var(&cfg.Browser, "browser", "browser to launch: default, edge or brave")
	fset.BoolVar(&cfg.Verify, "verify", cfg.Verify, "skip files whose image header does not decode")
	fset.BoolVar(&cfg.ShowVersion, "version", false, "print the version and exit")

	if err := fset.Parse(args); err != nil {
		return nil, err
	}
	if fset.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fset.Args(), " "))
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}
	cfg.Dir = strings.TrimSpace(cfg.Dir)
	return cfg, nil
}

func applyEnv(cfg *Config, getenv func(string) string) {
	if v := getenv("COMIC_DIR"); v != "" {
		cfg.Dir = v
	}
	if v := getenv("COMIC_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 && n <= 65535 {
			cfg.Port = n
		} else {
			log.Printf("Warning: invalid COMIC_PORT '%s', using %d", v, cfg.Port)
		}
	}
	if v := getenv("COMIC_BROWSER"); v != "" {
		if err := cfg.Browser.Set(v); err != nil {
			log.Printf("Warning: invalid COMIC_BROWSER '%s', using %s", v, cfg.Browser)
		}
	}
	if v := getenv("COMIC_VERIFY"); v == "true" || v == "1" {
		cfg.Verify = true
	}
}

func validate(cfg *Config) error {
	if cfg.Dir != "" && strings.TrimSpace(cfg.Dir) == "" {
		return errors.New("invalid dir: must not be blank")
	}
	if cfg.Port < 0 || cfg.Port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 0 and 65535", cfg.Port)
	}
	return nil
}
