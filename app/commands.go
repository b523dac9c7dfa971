package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/themeshell/app/mount"
	"github.com/umputun/themeshell/app/preview"
	"github.com/umputun/themeshell/app/server"
	"github.com/umputun/themeshell/app/shell"
)

// ServerCmd implements the server subcommand
type ServerCmd struct {
	Server struct {
		Address         string        `long:"address" env:"ADDRESS" default:":8080" description:"server listen address"`
		ReadTimeout     time.Duration `long:"read-timeout" env:"READ_TIMEOUT" default:"5s" description:"read timeout"`
		WriteTimeout    time.Duration `long:"write-timeout" env:"WRITE_TIMEOUT" default:"30s" description:"write timeout"`
		IdleTimeout     time.Duration `long:"idle-timeout" env:"IDLE_TIMEOUT" default:"60s" description:"idle timeout"`
		ShutdownTimeout time.Duration `long:"shutdown-timeout" env:"SHUTDOWN_TIMEOUT" default:"5s" description:"graceful shutdown timeout"`
		BaseURL         string        `long:"base-url" env:"BASE_URL" description:"base URL path for reverse proxy (e.g., /shell)"`
	} `group:"server" namespace:"server" env-namespace:"THEMESHELL_SERVER"`

	Mount struct {
		TTL           time.Duration `long:"ttl" env:"TTL" default:"24h" description:"lifetime of a mounted page"`
		Max           int           `long:"max" env:"MAX" default:"10000" description:"max live mounts, oldest dropped first"`
		StatsInterval time.Duration `long:"stats-interval" env:"STATS_INTERVAL" default:"0s" description:"report mount stats every interval, 0 disables"`
	} `group:"mount" namespace:"mount" env-namespace:"THEMESHELL_MOUNT"`

	Limits struct {
		BodySize       int64 `long:"body-size" env:"BODY_SIZE" default:"65536" description:"max request body size in bytes"`
		RequestsPerSec int64 `long:"rps" env:"RPS" default:"1000" description:"max requests per second"`
	} `group:"limits" namespace:"limits" env-namespace:"THEMESHELL_LIMITS"`

	Debug bool `long:"dbg" env:"THEMESHELL_DEBUG" description:"debug mode"`

	ctx    context.Context
	cancel context.CancelFunc
}

// Execute runs the server command
func (s *ServerCmd) Execute(_ []string) error {
	setupLogs(s.Debug)

	defer func() {
		if x := recover(); x != nil {
			log.Printf("[WARN] run time panic:\n%v", x)
			panic(x)
		}
	}()

	if s.ctx == nil {
		s.ctx, s.cancel = context.WithCancel(context.Background())
		signals(s.cancel)
	}

	return s.run(s.ctx)
}

func (s *ServerCmd) run(ctx context.Context) error {
	baseURL, err := validateBaseURL(s.Server.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}

	log.Printf("[INFO] starting themeshell server on %s", s.Server.Address)
	if baseURL != "" {
		log.Printf("[INFO] base URL: %s", baseURL)
	}

	mounts, err := mount.NewRegistry(mount.Config{TTL: s.Mount.TTL, MaxMounts: s.Mount.Max})
	if err != nil {
		return fmt.Errorf("failed to initialize mount registry: %w", err)
	}
	defer mounts.Close()

	srv, err := server.New(mounts, server.Config{
		Address:         s.Server.Address,
		ReadTimeout:     s.Server.ReadTimeout,
		WriteTimeout:    s.Server.WriteTimeout,
		IdleTimeout:     s.Server.IdleTimeout,
		ShutdownTimeout: s.Server.ShutdownTimeout,
		Version:         revision,
		BaseURL:         baseURL,
		StatsInterval:   s.Mount.StatsInterval,
		BodySizeLimit:   s.Limits.BodySize,
		RequestsPerSec:  s.Limits.RequestsPerSec,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// validateBaseURL normalizes the base URL to "/path" form without a trailing slash.
func validateBaseURL(baseURL string) (string, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" || baseURL == "/" {
		return "", nil
	}
	if !strings.HasPrefix(baseURL, "/") {
		return "", fmt.Errorf("base URL must start with /: %q", baseURL)
	}
	if strings.ContainsAny(baseURL, "?#") || strings.Contains(baseURL, "//") {
		return "", errors.New("base URL must be a plain path")
	}
	return strings.TrimSuffix(baseURL, "/"), nil
}

// PreviewCmd implements the preview subcommand
type PreviewCmd struct {
	Debug bool `long:"dbg" env:"THEMESHELL_DEBUG" description:"debug mode, keeps logging on"`

	ctx context.Context
	in  io.Reader
	out io.Writer
}

// Execute runs the preview command
func (p *PreviewCmd) Execute(_ []string) error {
	if p.Debug {
		setupLogs(true)
	} else {
		// log lines would break the terminal rendering
		log.Setup(log.Out(io.Discard), log.Err(io.Discard))
	}

	ctx := p.ctx
	if ctx == nil {
		var cancel context.CancelFunc
		ctx, cancel = context.WithCancel(context.Background())
		defer cancel()
		signals(cancel)
	}
	in, out := p.in, p.out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}

	log.Printf("[DEBUG] starting preview")
	if err := preview.Run(ctx, shell.NewApp(), in, out); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	return nil
}
