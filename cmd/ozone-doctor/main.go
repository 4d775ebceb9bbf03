// Package main provides the Ozone environment check. It loads the
// configuration, starts a real browser session, and drives a tiny chain
// against a built-in page, so a broken install fails here instead of in
// the middle of a user flow.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	"github.com/karel66/Ozone/pkg/config"
	"github.com/karel66/Ozone/pkg/driver/playwright"
	"github.com/karel66/Ozone/pkg/flow"
	"github.com/karel66/Ozone/pkg/logging"
	"github.com/karel66/Ozone/pkg/session"
	"github.com/karel66/Ozone/pkg/web"
)

const (
	version = "0.1.0" // Version of the Ozone toolkit

	// doctorDocument is the page the probe chain runs against. Served as
	// a data: URL so the check needs no network access.
	doctorDocument = `<!DOCTYPE html>
<html>
<head><title>Ozone doctor</title></head>
<body><h1>It works</h1></body>
</html>`
)

// Config holds the command line configuration
type Config struct {
	ConfigPath  string
	Browser     string
	Headed      bool
	ShowVersion bool
}

func main() {
	cli := parseFlags()

	if cli.ShowVersion {
		fmt.Printf("ozone-doctor v%s\n", version)
		return
	}

	// Create context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\n\nShutting down gracefully...")
		cancel()
	}()

	if runErr := run(ctx, cli); runErr != nil {
		cancel()
		log.Fatalf("Doctor failed: %v", runErr)
	}
}

// parseFlags parses command line flags
func parseFlags() *Config {
	cli := &Config{}

	flag.StringVar(&cli.ConfigPath, "config", "", "Path to ozone.yaml (missing file uses defaults)")
	flag.StringVar(&cli.Browser, "browser", "", "Browser engine override: chromium, firefox, or webkit")
	flag.BoolVar(&cli.Headed, "headed", false, "Run the check with a visible browser window")
	flag.BoolVar(&cli.ShowVersion, "version", false, "Show version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "ozone-doctor - Ozone environment check\n\n")
		fmt.Fprintf(os.Stderr, "Usage: ozone-doctor [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  ozone-doctor                              # Check with defaults\n")
		fmt.Fprintf(os.Stderr, "  ozone-doctor -config ozone.yaml\n")
		fmt.Fprintf(os.Stderr, "  ozone-doctor -browser firefox -headed\n")
	}

	flag.Parse()
	return cli
}

// run performs the environment check end to end.
func run(ctx context.Context, cli *Config) error {
	cfg, err := config.Load(cli.ConfigPath)
	if err != nil {
		return err
	}
	if cli.Browser != "" {
		cfg.Browser = cli.Browser
	}
	if cli.Headed {
		cfg.Headless = false
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	if cfg.LogDir != "" {
		logging.SetDirectory(cfg.LogDir)
	}
	logger, err := logging.NewLogger("doctor")
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Close()

	console := logging.NewConsoleTrace(nil)
	trace := logging.Tee(console, logger.Trace())

	fmt.Printf("Checking %s (headless=%v)...\n", cfg.Browser, cfg.Headless)
	logger.Infof("doctor starting: browser=%s headless=%v", cfg.Browser, cfg.Headless)

	if err := playwright.Install(); err != nil {
		return fmt.Errorf("playwright install failed: %w", err)
	}

	drv, err := playwright.New()
	if err != nil {
		return fmt.Errorf("playwright start failed: %w", err)
	}

	manager := session.NewManager(drv)
	defer func() {
		if shutdownErr := manager.Shutdown(); shutdownErr != nil {
			logger.Errorf("shutdown: %v", shutdownErr)
		}
	}()

	sess, err := manager.StartSession(ctx, "doctor", session.Options{
		Kind:           cfg.Kind(),
		Headless:       cfg.Headless,
		Timeout:        cfg.FindTimeout.Duration(),
		ViewportWidth:  cfg.Viewport.Width,
		ViewportHeight: cfg.Viewport.Height,
		Trace:          trace,
	})
	if err != nil {
		return err
	}

	policy, err := web.NewURLPolicy(cfg.AllowURLs, cfg.DenyURLs)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	steps := web.New(web.Options{
		FindTimeout:   cfg.FindTimeout.Duration(),
		ExistsTimeout: cfg.ExistsTimeout.Duration(),
		Policy:        policy,
	})

	probeURL := "data:text/html," + url.PathEscape(doctorDocument)
	chain := flow.NewChain(
		steps.Goto(probeURL),
		steps.Find("h1"),
		steps.StoreText("heading"),
		steps.AssertTitleContains("Ozone"),
	)

	result := chain.Run(ctx, sess.Context())
	if failure := result.Failure(); failure != nil {
		console.Summary("doctor: environment check failed")
		logger.Errorf("doctor failed: %v", failure)
		return failure
	}

	heading, _ := result.Items().Lookup("heading")
	console.Summary(fmt.Sprintf("doctor: %s ready (probe heading %q)", cfg.Browser, heading))
	logger.Infof("doctor passed: browser=%s heading=%q", cfg.Browser, heading)
	fmt.Printf("Run log: %s\n", logger.LogPath())
	return nil
}
