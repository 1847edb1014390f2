// ClipChef — capture recipes from links, plan the week, cook step by step.
//
// Usage:
//
//	clipchef [-verbose] [-quiet] [-data DIR]
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"clipchef/internal/app"
	"clipchef/internal/collection"
	"clipchef/internal/cooking"
	"clipchef/internal/domain"
	"clipchef/internal/extract"
	"clipchef/internal/logger"
	"clipchef/internal/persist"
	"clipchef/internal/planner"
	"clipchef/internal/ui"
)

func main() {
	_ = godotenv.Load()

	verbose := flag.Bool("verbose", false, "enable verbose/debug logging")
	quiet := flag.Bool("quiet", false, "disable all logging")
	logFile := flag.String("log-file", ".clipchef/clipchef.log", "file to write logs to (use \"stderr\" to log to console)")
	dataDir := flag.String("data", ".clipchef", "directory for the recipe database")
	memOnly := flag.Bool("mem", false, "keep everything in memory, nothing written to disk")
	stubExtract := flag.Bool("stub-extract", false, "use the offline extractor even if API keys are set")
	flag.Parse()

	logLevel := logger.LevelNormal
	if *verbose {
		logLevel = logger.LevelVerbose
	}
	if *quiet {
		logLevel = logger.LevelOff
	}

	// Direct logs to a file by default so the TUI stays clean.
	var logOut io.Writer = os.Stderr
	if *logFile != "" && *logFile != "stderr" {
		dir := filepath.Dir(*logFile)
		if dir != "" && dir != "." {
			os.MkdirAll(dir, 0o755)
		}
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", *logFile, err)
		} else {
			logOut = f
			defer f.Close()
		}
	}

	// Third-party libs that use Go's default log package go to the
	// same output so they don't scribble over the TUI.
	stdlog.SetOutput(logOut)
	stdlog.SetFlags(stdlog.Ltime)

	log := logger.New(logLevel, logOut)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Wire persistence. SQLite by default; -mem for a throwaway run.
	var store domain.Persistence
	if *memOnly {
		store = persist.NewMemory(log)
	} else {
		dbPath := filepath.Join(*dataDir, "clipchef.db")
		s, err := persist.OpenSQLite(dbPath, log)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not open %s: %v (running in memory)\n", dbPath, err)
			store = persist.NewMemory(log)
		} else {
			defer s.Close()
			store = s
		}
	}

	recipes, err := collection.Open(ctx, store, log)
	if err != nil {
		// A corrupt snapshot still yields a usable empty store.
		log.Error("recipe snapshot: %v", err)
		fmt.Fprintln(os.Stderr, "warning: saved recipes could not be read, starting fresh")
	}
	plans, err := planner.Open(ctx, store, log)
	if err != nil {
		log.Error("planner snapshot: %v", err)
		fmt.Fprintln(os.Stderr, "warning: saved meal plan could not be read, starting fresh")
	}

	// Wire the extractor. Real API client when credentials are
	// present, otherwise the deterministic offline stub.
	var extractor domain.Extractor
	endpoint := os.Getenv(extract.EnvEndpoint)
	apiKey := os.Getenv(extract.EnvKey)
	if endpoint != "" && apiKey != "" && !*stubExtract {
		extractor = extract.NewClient(endpoint, apiKey, log)
		log.Info("extraction API enabled")
	} else {
		extractor = extract.Stub{}
		if !*stubExtract {
			log.Info("extraction API disabled: set %s and %s env vars to enable", extract.EnvEndpoint, extract.EnvKey)
		}
	}

	sessions := cooking.NewRegistry(log)

	a := app.New(extractor, recipes, plans, sessions, log)

	tui := ui.New(a, log)

	// Timer alerts surface in the TUI status line.
	timers := cooking.NewSupervisor(tui, log)
	a.AttachTimers(timers)
	timers.Start(ctx)
	defer timers.Stop()

	if err := tui.Run(); err != nil {
		log.Error("ui: %v", err)
	}
	cancel()
}
