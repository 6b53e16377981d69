package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"SnapSheet/pkg/config"
	"SnapSheet/pkg/logger"
	"SnapSheet/pkg/tui"
)

const version = "0.1.0"

func main() {
	// Flags
	configPath := flag.String("config", "", "Path to configuration file")
	showVersion := flag.Bool("version", false, "Show version")
	showHelp := flag.Bool("help", false, "Show help")
	flag.Parse()

	if *showHelp {
		printHelp()
		return
	}

	if *showVersion {
		fmt.Printf("SnapSheet v%s\n", version)
		return
	}

	// Load configuration
	cfg, cfgPath, err := config.Load(*configPath)
	if err != nil {
		if cfg == nil {
			log.Fatalf("❌ Failed to load config: %v", err)
		}
		// Defaults are usable even when they could not be written out.
		log.Printf("⚠️  %v", err)
	}

	appLog, err := logger.New(cfg.GetLogDir(), cfg.Log.Level)
	if err != nil {
		log.Fatalf("❌ Failed to open log: %v", err)
	}
	appLog.Info("SnapSheet v%s starting, config %s", version, cfgPath)

	// Context for graceful shutdown; cancelling it forces bubbletea to exit
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Signal handler: first SIGINT/SIGTERM cancels context, second force-exits
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
		select {
		case <-sigCh:
			os.Exit(1)
		case <-time.After(5 * time.Second):
			os.Exit(1)
		}
	}()

	if err := tui.Run(ctx, cfg, cfgPath, appLog); err != nil {
		// Ignore context-cancelled errors; that's just our shutdown path
		if ctx.Err() == nil {
			appLog.Error("tui: %v", err)
			_ = appLog.Sync()
			log.Fatalf("❌ TUI error: %v", err)
		}
	}

	// Reset terminal to sane state (in case bubbletea didn't restore properly)
	fmt.Print("\033[?1000l\033[?1002l\033[?1003l\033[?1006l") // disable mouse modes
	fmt.Print("\033[?25h")                                    // show cursor
	fmt.Print("\033[?1049l")                                  // exit alt screen

	appLog.Info("SnapSheet stopped")
	_ = appLog.Sync()
}

func printHelp() {
	fmt.Printf("SnapSheet v%s - A draggable bottom sheet for the terminal\n\n", version)
	fmt.Println("Usage: snapsheet [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -config string")
	fmt.Println("        Path to configuration file")
	fmt.Println("  -version")
	fmt.Println("        Show version")
	fmt.Println("  -help")
	fmt.Println("        Show this help")
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  SNAPSHEET_MIN_HEIGHT  Smallest sheet height in rows")
	fmt.Println("  SNAPSHEET_DETENTS     Comma separated snap points (rows, N%, medium, large)")
	fmt.Println("  SNAPSHEET_LOG_LEVEL   DEBUG, INFO, WARN or ERROR")
	fmt.Println("  SNAPSHEET_THEME       dark, light or auto")
	fmt.Println()
	fmt.Println("Controls:")
	fmt.Println("  Drag the grabber with the mouse, or press ] and [ to step between snap points.")
	fmt.Println("  Tab switches tabs, s opens settings, L shows the log, q quits.")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  snapsheet")
	fmt.Println("  snapsheet -config ~/.snapsheet/config.json")
}
