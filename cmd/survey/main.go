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

	"DesiresAfterDuties/pkg/animation"
	"DesiresAfterDuties/pkg/config"
	"DesiresAfterDuties/pkg/logger"
	"DesiresAfterDuties/pkg/questionnaire"
	"DesiresAfterDuties/pkg/survey"
	"DesiresAfterDuties/pkg/tui"
	"DesiresAfterDuties/pkg/utils"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

const version = "0.1.0"

var (
	successStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#10B981")).
		Bold(true)
)

func main() {
	configPath := flag.String("config", "", "Path to configuration file")
	initConfig := flag.String("init-config", "", "Write the default configuration to this path and exit")
	showVersion := flag.Bool("version", false, "Show version")
	showHelp := flag.Bool("help", false, "Show help")
	flag.Parse()

	if *showHelp {
		printHelp()
		return
	}

	if *showVersion {
		fmt.Printf("Desires After Duties survey v%s\n", version)
		return
	}

	if *initConfig != "" {
		if err := config.DefaultConfig().Save(*initConfig); err != nil {
			log.Fatalf("❌ Failed to write config: %v", err)
		}
		fmt.Println(successStyle.Render("✅ Wrote " + *initConfig))
		return
	}

	cfg, usedPath, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	// The TUI owns the terminal, so logs go to a file only.
	fileLog, err := logger.New(cfg.Log.Dir, cfg.Log.Level)
	if err != nil {
		log.Fatalf("❌ Failed to create logger: %v", err)
	}
	logger.SetLogger(fileLog.Zap())
	defer func() { _ = logger.Sync() }()

	logger.Info("starting survey",
		zap.String("version", version),
		zap.String("config", usedPath),
		zap.String("language", cfg.Language),
	)
	if usedPath == "" {
		logger.Warn("no config file found, running on defaults", zap.Strings("searched", config.GetConfigPaths(*configPath)))
	}
	logger.Debug("ui settings",
		zap.Duration("animation_interval", cfg.AnimationInterval()),
		zap.Int("cell_width", cfg.UI.CellWidth),
		zap.Bool("alt_screen", cfg.UI.AltScreen),
		zap.String("questions_file", cfg.QuestionsFile),
	)

	gradient, err := animation.NewGradient(cfg.UI.Palette...)
	if err != nil {
		log.Fatalf("❌ Invalid palette: %v", err)
	}

	controller := survey.New(
		survey.WithLanguage(cfg.StartLanguage()),
		survey.WithFactory(questionnaire.NewFactory(cfg.QuestionsFile, utils.DefaultRetryConfig())),
		survey.WithTitle(gradient),
		survey.WithLogger(logger.Named("survey")),
	)

	// Cancelling ctx makes bubbletea exit and stops the title animation.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// First SIGINT/SIGTERM cancels the context, a second one force-exits
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("signal received, shutting down")
		cancel()
		select {
		case <-sigCh:
			os.Exit(1)
		case <-time.After(5 * time.Second):
			os.Exit(1)
		}
	}()

	err = tui.Run(ctx, controller, gradient, tui.RunOptions{
		Options: tui.Options{
			CellWidth: cfg.UI.CellWidth,
			LogTail:   fileLog.GetLastLines,
		},
		AnimationInterval: cfg.AnimationInterval(),
		AltScreen:         cfg.UI.AltScreen,
	})

	// Reset terminal to sane state in case bubbletea didn't restore it
	fmt.Print("\033[?25h")
	if cfg.UI.AltScreen {
		fmt.Print("\033[?1049l")
	}

	if err != nil && ctx.Err() == nil {
		logger.Error("tui exited", zap.Error(err))
		_ = logger.Sync()
		log.Fatalf("❌ TUI error: %v", err)
	}

	logger.Info("survey closed", zap.Bool("completed", controller.Completed()))
	if controller.Completed() {
		fmt.Println(successStyle.Render("✅ Thank you for taking the survey!"))
	}
}

func printHelp() {
	fmt.Printf("Desires After Duties survey v%s\n\n", version)
	fmt.Println("Usage: survey [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -config string")
	fmt.Println("        Path to configuration file")
	fmt.Println("  -init-config string")
	fmt.Println("        Write the default configuration to this path and exit")
	fmt.Println("  -version")
	fmt.Println("        Show version")
	fmt.Println("  -help")
	fmt.Println("        Show this help")
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  SURVEY_LANGUAGE               Starting language: en or bn (default: bn)")
	fmt.Println("  SURVEY_QUESTIONS_FILE         YAML question bank replacing the built-in one")
	fmt.Println("  SURVEY_ANIMATION_INTERVAL_MS  Title animation frame period (default: 100)")
	fmt.Println("  SURVEY_PALETTE                Comma-separated hex colours for the title")
	fmt.Println("  SURVEY_CELL_WIDTH             Pixels per terminal column (default: 10)")
	fmt.Println("  SURVEY_ALT_SCREEN             Use the alternate screen (default: true)")
	fmt.Println("  SURVEY_LOG_LEVEL              DEBUG, INFO, WARN or ERROR (default: INFO)")
	fmt.Println("  SURVEY_LOG_DIR                Directory for survey.log (default: .survey)")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  survey")
	fmt.Println("  SURVEY_LANGUAGE=en survey")
	fmt.Println("  survey -config ~/.survey/config.json")
}
