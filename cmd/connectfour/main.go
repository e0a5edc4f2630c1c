package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/iamasit07/connect-four/internal/config"
	"github.com/iamasit07/connect-four/internal/service/game"
)

var (
	showEnv = flag.Bool("env", false, "print the environment variables that configure the game and exit")
	version = "dev" // set via ldflags during build
)

func main() {
	flag.Parse()

	if *showEnv {
		fmt.Println(config.Usage())
		return
	}

	envLoaded := config.LoadEnvFile()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := initLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Debug("starting connect four",
		zap.String("version", version),
		zap.Bool("env_file", envLoaded),
	)
	for _, w := range cfg.Warnings {
		logger.Warn(w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc := game.NewService(cfg.EmptyGlyph, logger)
	outcome, err := svc.Play(ctx, os.Stdin, os.Stdout)
	if err != nil {
		logger.Error("game stopped", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	logger.Debug("exiting", zap.String("outcome", string(outcome)))
}

// initLogger writes to stderr so logs stay out of the board on stdout
func initLogger(level, format string) (*zap.Logger, error) {
	var lvl zapcore.Level
	switch level {
	case "debug":
		lvl = zapcore.DebugLevel
	case "info":
		lvl = zapcore.InfoLevel
	case "warn":
		lvl = zapcore.WarnLevel
	case "error":
		lvl = zapcore.ErrorLevel
	default:
		lvl = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	zapCfg.Level = zap.NewAtomicLevelAt(lvl)
	zapCfg.OutputPaths = []string{"stderr"}
	zapCfg.ErrorOutputPaths = []string{"stderr"}

	return zapCfg.Build()
}
