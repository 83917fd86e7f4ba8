package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ironsheep/avatar-tools-mcp/internal/config"
	"github.com/ironsheep/avatar-tools-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("avatar-tools-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("avatar-tools-mcp - MCP server for identity avatars")
			fmt.Println()
			fmt.Println("Usage: avatar-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  AVATAR_MCP_LOG_LEVEL=info              debug, info, warn or error")
			fmt.Println("  AVATAR_MCP_DEFAULT_SIZE=100            Default avatar size in pixels")
			fmt.Println("  AVATAR_MCP_BACKGROUND_LIGHTNESS=0.8    Default outline lightness")
			fmt.Println("  AVATAR_MCP_FOREGROUND_LIGHTNESS=0.35   Default text lightness")
			fmt.Println("  AVATAR_MCP_FONT_FAMILY=                Default font family")
			fmt.Println("  AVATAR_MCP_FONT_PATH=                  Default font file")
			fmt.Println("  AVATAR_MCP_FONT_WEIGHT=normal          Default font weight")
			fmt.Println("  AVATAR_MCP_GRAVATAR_TYPE=mp            Default Gravatar image")
			fmt.Println("  AVATAR_MCP_MAX_RASTER_SIZE=1024        Largest PNG/JPEG export")
			fmt.Println("  AVATAR_MCP_CACHE_ENTRIES=256           Raster cache size (0 disables)")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	cfg, err := config.ParseEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}
	level, err := cfg.Level()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	// Log to stderr (stdout is for MCP protocol)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	logger.Debug("starting", "version", Version, "build_time", BuildTime, "commit", GitCommit)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server.Version = Version
	srv := server.New(cfg, logger)
	if err := srv.Run(ctx); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
