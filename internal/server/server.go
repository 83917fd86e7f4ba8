package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ironsheep/avatar-tools-mcp/internal/avatar"
	"github.com/ironsheep/avatar-tools-mcp/internal/config"
	"github.com/ironsheep/avatar-tools-mcp/internal/imaging"
)

// serverName identifies this MCP server to clients.
const serverName = "avatar-tools-mcp"

// Version is reported to clients during initialization. main sets it from
// the build.
var Version = "dev"

// Server hosts the avatar tools over MCP.
type Server struct {
	cfg       config.Config
	defaults  avatar.Config
	logger    *slog.Logger
	cache     *imaging.RenderCache
	mcpServer *mcp.Server
}

// New creates a server with every tool registered.
func New(cfg config.Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		cfg:      cfg,
		defaults: cfg.AvatarDefaults(),
		logger:   logger,
		cache:    imaging.NewRenderCache(cfg.CacheEntries),
		mcpServer: mcp.NewServer(&mcp.Implementation{
			Name:    serverName,
			Version: Version,
		}, nil),
	}
	s.registerTools()
	return s
}

// Run serves MCP on stdin/stdout until the client disconnects or ctx ends.
func (s *Server) Run(ctx context.Context) error {
	return s.serveWithTransport(ctx, &mcp.StdioTransport{})
}

func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	s.logger.Info("serving MCP", "name", serverName, "version", Version)
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}
