package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/tile-filter-mcp/internal/config"
	"github.com/ironsheep/tile-filter-mcp/internal/preset"
	"github.com/ironsheep/tile-filter-mcp/internal/server"
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
			fmt.Printf("tile-filter-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("tile-filter-mcp - MCP server for pixel color filters")
			fmt.Println()
			fmt.Println("Usage: tile-filter-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Printf("  %s=debug     Enable debug logging\n", config.EnvLogLevel)
			fmt.Printf("  %s=<path>       YAML file with custom presets and defaults\n", config.EnvConfigFile)
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	if cfg.Debug {
		log.Printf("Tile Filter MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		if cfg.Path != "" {
			log.Printf("config %s: %d custom presets, parallel=%t", cfg.Path, len(cfg.Presets), cfg.Parallel)
		}
	}

	presets, err := preset.Builtin().WithCustom(cfg.Presets)
	if err != nil {
		log.Fatalf("Preset error: %v", err)
	}

	srv := server.NewWithOptions(server.Options{
		Presets:  presets,
		Parallel: cfg.Parallel,
		Debug:    cfg.Debug,
	})
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
