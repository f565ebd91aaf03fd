package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/ironsheep/color-harmony-mcp/internal/config"
	"github.com/ironsheep/color-harmony-mcp/internal/httpapi"
	"github.com/ironsheep/color-harmony-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func usage() {
	fmt.Println("harmony-mcp - MCP server for color conversions and harmonies")
	fmt.Println()
	fmt.Println("Usage: harmony-mcp [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println("  --config PATH    Load settings from a TOML file (reloaded on change)")
	fmt.Println("  --http           Serve the tools over HTTP instead of stdio")
	fmt.Println("  --addr ADDR      HTTP listen address (default from config, :8080)")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Printf("  %s=debug    Enable debug logging\n", config.EnvLogLevel)
	fmt.Println()
	fmt.Println("Without --http this server communicates via MCP protocol over stdin/stdout.")
	fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
}

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("harmony-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			usage()
			return
		}
	}

	var (
		configPath string
		serveHTTP  bool
		httpAddr   string
	)
	flag.StringVar(&configPath, "config", "", "path to TOML config file")
	flag.BoolVar(&serveHTTP, "http", false, "serve over HTTP instead of stdio")
	flag.StringVar(&httpAddr, "addr", "", "HTTP listen address")
	flag.Usage = usage
	flag.Parse()

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}
	if cfg.Debug() {
		log.Printf("Color Harmony MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	server.Version = Version
	srv := server.New(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if configPath != "" {
		w, err := config.NewWatcher(configPath)
		if err != nil {
			log.Printf("Config watching disabled: %v", err)
		} else {
			go w.Run(ctx, srv.SetConfig)
		}
	}

	if serveHTTP {
		if httpAddr == "" {
			httpAddr = cfg.HTTP.Addr
		}
		if !cfg.Debug() {
			gin.SetMode(gin.ReleaseMode)
		}
		log.Printf("Serving HTTP on %s", httpAddr)
		if err := httpapi.New(srv).Run(httpAddr); err != nil {
			log.Fatalf("Server error: %v", err)
		}
		return
	}

	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
