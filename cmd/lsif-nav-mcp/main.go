package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/DeusData/lsif-nav-mcp/internal/config"
	"github.com/DeusData/lsif-nav-mcp/internal/pipeline"
	"github.com/DeusData/lsif-nav-mcp/internal/tools"
)

var version = "dev"

func main() {
	indexPath := flag.String("index", "", "path to the LSIF dump to load (overrides .lsifnavrc)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("lsif-nav-mcp", version)
		os.Exit(0)
	}

	cfg := config.Load(".")
	setupLogging(cfg.EffectiveLogLevel())

	path := *indexPath
	if path == "" {
		path = cfg.Index.Path
	}
	if path == "" {
		log.Fatalf("no index path: pass -index or set index.path in .lsifnavrc")
	}

	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("open index err=%v", err)
	}
	st, loadErr := pipeline.Load(context.Background(), f)
	f.Close()
	if loadErr != nil {
		log.Fatalf("load index err=%v", loadErr)
	}

	srv := tools.NewServer(st, &tools.URIMapper{
		EditorPrefix: cfg.URIs.EditorPrefix,
		IndexPrefix:  cfg.URIs.IndexPrefix,
	})

	if err := srv.MCPServer().Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		log.Fatalf("server err=%v", err)
	}
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	// stdout carries the MCP transport; logs go to stderr.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}
