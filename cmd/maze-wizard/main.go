package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/maze-wizard/internal/cli"
	"github.com/ironsheep/maze-wizard/internal/maze"
	"github.com/ironsheep/maze-wizard/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("maze-wizard %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			cli.Usage(os.Stdout)
			fmt.Println()
			fmt.Println("Other commands:")
			fmt.Println("  serve            Run as an MCP server over stdin/stdout")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  MAZE_WIZARD_LOG_LEVEL=debug    Enable debug logging")
			return
		}
	}

	// Logs go to stderr; stdout carries the MCP protocol in serve mode.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	debug := os.Getenv("MAZE_WIZARD_LOG_LEVEL") == "debug"

	if len(os.Args) > 1 && os.Args[1] == "serve" {
		server.Version = Version
		if debug {
			log.Printf("Maze Wizard MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		}

		srv := server.New(maze.DefaultPalette())
		if err := srv.Run(); err != nil {
			log.Fatalf("Server error: %v", err)
		}
		return
	}

	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr, debug))
}
