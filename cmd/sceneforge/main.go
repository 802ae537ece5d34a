// Package main is the entry point for the SceneForge editor console.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dshills/sceneforge/internal/config"
	"github.com/dshills/sceneforge/internal/editor"
	"github.com/dshills/sceneforge/internal/scene"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

type options struct {
	configPath string
	logLevel   string
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
		return 1
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}

	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	session, err := editor.NewSession(cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize session: %v\n", err)
		return 1
	}
	defer func() { _ = session.Close() }()

	return console(session)
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

// console runs a minimal line-oriented shell over the session. Each accepted
// command is one interaction step; the frame is committed after handling it.
func console(s *editor.Session) int {
	fmt.Println("sceneforge console. Type 'help' for commands.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "quit" || fields[0] == "exit" {
			break
		}
		execute(s, fields)
		s.EndFrame()
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func execute(s *editor.Session, fields []string) {
	switch fields[0] {
	case "help":
		printHelp()
	case "add":
		if len(fields) < 2 {
			fmt.Println("usage: add <name> [parent-id]")
			return
		}
		parent := s.Scene().Root()
		if len(fields) >= 3 {
			parent = nodeArg(s, fields[2])
			if parent == nil {
				return
			}
		}
		n := parent.CreateChild(fields[1])
		fmt.Printf("node %d created\n", n.ID())
	case "rm":
		if len(fields) < 2 {
			fmt.Println("usage: rm <id>")
			return
		}
		n := nodeArg(s, fields[1])
		if n == nil {
			return
		}
		if n.Parent() == nil {
			fmt.Println("cannot remove the root node")
			return
		}
		n.Parent().RemoveChild(n)
	case "set":
		if len(fields) < 4 {
			fmt.Println("usage: set <id> <attribute> <value>")
			return
		}
		n := nodeArg(s, fields[1])
		if n == nil {
			return
		}
		n.SetAttribute(fields[2], strings.Join(fields[3:], " "))
	case "undo":
		if err := s.Undo(); err != nil {
			fmt.Println(err)
		}
	case "redo":
		if err := s.Redo(); err != nil {
			fmt.Println(err)
		}
	case "tree":
		printTree(s.Scene().Root(), 0)
	case "history":
		fmt.Printf("%d batches, cursor at %d\n", s.History().Len(), s.History().Index())
	default:
		fmt.Printf("unknown command %q\n", fields[0])
	}
}

func nodeArg(s *editor.Session, arg string) *scene.Node {
	id, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		fmt.Printf("bad node id %q\n", arg)
		return nil
	}
	n := s.Scene().NodeByID(scene.ID(id))
	if n == nil {
		fmt.Printf("no node %d\n", id)
		return nil
	}
	return n
}

func printTree(n *scene.Node, depth int) {
	fmt.Printf("%s%d %s\n", strings.Repeat("  ", depth), n.ID(), n.Name())
	for _, child := range n.Children() {
		printTree(child, depth+1)
	}
}

func printHelp() {
	fmt.Println("commands:")
	fmt.Println("  add <name> [parent-id]       create a node")
	fmt.Println("  rm <id>                      delete a node")
	fmt.Println("  set <id> <attribute> <value> set a node attribute")
	fmt.Println("  undo / redo                  walk history")
	fmt.Println("  tree                         print the scene tree")
	fmt.Println("  history                      show history state")
	fmt.Println("  quit                         exit")
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.configPath, "config", "sceneforge.toml", "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", "sceneforge.toml", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "SceneForge - scene editing console\n\n")
		fmt.Fprintf(os.Stderr, "Usage: sceneforge [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("sceneforge %s (commit %s, built %s)\n", version, commit, date)
		os.Exit(0)
	}

	return opts
}
