// Command netresearcher answers questions about OVN/OVS networks using tools
// discovered from MCP servers, either interactively or as an A2A agent.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/effective-security/netresearcher/assistants"
	"github.com/effective-security/netresearcher/callbacks"
	"github.com/effective-security/netresearcher/internal/a2a"
	"github.com/effective-security/netresearcher/internal/cli"
	"github.com/effective-security/netresearcher/internal/health"
	"github.com/effective-security/netresearcher/internal/mcptools"
	"github.com/effective-security/netresearcher/internal/registry"
	"github.com/effective-security/netresearcher/internal/researcher"
	"github.com/effective-security/x/values"
	"github.com/effective-security/xlog"
)

var logger = xlog.NewPackageLogger("github.com/effective-security/netresearcher", "main")

type flags struct {
	interactive bool
	ic          bool
	verbose     bool
	host        string
	port        int
	llmConfig   string
}

func main() {
	var f flags
	flag.BoolVar(&f.interactive, "i", false, "run the interactive research loop (shorthand)")
	flag.BoolVar(&f.interactive, "interactive", false, "run the interactive research loop")
	flag.BoolVar(&f.ic, "ic", false, "include the OVN interconnect databases")
	flag.BoolVar(&f.verbose, "verbose", false, "enable verbose logging")
	flag.StringVar(&f.host, "host", values.StringsCoalesce(os.Getenv("A2A_HOST"), "0.0.0.0"), "A2A server host")
	flag.IntVar(&f.port, "port", envInt("A2A_PORT", 8085), "A2A server port")
	flag.StringVar(&f.llmConfig, "llm-config", "", "LLM provider configuration file")
	flag.Parse()

	xlog.SetFormatter(xlog.NewStringFormatter(os.Stderr))
	if f.verbose {
		xlog.SetGlobalLogLevel(xlog.DEBUG)
	} else {
		xlog.SetGlobalLogLevel(xlog.INFO)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, &f); err != nil {
		logger.KV(xlog.ERROR, "err", err.Error())
		os.Exit(1)
	}
}

func run(ctx context.Context, f *flags) error {
	fmt.Println("Network Researcher")
	fmt.Println(strings.Repeat("=", 60))

	servers := registry.Default()
	if f.ic {
		servers = append(servers, registry.Interconnect()...)
	}

	loader, err := mcptools.Load(ctx, servers)
	if err != nil {
		return err
	}
	defer func() {
		_ = loader.Close()
	}()

	cfg := researcher.ConfigFromEnv()
	cfg.LLMConfigFile = f.llmConfig

	model, err := researcher.NewModel(cfg)
	if err != nil {
		return err
	}

	pad := callbacks.NewScratchpad(callbacks.ModeDefault)
	printMode := callbacks.ModeDefault
	if f.verbose {
		printMode = callbacks.ModeVerbose
	}
	fan := callbacks.NewFanout(pad)
	if f.interactive {
		fan.Add(callbacks.NewPrinter(os.Stdout, printMode))
	}

	res := researcher.New(model, researcher.NewStore(cfg), loader.Tools(), assistants.WithCallback(fan))

	fmt.Println("Researcher initialized successfully!")
	fmt.Println("I can gather information about Open Virtual Networking and Open vSwitch.")
	fmt.Println("I can help you with:")
	fmt.Println("- Network configuration data")
	fmt.Println("- OVS/OVN database queries")
	fmt.Println("- Network topology information")
	fmt.Println("- Current network state")
	fmt.Printf("\nConnected to %d MCP servers with %d tools\n", len(servers), len(loader.Tools()))

	if f.interactive {
		return cli.New(res, pad, os.Stdin, os.Stdout).Run(ctx)
	}

	// liveness endpoint runs only alongside the A2A server
	health.New(envInt("HEALTH_PORT", 8086)).Start(ctx)

	srv, err := a2a.NewServer(&a2a.Config{Host: f.host, Port: f.port}, res)
	if err != nil {
		return err
	}

	fmt.Printf("Using OpenAI-compatible model at: %s\n", cfg.EndpointURL)
	fmt.Printf("A2A server listening on %s:%d\n", f.host, f.port)
	fmt.Println("\nReady to accept A2A connections!")
	fmt.Println(strings.Repeat("-", 50))
	return srv.Run(ctx)
}

func envInt(name string, def int) int {
	if v := os.Getenv(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		logger.KV(xlog.WARNING, "reason", "invalid_env", "name", name, "value", v)
	}
	return def
}
