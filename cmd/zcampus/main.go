package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	goversion "github.com/caarlos0/go-version"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zapp"
	"github.com/zarlcorp/zcampus/internal/cli"
	"github.com/zarlcorp/zcampus/internal/config"
	"github.com/zarlcorp/zcampus/internal/identity"
	"github.com/zarlcorp/zcampus/internal/random"
	"github.com/zarlcorp/zcampus/internal/tui"
	"golang.org/x/term"
)

// set at build time via ldflags.
var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	app := zapp.New(zapp.WithName("zcampus"))

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "zcampus: %v\n", err)
		_ = app.Close()
		os.Exit(1)
	}
	setupLogger(cfg)

	ctx, cancel := zapp.SignalContext(context.Background())
	defer cancel()

	gen := identity.New(identity.WithSource(newSource(cfg.Seed)))

	if err := run(ctx, cfg, gen, os.Args[1:]); err != nil {
		if errors.Is(err, cli.ErrUsage) {
			fmt.Fprintf(os.Stderr, "zcampus: %v\n", err)
		} else {
			slog.Error("run", "err", err)
		}
		_ = app.Close()
		os.Exit(1)
	}

	if err := app.Close(); err != nil {
		slog.Error("shutdown", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, gen *identity.Generator, args []string) error {
	if len(args) > 0 && args[0] == "version" {
		fmt.Println(buildVersion().String())
		return nil
	}

	r := &cli.Runner{
		Out:     os.Stdout,
		Gen:     gen,
		Catalog: cli.LoadCatalog(cfg.Catalog),
		Count:   cfg.Count,
	}

	if len(args) == 0 {
		if term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stdin.Fd())) {
			return runTUI(ctx, r)
		}
		return r.Sample(nil)
	}

	switch args[0] {
	case "sample":
		return r.Sample(args[1:])
	case "identity":
		return r.Identity(args[1:])
	case "email":
		return r.Email(args[1:])
	case "domain":
		return r.Domain(args[1:])
	}

	return fmt.Errorf("%w: unknown command %q", cli.ErrUsage, args[0])
}

func runTUI(ctx context.Context, r *cli.Runner) error {
	m := tui.New(version, r.Gen, r.Catalog, r.Count)
	p := tea.NewProgram(m, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

// newSource returns a seeded source, or a crypto-seeded one for seed 0.
func newSource(seed uint64) random.Source {
	if seed == 0 {
		return random.NewCrypto()
	}
	return random.New(seed)
}

func setupLogger(cfg config.Config) {
	lvl, err := cfg.Level()
	if err != nil {
		lvl = slog.LevelWarn
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: lvl,
	})))
}

func buildVersion() goversion.Info {
	return goversion.GetVersionInfo(
		goversion.WithAppDetails("zcampus", "fake student identities for test data", "https://github.com/zarlcorp/zcampus"),
		func(i *goversion.Info) {
			if version != "" {
				i.GitVersion = version
			}
			if commit != "" {
				i.GitCommit = commit
			}
			if date != "" {
				i.BuildDate = date
			}
		},
	)
}
