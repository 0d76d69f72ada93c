package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-isatty"

	"github.com/smileynet/phonebook"
	"github.com/smileynet/phonebook/internal/config"
	"github.com/smileynet/phonebook/internal/contact"
	"github.com/smileynet/phonebook/internal/dashboard"
	"github.com/smileynet/phonebook/internal/directory"
	"github.com/smileynet/phonebook/internal/seed"
	"github.com/smileynet/phonebook/internal/tui"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// CLI is the top-level command structure for phonebook.
type CLI struct {
	Globals

	Version kong.VersionFlag `help:"Show version." short:"V"`
	Demo    DemoCmd          `cmd:"" default:"1" help:"Walk through adding, editing and deleting sample contacts."`
	List    ListCmd          `cmd:"" help:"Print every contact."`
	Show    ShowCmd          `cmd:"" help:"Print one contact, or one of its phone numbers."`
	Browse  BrowseCmd        `cmd:"" help:"Browse contacts interactively."`
}

// Globals are flags shared by every command.
type Globals struct {
	Samples string `help:"Sample contacts YAML file (default: embedded samples)." type:"path"`
	Color   string `help:"Color output: auto, always or never."`
	Verbose bool   `help:"Log debug diagnostics to stderr." short:"v"`
}

// app holds the wiring shared by commands.
type app struct {
	cfg     *config.Config
	log     *slog.Logger
	printer *tui.Printer
	dir     *directory.Directory
}

// loadConfig loads layered config from user and project paths with env overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadLayered(
		os.ExpandEnv("$HOME/.config/phonebook/config.yaml"),
		".phonebook/config.yaml",
	)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newApp applies flag overrides to cfg, validates it and loads the sample
// directory.
func newApp(g *Globals, cfg *config.Config, stdout, stderr io.Writer) (*app, error) {
	if g.Samples != "" {
		cfg.Samples.Path = g.Samples
	}
	if g.Color != "" {
		cfg.Display.Color = g.Color
	}
	if g.Verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level, err := cfg.Log.SlogLevel()
	if err != nil {
		return nil, err
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	dir, err := loadDirectory(cfg.Samples.Path)
	if err != nil {
		return nil, err
	}
	log.Debug("loaded sample contacts", "source", samplesSource(cfg.Samples.Path), "records", dir.Len())

	return &app{
		cfg:     cfg,
		log:     log,
		printer: tui.NewPrinter(tui.Options{Writer: stdout, Color: tui.ColorMode(cfg.Display.Color)}),
		dir:     dir,
	}, nil
}

// setup builds the app for a command writing to the process streams.
func setup(g *Globals) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return newApp(g, cfg, os.Stdout, os.Stderr)
}

// loadDirectory reads samples from path, or from the local samples/ directory
// overlaying the embedded defaults when path is empty.
func loadDirectory(path string) (*directory.Directory, error) {
	if path != "" {
		return seed.LoadFile(path)
	}
	return seed.LoadFS(phonebook.OverlayFS("samples", phonebook.Samples), phonebook.SamplesFile)
}

func samplesSource(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}

// DemoCmd replays the reference walkthrough over the sample contacts.
type DemoCmd struct{}

// Run executes the demo command.
func (c *DemoCmd) Run(g *Globals) error {
	a, err := setup(g)
	if err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	return runDemo(a)
}

// runDemo prints all records, edits John's first phone, looks one up,
// deletes Jane and prints the remaining records.
func runDemo(a *app) error {
	p := a.printer

	p.Heading("All records in the address book:")
	p.Records(a.dir.Records())

	if john, ok := a.dir.Find("John"); ok {
		p.Blank()
		p.Heading("Editing John's phone...")
		if err := john.EditPhone("1234567890", "1112223333"); err != nil {
			return fmt.Errorf("demo: %w", err)
		}
		a.log.Debug("edited phone", "contact", "John", "old", "1234567890", "new", "1112223333")
		p.Record(john)

		p.Blank()
		p.Heading("Searching for a specific phone in John's record:")
		if found, ok := john.FindPhone("5555555555"); ok {
			p.Phone(john.Name(), found)
		} else {
			p.Line(john.Name().String() + ": not found")
		}
	}

	p.Blank()
	p.Heading("Deleting Jane's record...")
	if err := a.dir.Delete("Jane"); err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	a.log.Debug("deleted contact", "contact", "Jane", "remaining", a.dir.Len())

	p.Blank()
	p.Heading("All records after deletion:")
	p.Records(a.dir.Records())
	return nil
}

// ListCmd prints every contact.
type ListCmd struct{}

// Run executes the list command.
func (c *ListCmd) Run(g *Globals) error {
	a, err := setup(g)
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}
	a.printer.Records(a.dir.Records())
	return nil
}

// ShowCmd prints one contact, or checks a single phone number on it.
type ShowCmd struct {
	Name  string `arg:"" help:"Contact name (exact match)."`
	Phone string `arg:"" optional:"" help:"Phone number to look up on the contact."`
}

// Run executes the show command.
func (c *ShowCmd) Run(g *Globals) error {
	a, err := setup(g)
	if err != nil {
		return fmt.Errorf("show: %w", err)
	}
	return c.run(a)
}

func (c *ShowCmd) run(a *app) error {
	rec, ok := a.dir.Find(c.Name)
	if !ok {
		return fmt.Errorf("show: contact %q: %w", c.Name, contact.ErrNotFound)
	}
	if c.Phone == "" {
		a.printer.Record(rec)
		return nil
	}
	phone, ok := rec.FindPhone(c.Phone)
	if !ok {
		return fmt.Errorf("show: phone %q of %s: %w", c.Phone, rec.Name(), contact.ErrNotFound)
	}
	a.printer.Phone(rec.Name(), phone)
	return nil
}

// BrowseCmd opens the interactive contact browser.
type BrowseCmd struct {
	NoTUI bool `help:"Print contacts as plain text even if stdin and stdout are a TTY." default:"false"`
}

// Run executes the browse command.
func (c *BrowseCmd) Run(g *Globals) error {
	a, err := setup(g)
	if err != nil {
		return fmt.Errorf("browse: %w", err)
	}

	if c.NoTUI || !isatty.IsTerminal(os.Stdin.Fd()) || !isatty.IsTerminal(os.Stdout.Fd()) {
		a.log.Debug("browse falling back to list output")
		a.printer.Records(a.dir.Records())
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return dashboard.Run(ctx, dashboard.Snapshot(a.dir), os.Stdin, os.Stdout)
}

// Exit codes.
const (
	exitSuccess  = 0
	exitNotFound = 1
	exitSetup    = 2
)

// exitCode maps an error to the appropriate exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	if errors.Is(err, contact.ErrNotFound) {
		return exitNotFound
	}
	return exitSetup
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Description("An in-memory contact directory."),
		kong.Vars{"version": version + " " + commit + " " + date},
		kong.Bind(&cli.Globals),
	)
	err := ctx.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(exitCode(err))
	}
}
