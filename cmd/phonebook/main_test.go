package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"

	"github.com/smileynet/phonebook/internal/config"
	"github.com/smileynet/phonebook/internal/contact"
	"github.com/smileynet/phonebook/internal/seed"
)

// errExitCalled is a sentinel used to catch kong's os.Exit calls in tests.
var errExitCalled = errors.New("exit called")

// newTestApp builds an app over the embedded samples with plain output.
func newTestApp(t *testing.T, g Globals) (*app, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	if g.Color == "" {
		g.Color = config.ColorNever
	}
	cfg := config.DefaultConfig()
	var stdout, stderr bytes.Buffer
	a, err := newApp(&g, &cfg, &stdout, &stderr)
	if err != nil {
		t.Fatalf("newApp() error = %v", err)
	}
	return a, &stdout, &stderr
}

func writeSamples(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "contacts.yaml")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestCLI_Parse(t *testing.T) {
	t.Run("version flag prints version commit and date", func(t *testing.T) {
		// Given: a CLI parser with version, commit, and date fields
		var cli CLI
		var buf bytes.Buffer
		k, err := kong.New(&cli,
			kong.Vars{"version": "v1.0.0 abc1234 2026-01-01T00:00:00Z"},
			kong.Writers(&buf, &buf),
			kong.Exit(func(int) { panic(errExitCalled) }),
		)
		if err != nil {
			t.Fatal(err)
		}

		// When: --version flag is passed
		defer func() {
			r := recover()
			if r == nil {
				t.Fatal("expected panic from --version flag")
			}
			err, ok := r.(error)
			if !ok || !errors.Is(err, errExitCalled) {
				panic(r)
			}

			// Then: version, commit, and date are all present in output
			for _, want := range []string{"v1.0.0", "abc1234", "2026-01-01T00:00:00Z"} {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("version output = %q, want to contain %q", buf.String(), want)
				}
			}
		}()

		k.Parse([]string{"--version"}) //nolint:errcheck // --version triggers panic via Exit hook
	})

	t.Run("no args selects demo", func(t *testing.T) {
		var cli CLI
		k, err := kong.New(&cli, kong.Vars{"version": "test"})
		if err != nil {
			t.Fatal(err)
		}

		ctx, err := k.Parse([]string{})
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		if ctx.Command() != "demo" {
			t.Errorf("command = %q, want %q", ctx.Command(), "demo")
		}
	})

	t.Run("show takes name and optional phone", func(t *testing.T) {
		var cli CLI
		k, err := kong.New(&cli, kong.Vars{"version": "test"})
		if err != nil {
			t.Fatal(err)
		}

		if _, err := k.Parse([]string{"--color", "never", "show", "John", "5555555555"}); err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		if cli.Show.Name != "John" || cli.Show.Phone != "5555555555" {
			t.Errorf("show args = %+v", cli.Show)
		}
		if cli.Color != "never" {
			t.Errorf("color = %q, want never", cli.Color)
		}
	})

	t.Run("show requires a name", func(t *testing.T) {
		var cli CLI
		k, err := kong.New(&cli, kong.Vars{"version": "test"})
		if err != nil {
			t.Fatal(err)
		}
		if _, err := k.Parse([]string{"show"}); err == nil {
			t.Fatal("expected error when show has no name")
		}
	})
}

func TestRunDemo_Output(t *testing.T) {
	// Given: the embedded sample contacts
	a, stdout, _ := newTestApp(t, Globals{})

	// When: the demo runs
	if err := runDemo(a); err != nil {
		t.Fatalf("runDemo() error = %v", err)
	}

	// Then: the walkthrough prints each step
	want := strings.Join([]string{
		"All records in the address book:",
		"Contact name: John, phones: 1234567890; 5555555555",
		"Contact name: Jane, phones: 9876543210",
		"",
		"Editing John's phone...",
		"Contact name: John, phones: 1112223333; 5555555555",
		"",
		"Searching for a specific phone in John's record:",
		"John: 5555555555",
		"",
		"Deleting Jane's record...",
		"",
		"All records after deletion:",
		"Contact name: John, phones: 1112223333; 5555555555",
		"",
	}, "\n")
	if stdout.String() != want {
		t.Errorf("demo output =\n%s\nwant\n%s", stdout.String(), want)
	}
	if _, ok := a.dir.Find("Jane"); ok {
		t.Error("Jane should be deleted after demo")
	}
}

func TestRunDemo_MissingJane(t *testing.T) {
	// Given: samples without Jane
	path := writeSamples(t, "contacts:\n  - name: John\n    phones: [\"1234567890\"]\n")
	a, _, _ := newTestApp(t, Globals{Samples: path})

	// When: the demo runs
	err := runDemo(a)

	// Then: the delete step reports not found
	if !errors.Is(err, contact.ErrNotFound) {
		t.Fatalf("runDemo() error = %v, want ErrNotFound", err)
	}
	if exitCode(err) != exitNotFound {
		t.Errorf("exitCode = %d, want %d", exitCode(err), exitNotFound)
	}
}

func TestNewApp_VerboseLogsToStderr(t *testing.T) {
	_, _, stderr := newTestApp(t, Globals{Verbose: true})

	if !strings.Contains(stderr.String(), "loaded sample contacts") {
		t.Errorf("stderr = %q, want debug log line", stderr.String())
	}
	if !strings.Contains(stderr.String(), "source=embedded") {
		t.Errorf("stderr = %q, want source=embedded", stderr.String())
	}
}

func TestNewApp_QuietByDefault(t *testing.T) {
	_, _, stderr := newTestApp(t, Globals{})
	if stderr.Len() != 0 {
		t.Errorf("stderr = %q, want empty at default level", stderr.String())
	}
}

func TestNewApp_Errors(t *testing.T) {
	tests := []struct {
		name string
		g    Globals
		want error
	}{
		{name: "bad color", g: Globals{Color: "rainbow"}},
		{name: "missing samples", g: Globals{Samples: filepath.Join(t.TempDir(), "nope.yaml")}},
		{
			name: "invalid phone in samples",
			g:    Globals{Samples: writeSamples(t, "contacts:\n  - name: X\n    phones: [\"12\"]\n")},
			want: contact.ErrInvalidFormat,
		},
		{
			name: "nameless contact",
			g:    Globals{Samples: writeSamples(t, "contacts:\n  - phones: []\n")},
			want: seed.ErrInvalidSeed,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			var out bytes.Buffer
			_, err := newApp(&tt.g, &cfg, &out, &out)
			if err == nil {
				t.Fatal("newApp() should fail")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
			if exitCode(err) != exitSetup {
				t.Errorf("exitCode = %d, want %d", exitCode(err), exitSetup)
			}
		})
	}
}

func TestShowCmd(t *testing.T) {
	tests := []struct {
		name    string
		cmd     ShowCmd
		want    string
		wantErr error
	}{
		{
			name: "record",
			cmd:  ShowCmd{Name: "John"},
			want: "Contact name: John, phones: 1234567890; 5555555555\n",
		},
		{
			name: "phone",
			cmd:  ShowCmd{Name: "Jane", Phone: "9876543210"},
			want: "Jane: 9876543210\n",
		},
		{
			name:    "unknown contact",
			cmd:     ShowCmd{Name: "Bob"},
			wantErr: contact.ErrNotFound,
		},
		{
			name:    "unknown phone",
			cmd:     ShowCmd{Name: "John", Phone: "0000000000"},
			wantErr: contact.ErrNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, stdout, _ := newTestApp(t, Globals{})

			err := tt.cmd.run(a)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("run() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("run() error = %v", err)
			}
			if stdout.String() != tt.want {
				t.Errorf("output = %q, want %q", stdout.String(), tt.want)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, exitSuccess},
		{fmt.Errorf("show: %w", contact.ErrNotFound), exitNotFound},
		{errors.New("config: bad"), exitSetup},
		{contact.ErrInvalidFormat, exitSetup},
	}
	for _, tt := range tests {
		if got := exitCode(tt.err); got != tt.want {
			t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
