package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"

	"repertorio/internal/shared"
	tu "repertorio/internal/testing"
)

const sampleReport = `REGISTRY REPORT
Generated 2024-01-15

1  T-000123    My Song Title    Active    2020
2  12345  Jane Doe  J. Roe    CA  50
3  67890  John Roe    ACME  E  50

Page 1 of 1
`

func testRunner(t *testing.T) (*Runner, *bytes.Buffer) {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := shared.RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	output := &bytes.Buffer{}
	runner := NewRunner(RunnerOpts{
		Config: shared.DefaultConfig(),
		Output: output,
		DB:     db,
	})

	return runner, output
}

func runApp(t *testing.T, r *Runner, args ...string) error {
	t.Helper()
	app := &cli.Command{
		Name:     "repertorio",
		Commands: r.register(),
	}
	return app.Run(context.Background(), append([]string{"repertorio"}, args...))
}

func writeSampleReport(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "report.txt")
	tu.MustWriteFile(t, path, sampleReport)
	return path
}

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}

			runner := NewRunner(RunnerOpts{
				Config: config,
				Logger: logger,
				Output: output,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
		})

		t.Run("with nil config uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if runner.config == nil {
				t.Error("expected default config to be set")
			}
		})

		t.Run("with nil output uses stdout", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if runner.output != os.Stdout {
				t.Error("expected output to default to os.Stdout")
			}
		})
	})

	t.Run("writeJSON", func(t *testing.T) {
		t.Run("compact", func(t *testing.T) {
			runner, output := testRunner(t)

			if err := runner.writeJSON(map[string]string{"title": "My Song"}, false); err != nil {
				t.Fatalf("writeJSON failed: %v", err)
			}
			if got := output.String(); got != "{\"title\":\"My Song\"}\n" {
				t.Errorf("unexpected output: %q", got)
			}
		})

		t.Run("failing writer", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})

			if err := runner.writeJSON(map[string]string{}, false); err == nil {
				t.Error("expected error from failing writer")
			}
		})
	})
}

func TestExtractCommand(t *testing.T) {
	t.Run("extract without save", func(t *testing.T) {
		runner, output := testRunner(t)
		path := writeSampleReport(t)

		if err := runApp(t, runner, "extract", "--quiet", path); err != nil {
			t.Fatalf("extract failed: %v", err)
		}

		if !strings.Contains(output.String(), "Extracted 1 works (2 right holders)") {
			t.Errorf("unexpected output: %s", output.String())
		}
	})

	t.Run("extract with save persists works", func(t *testing.T) {
		runner, output := testRunner(t)
		path := writeSampleReport(t)

		if err := runApp(t, runner, "extract", "--quiet", "--save", path); err != nil {
			t.Fatalf("extract --save failed: %v", err)
		}
		if !strings.Contains(output.String(), "Saved 1 works") {
			t.Errorf("unexpected output: %s", output.String())
		}

		output.Reset()
		if err := runApp(t, runner, "works", "list"); err != nil {
			t.Fatalf("works list failed: %v", err)
		}
		if !strings.Contains(output.String(), "My Song Title") {
			t.Errorf("works list missing stored work: %s", output.String())
		}
	})

	t.Run("extract json output", func(t *testing.T) {
		runner, output := testRunner(t)
		path := writeSampleReport(t)

		if err := runApp(t, runner, "extract", "--quiet", "--json", path); err != nil {
			t.Fatalf("extract --json failed: %v", err)
		}

		got := output.String()
		if !strings.Contains(got, "\"registry_work_id\": \"1\"") {
			t.Errorf("JSON missing work id: %s", got)
		}
		if !strings.Contains(got, "\"name\": \"Jane Doe\"") {
			t.Errorf("JSON missing right holder: %s", got)
		}
	})

	t.Run("extract to output file", func(t *testing.T) {
		runner, output := testRunner(t)
		path := writeSampleReport(t)
		dest := filepath.Join(t.TempDir(), "works.json")

		if err := runApp(t, runner, "extract", "--quiet", "--output", dest, path); err != nil {
			t.Fatalf("extract --output failed: %v", err)
		}

		if !strings.Contains(tu.MustReadFile(t, dest), "My Song Title") {
			t.Error("output file missing extracted work")
		}
		if !strings.Contains(output.String(), dest) {
			t.Errorf("expected confirmation naming %s: %s", dest, output.String())
		}
	})

	t.Run("malformed report fails", func(t *testing.T) {
		runner, _ := testRunner(t)
		path := filepath.Join(t.TempDir(), "report.txt")
		tu.MustWriteFile(t, path, "1  T-000123    My Song Title\n2  12345  Jane Doe    XX  50\n")

		if err := runApp(t, runner, "extract", "--quiet", path); err == nil {
			t.Error("expected extraction failure for unknown role code")
		}
	})

	t.Run("missing path argument", func(t *testing.T) {
		runner, _ := testRunner(t)

		if err := runApp(t, runner, "extract", "--quiet"); err == nil {
			t.Error("expected missing argument error")
		}
	})
}

func TestWorksCommands(t *testing.T) {
	seed := func(t *testing.T) (*Runner, *bytes.Buffer) {
		t.Helper()
		runner, output := testRunner(t)
		if err := runApp(t, runner, "extract", "--quiet", "--save", writeSampleReport(t)); err != nil {
			t.Fatalf("seeding extract failed: %v", err)
		}
		output.Reset()
		return runner, output
	}

	t.Run("show by registry id", func(t *testing.T) {
		runner, output := seed(t)

		if err := runApp(t, runner, "works", "show", "1"); err != nil {
			t.Fatalf("works show failed: %v", err)
		}

		got := output.String()
		if !strings.Contains(got, "Work: My Song Title") {
			t.Errorf("show missing work header: %s", got)
		}
		if !strings.Contains(got, "Jane Doe") || !strings.Contains(got, "John Roe") {
			t.Errorf("show missing right holders: %s", got)
		}
	})

	t.Run("show unknown id", func(t *testing.T) {
		runner, _ := seed(t)

		err := runApp(t, runner, "works", "show", "no-such-id")
		if err == nil {
			t.Fatal("expected error for unknown work")
		}
	})

	t.Run("list filters by status", func(t *testing.T) {
		runner, output := seed(t)

		if err := runApp(t, runner, "works", "list", "--status", "Inactive"); err != nil {
			t.Fatalf("works list failed: %v", err)
		}
		if !strings.Contains(output.String(), "No works stored") {
			t.Errorf("expected empty filter result: %s", output.String())
		}
	})

	t.Run("export csv", func(t *testing.T) {
		runner, output := seed(t)
		base := filepath.Join(t.TempDir(), "export")

		if err := runApp(t, runner, "works", "export", "--format", "csv", "--output", base, "1"); err != nil {
			t.Fatalf("works export failed: %v", err)
		}

		tu.AssertFileExists(t, base+"_rightholders.csv")
		tu.AssertFileExists(t, base+"_work.json")
		if !strings.Contains(output.String(), "✓ Exported") {
			t.Errorf("unexpected output: %s", output.String())
		}
	})

	t.Run("export markdown", func(t *testing.T) {
		runner, _ := seed(t)
		path := filepath.Join(t.TempDir(), "work.md")

		if err := runApp(t, runner, "works", "export", "--format", "markdown", "--output", path, "1"); err != nil {
			t.Fatalf("works export failed: %v", err)
		}

		if !strings.Contains(tu.MustReadFile(t, path), "# My Song Title") {
			t.Error("markdown export missing title heading")
		}
	})

	t.Run("export unsupported format", func(t *testing.T) {
		runner, _ := seed(t)

		if err := runApp(t, runner, "works", "export", "--format", "xml", "1"); err == nil {
			t.Error("expected unsupported format error")
		}
	})
}
