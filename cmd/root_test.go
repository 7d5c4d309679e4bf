package cmd

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/containment-chamber/containment-chamber/internal/chamber"
	"github.com/containment-chamber/containment-chamber/internal/testutil"
)

const wantUsage = "containment-chamber [help|init]\n" +
	"  help  Show this help message\n" +
	"  init  Initialize a new containment chamber\n"

// executeArgs 以给定参数运行根命令，返回 stdout 与 stderr
func executeArgs(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	if args == nil {
		// nil 会让 cobra 回退到 os.Args
		args = []string{}
	}

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	err := execute(args)
	return stdout.String(), stderr.String(), err
}

func useBuiltinTemplates(t *testing.T) {
	t.Helper()
	original := sourceResolver
	sourceResolver = func(*slog.Logger) chamber.Source {
		return chamber.EmbedSource{FS: chamber.BuiltinFS()}
	}
	t.Cleanup(func() {
		sourceResolver = original
	})
}

type failingSource struct{}

func (failingSource) CopyTo(name, dst string) error { return errors.New("permission denied") }
func (failingSource) String() string                 { return "failing" }

func TestRootAlphaAndHelp(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{name: "no args", want: alphaMessage},
		{name: "unknown arg", args: []string{"launch"}, want: alphaMessage},
		{name: "unknown flag", args: []string{"--verbose"}, want: alphaMessage},
		{name: "version is not a command", args: []string{"version"}, want: alphaMessage},
		{name: "completion request", args: []string{"__complete"}, want: alphaMessage},
		{name: "completion request without descriptions", args: []string{"__completeNoDesc"}, want: alphaMessage},
		{name: "completion request with words", args: []string{"__complete", "in"}, want: alphaMessage},
		{name: "completion command is not registered", args: []string{"completion", "bash"}, want: alphaMessage},
		{name: "help", args: []string{"help"}, want: wantUsage},
		{name: "long help", args: []string{"--help"}, want: wantUsage},
		{name: "short help", args: []string{"-h"}, want: wantUsage},
		{name: "help with extra tokens", args: []string{"help", "init"}, want: wantUsage},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stdout, stderr, err := executeArgs(t, tc.args...)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if stdout != tc.want {
				t.Fatalf("stdout = %q, want %q", stdout, tc.want)
			}
			if stderr != "" {
				t.Fatalf("unexpected stderr: %q", stderr)
			}
		})
	}
}

func TestRootInitEndToEnd(t *testing.T) {
	useBuiltinTemplates(t)

	testutil.WithTempCWD(t, func(cwd string) {
		stdout, _, err := executeArgs(t, "init")
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}

		want := "Initializing containment chamber...\n" +
			"Created .pre-commit-config.yaml\n" +
			"Created pyproject.toml\n" +
			"Containment chamber initialized!\n"
		if stdout != want {
			t.Fatalf("stdout = %q, want %q", stdout, want)
		}

		for _, spec := range chamber.DefaultTemplates() {
			path := filepath.Join(cwd, spec.Target)
			testutil.AssertFileExists(t, path)
		}

		stdout, _, err = executeArgs(t, "init")
		if err != nil {
			t.Fatalf("second Execute() error = %v", err)
		}
		if strings.Contains(stdout, "Created") {
			t.Fatalf("second run should only warn, got %q", stdout)
		}
		if strings.Count(stdout, "Warning:") != 2 {
			t.Fatalf("expected two warnings, got %q", stdout)
		}
	})
}

func TestRootInitFailure(t *testing.T) {
	original := sourceResolver
	sourceResolver = func(*slog.Logger) chamber.Source { return failingSource{} }
	t.Cleanup(func() {
		sourceResolver = original
	})

	testutil.WithTempCWD(t, func(cwd string) {
		stdout, stderr, err := executeArgs(t, "init")
		if err == nil {
			t.Fatal("expected error")
		}
		if stdout != "Initializing containment chamber...\n" {
			t.Fatalf("unexpected stdout %q", stdout)
		}
		want := "Error: create .pre-commit-config.yaml: permission denied\n"
		if stderr != want {
			t.Fatalf("stderr = %q, want %q", stderr, want)
		}
		testutil.AssertFileNotExists(t, filepath.Join(cwd, ".pre-commit-config.yaml"))
	})
}

func TestPrintErrorPlainWhenNotTerminal(t *testing.T) {
	var buf bytes.Buffer
	printError(&buf, errors.New("boom"))
	if buf.String() != "Error: boom\n" {
		t.Fatalf("printError() = %q", buf.String())
	}

	// 管道不是终端，同样不带颜色
	_, stderr := testutil.CaptureOutput(t, func() {
		printError(os.Stderr, errors.New("boom"))
	})
	if stderr != "Error: boom\n" {
		t.Fatalf("printError(stderr) = %q", stderr)
	}
}
