package main

import (
	"strings"
	"testing"

	"github.com/greensteps/ecofoot/internal/cli"
	"github.com/greensteps/ecofoot/pkg/version"
)

func TestRun(t *testing.T) {
	// Smoke test only: executing run() for real would parse os.Args and
	// initialize logging, which belongs to integration tests.
	t.Run("run function exists", func(t *testing.T) {
		_ = run
	})
}

func TestMainComponents(t *testing.T) {
	t.Run("version available", func(t *testing.T) {
		v := version.GetVersion()
		if v == "" {
			t.Error("expected version to be non-empty")
		}
		if full := version.GetFullVersion(); !strings.HasPrefix(full, v) {
			t.Errorf("expected full version %q to start with %q", full, v)
		}
	})

	t.Run("cli root command", func(t *testing.T) {
		root := cli.NewRootCmd(version.GetVersion())
		if root == nil {
			t.Fatal("expected root command to be non-nil")
		}
		if root.Use == "" {
			t.Error("expected root command to have a use string")
		}
	})
}
