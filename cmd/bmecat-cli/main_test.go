package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-bmecat/internal/prompt"
)

const header = `document:
  header:
    catalog:
      language: eng
      id: MY_CATALOG
      version: "0.99"
    supplier:
      id: BMECAT_TEST
      name: TestSupplier
  new_catalog:
    products:
      - id: "1"
        prices:
          - price: 10.5
            currency: EUR
`

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestBuildCommand(t *testing.T) {
	cfg := writeFile(t, "catalog.yaml", header)

	out, _, err := run(t, "build", "--config", cfg, "--validate")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !strings.Contains(out, "<PRICE_AMOUNT>10.5</PRICE_AMOUNT>") {
		t.Fatalf("expected rendered price, got:\n%s", out)
	}
	if strings.Contains(out, "<CATALOG_NAME/>") {
		t.Fatalf("expected compact output by default")
	}

	nullOut, _, err := run(t, "build", "--config", cfg, "--null")
	if err != nil {
		t.Fatalf("build --null: %v", err)
	}
	if !strings.Contains(nullOut, "<CATALOG_NAME/>") {
		t.Fatalf("expected null output to contain empty CATALOG_NAME")
	}
}

func TestBuildCommand_RequiresConfig(t *testing.T) {
	if _, _, err := run(t, "build"); err == nil {
		t.Fatalf("expected error without --config")
	}
}

func TestBuildCommand_UnknownVersion(t *testing.T) {
	cfg := writeFile(t, "catalog.yaml", header)
	if _, _, err := run(t, "build", "--config", cfg, "--format-version", "1.2"); err == nil {
		t.Fatalf("expected unknown version to fail")
	}
}

func TestValidateCommand(t *testing.T) {
	cfg := writeFile(t, "catalog.yaml", header)
	xmlPath := filepath.Join(filepath.Dir(cfg), "catalog.xml")
	if _, _, err := run(t, "build", "--config", cfg, "--output", xmlPath); err != nil {
		t.Fatalf("build: %v", err)
	}

	out, _, err := run(t, "validate", xmlPath)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !strings.Contains(out, "is valid against schema 2005.1") {
		t.Fatalf("unexpected output %q", out)
	}

	broken := writeFile(t, "broken.xml", "<BMECAT>")
	_, stderr, err := run(t, "validate", broken)
	if err == nil {
		t.Fatalf("expected malformed document to fail")
	}
	if !strings.Contains(stderr, "xml-parse-error") {
		t.Fatalf("expected parse violation on stderr, got %q", stderr)
	}
}

func TestVersionsCommand(t *testing.T) {
	out, _, err := run(t, "versions")
	if err != nil {
		t.Fatalf("versions: %v", err)
	}
	if strings.TrimSpace(out) != "2005.1" {
		t.Fatalf("unexpected versions %q", out)
	}
}

type answerDriver struct{}

func (answerDriver) Input(_ context.Context, cfg prompt.InputConfig) (string, error) {
	switch cfg.Message {
	case "Catalog id":
		return "MY_CATALOG", nil
	case "Supplier id":
		return "BMECAT_TEST", nil
	case "Supplier name":
		return "TestSupplier", nil
	}
	return cfg.Default, nil
}

func (answerDriver) Confirm(context.Context, prompt.ConfirmConfig) (bool, error) { return false, nil }
func (answerDriver) Select(context.Context, prompt.SelectConfig) (int, error) { return 0, nil }
func (answerDriver) Info(context.Context, string) error { return nil }

func TestInitCommand(t *testing.T) {
	cmd := initCmd(answerDriver{})
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("init: %v", err)
	}

	if !strings.Contains(stdout.String(), "format_version:") {
		t.Fatalf("expected chosen format version in init output, got:\n%s", stdout.String())
	}

	cfg := writeFile(t, "catalog.yaml", stdout.String())
	out, _, err := run(t, "build", "--config", cfg, "--validate", "--strict")
	if err != nil {
		t.Fatalf("build from init output: %v\n%s", err, stdout.String())
	}
	if !strings.Contains(out, "<SUPPLIER_ID>BMECAT_TEST</SUPPLIER_ID>") {
		t.Fatalf("expected supplier id from answers, got:\n%s", out)
	}
}

func TestBuildCommand_FormatVersionFromConfig(t *testing.T) {
	cfg := writeFile(t, "catalog.yaml", strings.Replace(header, "document:\n", "document:\n  format_version: \"1.2\"\n", 1))

	if _, _, err := run(t, "build", "--config", cfg); err == nil {
		t.Fatalf("expected unknown version from config to fail")
	}
	out, _, err := run(t, "build", "--config", cfg, "--format-version", "2005.1", "--validate")
	if err != nil {
		t.Fatalf("expected explicit flag to override config version: %v", err)
	}
	if !strings.Contains(out, `version="2005.1"`) {
		t.Fatalf("expected 2005.1 root attribute, got:\n%s", out)
	}
}

func TestRootCommand_Help(t *testing.T) {
	out, _, err := run(t, "--help")
	if err != nil {
		t.Fatalf("help: %v", err)
	}
	if !strings.Contains(out, "bmecat-cli validate --format-version 2005.1") {
		t.Fatalf("expected help example to use --format-version, got:\n%s", out)
	}
}
