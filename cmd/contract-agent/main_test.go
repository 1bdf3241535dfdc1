package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunInitAndCheck(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")

	if err := run([]string{"init", "-o", envPath}); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	// The template leaves required credentials blank; checking it as-is
	// must fail with a non-nil error naming the missing key.
	err := run([]string{"check", "-env", envPath, "-no-env"})
	if err == nil {
		t.Fatal("expected check to fail on the blank template")
	}
	if !strings.Contains(err.Error(), "MISSING_REQUIRED_KEY") {
		t.Errorf("unexpected error: %v", err)
	}

	// Fill in the required values and check again.
	filled := `GOOGLE_DRIVE_FOLDER_ID=folder-1
GOOGLE_AI_API_KEY=ai-key
ERPNEXT_URL=https://erp.example.com
ERPNEXT_API_KEY=erp-key
ERPNEXT_API_SECRET=erp-secret
`
	f, err := os.OpenFile(envPath, os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		t.Fatalf("open env file: %v", err)
	}
	if _, err := f.WriteString(filled); err != nil {
		t.Fatalf("append to env file: %v", err)
	}
	f.Close()

	if err := run([]string{"check", "-env", envPath, "-no-env"}); err != nil {
		t.Fatalf("check failed on a complete config: %v", err)
	}
}

func TestRunInitRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")

	if err := run([]string{"init", "-o", envPath}); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if err := run([]string{"init", "-o", envPath}); err == nil {
		t.Error("expected second init to refuse overwriting")
	}
	if err := run([]string{"init", "-o", envPath, "-force"}); err != nil {
		t.Errorf("init -force failed: %v", err)
	}
}

func TestRunUnknownCommand(t *testing.T) {
	if err := run([]string{"frobnicate"}); err == nil {
		t.Error("expected error for unknown command")
	}
}

func TestRunHelp(t *testing.T) {
	if err := run(nil); err != nil {
		t.Errorf("bare invocation should print usage, got %v", err)
	}
	if err := run([]string{"help"}); err != nil {
		t.Errorf("help failed: %v", err)
	}
}
