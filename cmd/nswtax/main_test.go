package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "nswtax" {
		t.Errorf("Expected root command use 'nswtax', got %s", rootCmd.Use)
	}
	if rootCmd.Short == "" {
		t.Error("Expected root command to have a short description")
	}
}

func TestRegisteredCommands(t *testing.T) {
	expected := []string{
		"land-tax",
		"payroll-tax",
		"stamp-duty",
		"scenario",
		"schedules",
		"validate",
		"formats",
		"version",
	}

	registered := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		registered[cmd.Name()] = true
	}

	for _, name := range expected {
		if !registered[name] {
			t.Errorf("Expected command %q to be registered", name)
		}
	}
}

func TestRootCommandHelp(t *testing.T) {
	buf := bytes.NewBufferString("")
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"--help"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Expected help to execute without error, got %v", err)
	}
	if !strings.Contains(buf.String(), "nswtax") {
		t.Error("Expected help output to mention nswtax")
	}
}

func TestParseOptionalAmount(t *testing.T) {
	value, err := parseOptionalAmount("value", "1234.56")
	if err != nil {
		t.Fatalf("Expected no error for valid amount, got %v", err)
	}
	if value.String() != "1234.56" {
		t.Errorf("Expected 1234.56, got %s", value.String())
	}

	if _, err := parseOptionalAmount("value", "not-a-number"); err == nil {
		t.Error("Expected error for invalid amount")
	}
}
