package ui

import (
	"strings"
	"testing"

	"spec-kit/internal/setup"
)

func TestStatusReportPlain(t *testing.T) {
	old := IsTTY
	IsTTY = false
	t.Cleanup(func() { IsTTY = old })

	got := StatusReport([]setup.Status{
		{Strategy: setup.Kilocode, Configured: true},
		{Strategy: setup.Clinerules, Configured: false},
	})

	want := "Setup Status:\nKilocode: ✅ Configured\nClinerules: ❌ Not configured"
	if got != want {
		t.Errorf("StatusReport() =\n%s\nwant\n%s", got, want)
	}
}

func TestStatusReportFramedOnTerminal(t *testing.T) {
	old := IsTTY
	IsTTY = true
	t.Cleanup(func() { IsTTY = old })

	got := StatusReport([]setup.Status{{Strategy: setup.Kilocode}})
	if !strings.Contains(got, "╭") {
		t.Errorf("expected rounded border, got:\n%s", got)
	}
	if !strings.Contains(got, "Not configured") {
		t.Errorf("missing status text:\n%s", got)
	}
}
