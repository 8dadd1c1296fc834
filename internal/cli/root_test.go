package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestSetVersion(t *testing.T) {
	SetVersion("1.0.0", "abc123", "2024-01-01")

	if version != "1.0.0" {
		t.Errorf("version = %q, want %q", version, "1.0.0")
	}
	if commit != "abc123" {
		t.Errorf("commit = %q, want %q", commit, "abc123")
	}
	if date != "2024-01-01" {
		t.Errorf("date = %q, want %q", date, "2024-01-01")
	}
}

func TestParseSurface(t *testing.T) {
	g, n, err := parseSurface([]string{"1", "2"})
	if err != nil || g != 1 || n != 2 {
		t.Errorf("parseSurface = (%d, %d, %v), want (1, 2, nil)", g, n, err)
	}
	if _, _, err := parseSurface([]string{"x", "2"}); err == nil {
		t.Error("non-numeric genus must fail")
	}
	if _, _, err := parseSurface([]string{"1", "y"}); err == nil {
		t.Error("non-numeric puncture count must fail")
	}
}

func TestValencesCmd(t *testing.T) {
	var buf bytes.Buffer
	cmd := newValencesCmd()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"0", "4"})
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("valences: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"M_{0,4}: levels 3..6", "(6)", "(5,3) (4,4)", "(3,3,3,3)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestValencesCmdRejectsInvalidSurface(t *testing.T) {
	cmd := newValencesCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"0", "2"})
	if err := cmd.ExecuteContext(context.Background()); err == nil {
		t.Error("non-hyperbolic surface must fail")
	}
}

func TestGraphsCmd(t *testing.T) {
	var buf bytes.Buffer
	configPath := ""
	cmd := newGraphsCmd(&configPath)
	cmd.SetOut(&buf)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"0", "3"})
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("graphs: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "L=2: 1 classes") || !strings.Contains(out, "L=3: 2 classes") {
		t.Errorf("unexpected class counts:\n%s", out)
	}
}

func TestHomologyCmd(t *testing.T) {
	var buf bytes.Buffer
	configPath := ""
	cmd := newHomologyCmd(&configPath)
	cmd.SetOut(&buf)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--verify", "1", "1"})
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("homology: %v", err)
	}
	if !strings.Contains(buf.String(), "h = [1 0 0]") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}
