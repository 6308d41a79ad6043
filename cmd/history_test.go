package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func runHistoryCmd(t *testing.T, sub string, args ...string) (string, error) {
	t.Helper()
	cmd := historyCmd
	switch sub {
	case "clear":
		cmd = historyClearCmd
	case "rm":
		cmd = historyRmCmd
	}
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	err := cmd.RunE(cmd, args)
	return buf.String(), err
}

func seedHistory(t *testing.T, exprs ...string) {
	t.Helper()
	for _, expr := range exprs {
		if _, err := runEvalCmd(t, false, expr); err != nil {
			t.Fatalf("eval %q: %v", expr, err)
		}
	}
}

func TestHistory_ListEmpty(t *testing.T) {
	withHome(t)

	out, err := runHistoryCmd(t, "")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "No calculations yet") {
		t.Errorf("output = %q", out)
	}
}

func TestHistory_ListNewestFirst(t *testing.T) {
	withHome(t)
	seedHistory(t, "1+1", "2*3", "9/3")

	out, err := runHistoryCmd(t, "")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %q", out)
	}
	wants := []string{" 1. 9÷3 = 3", " 2. 2×3 = 6", " 3. 1+1 = 2"}
	for i, want := range wants {
		if !strings.HasPrefix(lines[i], want) {
			t.Errorf("line %d = %q, want prefix %q", i, lines[i], want)
		}
	}
}

func TestHistory_Rm(t *testing.T) {
	withHome(t)
	seedHistory(t, "1+1", "2*3", "9/3")

	out, err := runHistoryCmd(t, "rm", "2")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Removed 2×3 = 6") {
		t.Errorf("output = %q", out)
	}

	out, _ = runHistoryCmd(t, "")
	if strings.Contains(out, "2×3") || !strings.Contains(out, " 2. 1+1 = 2") {
		t.Errorf("after rm:\n%s", out)
	}

	for _, bad := range []string{"0", "3", "x"} {
		if _, err := runHistoryCmd(t, "rm", bad); err == nil {
			t.Errorf("rm %s should fail", bad)
		}
	}
}

func TestHistory_Clear(t *testing.T) {
	withHome(t)
	seedHistory(t, "1+1", "2+2")

	out, err := runHistoryCmd(t, "clear")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Removed 2 calculation(s)") {
		t.Errorf("output = %q", out)
	}

	out, _ = runHistoryCmd(t, "")
	if !strings.Contains(out, "No calculations yet") {
		t.Errorf("history should be empty after clear, got %q", out)
	}
}

func TestHistory_KeepsTenNewest(t *testing.T) {
	withHome(t)
	for i := 0; i < 12; i++ {
		seedHistory(t, "1+1")
	}

	out, err := runHistoryCmd(t, "")
	if err != nil {
		t.Fatal(err)
	}
	if n := len(strings.Split(strings.TrimSpace(out), "\n")); n != 10 {
		t.Errorf("listed %d entries, want 10", n)
	}
}
