package tabletop

import (
	"strings"
	"testing"
)

func TestLoadTestScriptErrors(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   string
	}{
		{"invalid json", `{"steps": [`, "parse test script"},
		{"no steps", `{"steps": []}`, "no steps"},
		{"unknown action", `{"steps": [{"action": "screenshot"}]}`, "unknown action"},
		{"bad key", `{"steps": [{"action": "key", "key": "Nope"}]}`, "step 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTestScript([]byte(tt.script))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func runScript(t *testing.T, tbl *Table, script string) {
	t.Helper()
	runner, err := LoadTestScript([]byte(script))
	if err != nil {
		t.Fatalf("LoadTestScript: %v", err)
	}
	tbl.SetTestRunner(runner)
	for i := 0; i < 100 && !runner.Done(); i++ {
		tbl.Update()
	}
	if !runner.Done() {
		t.Fatal("script did not finish")
	}
}

func TestTestRunnerTapAndDrag(t *testing.T) {
	tbl := newTestTable(t)
	card := spawnCharacter(tbl, 0, 0)

	runScript(t, tbl, `{"steps": [
		{"action": "rightclick", "x": 960, "y": 540},
		{"action": "wait", "frames": 2},
		{"action": "drag", "fromX": 960, "fromY": 540, "toX": 1060, "toY": 540, "frames": 4}
	]}`)

	if !mustCard(t, tbl, card).Tapped {
		t.Error("card should be tapped")
	}
	if got := mustTransform(t, tbl, card).Position(); !approxEqual(got.X, 100, 1e-9) || got.Y != 0 {
		t.Errorf("position = %v, want {100 0}", got)
	}
}

func TestTestRunnerSpawnsCard(t *testing.T) {
	tbl := newTestTable(t)
	runScript(t, tbl, `{"steps": [
		{"action": "key", "key": "F4"},
		{"action": "type", "text": "usopp.png"},
		{"action": "key", "key": "Enter"},
		{"action": "wait", "frames": 1}
	]}`)

	cards := RowCards(tbl.World(), CharacterCard)
	if len(cards) != 1 {
		t.Fatalf("characters = %d, want 1", len(cards))
	}
	if c := mustCard(t, tbl, cards[0]); c.Asset != "usopp.png" {
		t.Errorf("asset = %q, want usopp.png", c.Asset)
	}
}

func TestTestRunnerWaits(t *testing.T) {
	tbl := newTestTable(t)
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "wait", "frames": 3}]}`))
	if err != nil {
		t.Fatal(err)
	}
	tbl.SetTestRunner(runner)
	var ticks int
	for !runner.Done() && ticks < 10 {
		tbl.Update()
		ticks++
	}
	if ticks != 4 {
		t.Errorf("finished after %d ticks, want 4", ticks)
	}
}
