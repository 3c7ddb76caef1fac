package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rcliao/neuronest/internal/companion"
	"github.com/rcliao/neuronest/internal/model"
)

// run executes the root command against db and returns stdout.
func run(t *testing.T, db string, args ...string) []byte {
	t.Helper()
	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetArgs(append([]string{"--db", db}, args...))
	if err := RootCmd.Execute(); err != nil {
		t.Fatalf("%v: %v", args, err)
	}
	return out.Bytes()
}

func TestCommandsShareDatabase(t *testing.T) {
	t.Setenv("NEURONEST_SEED", "3")
	t.Setenv("NEURONEST_TZ", "UTC")
	db := filepath.Join(t.TempDir(), "cli.db")

	var mood companion.Outcome
	for i := 0; i < 5; i++ {
		if err := json.Unmarshal(run(t, db, "mood", "Happy"), &mood); err != nil {
			t.Fatalf("decode mood output: %v", err)
		}
	}
	if len(mood.Unlocked) != 1 || mood.Unlocked[0].ID != "mood-tracker" {
		t.Errorf("expected mood-tracker on fifth check-in, got %+v", mood.Unlocked)
	}

	var chat companion.Outcome
	json.Unmarshal(run(t, db, "chat", "what", "is", "12", "+", "7"), &chat)
	if !strings.Contains(chat.Reply, "19") {
		t.Errorf("expected 19 in reply, got %q", chat.Reply)
	}

	var badges []model.BadgeStatus
	json.Unmarshal(run(t, db, "badges"), &badges)
	if len(badges) == 0 {
		t.Fatal("expected badge list")
	}

	var acked []model.BadgeNotice
	json.Unmarshal(run(t, db, "badges", "ack"), &acked)
	if len(acked) != 1 {
		t.Errorf("expected one acknowledged badge, got %+v", acked)
	}

	var events []model.Event
	json.Unmarshal(run(t, db, "history", "--category", "chat"), &events)
	if len(events) != 2 {
		t.Errorf("expected user and bot chat turns, got %d", len(events))
	}
}

func TestSortedKeys(t *testing.T) {
	got := strings.Join(sortedKeys(model.ValidTools), ",")
	if got != "breathe,distract,dump,neurobot,sounds" {
		t.Errorf("unexpected keys %s", got)
	}
}

func TestReadTextTrimsLineEndings(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer r.Close()
	w.WriteString("rough day\r\n")
	w.Close()

	got, err := readText(nil, r)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got != "rough day" {
		t.Errorf("expected trimmed text, got %q", got)
	}

	got, _ = readText([]string{"from", "args"}, r)
	if got != "from args" {
		t.Errorf("expected joined args, got %q", got)
	}
}
