package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/flock/sim"
)

// fakeSource is a scriptable telemetry source.
type fakeSource struct {
	tick       int
	generation int
	genomes    []sim.Genome
}

func (f *fakeSource) Tick() int             { return f.tick }
func (f *fakeSource) Generation() int       { return f.generation }
func (f *fakeSource) Genomes() []sim.Genome { return f.genomes }

func TestCollectorWindowBoundaries(t *testing.T) {
	dir := t.TempDir()
	out, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("creating output manager: %v", err)
	}
	defer out.Close()

	c := NewCollector(10, false, out)
	src := &fakeSource{genomes: []sim.Genome{{Speed: 0.002, Fitness: 1}}}

	// Records only at window boundaries
	ticks := []int{1, 5, 9, 10, 12, 19, 20, 25}
	for _, tick := range ticks {
		src.tick = tick
		if err := c.Observe(src); err != nil {
			t.Fatalf("observe at tick %d: %v", tick, err)
		}
	}

	if err := out.Close(); err != nil {
		t.Fatalf("closing output: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "telemetry.csv"))
	if err != nil {
		t.Fatalf("reading telemetry.csv: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")

	// Header plus one record per crossed window (ticks 10 and 20)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines (header + 2 records), got %d:\n%s", len(lines), data)
	}
	if !strings.Contains(lines[0], "window_end") {
		t.Errorf("first line is not a header: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "10,") {
		t.Errorf("first record should be window 10, got %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "20,") {
		t.Errorf("second record should be window 20, got %q", lines[2])
	}
}

func TestCollectorNilOutput(t *testing.T) {
	c := NewCollector(5, false, nil)
	src := &fakeSource{tick: 5}

	// CSV output disabled must be a no-op, not a crash
	if err := c.Observe(src); err != nil {
		t.Errorf("observe with nil output: %v", err)
	}
}

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil {
		t.Fatalf("empty dir should disable output, got error: %v", err)
	}
	if om != nil {
		t.Fatal("expected nil manager for empty dir")
	}

	// Nil-receiver methods are no-ops
	if err := om.WriteTelemetry(WindowStats{}); err != nil {
		t.Errorf("WriteTelemetry on nil manager: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Errorf("Close on nil manager: %v", err)
	}
	if om.Dir() != "" {
		t.Errorf("Dir on nil manager: %q", om.Dir())
	}
}
