package game

import (
	"testing"
	"time"
)

func TestClassSpecsFollowClass(t *testing.T) {
	prev := Classes[0].Spec()
	for _, c := range Classes[1:] {
		spec := c.Spec()
		// higher bands are smaller, faster and further away
		if spec.Size >= prev.Size || spec.Speed <= prev.Speed || spec.Depth <= prev.Depth {
			t.Log("class   ", c)
			t.Log("spec    ", spec)
			t.Log("previous", prev)
			t.Fail()
		}
		prev = spec
	}
}

func TestUnknownClassPanics(t *testing.T) {
	defer func() {
		if nil == recover() {
			t.Fatal("expected a panic")
		}
	}()
	FrequencyClass(9).Spec()
}

func TestParseFrequencyClass(t *testing.T) {
	for _, c := range Classes {
		out, err := ParseFrequencyClass(c.String())
		if nil != err || out != c {
			t.Fatalf("%v: got %v, %v", c, out, err)
		}
	}
	if _, err := ParseFrequencyClass("kick"); nil == err {
		t.Fatal("expected an error")
	}
}

func TestNoteClassAndLane(t *testing.T) {
	tests := []struct {
		index uint8
		class FrequencyClass
		lane  int
	}{
		{0, Bass, 0},
		{1, Snare, 1},
		{2, Snare, 2},
		{3, HiHat, 0},
		{4, Bass, 1},
		{7, HiHat, 1},
	}
	for _, test := range tests {
		n := &Note{Index: test.index}
		if n.Class() != test.class || n.Lane() != test.lane {
			t.Log("index   ", test.index)
			t.Log("class   ", n.Class(), "expected", test.class)
			t.Log("lane    ", n.Lane(), "expected", test.lane)
			t.Fail()
		}
	}
}

func TestChartDue(t *testing.T) {
	c := &Chart{Notes: []*Note{
		{Time: time.Second},
		{Time: 1500 * time.Millisecond},
		{Time: 3 * time.Second},
	}}
	lead := time.Second
	if due := c.Due(0, lead); len(due) != 1 || due[0] != c.Notes[0] {
		t.Fatalf("due at 0: %v", due)
	}
	if due := c.Due(100*time.Millisecond, lead); len(due) != 0 {
		t.Fatalf("note returned twice: %v", due)
	}
	if due := c.Due(5*time.Second, lead); len(due) != 2 {
		t.Fatalf("due at 5s: %v", due)
	}
	c.Rewind()
	if due := c.Due(5*time.Second, lead); len(due) != 3 {
		t.Fatalf("rewind did not reset, got %d", len(due))
	}
	if c.Length() != 3*time.Second || (&Chart{}).Length() != 0 {
		t.Fatal("unexpected length")
	}
}

func TestEffectLifetime(t *testing.T) {
	e := &Effect{Start: time.Second, Duration: 500 * time.Millisecond, Payload: MissMark{Class: Bass}}
	if e.Kind() != EffectMissMark {
		t.Fatalf("kind %v", e.Kind())
	}
	tests := []struct {
		now      time.Duration
		progress float64
		alive    bool
	}{
		{500 * time.Millisecond, 0, true},
		{time.Second, 0, true},
		{1250 * time.Millisecond, 0.5, true},
		{1500 * time.Millisecond, 1, true},
		{1600 * time.Millisecond, 1, false},
	}
	for _, test := range tests {
		if p := e.Progress(test.now); p != test.progress || e.Alive(test.now) != test.alive {
			t.Log("now     ", test.now)
			t.Log("progress", p, "expected", test.progress)
			t.Log("alive   ", e.Alive(test.now), "expected", test.alive)
			t.Fail()
		}
	}
}

func TestLevelSpawning(t *testing.T) {
	l := LevelData{SpawnRate: 4}
	if l.SpawnInterval() != 250*time.Millisecond {
		t.Fatalf("interval %v", l.SpawnInterval())
	}
	if (&LevelData{}).SpawnInterval() != 0 {
		t.Fatal("expected timed spawns to be disabled")
	}
	if l.PatternClass(4) != Snare {
		t.Fatalf("default pattern gave %v", l.PatternClass(4))
	}
	l.Pattern = []FrequencyClass{HiHat, Bass}
	if l.PatternClass(0) != HiHat || l.PatternClass(3) != Bass {
		t.Fatal("pattern not cycled")
	}
}

func TestViewport(t *testing.T) {
	v := Viewport{W: 800, H: 600}
	if v.Scale() != 600 {
		t.Fatalf("scale %v", v.Scale())
	}
	x, y := v.ToNormal(v.ToScreen(0.25, 0.75))
	if x != 0.25 || y != 0.75 {
		t.Fatalf("round trip gave %v,%v", x, y)
	}
	if o := v.Origin(); o.X != 400 || o.Y != 570 {
		t.Fatalf("origin %v", o)
	}
	p := &Portal{Class: HiHat, X: 0.5, Y: 0.5}
	if r := p.Radius(v); r < 23.99 || r > 24.01 {
		t.Fatalf("radius %v", r)
	}
}

func TestFieldMask(t *testing.T) {
	for _, f := range []Field{FieldScore, FieldCombo, FieldStatus, FieldDimension} {
		if !FieldAll.Has(f) {
			t.Fatalf("FieldAll missing %d", f)
		}
	}
	if (FieldScore | FieldHealth).Has(FieldCombo) {
		t.Fatal("unexpected field")
	}
}
