package roundstore

import (
	"bytes"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aalvaropc/forecounter/internal/domain"
	"github.com/aalvaropc/forecounter/internal/infra/slot/boltstore"
	"github.com/aalvaropc/forecounter/internal/infra/slot/filestore"
	"github.com/aalvaropc/forecounter/internal/infra/slot/memstore"
	"github.com/aalvaropc/forecounter/internal/infra/slot/sqlitestore"
	"github.com/aalvaropc/forecounter/internal/ports"
)

// failingSlot fails every operation with a storage error.
type failingSlot struct{}

func (failingSlot) Read() ([]byte, error) {
	return nil, &domain.OpError{Op: "fake.read", Kind: domain.KindStorage, Err: errors.New("disk gone")}
}
func (failingSlot) Write(_ []byte) error {
	return &domain.OpError{Op: "fake.write", Kind: domain.KindStorage, Err: errors.New("disk full")}
}
func (failingSlot) Delete() error {
	return &domain.OpError{Op: "fake.delete", Kind: domain.KindStorage, Err: errors.New("read only")}
}

var _ ports.Slot = failingSlot{}

type backend struct {
	name string
	open func(t *testing.T) ports.Slot
}

func backends() []backend {
	return []backend{
		{"memory", func(_ *testing.T) ports.Slot { return memstore.New() }},
		{"file", func(t *testing.T) ports.Slot {
			return filestore.New(filepath.Join(t.TempDir(), filestore.DefaultFileName))
		}},
		{"bolt", func(t *testing.T) ports.Slot {
			s, err := boltstore.Open(filepath.Join(t.TempDir(), boltstore.DefaultFileName), domain.ActiveRoundSlot)
			if err != nil {
				t.Fatalf("open bolt: %v", err)
			}
			t.Cleanup(func() { _ = s.Close() })
			return s
		}},
		{"sqlite", func(t *testing.T) ports.Slot {
			s, err := sqlitestore.Open(filepath.Join(t.TempDir(), sqlitestore.DefaultFileName), domain.ActiveRoundSlot)
			if err != nil {
				t.Fatalf("open sqlite: %v", err)
			}
			t.Cleanup(func() { _ = s.Close() })
			return s
		}},
	}
}

func sampleRound(holes int) domain.Round {
	r := domain.NewRound(time.Date(2026, 10, 19, 7, 45, 12, 345678901, time.UTC))
	r.Holes[0].Strokes = 4
	for i := 2; i <= holes; i++ {
		r.Holes = append(r.Holes, domain.HoleScore{HoleNumber: i, Strokes: i + 1})
	}
	return r
}

func TestSaveLoad_RoundTripsOnEveryBackend(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			store := New(b.open(t))

			for _, holes := range []int{1, 2, 9, domain.MaxHoles} {
				want := sampleRound(holes)
				store.Save(want)

				got, ok := store.Load()
				if !ok {
					t.Fatalf("expected round for %d holes", holes)
				}
				if !got.Equal(want) {
					t.Fatalf("expected round trip for %d holes\n got=%+v\nwant=%+v", holes, got, want)
				}
			}
		})
	}
}

func TestLoad_AbsentWhenNeverSavedOrCleared(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			store := New(b.open(t))

			if _, ok := store.Load(); ok {
				t.Fatalf("expected absent on empty store")
			}

			store.Save(sampleRound(3))
			store.Clear()
			if _, ok := store.Load(); ok {
				t.Fatalf("expected absent after clear")
			}

			// Clear on an empty slot is a no-op.
			store.Clear()
			if _, ok := store.Load(); ok {
				t.Fatalf("expected absent after second clear")
			}
		})
	}
}

func TestSave_Overwrites(t *testing.T) {
	store := New(memstore.New())

	first := domain.NewRound(time.Now())
	first.Holes[0].Strokes = 1
	store.Save(first)

	second := domain.NewRound(time.Now())
	second.Holes[0].Strokes = 99
	store.Save(second)

	got, ok := store.Load()
	if !ok {
		t.Fatalf("expected round")
	}
	if got.Holes[0].Strokes != 99 {
		t.Fatalf("expected 99 strokes, got=%d", got.Holes[0].Strokes)
	}
}

func TestSave_MultipleCyclesStayConsistent(t *testing.T) {
	store := New(memstore.New())
	for i := 1; i <= 5; i++ {
		r := domain.NewRound(time.Now())
		r.Holes[0].Strokes = i
		store.Save(r)

		got, ok := store.Load()
		if !ok || got.Holes[0].Strokes != i {
			t.Fatalf("cycle %d: expected %d strokes, got=%+v (ok=%v)", i, i, got, ok)
		}
	}
}

func TestLoad_CorruptPayloadIsAbsent(t *testing.T) {
	cases := map[string]string{
		"not json":       "not valid json",
		"empty":          "",
		"wrong shape":    `{"holes":"x"}`,
		"no holes":       `{"holes":[],"startedAt":"2026-10-19T08:00:00Z"}`,
		"gap":            `{"holes":[{"holeNumber":1,"strokes":1},{"holeNumber":3,"strokes":1}],"startedAt":"2026-10-19T08:00:00Z"}`,
		"negative":       `{"holes":[{"holeNumber":1,"strokes":-2}],"startedAt":"2026-10-19T08:00:00Z"}`,
		"bad timestamp":  `{"holes":[{"holeNumber":1,"strokes":0}],"startedAt":"yesterday"}`,
		"missing start":  `{"holes":[{"holeNumber":1,"strokes":0}]}`,
		"json array":     `[1,2,3]`,
		"truncated json": `{"holes":[{"holeNumber":1,`,
	}

	for name, payload := range cases {
		slot := memstore.New()
		if err := slot.Write([]byte(payload)); err != nil {
			t.Fatalf("%s: write: %v", name, err)
		}

		var logs bytes.Buffer
		store := New(slot, WithLogger(slog.New(slog.NewJSONHandler(&logs, nil))))

		if _, ok := store.Load(); ok {
			t.Errorf("%s: expected absent for corrupt payload", name)
		}
		if !strings.Contains(logs.String(), "round.load.corrupt") {
			t.Errorf("%s: expected corrupt load to be logged, got=%s", name, logs.String())
		}
	}
}

func TestStore_AbsorbsSlotFailures(t *testing.T) {
	var logs bytes.Buffer
	store := New(failingSlot{}, WithLogger(slog.New(slog.NewJSONHandler(&logs, nil))))

	store.Save(sampleRound(2))
	if _, ok := store.Load(); ok {
		t.Fatalf("expected absent when slot cannot be read")
	}
	store.Clear()

	out := logs.String()
	for _, event := range []string{"round.save.failed", "round.load.failed", "round.clear.failed"} {
		if !strings.Contains(out, event) {
			t.Errorf("expected %s in logs, got=%s", event, out)
		}
	}
}

func TestLoad_NotFoundIsNotLogged(t *testing.T) {
	var logs bytes.Buffer
	store := New(memstore.New(), WithLogger(slog.New(slog.NewJSONHandler(&logs, nil))))

	if _, ok := store.Load(); ok {
		t.Fatalf("expected absent")
	}
	if logs.Len() != 0 {
		t.Fatalf("expected no log output for an empty slot, got=%s", logs.String())
	}
}

func TestEncode_Layout(t *testing.T) {
	b, err := Encode(domain.NewRound(time.Date(2026, 10, 19, 8, 0, 0, 500, time.UTC)))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	s := string(b)
	for _, want := range []string{`"holes"`, `"holeNumber": 1`, `"strokes": 0`, `"startedAt": "2026-10-19T08:00:00.0000005Z"`} {
		if !strings.Contains(s, want) {
			t.Errorf("expected %s in %s", want, s)
		}
	}
}

func TestDecode_ReportsCorruptKind(t *testing.T) {
	_, err := Decode([]byte("{"))
	if !domain.IsKind(err, domain.KindCorruptData) {
		t.Fatalf("expected KindCorruptData, got: %v", err)
	}
}
