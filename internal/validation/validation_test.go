package validation

import (
	"testing"

	"fantasy-hud-service/internal/domain/leagues"
	"fantasy-hud-service/internal/domain/players"
	"fantasy-hud-service/internal/domain/trending"
)

func TestNewValidatorRegistersNonblank(t *testing.T) {
	v, err := newValidator()
	if err != nil {
		t.Fatalf("expected rules to register, got %v", err)
	}
	type sample struct {
		Name string `validate:"nonblank"`
	}
	if err := v.Struct(sample{Name: "  "}); err == nil {
		t.Fatal("expected blank name rejected")
	}
	if err := v.Struct(sample{Name: "Mahomes"}); err != nil {
		t.Fatalf("expected name accepted, got %v", err)
	}
}

func TestValidPlayerRequiresCoreFields(t *testing.T) {
	good := players.Player{ID: "4046", FullName: "Patrick Mahomes", Team: "KC", Position: "QB"}
	if !Valid(good) {
		t.Fatalf("expected complete player valid, got %v", Check(good))
	}

	cases := map[string]players.Player{
		"missing id":       {FullName: "A", Team: "KC", Position: "QB"},
		"missing name":     {ID: "1", Team: "KC", Position: "QB"},
		"blank name":       {ID: "1", FullName: "   ", Team: "KC", Position: "QB"},
		"missing team":     {ID: "1", FullName: "A", Position: "QB"},
		"missing position": {ID: "1", FullName: "A", Team: "KC"},
	}
	for name, p := range cases {
		if Valid(p) {
			t.Fatalf("%s: expected invalid", name)
		}
	}
}

func TestValidTrendingEntry(t *testing.T) {
	if !Valid(trending.Entry{PlayerID: "A", Count: 50}) {
		t.Fatal("expected entry with id and positive count valid")
	}
	if Valid(trending.Entry{PlayerID: "", Count: 10}) {
		t.Fatal("expected empty id invalid")
	}
	if Valid(trending.Entry{PlayerID: "B", Count: 0}) {
		t.Fatal("expected zero count invalid")
	}
	if Valid(trending.Entry{PlayerID: "C", Count: -3}) {
		t.Fatal("expected negative count invalid")
	}
}

func TestValidRoster(t *testing.T) {
	if !Valid(leagues.Roster{RosterID: 1}) {
		t.Fatal("expected roster with id valid")
	}
	if Valid(leagues.Roster{}) {
		t.Fatal("expected roster without id invalid")
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	in := []trending.Entry{
		{PlayerID: "A", Count: 50},
		{PlayerID: "", Count: 10},
		{PlayerID: "B", Count: 0},
		{PlayerID: "C", Count: 5},
	}
	out := Filter(in)
	if len(out) != 2 || out[0].PlayerID != "A" || out[1].PlayerID != "C" {
		t.Fatalf("unexpected filter result: %+v", out)
	}
}

func TestFilterEmpty(t *testing.T) {
	out := Filter[trending.Entry](nil)
	if out == nil || len(out) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", out)
	}
}
