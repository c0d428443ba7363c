package players

import (
	"reflect"
	"testing"
)

func TestPlayerJSONTags(t *testing.T) {
	type fieldCheck struct {
		name string
		tag  string
	}
	playerType := reflect.TypeOf(Player{})
	fields := []fieldCheck{
		{"ID", "id"},
		{"FullName", "fullName"},
		{"FirstName", "firstName"},
		{"LastName", "lastName"},
		{"Team", "team"},
		{"Position", "position"},
	}
	for _, fc := range fields {
		f, ok := playerType.FieldByName(fc.name)
		if !ok {
			t.Fatalf("missing field %s", fc.name)
		}
		if tag := f.Tag.Get("json"); tag != fc.tag {
			t.Fatalf("field %s expected tag %s, got %s", fc.name, fc.tag, tag)
		}
	}
}

func TestNewDirectoryKeysByID(t *testing.T) {
	dir := NewDirectory([]Player{
		{ID: "1", FullName: "First"},
		{ID: "2", FullName: "Second"},
		{ID: "1", FullName: "Replaced"},
	})
	if len(dir) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(dir))
	}
	if p, ok := dir.Get("1"); !ok || p.FullName != "Replaced" {
		t.Fatalf("expected later duplicate to win, got %+v", p)
	}
}

func TestDirectoryGetOnNil(t *testing.T) {
	var dir Directory
	if _, ok := dir.Get("x"); ok {
		t.Fatal("expected miss on nil directory")
	}
}

func TestDirectoryListFiltersAndSorts(t *testing.T) {
	dir := NewDirectory([]Player{
		{ID: "3", FullName: "Zed", Team: "KC", Position: "WR"},
		{ID: "1", FullName: "Amy", Team: "KC", Position: "QB"},
		{ID: "2", FullName: "Bo", Team: "BUF", Position: "WR"},
	})

	all := dir.List(Filter{})
	if len(all) != 3 || all[0].FullName != "Amy" || all[2].FullName != "Zed" {
		t.Fatalf("unexpected order: %+v", all)
	}

	wr := dir.List(Filter{Position: "wr"})
	if len(wr) != 2 || wr[0].ID != "2" || wr[1].ID != "3" {
		t.Fatalf("unexpected position filter result: %+v", wr)
	}

	kcWR := dir.List(Filter{Position: "WR", Team: "kc"})
	if len(kcWR) != 1 || kcWR[0].ID != "3" {
		t.Fatalf("unexpected combined filter result: %+v", kcWR)
	}
}
