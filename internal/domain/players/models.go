package players

import (
	"sort"
	"strings"
)

// Player is the normalized directory record for a single player.
type Player struct {
	ID        string `json:"id" yaml:"id" validate:"nonblank"`
	FullName  string `json:"fullName" yaml:"fullName" validate:"nonblank"`
	FirstName string `json:"firstName" yaml:"firstName"`
	LastName  string `json:"lastName" yaml:"lastName"`
	Team      string `json:"team" yaml:"team" validate:"nonblank"`
	Position  string `json:"position" yaml:"position" validate:"nonblank"`
}

// Directory maps player IDs to their records.
type Directory map[string]Player

// NewDirectory keys the given players by ID. Later duplicates win.
func NewDirectory(items []Player) Directory {
	dir := make(Directory, len(items))
	for _, p := range items {
		dir[p.ID] = p
	}
	return dir
}

// Get returns the player for id when present.
func (d Directory) Get(id string) (Player, bool) {
	if d == nil {
		return Player{}, false
	}
	p, ok := d[id]
	return p, ok
}

// Filter narrows a directory listing. Empty fields match everything.
type Filter struct {
	Position string
	Team     string
}

// Matches reports whether p satisfies the filter, case-insensitively.
func (f Filter) Matches(p Player) bool {
	if f.Position != "" && !strings.EqualFold(f.Position, p.Position) {
		return false
	}
	if f.Team != "" && !strings.EqualFold(f.Team, p.Team) {
		return false
	}
	return true
}

// List returns matching players sorted by full name, then ID.
func (d Directory) List(filter Filter) []Player {
	out := make([]Player, 0, len(d))
	for _, p := range d {
		if filter.Matches(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].FullName != out[j].FullName {
			return out[i].FullName < out[j].FullName
		}
		return out[i].ID < out[j].ID
	})
	return out
}
