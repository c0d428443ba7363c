package trending

// Direction tags which way a player is trending.
type Direction string

const (
	DirectionAdd  Direction = "add"
	DirectionDrop Direction = "drop"
)

// Valid reports whether d is a known direction.
func (d Direction) Valid() bool {
	return d == DirectionAdd || d == DirectionDrop
}

// Entry is one trending leaderboard row.
type Entry struct {
	PlayerID  string    `json:"playerId" yaml:"playerId" validate:"nonblank"`
	Count     int       `json:"count" yaml:"count" validate:"gt=0"`
	Direction Direction `json:"direction" yaml:"direction"`
}

const (
	DefaultSport         = "nfl"
	DefaultLookbackHours = 24
	DefaultLimit         = 25
)

// Query parameterizes a trending fetch.
type Query struct {
	Sport         string
	Direction     Direction
	LookbackHours int
	Limit         int
}

// WithDefaults fills zero fields with the standard window and limit.
func (q Query) WithDefaults() Query {
	if q.Sport == "" {
		q.Sport = DefaultSport
	}
	if q.LookbackHours <= 0 {
		q.LookbackHours = DefaultLookbackHours
	}
	if q.Limit <= 0 {
		q.Limit = DefaultLimit
	}
	return q
}

// In returns a copy of q for the given direction.
func (q Query) In(d Direction) Query {
	q.Direction = d
	return q
}

// Board holds both leaderboards in source order.
type Board struct {
	Adds  []Entry `json:"adds" yaml:"adds"`
	Drops []Entry `json:"drops" yaml:"drops"`
}
