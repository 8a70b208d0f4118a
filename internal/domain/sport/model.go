package sport

import "strings"

// Sport is one tracked competition in the pick'em, plus the synthetic
// "overall" aggregate entry.
type Sport struct {
	ID              string
	DisplayName     string
	StandingsActive bool
}

const (
	Football         = "football"
	MensBasketball   = "mens-basketball"
	WomensBasketball = "womens-basketball"
	Baseball         = "baseball"
	Softball         = "softball"
	Overall          = "overall"
)

// Config returns the static, ordered sport configuration. The order is the
// display order and the iteration order for the overall view.
func Config() []Sport {
	return []Sport{
		{ID: Football, DisplayName: "Football", StandingsActive: true},
		{ID: MensBasketball, DisplayName: "Men's Basketball", StandingsActive: true},
		{ID: WomensBasketball, DisplayName: "Women's Basketball", StandingsActive: true},
		{ID: Baseball, DisplayName: "Baseball", StandingsActive: true},
		{ID: Softball, DisplayName: "Softball", StandingsActive: true},
		{ID: Overall, DisplayName: "Overall", StandingsActive: true},
	}
}

// Tracked returns the real sports, excluding the synthetic overall entry.
func Tracked() []Sport {
	out := make([]Sport, 0, len(Config())-1)
	for _, s := range Config() {
		if s.ID == Overall {
			continue
		}
		out = append(out, s)
	}

	return out
}

// Lookup finds a sport by id in the configured list.
func Lookup(id string) (Sport, bool) {
	id = strings.TrimSpace(id)
	for _, s := range Config() {
		if s.ID == id {
			return s, true
		}
	}

	return Sport{}, false
}

// ApplyInactive returns a copy of sports with standings switched off for the
// listed ids. Unknown ids are ignored; overall cannot be disabled.
func ApplyInactive(sports []Sport, inactiveIDs []string) []Sport {
	inactive := make(map[string]struct{}, len(inactiveIDs))
	for _, id := range inactiveIDs {
		id = strings.TrimSpace(id)
		if id == "" || id == Overall {
			continue
		}
		inactive[id] = struct{}{}
	}

	out := make([]Sport, 0, len(sports))
	for _, s := range sports {
		if _, ok := inactive[s.ID]; ok {
			s.StandingsActive = false
		}
		out = append(out, s)
	}

	return out
}

func IsValid(id string) bool {
	_, ok := Lookup(id)
	return ok
}

// IsTracked reports whether id names a real sport (never overall).
func IsTracked(id string) bool {
	s, ok := Lookup(id)
	return ok && s.ID != Overall
}
