package score

import (
	"fmt"
	"strings"

	"github.com/vats-app/vats-api/internal/domain/sport"
)

// TeamScore is the authoritative, admin-entered scoring for one team in one
// sport, keyed by (teamID, sport). It supersedes any point values embedded in
// a user's selection snapshot.
type TeamScore struct {
	TeamID              string
	Sport               string
	SchoolName          string
	Conference          string
	RegularSeasonPoints int
	PostseasonPoints    int
}

// TotalPoints is the team's combined score for the season.
func (s TeamScore) TotalPoints() int {
	return s.RegularSeasonPoints + s.PostseasonPoints
}

func (s TeamScore) Validate() error {
	if strings.TrimSpace(s.TeamID) == "" {
		return fmt.Errorf("team score team id is required")
	}
	if !sport.IsTracked(s.Sport) {
		return fmt.Errorf("team score sport %q is not a tracked sport", s.Sport)
	}

	return nil
}
