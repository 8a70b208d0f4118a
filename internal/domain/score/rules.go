package score

// Football point weights. Admin entry for football records achievements, not
// raw points; the point fields are derived from these weights. Non-football
// sports bypass the rules and use raw point fields directly.
const (
	pointsPerWin               = 5
	pointsRegularSeasonChamp   = 10
	pointsConferenceChampion   = 10
	pointsCFPAppearance        = 5
	pointsBowlWin              = 5
	pointsPerCFPWin            = 15
	pointsCFPSemiFinalWin      = 20
	pointsCFPNationalChampions = 30
)

// FootballAchievements are the raw achievement flags and counts an admin
// records for a football team.
type FootballAchievements struct {
	Wins                  int
	RegularSeasonChampion bool
	ConferenceChampion    bool
	CFPAppearance         bool
	BowlWin               bool
	CFPWins               int
	CFPSemiFinalWin       bool
	CFPChampion           bool
}

// RegularSeasonPoints maps regular-season achievements to points.
func (a FootballAchievements) RegularSeasonPoints() int {
	points := a.Wins * pointsPerWin
	if a.RegularSeasonChampion {
		points += pointsRegularSeasonChamp
	}

	return points
}

// PostseasonPoints maps postseason achievements to points.
func (a FootballAchievements) PostseasonPoints() int {
	points := a.CFPWins * pointsPerCFPWin
	if a.ConferenceChampion {
		points += pointsConferenceChampion
	}
	if a.CFPAppearance {
		points += pointsCFPAppearance
	}
	if a.BowlWin {
		points += pointsBowlWin
	}
	if a.CFPSemiFinalWin {
		points += pointsCFPSemiFinalWin
	}
	if a.CFPChampion {
		points += pointsCFPNationalChampions
	}

	return points
}
