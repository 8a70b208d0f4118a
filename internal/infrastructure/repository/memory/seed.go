package memory

import (
	"github.com/vats-app/vats-api/internal/domain/roster"
	"github.com/vats-app/vats-api/internal/domain/score"
	"github.com/vats-app/vats-api/internal/domain/sport"
	"github.com/vats-app/vats-api/internal/domain/user"
)

// Seed data for the memory backend. Small on purpose: enough teams and
// picks to render every sport's leaderboard locally.

func SeedUsers() []user.User {
	return []user.User{
		{ID: "user-001", Username: "tide4life", Name: "Avery Jones"},
		{ID: "user-002", Username: "buckeye-fan", Name: "Sam Carter"},
		{ID: "user-003", Username: "blueblood", Name: ""},
		{ID: "user-004", Username: "", Name: ""},
	}
}

func SeedScores() []score.TeamScore {
	return []score.TeamScore{
		{TeamID: "alabama", Sport: sport.Football, SchoolName: "Alabama", Conference: "SEC", RegularSeasonPoints: 55, PostseasonPoints: 10},
		{TeamID: "ohio-state", Sport: sport.Football, SchoolName: "Ohio State", Conference: "Big Ten", RegularSeasonPoints: 60, PostseasonPoints: 80},
		{TeamID: "georgia", Sport: sport.Football, SchoolName: "Georgia", Conference: "SEC", RegularSeasonPoints: 50, PostseasonPoints: 5},
		{TeamID: "michigan", Sport: sport.Football, SchoolName: "Michigan", Conference: "Big Ten", RegularSeasonPoints: 45, PostseasonPoints: 0},
		{TeamID: "kansas", Sport: sport.MensBasketball, SchoolName: "Kansas", Conference: "Big 12", RegularSeasonPoints: 70, PostseasonPoints: 30},
		{TeamID: "duke", Sport: sport.MensBasketball, SchoolName: "Duke", Conference: "ACC", RegularSeasonPoints: 65, PostseasonPoints: 45},
		{TeamID: "south-carolina", Sport: sport.WomensBasketball, SchoolName: "South Carolina", Conference: "SEC", RegularSeasonPoints: 80, PostseasonPoints: 60},
		{TeamID: "iowa", Sport: sport.WomensBasketball, SchoolName: "Iowa", Conference: "Big Ten", RegularSeasonPoints: 75, PostseasonPoints: 40},
		{TeamID: "lsu", Sport: sport.Baseball, SchoolName: "LSU", Conference: "SEC", RegularSeasonPoints: 60, PostseasonPoints: 55},
		{TeamID: "oklahoma", Sport: sport.Softball, SchoolName: "Oklahoma", Conference: "SEC", RegularSeasonPoints: 85, PostseasonPoints: 70},
	}
}

func SeedSelections() []roster.Selection {
	return []roster.Selection{
		{
			UserID: "user-001",
			Picks: []roster.Pick{
				{TeamID: "alabama", Sport: sport.Football, SchoolName: "Alabama", Conference: "SEC"},
				{TeamID: "georgia", Sport: sport.Football, SchoolName: "Georgia", Conference: "SEC"},
				{TeamID: "kansas", Sport: sport.MensBasketball, SchoolName: "Kansas", Conference: "Big 12"},
				{TeamID: "south-carolina", Sport: sport.WomensBasketball, SchoolName: "South Carolina", Conference: "SEC"},
				{TeamID: "lsu", Sport: sport.Baseball, SchoolName: "LSU", Conference: "SEC"},
			},
			PerkAdjustments: map[string]int{sport.Football: 5},
		},
		{
			UserID: "user-002",
			Picks: []roster.Pick{
				{TeamID: "ohio-state", Sport: sport.Football, SchoolName: "Ohio State", Conference: "Big Ten"},
				{TeamID: "michigan", Sport: sport.Football, SchoolName: "Michigan", Conference: "Big Ten"},
				{TeamID: "duke", Sport: sport.MensBasketball, SchoolName: "Duke", Conference: "ACC"},
				{TeamID: "oklahoma", Sport: sport.Softball, SchoolName: "Oklahoma", Conference: "SEC"},
			},
		},
		{
			UserID: "user-003",
			Picks: []roster.Pick{
				{TeamID: "iowa", Sport: sport.WomensBasketball, SchoolName: "Iowa", Conference: "Big Ten"},
			},
			PerkAdjustments: map[string]int{sport.WomensBasketball: -5},
		},
	}
}
