package teammeta

// Default returns the built-in catalog of schools the pick'em tracks.
func Default() *Catalog {
	return NewCatalog([]Team{
		{ID: "alabama", SchoolName: "Alabama", Conference: "SEC"},
		{ID: "georgia", SchoolName: "Georgia", Conference: "SEC"},
		{ID: "lsu", SchoolName: "LSU", Conference: "SEC"},
		{ID: "tennessee", SchoolName: "Tennessee", Conference: "SEC"},
		{ID: "texas", SchoolName: "Texas", Conference: "SEC"},
		{ID: "oklahoma", SchoolName: "Oklahoma", Conference: "SEC"},
		{ID: "ohio-state", SchoolName: "Ohio State", Conference: "Big Ten"},
		{ID: "michigan", SchoolName: "Michigan", Conference: "Big Ten"},
		{ID: "penn-state", SchoolName: "Penn State", Conference: "Big Ten"},
		{ID: "oregon", SchoolName: "Oregon", Conference: "Big Ten"},
		{ID: "usc", SchoolName: "USC", Conference: "Big Ten"},
		{ID: "washington", SchoolName: "Washington", Conference: "Big Ten"},
		{ID: "clemson", SchoolName: "Clemson", Conference: "ACC"},
		{ID: "florida-state", SchoolName: "Florida State", Conference: "ACC"},
		{ID: "miami-fl", SchoolName: "Miami (FL)", Conference: "ACC"},
		{ID: "north-carolina", SchoolName: "North Carolina", Conference: "ACC"},
		{ID: "duke", SchoolName: "Duke", Conference: "ACC"},
		{ID: "kansas", SchoolName: "Kansas", Conference: "Big 12"},
		{ID: "baylor", SchoolName: "Baylor", Conference: "Big 12"},
		{ID: "houston", SchoolName: "Houston", Conference: "Big 12"},
		{ID: "arizona", SchoolName: "Arizona", Conference: "Big 12"},
		{ID: "utah", SchoolName: "Utah", Conference: "Big 12"},
		{ID: "uconn", SchoolName: "UConn", Conference: "Big East"},
		{ID: "villanova", SchoolName: "Villanova", Conference: "Big East"},
		{ID: "gonzaga", SchoolName: "Gonzaga", Conference: "WCC"},
		{ID: "notre-dame", SchoolName: "Notre Dame", Conference: "Independent"},
	})
}
