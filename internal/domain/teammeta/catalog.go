package teammeta

import "strings"

// Team is the static metadata carried for one school.
type Team struct {
	ID         string
	SchoolName string
	Conference string
}

// Catalog is a read-only lookup of static team metadata. It exists to
// backfill school/conference data missing from selection snapshots and score
// records; it is never authoritative for points.
type Catalog struct {
	byID     map[string]Team
	bySchool map[string]Team
}

func NewCatalog(teams []Team) *Catalog {
	c := &Catalog{
		byID:     make(map[string]Team, len(teams)),
		bySchool: make(map[string]Team, len(teams)),
	}
	for _, t := range teams {
		if t.ID != "" {
			c.byID[t.ID] = t
		}
		if key := schoolKey(t.SchoolName); key != "" {
			c.bySchool[key] = t
		}
	}

	return c
}

func (c *Catalog) ByID(teamID string) (Team, bool) {
	t, ok := c.byID[teamID]
	return t, ok
}

// BySchoolName is a legacy compatibility path for records predating team ids.
// Matching is case-insensitive and best-effort, never authoritative.
func (c *Catalog) BySchoolName(schoolName string) (Team, bool) {
	t, ok := c.bySchool[schoolKey(schoolName)]
	return t, ok
}

func (c *Catalog) Len() int {
	return len(c.byID)
}

func schoolKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
