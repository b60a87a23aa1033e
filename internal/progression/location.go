package progression

const (
	FirstLocationID = 1
	LastLocationID  = 8
)

// Location is a place on the adventure map.
type Location struct {
	Name          string
	Emoji         string
	Description   string
	ID            int
	RequiredLevel int
}

// LocationStatus describes a location from the character's point of view.
type LocationStatus int

const (
	Locked LocationStatus = iota
	Available
	Visited
)

func (s LocationStatus) String() string {
	switch s {
	case Visited:
		return "Visited"
	case Available:
		return "Available"
	default:
		return "Locked"
	}
}

var locations = []Location{
	{ID: 1, RequiredLevel: 1, Emoji: "🏘️", Name: "Konoha Village", Description: "Where every ninja journey begins"},
	{ID: 2, RequiredLevel: 5, Emoji: "🌲", Name: "Forest of Death", Description: "Survival training grounds"},
	{ID: 3, RequiredLevel: 10, Emoji: "⛰️", Name: "Mount Myoboku", Description: "Home of the wise toads"},
	{ID: 4, RequiredLevel: 15, Emoji: "🏜️", Name: "Suna Village", Description: "The village hidden in the sand"},
	{ID: 5, RequiredLevel: 20, Emoji: "🏝️", Name: "Turtle Island", Description: "Where the Rasengan is perfected"},
	{ID: 6, RequiredLevel: 25, Emoji: "☁️", Name: "Kumo Village", Description: "The village above the clouds"},
	{ID: 7, RequiredLevel: 30, Emoji: "⚡", Name: "Valley of the End", Description: "Site of a legendary battle"},
	{ID: 8, RequiredLevel: 40, Emoji: "🌙", Name: "Sage Mode Moon", Description: "The highest realm of chakra"},
}

// Locations returns the map catalog ordered by required level.
func Locations() []Location {
	l := make([]Location, len(locations))
	copy(l, locations)

	return l
}

// LocationByID returns the catalog entry with the given ID.
func LocationByID(id int) (Location, bool) {
	for _, l := range locations {
		if l.ID == id {
			return l, true
		}
	}

	return Location{}, false
}

// ValidLocationID reports whether id belongs to the catalog.
func ValidLocationID(id int) bool {
	return id >= FirstLocationID && id <= LastLocationID
}

// StatusOf reports whether the location has been visited, is within reach of
// the character's level, or is still locked.
func (s State) StatusOf(l Location) LocationStatus {
	switch {
	case s.Unlocked(l.ID):
		return Visited
	case s.Level >= l.RequiredLevel:
		return Available
	default:
		return Locked
	}
}
