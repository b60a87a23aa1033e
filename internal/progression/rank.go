package progression

// Rank is the title a character holds from MinLevel upwards.
type Rank struct {
	Title    string
	Emoji    string
	MinLevel int
}

func (r Rank) String() string {
	return r.Emoji + " " + r.Title
}

// ranks is ordered by MinLevel.
var ranks = []Rank{
	{MinLevel: 1, Title: "Genin", Emoji: "🥷"},
	{MinLevel: 5, Title: "Chunin", Emoji: "🧑‍🎓"},
	{MinLevel: 10, Title: "Jonin", Emoji: "👤"},
	{MinLevel: 20, Title: "ANBU", Emoji: "🎭"},
	{MinLevel: 30, Title: "Kage", Emoji: "🔥"},
	{MinLevel: 50, Title: "Hokage", Emoji: "🌟"},
}

// RankFor returns the highest rank whose minimum level has been reached.
func RankFor(level int) Rank {
	r := ranks[0]

	for _, v := range ranks {
		if level >= v.MinLevel {
			r = v
		}
	}

	return r
}
