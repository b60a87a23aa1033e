package tui

import "time"

const quoteInterval = 3 * time.Second

type breakActivity struct {
	emoji string
	text  string
}

var breakQuotes = []string{
	"🧘 'Rest is part of training' - Kakashi",
	"🍃 'Breathe like the wind, calm yet strong' - Asuma",
	"🌸 'True strength comes from a quiet mind' - Sakura",
	"🦊 'Even the Nine-Tails rests to gather chakra' - Naruto",
	"⚡ 'The strongest lightning is born of silence' - Sasuke",
	"🐍 'The strongest snake knows when to stay still' - Orochimaru",
}

var breakActivities = []breakActivity{
	{"🧘", "Meditating in the garden"},
	{"🍃", "Floating a leaf with chakra"},
	{"🥢", "Eating ramen at Ichiraku"},
	{"🌸", "Walking under the cherry blossoms"},
	{"☁️", "Watching the clouds drift by"},
	{"🐸", "Training with the toads"},
}
