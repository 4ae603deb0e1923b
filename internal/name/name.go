// Package name generates random container names.
package name

import (
	"math/rand"
)

var adjectives = []string{
	"bold", "brave", "bright", "calm", "clever",
	"cool", "eager", "fair", "fast", "fierce",
	"fluffy", "gentle", "happy", "jolly", "keen",
	"kind", "lively", "lucky", "merry", "mighty",
	"noble", "proud", "quick", "quiet", "sharp",
	"silly", "sleek", "smart", "snappy", "speedy",
	"steady", "swift", "tender", "tough", "vivid",
	"warm", "wild", "wise", "witty", "zany",
	"zen", "zesty", "agile", "alert", "daring",
}

var animals = []string{
	"badger", "bear", "beaver", "bison", "cat",
	"cheetah", "coyote", "crane", "crow", "deer",
	"dolphin", "dove", "eagle", "falcon", "ferret",
	"finch", "fox", "gopher", "hawk", "heron",
	"jaguar", "koala", "lemur", "lion", "lynx",
	"meerkat", "moose", "narwhal", "octopus", "otter",
	"owl", "panda", "penguin", "puma", "quail",
	"rabbit", "raven", "salmon", "seal", "sparrow",
	"squid", "swan", "tiger", "turtle", "walrus",
	"whale", "wolf", "wombat", "yak", "viper",
}

// Generate returns a random name in adjective-animal format.
func Generate() string {
	adj := adjectives[rand.Intn(len(adjectives))]
	animal := animals[rand.Intn(len(animals))]
	return adj + "-" + animal
}
