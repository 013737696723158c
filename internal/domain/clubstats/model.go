package clubstats

import (
	"time"

	"github.com/riskibarqy/seriea-gateway/internal/domain/naturalkey"
)

// Stats is the season summary block of a club.
type Stats struct {
	Points      int
	Formation   string
	Played      int
	HomeGoals   int
	AwayGoals   int
	CleanSheets int
	Wins        int
	Draws       int
	Losses      int
	Form        string
}

// Overview is one club's season stats. Points is derived once when the record
// is built and is not recomputed on read.
type Overview struct {
	ID        int64
	League    string
	Season    string
	Name      string
	Country   string
	Stats     Stats
	CreatedAt time.Time
}

func (o Overview) Key() string {
	return naturalkey.Key(o.Name)
}

// Points awards three per win and one per draw.
func Points(wins, draws int) int {
	return 3*wins + draws
}
