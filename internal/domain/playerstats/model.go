package playerstats

import (
	"time"

	"github.com/riskibarqy/seriea-gateway/internal/domain/naturalkey"
)

type Identity struct {
	FirstName   string
	LastName    string
	Age         int
	Nationality string
	Height      string
}

type Shots struct {
	Total int
	On    int
}

type Goals struct {
	Total    int
	Conceded int
	Assists  int
	Saves    int
}

type Passes struct {
	Total    int
	Key      int
	Accuracy int
}

type Tackles struct {
	Total         int
	Blocks        int
	Interceptions int
}

type Dribbles struct {
	Attempts int
	Success  int
	Past     int
}

type Cards struct {
	Yellow    int
	YellowRed int
	Red       int
}

type Penalty struct {
	Won       int
	Committed int
	Scored    int
	Missed    int
	Saved     int
}

// Performance is a player's season counters for one team.
type Performance struct {
	Appearances int
	Shots       Shots
	Goals       Goals
	Passes      Passes
	Tackles     Tackles
	Dribbles    Dribbles
	Cards       Cards
	Penalty     Penalty
}

// PlayerStats is one player's season line, grouped under TeamName.
type PlayerStats struct {
	ID        int64
	PlayerID  int64
	TeamName  string
	League    string
	Player    Identity
	Stats     Performance
	CreatedAt time.Time
}

func (p PlayerStats) TeamKey() string {
	return naturalkey.Key(p.TeamName)
}

func (p PlayerStats) FirstNameKey() string {
	return naturalkey.Key(p.Player.FirstName)
}
