package postgres

import (
	"fmt"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/seriea-gateway/internal/domain/playerstats"
)

const playerStatsTable = "player_stats"

type playerStatsTableModel struct {
	ID           int64     `db:"id"`
	TeamKey      string    `db:"team_key"`
	FirstNameKey string    `db:"first_name_key"`
	PlayerID     int64     `db:"player_id"`
	TeamName     string    `db:"team_name"`
	League       string    `db:"league"`
	Player       []byte    `db:"player"`
	Stats        []byte    `db:"stats"`
	CreatedAt    time.Time `db:"created_at"`
}

type playerIdentityDocument struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Age         int    `json:"age"`
	Nationality string `json:"nationality"`
	Height      string `json:"height"`
}

type playerPerformanceDocument struct {
	Appearances int `json:"appearances"`
	Shots       struct {
		Total int `json:"total"`
		On    int `json:"on"`
	} `json:"shots"`
	Goals struct {
		Total    int `json:"total"`
		Conceded int `json:"conceded"`
		Assists  int `json:"assists"`
		Saves    int `json:"saves"`
	} `json:"goals"`
	Passes struct {
		Total    int `json:"total"`
		Key      int `json:"key"`
		Accuracy int `json:"accuracy"`
	} `json:"passes"`
	Tackles struct {
		Total         int `json:"total"`
		Blocks        int `json:"blocks"`
		Interceptions int `json:"interceptions"`
	} `json:"tackles"`
	Dribbles struct {
		Attempts int `json:"attempts"`
		Success  int `json:"success"`
		Past     int `json:"past"`
	} `json:"dribbles"`
	Cards struct {
		Yellow    int `json:"yellow"`
		YellowRed int `json:"yellowred"`
		Red       int `json:"red"`
	} `json:"cards"`
	Penalty struct {
		Won       int `json:"won"`
		Committed int `json:"committed"`
		Scored    int `json:"scored"`
		Missed    int `json:"missed"`
		Saved     int `json:"saved"`
	} `json:"penalty"`
}

func performanceDocument(p playerstats.Performance) playerPerformanceDocument {
	var doc playerPerformanceDocument
	doc.Appearances = p.Appearances
	doc.Shots.Total, doc.Shots.On = p.Shots.Total, p.Shots.On
	doc.Goals.Total, doc.Goals.Conceded, doc.Goals.Assists, doc.Goals.Saves = p.Goals.Total, p.Goals.Conceded, p.Goals.Assists, p.Goals.Saves
	doc.Passes.Total, doc.Passes.Key, doc.Passes.Accuracy = p.Passes.Total, p.Passes.Key, p.Passes.Accuracy
	doc.Tackles.Total, doc.Tackles.Blocks, doc.Tackles.Interceptions = p.Tackles.Total, p.Tackles.Blocks, p.Tackles.Interceptions
	doc.Dribbles.Attempts, doc.Dribbles.Success, doc.Dribbles.Past = p.Dribbles.Attempts, p.Dribbles.Success, p.Dribbles.Past
	doc.Cards.Yellow, doc.Cards.YellowRed, doc.Cards.Red = p.Cards.Yellow, p.Cards.YellowRed, p.Cards.Red
	doc.Penalty.Won, doc.Penalty.Committed, doc.Penalty.Scored, doc.Penalty.Missed, doc.Penalty.Saved =
		p.Penalty.Won, p.Penalty.Committed, p.Penalty.Scored, p.Penalty.Missed, p.Penalty.Saved
	return doc
}

func (d playerPerformanceDocument) toDomain() playerstats.Performance {
	return playerstats.Performance{
		Appearances: d.Appearances,
		Shots:       playerstats.Shots(d.Shots),
		Goals:       playerstats.Goals(d.Goals),
		Passes:      playerstats.Passes(d.Passes),
		Tackles:     playerstats.Tackles(d.Tackles),
		Dribbles:    playerstats.Dribbles(d.Dribbles),
		Cards:       playerstats.Cards(d.Cards),
		Penalty:     playerstats.Penalty(d.Penalty),
	}
}

func toPlayerStatsRow(item playerstats.PlayerStats) ([]any, error) {
	player, err := sonic.Marshal(playerIdentityDocument(item.Player))
	if err != nil {
		return nil, fmt.Errorf("encode player identity: %w", err)
	}
	stats, err := sonic.Marshal(performanceDocument(item.Stats))
	if err != nil {
		return nil, fmt.Errorf("encode player stats: %w", err)
	}
	return []any{item.TeamKey(), item.FirstNameKey(), item.PlayerID, item.TeamName, item.League, player, stats}, nil
}

var playerStatsInsertColumns = []string{"team_key", "first_name_key", "player_id", "team_name", "league", "player", "stats"}

func (m playerStatsTableModel) toDomain() (playerstats.PlayerStats, error) {
	var identity playerIdentityDocument
	if err := sonic.Unmarshal(m.Player, &identity); err != nil {
		return playerstats.PlayerStats{}, fmt.Errorf("decode player identity id=%d: %w", m.ID, err)
	}
	var perf playerPerformanceDocument
	if err := sonic.Unmarshal(m.Stats, &perf); err != nil {
		return playerstats.PlayerStats{}, fmt.Errorf("decode player stats id=%d: %w", m.ID, err)
	}
	return playerstats.PlayerStats{
		ID:        m.ID,
		PlayerID:  m.PlayerID,
		TeamName:  m.TeamName,
		League:    m.League,
		Player:    playerstats.Identity(identity),
		Stats:     perf.toDomain(),
		CreatedAt: m.CreatedAt,
	}, nil
}
