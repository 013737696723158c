package postgres

import (
	"fmt"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/seriea-gateway/internal/domain/clubstats"
)

const clubStatsTable = "club_stats_overviews"

type clubStatsTableModel struct {
	ID        int64     `db:"id"`
	NameKey   string    `db:"name_key"`
	League    string    `db:"league"`
	Season    string    `db:"season"`
	Name      string    `db:"name"`
	Country   string    `db:"country"`
	Stats     []byte    `db:"stats"`
	CreatedAt time.Time `db:"created_at"`
}

type clubStatsInsertModel struct {
	NameKey string `db:"name_key"`
	League  string `db:"league"`
	Season  string `db:"season"`
	Name    string `db:"name"`
	Country string `db:"country"`
	Stats   []byte `db:"stats"`
}

// clubStatsDocument is the JSONB layout of the stats column.
type clubStatsDocument struct {
	Points      int    `json:"points"`
	Formation   string `json:"formation"`
	Played      int    `json:"played"`
	HomeGoals   int    `json:"home_goals"`
	AwayGoals   int    `json:"away_goals"`
	CleanSheets int    `json:"clean_sheets"`
	Wins        int    `json:"wins"`
	Draws       int    `json:"draws"`
	Losses      int    `json:"losses"`
	Form        string `json:"form"`
}

func toClubStatsInsertModel(item clubstats.Overview) (clubStatsInsertModel, error) {
	stats, err := sonic.Marshal(clubStatsDocument(item.Stats))
	if err != nil {
		return clubStatsInsertModel{}, fmt.Errorf("encode club stats: %w", err)
	}
	return clubStatsInsertModel{
		NameKey: item.Key(),
		League:  item.League,
		Season:  item.Season,
		Name:    item.Name,
		Country: item.Country,
		Stats:   stats,
	}, nil
}

func (m clubStatsTableModel) toDomain() (clubstats.Overview, error) {
	var doc clubStatsDocument
	if len(m.Stats) > 0 {
		if err := sonic.Unmarshal(m.Stats, &doc); err != nil {
			return clubstats.Overview{}, fmt.Errorf("decode club stats id=%d: %w", m.ID, err)
		}
	}
	return clubstats.Overview{
		ID:        m.ID,
		League:    m.League,
		Season:    m.Season,
		Name:      m.Name,
		Country:   m.Country,
		Stats:     clubstats.Stats(doc),
		CreatedAt: m.CreatedAt,
	}, nil
}
