package postgres

import (
	"time"

	"github.com/riskibarqy/seriea-gateway/internal/domain/clubinfo"
)

const clubInfoTable = "club_infos"

type clubInfoTableModel struct {
	ID        int64     `db:"id"`
	NameKey   string    `db:"name_key"`
	ClubID    int64     `db:"club_id"`
	Country   string    `db:"country"`
	League    string    `db:"league"`
	Name      string    `db:"name"`
	Venue     string    `db:"venue"`
	Capacity  int       `db:"capacity"`
	Founded   int       `db:"founded"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type clubInfoInsertModel struct {
	NameKey   string    `db:"name_key"`
	ClubID    int64     `db:"club_id"`
	Country   string    `db:"country"`
	League    string    `db:"league"`
	Name      string    `db:"name"`
	Venue     string    `db:"venue"`
	Capacity  int       `db:"capacity"`
	Founded   int       `db:"founded"`
	UpdatedAt time.Time `db:"updated_at"`
}

func toClubInfoInsertModel(item clubinfo.ClubInfo, now time.Time) clubInfoInsertModel {
	return clubInfoInsertModel{
		NameKey:   item.Key(),
		ClubID:    item.ClubID,
		Country:   item.Country,
		League:    item.League,
		Name:      item.Name,
		Venue:     item.Venue,
		Capacity:  item.Capacity,
		Founded:   item.Founded,
		UpdatedAt: now,
	}
}

func (m clubInfoTableModel) toDomain() clubinfo.ClubInfo {
	return clubinfo.ClubInfo{
		ID:        m.ID,
		ClubID:    m.ClubID,
		Country:   m.Country,
		League:    m.League,
		Name:      m.Name,
		Venue:     m.Venue,
		Capacity:  m.Capacity,
		Founded:   m.Founded,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
