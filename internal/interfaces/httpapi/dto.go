package httpapi

import (
	"time"

	"github.com/riskibarqy/seriea-gateway/internal/domain/clubinfo"
	"github.com/riskibarqy/seriea-gateway/internal/domain/clubstats"
	"github.com/riskibarqy/seriea-gateway/internal/domain/playerstats"
)

type clubPathRequest struct {
	Club string `validate:"required,max=100,excludesall=<>\"/\\"`
}

type playerPathRequest struct {
	Player string `validate:"required,max=100,excludesall=<>\"/\\"`
}

type updateClubRequest struct {
	League   *string `json:"league" validate:"omitnil,min=1,max=100"`
	Name     *string `json:"name" validate:"omitnil,min=1,max=100,excludesall=<>"`
	Venue    *string `json:"venue" validate:"omitnil,max=150"`
	Capacity *int    `json:"capacity" validate:"omitnil,min=0,max=500000"`
}

func (r updateClubRequest) toUpdate() clubinfo.Update {
	return clubinfo.Update{
		League:   r.League,
		Name:     r.Name,
		Venue:    r.Venue,
		Capacity: r.Capacity,
	}
}

type clubInfoDTO struct {
	ID        int64     `json:"id"`
	ClubID    int64     `json:"club_id"`
	Country   string    `json:"country"`
	League    string    `json:"league"`
	Name      string    `json:"name"`
	Venue     string    `json:"venue"`
	Capacity  int       `json:"capacity"`
	Founded   int       `json:"founded"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func clubInfoToDTO(item clubinfo.ClubInfo) clubInfoDTO {
	return clubInfoDTO{
		ID:        item.ID,
		ClubID:    item.ClubID,
		Country:   item.Country,
		League:    item.League,
		Name:      item.Name,
		Venue:     item.Venue,
		Capacity:  item.Capacity,
		Founded:   item.Founded,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

type clubStatsDTO struct {
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

type clubStatsOverviewDTO struct {
	ID        int64        `json:"id"`
	League    string       `json:"league"`
	Season    string       `json:"season"`
	Name      string       `json:"name"`
	Country   string       `json:"country"`
	Stats     clubStatsDTO `json:"stats"`
	CreatedAt time.Time    `json:"created_at"`
}

func clubStatsToDTO(item clubstats.Overview) clubStatsOverviewDTO {
	return clubStatsOverviewDTO{
		ID:        item.ID,
		League:    item.League,
		Season:    item.Season,
		Name:      item.Name,
		Country:   item.Country,
		Stats:     clubStatsDTO(item.Stats),
		CreatedAt: item.CreatedAt,
	}
}

type playerIdentityDTO struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Age         int    `json:"age"`
	Nationality string `json:"nationality"`
	Height      string `json:"height"`
}

type shotsDTO struct {
	Total int `json:"total"`
	On    int `json:"on"`
}

type goalsDTO struct {
	Total    int `json:"total"`
	Conceded int `json:"conceded"`
	Assists  int `json:"assists"`
	Saves    int `json:"saves"`
}

type passesDTO struct {
	Total    int `json:"total"`
	Key      int `json:"key"`
	Accuracy int `json:"accuracy"`
}

type tacklesDTO struct {
	Total         int `json:"total"`
	Blocks        int `json:"blocks"`
	Interceptions int `json:"interceptions"`
}

type dribblesDTO struct {
	Attempts int `json:"attempts"`
	Success  int `json:"success"`
	Past     int `json:"past"`
}

type cardsDTO struct {
	Yellow    int `json:"yellow"`
	YellowRed int `json:"yellowred"`
	Red       int `json:"red"`
}

type penaltyDTO struct {
	Won       int `json:"won"`
	Committed int `json:"committed"`
	Scored    int `json:"scored"`
	Missed    int `json:"missed"`
	Saved     int `json:"saved"`
}

type playerPerformanceDTO struct {
	Appearances int         `json:"appearances"`
	Shots       shotsDTO    `json:"shots"`
	Goals       goalsDTO    `json:"goals"`
	Passes      passesDTO   `json:"passes"`
	Tackles     tacklesDTO  `json:"tackles"`
	Dribbles    dribblesDTO `json:"dribbles"`
	Cards       cardsDTO    `json:"cards"`
	Penalty     penaltyDTO  `json:"penalty"`
}

type playerStatsDTO struct {
	ID        int64                `json:"id"`
	PlayerID  int64                `json:"player_id"`
	Name      string               `json:"name"`
	League    string               `json:"league"`
	Player    playerIdentityDTO    `json:"player"`
	Stats     playerPerformanceDTO `json:"stats"`
	CreatedAt time.Time            `json:"created_at"`
}

func playerStatsToDTO(item playerstats.PlayerStats) playerStatsDTO {
	s := item.Stats
	return playerStatsDTO{
		ID:       item.ID,
		PlayerID: item.PlayerID,
		Name:     item.TeamName,
		League:   item.League,
		Player:   playerIdentityDTO(item.Player),
		Stats: playerPerformanceDTO{
			Appearances: s.Appearances,
			Shots:       shotsDTO(s.Shots),
			Goals:       goalsDTO(s.Goals),
			Passes:      passesDTO(s.Passes),
			Tackles:     tacklesDTO(s.Tackles),
			Dribbles:    dribblesDTO(s.Dribbles),
			Cards:       cardsDTO(s.Cards),
			Penalty:     penaltyDTO(s.Penalty),
		},
		CreatedAt: item.CreatedAt,
	}
}

type deletedPlayerDTO struct {
	Message string         `json:"message"`
	Player  playerStatsDTO `json:"player"`
}
