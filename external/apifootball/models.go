package apifootball

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
)

// Meta is the part of the api-sports envelope shared by every endpoint.
type Meta struct {
	Get        string         `json:"get"`
	Parameters map[string]any `json:"parameters"`
	Errors     ProviderErrors `json:"errors"`
	Results    int            `json:"results"`
	Paging     Paging         `json:"paging"`
}

type Paging struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

// ProviderErrors holds the envelope "errors" field. The provider sends an
// empty array when there are none and an object keyed by field otherwise.
type ProviderErrors map[string]string

func (e *ProviderErrors) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*e = nil
		return nil
	}

	if data[0] == '[' {
		var items []any
		if err := sonic.Unmarshal(data, &items); err != nil {
			return err
		}
		out := make(ProviderErrors, len(items))
		for i, item := range items {
			if text, ok := item.(string); ok && text != "" {
				out["error_"+strconv.Itoa(i)] = text
			}
		}
		*e = out
		return nil
	}

	var raw map[string]any
	if err := sonic.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(ProviderErrors, len(raw))
	for key, value := range raw {
		if text, ok := value.(string); ok {
			out[key] = text
			continue
		}
		out[key] = "unexpected error value"
	}
	*e = out
	return nil
}

func (e ProviderErrors) String() string {
	keys := make([]string, 0, len(e))
	for key := range e {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+"="+e[key])
	}
	return strings.Join(parts, "; ")
}

type TeamsEnvelope struct {
	Meta
	Response []TeamItem `json:"response"`
}

type TeamItem struct {
	Team  *Team  `json:"team"`
	Venue *Venue `json:"venue"`
}

type Team struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Code    string `json:"code"`
	Country string `json:"country"`
	Founded Count  `json:"founded"`
	Logo    string `json:"logo"`
}

type Venue struct {
	ID       *int64 `json:"id"`
	Name     string `json:"name"`
	City     string `json:"city"`
	Capacity Count  `json:"capacity"`
}

type StatisticsEnvelope struct {
	Meta
	Response StatisticsResponse `json:"response"`
}

// StatisticsResponse is an object on success and an empty array when the
// provider found nothing.
type StatisticsResponse struct {
	Value *TeamStatistics
}

func (r *StatisticsResponse) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0, bytes.Equal(data, []byte("null")):
		r.Value = nil
		return nil
	case data[0] == '[':
		var items []TeamStatistics
		if err := sonic.Unmarshal(data, &items); err != nil {
			return err
		}
		r.Value = nil
		if len(items) > 0 {
			r.Value = &items[0]
		}
		return nil
	}

	var item TeamStatistics
	if err := sonic.Unmarshal(data, &item); err != nil {
		return err
	}
	r.Value = &item
	return nil
}

type TeamStatistics struct {
	League     *League    `json:"league"`
	Team       *Team      `json:"team"`
	Form       *string    `json:"form"`
	Fixtures   *Fixtures  `json:"fixtures"`
	Goals      *TeamGoals `json:"goals"`
	CleanSheet *Split     `json:"clean_sheet"`
	Lineups    []Lineup   `json:"lineups"`
}

type League struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
	Season  int    `json:"season"`
}

type Split struct {
	Home  Count `json:"home"`
	Away  Count `json:"away"`
	Total Count `json:"total"`
}

type Fixtures struct {
	Played *Split `json:"played"`
	Wins   *Split `json:"wins"`
	Draws  *Split `json:"draws"`
	Loses  *Split `json:"loses"`
}

type TeamGoals struct {
	For     *GoalsBlock `json:"for"`
	Against *GoalsBlock `json:"against"`
}

type GoalsBlock struct {
	Total *Split `json:"total"`
}

type Lineup struct {
	Formation string `json:"formation"`
	Played    int    `json:"played"`
}

type PlayersEnvelope struct {
	Meta
	Response []PlayerItem `json:"response"`
}

type PlayerItem struct {
	Player     *Player           `json:"player"`
	Statistics []PlayerStatistic `json:"statistics"`
}

type Player struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	FirstName   string  `json:"firstname"`
	LastName    string  `json:"lastname"`
	Age         Count   `json:"age"`
	Nationality string  `json:"nationality"`
	Height      *string `json:"height"`
}

type PlayerStatistic struct {
	Team     *Team           `json:"team"`
	League   *League         `json:"league"`
	Games    *PlayerGames    `json:"games"`
	Shots    *PlayerShots    `json:"shots"`
	Goals    *PlayerGoals    `json:"goals"`
	Passes   *PlayerPasses   `json:"passes"`
	Tackles  *PlayerTackles  `json:"tackles"`
	Dribbles *PlayerDribbles `json:"dribbles"`
	Cards    *PlayerCards    `json:"cards"`
	Penalty  *PlayerPenalty  `json:"penalty"`
}

// The provider spells these keys "appearences" and "commited".

type PlayerGames struct {
	Appearances Count `json:"appearences"`
}

type PlayerShots struct {
	Total Count `json:"total"`
	On    Count `json:"on"`
}

type PlayerGoals struct {
	Total    Count `json:"total"`
	Conceded Count `json:"conceded"`
	Assists  Count `json:"assists"`
	Saves    Count `json:"saves"`
}

type PlayerPasses struct {
	Total    Count `json:"total"`
	Key      Count `json:"key"`
	Accuracy Count `json:"accuracy"`
}

type PlayerTackles struct {
	Total         Count `json:"total"`
	Blocks        Count `json:"blocks"`
	Interceptions Count `json:"interceptions"`
}

type PlayerDribbles struct {
	Attempts Count `json:"attempts"`
	Success  Count `json:"success"`
	Past     Count `json:"past"`
}

type PlayerCards struct {
	Yellow    Count `json:"yellow"`
	YellowRed Count `json:"yellowred"`
	Red       Count `json:"red"`
}

type PlayerPenalty struct {
	Won       Count `json:"won"`
	Committed Count `json:"commited"`
	Scored    Count `json:"scored"`
	Missed    Count `json:"missed"`
	Saved     Count `json:"saved"`
}

// Count is a provider counter. null and missing decode to 0; numeric strings
// are accepted.
type Count int

func (c *Count) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*c = 0
		return nil
	}
	if data[0] == '"' {
		var text string
		if err := sonic.Unmarshal(data, &text); err != nil {
			return err
		}
		text = strings.TrimSuffix(strings.TrimSpace(text), "%")
		if text == "" {
			*c = 0
			return nil
		}
		n, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return fmt.Errorf("parse count %q: %w", text, err)
		}
		*c = Count(n)
		return nil
	}

	var n float64
	if err := sonic.Unmarshal(data, &n); err != nil {
		return err
	}
	*c = Count(n)
	return nil
}

func (c Count) Int() int { return int(c) }
