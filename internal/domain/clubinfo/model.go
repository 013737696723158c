package clubinfo

import (
	"errors"
	"fmt"
	"time"

	"github.com/riskibarqy/seriea-gateway/internal/domain/naturalkey"
)

// ErrKeyTaken is returned by repositories when a write would give two clubs
// the same name key.
var ErrKeyTaken = errors.New("club name key already taken")

// ClubInfo is the stored profile of a club, keyed by its name.
type ClubInfo struct {
	ID        int64
	ClubID    int64
	Country   string
	League    string
	Name      string
	Venue     string
	Capacity  int
	Founded   int
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c ClubInfo) Key() string {
	return naturalkey.Key(c.Name)
}

func (c ClubInfo) Validate() error {
	if naturalkey.IsBlank(c.Name) {
		return fmt.Errorf("club name is required")
	}
	if c.Capacity < 0 {
		return fmt.Errorf("club venue capacity must not be negative")
	}
	return nil
}

// Update is a partial change to a ClubInfo. Nil fields are left untouched.
type Update struct {
	League   *string
	Name     *string
	Venue    *string
	Capacity *int
}

func (u Update) IsEmpty() bool {
	return u.League == nil && u.Name == nil && u.Venue == nil && u.Capacity == nil
}

// Apply returns a copy of c with u applied.
func (c ClubInfo) Apply(u Update) ClubInfo {
	if u.League != nil {
		c.League = *u.League
	}
	if u.Name != nil {
		c.Name = *u.Name
	}
	if u.Venue != nil {
		c.Venue = *u.Venue
	}
	if u.Capacity != nil {
		c.Capacity = *u.Capacity
	}
	return c
}
