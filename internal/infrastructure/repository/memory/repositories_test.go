package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/seriea-gateway/internal/domain/clubinfo"
	"github.com/riskibarqy/seriea-gateway/internal/domain/clubstats"
	"github.com/riskibarqy/seriea-gateway/internal/domain/playerstats"
)

func TestClubInfoRepository_InsertIsFirstWriterWins(t *testing.T) {
	ctx := context.Background()
	repo := NewClubInfoRepository()

	inserted, err := repo.Insert(ctx, clubinfo.ClubInfo{Name: "Napoli", Venue: "Maradona"})
	if err != nil || !inserted {
		t.Fatalf("first insert: inserted=%v err=%v", inserted, err)
	}
	inserted, err = repo.Insert(ctx, clubinfo.ClubInfo{Name: "NAPOLI", Venue: "Other"})
	if err != nil || inserted {
		t.Fatalf("second insert: inserted=%v err=%v", inserted, err)
	}

	got, ok, err := repo.GetByKey(ctx, "napoli")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got.Venue != "Maradona" || got.ID != 1 {
		t.Fatalf("unexpected stored club: %+v", got)
	}
}

func TestClubInfoRepository_UpsertKeepsIdentity(t *testing.T) {
	ctx := context.Background()
	repo := NewClubInfoRepository()

	if err := repo.Upsert(ctx, clubinfo.ClubInfo{Name: "Roma", Capacity: 10}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := repo.Upsert(ctx, clubinfo.ClubInfo{Name: "Roma", Capacity: 70634}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, _, _ := repo.GetByKey(ctx, "roma")
	if got.ID != 1 || got.Capacity != 70634 {
		t.Fatalf("unexpected club after upsert: %+v", got)
	}
}

func TestClubInfoRepository_UpdateRename(t *testing.T) {
	ctx := context.Background()
	repo := NewClubInfoRepository()
	_, _ = repo.Insert(ctx, clubinfo.ClubInfo{Name: "Inter", ClubID: 505})
	_, _ = repo.Insert(ctx, clubinfo.ClubInfo{Name: "Milan", ClubID: 489})

	t.Run("rename moves key", func(t *testing.T) {
		ok, err := repo.Update(ctx, "inter", clubinfo.ClubInfo{Name: "Internazionale", Capacity: 75817})
		if err != nil || !ok {
			t.Fatalf("update: ok=%v err=%v", ok, err)
		}
		if _, found, _ := repo.GetByKey(ctx, "inter"); found {
			t.Fatalf("old key must be gone")
		}
		got, found, _ := repo.GetByKey(ctx, "internazionale")
		if !found || got.ClubID != 505 || got.Capacity != 75817 {
			t.Fatalf("unexpected renamed club: %+v", got)
		}
	})

	t.Run("rename onto taken key", func(t *testing.T) {
		_, err := repo.Update(ctx, "internazionale", clubinfo.ClubInfo{Name: "Milan"})
		if !errors.Is(err, clubinfo.ErrKeyTaken) {
			t.Fatalf("expected ErrKeyTaken, got %v", err)
		}
	})

	t.Run("missing key", func(t *testing.T) {
		ok, err := repo.Update(ctx, "juventus", clubinfo.ClubInfo{Name: "Juventus"})
		if err != nil || ok {
			t.Fatalf("expected no-op, got ok=%v err=%v", ok, err)
		}
	})
}

func TestClubStatsRepository_Insert(t *testing.T) {
	ctx := context.Background()
	repo := NewClubStatsRepository()

	first, _ := repo.Insert(ctx, clubstats.Overview{Name: "Lazio", Stats: clubstats.Stats{Points: 74}})
	second, _ := repo.Insert(ctx, clubstats.Overview{Name: "lazio", Stats: clubstats.Stats{Points: 1}})
	if !first || second {
		t.Fatalf("expected first insert only, got first=%v second=%v", first, second)
	}

	got, ok, _ := repo.GetByKey(ctx, "lazio")
	if !ok || got.Stats.Points != 74 {
		t.Fatalf("unexpected stats: %+v", got)
	}
}

func TestPlayerStatsRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewPlayerStatsRepository()

	player := func(id int64, team, first string) playerstats.PlayerStats {
		return playerstats.PlayerStats{PlayerID: id, TeamName: team, Player: playerstats.Identity{FirstName: first}}
	}

	n, err := repo.InsertMany(ctx, []playerstats.PlayerStats{
		player(1, "Napoli", "Victor"),
		player(2, "Napoli", "Khvicha"),
		player(1, "Napoli", "Victor"),
		player(3, "Roma", "Paulo"),
	})
	if err != nil || n != 3 {
		t.Fatalf("insert many: n=%d err=%v", n, err)
	}

	n, _ = repo.InsertMany(ctx, []playerstats.PlayerStats{player(2, "NAPOLI", "Khvicha"), player(4, "Roma", "Victor")})
	if n != 1 {
		t.Fatalf("expected one new row, got %d", n)
	}

	napoli, _ := repo.ListByTeamKey(ctx, "napoli")
	if len(napoli) != 2 || napoli[0].PlayerID != 1 || napoli[1].PlayerID != 2 {
		t.Fatalf("unexpected napoli roster: %+v", napoli)
	}

	deleted, ok, err := repo.DeleteOneByFirstNameKey(ctx, "victor")
	if err != nil || !ok {
		t.Fatalf("delete: ok=%v err=%v", ok, err)
	}
	if deleted.TeamName != "Napoli" {
		t.Fatalf("expected oldest match removed, got %+v", deleted)
	}

	roma, _ := repo.ListByTeamKey(ctx, "roma")
	if len(roma) != 2 {
		t.Fatalf("expected roma victor untouched, got %+v", roma)
	}

	if _, ok, _ := repo.DeleteOneByFirstNameKey(ctx, "nobody"); ok {
		t.Fatalf("expected no match")
	}
}

func TestClubAliasRepository_SaveAndRepoint(t *testing.T) {
	ctx := context.Background()
	repo := NewClubAliasRepository()

	if _, ok, err := repo.Resolve(ctx, "milan"); err != nil || ok {
		t.Fatalf("expected unknown alias, got ok=%v err=%v", ok, err)
	}
	for alias, target := range map[string]string{"milan": "ac milan", "rossoneri": "ac milan", "inter": "internazionale"} {
		if err := repo.Save(ctx, alias, target); err != nil {
			t.Fatalf("save %q: %v", alias, err)
		}
	}

	moved, err := repo.Repoint(ctx, "ac milan", "milan fc")
	if err != nil || moved != 2 {
		t.Fatalf("repoint: moved=%d err=%v", moved, err)
	}
	if got, ok, _ := repo.Resolve(ctx, "rossoneri"); !ok || got != "milan fc" {
		t.Fatalf("expected rossoneri repointed, got %q ok=%v", got, ok)
	}
	if got, _, _ := repo.Resolve(ctx, "inter"); got != "internazionale" {
		t.Fatalf("expected inter untouched, got %q", got)
	}
}
