package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/seriea-gateway/internal/domain/naturalkey"
	"github.com/riskibarqy/seriea-gateway/internal/platform/logging"
)

type WarmupTaskResult struct {
	Club       string
	Status     string
	Message    string
	DurationMs int64
}

type WarmupResult struct {
	Tasks        []WarmupTaskResult
	SuccessCount int
	FailedCount  int
}

const (
	warmupStatusSuccess = "success"
	warmupStatusFailed  = "failed"
)

// WarmupService populates the store for a list of clubs ahead of traffic.
type WarmupService struct {
	clubs   *ClubService
	players *PlayerService
	workers int
	logger  *logging.Logger
}

func NewWarmupService(clubs *ClubService, players *PlayerService, workers int, logger *logging.Logger) *WarmupService {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &WarmupService{clubs: clubs, players: players, workers: workers, logger: logger}
}

// Run warms every club in parallel. Individual failures are reported in the
// result and never abort the run.
func (s *WarmupService) Run(ctx context.Context, clubs []string) (WarmupResult, error) {
	targets := dedupeClubs(clubs)
	if len(targets) == 0 {
		return WarmupResult{}, nil
	}

	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return WarmupResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	results := make(chan WarmupTaskResult, len(targets))
	var workers sync.WaitGroup
	for _, club := range targets {
		club := club
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			results <- s.warmClub(ctx, club)
		}); err != nil {
			workers.Done()
			return WarmupResult{}, fmt.Errorf("submit warmup task: %w", err)
		}
	}

	workers.Wait()
	close(results)

	var out WarmupResult
	for row := range results {
		out.Tasks = append(out.Tasks, row)
		if row.Status == warmupStatusSuccess {
			out.SuccessCount++
		} else {
			out.FailedCount++
		}
	}
	sort.Slice(out.Tasks, func(i, j int) bool { return out.Tasks[i].Club < out.Tasks[j].Club })

	s.logger.InfoContext(ctx, "warmup finished", "clubs", len(targets), "success", out.SuccessCount, "failed", out.FailedCount)
	return out, nil
}

func (s *WarmupService) warmClub(ctx context.Context, club string) WarmupTaskResult {
	start := time.Now()
	row := WarmupTaskResult{Club: club, Status: warmupStatusSuccess}

	err := func() error {
		if _, err := s.clubs.GetClub(ctx, club); err != nil {
			return err
		}
		if _, err := s.clubs.GetClubStats(ctx, club); err != nil {
			return err
		}
		if s.players != nil {
			if _, err := s.players.ListPlayers(ctx, club); err != nil {
				return err
			}
		}
		return nil
	}()
	if err != nil {
		row.Status = warmupStatusFailed
		row.Message = err.Error()
		s.logger.WarnContext(ctx, "warmup club failed", "club", club, "error", err)
	}

	row.DurationMs = time.Since(start).Milliseconds()
	return row
}

func dedupeClubs(clubs []string) []string {
	seen := make(map[string]struct{}, len(clubs))
	out := make([]string, 0, len(clubs))
	for _, club := range clubs {
		key := naturalkey.Key(club)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, strings.Join(strings.Fields(club), " "))
	}
	return out
}
