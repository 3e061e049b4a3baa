package usecase

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/lol-fantasy-league/internal/domain/fantasyleague"
	"github.com/riskibarqy/lol-fantasy-league/internal/domain/fantasyteam"
	"github.com/riskibarqy/lol-fantasy-league/internal/platform/logging"
)

const (
	WeekRolloverJobPath = "/v1/internal/jobs/week-rollover"

	rolloverStatusAdvanced  = "advanced"
	rolloverStatusCompleted = "completed"
	rolloverStatusSkipped   = "skipped"
	rolloverStatusFailed    = "failed"

	defaultRolloverWorkers = 4
	maxRolloverWorkers     = 32
)

var dedupUnsafeCharRegex = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

type WeekRolloverConfig struct {
	SeasonWeeks int
	Workers     int
	Interval    time.Duration
}

type WeekRolloverLeagueResult struct {
	LeagueID   string `json:"league_id"`
	FromWeek   int    `json:"from_week"`
	ToWeek     int    `json:"to_week"`
	Rosters    int    `json:"rosters"`
	Status     string `json:"status"`
	Message    string `json:"message,omitempty"`
	DurationMs int64  `json:"duration_ms"`
}

type WeekRolloverResult struct {
	LeagueCount    int                        `json:"league_count"`
	WorkerCount    int                        `json:"worker_count"`
	AdvancedCount  int                        `json:"advanced_count"`
	CompletedCount int                        `json:"completed_count"`
	SkippedCount   int                        `json:"skipped_count"`
	FailedCount    int                        `json:"failed_count"`
	Leagues        []WeekRolloverLeagueResult `json:"leagues"`
}

type ScheduleRolloverResult struct {
	DispatchID string        `json:"dispatch_id"`
	Delay      time.Duration `json:"delay"`
}

// WeekRolloverService moves ACTIVE leagues to their next fantasy week.
type WeekRolloverService struct {
	leagueRepo     fantasyleague.Repository
	membershipRepo fantasyleague.MembershipRepository
	teamRepo       fantasyteam.Repository
	tx             LeagueTransactor
	queue          JobQueue
	cfg            WeekRolloverConfig
	logger         *logging.Logger
	now            func() time.Time
}

func NewWeekRolloverService(
	repos FantasyRepositories,
	tx LeagueTransactor,
	queue JobQueue,
	cfg WeekRolloverConfig,
	logger *logging.Logger,
) *WeekRolloverService {
	if queue == nil {
		queue = NewNoopJobQueue()
	}
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.Interval <= 0 {
		cfg.Interval = 7 * 24 * time.Hour
	}

	return &WeekRolloverService{
		leagueRepo:     repos.Leagues,
		membershipRepo: repos.Memberships,
		teamRepo:       repos.Teams,
		tx:             tx,
		queue:          queue,
		cfg:            cfg,
		logger:         logger,
		now:            time.Now,
	}
}

func (s *WeekRolloverService) AdvanceActiveLeagues(ctx context.Context) (WeekRolloverResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WeekRolloverService.AdvanceActiveLeagues")
	defer span.End()

	leagues, err := s.leagueRepo.ListByStatus(ctx, fantasyleague.StatusActive)
	if err != nil {
		return WeekRolloverResult{}, fmt.Errorf("list active fantasy leagues: %w", err)
	}

	workerCount := normalizeRolloverWorkerCount(s.cfg.Workers, len(leagues))
	result := WeekRolloverResult{
		LeagueCount: len(leagues),
		WorkerCount: workerCount,
		Leagues:     make([]WeekRolloverLeagueResult, 0, len(leagues)),
	}
	if len(leagues) == 0 {
		return result, nil
	}

	results := make(chan WeekRolloverLeagueResult, len(leagues))

	var advancedCount atomic.Int32
	var completedCount atomic.Int32
	var skippedCount atomic.Int32
	var failedCount atomic.Int32

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return WeekRolloverResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for _, league := range leagues {
		leagueID := league.ID
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := s.advanceLeague(ctx, leagueID)
			row.DurationMs = time.Since(start).Milliseconds()

			switch row.Status {
			case rolloverStatusAdvanced:
				advancedCount.Add(1)
			case rolloverStatusCompleted:
				completedCount.Add(1)
			case rolloverStatusSkipped:
				skippedCount.Add(1)
			default:
				failedCount.Add(1)
			}

			results <- row
		}); err != nil {
			workers.Done()
			return WeekRolloverResult{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	for row := range results {
		result.Leagues = append(result.Leagues, row)
	}
	sort.SliceStable(result.Leagues, func(i, j int) bool {
		return result.Leagues[i].LeagueID < result.Leagues[j].LeagueID
	})

	result.AdvancedCount = int(advancedCount.Load())
	result.CompletedCount = int(completedCount.Load())
	result.SkippedCount = int(skippedCount.Load())
	result.FailedCount = int(failedCount.Load())

	s.logger.InfoContext(ctx, "fantasy week rollover finished",
		"league_count", result.LeagueCount,
		"advanced_count", result.AdvancedCount,
		"completed_count", result.CompletedCount,
		"failed_count", result.FailedCount,
	)
	return result, nil
}

func (s *WeekRolloverService) advanceLeague(ctx context.Context, leagueID string) WeekRolloverLeagueResult {
	row := WeekRolloverLeagueResult{LeagueID: leagueID}

	err := s.tx.WithinLeague(ctx, leagueID, func(ctx context.Context) error {
		league, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
		if err != nil {
			return fmt.Errorf("get fantasy league by id: %w", err)
		}
		// The league may have moved on between listing and locking.
		if !exists || league.Status != fantasyleague.StatusActive {
			row.Status = rolloverStatusSkipped
			return nil
		}

		row.FromWeek = league.CurrentWeek
		now := s.now().UTC()
		if s.cfg.SeasonWeeks > 0 && league.CurrentWeek >= s.cfg.SeasonWeeks {
			league.Status = fantasyleague.StatusCompleted
			league.UpdatedAt = now
			if err := s.leagueRepo.Update(ctx, league); err != nil {
				return fmt.Errorf("complete fantasy league: %w", err)
			}
			row.ToWeek = league.CurrentWeek
			row.Status = rolloverStatusCompleted
			return nil
		}

		nextWeek := league.CurrentWeek + 1
		members, err := s.membershipRepo.ListByLeague(ctx, league.ID, fantasyleague.MembershipAccepted)
		if err != nil {
			return fmt.Errorf("list accepted memberships: %w", err)
		}
		for _, member := range members {
			latest, exists, err := s.teamRepo.GetLatest(ctx, league.ID, member.UserID)
			if err != nil {
				return fmt.Errorf("get latest team: %w", err)
			}
			if !exists || latest.Week >= nextWeek {
				continue
			}
			if err := s.teamRepo.Upsert(ctx, latest.CarryForward(nextWeek, now)); err != nil {
				return fmt.Errorf("carry team forward: %w", err)
			}
			row.Rosters++
		}

		league.CurrentWeek = nextWeek
		league.UpdatedAt = now
		if err := s.leagueRepo.Update(ctx, league); err != nil {
			return fmt.Errorf("advance fantasy week: %w", err)
		}
		row.ToWeek = nextWeek
		row.Status = rolloverStatusAdvanced
		return nil
	})
	if err != nil {
		s.logger.WarnContext(ctx, "fantasy week rollover failed", "league_id", leagueID, "error", err)
		row.Status = rolloverStatusFailed
		row.Message = err.Error()
		row.Rosters = 0
	}

	return row
}

// ScheduleNext enqueues the next rollover run one interval from now.
func (s *WeekRolloverService) ScheduleNext(ctx context.Context) (ScheduleRolloverResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WeekRolloverService.ScheduleNext")
	defer span.End()

	delay := s.cfg.Interval
	dispatchID := dedupKey("week-rollover", "all", s.now().Add(delay), delay)
	payload := map[string]any{
		"dispatch_id":   dispatchID,
		"schedule_next": true,
	}
	if err := s.queue.Enqueue(ctx, WeekRolloverJobPath, payload, delay, dispatchID); err != nil {
		return ScheduleRolloverResult{}, fmt.Errorf("%w: enqueue week rollover: %v", ErrDependencyUnavailable, err)
	}

	s.logger.InfoContext(ctx, "fantasy week rollover scheduled", "dispatch_id", dispatchID, "delay", delay.String())
	return ScheduleRolloverResult{DispatchID: dispatchID, Delay: delay}, nil
}

func normalizeRolloverWorkerCount(requested, tasks int) int {
	workers := requested
	if workers <= 0 {
		workers = defaultRolloverWorkers
	}
	if workers > maxRolloverWorkers {
		workers = maxRolloverWorkers
	}
	if tasks > 0 && workers > tasks {
		workers = tasks
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}

func dedupKey(prefix, scope string, at time.Time, bucket time.Duration) string {
	if bucket <= 0 {
		bucket = time.Minute
	}
	slot := at.UTC().Truncate(bucket).Format("20060102T150405Z")
	return sanitizeDedupSegment(prefix) + "-" + sanitizeDedupSegment(scope) + "-" + slot
}

func sanitizeDedupSegment(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "unknown"
	}
	return dedupUnsafeCharRegex.ReplaceAllString(value, "-")
}
