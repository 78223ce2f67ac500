package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"cinehub/internal/cache"
	"cinehub/internal/microservices/http-api/repository"
	"cinehub/internal/scoring"
)

type LeaderboardService interface {
	GetLeaderboard(ctx context.Context, filter scoring.LeaderboardFilter) ([]scoring.LeaderboardRow, error)
}

type leaderboardService struct {
	filmRatingRepo    repository.FilmRatingRepository
	seriesRepo        *repository.SeriesRepo
	episodeRatingRepo repository.EpisodeRatingRepository
	seasonRatingRepo  repository.SeasonRatingRepository
	cache             *cache.LeaderboardCache
}

// NewLeaderboardService builds the merged-leaderboard service. cache may
// be nil; the leaderboard then recomputes on every request.
func NewLeaderboardService(
	filmRatingRepo repository.FilmRatingRepository,
	seriesRepo *repository.SeriesRepo,
	episodeRatingRepo repository.EpisodeRatingRepository,
	seasonRatingRepo repository.SeasonRatingRepository,
	lbCache *cache.LeaderboardCache,
) LeaderboardService {
	return &leaderboardService{
		filmRatingRepo:    filmRatingRepo,
		seriesRepo:        seriesRepo,
		episodeRatingRepo: episodeRatingRepo,
		seasonRatingRepo:  seasonRatingRepo,
		cache:             lbCache,
	}
}

// GetLeaderboard merges film, season and series rows under the filter and
// ranks them. Snapshots are cached per filter; any rating write bumps the
// cache version so the next request recomputes from a fresh read.
func (s *leaderboardService) GetLeaderboard(ctx context.Context, filter scoring.LeaderboardFilter) ([]scoring.LeaderboardRow, error) {
	key := filterCacheKey(filter)
	if s.cache != nil {
		if rows, ok := s.cache.Get(ctx, key); ok {
			return rows, nil
		}
	}

	rows, err := s.buildRows(ctx, filter)
	if err != nil {
		return nil, err
	}

	ranked := scoring.AssembleLeaderboard(rows, filter, scoring.DefaultRankPrecision)

	if s.cache != nil {
		s.cache.Set(ctx, key, ranked)
	}
	return ranked, nil
}

func (s *leaderboardService) buildRows(ctx context.Context, filter scoring.LeaderboardFilter) ([]scoring.LeaderboardRow, error) {
	var rows []scoring.LeaderboardRow

	films, err := s.filmRatingRepo.AggregateAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, f := range films {
		row := scoring.LeaderboardRow{
			Kind:    scoring.KindFilm,
			RefID:   f.FilmID,
			Title:   f.Title,
			Score:   f.Average,
			Support: f.Count,
		}
		if f.Franchise != nil {
			row.Franchise = *f.Franchise
		}
		rows = append(rows, row)
	}

	seriesList, err := s.seriesRepo.GetAllWithSeasons(ctx)
	if err != nil {
		return nil, err
	}

	// One fetch for all episode and season ratings site-wide, then
	// per-season resolution against the complete pools.
	var episodeIDs, seasonIDs []int64
	for _, series := range seriesList {
		for _, season := range series.Seasons {
			seasonIDs = append(seasonIDs, season.ID)
			for _, ep := range season.Episodes {
				episodeIDs = append(episodeIDs, ep.ID)
			}
		}
	}

	episodeRatings, err := s.episodeRatingRepo.GetByEpisodeIDs(ctx, episodeIDs)
	if err != nil {
		return nil, err
	}
	seasonRatings, err := s.seasonRatingRepo.GetBySeasonIDs(ctx, seasonIDs)
	if err != nil {
		return nil, err
	}

	engineEpisodes := toEngineEpisodeRatings(episodeRatings)
	rowsBySeason := make(map[int64][]scoring.SeasonUserRating)
	for _, row := range toEngineSeasonRatings(seasonRatings) {
		rowsBySeason[row.SeasonID] = append(rowsBySeason[row.SeasonID], row)
	}

	type phaseGroup struct {
		franchise string
		scores    []map[string]scoring.SeasonScore
	}
	phaseGroups := make(map[string]*phaseGroup)

	for _, series := range seriesList {
		franchise := ""
		if series.Franchise != nil {
			franchise = *series.Franchise
		}

		seasonScores := make([]map[string]scoring.SeasonScore, len(series.Seasons))
		for i, season := range series.Seasons {
			ids := make([]int64, len(season.Episodes))
			for j, ep := range season.Episodes {
				ids[j] = ep.ID
			}
			scores := scoring.ResolveSeasonScores(ids, engineEpisodes, rowsBySeason[season.ID])
			seasonScores[i] = scores

			siteAvg, raters := scoring.SeasonSiteAverage(scores)
			if siteAvg == nil {
				continue
			}
			seasonRow := scoring.LeaderboardRow{
				Kind:      scoring.KindSeason,
				RefID:     season.ID,
				Title:     fmt.Sprintf("%s S%d", series.Title, season.SeasonNumber),
				Score:     *siteAvg,
				Support:   raters,
				Franchise: franchise,
			}
			if season.Phase != nil {
				seasonRow.Phase = *season.Phase
			}
			rows = append(rows, seasonRow)

			if season.Phase != nil && *season.Phase != "" {
				group := phaseGroups[*season.Phase]
				if group == nil {
					group = &phaseGroup{franchise: franchise}
					phaseGroups[*season.Phase] = group
				}
				group.scores = append(group.scores, scores)
			}
		}

		// Whole-series rows carry no phase tag; phase-scoped rankings use
		// the phase groupings below instead.
		if filter.Phase == nil {
			agg := scoring.AggregateSeasons(len(series.Seasons), seasonScores)
			if agg.GlobalAverage != nil {
				rows = append(rows, scoring.LeaderboardRow{
					Kind:      scoring.KindSeries,
					RefID:     series.ID,
					Title:     series.Title,
					Score:     *agg.GlobalAverage,
					Support:   agg.Contributors,
					Franchise: franchise,
				})
			}
		}
	}

	// Phase-grouped rows: the aggregation unit becomes the phase, with
	// the identical coverage weighting over all seasons in the phase.
	if filter.Phase != nil {
		phases := make([]string, 0, len(phaseGroups))
		for phase := range phaseGroups {
			phases = append(phases, phase)
		}
		sort.Strings(phases)

		for _, phase := range phases {
			group := phaseGroups[phase]
			agg := scoring.AggregateSeasons(len(group.scores), group.scores)
			if agg.GlobalAverage == nil {
				continue
			}
			rows = append(rows, scoring.LeaderboardRow{
				Kind:      scoring.KindSeries,
				RefID:     0,
				Title:     phase,
				Score:     *agg.GlobalAverage,
				Support:   agg.Contributors,
				Franchise: group.franchise,
				Phase:     phase,
			})
		}
	}

	return rows, nil
}

// filterCacheKey flattens a filter into a stable cache key.
func filterCacheKey(filter scoring.LeaderboardFilter) string {
	kinds := make([]string, len(filter.Kinds))
	for i, k := range filter.Kinds {
		kinds[i] = string(k)
	}
	sort.Strings(kinds)

	phase := "nil"
	if filter.Phase != nil {
		phase = "p:" + *filter.Phase
	}
	return strings.Join([]string{strings.Join(kinds, ","), filter.Franchise, phase}, "|")
}
