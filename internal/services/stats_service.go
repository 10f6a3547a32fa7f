package services

import (
	"context"
	"sort"
	"time"

	"smallthings/internal/domain"
	"smallthings/internal/repository/sqlite"
	"smallthings/internal/timeutil"
)

// statsServiceImpl implements the StatsService interface
type statsServiceImpl struct {
	repo   sqlite.Repository
	mapper *domain.Mapper
}

// NewStatsService creates a new StatsService instance
func NewStatsService(repo sqlite.Repository) StatsService {
	return &statsServiceImpl{
		repo:   repo,
		mapper: domain.NewMapper(),
	}
}

func (s *statsServiceImpl) recordsSince(ctx context.Context, bound time.Time) ([]domain.CompletionRecord, error) {
	dbRecords, err := s.repo.ListRecordsSince(ctx, bound)
	if err != nil {
		return nil, err
	}
	return s.mapper.CompletionRecord.FromDatabaseSlice(dbRecords), nil
}

// TodayRecords returns all records completed since local midnight.
func (s *statsServiceImpl) TodayRecords(ctx context.Context, now time.Time) ([]domain.CompletionRecord, error) {
	return s.recordsSince(ctx, timeutil.StartOfDay(now))
}

// WeekRecords returns all records completed since Monday local midnight.
func (s *statsServiceImpl) WeekRecords(ctx context.Context, now time.Time) ([]domain.CompletionRecord, error) {
	return s.recordsSince(ctx, timeutil.StartOfWeek(now))
}

// MonthRecords returns all records completed since the 1st of the month.
func (s *statsServiceImpl) MonthRecords(ctx context.Context, now time.Time) ([]domain.CompletionRecord, error) {
	return s.recordsSince(ctx, timeutil.StartOfMonth(now))
}

// YearRecords returns all records completed since January 1st.
func (s *statsServiceImpl) YearRecords(ctx context.Context, now time.Time) ([]domain.CompletionRecord, error) {
	return s.recordsSince(ctx, timeutil.StartOfYear(now))
}

// WindowStats folds a window's records into count and total duration.
func (s *statsServiceImpl) WindowStats(records []domain.CompletionRecord) WindowStats {
	stats := WindowStats{Count: len(records)}
	for _, r := range records {
		stats.TotalDurationMinutes += r.Duration
	}
	return stats
}

// countByName groups records by task name and counts occurrences
func countByName(records []domain.CompletionRecord) map[string]int {
	counts := make(map[string]int)
	for _, r := range records {
		counts[r.TaskName]++
	}
	return counts
}

// pickByCount selects the entry with the extreme count from counts. Ties are
// broken by the lexicographically smallest name so results are deterministic.
func pickByCount(counts map[string]int, better func(candidate, current int) bool) (TaskFrequency, bool) {
	if len(counts) == 0 {
		return TaskFrequency{}, false
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	picked := TaskFrequency{Name: names[0], Count: counts[names[0]]}
	for _, name := range names[1:] {
		if better(counts[name], picked.Count) {
			picked = TaskFrequency{Name: name, Count: counts[name]}
		}
	}
	return picked, true
}

// MostFrequentTask returns the task name appearing most often in records.
// The second result is false when records is empty.
func (s *statsServiceImpl) MostFrequentTask(records []domain.CompletionRecord) (TaskFrequency, bool) {
	return pickByCount(countByName(records), func(candidate, current int) bool {
		return candidate > current
	})
}

// LeastFrequentTask returns the task name appearing least often in records.
// Every existing task participates, so a task with zero completions in the
// window can be reported with count 0. The second result is false when both
// tasks and records are empty.
func (s *statsServiceImpl) LeastFrequentTask(tasks []domain.Task, records []domain.CompletionRecord) (TaskFrequency, bool) {
	counts := countByName(records)
	for _, task := range tasks {
		if _, ok := counts[task.Name]; !ok {
			counts[task.Name] = 0
		}
	}
	return pickByCount(counts, func(candidate, current int) bool {
		return candidate < current
	})
}

// DailySummaries fetches all records, groups them by local day, and derives
// each day's aggregate. Days with no records produce no summary.
func (s *statsServiceImpl) DailySummaries(ctx context.Context) ([]DailySummary, error) {
	dbRecords, err := s.repo.ListAllRecords(ctx)
	if err != nil {
		return nil, err
	}
	records := s.mapper.CompletionRecord.FromDatabaseSlice(dbRecords)

	byDay := make(map[int64][]domain.CompletionRecord)
	dayStarts := make(map[int64]time.Time)
	for _, r := range records {
		dayStart := timeutil.StartOfDay(r.CompletedAt)
		key := dayStart.UnixMilli()
		byDay[key] = append(byDay[key], r)
		dayStarts[key] = dayStart
	}

	summaries := make([]DailySummary, 0, len(byDay))
	for key, dayRecords := range byDay {
		sort.SliceStable(dayRecords, func(i, j int) bool {
			return dayRecords[i].CompletedAt.After(dayRecords[j].CompletedAt)
		})

		summary := DailySummary{
			Date:      dayStarts[key],
			TaskCount: len(dayRecords),
			Records:   dayRecords,
		}
		for _, r := range dayRecords {
			summary.TotalDuration += r.Duration
		}

		if most, ok := s.MostFrequentTask(dayRecords); ok {
			summary.MostFocusedTask = most.Name
			summary.MostFocusedTaskCount = most.Count
			for _, r := range dayRecords {
				if r.TaskName == most.Name {
					summary.MostFocusedTaskDuration += r.Duration
				}
			}
		}

		summaries = append(summaries, summary)
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Date.After(summaries[j].Date)
	})
	return summaries, nil
}
