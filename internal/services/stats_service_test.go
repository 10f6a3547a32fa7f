package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smallthings/internal/domain"
	"smallthings/internal/repository/sqlite"
)

func TestWindowStats(t *testing.T) {
	svc := NewStatsService(nil)

	tests := []struct {
		name     string
		records  []domain.CompletionRecord
		expected WindowStats
	}{
		{"empty window", nil, WindowStats{}},
		{
			"counts and sums durations",
			[]domain.CompletionRecord{
				{TaskName: "Read", Duration: 25},
				{TaskName: "Read", Duration: 25},
				{TaskName: "Write", Duration: 10},
			},
			WindowStats{Count: 3, TotalDurationMinutes: 60},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, svc.WindowStats(tt.records))
		})
	}
}

func TestMostFrequentTask(t *testing.T) {
	svc := NewStatsService(nil)

	t.Run("empty records", func(t *testing.T) {
		_, ok := svc.MostFrequentTask(nil)
		assert.False(t, ok)
	})

	t.Run("clear winner", func(t *testing.T) {
		records := []domain.CompletionRecord{
			{TaskName: "Read"}, {TaskName: "Read"}, {TaskName: "Write"},
		}
		most, ok := svc.MostFrequentTask(records)
		require.True(t, ok)
		assert.Equal(t, TaskFrequency{Name: "Read", Count: 2}, most)
	})

	t.Run("tie breaks to lexicographically smallest name", func(t *testing.T) {
		records := []domain.CompletionRecord{
			{TaskName: "Write"}, {TaskName: "Read"},
		}
		most, ok := svc.MostFrequentTask(records)
		require.True(t, ok)
		assert.Equal(t, TaskFrequency{Name: "Read", Count: 1}, most)
	})
}

func TestLeastFrequentTask(t *testing.T) {
	svc := NewStatsService(nil)

	t.Run("no tasks and no records", func(t *testing.T) {
		_, ok := svc.LeastFrequentTask(nil, nil)
		assert.False(t, ok)
	})

	t.Run("task with zero completions wins", func(t *testing.T) {
		tasks := []domain.Task{{Name: "Read"}, {Name: "Write"}}
		records := []domain.CompletionRecord{
			{TaskName: "Read"}, {TaskName: "Read"}, {TaskName: "Read"},
		}
		least, ok := svc.LeastFrequentTask(tasks, records)
		require.True(t, ok)
		assert.Equal(t, TaskFrequency{Name: "Write", Count: 0}, least)
	})

	t.Run("records for deleted tasks still participate", func(t *testing.T) {
		records := []domain.CompletionRecord{
			{TaskName: "Ghost"},
		}
		least, ok := svc.LeastFrequentTask(nil, records)
		require.True(t, ok)
		assert.Equal(t, TaskFrequency{Name: "Ghost", Count: 1}, least)
	})

	t.Run("zero-count tie breaks to lexicographically smallest name", func(t *testing.T) {
		tasks := []domain.Task{{Name: "Write"}, {Name: "Draw"}}
		least, ok := svc.LeastFrequentTask(tasks, nil)
		require.True(t, ok)
		assert.Equal(t, TaskFrequency{Name: "Draw", Count: 0}, least)
	})
}

func TestWindowFetchers(t *testing.T) {
	repo := setupTestRepo(t)
	svc := NewStatsService(repo)

	// Wednesday 2025-06-18 15:00 UTC.
	now := time.Date(2025, 6, 18, 15, 0, 0, 0, time.UTC)

	seedStore(t, repo,
		[]*sqlite.Task{taskFixture(1, "Read", "#2196F3", 25, 4)},
		[]*sqlite.CompletionRecord{
			recordFixture(1, 1, "Read", now.Add(-time.Hour), 25),               // today
			recordFixture(2, 1, "Read", now.AddDate(0, 0, -2), 25),             // Monday, this week
			recordFixture(3, 1, "Read", now.AddDate(0, 0, -10), 25),            // this month
			recordFixture(4, 1, "Read", now.AddDate(0, -3, 0), 25),             // this year
			recordFixture(5, 1, "Read", now.AddDate(-1, 0, 0), 25),             // last year
			recordFixture(6, 1, "Read", now.Truncate(time.Hour).Add(-15*time.Hour), 25), // midnight today boundary
		})

	today, err := svc.TodayRecords(context.Background(), now)
	require.NoError(t, err)
	week, err := svc.WeekRecords(context.Background(), now)
	require.NoError(t, err)
	month, err := svc.MonthRecords(context.Background(), now)
	require.NoError(t, err)
	year, err := svc.YearRecords(context.Background(), now)
	require.NoError(t, err)

	assert.Len(t, today, 2)
	assert.Len(t, week, 3)
	assert.Len(t, month, 4)
	assert.Len(t, year, 5)

	// Each wider window contains every narrower window's records.
	for _, pair := range [][2][]domain.CompletionRecord{
		{today, week}, {week, month}, {month, year},
	} {
		narrow, wide := pair[0], pair[1]
		ids := make(map[int64]bool)
		for _, r := range wide {
			ids[r.RecordID] = true
		}
		for _, r := range narrow {
			assert.True(t, ids[r.RecordID])
		}
	}

	// Newest first within a window.
	for i := 1; i < len(year); i++ {
		assert.False(t, year[i].CompletedAt.After(year[i-1].CompletedAt))
	}
}

func TestDailySummaries(t *testing.T) {
	repo := setupTestRepo(t)
	svc := NewStatsService(repo)

	day1 := time.Date(2025, 1, 13, 0, 0, 0, 0, time.Local)
	day2 := time.Date(2025, 1, 14, 0, 0, 0, 0, time.Local)

	seedStore(t, repo,
		[]*sqlite.Task{taskFixture(1, "Read", "#2196F3", 25, 3)},
		[]*sqlite.CompletionRecord{
			recordFixture(1, 1, "Read", day1.Add(9*time.Hour), 25),
			recordFixture(2, 1, "Read", day1.Add(20*time.Hour), 25),
			recordFixture(3, 2, "Write", day1.Add(12*time.Hour), 10),
			recordFixture(4, 2, "Write", day2.Add(8*time.Hour), 10),
		})

	summaries, err := svc.DailySummaries(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	// Newest day first.
	assert.True(t, summaries[0].Date.Equal(day2))
	assert.True(t, summaries[1].Date.Equal(day1))

	first := summaries[1]
	assert.Equal(t, 3, first.TaskCount)
	assert.Equal(t, 60, first.TotalDuration)
	assert.Equal(t, "Read", first.MostFocusedTask)
	assert.Equal(t, 2, first.MostFocusedTaskCount)
	assert.Equal(t, 50, first.MostFocusedTaskDuration)

	// Records within a day are newest first, and the totals are consistent
	// with the record list.
	require.Len(t, first.Records, 3)
	assert.Equal(t, int64(2), first.Records[0].RecordID)
	sum := 0
	for _, r := range first.Records {
		sum += r.Duration
	}
	assert.Equal(t, first.TotalDuration, sum)
	assert.Equal(t, first.TaskCount, len(first.Records))
}

func TestDailySummariesEmptyStore(t *testing.T) {
	repo := setupTestRepo(t)
	svc := NewStatsService(repo)

	summaries, err := svc.DailySummaries(context.Background())
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestDailySummaryIsToday(t *testing.T) {
	now := time.Date(2025, 1, 13, 15, 0, 0, 0, time.UTC)

	today := DailySummary{Date: time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC)}
	yesterday := DailySummary{Date: time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC)}

	assert.True(t, today.IsToday(now))
	assert.False(t, yesterday.IsToday(now))
}
