package service

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"time"

	"quizcraft_backend/internal/model"
	"quizcraft_backend/internal/util"
	"quizcraft_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const recentActivityWindow = 7 * 24 * time.Hour

// CompletedSource yields the completed participant population of a test,
// responses included.
type CompletedSource interface {
	ListCompletedWithResponses(testID string) ([]model.Participant, error)
}

type StatisticsService struct {
	Tests        TestSource
	Questions    QuestionSource
	Participants CompletedSource
	Cache        *redis.Client
	CacheTTL     time.Duration
}

func NewStatisticsService(tests TestSource, questions QuestionSource, participants CompletedSource, cache *redis.Client, ttl time.Duration) *StatisticsService {
	return &StatisticsService{
		Tests:        tests,
		Questions:    questions,
		Participants: participants,
		Cache:        cache,
		CacheTTL:     ttl,
	}
}

// classifyDifficulty buckets a question by accuracy. Boundary values fall
// into the lower bucket: exactly 80 is medium, exactly 50 is hard.
func classifyDifficulty(accuracyRate int) string {
	switch {
	case accuracyRate > 80:
		return "easy"
	case accuracyRate > 50:
		return "medium"
	default:
		return "hard"
	}
}

// AggregateStatistics computes the population-level metrics of a test from a
// snapshot of its completed participants. Pure function of its inputs; any
// caching sits outside it. Percentages are computed against the current
// question set's point total for every participant, whenever they completed.
func AggregateStatistics(test *model.Test, questions []model.Question, participants []model.Participant, now time.Time) *model.TestStatistics {
	completed := make([]model.Participant, 0, len(participants))
	for _, p := range participants {
		if p.CompletedAt != nil {
			completed = append(completed, p)
		}
	}

	pointsByQuestion := make(map[string]int, len(questions))
	totalPossible := 0
	for _, q := range questions {
		pointsByQuestion[q.ID] = q.Points
		totalPossible += q.Points
	}

	stats := &model.TestStatistics{
		TotalAttempts:      len(completed),
		UniqueParticipants: len(completed),
		QuestionStats:      make([]model.QuestionStats, 0, len(questions)),
		Participants:       make([]model.ParticipantRow, 0, len(completed)),
	}

	percentageSum := 0
	passing := 0
	recentCutoff := now.Add(-recentActivityWindow)

	for _, p := range completed {
		achieved := 0
		for _, resp := range p.Responses {
			if resp.IsCorrect {
				achieved += pointsByQuestion[resp.QuestionID]
			}
		}
		pct := Percentage(achieved, totalPossible)
		percentageSum += pct

		passed := pct >= test.PassScore
		if passed {
			passing++
		}
		if p.CompletedAt.After(recentCutoff) {
			stats.RecentActivity++
		}

		status := "failed"
		if passed {
			status = "passed"
		}
		fullName := p.FullName
		if fullName == "" {
			fullName = "Anonymous"
		}
		stats.Participants = append(stats.Participants, model.ParticipantRow{
			ID:          p.ID,
			Email:       p.Email,
			FullName:    fullName,
			Score:       pct,
			CompletedAt: p.CompletedAt,
			Status:      status,
		})
	}

	if stats.TotalAttempts > 0 {
		stats.AverageScore = int(math.Round(float64(percentageSum) / float64(stats.TotalAttempts)))
		stats.PassRate = int(math.Round(float64(passing) / float64(stats.TotalAttempts) * 100))
	}

	// Per-question accuracy over the responses of completed participants,
	// in the test's display order.
	answered := make(map[string]int, len(questions))
	correct := make(map[string]int, len(questions))
	for _, p := range completed {
		for _, resp := range p.Responses {
			answered[resp.QuestionID]++
			if resp.IsCorrect {
				correct[resp.QuestionID]++
			}
		}
	}

	for i, q := range questions {
		total := answered[q.ID]
		accuracy := 0
		if total > 0 {
			accuracy = int(math.Round(float64(correct[q.ID]) / float64(total) * 100))
		}
		stats.QuestionStats = append(stats.QuestionStats, model.QuestionStats{
			QuestionID:     q.ID,
			Prompt:         q.Prompt,
			Type:           q.Type,
			Order:          i + 1,
			TotalAnswers:   total,
			CorrectAnswers: correct[q.ID],
			AccuracyRate:   accuracy,
			Difficulty:     classifyDifficulty(accuracy),
			Points:         q.Points,
		})
	}

	return stats
}

// GetTestStatistics loads the population snapshot and aggregates it, behind
// a short-lived read-through cache. Statistics are a best-effort reporting
// view, so a stale window of CacheTTL is acceptable.
func (s *StatisticsService) GetTestStatistics(ctx context.Context, testID string) (*model.TestStatistics, error) {
	cacheKey := "test_stats:" + testID

	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var stats model.TestStatistics
			if err := json.Unmarshal([]byte(cached), &stats); err == nil {
				return &stats, nil
			}
		}
	}

	test, err := s.Tests.FindByID(testID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrTestNotFound
		}
		return nil, err
	}

	questions, err := s.Questions.ListByTest(testID)
	if err != nil {
		return nil, err
	}

	participants, err := s.Participants.ListCompletedWithResponses(testID)
	if err != nil {
		return nil, err
	}

	stats := AggregateStatistics(test, questions, participants, time.Now())

	if s.Cache != nil {
		payload, err := json.Marshal(stats)
		if err == nil {
			if err := s.Cache.Set(ctx, cacheKey, payload, s.CacheTTL).Err(); err != nil {
				logger.Log.Warn("failed to cache test statistics", zap.String("testId", testID), zap.Error(err))
			}
		}
	}

	return stats, nil
}

// InvalidateStatistics drops the cached snapshot after a new submission so
// admin views converge sooner than the TTL.
func (s *StatisticsService) InvalidateStatistics(ctx context.Context, testID string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, "test_stats:"+testID).Err(); err != nil {
		logger.Log.Warn("failed to invalidate statistics cache", zap.String("testId", testID), zap.Error(err))
	}
}
