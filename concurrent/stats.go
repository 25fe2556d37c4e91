package concurrent

import (
	"context"
	"sync"
	"time"

	"critichub/db"
	"critichub/models"
)

// DashboardStats is the admin monitoring snapshot. Each count is an
// independent query, so they run in parallel.
type DashboardStats struct {
	TotalUsers    int64   `json:"total_users"`
	TotalGames    int64   `json:"total_games"`
	TotalReviews  int64   `json:"total_reviews"`
	ReviewedGames int64   `json:"reviewed_games"`
	AverageScore  float64 `json:"average_score"`
	Duration      string  `json:"calculation_time"`
}

// CalculateDashboardStats fans the aggregate queries out across goroutines
// and waits for all of them before returning.
func CalculateDashboardStats() (*DashboardStats, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	start := time.Now()
	stats := &DashboardStats{}

	var wg sync.WaitGroup
	wg.Add(5)

	go func() {
		defer wg.Done()
		db.DB.WithContext(ctx).Model(&models.User{}).Count(&stats.TotalUsers)
	}()

	go func() {
		defer wg.Done()
		db.DB.WithContext(ctx).Model(&models.Game{}).Count(&stats.TotalGames)
	}()

	go func() {
		defer wg.Done()
		db.DB.WithContext(ctx).Model(&models.Review{}).Count(&stats.TotalReviews)
	}()

	go func() {
		defer wg.Done()
		db.DB.WithContext(ctx).Model(&models.Game{}).Where("avg_score IS NOT NULL").Count(&stats.ReviewedGames)
	}()

	go func() {
		defer wg.Done()
		var avg struct{ Avg float64 }
		db.DB.WithContext(ctx).Model(&models.Review{}).Select("COALESCE(AVG(score), 0) as avg").Scan(&avg)
		stats.AverageScore = avg.Avg
	}()

	wg.Wait()

	stats.Duration = time.Since(start).String()
	return stats, nil
}
