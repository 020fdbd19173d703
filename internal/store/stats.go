package store

import (
	"context"
	"database/sql"

	"task-bidding-api/internal/models"
)

// WorkerStats is the public marketplace health summary.
type WorkerStats struct {
	ActiveWorkers  int64   `json:"activeWorkers"`
	CompletedTasks int64   `json:"completedTasks"`
	AverageRating  float64 `json:"averageRating"`
}

// GetWorkerStats aggregates marketplace-wide worker counts and ratings.
func (s *Store) GetWorkerStats(ctx context.Context) (*WorkerStats, error) {
	stats := &WorkerStats{}
	db := s.db.WithContext(ctx)

	if err := db.Model(&models.User{}).Where("is_worker = ?", true).Count(&stats.ActiveWorkers).Error; err != nil {
		return nil, dbErr(err, "user not found")
	}
	if err := db.Model(&models.Task{}).Where("status = ?", models.StatusCompleted).Count(&stats.CompletedTasks).Error; err != nil {
		return nil, dbErr(err, "task not found")
	}

	var avg sql.NullFloat64
	err := db.Model(&models.User{}).
		Where("is_worker = ? AND worker_rating IS NOT NULL", true).
		Select("AVG(worker_rating)").
		Scan(&avg).Error
	if err != nil {
		return nil, dbErr(err, "user not found")
	}
	if avg.Valid {
		stats.AverageRating = avg.Float64
	}
	return stats, nil
}
