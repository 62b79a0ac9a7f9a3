package systems

import (
	"encoding/json"
	"fmt"

	"github.com/automoto/asteroids/components"
	"github.com/automoto/asteroids/logging"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// SavedStats represents the stats stored on disk
type SavedStats struct {
	Best int `json:"best"`
}

const statsKey = "stats"

// saveEvery is how many ticks UpdateStats waits between writes.
const saveEvery = 60

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for stats storage. The game
// runs without persistence if this fails.
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return fmt.Errorf("open persistence: %w", err)
	}
	gdataManager = m
	return nil
}

// LoadStats loads stats from disk. A missing item yields nil, nil.
func LoadStats() (*SavedStats, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(statsKey)
	if err != nil {
		return nil, fmt.Errorf("load stats: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var stats SavedStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, fmt.Errorf("parse stats: %w", err)
	}
	return &stats, nil
}

// SaveStats saves stats to disk
func SaveStats(s *SavedStats) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("serialize stats: %w", err)
	}
	if err := gdataManager.SaveItem(statsKey, data); err != nil {
		return fmt.Errorf("save stats: %w", err)
	}
	return nil
}

// ApplySavedStats seeds the session with the stored best score.
func ApplySavedStats(ecs *ecs.ECS, saved *SavedStats) {
	if saved == nil {
		return
	}
	stats := components.Stats.Get(worldEntry(ecs))
	stats.Best = saved.Best
	stats.MarkSaved()
}

// UpdateStats keeps the best score current and writes it out when it
// changes, at most once per saveEvery ticks.
func UpdateStats(ecs *ecs.ECS) {
	stats := components.Stats.Get(worldEntry(ecs))
	if stats.Destroyed > stats.Best {
		stats.Best = stats.Destroyed
	}

	if !stats.Dirty() || getClock(ecs).Ticks%saveEvery != 0 {
		return
	}
	if err := SaveStats(&SavedStats{Best: stats.Best}); err != nil {
		logging.L().Warn("could not save stats", zap.Error(err))
		return
	}
	stats.MarkSaved()
}
