package components

import "github.com/yohamta/donburi"

// StatsData counts what happened during the session.
type StatsData struct {
	Destroyed int // asteroids destroyed this session
	Best      int // best Destroyed across sessions
	Deaths    int
	saved     int
}

// Dirty reports whether Best changed since it was last persisted.
func (s *StatsData) Dirty() bool { return s.Best != s.saved }

// MarkSaved records that Best has been persisted.
func (s *StatsData) MarkSaved() { s.saved = s.Best }

var Stats = donburi.NewComponentType[StatsData]()

// SettingsData holds toggles that can change while the game runs.
type SettingsData struct {
	DebugOverlay bool
}

var Settings = donburi.NewComponentType[SettingsData]()
