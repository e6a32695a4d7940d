package config

import (
	"encoding/json"

	"github.com/quasilyte/gdata"
	"github.com/rs/zerolog/log"
)

const savedCursorKey = "cursor"

var gdataManager *gdata.Manager

// InitPersistence opens the per-user settings store.
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Warn().Err(err).Msg("could not initialize persistence")
		return err
	}
	gdataManager = m
	return nil
}

// LoadSavedCursor returns the cursor configuration saved by a previous run,
// or nil when nothing usable has been saved.
func LoadSavedCursor() (*CursorConfig, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(savedCursorKey)
	if err != nil {
		log.Warn().Err(err).Msg("could not load saved cursor settings")
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}

	cfg, err := decodeCursor(data)
	if err != nil {
		log.Warn().Err(err).Msg("discarding saved cursor settings")
		return nil, err
	}
	return cfg, nil
}

// SaveCursor stores cfg for the next run.
func SaveCursor(cfg CursorConfig) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := gdataManager.SaveItem(savedCursorKey, data); err != nil {
		log.Warn().Err(err).Msg("could not save cursor settings")
		return err
	}
	return nil
}

func decodeCursor(data []byte) (*CursorConfig, error) {
	cfg := DefaultCursor()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
