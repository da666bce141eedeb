package progress

import (
	"encoding/json"
	"fmt"

	"github.com/quasilyte/gdata"
)

const (
	progressKey = "progress"
	settingsKey = "settings"
)

// Settings are the audio preferences the desktop host remembers.
type Settings struct {
	Muted     bool    `json:"muted"`
	SFXVolume float64 `json:"sfxVolume"`
}

// GdataStore keeps progress and settings in the per-user data directory
// managed by gdata.
type GdataStore struct {
	manager *gdata.Manager
}

// OpenGdata opens the gdata storage for appName.
func OpenGdata(appName string) (*GdataStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open gdata: %w", err)
	}
	return &GdataStore{manager: m}, nil
}

func (s *GdataStore) Load() (Progress, error) {
	p := Progress{}
	return p, s.loadJSON(progressKey, &p)
}

func (s *GdataStore) Save(p Progress) error {
	return s.saveJSON(progressKey, p)
}

// LoadSettings returns the saved settings, or ok=false if there are none.
func (s *GdataStore) LoadSettings() (settings Settings, ok bool, err error) {
	var saved *Settings
	if err := s.loadJSON(settingsKey, &saved); err != nil {
		return Settings{}, false, err
	}
	if saved == nil {
		return Settings{}, false, nil
	}
	return *saved, true, nil
}

func (s *GdataStore) SaveSettings(settings Settings) error {
	return s.saveJSON(settingsKey, settings)
}

func (s *GdataStore) loadJSON(key string, v any) error {
	if s == nil || s.manager == nil {
		return ErrNotInitialized
	}
	data, err := s.manager.LoadItem(key)
	if err != nil {
		return fmt.Errorf("load %s: %w", key, err)
	}
	if len(data) == 0 {
		// Nothing saved yet.
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", key, err)
	}
	return nil
}

func (s *GdataStore) saveJSON(key string, v any) error {
	if s == nil || s.manager == nil {
		return ErrNotInitialized
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("serialize %s: %w", key, err)
	}
	if err := s.manager.SaveItem(key, data); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
