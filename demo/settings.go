package main

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"

	"github.com/automoto/vantage/camera"
	"github.com/automoto/vantage/config"
)

// SavedTuning is the camera tuning data stored on disk
type SavedTuning struct {
	FollowSmoothing    float64 `json:"followSmoothing"`
	LookAheadDistanceX float64 `json:"lookAheadDistanceX"`
	Zoom               float64 `json:"zoom"`
	DebugOverlay       bool    `json:"debugOverlay"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// savedZoom is applied to the camera once the scene is configured.
var savedZoom = 1.0

// InitPersistence initializes the gdata manager for tuning storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "vantage-demo",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadTuning loads saved camera tuning from disk
func LoadTuning() (*SavedTuning, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("tuning")
	if err != nil {
		log.Printf("Warning: Could not load tuning: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved tuning yet, use defaults
		return nil, nil
	}

	var tuning SavedTuning
	if err := json.Unmarshal(data, &tuning); err != nil {
		log.Printf("Warning: Could not parse saved tuning: %v", err)
		return nil, err
	}

	return &tuning, nil
}

// SaveTuning saves camera tuning to disk
func SaveTuning(t *SavedTuning) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(t)
	if err != nil {
		log.Printf("Warning: Could not serialize tuning: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("tuning", data); err != nil {
		log.Printf("Warning: Could not save tuning: %v", err)
		return err
	}
	return nil
}

// SaveCurrentTuning snapshots the live camera and config state
func SaveCurrentTuning(cam *camera.Camera) {
	_ = SaveTuning(&SavedTuning{
		FollowSmoothing:    config.Camera.FollowSmoothing,
		LookAheadDistanceX: config.Camera.LookAheadDistanceX,
		Zoom:               cam.Zoom,
		DebugOverlay:       config.Debug.Enabled,
	})
}

// ApplySavedTuning applies loaded tuning to the config globals; the zoom is
// picked up when the camera entity is created.
func ApplySavedTuning(saved *SavedTuning) {
	if saved == nil {
		return
	}

	if saved.FollowSmoothing > 0 {
		config.Camera.FollowSmoothing = saved.FollowSmoothing
	}
	if saved.LookAheadDistanceX > 0 {
		config.Camera.LookAheadDistanceX = saved.LookAheadDistanceX
	}
	if saved.Zoom >= config.Camera.MinZoom && saved.Zoom <= config.Camera.MaxZoom {
		savedZoom = saved.Zoom
	}
	config.Debug.Enabled = saved.DebugOverlay
}
