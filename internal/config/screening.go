package config

import (
	"log"
	"os"
	"strconv"
	"sync"
	"time"
)

type ScreeningConfig struct {
	Extractor      string // "mock" (default), "file"
	ExtractTimeout time.Duration
	KeywordsFile   string // optional JSON override for the built-in keyword sets
	MaxUploadBytes int64
}

var (
	screeningConfig *ScreeningConfig
	screeningOnce   sync.Once
)

func LoadScreeningConfig() *ScreeningConfig {
	screeningOnce.Do(func() {
		extractor := os.Getenv("EXTRACTOR")
		if extractor == "" {
			extractor = "mock"
		}

		timeout := 30 * time.Second
		if raw := os.Getenv("EXTRACT_TIMEOUT_SECONDS"); raw != "" {
			secs, err := strconv.Atoi(raw)
			if err != nil || secs <= 0 {
				log.Printf("Warning: invalid EXTRACT_TIMEOUT_SECONDS %q, using default", raw)
			} else {
				timeout = time.Duration(secs) * time.Second
			}
		}

		screeningConfig = &ScreeningConfig{
			Extractor:      extractor,
			ExtractTimeout: timeout,
			KeywordsFile:   os.Getenv("KEYWORDS_FILE"),
			MaxUploadBytes: 5 * 1024 * 1024,
		}
	})
	return screeningConfig
}
