package config

import (
	"os"
	"sync"
)

type NotifierConfig struct {
	Driver     string // "log" (default) or "webhook"
	WebhookURL string
}

var (
	notifierConfig *NotifierConfig
	notifierOnce   sync.Once
)

func LoadNotifierConfig() *NotifierConfig {
	notifierOnce.Do(func() {
		driver := os.Getenv("NOTIFIER_DRIVER")
		if driver == "" {
			driver = "log"
		}
		notifierConfig = &NotifierConfig{
			Driver:     driver,
			WebhookURL: os.Getenv("NOTIFIER_WEBHOOK_URL"),
		}
	})
	return notifierConfig
}
