package app

import "github.com/sirupsen/logrus"

// Config holds runtime wiring options for building the app.
type Config struct {
	Logger *logrus.Logger // optional; defaults to a fresh logger
}
