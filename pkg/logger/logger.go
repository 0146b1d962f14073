package logger

import (
	"go.uber.org/zap"
)

// New builds the application logger. Development mode uses the
// human-readable console encoder.
func New(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
