package kit

import "go.uber.org/zap"

// NewLogger builds the process logger. Development environments get the
// human-readable console encoder, everything else gets production JSON.
func NewLogger(service, env string) *zap.Logger {
	var cfg zap.Config
	if env == "development" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.InitialFields = map[string]any{"service": service, "env": env}
	l, _ := cfg.Build()
	return l
}
