package twisty

import "go.uber.org/zap"

// Option configures an Engine.
type Option func(*config)

type config struct {
	minSize int
	maxSize int
	logger  *zap.Logger
}

func defaultConfig() *config {
	return &config{
		minSize: MinSize,
		maxSize: DefaultMaxSize,
	}
}

// WithMaxSize raises or lowers the largest size Initialize accepts.
// Values are clamped to MinSize..MaxSize.
func WithMaxSize(n int) Option {
	return func(c *config) {
		if n > MaxSize {
			n = MaxSize
		}
		if n < MinSize {
			n = MinSize
		}
		c.maxSize = n
	}
}

// WithLogger sets the logger used by the engine.
// The package logger is used when no logger is given.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}
