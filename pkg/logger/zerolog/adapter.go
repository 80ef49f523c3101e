package zerolog

import (
	"fmt"

	"github.com/raykavin/vbtforge/pkg/logger"
	"github.com/rs/zerolog"
)

// Adapter exposes a zerolog logger through logger.Logger.
type Adapter struct {
	log *zerolog.Logger
}

var _ logger.Logger = (*Adapter)(nil)

// NewAdapter wraps a zerolog logger.
func NewAdapter(log *zerolog.Logger) *Adapter {
	return &Adapter{log: log}
}

// Zerolog returns the wrapped logger.
func (a *Adapter) Zerolog() *zerolog.Logger {
	return a.log
}

// GetLevel implements logger.Logger.
func (a *Adapter) GetLevel() logger.Level {
	return toLevel(a.log.GetLevel())
}

// SetLevel implements logger.Logger.
func (a *Adapter) SetLevel(level logger.Level) {
	updated := a.log.Level(toZerologLevel(level))
	a.log = &updated
}

func (a *Adapter) Trace(args ...any) { a.log.Trace().Msg(fmt.Sprint(args...)) }
func (a *Adapter) Debug(args ...any) { a.log.Debug().Msg(fmt.Sprint(args...)) }
func (a *Adapter) Info(args ...any) { a.log.Info().Msg(fmt.Sprint(args...)) }
func (a *Adapter) Warn(args ...any) { a.log.Warn().Msg(fmt.Sprint(args...)) }
func (a *Adapter) Error(args ...any) { a.log.Error().Msg(fmt.Sprint(args...)) }

func (a *Adapter) Tracef(format string, args ...any) { a.log.Trace().Msgf(format, args...) }
func (a *Adapter) Debugf(format string, args ...any) { a.log.Debug().Msgf(format, args...) }
func (a *Adapter) Infof(format string, args ...any) { a.log.Info().Msgf(format, args...) }
func (a *Adapter) Warnf(format string, args ...any) { a.log.Warn().Msgf(format, args...) }
func (a *Adapter) Errorf(format string, args ...any) { a.log.Error().Msgf(format, args...) }

// WithError implements logger.Logger.
func (a *Adapter) WithError(err error) logger.Logger {
	l := a.log.With().Err(err).Logger()
	return &Adapter{log: &l}
}

// WithField implements logger.Logger.
func (a *Adapter) WithField(key string, value any) logger.Logger {
	l := a.log.With().Interface(key, value).Logger()
	return &Adapter{log: &l}
}

// WithFields implements logger.Logger.
func (a *Adapter) WithFields(fields map[string]any) logger.Logger {
	l := a.log.With().Fields(fields).Logger()
	return &Adapter{log: &l}
}

var levels = map[zerolog.Level]logger.Level{
	zerolog.Disabled:   logger.Disabled,
	zerolog.NoLevel:    logger.NoLevel,
	zerolog.TraceLevel: logger.TraceLevel,
	zerolog.DebugLevel: logger.DebugLevel,
	zerolog.InfoLevel:  logger.InfoLevel,
	zerolog.WarnLevel:  logger.WarnLevel,
	zerolog.ErrorLevel: logger.ErrorLevel,
}

func toLevel(level zerolog.Level) logger.Level {
	if l, ok := levels[level]; ok {
		return l
	}
	return logger.NoLevel
}

func toZerologLevel(level logger.Level) zerolog.Level {
	for zl, l := range levels {
		if l == level {
			return zl
		}
	}
	return zerolog.NoLevel
}
