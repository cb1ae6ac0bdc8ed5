package logger

import (
	"context"
	"errors"

	"github.com/okorolev/skillswap/internal/infrastructure/apperr"
	"github.com/okorolev/skillswap/internal/infrastructure/contextx"
	"github.com/rs/zerolog"
)

func Error(ctx context.Context, loggingErr error) *zerolog.Event {
	return log(ctx, apperr.LogLevelOf(loggingErr), loggingErr)
}

func Warn(ctx context.Context, loggingErr error) *zerolog.Event {
	return log(ctx, apperr.LogLevelWarn, loggingErr)
}

func log(ctx context.Context, level apperr.LogLevel, loggingErr error) *zerolog.Event {
	ctx = context.WithoutCancel(ctx)
	event := zerolog.Ctx(ctx).WithLevel(toZerologLevel(level))

	currentUser, err := contextx.GetUserID(ctx)
	if err != nil {
		if !errors.Is(err, contextx.ErrNotFound) && apperr.ClassOf(err) != apperr.ClassUnauthorized {
			zerolog.Ctx(ctx).Error().Err(err).Msg("logger.log: GetUserID")
		}
	} else {
		event = event.Int64("current_user_id", currentUser)
	}

	if loggingErr != nil {
		event = event.Err(loggingErr)
	}

	return event
}

func toZerologLevel(level apperr.LogLevel) zerolog.Level {
	switch level {
	case apperr.LogLevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}
