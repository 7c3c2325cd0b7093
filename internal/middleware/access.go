package middleware

import (
	"crossword/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// AccessMiddleware lets only authorized players through
func AccessMiddleware(accessService *service.AccessService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			playerID := c.Sender().ID

			// Ensure player exists
			if err := accessService.EnsurePlayerExists(playerID); err != nil {
				logger.Error("Failed to ensure player exists in middleware", zap.Error(err))
				return c.Send("Something went wrong. Please try again later.")
			}

			authorized, err := accessService.IsAuthorized(playerID)
			if err != nil {
				logger.Error("Failed to check authorization in middleware", zap.Error(err))
				return c.Send("Something went wrong. Please try again later.")
			}

			if !authorized {
				if c.Callback() != nil {
					_ = c.Respond()
				}
				return c.Send("Enter the password to unlock the crossword:")
			}

			return next(c)
		}
	}
}
