package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/agenttrace/woops/internal/pkg/woops"
)

// ErrAlreadyAttached is returned when a request already has a responder
var ErrAlreadyAttached = errors.New("woops already exists on the response")

// Observer is notified of every error sent on a request
type Observer func(c *fiber.Ctx, e *woops.Error)

// WoopsConfig configures the woops middleware
type WoopsConfig struct {
	// Options are passed to every responder
	Options woops.Options
	// Observers run after each sent error, in order
	Observers []Observer
}

// Woops attaches a woops.Responder to each request.
//
// The responder lives in the request's locals and is bound to that request's
// response. A request that already carries one fails with ErrAlreadyAttached
// before anything is changed.
func Woops(config ...WoopsConfig) fiber.Handler {
	var cfg WoopsConfig
	if len(config) > 0 {
		cfg = config[0]
	}

	return func(c *fiber.Ctx) error {
		if _, ok := GetWoops(c); ok {
			return ErrAlreadyAttached
		}

		opts := cfg.Options
		if len(cfg.Observers) > 0 {
			onSend := opts.OnSend
			opts.OnSend = func(e *woops.Error) {
				if onSend != nil {
					onSend(e)
				}
				for _, observe := range cfg.Observers {
					observe(c, e)
				}
			}
		}

		c.Locals(string(ContextKeyWoops), woops.NewResponder(woops.NewFiberResponse(c), opts))
		return c.Next()
	}
}

// GetWoops gets the responder attached to the request
func GetWoops(c *fiber.Ctx) (*woops.Responder, bool) {
	w, ok := c.Locals(string(ContextKeyWoops)).(*woops.Responder)
	return w, ok && w != nil
}

// ErrorHandlerConfig configures the terminal error handler
type ErrorHandlerConfig struct {
	// Logger instance
	Logger *zap.Logger
	// Next handles errors on requests without a responder
	Next fiber.ErrorHandler
}

// ErrorHandler creates the app error handler.
//
// Errors on requests with a responder are sent through it. Anything else is
// forwarded unchanged to Next, which defaults to fiber.DefaultErrorHandler.
func ErrorHandler(config ...ErrorHandlerConfig) fiber.ErrorHandler {
	var cfg ErrorHandlerConfig
	if len(config) > 0 {
		cfg = config[0]
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Next == nil {
		cfg.Next = fiber.DefaultErrorHandler
	}

	return func(c *fiber.Ctx, err error) error {
		w, ok := GetWoops(c)
		if !ok {
			cfg.Logger.Warn("request error without responder",
				zap.Error(err),
				zap.String("path", c.Path()),
				zap.String("method", c.Method()),
				zap.String("request_id", GetRequestID(c)),
			)
			return cfg.Next(c, err)
		}

		return w.Send(fromFiberError(err))
	}
}

// fromFiberError keeps the status and message of errors raised by Fiber
// itself, such as unmatched routes, instead of turning them into 500s.
func fromFiberError(err error) error {
	if woops.IsWoopsError(err) {
		return err
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return woops.New(fe.Code, fe.Message, nil, nil)
	}
	return err
}
