package middleware

import (
	"fmt"
	"runtime"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PanicError is a panic recovered from a handler
type PanicError struct {
	Value any
	pcs   []uintptr
}

func newPanicError(value any) *PanicError {
	pcs := make([]uintptr, 64)
	// Skip runtime.Callers, newPanicError and the deferred recover func
	n := runtime.Callers(3, pcs)
	return &PanicError{Value: value, pcs: pcs[:n]}
}

// Error implements the error interface
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap returns the panic value when it is an error
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// StackTrace returns the program counters of the panicking goroutine.
// Sentry and woops read it to report where the panic happened.
func (e *PanicError) StackTrace() []uintptr {
	return e.pcs
}

// Recover turns handler panics into errors so that they reach the error
// handler and are sent like any other failure.
func Recover(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				panicErr := newPanicError(r)

				logger.Error("panic recovered",
					zap.Error(panicErr),
					zap.String("path", c.Path()),
					zap.String("method", c.Method()),
					zap.String("ip", c.IP()),
					zap.String("request_id", GetRequestID(c)),
				)

				err = panicErr
			}
		}()

		return c.Next()
	}
}
