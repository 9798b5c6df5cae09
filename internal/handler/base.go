package handler

import (
	"time"

	"github.com/daytrack/daytrack/internal/middleware"
	"github.com/daytrack/daytrack/internal/server"
	"github.com/daytrack/daytrack/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// Handler is the base handler type that holds shared application
// dependencies. Concrete handlers embed it to reach config, logger,
// and the database through *server.Server.
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler. Returned by value: the struct
// only carries a pointer, so copies still point at the same Server.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// HandlerFunc is a typed endpoint function that receives a validated
// request payload and returns a response or an error. Req is expected
// to be a pointer type so Echo's Bind can populate it.
type HandlerFunc[Req validation.Validatable, Res any] func(c echo.Context, req Req) (Res, error)

// ResponseHandler defines how a successful handler result is written to
// the HTTP response, and how tracing attributes are attached for that
// response type.
type ResponseHandler interface {
	// Handle writes the HTTP response for the given result.
	Handle(c echo.Context, result interface{}) error

	// GetOperation returns an operation name used for structured logging.
	GetOperation() string

	// AddAttributes attaches New Relic attributes based on the result.
	AddAttributes(txn *newrelic.Transaction, result interface{})
}

// JSONResponseHandler writes JSON responses with a fixed status code.
type JSONResponseHandler struct {
	status int
}

func (h JSONResponseHandler) Handle(c echo.Context, result interface{}) error {
	return c.JSON(h.status, result)
}

func (h JSONResponseHandler) GetOperation() string {
	return "handler"
}

func (h JSONResponseHandler) AddAttributes(txn *newrelic.Transaction, result interface{}) {
	// http.status_code is already set by the tracing middleware.
}

// handleRequest is the shared execution pipeline for all handlers.
//
// It centralizes:
//   - request binding + validation
//   - structured logging with the request-scoped logger
//   - New Relic attributes and error reporting
//   - timing (validation, handler, total)
//   - response writing
func handleRequest[Req validation.Validatable](
	c echo.Context,
	req Req,
	handler func(c echo.Context, req Req) (interface{}, error),
	responseHandler ResponseHandler,
) error {
	start := time.Now()
	method := c.Request().Method
	route := c.Path()

	txn := newrelic.FromContext(c.Request().Context())
	if txn != nil {
		txn.AddAttribute("handler.name", route)
		responseHandler.AddAttributes(txn, nil)
	}

	logger := middleware.GetLogger(c).With().
		Str("operation", responseHandler.GetOperation()).
		Str("method", method).
		Str("route", route).
		Logger()

	logger.Debug().Msg("handling request")

	validationStart := time.Now()

	if err := validation.BindAndValidate(c, req); err != nil {
		validationDuration := time.Since(validationStart)

		logger.Warn().
			Err(err).
			Dur("validation_duration", validationDuration).
			Msg("request validation failed")

		if txn != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
			txn.AddAttribute("validation.status", "failed")
		}

		// Let the global error handler format the response.
		return err
	}

	validationDuration := time.Since(validationStart)
	if txn != nil {
		txn.AddAttribute("validation.status", "success")
	}

	handlerStart := time.Now()
	result, err := handler(c, req)
	handlerDuration := time.Since(handlerStart)

	if err != nil {
		logger.Error().
			Err(err).
			Dur("handler_duration", handlerDuration).
			Dur("total_duration", time.Since(start)).
			Msg("handler execution failed")

		if txn != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
			txn.AddAttribute("handler.status", "error")
		}
		return err
	}

	if txn != nil {
		txn.AddAttribute("handler.status", "success")
		txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
		responseHandler.AddAttributes(txn, result)
	}

	logger.Debug().
		Dur("handler_duration", handlerDuration).
		Dur("validation_duration", validationDuration).
		Dur("total_duration", time.Since(start)).
		Msg("request completed successfully")

	return responseHandler.Handle(c, result)
}

// validatablePtr constrains PReq to be a pointer to Req that knows how
// to validate itself, so the pipeline can allocate a fresh bind target
// for every request. A shared bind target would be a data race across
// concurrent requests.
type validatablePtr[Req any] interface {
	validation.Validatable
	*Req
}

// Handle wraps a typed handler with binding, validation, error
// handling, logging, and tracing, returning an echo.HandlerFunc that
// can be registered directly on a route.
func Handle[Req any, PReq validatablePtr[Req], Res any](
	h Handler,
	handler HandlerFunc[PReq, Res],
	status int,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := PReq(new(Req))
		return handleRequest(c, req, func(c echo.Context, req PReq) (interface{}, error) {
			return handler(c, req)
		}, JSONResponseHandler{status: status})
	}
}
