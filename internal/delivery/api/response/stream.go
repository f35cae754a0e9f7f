package response

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Stream event names
const (
	EventSnapshot = "snapshot"
	EventError    = "error"
)

// EventStream writes Server-Sent Events on an echo response.
type EventStream struct {
	res *echo.Response
}

// NewEventStream sends the SSE headers and returns the stream.
func NewEventStream(c echo.Context) *EventStream {
	res := c.Response()
	header := res.Header()
	header.Set(echo.HeaderContentType, "text/event-stream")
	header.Set(echo.HeaderCacheControl, "no-cache")
	header.Set(echo.HeaderConnection, "keep-alive")
	header.Set("X-Accel-Buffering", "no")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	return &EventStream{res: res}
}

// Send writes one event with a JSON payload.
func (s *EventStream) Send(event string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return errors.Wrap(err, "failed to encode stream event")
	}

	if _, err := fmt.Fprintf(s.res, "event: %s\ndata: %s\n\n", event, payload); err != nil {
		return errors.Wrap(err, "failed to write stream event")
	}
	s.res.Flush()

	return nil
}

// Ping writes a comment line so proxies keep the connection open.
func (s *EventStream) Ping() error {
	if _, err := fmt.Fprint(s.res, ": keep-alive\n\n"); err != nil {
		return errors.Wrap(err, "failed to write keep-alive")
	}
	s.res.Flush()

	return nil
}
