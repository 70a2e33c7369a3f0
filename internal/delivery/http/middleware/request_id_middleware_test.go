package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "roster/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_GeneratesWhenAbsent(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := NewRequestIDMiddleware(slog.New(slog.DiscardHandler))

	var seen string
	err := mw.Process(func(c echo.Context) error {
		seen = deliverycontext.GetRequestID(c)

		return nil
	})(c)
	require.NoError(t, err)

	// The generated id is readable downstream and echoed in the response.
	_, parseErr := uuid.Parse(seen)
	assert.NoError(t, parseErr)
	assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestIDMiddleware_PropagatesClientID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "client-supplied-id")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := NewRequestIDMiddleware(slog.New(slog.DiscardHandler))

	err := mw.Process(func(c echo.Context) error {
		assert.Equal(t, "client-supplied-id", deliverycontext.GetRequestID(c))

		// The request-scoped logger rides along in the request context.
		ctx := c.Request().Context()
		assert.NotNil(t, deliverycontext.GetLogger(ctx))

		return nil
	})(c)
	require.NoError(t, err)

	assert.Equal(t, "client-supplied-id", rec.Header().Get(deliverycontext.HeaderXRequestID))
}
