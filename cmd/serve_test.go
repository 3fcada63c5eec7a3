package cmd

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunHTTPServer_ReturnsListenError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	err = runHTTPServer(ctx, e, ln.Addr().String())
	require.Error(t, err)
	assert.NoError(t, ctx.Err(), "expected the listen error before the deadline")
}

func TestRunHTTPServer_StopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	defer func() { _ = e.Close() }()

	time.AfterFunc(50*time.Millisecond, cancel)
	assert.NoError(t, runHTTPServer(ctx, e, "127.0.0.1:0"))
}
