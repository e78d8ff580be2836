package main

import (
	"context"
	"errors"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"restaurant-reviews/internal/database"
	"restaurant-reviews/internal/logger"
)

func restoreGlobals() {
	newPgxPool = database.NewPgxPool
	runMigrationsFn = database.RunMigrations
	setupLogger = logger.Setup
	startServer = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc = func(code int) {}
}

func TestRunSuccess(t *testing.T) {
	t.Cleanup(restoreGlobals)
	called := make(map[string]bool)
	setupLogger = func() { called["logger"] = true }
	newPgxPool = func(ctx context.Context, url string) (database.DB, error) {
		called["pgx"] = true
		require.Equal(t, "db", url)
		return &database.FakeDB{CloseFn: func() { called["dbClose"] = true }}, nil
	}
	runMigrationsFn = func(url string) error { called["migrate"] = true; return nil }
	startServer = func(e *echo.Echo, addr string) error {
		called["start"] = true
		require.Equal(t, ":9999", addr)
		return nil
	}

	t.Setenv("DATABASE_URL", "db")
	t.Setenv("HTTP_ADDR", ":9999")

	require.NoError(t, run())
	require.True(t, called["logger"])
	require.True(t, called["pgx"])
	require.True(t, called["migrate"])
	require.True(t, called["start"])
	require.True(t, called["dbClose"])
}

func TestRunDefaultAddr(t *testing.T) {
	t.Cleanup(restoreGlobals)
	setupLogger = func() {}
	newPgxPool = func(ctx context.Context, url string) (database.DB, error) {
		return &database.FakeDB{CloseFn: func() {}}, nil
	}
	runMigrationsFn = func(url string) error { return nil }
	var gotAddr string
	startServer = func(e *echo.Echo, addr string) error { gotAddr = addr; return nil }

	t.Setenv("DATABASE_URL", "db")
	t.Setenv("HTTP_ADDR", "")

	require.NoError(t, run())
	require.Equal(t, ":8080", gotAddr)
}

func TestRunErrors(t *testing.T) {
	t.Cleanup(restoreGlobals)
	setupLogger = func() {}

	t.Setenv("DATABASE_URL", "")
	require.Error(t, run())

	t.Setenv("DATABASE_URL", "db")
	newPgxPool = func(ctx context.Context, url string) (database.DB, error) {
		return nil, errors.New("pool")
	}
	require.Error(t, run())

	newPgxPool = func(ctx context.Context, url string) (database.DB, error) {
		return &database.FakeDB{CloseFn: func() {}}, nil
	}
	runMigrationsFn = func(url string) error { return errors.New("migrate") }
	require.Error(t, run())
}
