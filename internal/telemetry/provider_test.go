package telemetry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsEnabled(t *testing.T) {
	assert.False(t, Options{Service: "client"}.Enabled())
	assert.False(t, Options{Service: "client", Endpoint: "  "}.Enabled())
	assert.True(t, Options{Service: "client", Endpoint: "http://localhost:4318"}.Enabled())
}

func TestStartWithoutEndpoint(t *testing.T) {
	flush, err := Start(context.Background(), Options{Service: "client"})
	require.NoError(t, err)
	assert.NoError(t, flush(context.Background()))
}

func TestRunValidatesArguments(t *testing.T) {
	noop := func(context.Context) error { return nil }
	assert.Error(t, Run(context.Background(), Options{Service: " "}, noop))
	assert.Error(t, Run(context.Background(), Options{Service: "client"}, nil))
}

func TestRunReturnsRunError(t *testing.T) {
	boom := errors.New("boom")
	called := false
	err := Run(context.Background(), Options{Service: "client"}, func(context.Context) error {
		called = true
		return boom
	})
	assert.True(t, called)
	assert.ErrorIs(t, err, boom)
}
