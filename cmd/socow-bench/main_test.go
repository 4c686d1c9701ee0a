package main

import (
	"testing"

	"github.com/go-kit/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestRunWorkload(t *testing.T) {
	reg := prometheus.NewRegistry()
	result, err := runWorkload(workloadConfig{
		logger:   log.NewNopLogger(),
		reg:      reg,
		elements: 200,
		forks:    5,
	})
	require.NoError(t, err)
	assert.True(t, result.promotedToLarge)
	assert.Equal(t, 200, result.finalLen)
	assert.True(t, result.forksTaken > 0)

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}
