package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"FLOWRANK_ALG", "FLOWRANK_QUEUE", "FLOWRANK_FLOWS", "FLOWRANK_SEQSIZE",
		"FLOWRANK_K", "FLOWRANK_RNG", "FLOWRANK_NUMEXEC", "FLOWRANK_DIST",
		"FLOWRANK_RESULTS", "FLOWRANK_SUMMARY",
	} {
		t.Setenv(key, "")
	}
	cfg := Load()
	assert.Equal(t, "none", cfg.Alg)
	assert.Equal(t, 50, cfg.QueueSize)
	assert.Equal(t, 100, cfg.FlowCount)
	assert.Equal(t, 10000, cfg.SeqSize)
	assert.Equal(t, 1, cfg.K)
	assert.Equal(t, uint64(1), cfg.Seed)
	assert.Equal(t, 1, cfg.Repetitions)
	assert.Equal(t, "uniform", cfg.Dist)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("FLOWRANK_QUEUE", "500")
	t.Setenv("FLOWRANK_ALG", "ranked")
	t.Setenv("FLOWRANK_K", "not-a-number")
	cfg := Load()
	assert.Equal(t, 500, cfg.QueueSize)
	assert.Equal(t, "ranked", cfg.Alg)
	// 非法数字回落到缺省值
	assert.Equal(t, 1, cfg.K)
}
