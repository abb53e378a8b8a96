package config

import (
	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v2"
	"holdem-evaluator/internal/util"
	"os"
	"testing"
)

func TestInstance(t *testing.T) {
	clear1 := util.SetEnv("HOLDEM_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := util.SetEnv("HOLDEM_WORKERS", "8")
	defer clear2()
	config = Config{}

	a := assert.New(t)
	cfg := Instance()
	a.Equal("debug", cfg.Log.Level)
	a.Equal("json", cfg.Log.Format)
	a.Equal(8, cfg.Workers)
	a.Equal(int64(1234), cfg.Seed)
	a.Equal(500, cfg.Hands)
	a.Equal(6, cfg.Seats, "defaults survive a partial file")

	// ensure that it's only loaded once
	_ = os.Setenv("HOLDEM_WORKERS", "16")
	// ensure we aren't using a pointer
	cfg.Workers = 99
	cfg = Instance()
	a.Equal(8, cfg.Workers)
}

func TestDefaults(t *testing.T) {
	clear1 := util.SetEnv("HOLDEM_CONFIG_FILE", "testdata/does-not-exist.yaml")
	defer clear1()

	assert.NoError(t, Load())
	cfg := Instance()
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "", cfg.Log.Format, "empty format lets the terminal decide")
	assert.Equal(t, 10000, cfg.Hands)
	assert.Equal(t, 6, cfg.Seats)
	assert.Equal(t, 0, cfg.Workers)
}

func TestLoad_Env(t *testing.T) {
	clear1 := util.SetEnv("HOLDEM_CONFIG_FILE", "testdata/does-not-exist.yaml")
	defer clear1()
	clear2 := util.SetEnv("HOLDEM_SEED", "not-a-number")
	defer clear2()

	assert.Error(t, Load())
}

func TestDefaultConfig_YAML(t *testing.T) {
	b, err := yaml.Marshal(DefaultConfig())
	assert.NoError(t, err)
	assert.Equal(t, "log:\n  level: info\n  format: \"\"\nworkers: 0\nseed: 0\nhands: 10000\nseats: 6\n", string(b))
}
