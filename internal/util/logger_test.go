package util

import (
	bassert "github.com/bmizerany/assert"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestSetupLogger(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	assert.NoError(t, SetupLogger("debug", "json"))
	bassert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	assert.NoError(t, SetupLogger("", "text"))
	bassert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	assert.Error(t, SetupLogger("loud", ""))
}

func Test_formatter(t *testing.T) {
	assert.IsType(t, &logrus.JSONFormatter{}, formatter("json", true))
	assert.IsType(t, &logrus.JSONFormatter{}, formatter("JSON", false))
	assert.IsType(t, &logrus.TextFormatter{}, formatter("text", false))
	assert.IsType(t, &logrus.TextFormatter{}, formatter("", true))
	assert.IsType(t, &logrus.JSONFormatter{}, formatter("", false))
}
