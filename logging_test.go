package universe

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultLogger_Streams(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewLoggerTo(&out, &errOut, "", false)

	l.Debugf("quiet")
	l.Infof("info %s", "line")
	l.Warnf("careful")
	l.Errorf("broken")

	assert.Contains(t, out.String(), "INFO: info line")
	assert.NotContains(t, out.String(), "quiet")
	assert.Contains(t, errOut.String(), "WARN: careful")
	assert.Contains(t, errOut.String(), "ERROR: broken")
	assert.False(t, strings.Contains(out.String(), "WARN"))
}

func TestDefaultLogger_Debug(t *testing.T) {
	var out bytes.Buffer
	l := NewLoggerTo(&out, &out, "app", false)

	l.SetDebug(true)
	assert.True(t, l.DebugEnabled())
	l.Debugf("visible %d", 2)

	assert.Contains(t, out.String(), "[app] DEBUG: visible 2")
}

func TestNopLogger(t *testing.T) {
	var app *App
	l := app.Logger()
	l.SetDebug(true)
	assert.False(t, l.DebugEnabled())
	l.Errorf("ignored")
}
