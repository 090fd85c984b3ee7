package gizmo

import (
	"bytes"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestDefaultLogger_Levels(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewLoggerTo("gizmo", false, &out, &errOut, 0)

	l.Debugf("hidden %d", 1)
	l.Infof("shown %d", 2)
	l.Warnf("careful")
	assert.Equal(t, "[gizmo] INFO: shown 2\n", out.String())
	assert.Equal(t, "[gizmo] WARN: careful\n", errOut.String())

	l.SetDebug(true)
	assert.True(t, l.DebugEnabled())
	l.Debugf("now %s", "visible")
	assert.Contains(t, out.String(), "[gizmo] DEBUG: now visible")

	out.Reset()
	NewLoggerTo("", false, &out, &errOut, 0).Infof("bare")
	assert.Equal(t, "INFO: bare\n", out.String())
}

func TestContext_LogsDragLifecycle(t *testing.T) {
	var out bytes.Buffer
	logger := NewLoggerTo("test", true, &out, &out, 0)
	d := newDriver(t)
	d.ctx = NewContext(DefaultConfig(), WithLogger(logger))
	d.ctx.SetRect(0, 0, testW, testH)

	view, proj := testCamera()
	p := Params{View: view, Projection: proj, Operation: Translate}
	m := mgl32.Ident4()

	d.frame(430, 300, true)
	d.ctx.Manipulate(p, &m, nil)
	d.frame(440, 300, false)
	d.ctx.Manipulate(p, &m, nil)

	assert.Contains(t, out.String(), "drag armed handle=move-x")
	assert.Contains(t, out.String(), "drag released handle=move-x")
}
