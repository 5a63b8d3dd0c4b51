package jobs

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/reportes-ventas/pkg/logger"
)

type fakeVacuumer struct {
	calls  int
	maxAge time.Duration
	n      int64
	err    error
}

func (f *fakeVacuumer) Vacuum(_ context.Context, maxAge time.Duration) (int64, error) {
	f.calls++
	f.maxAge = maxAge
	return f.n, f.err
}

func newTestLogger(buf *bytes.Buffer) *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "debug", Out: buf})
}

func TestReportVacuumJob_RunPasaMaxAgeYRegistra(t *testing.T) {
	var buf bytes.Buffer
	v := &fakeVacuumer{n: 3}
	j := NewReportVacuumJob(v, "@every 15m", time.Hour, newTestLogger(&buf))

	j.run()

	assert.Equal(t, 1, v.calls)
	assert.Equal(t, time.Hour, v.maxAge)
	assert.Contains(t, buf.String(), `"deleted":3`)
}

func TestReportVacuumJob_RunRegistraError(t *testing.T) {
	var buf bytes.Buffer
	v := &fakeVacuumer{err: errors.New("db caída")}
	j := NewReportVacuumJob(v, "@every 15m", time.Hour, newTestLogger(&buf))

	j.run()

	assert.Contains(t, buf.String(), "db caída")
	assert.Contains(t, buf.String(), `"level":"error"`)
}

func TestReportVacuumJob_ProgramacionInvalida(t *testing.T) {
	j := NewReportVacuumJob(&fakeVacuumer{}, "cada tanto", time.Hour, logger.Nop())

	assert.Error(t, j.Start())
}

func TestReportVacuumJob_StartStop(t *testing.T) {
	j := NewReportVacuumJob(&fakeVacuumer{}, "@every 1h", time.Hour, logger.Nop())

	require.NoError(t, j.Start())
	j.Stop()
}
