// Package jobs tareas programadas en segundo plano.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jhoicas/reportes-ventas/pkg/logger"
)

// Vacuumer elimina solicitudes de reporte antiguas.
type Vacuumer interface {
	Vacuum(ctx context.Context, maxAge time.Duration) (int64, error)
}

// ReportVacuumJob purga periódicamente las solicitudes del asistente de reporte, que son
// registros transitorios: se crean por invocación y solo sirven hasta descargar el archivo.
type ReportVacuumJob struct {
	vacuumer Vacuumer
	schedule string
	maxAge   time.Duration
	timeout  time.Duration
	cron     *cron.Cron
	log      *logger.Logger
}

// NewReportVacuumJob schedule en sintaxis robfig/cron (ej. "@every 15m").
func NewReportVacuumJob(v Vacuumer, schedule string, maxAge time.Duration, log *logger.Logger) *ReportVacuumJob {
	return &ReportVacuumJob{
		vacuumer: v,
		schedule: schedule,
		maxAge:   maxAge,
		timeout:  time.Minute,
		cron:     cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		log:      log.Component("report_vacuum_job"),
	}
}

// Start registra la tarea y arranca el planificador.
func (j *ReportVacuumJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return fmt.Errorf("jobs: programar purga %q: %w", j.schedule, err)
	}
	j.cron.Start()
	j.log.Info().Str("schedule", j.schedule).Dur("max_age", j.maxAge).Msg("purga de solicitudes iniciada")
	return nil
}

// Stop detiene el planificador y espera a que termine una ejecución en curso.
func (j *ReportVacuumJob) Stop() {
	<-j.cron.Stop().Done()
	j.log.Info().Msg("purga de solicitudes detenida")
}

func (j *ReportVacuumJob) run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	n, err := j.vacuumer.Vacuum(ctx, j.maxAge)
	if err != nil {
		j.log.Error().Err(err).Msg("purga de solicitudes fallida")
		return
	}
	if n > 0 {
		j.log.Info().Int64("deleted", n).Msg("solicitudes de reporte purgadas")
	}
}
