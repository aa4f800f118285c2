package logginghelper

import (
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

func LogStepDone(runID uuid.UUID, step string, rows int, took time.Duration) {
	log.WithFields(log.Fields{
		"run_id": runID,
		"step":   step,
		"rows":   rows,
		"took":   took.String(),
	}).Info("Report step done")
}

func LogStepError(runID uuid.UUID, step string, err error) {
	log.WithFields(log.Fields{
		"run_id": runID,
		"step":   step,
		"error":  err,
	}).Error("Report step failed")
}
