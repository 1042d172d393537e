// Package statslog persists the bot's opponent statistics at the end of a match.
// Nothing here influences play; failures are logged and dropped by Export.
package statslog

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Observation is one row of the statistics table.
type Observation struct {
	PointValue     int
	RespondedValue int
	Weight         int
}

// String renders the observation in the on-disk line format, without the newline.
func (o Observation) String() string {
	return fmt.Sprintf("%d, %d, %d", o.PointValue, o.RespondedValue, o.Weight)
}

// Sink accepts observations one at a time.
type Sink interface {
	Append(obs Observation) error
	Close() error
}

// MultiSink fans every observation out to each of its sinks.
type MultiSink []Sink

func (m MultiSink) Append(obs Observation) error {
	var errs []error
	for _, s := range m {
		if err := s.Append(obs); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m MultiSink) Close() error {
	var errs []error
	for _, s := range m {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Export writes every observation to sink and returns how many were accepted.
// Individual failures are logged and skipped.
func Export(sink Sink, observations []Observation, log logrus.FieldLogger) int {
	if sink == nil {
		return 0
	}
	written := 0
	for _, obs := range observations {
		if err := sink.Append(obs); err != nil {
			log.Warnf("Could not persist observation %q: %v", obs.String(), err)
			continue
		}
		written++
	}
	log.Debugf("Persisted %d/%d observations.", written, len(observations))
	return written
}
