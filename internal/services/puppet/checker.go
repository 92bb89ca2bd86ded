package puppet

import (
	"time"

	"go.uber.org/zap"

	"github.com/vshulcz/hostcheck/internal/domain"
	"github.com/vshulcz/hostcheck/internal/ports"
)

// Checker reads a summary through a ports.SummaryReader and classifies it.
type Checker struct {
	reader ports.SummaryReader
	log    *zap.Logger
	now    func() time.Time
}

func NewChecker(reader ports.SummaryReader, log *zap.Logger) *Checker {
	if log == nil {
		log = zap.NewNop()
	}
	return &Checker{reader: reader, log: log, now: time.Now}
}

func (c *Checker) Check(path string, th domain.Thresholds) domain.Verdict {
	sum, err := c.reader.Read(path)
	if err != nil {
		c.log.Debug("summary read failed", zap.String("path", path), zap.Error(err))
	}
	v := Classify(Input{Summary: sum, Err: err, Path: path}, th, c.now())
	c.log.Debug("summary classified",
		zap.String("path", path),
		zap.Int64("last_run", sum.LastRun),
		zap.Stringer("status", v.Status),
	)
	return v
}
