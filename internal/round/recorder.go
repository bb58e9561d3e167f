package round

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// DefaultRecordQueue is the BufferedRecorder queue size when none is given.
const DefaultRecordQueue = 32

// ErrRecorderFull is returned when a BufferedRecorder cannot take another
// summary without blocking.
var ErrRecorderFull = errors.New("round: recorder queue full")

// BufferedRecorder moves round persistence off the driver goroutine.
// RecordRound only enqueues; Run writes each summary to the wrapped Recorder.
type BufferedRecorder struct {
	next    Recorder
	queue   chan Summary
	timeout time.Duration
	logger  *slog.Logger
}

func NewBufferedRecorder(next Recorder, size int, logger *slog.Logger) *BufferedRecorder {
	if size <= 0 {
		size = DefaultRecordQueue
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &BufferedRecorder{
		next:    next,
		queue:   make(chan Summary, size),
		timeout: recordTimeout,
		logger:  logger,
	}
}

// RecordRound never blocks. A full queue drops the summary.
func (b *BufferedRecorder) RecordRound(_ context.Context, s Summary) error {
	select {
	case b.queue <- s:
		return nil
	default:
		return ErrRecorderFull
	}
}

// Run writes queued summaries until ctx is done, then flushes what is left.
func (b *BufferedRecorder) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			b.flush()
			return
		case s := <-b.queue:
			b.write(s)
		}
	}
}

func (b *BufferedRecorder) flush() {
	for {
		select {
		case s := <-b.queue:
			b.write(s)
		default:
			return
		}
	}
}

func (b *BufferedRecorder) write(s Summary) {
	ctx, cancel := context.WithTimeout(context.Background(), b.timeout)
	defer cancel()
	if err := b.next.RecordRound(ctx, s); err != nil {
		b.logger.Error("record round", "round", s.RoundID, "err", err)
	}
}
