// File: internal/services/reveal/presenter.go
package reveal

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"
)

// Config holds the pacing parameters for the line-by-line reveal.
type Config struct {
	BaseDelay     time.Duration
	PerCharDelay  time.Duration
	MaxLengthPart time.Duration
}

// DefaultConfig paces the reveal so short lines appear quickly and long
// lines never stall the reader for more than BaseDelay + MaxLengthPart.
func DefaultConfig() Config {
	return Config{
		BaseDelay:     80 * time.Millisecond,
		PerCharDelay:  3 * time.Millisecond,
		MaxLengthPart: 200 * time.Millisecond,
	}
}

// Presenter replays a finished answer line by line, publishing the growing
// text after each line with a length-dependent pause in between.
type Presenter struct {
	config Config
	sleep  func(ctx context.Context, d time.Duration) error
}

func NewPresenter(config Config) *Presenter {
	return &Presenter{config: config, sleep: sleepContext}
}

// Reveal publishes progressively longer prefixes of text, one non-blank
// line at a time, each followed by a trailing newline. Blank lines are
// skipped without a publish or a pause. Returns the context's error when
// cancelled mid-reveal; already published prefixes are not retracted.
func (p *Presenter) Reveal(ctx context.Context, text string, publish func(accumulated string)) error {
	var buf strings.Builder
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		buf.WriteString(line)
		buf.WriteString("\n")
		publish(buf.String())

		if err := p.sleep(ctx, p.lineDelay(line)); err != nil {
			return err
		}
	}
	return nil
}

func (p *Presenter) lineDelay(line string) time.Duration {
	lengthPart := time.Duration(utf8.RuneCountInString(line)) * p.config.PerCharDelay
	if lengthPart > p.config.MaxLengthPart {
		lengthPart = p.config.MaxLengthPart
	}
	return p.config.BaseDelay + lengthPart
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
