package descriptor

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"
)

// Loader performs the one-shot asynchronous descriptor fetch. The fetch
// starts immediately and never blocks the render loop; Poll observes the
// outcome. Failure is terminal for the session: there is no retry, and
// consumers render nothing scene-dependent.
type Loader struct {
	result chan outcome

	desc   *Descriptor
	failed bool
	done   bool
}

type outcome struct {
	desc *Descriptor
	err  error
}

// Start begins fetching the descriptor from source, which is either an
// http(s) URL or a local file path.
func Start(source string) *Loader {
	l := &Loader{result: make(chan outcome, 1)}

	go func() {
		desc, err := fetch(source)
		l.result <- outcome{desc: desc, err: err}
	}()

	return l
}

// Poll checks for fetch completion without blocking. It returns the
// descriptor (nil while in flight or after a failure) and whether the
// fetch has finished. The outcome is cached after the first completed
// call.
func (l *Loader) Poll() (*Descriptor, bool) {
	if l.done {
		return l.desc, true
	}

	select {
	case out := <-l.result:
		l.done = true
		if out.err != nil {
			l.failed = true
			slog.Error("scene descriptor load failed; scene-dependent content disabled for this session", "error", out.err)
			return nil, true
		}
		l.desc = out.desc
		slog.Info("scene descriptor loaded",
			"camera", out.desc.Camera.Position,
			"light", out.desc.Light.Position,
		)
		return l.desc, true
	default:
		return nil, false
	}
}

// Failed reports whether the fetch completed with an error.
func (l *Loader) Failed() bool {
	return l.failed
}

// Ready reports whether the descriptor has loaded and scene-dependent
// content may render. False while the fetch is in flight and, because
// failure is terminal, forever after a failed load. Observes the
// outcome consumed by Poll.
func (l *Loader) Ready() bool {
	return l.done && !l.failed
}

func fetch(source string) (*Descriptor, error) {
	data, err := read(source)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func read(source string) ([]byte, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		client := &http.Client{Timeout: 10 * time.Second}
		resp, err := client.Get(source)
		if err != nil {
			return nil, fmt.Errorf("fetching %s: %w", source, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("fetching %s: status %s", source, resp.Status)
		}
		return io.ReadAll(resp.Body)
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", source, err)
	}
	return data, nil
}
