package converter

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// ProgressConfig controls whether the terminal heartbeat is rendered and
// where it writes.
type ProgressConfig struct {
	Enabled bool
	Writer  io.Writer
}

// Heartbeat renders a spinner with elapsed time while a chunk upload is in
// flight, so a long wait on the transcription API does not look like a
// hang. Disabled, every method is a no-op.
type Heartbeat struct {
	container *mpb.Progress
	enabled   bool
	mu        sync.Mutex
}

func NewHeartbeat(config ProgressConfig) *Heartbeat {
	if !config.Enabled {
		return &Heartbeat{enabled: false}
	}

	writer := config.Writer
	if writer == nil {
		writer = os.Stderr
	}

	container := mpb.New(
		mpb.WithOutput(writer),
		mpb.WithRefreshRate(120*time.Millisecond),
	)

	return &Heartbeat{
		container: container,
		enabled:   true,
	}
}

// Start begins a spinner labeled with description. The returned stop
// function finalizes the line and is safe to call more than once.
func (h *Heartbeat) Start(description string) func() {
	if !h.enabled || h.container == nil {
		return func() {}
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	spinner := h.container.New(1,
		mpb.SpinnerStyle(),
		mpb.BarRemoveOnComplete(),
		mpb.PrependDecorators(
			decor.Name(description+" "),
		),
		mpb.AppendDecorators(
			decor.Elapsed(decor.ET_STYLE_GO),
		),
	)

	var once sync.Once
	return func() {
		once.Do(func() {
			spinner.SetTotal(spinner.Current(), true)
		})
	}
}

func (h *Heartbeat) Shutdown() {
	if h.enabled && h.container != nil {
		h.container.Shutdown()
	}
}

func IsTTY(writer io.Writer) bool {
	if writer == nil {
		return false
	}

	if file, ok := writer.(*os.File); ok {
		stat, err := file.Stat()
		if err != nil {
			return false
		}
		return (stat.Mode() & os.ModeCharDevice) != 0
	}
	return false
}

// ShouldShowProgress reports whether the heartbeat should render. Forcing
// overrides the TTY check for terminals that misreport.
func ShouldShowProgress(forced bool) bool {
	if forced {
		return true
	}

	return IsTTY(os.Stderr) || IsTTY(os.Stdout)
}
