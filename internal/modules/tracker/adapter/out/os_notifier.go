package out

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"sync"

	hclog "github.com/hashicorp/go-hclog"

	trackerout "focustracker/internal/modules/tracker/port/out"
	"focustracker/internal/platform/logging"
)

var errNoNotifier = errors.New("desktop notifications unavailable")

// OSNotifier shells out to notify-send on linux and osascript on darwin.
// Missing tooling disables notifications without failing the caller.
type OSNotifier struct {
	logger  hclog.Logger
	enabled bool

	once sync.Once
	path string
	err  error
}

func NewOSNotifier(enabled bool, logger hclog.Logger) trackerout.Notifier {
	if logger == nil {
		logger = logging.Discard()
	}
	return &OSNotifier{enabled: enabled, logger: logger.Named("notify")}
}

func (n *OSNotifier) Prepare(_ context.Context) {
	n.probe()
}

func (n *OSNotifier) Notify(_ context.Context, title, body string) error {
	if !n.enabled {
		return nil
	}
	n.probe()
	if n.err != nil {
		return nil
	}
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		script := fmt.Sprintf("display notification %q with title %q", body, title)
		cmd = exec.Command(n.path, "-e", script)
	default:
		cmd = exec.Command(n.path, title, body)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("send notification: %w", err)
	}
	go cmd.Wait()
	return nil
}

func (n *OSNotifier) probe() {
	n.once.Do(func() {
		if !n.enabled {
			n.err = errNoNotifier
			return
		}
		var bin string
		switch runtime.GOOS {
		case "darwin":
			bin = "osascript"
		case "linux", "freebsd", "openbsd":
			bin = "notify-send"
		default:
			n.err = errNoNotifier
			n.logger.Debug("notifications not supported", "os", runtime.GOOS)
			return
		}
		n.path, n.err = exec.LookPath(bin)
		if n.err != nil {
			n.logger.Debug("notification tool not found", "tool", bin)
		}
	})
}
