package timer

import (
	"log/slog"
	"os/exec"
	"runtime"
	"sync"

	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/focusplan/internal/osutil"
)

// WakeLock keeps the machine awake while held.
type WakeLock interface {
	Acquire()
	Release()
}

// DefaultWakeLockCmd returns the sleep inhibitor for the current platform,
// or an empty string if there is none.
func DefaultWakeLockCmd() string {
	switch runtime.GOOS {
	case osutil.Darwin:
		return "caffeinate -di"
	case osutil.Windows:
		return ""
	default:
		return `systemd-inhibit --what=idle:sleep --who=focusplan --why="Focus session" sleep infinity`
	}
}

// CommandWakeLock holds a wake lock by keeping an inhibitor process alive.
// Failures are logged and otherwise ignored.
type CommandWakeLock struct {
	proc *exec.Cmd
	args []string
	mu   sync.Mutex
}

// NewCommandWakeLock parses command with shell quoting rules. An empty or
// unparsable command yields a lock that does nothing.
func NewCommandWakeLock(command string) *CommandWakeLock {
	args, err := shellquote.Split(command)
	if err != nil {
		slog.Warn(
			"unable to parse wake lock command",
			slog.String("cmd", command),
			slog.Any("error", err),
		)
	}

	return &CommandWakeLock{args: args}
}

func (w *CommandWakeLock) Acquire() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.proc != nil || len(w.args) == 0 {
		return
	}

	cmd := exec.Command(w.args[0], w.args[1:]...)

	if err := cmd.Start(); err != nil {
		slog.Warn(
			"unable to acquire wake lock",
			slog.Any("error", err),
		)

		return
	}

	w.proc = cmd

	go func() {
		_ = cmd.Wait()
	}()
}

func (w *CommandWakeLock) Release() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.proc == nil {
		return
	}

	if err := w.proc.Process.Kill(); err != nil {
		slog.Debug(
			"releasing wake lock",
			slog.Any("error", err),
		)
	}

	w.proc = nil
}

// Held reports whether the inhibitor process was started and not released.
func (w *CommandWakeLock) Held() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.proc != nil
}

type noWakeLock struct{}

func (noWakeLock) Acquire() {}

func (noWakeLock) Release() {}
