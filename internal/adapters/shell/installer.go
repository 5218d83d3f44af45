// Package shell runs the package manager install command.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/creack/pty"
	"go.trai.ch/syncnm/internal/core/domain"
	"go.trai.ch/syncnm/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Installer = (*Installer)(nil)

// outputLimit bounds the install output attached to failures.
const outputLimit = 64 * 1024

// Installer implements ports.Installer using os/exec, under a pty when interactive.
type Installer struct {
	logger      ports.Logger
	interactive bool
	environ     func() []string
}

// NewInstaller creates a new Installer. When interactive is set the package
// manager runs under a pty so it renders progress as it would in a terminal.
func NewInstaller(logger ports.Logger, interactive bool) *Installer {
	return &Installer{
		logger:      logger,
		interactive: interactive,
		environ:     os.Environ,
	}
}

// Install runs "<executable> install" for kind in baseDir and waits for it.
func (i *Installer) Install(ctx context.Context, kind domain.PackageManagerKind, baseDir string) error {
	name := kind.Executable()
	args := []string{kind.InstallSubcommand()}
	env := i.environ()

	executable := name
	if lp, err := lookPath(name, env); err == nil {
		executable = lp
	}

	cmd := exec.CommandContext(ctx, executable, args...) //nolint:gosec // executable comes from a closed set
	cmd.Args[0] = name
	cmd.Dir = baseDir
	cmd.Env = env

	stdoutLog := &logWriter{logger: i.logger, level: levelInfo}
	stderrLog := &logWriter{logger: i.logger, level: levelWarn}
	output := &tailBuffer{limit: outputLimit}

	i.logger.Info(strings.Join(append([]string{name}, args...), " "))

	var err error
	if i.interactive {
		err = runPty(cmd, io.MultiWriter(stdoutLog, output))
	} else {
		cmd.Stdout = io.MultiWriter(stdoutLog, output)
		cmd.Stderr = io.MultiWriter(stderrLog, output)
		err = cmd.Run()
	}
	_ = stdoutLog.Close()
	_ = stderrLog.Close()

	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		err = zerr.Wrap(err, domain.ErrInstallFailed.Error())
		err = zerr.With(err, "command", name+" "+strings.Join(args, " "))
		err = zerr.With(err, "exit_code", exitCode)
		return zerr.With(err, "output", output.String())
	}
	return nil
}

// runPty starts cmd under a pty and copies its merged output to out until it exits.
func runPty(cmd *exec.Cmd, out io.Writer) error {
	ptmx, err := pty.Start(cmd)
	if err != nil {
		return zerr.Wrap(err, "failed to start pty")
	}

	ioDone := make(chan struct{})
	go func() {
		defer close(ioDone)
		// Reading the master fails with EIO once the child side closes.
		_, _ = io.Copy(out, ptmx)
	}()

	err = cmd.Wait()
	<-ioDone
	_ = ptmx.Close()
	return err
}

const (
	levelInfo = "info"
	levelWarn = "warn"
)

// logWriter forwards complete lines to the logger.
type logWriter struct {
	logger ports.Logger
	level  string
	buf    []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	// PTYs may introduce \r. Remove it.
	msg := strings.TrimSuffix(string(line), "\r")
	if msg == "" {
		return
	}

	if w.level == levelInfo {
		w.logger.Info(msg)
	} else {
		w.logger.Warn(msg)
	}
}

// tailBuffer keeps the last limit bytes written to it.
type tailBuffer struct {
	limit int
	buf   []byte
}

func (b *tailBuffer) Write(p []byte) (int, error) {
	b.buf = append(b.buf, p...)
	if over := len(b.buf) - b.limit; over > 0 {
		b.buf = append(b.buf[:0], b.buf[over:]...)
	}
	return len(p), nil
}

func (b *tailBuffer) String() string {
	return string(b.buf)
}

// lookPath searches for an executable in the directories named by the PATH
// entry of env, which may differ from the current process environment.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		path := filepath.Join(dir, file)
		if err := findExecutable(path); err == nil {
			return path, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
