// Package fifo reads newline-separated commands from a named pipe.
package fifo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sys/unix"
)

// MaxLine is the longest command accepted, excluding the newline.
const MaxLine = 4096

// ErrNotFifo is returned when the command path exists but is not a pipe.
var ErrNotFifo = errors.New("path exists and is not a fifo")

// Ensure creates a named pipe at path with mode 0600 unless one exists.
func Ensure(path string) error {
	var st unix.Stat_t
	err := unix.Stat(path, &st)
	if err == nil {
		if st.Mode&unix.S_IFMT != unix.S_IFIFO {
			return fmt.Errorf("%s: %w", path, ErrNotFifo)
		}
		return nil
	}
	if !errors.Is(err, unix.ENOENT) {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if err := unix.Mkfifo(path, 0600); err != nil {
		return fmt.Errorf("failed to create fifo %s: %w", path, err)
	}
	return nil
}

// Reader delivers commands written to a named pipe.
type Reader struct {
	path   string
	logger *slog.Logger
	// pollInterval bounds how long cancellation can go unnoticed.
	pollInterval time.Duration
}

// NewReader creates a reader for the pipe at path.
func NewReader(path string, logger *slog.Logger) *Reader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reader{path: path, logger: logger, pollInterval: 250 * time.Millisecond}
}

// Run sends each non-empty line to out until ctx is done. When the last
// writer closes the pipe, any unterminated line is delivered and the pipe
// is reopened. out is closed when Run returns.
func (r *Reader) Run(ctx context.Context, out chan<- string) error {
	defer close(out)

	fd, err := r.open()
	if err != nil {
		return err
	}
	defer func() { unix.Close(fd) }()

	sp := &splitter{logger: r.logger}
	buf := make([]byte, MaxLine)
	timeout := int(r.pollInterval / time.Millisecond)

	emit := func(lines []string) bool {
		for _, line := range lines {
			select {
			case out <- line:
			case <-ctx.Done():
				return false
			}
		}
		return true
	}

	reopen := func() error {
		if line, ok := sp.flush(); ok && !emit([]string{line}) {
			return nil
		}
		unix.Close(fd)
		fd, err = r.open()
		return err
	}

	for {
		if ctx.Err() != nil {
			return nil
		}

		fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		n, err := unix.Poll(fds, timeout)
		if err != nil {
			if errors.Is(err, unix.EINTR) {
				continue
			}
			return fmt.Errorf("poll %s: %w", r.path, err)
		}
		if n == 0 {
			continue
		}

		revents := fds[0].Revents
		if revents&unix.POLLNVAL != 0 {
			return fmt.Errorf("poll %s: invalid descriptor", r.path)
		}

		if revents&unix.POLLIN != 0 {
			nr, err := unix.Read(fd, buf)
			switch {
			case errors.Is(err, unix.EAGAIN), errors.Is(err, unix.EINTR):
				continue
			case err != nil:
				return fmt.Errorf("read %s: %w", r.path, err)
			case nr > 0:
				if !emit(sp.feed(buf[:nr])) {
					return nil
				}
				continue
			}
			// nr == 0: every writer has gone away.
		} else if revents&(unix.POLLHUP|unix.POLLERR) == 0 {
			continue
		}

		r.logger.Debug("command pipe hung up, reopening", "path", r.path)
		if err := reopen(); err != nil {
			return err
		}
	}
}

func (r *Reader) open() (int, error) {
	fd, err := unix.Open(r.path, unix.O_RDONLY|unix.O_NONBLOCK|unix.O_CLOEXEC, 0)
	if err != nil {
		return -1, fmt.Errorf("failed to open fifo %s: %w", r.path, err)
	}
	return fd, nil
}
