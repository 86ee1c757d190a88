package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"

	"github.com/example/yms/internal/ports/secondary"
)

// DefaultRetryDelay is how often a blocked Lock retries the file lock.
const DefaultRetryDelay = 50 * time.Millisecond

// FileLocker implements secondary.Locker with an advisory lock file.
// The mutex serializes goroutines; the file lock serializes processes.
type FileLocker struct {
	mu         sync.Mutex
	flock      *flock.Flock
	retryDelay time.Duration
}

// NewFileLocker creates a locker backed by path, creating its directory.
func NewFileLocker(path string) (*FileLocker, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}
	return &FileLocker{
		flock:      flock.New(path),
		retryDelay: DefaultRetryDelay,
	}, nil
}

// Lock blocks until both locks are held or ctx is done.
func (l *FileLocker) Lock(ctx context.Context) (func() error, error) {
	l.mu.Lock()

	locked, err := l.flock.TryLockContext(ctx, l.retryDelay)
	if err != nil {
		l.mu.Unlock()
		return nil, fmt.Errorf("failed to acquire file lock: %w", err)
	}
	if !locked {
		l.mu.Unlock()
		return nil, fmt.Errorf("failed to acquire file lock %s", l.flock.Path())
	}

	var once sync.Once
	return func() error {
		var unlockErr error
		once.Do(func() {
			unlockErr = l.flock.Unlock()
			l.mu.Unlock()
		})
		return unlockErr
	}, nil
}

// Path returns the lock file path.
func (l *FileLocker) Path() string {
	return l.flock.Path()
}

var _ secondary.Locker = (*FileLocker)(nil)
