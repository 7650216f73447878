package fs

import (
	"fmt"
	"os"
	"syscall"
	"time"
)

// lockTimeout bounds how long a writer waits for a contended file lock.
const lockTimeout = 5 * time.Second

// fileLock holds an advisory flock on a sidecar file next to the protected
// file, so the protected file itself can be replaced atomically while the
// lock is held.
type fileLock struct {
	file *os.File
}

// acquireLock takes an exclusive advisory lock for the given path, retrying
// until lockTimeout elapses.
func acquireLock(path string) (*fileLock, error) {
	lockPath := path + ".lock"

	file, err := os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, filePerms)
	if err != nil {
		return nil, fmt.Errorf("opening lock file: %w", err)
	}

	deadline := time.Now().Add(lockTimeout)

	const retryInterval = 10 * time.Millisecond

	for {
		err := syscall.Flock(int(file.Fd()), syscall.LOCK_EX|syscall.LOCK_NB)
		if err == nil {
			return &fileLock{file: file}, nil
		}

		if time.Now().After(deadline) {
			_ = file.Close()
			return nil, fmt.Errorf("lock timeout: %s", path)
		}

		time.Sleep(retryInterval)
	}
}

// release drops the lock.
func (l *fileLock) release() {
	if l.file != nil {
		_ = syscall.Flock(int(l.file.Fd()), syscall.LOCK_UN)
		_ = l.file.Close()
	}
}
