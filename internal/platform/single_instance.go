// Package platform holds the OS integration fyne does not provide.
package platform

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net"
)

// ErrAlreadyRunning is returned when another process holds the lock.
var ErrAlreadyRunning = errors.New("another instance is already running")

const (
	minLockPort = 20000
	maxLockPort = 39999
)

// Lock keeps a loopback port bound for as long as the process runs.
type Lock struct {
	listener net.Listener
}

// AcquireLock binds the port derived from name. A second process using the
// same name gets ErrAlreadyRunning until the first releases it or exits.
func AcquireLock(name string) (*Lock, error) {
	address := lockAddress(name)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrAlreadyRunning, address, err)
	}
	return &Lock{listener: listener}, nil
}

// Release frees the port. It is safe on a nil lock.
func (lock *Lock) Release() error {
	if lock == nil || lock.listener == nil {
		return nil
	}
	err := lock.listener.Close()
	lock.listener = nil
	return err
}

// Addr returns the bound address, or "" once released.
func (lock *Lock) Addr() string {
	if lock == nil || lock.listener == nil {
		return ""
	}
	return lock.listener.Addr().String()
}

func lockAddress(name string) string {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(name))
	span := uint32(maxLockPort - minLockPort + 1)
	return fmt.Sprintf("127.0.0.1:%d", minLockPort+int(hash.Sum32()%span))
}
