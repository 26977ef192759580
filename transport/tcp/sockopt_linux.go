// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

//go:build linux

package tcp

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// listenControl applies socket options on the listening socket before bind.
func listenControl(reuseAddr bool) func(network, address string, c syscall.RawConn) error {
	if !reuseAddr {
		return nil
	}
	return func(_, _ string, rc syscall.RawConn) error {
		var sockErr error
		err := rc.Control(func(fd uintptr) {
			sockErr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEADDR, 1)
		})
		if err != nil {
			return err
		}
		return sockErr
	}
}
