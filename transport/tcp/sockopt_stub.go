// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

//go:build !linux

package tcp

import "syscall"

// listenControl is a no-op off Linux; the listener binds with defaults.
func listenControl(bool) func(network, address string, c syscall.RawConn) error {
	return nil
}
