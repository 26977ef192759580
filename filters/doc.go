// Package filters
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Ready-made interceptors for session filter chains: event logging, metrics
// counting, per-session ordered asynchronous dispatch, and the opaque
// codec boundary between wire bytes and message objects.
package filters
