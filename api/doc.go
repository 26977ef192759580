// Package api
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Contract layer for hioload-chain: the session filter-chain core.
//
// The package holds interfaces and value types only. Implementations live in
// the chain, session, queue, filters and transport packages. Event flow:
// inbound events (sessionCreated, sessionOpened, sessionClosed, sessionIdle,
// exceptionCaught, messageReceived, messageSent) enter at the chain head and
// travel toward the tail, terminating at the session Handler. Outbound events
// (filterWrite, filterClose) enter nearest the tail and travel toward the
// head, terminating at the session Transport.
package api
