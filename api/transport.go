// File: api/transport.go
// Author: momentics <momentics@gmail.com>
//
// Defines the transport collaborator abstraction sitting behind the chain
// head. Real byte transmission, multiplexing and socket handling stay out of
// the chain core; the chain only hands finished outbound events over.

package api

// Transport is the terminal target of outbound propagation.
type Transport interface {
	// Write transmits one write request previously staged on the session's
	// pending queue. Implementations complete the request's future and fire
	// FireMessageSent once transmission is done.
	Write(s Session, wr *WriteRequest) error

	// Close tears the connection down and eventually fires
	// FireSessionClosed on the session's chain.
	Close(s Session) error
}
