// Package session
// Author: momentics <momentics@gmail.com>
//
// Per-connection session layer. Each Session maps to one logical connection,
// exclusively owns one filter chain, and references the shared terminal
// handler plus the transport collaborator. A sharded Manager tracks live
// sessions; the IdleChecker is the external timer collaborator that feeds
// sessionIdle notifications into chains.

package session
