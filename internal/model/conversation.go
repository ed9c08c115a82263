package model

import "time"

// Turn is one completed user/assistant exchange. A Turn is immutable once
// appended to a conversation; feedback is recorded as a storage-side
// annotation, never by editing the Turn.
type Turn struct {
	UserText      string
	AssistantText string
	Responder     string // responder identity that produced the answer; empty if unrouted
	Timestamp     time.Time
}

// Conversation is the full mutable state of one chat session. It is owned
// by the session manager and mutated only under the per-conversation lock.
type Conversation struct {
	ID        string // opaque, assigned once at session start
	TurnIndex int    // increments by exactly one per completed exchange
	History   []Turn // append-only, insertion order is replay order
}

// AppendTurn records a completed exchange and advances the turn counter.
func (c *Conversation) AppendTurn(turn Turn) {
	c.History = append(c.History, turn)
	c.TurnIndex++
}
