// Package model contains domain models passed between layers.
package model

// Event is a mapped meeting webhook payload as found in the sample fixture.
// Only the fields consulted by verb validation are modelled; everything else
// on the wire is ignored during decoding.
type Event struct {
	Data EventData `json:"data"`
}

// EventData carries the event identifier and its attributes.
type EventData struct {
	ID         string     `json:"id"`         // event identifier, e.g. "meeting-created"
	Attributes Attributes `json:"attributes"` // optional per-event attributes
}

// Attributes holds the optional attribute block of an event.
type Attributes struct {
	User *User `json:"user,omitempty"`
}

// User describes the acting user of an event.
type User struct {
	RaiseHand *bool `json:"raise-hand,omitempty"`
}

// ID returns the event identifier (data.id).
func (e Event) ID() string { return e.Data.ID }

// RaisedHand reports the raise-hand flag. A missing user block or flag
// counts as a lowered hand.
func (e Event) RaisedHand() bool {
	u := e.Data.Attributes.User
	if u == nil || u.RaiseHand == nil {
		return false
	}
	return *u.RaiseHand
}

// Statement is a captured xAPI statement. The record is opaque apart from
// its verb.
type Statement struct {
	ID   string `json:"id,omitempty"`
	Verb Verb   `json:"verb"`
}

// Verb is the xAPI verb of a statement.
type Verb struct {
	ID      string            `json:"id"`                // verb IRI
	Display map[string]string `json:"display,omitempty"` // language map
}

// VerbID returns the statement's verb.id.
func (s Statement) VerbID() string { return s.Verb.ID }
