// Package validator checks that a captured xAPI statement carries the verb
// expected for the meeting event it was mapped from.
package validator

import (
	"github.com/okian/xapiverbs/internal/domain/model"
	"github.com/okian/xapiverbs/internal/domain/vocabulary"
)

// Predicate judges whether a statement is a correct mapping of an event.
type Predicate func(event model.Event, statement model.Statement) bool

// fixedVerbs lists the events whose expected verb does not depend on the
// event payload.
var fixedVerbs = map[string]string{ //nolint:gochecknoglobals // static lookup table
	vocabulary.MeetingCreated:            vocabulary.VerbInitialized,
	vocabulary.MeetingEnded:              vocabulary.VerbTerminated,
	vocabulary.UserJoined:                vocabulary.VerbJoin,
	vocabulary.UserLeft:                  vocabulary.VerbLeave,
	vocabulary.UserAudioVoiceEnabled:     vocabulary.VerbStart,
	vocabulary.UserAudioVoiceDisabled:    vocabulary.VerbStopped,
	vocabulary.UserAudioMuted:            vocabulary.VerbStopped,
	vocabulary.UserAudioUnmuted:          vocabulary.VerbStart,
	vocabulary.UserCamBroadcastStart:     vocabulary.VerbStart,
	vocabulary.UserCamBroadcastEnd:       vocabulary.VerbStopped,
	vocabulary.MeetingScreenshareStarted: vocabulary.VerbShare,
	vocabulary.MeetingScreenshareStopped: vocabulary.VerbUnshare,
	vocabulary.ChatGroupMessageSent:      vocabulary.VerbPosted,
	vocabulary.PollStarted:               vocabulary.VerbAsked,
	vocabulary.PollResponded:             vocabulary.VerbAnswered,
}

// Validators maps event identifiers to their predicates. It is built at
// package initialisation and must not be modified.
var Validators = buildValidators() //nolint:gochecknoglobals // static lookup table

func buildValidators() map[string]Predicate {
	table := make(map[string]Predicate, len(fixedVerbs)+1)
	for id, verb := range fixedVerbs {
		table[id] = verbIs(verb)
	}
	table[vocabulary.UserRaiseHandChanged] = func(ev model.Event, st model.Statement) bool {
		return st.VerbID() == raiseHandVerb(ev)
	}
	return table
}

// verbIs returns a predicate comparing the statement verb against a fixed IRI.
func verbIs(verb string) Predicate {
	return func(_ model.Event, st model.Statement) bool {
		return st.VerbID() == verb
	}
}

func raiseHandVerb(ev model.Event) string {
	if ev.RaisedHand() {
		return vocabulary.VerbReacted
	}
	return vocabulary.VerbUnreacted
}

// Lookup returns the predicate registered for an event identifier.
func Lookup(eventID string) (Predicate, bool) {
	p, ok := Validators[eventID]
	return p, ok
}

// Validate reports whether statement is the expected mapping of event.
// An event identifier without a predicate yields a *MissingValidatorError.
func Validate(event model.Event, statement model.Statement) (bool, error) {
	p, ok := Lookup(event.ID())
	if !ok {
		return false, &MissingValidatorError{EventID: event.ID(), VerbID: statement.VerbID()}
	}
	return p(event, statement), nil
}

// ExpectedVerb returns the verb IRI a correct statement for event carries.
func ExpectedVerb(event model.Event) (string, error) {
	id := event.ID()
	if id == vocabulary.UserRaiseHandChanged {
		return raiseHandVerb(event), nil
	}
	verb, ok := fixedVerbs[id]
	if !ok {
		return "", &MissingValidatorError{EventID: id}
	}
	return verb, nil
}
