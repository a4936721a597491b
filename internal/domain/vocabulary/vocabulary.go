// Package vocabulary names the meeting events handled by the xAPI mapping and
// the verb IRIs they are expected to produce.
package vocabulary

import "slices"

// Event identifiers (data.id) of the supported meeting events.
const (
	ChatGroupMessageSent      = "chat-group-message-sent"
	MeetingCreated            = "meeting-created"
	MeetingEnded              = "meeting-ended"
	MeetingScreenshareStarted = "meeting-screenshare-started"
	MeetingScreenshareStopped = "meeting-screenshare-stopped"
	PollStarted               = "poll-started"
	PollResponded             = "poll-responded"
	UserAudioMuted            = "user-audio-muted"
	UserAudioUnmuted          = "user-audio-unmuted"
	UserAudioVoiceDisabled    = "user-audio-voice-disabled"
	UserAudioVoiceEnabled     = "user-audio-voice-enabled"
	UserJoined                = "user-joined"
	UserLeft                  = "user-left"
	UserCamBroadcastEnd       = "user-cam-broadcast-end"
	UserCamBroadcastStart     = "user-cam-broadcast-start"
	UserRaiseHandChanged      = "user-raise-hand-changed"
)

// Verb IRIs emitted by the mapping.
const (
	adlVerbs      = "http://adlnet.gov/expapi/verbs/"
	activityVerbs = "http://activitystrea.ms/"
	classVerbs    = "https://w3id.org/xapi/virtual-classroom/verbs/"
	acrossxVerbs  = "https://w3id.org/xapi/acrossx/verbs/"

	VerbInitialized = adlVerbs + "initialized"
	VerbTerminated  = adlVerbs + "terminated"
	VerbAsked       = adlVerbs + "asked"
	VerbAnswered    = adlVerbs + "answered"

	VerbJoin    = activityVerbs + "join"
	VerbLeave   = activityVerbs + "leave"
	VerbStart   = activityVerbs + "start"
	VerbShare   = activityVerbs + "share"
	VerbUnshare = activityVerbs + "unshare"

	// VerbStopped is shared by voice-disabled, audio-muted and cam-broadcast-end.
	VerbStopped   = classVerbs + "stopped"
	VerbReacted   = classVerbs + "reacted"
	VerbUnreacted = classVerbs + "unreacted"

	VerbPosted = acrossxVerbs + "posted"
)

var knownEvents = []string{ //nolint:gochecknoglobals // fixed allow-list
	ChatGroupMessageSent,
	MeetingCreated,
	MeetingEnded,
	MeetingScreenshareStarted,
	MeetingScreenshareStopped,
	PollStarted,
	PollResponded,
	UserAudioMuted,
	UserAudioUnmuted,
	UserAudioVoiceDisabled,
	UserAudioVoiceEnabled,
	UserJoined,
	UserLeft,
	UserCamBroadcastEnd,
	UserCamBroadcastStart,
	UserRaiseHandChanged,
}

// KnownEvents returns a copy of the allow-list of event identifiers.
func KnownEvents() []string {
	return slices.Clone(knownEvents)
}

// IsKnown reports whether id is in the allow-list.
func IsKnown(id string) bool {
	return slices.Contains(knownEvents, id)
}
