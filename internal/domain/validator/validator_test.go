package validator_test

import (
	"errors"
	"testing"

	"github.com/okian/xapiverbs/internal/domain/model"
	"github.com/okian/xapiverbs/internal/domain/validator"
	"github.com/okian/xapiverbs/internal/domain/vocabulary"
	. "github.com/smartystreets/goconvey/convey"
)

func event(id string) model.Event {
	return model.Event{Data: model.EventData{ID: id}}
}

func handEvent(raised bool) model.Event {
	ev := event(vocabulary.UserRaiseHandChanged)
	ev.Data.Attributes.User = &model.User{RaiseHand: &raised}
	return ev
}

func statement(verb string) model.Statement {
	return model.Statement{Verb: model.Verb{ID: verb}}
}

func TestValidatorTable(t *testing.T) {
	Convey("Given the validator table", t, func() {
		Convey("Then every known event has a predicate", func() {
			for _, id := range vocabulary.KnownEvents() {
				_, ok := validator.Lookup(id)
				So(ok, ShouldBeTrue)
			}
		})

		Convey("Then it holds no entries outside the vocabulary", func() {
			So(validator.Validators, ShouldHaveLength, len(vocabulary.KnownEvents()))
			for id := range validator.Validators {
				So(vocabulary.IsKnown(id), ShouldBeTrue)
			}
		})

		Convey("When a predicate is called directly", func() {
			p := validator.Validators[vocabulary.PollStarted]

			Convey("Then it compares the verb", func() {
				So(p(event(vocabulary.PollStarted), statement(vocabulary.VerbAsked)), ShouldBeTrue)
				So(p(event(vocabulary.PollStarted), statement(vocabulary.VerbAnswered)), ShouldBeFalse)
			})
		})
	})
}

func TestValidate(t *testing.T) {
	expected := map[string]string{
		vocabulary.MeetingCreated:            "http://adlnet.gov/expapi/verbs/initialized",
		vocabulary.MeetingEnded:              "http://adlnet.gov/expapi/verbs/terminated",
		vocabulary.UserJoined:                "http://activitystrea.ms/join",
		vocabulary.UserLeft:                  "http://activitystrea.ms/leave",
		vocabulary.UserAudioVoiceEnabled:     "http://activitystrea.ms/start",
		vocabulary.UserAudioVoiceDisabled:    "https://w3id.org/xapi/virtual-classroom/verbs/stopped",
		vocabulary.UserAudioMuted:            "https://w3id.org/xapi/virtual-classroom/verbs/stopped",
		vocabulary.UserAudioUnmuted:          "http://activitystrea.ms/start",
		vocabulary.UserCamBroadcastStart:     "http://activitystrea.ms/start",
		vocabulary.UserCamBroadcastEnd:       "https://w3id.org/xapi/virtual-classroom/verbs/stopped",
		vocabulary.MeetingScreenshareStarted: "http://activitystrea.ms/share",
		vocabulary.MeetingScreenshareStopped: "http://activitystrea.ms/unshare",
		vocabulary.ChatGroupMessageSent:      "https://w3id.org/xapi/acrossx/verbs/posted",
		vocabulary.PollStarted:               "http://adlnet.gov/expapi/verbs/asked",
		vocabulary.PollResponded:             "http://adlnet.gov/expapi/verbs/answered",
	}

	Convey("Given events with fixed verbs", t, func() {
		Convey("When the statement carries the expected verb", func() {
			Convey("Then validation passes", func() {
				for id, verb := range expected {
					ok, err := validator.Validate(event(id), statement(verb))
					So(err, ShouldBeNil)
					So(ok, ShouldBeTrue)
				}
			})
		})

		Convey("When the statement carries another verb", func() {
			Convey("Then validation fails without error", func() {
				for id := range expected {
					ok, err := validator.Validate(event(id), statement(vocabulary.VerbReacted))
					So(err, ShouldBeNil)
					So(ok, ShouldBeFalse)
				}
			})
		})

		Convey("When the verb differs only by scheme", func() {
			ok, err := validator.Validate(event(vocabulary.MeetingCreated), statement("https://adlnet.gov/expapi/verbs/initialized"))

			Convey("Then validation fails", func() {
				So(err, ShouldBeNil)
				So(ok, ShouldBeFalse)
			})
		})
	})

	Convey("Given a raise-hand event", t, func() {
		Convey("When the hand was raised", func() {
			ev := handEvent(true)

			Convey("Then reacted passes and unreacted fails", func() {
				ok, err := validator.Validate(ev, statement("https://w3id.org/xapi/virtual-classroom/verbs/reacted"))
				So(err, ShouldBeNil)
				So(ok, ShouldBeTrue)

				ok, err = validator.Validate(ev, statement(vocabulary.VerbUnreacted))
				So(err, ShouldBeNil)
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When the hand was lowered", func() {
			ev := handEvent(false)

			Convey("Then reacted fails and unreacted passes", func() {
				ok, err := validator.Validate(ev, statement(vocabulary.VerbReacted))
				So(err, ShouldBeNil)
				So(ok, ShouldBeFalse)

				ok, err = validator.Validate(ev, statement(vocabulary.VerbUnreacted))
				So(err, ShouldBeNil)
				So(ok, ShouldBeTrue)
			})
		})

		Convey("When the user block is missing", func() {
			ok, err := validator.Validate(event(vocabulary.UserRaiseHandChanged), statement(vocabulary.VerbUnreacted))

			Convey("Then it is treated as lowered", func() {
				So(err, ShouldBeNil)
				So(ok, ShouldBeTrue)
			})
		})
	})

	Convey("Given an unmapped event", t, func() {
		ok, err := validator.Validate(event("unknown-event"), statement(vocabulary.VerbJoin))

		Convey("Then a missing validator error is returned", func() {
			So(ok, ShouldBeFalse)
			So(errors.Is(err, validator.ErrMissingValidator), ShouldBeTrue)

			var missing *validator.MissingValidatorError
			So(errors.As(err, &missing), ShouldBeTrue)
			So(missing.EventID, ShouldEqual, "unknown-event")
			So(missing.VerbID, ShouldEqual, vocabulary.VerbJoin)
			So(err.Error(), ShouldContainSubstring, vocabulary.VerbJoin)
		})
	})

	Convey("Given the same inputs twice", t, func() {
		ev, st := handEvent(true), statement(vocabulary.VerbReacted)
		first, err1 := validator.Validate(ev, st)
		second, err2 := validator.Validate(ev, st)

		Convey("Then the results match", func() {
			So(err1, ShouldBeNil)
			So(err2, ShouldBeNil)
			So(first, ShouldEqual, second)
		})
	})
}

func TestExpectedVerb(t *testing.T) {
	Convey("Given the expected verb lookup", t, func() {
		Convey("Then it agrees with the validator for every known event", func() {
			for _, id := range vocabulary.KnownEvents() {
				ev := event(id)
				verb, err := validator.ExpectedVerb(ev)
				So(err, ShouldBeNil)

				ok, err := validator.Validate(ev, statement(verb))
				So(err, ShouldBeNil)
				So(ok, ShouldBeTrue)
			}
		})

		Convey("Then raise-hand follows the flag", func() {
			verb, err := validator.ExpectedVerb(handEvent(true))
			So(err, ShouldBeNil)
			So(verb, ShouldEqual, vocabulary.VerbReacted)

			verb, err = validator.ExpectedVerb(handEvent(false))
			So(err, ShouldBeNil)
			So(verb, ShouldEqual, vocabulary.VerbUnreacted)
		})

		Convey("Then unknown events report a missing validator", func() {
			_, err := validator.ExpectedVerb(event("meeting-transfer-enabled"))
			So(errors.Is(err, validator.ErrMissingValidator), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "meeting-transfer-enabled")
		})
	})
}
