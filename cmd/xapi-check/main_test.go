package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/okian/xapiverbs/internal/domain/validator"
	"github.com/okian/xapiverbs/internal/domain/vocabulary"
	"github.com/smartystreets/goconvey/convey"
)

func execute(args ...string) (string, error) {
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func writeFile(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestVerifyCommand(t *testing.T) {
	_ = os.Unsetenv("XAPI_CONFIG")

	convey.Convey("Given sample events and captured statements", t, func() {
		dir := t.TempDir()
		samples := writeFile(t, dir, "mapped-events.json",
			`{"data":{"id":"meeting-created"}}`,
			`{"data":{"id":"meeting-recording-started"}}`,
			`{"data":{"id":"user-raise-hand-changed","attributes":{"user":{"raise-hand":true}}}}`,
		)

		convey.Convey("When every verb matches", func() {
			statements := writeFile(t, dir, "statements.json",
				`{"verb":{"id":"http://adlnet.gov/expapi/verbs/initialized"}}`,
				`{"verb":{"id":"https://w3id.org/xapi/virtual-classroom/verbs/reacted"}}`,
			)
			reportPath := filepath.Join(dir, "report.yaml")
			metricsPath := filepath.Join(dir, "xapi.prom")

			out, err := execute("verify", "--samples", samples, "--statements", statements,
				"--report", reportPath, "--format", "yaml", "--metrics-file", metricsPath)

			convey.Convey("Then it succeeds and writes report and metrics", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(out, convey.ShouldContainSubstring, "2 checked, 2 passed, 0 failed")

				report, readErr := os.ReadFile(reportPath)
				convey.So(readErr, convey.ShouldBeNil)
				convey.So(string(report), convey.ShouldContainSubstring, "event_id: user-raise-hand-changed")

				prom, readErr := os.ReadFile(metricsPath)
				convey.So(readErr, convey.ShouldBeNil)
				convey.So(string(prom), convey.ShouldContainSubstring, "xapi_check_validations_total")
			})
		})

		convey.Convey("When a verb is wrong", func() {
			statements := writeFile(t, dir, "statements.json",
				`{"verb":{"id":"http://adlnet.gov/expapi/verbs/initialized"}}`,
				`{"verb":{"id":"https://w3id.org/xapi/virtual-classroom/verbs/unreacted"}}`,
			)

			out, err := execute("verify", "--samples", samples, "--statements", statements)

			convey.Convey("Then it fails and names the pair", func() {
				convey.So(errors.Is(err, errChecksFailed), convey.ShouldBeTrue)
				convey.So(out, convey.ShouldContainSubstring, "FAIL #1 user-raise-hand-changed")
				convey.So(out, convey.ShouldContainSubstring, "expected "+vocabulary.VerbReacted)
			})
		})

		convey.Convey("When the statements path is missing", func() {
			_, err := execute("verify", "--samples", samples)

			convey.Convey("Then it is rejected", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "statements path is required")
			})
		})
	})
}

func TestEventsCommand(t *testing.T) {
	_ = os.Unsetenv("XAPI_CONFIG")

	convey.Convey("Given the events command", t, func() {
		convey.Convey("When listing the vocabulary", func() {
			out, err := execute("events")

			convey.Convey("Then every known event is printed with its verb", func() {
				convey.So(err, convey.ShouldBeNil)
				for _, id := range vocabulary.KnownEvents() {
					convey.So(out, convey.ShouldContainSubstring, id)
				}
				convey.So(out, convey.ShouldContainSubstring, vocabulary.VerbPosted)
				convey.So(out, convey.ShouldContainSubstring, vocabulary.VerbUnreacted)
			})
		})

		convey.Convey("When listing a sample file", func() {
			samples := writeFile(t, t.TempDir(), "mapped-events.json",
				`{"data":{"id":"meeting-transfer-enabled"}}`,
				`{"data":{"id":"poll-started"}}`,
			)
			out, err := execute("events", "--samples", samples)

			convey.Convey("Then only kept events are listed", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(out, convey.ShouldContainSubstring, "poll-started")
				convey.So(out, convey.ShouldNotContainSubstring, "meeting-transfer-enabled")
			})
		})
	})
}

func TestExpectCommand(t *testing.T) {
	_ = os.Unsetenv("XAPI_CONFIG")

	convey.Convey("Given the expect command", t, func() {
		convey.Convey("When asking for a fixed verb", func() {
			out, err := execute("expect", "user-cam-broadcast-end")

			convey.Convey("Then the IRI is printed", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(strings.TrimSpace(out), convey.ShouldEqual, vocabulary.VerbStopped)
			})
		})

		convey.Convey("When asking for a raised hand", func() {
			out, err := execute("expect", "user-raise-hand-changed", "--raise-hand")

			convey.Convey("Then reacted is printed", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(strings.TrimSpace(out), convey.ShouldEqual, vocabulary.VerbReacted)
			})
		})

		convey.Convey("When asking for an unknown event", func() {
			_, err := execute("expect", "meeting-transfer-enabled")

			convey.Convey("Then a missing validator error is returned", func() {
				convey.So(errors.Is(err, validator.ErrMissingValidator), convey.ShouldBeTrue)
			})
		})
	})
}
