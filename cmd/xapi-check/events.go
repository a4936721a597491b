package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/okian/xapiverbs/internal/adapters/fixture"
	"github.com/okian/xapiverbs/internal/domain/model"
	"github.com/okian/xapiverbs/internal/domain/validator"
	"github.com/okian/xapiverbs/internal/domain/vocabulary"
)

func (c *cli) eventsCmd() *cobra.Command {
	var samples string
	cmd := &cobra.Command{
		Use:   "events",
		Short: "List supported events, or the kept events of a sample file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			if samples == "" {
				for _, id := range vocabulary.KnownEvents() {
					verb, err := validator.ExpectedVerb(model.Event{Data: model.EventData{ID: id}})
					if err != nil {
						return err
					}
					if id == vocabulary.UserRaiseHandChanged {
						verb = vocabulary.VerbReacted + " | " + vocabulary.VerbUnreacted
					}
					fmt.Fprintf(tw, "%s\t%s\n", id, verb)
				}
				return tw.Flush()
			}

			events, err := fixture.New(fixture.WithMaxLineSize(c.cfg.MaxLineBytes)).LoadEvents(cmd.Context(), samples)
			if err != nil {
				return err
			}
			for i, ev := range events {
				verb, _ := validator.ExpectedVerb(ev)
				fmt.Fprintf(tw, "%d\t%s\t%s\n", i, ev.ID(), verb)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&samples, "samples", "", "list the allow-listed events of this fixture")
	return cmd
}

func (c *cli) expectCmd() *cobra.Command {
	var raised bool
	cmd := &cobra.Command{
		Use:   "expect EVENT_ID",
		Short: "Print the verb IRI expected for an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ev := model.Event{Data: model.EventData{ID: args[0]}}
			if raised {
				ev.Data.Attributes.User = &model.User{RaiseHand: &raised}
			}
			verb, err := validator.ExpectedVerb(ev)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), verb)
			return nil
		},
	}
	cmd.Flags().BoolVar(&raised, "raise-hand", false, "treat the event as a raised hand")
	return cmd
}
