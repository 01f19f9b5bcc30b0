package main

import (
	"github.com/spf13/cobra"
)

func newStatusCommand(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status <task-id>",
		Short: "Look up the state and result of an existing task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := newSession(opts)
			if _, err := s.tracker.Lookup(cmd.Context(), args[0]); err != nil {
				return err
			}
			return s.follow(cmd.Context())
		},
	}
	return cmd
}
