package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/odvcencio/furry-spotlight/spotlight"
)

var errInvalidTours = errors.New("tour file is invalid")

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a tour file and list its tours",
		Long:  `Decodes a tour file, reports every invalid field and lists the tours it defines. Without a file the built-in tours are checked.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) > 0 {
				path = args[0]
			}
			return runValidate(cmd, path)
		},
	}
}

func runValidate(cmd *cobra.Command, path string) error {
	tours, err := loadTours(path)
	if err != nil {
		details := spotlight.ValidationErrors(err)
		if len(details) == 0 {
			return err
		}
		for _, e := range details {
			fmt.Fprintln(cmd.ErrOrStderr(), e)
		}
		return fmt.Errorf("%w: %d problems", errInvalidTours, len(details))
	}

	out := cmd.OutOrStdout()
	for _, name := range tours.Names() {
		tour, _ := tours.Find(name)
		mode := "cancellable"
		if !tour.Cancellable() {
			mode = "required"
		}
		fmt.Fprintf(out, "%s: %d steps, %s\n", name, tour.Len(), mode)
		for i, el := range tour.Elements() {
			fmt.Fprintf(out, "  %d. %s (%s)\n", i+1, el.Key, el.Shape)
		}
	}
	fmt.Fprintf(out, "%d tours ok\n", tours.Len())
	return nil
}
