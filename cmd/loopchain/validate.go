package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/loopchain/params"
)

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [params.yaml...]",
		Short: "Validate parameter files and report the model size (no solve)",
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := a.paramFiles(args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var errs []error
			for _, path := range files {
				summary, err := a.check(path)
				if err != nil {
					fmt.Fprintf(out, "%s: FAILED\n", path)
					errs = append(errs, fmt.Errorf("%s: %w", path, err))
					continue
				}
				fmt.Fprintf(out, "%s: OK (%s)\n", path, summary)
			}

			return errors.Join(errs...)
		},
	}
}

// check loads and builds one file without solving it.
func (a *app) check(path string) (string, error) {
	b, err := params.Load(path)
	if err != nil {
		return "", err
	}
	n, _, err := a.build(b, a.log)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s, %d vars, %d binaries, %d rows",
		n.Features, n.Model.NumVars(), len(n.Model.Binaries()), n.Model.NumConstraints()), nil
}
