package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"honorly/internal/question"
)

func questionsCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "questions",
		Short: "Print the onboarding questions of a path",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := question.LoadCatalog()
			if err != nil {
				return err
			}
			qs, err := catalog.ByPath(question.Path(path))
			if err != nil {
				return fmt.Errorf("%w (known: %v)", err, catalog.Paths())
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			defer enc.Close()
			return enc.Encode(qs)
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", string(question.PathRecentLoss), "onboarding path")
	return cmd
}
