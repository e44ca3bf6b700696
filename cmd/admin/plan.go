package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"honorly/internal/plan"
	"honorly/internal/question"
)

func planCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Inspect task plan generation",
	}
	cmd.AddCommand(planPreviewCmd())
	return cmd
}

func planPreviewCmd() *cobra.Command {
	var (
		path        string
		answersFile string
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print the tasks a set of answers would seed, without saving",
		Long: `Derive the task plan for an answers file and print it.

The answers file holds one JSON object keyed by question id, in the same
shape the API accepts:
  honorly-admin plan preview --path recent-loss --answers answers.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := question.LoadCatalog()
			if err != nil {
				return err
			}
			qs, err := catalog.ByPath(question.Path(path))
			if err != nil {
				return err
			}
			generator, err := plan.New(catalog)
			if err != nil {
				return err
			}

			data, err := os.ReadFile(answersFile)
			if err != nil {
				return fmt.Errorf("failed to read answers: %w", err)
			}
			answers, err := question.DecodeAnswerSet(qs, data)
			if err != nil {
				return err
			}

			drafts := generator.Derive(answers)
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "CATEGORY\tTITLE")
			for _, d := range drafts {
				fmt.Fprintf(w, "%s\t%s\n", d.Category, d.Title)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d tasks, completion %d%%\n",
				len(drafts), question.CompletionPct(qs, answers))
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", string(question.PathRecentLoss), "onboarding path")
	cmd.Flags().StringVarP(&answersFile, "answers", "a", "", "JSON file of answers keyed by question id")
	_ = cmd.MarkFlagRequired("answers")
	return cmd
}
