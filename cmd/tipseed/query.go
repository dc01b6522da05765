package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"resumecoach/internal/usecase/impl"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var queryTimeout time.Duration

func init() {
	queryCmd.Flags().DurationVar(&queryTimeout, "timeout", 2*time.Minute, "overall deadline for the query")
}

var queryCmd = &cobra.Command{
	Use:   "query [text]",
	Short: "Show the tips retrieved for a text",
	Long: `Embed the text and print the tips the analysis pipeline would retrieve for it.

Examples:
  # Query with an inline text
  tipseed query "Senior Go engineer, 8 years building payment systems"

  # Query with a resume file
  tipseed query - < resume.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runQuery,
}

func runQuery(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), queryTimeout)
	defer cancel()

	text, err := queryText(args[0], cmd.InOrStdin())
	if err != nil {
		return err
	}

	deps, err := openRuntime(ctx)
	if err != nil {
		return err
	}
	defer deps.index.Close()

	augmenter := impl.NewRetrievalAugmenter(impl.RetrievalAugmenterParams{
		Provider: deps.provider,
		Index:    deps.index,
		Config:   deps.cfg,
		Logger:   deps.logger,
	})

	tips, err := augmenter.Augment(ctx, text)
	if err != nil {
		return errors.Wrap(err, "query failed")
	}

	out := cmd.OutOrStdout()
	if len(tips) == 0 {
		fmt.Fprintln(out, "No tips indexed yet. Run `tipseed seed` first.")

		return nil
	}

	for i, tip := range tips {
		fmt.Fprintf(out, "%d. %s\n", i+1, tip)
	}

	return nil
}

func queryText(arg string, stdin io.Reader) (string, error) {
	if arg != "-" {
		return arg, nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", errors.Wrap(err, "failed to read stdin")
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", errors.New("empty input")
	}

	return text, nil
}
