package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/review-schedule/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate JSON files against a schema",
	Long: `Validates each JSON file against a JSON Schema. The schema is one of the
embedded schemas (article_document, vehicle_profile) or a path to a schema
file. Storage documents written by generate --format storage-document or by
run are checked with article_document.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

var validateSchema string

func init() {
	validateCmd.Flags().StringVarP(&validateSchema, "schema", "s", schemas.ArticleDocument, "Embedded schema name or schema file path")

	rootCmd.AddCommand(validateCmd)
}

//nolint:errcheck // report lines are best effort
func runValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	invalid := 0
	for _, path := range args {
		err := schemas.ValidateFile(validateSchema, path)
		if err == nil {
			fmt.Fprintf(out, "✓ %s\n", path)
			continue
		}

		var loadErr *schemas.SchemaLoadError
		if errors.As(err, &loadErr) {
			return err
		}
		invalid++
		fmt.Fprintf(out, "✗ %s\n", path)
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			for _, fe := range validationErr.Errors {
				fmt.Fprintf(out, "    %s: %s\n", fe.Field, fe.Message)
			}
		} else {
			fmt.Fprintf(out, "    %v\n", err)
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d files failed validation", invalid, len(args))
	}
	return nil
}
