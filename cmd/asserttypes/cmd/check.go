package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/asserttypes/pkg/logger"
	"github.com/dmitrymomot/asserttypes/pkg/schema"
	"github.com/dmitrymomot/asserttypes/pkg/validator"
)

var errDocumentsFailed = errors.New("one or more documents did not validate")

var (
	descriptorFile string
	argFiles       []string
)

var checkCmd = &cobra.Command{
	Use:   "check --descriptor FILE [--arg FILE]... DATA...",
	Short: "Validate data documents against a descriptor",
	Long: `Validates every document of every DATA file against the descriptor read
from --descriptor. Each --arg file is decoded and passed to the descriptor as an
extra argument, in order.

YAML files may hold several documents separated by "---"; each is checked on
its own. The command exits non-zero if any document fails.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&descriptorFile, "descriptor", "d", "", "descriptor document (yaml, json or toml)")
	checkCmd.Flags().StringArrayVarP(&argFiles, "arg", "a", nil, "extra argument document, may repeat")
	_ = checkCmd.MarkFlagRequired("descriptor")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, dataFiles []string) error {
	cfg, err := validator.LoadConfig()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	v := validator.New(validator.WithConfig(cfg), validator.WithLogger(log))
	if v.Bypassed() {
		log.Warn("validation bypassed by configuration", logger.Component("cli"))
	}

	desc, err := schema.LoadDescriptor(descriptorFile)
	if err != nil {
		return fmt.Errorf("descriptor %s: %w", descriptorFile, err)
	}
	args := make([]any, 0, len(argFiles))
	for _, path := range argFiles {
		a, err := schema.LoadDescriptor(path)
		if err != nil {
			return fmt.Errorf("argument %s: %w", path, err)
		}
		args = append(args, a)
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, path := range dataFiles {
		docs, err := schema.LoadDocuments(path)
		if err != nil {
			return fmt.Errorf("data %s: %w", path, err)
		}
		for i, doc := range docs {
			if _, err := v.Validate(desc, doc, args...); err != nil {
				failed++
				log.Debug("document failed", logger.File(path), logger.Document(i), logger.Error(err))
				fmt.Fprintf(out, "FAIL %s#%d\n%s\n", path, i, err)
				continue
			}
			fmt.Fprintf(out, "ok   %s#%d\n", path, i)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d failed", errDocumentsFailed, failed)
	}
	return nil
}
