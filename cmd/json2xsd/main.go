package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/cognitoiq/json2xsd/internal/applog"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

var verbose bool

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "json2xsd <input.json> <output-basename>",
		Short: "Synthesize an XSD from a JSON sample and serialize it as XML",
		Long: `json2xsd infers a type graph from a JSON sample document, emits an
XSD describing its shape, and serializes the same document as XML
validating against that schema.

It writes <output-basename>.xsd and <output-basename>.xml.`,
		Args: cobra.ExactArgs(2),
		RunE: runRender,
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

func runRender(cmd *cobra.Command, args []string) error {
	logger := applog.New(verbose)
	inputPath, outBase := args[0], args[1]

	logger.Info().Str("input", inputPath).Str("output", outBase).Msg("rendering")

	xsdPath, xmlPath := outBase+".xsd", outBase+".xml"
	if err := render(inputPath, xsdPath, xmlPath, logger); err != nil {
		logger.Error().Err(err).Msg("render failed")
		return err
	}

	logger.Info().Str("xsd", xsdPath).Str("xml", xmlPath).Msg("wrote output")
	return nil
}
