package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/bibtidy/convert"
	"github.com/lehigh-university-libraries/bibtidy/crossref"
)

var (
	mailto     string
	doiTimeout time.Duration
)

var doiCmd = &cobra.Command{
	Use:   "doi",
	Short: "Convert a DOI list into canonical BibTeX entries",
	Long: `Convert a newline-separated list of DOIs into canonical BibTeX entries
by looking each one up in Crossref.

Identifiers are processed in order, one at a time. A failed lookup leaves
an inline comment line for that identifier and processing continues.

Examples:
  bibtidy doi -i dois.txt -o refs.bib
  echo 10.1038/nature12373 | bibtidy doi
  bibtidy doi -i dois.txt --mailto you@example.edu`,
	Args: cobra.NoArgs,
	RunE: runDOI,
}

func init() {
	addCommonFlags(doiCmd)
	doiCmd.Flags().StringVar(&mailto, "mailto", os.Getenv("CROSSREF_MAILTO"),
		"Contact address for the Crossref polite pool")
	doiCmd.Flags().DurationVar(&doiTimeout, "timeout", 0,
		"Overall deadline for the batch (default: none)")
}

func runDOI(cmd *cobra.Command, args []string) (err error) {
	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}

	input, inputName, closeInput, err := openInput()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeInput(); cerr != nil && err == nil {
			err = fmt.Errorf("closing input file: %w", cerr)
		}
	}()

	ids, err := io.ReadAll(input)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	ctx := cmd.Context()
	if doiTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, doiTimeout)
		defer cancel()
	}

	var clientOpts []crossref.ClientOption
	if mailto != "" {
		clientOpts = append(clientOpts, crossref.WithMailto(mailto))
	}
	client := crossref.NewClient(clientOpts...)

	result, err := convert.DOIBatch(ctx, client, string(ids), opts)
	if err != nil {
		return fmt.Errorf("%s: %w", inputName, err)
	}

	output, closeOutput, err := openOutput()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeOutput(); cerr != nil && err == nil {
			err = fmt.Errorf("closing output file: %w", cerr)
		}
	}()

	if _, err := io.WriteString(output, result.Output); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Converted identifiers: ok=%d failed=%d\n", result.OK, result.Failed)

	return nil
}
