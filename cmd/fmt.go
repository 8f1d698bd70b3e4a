package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/bibtidy/bib"
	"github.com/lehigh-university-libraries/bibtidy/convert"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt",
	Short: "Reformat BibTeX entries into the canonical convention",
	Long: `Reformat BibTeX entries into the canonical convention.

Input defaults to stdin, output defaults to stdout. Entries that fail to
parse are dropped and counted on stderr.

Examples:
  # Reformat a file in place of stdout
  bibtidy fmt -i refs.bib

  # Pipe from stdin to a file
  cat refs.bib | bibtidy fmt -o tidy.bib

  # Strip periods from initials regardless of profile
  bibtidy fmt -i refs.bib --strip-periods`,
	Args: cobra.NoArgs,
	RunE: runFmt,
}

func init() {
	addCommonFlags(fmtCmd)
}

func runFmt(cmd *cobra.Command, args []string) (err error) {
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

	text, err := io.ReadAll(input)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	if len(bytes.TrimSpace(text)) > 0 && !bib.CanParse(text) {
		return fmt.Errorf("%s: %w", inputName, convert.ErrNoEntries)
	}

	result, err := convert.FormatText(string(text), opts)
	if err != nil {
		if errors.Is(err, convert.ErrEmptyInput) || errors.Is(err, convert.ErrNoEntries) {
			return fmt.Errorf("%s: %w", inputName, err)
		}
		return err
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

	fmt.Fprintf(os.Stderr, "Formatted %d entries", result.Entries)
	if result.Dropped > 0 {
		fmt.Fprintf(os.Stderr, ", dropped %d unparseable fragments", result.Dropped)
	}
	fmt.Fprintln(os.Stderr)

	return nil
}
