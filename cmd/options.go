package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/bibtidy/normalize"
	"github.com/lehigh-university-libraries/bibtidy/profile"
)

var (
	inputFile    string
	outputFile   string
	profileName  string
	profileFile  string
	stripPeriods bool
	extractDOI   bool
	enforceURL   bool
)

// addCommonFlags wires the input/output and option flags shared by the
// fmt and doi commands.
func addCommonFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input file (default: stdin)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringVarP(&profileName, "profile", "p", "default", "Option profile name")
	cmd.Flags().StringVar(&profileFile, "profile-file", "", "Custom profile YAML file")
	cmd.Flags().BoolVar(&stripPeriods, "strip-periods", false, "Remove periods from author initials")
	cmd.Flags().BoolVar(&extractDOI, "extract-doi", true, "Fill a missing doi field from the url field")
	cmd.Flags().BoolVar(&enforceURL, "enforce-url", true, "Overwrite the url field from the doi field")
}

// resolveOptions loads the option profile and applies explicit flag
// overrides on top of it.
func resolveOptions(cmd *cobra.Command) (normalize.Options, error) {
	var p *profile.Profile

	if profileFile != "" {
		loaded, err := profile.Load(profileFile)
		if err != nil {
			return normalize.Options{}, fmt.Errorf("loading profile: %w", err)
		}
		p = loaded
	} else {
		registry, err := profile.NewRegistry()
		if err != nil {
			return normalize.Options{}, err
		}
		loaded, ok := registry.Get(profileName)
		if !ok {
			return normalize.Options{}, fmt.Errorf("unknown profile: %s", profileName)
		}
		p = loaded
	}

	opts := p.NormalizeOptions()
	if cmd.Flags().Changed("strip-periods") {
		opts.StripPeriods = stripPeriods
	}
	if cmd.Flags().Changed("extract-doi") {
		opts.ExtractDOIFromURL = extractDOI
	}
	if cmd.Flags().Changed("enforce-url") {
		opts.EnforceDOIURL = enforceURL
	}

	return opts, nil
}

// openInput returns the input reader, its display name, and a close
// function.
func openInput() (io.Reader, string, func() error, error) {
	if inputFile == "" {
		return os.Stdin, "stdin", func() error { return nil }, nil
	}
	f, err := os.Open(inputFile)
	if err != nil {
		return nil, "", nil, fmt.Errorf("opening input file: %w", err)
	}
	return f, inputFile, f.Close, nil
}

// openOutput returns the output writer and a close function.
func openOutput() (io.Writer, func() error, error) {
	if outputFile == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(outputFile)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file: %w", err)
	}
	return f, f.Close, nil
}
