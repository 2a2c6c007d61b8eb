// Copyright 2026 The Purl Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/ossforge/purl/pkg/purl"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var output = "json"

var (
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
)

var rootCmd = &cobra.Command{
	Use:   "purl [subcommand]",
	Short: "Parse, validate, and canonicalize package URLs",
}

// components is the printable view of a parsed purl.
type components struct {
	Scheme     string            `json:"scheme" yaml:"scheme"`
	Type       string            `json:"type" yaml:"type"`
	Namespace  string            `json:"namespace,omitempty" yaml:"namespace,omitempty"`
	Name       string            `json:"name" yaml:"name"`
	Version    string            `json:"version,omitempty" yaml:"version,omitempty"`
	Qualifiers map[string]string `json:"qualifiers,omitempty" yaml:"qualifiers,omitempty"`
	Subpath    string            `json:"subpath,omitempty" yaml:"subpath,omitempty"`
}

func newComponents(p *purl.PackageURL) components {
	c := components{
		Scheme:    p.Scheme(),
		Type:      p.Type(),
		Namespace: p.Namespace(),
		Name:      p.Name(),
		Version:   p.Version(),
		Subpath:   p.Subpath(),
	}
	if qs := p.Qualifiers(); len(qs) > 0 {
		c.Qualifiers = qs.Map()
	}
	return c
}

func writeComponents(out io.Writer, c components) error {
	switch output {
	case "json":
		e := json.NewEncoder(out)
		e.SetIndent("", "  ")
		return errors.Wrap(e.Encode(c), "encoding json")
	case "yaml":
		e := yaml.NewEncoder(out)
		defer e.Close()
		return errors.Wrap(e.Encode(c), "encoding yaml")
	default:
		return errors.Errorf("unknown output format: %s", output)
	}
}

var parseCmd = &cobra.Command{
	Use:   "parse <purl> ... [-o json|yaml]",
	Short: "Parse purls and print their components.",
	Args: cobra.MinimumNArgs(1),
	// Silence errors because we will print the error ourselves in main.
	SilenceErrors: true,
	// Don't show usage for a malformed purl.
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, arg := range args {
			p, err := purl.Parse(arg)
			if err != nil {
				return errors.Wrapf(err, "parsing %q", arg)
			}
			if err := writeComponents(cmd.OutOrStdout(), newComponents(p)); err != nil {
				return err
			}
		}
		return nil
	},
}

var canonicalizeCmd = &cobra.Command{
	Use:           "canonicalize <purl> ...",
	Short:         "Print the canonical form of each purl, one per line.",
	Args:          cobra.MinimumNArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, arg := range args {
			p, err := purl.Parse(arg)
			if err != nil {
				return errors.Wrapf(err, "parsing %q", arg)
			}
			fmt.Fprintln(cmd.OutOrStdout(), p.Canonicalize())
		}
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:           "validate <purl> ...",
	Short:         "Report a verdict for each purl; exit non-zero if any is invalid.",
	Args:          cobra.MinimumNArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		var invalid int
		for _, arg := range args {
			if _, err := purl.Parse(arg); err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %v\n", red("invalid"), arg, err)
				invalid++
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", green("ok"), arg)
			}
		}
		if invalid > 0 {
			return errors.Errorf("%d invalid package URL(s)", invalid)
		}
		return nil
	},
}

func init() {
	parseCmd.Flags().StringVarP(&output, "output", "o", output, "Output format [json, yaml]")
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(canonicalizeCmd)
	rootCmd.AddCommand(validateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
