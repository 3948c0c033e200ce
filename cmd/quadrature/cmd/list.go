// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/quadrature/integrand"
	"github.com/katalvlaran/quadrature/quadrature"
)

func newMethodsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "List the available rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range quadrature.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newIntegrandsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "integrands",
		Short: "List the catalogue functions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, name := range integrand.Names() {
				in, err := integrand.Lookup(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(tw, "%s\t%s\n", in.Name, in.Formula)
			}
			return tw.Flush()
		},
	}
}
