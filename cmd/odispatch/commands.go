package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newKeysCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List the bound type keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, _, err := a.registry(cmd)
			if err != nil {
				return err
			}
			for _, k := range reg.Keys() {
				fmt.Fprintln(cmd.OutOrStdout(), k)
			}
			return nil
		},
	}
}

func newInjectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inject NAME...",
		Short: "Construct the named components and inject them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, catalog, err := a.registry(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			failed := 0
			for _, name := range args {
				e, err := lookup(catalog, name)
				if err != nil {
					return err
				}
				c := e.New()
				if err := reg.Dispatch(c); err != nil {
					failed++
					fmt.Fprintf(out, "%s: %v\n", name, err)
					continue
				}
				fmt.Fprintf(out, "%s: injected %s\n", name, c.Route())
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d dispatches failed", failed, len(args))
			}
			return nil
		},
	}
}

func newExplainCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "explain NAME",
		Short: "Explain how a component's type resolves",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, catalog, err := a.registry(cmd)
			if err != nil {
				return err
			}
			e, err := lookup(catalog, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if reg.Has(e.Key) {
				fmt.Fprintf(out, "%s: bound as %s\n", args[0], e.Key)
				return nil
			}
			fmt.Fprintf(out, "%s: %s\n", args[0], reg.Unresolved(e.Key))
			return nil
		},
	}
}
