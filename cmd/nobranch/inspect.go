package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// inspectCmd compiles a model and prints its shape.
var inspectCmd = &cobra.Command{
	Use:   "inspect <model>",
	Short: "Print the shape of a model",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		rc := controller()

		m, err := loadModel(ctx, args[0], rc)
		if err != nil {
			return err
		}
		s, err := m.Compile(scorerOptions(rc, m.Name)...)
		if err != nil {
			return err
		}
		defer s.Close()

		st := s.Stats()
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "model:       %s\n", m.Name)
		fmt.Fprintf(w, "trees:       %d\n", st.Trees)
		fmt.Fprintf(w, "nodes:       %d\n", st.Nodes)
		fmt.Fprintf(w, "bytes:       %d (%s)\n", st.Bytes, st.Allocator)
		fmt.Fprintf(w, "max feature: %d (vectors need %d features)\n", st.MaxFeature, s.Width())
		if m.NumFeatures > 0 {
			fmt.Fprintf(w, "declared:    %d features\n", m.NumFeatures)
		}

		features := s.Features()
		fmt.Fprintf(w, "referenced:  %d features %v\n", features.GetCardinality(), features.ToArray())

		fmt.Fprintln(w, "depths:")
		for d, n := range st.Depths {
			if n > 0 {
				fmt.Fprintf(w, "  %2d: %d\n", d, n)
			}
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(inspectCmd)
}
