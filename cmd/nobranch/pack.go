package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hupe1980/nobranch/blobstore"
	"github.com/hupe1980/nobranch/codec"
	"github.com/hupe1980/nobranch/forest"
)

// packCmd re-encodes a model into a local file, compressed by its suffix.
var packCmd = &cobra.Command{
	Use:   "pack <model> <out>",
	Short: "Validate a model and write it as .json, .json.zst or .json.lz4",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		c, _ := codec.ByName(codecName)

		m, err := loadModel(ctx, args[0], controller())
		if err != nil {
			return err
		}
		raw, err := forest.Encode(m, c)
		if err != nil {
			return err
		}

		comp := forest.CompressionOf(args[1])
		data, err := forest.Compress(raw, comp)
		if err != nil {
			return err
		}

		out := blobstore.NewLocalStore(filepath.Dir(args[1]))
		if err := out.Put(ctx, filepath.Base(args[1]), data); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d trees, %d bytes (%s, %d raw)\n",
			args[1], len(m.Trees), len(data), comp, len(raw))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(packCmd)
}
