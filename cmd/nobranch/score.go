package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var (
	scoreVerify   bool
	scoreHeader   bool
	scoreParallel bool
)

// scoreCmd prints one score per CSV row.
var scoreCmd = &cobra.Command{
	Use:   "score <model> <vectors.csv>",
	Short: "Score feature vectors from a CSV file (- for stdin)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		rc := controller()

		m, err := loadModel(ctx, args[0], rc)
		if err != nil {
			return err
		}

		vecs, err := readVectors(args[1], scoreHeader)
		if err != nil {
			return err
		}

		s, err := m.Compile(scorerOptions(rc, m.Name)...)
		if err != nil {
			return err
		}
		defer s.Close()

		out := make([]float32, len(vecs))
		if scoreParallel {
			err = s.ScoreParallel(ctx, vecs, out)
		} else {
			err = s.ScoreBatch(vecs, out)
		}
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		mismatches := 0
		for i, score := range out {
			fmt.Fprintln(w, strconv.FormatFloat(float64(score), 'g', -1, 32))
			if scoreVerify {
				want := m.Score(vecs[i])
				if !sameScore(want, score) {
					mismatches++
					fmt.Fprintf(cmd.ErrOrStderr(), "row %d: scorer %g, reference %g\n", i+1, score, want)
				}
			}
		}
		if mismatches > 0 {
			return fmt.Errorf("%d of %d rows differ from the reference scorer", mismatches, len(out))
		}
		return nil
	},
}

func init() {
	f := scoreCmd.Flags()
	f.BoolVar(&scoreVerify, "verify", false, "compare every score with the reference scorer")
	f.BoolVar(&scoreHeader, "header", false, "skip the first CSV row")
	f.BoolVar(&scoreParallel, "parallel", false, "score with ScoreParallel")

	RootCmd.AddCommand(scoreCmd)
}

func sameScore(a, b float32) bool {
	if math.IsNaN(float64(a)) {
		return math.IsNaN(float64(b))
	}
	return a == b
}

// readVectors parses one float32 vector per CSV row. All rows must have
// the same number of fields.
func readVectors(path string, header bool) ([][]float32, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	cr := csv.NewReader(r)
	cr.ReuseRecord = true
	cr.TrimLeadingSpace = true

	var vecs [][]float32
	for row := 1; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		if header && row == 1 {
			continue
		}
		v := make([]float32, len(rec))
		for i, field := range rec {
			x, err := strconv.ParseFloat(strings.TrimSpace(field), 32)
			if err != nil {
				return nil, fmt.Errorf("%s row %d column %d: %w", path, row, i+1, err)
			}
			v[i] = float32(x)
		}
		vecs = append(vecs, v)
	}
	return vecs, nil
}
