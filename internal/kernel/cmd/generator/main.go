// Code generator for the depth x width specialized tree kernels.
//
// Usage (from internal/kernel):
//
//	go run ./cmd/generator -o eval_gen.go
//	go run ./cmd/generator -o eval_gen.go -widths 1,8,32 -maxdepth 10
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/hupe1980/nobranch/internal/layout"
)

var (
	output   = flag.String("o", "eval_gen.go", "output file")
	pkg      = flag.String("pkg", "kernel", "package name")
	widths   = flag.String("widths", "1,8,32", "comma-separated batch widths")
	maxDepth = flag.Int("maxdepth", layout.MaxDepth, "deepest specialized tree")
	verbose  = flag.Bool("v", false, "verbose output")
)

func main() {
	flag.Parse()

	ws, err := parseWidths(*widths)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *maxDepth != layout.MaxDepth {
		fmt.Fprintf(os.Stderr, "Error: -maxdepth must be %d to match layout.MaxDepth\n", layout.MaxDepth)
		os.Exit(1)
	}

	gen := &Generator{Package: *pkg, Widths: ws, MaxDepth: *maxDepth}
	src, err := gen.Generate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*output, src, 0o644); err != nil { //nolint:gosec // generated source
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *verbose {
		fmt.Printf("generated %d kernels into %s\n", len(ws)**maxDepth, *output)
	}
}

func parseWidths(s string) ([]int, error) {
	var ws []int
	for _, part := range strings.Split(s, ",") {
		w, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid width %q: %w", part, err)
		}
		if w < 1 {
			return nil, fmt.Errorf("width must be positive, got %d", w)
		}
		if slices.Contains(ws, w) {
			return nil, fmt.Errorf("duplicate width %d", w)
		}
		ws = append(ws, w)
	}
	if !slices.Contains(ws, 1) {
		return nil, fmt.Errorf("width 1 is required for the per-vector path")
	}
	return ws, nil
}

// Generator writes one kernel per (depth, width) pair plus the per-width
// depth tables and ensemble drivers.
type Generator struct {
	Package  string
	Widths   []int
	MaxDepth int

	buf bytes.Buffer
}

// Generate returns gofmt-ed Go source.
func (g *Generator) Generate() ([]byte, error) {
	g.buf.Reset()
	g.printf("// Code generated by internal/kernel/cmd/generator; DO NOT EDIT.\n\n")
	g.printf("package %s\n\n", g.Package)
	g.printf("import (\n\t\"unsafe\"\n\n\t\"github.com/hupe1980/nobranch/internal/layout\"\n)\n")

	for _, w := range g.Widths {
		g.table(w)
		g.driver(w)
		for d := 1; d <= g.MaxDepth; d++ {
			if w == 1 {
				g.scalar(d)
			} else {
				g.batch(d, w)
			}
		}
	}

	return format.Source(g.buf.Bytes())
}

func (g *Generator) printf(format string, args ...any) {
	fmt.Fprintf(&g.buf, format, args...)
}

func name(d, w int) string {
	return fmt.Sprintf("evalD%dW%d", d, w)
}

func (g *Generator) table(w int) {
	g.printf("\n// treesW%d evaluates one tree for %d vector(s), indexed by depth-1.\n", w, w)
	g.printf("var treesW%d = [layout.MaxDepth]func(f *[%d]unsafe.Pointer, t unsafe.Pointer, res *[%d]float32){\n", w, w, w)
	for d := 1; d <= g.MaxDepth; d++ {
		g.printf("\t%s,\n", name(d, w))
	}
	g.printf("}\n")
}

func (g *Generator) driver(w int) {
	g.printf("\n// ensembleW%d zeroes res and adds every tree's leaf value in insertion order.\n", w)
	g.printf("func ensembleW%d(roots []layout.Root, nodes []layout.Node, f *[%d]unsafe.Pointer, res *[%d]float32) {\n", w, w, w)
	g.printf("\t*res = [%d]float32{}\n", w)
	g.printf("\tbase := unsafe.Pointer(unsafe.SliceData(nodes))\n")
	g.printf("\tfor _, r := range roots {\n")
	g.printf("\t\ttreesW%d[r.Depth-1](f, unsafe.Add(base, uintptr(r.Offset)*nodeSize), res)\n", w)
	g.printf("\t}\n}\n")
}

func (g *Generator) scalar(d int) {
	g.printf("\nfunc %s(f *[1]unsafe.Pointer, t unsafe.Pointer, res *[1]float32) {\n", name(d, 1))
	g.printf("\tv := f[0]\n")
	g.printf("\tj := 1 + step(t, 0, v)\n")
	for range d - 1 {
		g.printf("\tj = j<<1 + 1 + step(t, j, v)\n")
	}
	g.printf("\tres[0] += leaf(t, j)\n")
	g.printf("}\n")
}

func (g *Generator) batch(d, w int) {
	g.printf("\nfunc %s(f *[%d]unsafe.Pointer, t unsafe.Pointer, res *[%d]float32) {\n", name(d, w), w, w)
	g.printf("\tvar j [%d]uintptr\n", w)
	g.printf("\tfor i := range j {\n\t\tj[i] = 1 + step(t, 0, f[i])\n\t}\n")
	for range d - 1 {
		g.printf("\tfor i := range j {\n\t\tj[i] = j[i]<<1 + 1 + step(t, j[i], f[i])\n\t}\n")
	}
	g.printf("\tfor i := range j {\n\t\tres[i] += leaf(t, j[i])\n\t}\n")
	g.printf("}\n")
}
