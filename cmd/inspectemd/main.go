package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"emd-renderer/internal/emd"
)

func main() {
	addrs := flag.Bool("addrs", false, "Print per-vertex source byte addresses")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: inspectemd [-addrs] file.emd ...")
		os.Exit(2)
	}

	exit := 0
	for _, arg := range flag.Args() {
		m, err := emd.ParseFile(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Parse error %s: %v\n", arg, err)
			exit = 1
			continue
		}

		fmt.Printf("\n=== %s (objects=%d) ===\n", arg, len(m.Objects))
		for i, obj := range m.Objects {
			fmt.Printf("  Object[%d]: verts=%d faces=%d", i, len(obj.Verts), len(obj.Faces))
			if len(obj.Verts) > 0 {
				min, max := bounds(obj.Verts)
				fmt.Printf("  x=[%.3f..%.3f] y=[%.3f..%.3f] z=[%.3f..%.3f]",
					min[0], max[0], min[1], max[1], min[2], max[2])
			}
			fmt.Println()

			if *addrs {
				for j, v := range obj.Verts {
					fmt.Printf("    vert[%d] @0x%04X (%.4f, %.4f, %.4f)\n",
						j, obj.VertAddrs[j], v[0], v[1], v[2])
				}
			}
		}

		for _, w := range m.Warnings {
			fmt.Fprintf(os.Stderr, "  warning: %s\n", w)
		}
	}
	os.Exit(exit)
}

func bounds(verts [][3]float32) (min, max [3]float64) {
	min = [3]float64{math.Inf(1), math.Inf(1), math.Inf(1)}
	max = [3]float64{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, v := range verts {
		for k := 0; k < 3; k++ {
			f := float64(v[k])
			if f < min[k] {
				min[k] = f
			}
			if f > max[k] {
				max[k] = f
			}
		}
	}
	return min, max
}
