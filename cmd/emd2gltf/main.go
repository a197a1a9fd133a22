package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"emd-renderer/internal/emd"
	"emd-renderer/internal/gltfexport"
)

func main() {
	out := flag.String("o", "", "Output path (single input only; default: input with .glb extension)")
	ascii := flag.Bool("ascii", false, "Write JSON .gltf instead of binary .glb")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: emd2gltf [-o out.glb] [-ascii] file.emd ...")
		os.Exit(2)
	}
	if *out != "" && flag.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "-o requires exactly one input file")
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
		for _, w := range m.Warnings {
			fmt.Fprintf(os.Stderr, "%s: warning: %s\n", arg, w)
		}

		outPath := *out
		if outPath == "" {
			ext := ".glb"
			if *ascii {
				ext = ".gltf"
			}
			outPath = strings.TrimSuffix(arg, filepath.Ext(arg)) + ext
		}

		if err := gltfexport.Save(m, outPath); err != nil {
			fmt.Fprintf(os.Stderr, "Export error %s: %v\n", arg, err)
			exit = 1
			continue
		}
		fmt.Printf("%s → %s (%d objects)\n", arg, outPath, len(m.Objects))
	}
	os.Exit(exit)
}
