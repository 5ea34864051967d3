package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/suparena/staticmodel"
	"github.com/suparena/staticmodel/declfile"
)

var (
	versionFlag = flag.Bool("version", false, "Show version information")
	vFlag       = flag.Bool("v", false, "Show version information (short)")
)

func main() {
	// Parse flags early to catch version flag
	flag.Parse()

	// Handle version flag
	if *versionFlag || *vFlag {
		info := staticmodel.GetVersionInfo()
		fmt.Printf("staticmodel declcheck version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: declcheck [flags] <declaration-file> ...")
		os.Exit(2)
	}

	exitCode := 0
	for _, path := range flag.Args() {
		models, err := declfile.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			exitCode = 1
			continue
		}

		fmt.Printf("%s: %d model(s)\n", path, len(models))
		for _, m := range models {
			fmt.Printf("  %s: %d member(s), fields %v, pk=%s\n",
				m.Name(), m.Len(), m.FieldNames(), m.PrimaryKeyField())
			for _, mem := range m.Members().All() {
				fmt.Printf("    %-16s %s\n", mem.Name(), mem.KeyString())
			}
		}
	}
	os.Exit(exitCode)
}
