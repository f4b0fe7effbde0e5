package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"dlc-checker/core/config"
	"dlc-checker/feature/gamedata"
	"dlc-checker/feature/manifest"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Prints, for each identifier given on the command line, whether the cached
// DLC list knows it and which data directories hold it.
func main() {
	if len(os.Args) < 2 {
		log.Fatalf("usage: %s <identifier>...", os.Args[0])
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal(err)
	}

	fs := afero.NewOsFs()
	data, err := manifest.NewCache(fs, cfg.Manifest.CachePath).Read()
	if err != nil {
		log.Fatal(err)
	}

	m, err := manifest.ParseBytes(data)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("=== Manifest ===")
	fmt.Printf("Version: %s, entries: %d, skipped lines: %d\n", m.Version(), m.Len(), len(m.Skipped()))
	for _, skipped := range m.Skipped() {
		fmt.Printf("  line %d: %s (%s)\n", skipped.Line, skipped.Text, skipped.Reason)
	}

	resolver := gamedata.NewResolver(zap.NewNop(), gamedata.DefaultLocators(cfg.Game, fs)...)
	root, err := resolver.Resolve(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("\n=== Install root ===")
	fmt.Printf("%s (via %s)\n", root.Path, root.Via)

	perDir := make(map[string]gamedata.InstalledSet, len(cfg.Game.DataDirs))
	for _, dir := range cfg.Game.DataDirs {
		set, err := gamedata.NewScanner(fs, []string{dir}).Scan(root.Path)
		if err != nil {
			fmt.Printf("%s: %v\n", dir, err)
			continue
		}
		perDir[dir] = set
		fmt.Printf("%s: %d files\n", dir, len(set))
	}

	fmt.Println("\n=== Lookup ===")
	for _, id := range os.Args[1:] {
		name, known := m.Lookup(id)
		if known {
			fmt.Printf("%s: listed as %q\n", id, name)
		} else {
			fmt.Printf("%s: NOT in manifest\n", id)
		}
		for _, dir := range cfg.Game.DataDirs {
			if set, ok := perDir[dir]; ok && set.Has(id) {
				fmt.Printf("  present in %s\n", dir)
			}
		}
	}
}
