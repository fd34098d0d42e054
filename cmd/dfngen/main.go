// Package main is the dfngen command line tool. Running
// "dfngen input-file output-folder" reads a DFN generation input file,
// runs the generator to its configured stop condition, and writes the
// fracture network and run report into output-folder.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ongchi/dfngen/dfn"
)

// Exit status codes: 0 success, 1 on an argument or input-
// file error, 2 on NoConnectivity (the network survives cluster
// filtering with zero fractures).
const (
	exitOK             = 0
	exitInputError     = 1
	exitNoConnectivity = 2
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: dfngen <input-file-path> <output-folder-path>")
		os.Exit(exitInputError)
	}
	inputPath, outputFolder := os.Args[1], os.Args[2]

	catalog, err := loadCatalog(inputPath)
	if err != nil {
		log.Printf("family catalog: %v", err)
		os.Exit(exitInputError)
	}

	cfg, err := dfn.ParseConfig(inputPath, catalog)
	if err != nil {
		log.Printf("input error: %v", err)
		os.Exit(exitInputError)
	}

	if err := makeOutputDirs(outputFolder); err != nil {
		log.Printf("output folder: %v", err)
		os.Exit(exitInputError)
	}

	hotkey := dfn.NewTerminalHotkey()
	defer hotkey.Close()

	driver := dfn.NewDriver(&cfg, hotkey)
	driver.Run()

	clusters := dfn.AnalyzeClusters(driver.Network(), cfg.Domain, cfg.Eps)
	final := dfn.SelectFinalFractures(clusters, &cfg)

	if err := writeReports(&cfg, driver, final, outputFolder); err != nil {
		log.Printf("writing reports: %v", err)
		os.Exit(exitInputError)
	}

	if len(final) == 0 {
		fmt.Fprintln(os.Stderr, "no fractures survived cluster filtering (NoConnectivity): "+
			"try increasing family density, shrinking the domain, or enabling ignoreBoundaryFaces")
		os.Exit(exitNoConnectivity)
	}

	os.Exit(exitOK)
}

// loadCatalog reads family_catalog.yaml from the input file's directory,
// if present, so ePreset/rPreset keys in the input file can resolve.
// Absent the file, an empty catalog is used and every preset lookup
// simply misses.
func loadCatalog(inputPath string) (*dfn.FamilyCatalog, error) {
	catalogPath := filepath.Join(filepath.Dir(inputPath), "family_catalog.yaml")
	data, err := os.ReadFile(catalogPath)
	if err != nil {
		if os.IsNotExist(err) {
			return dfn.LoadFamilyCatalog(nil)
		}
		return nil, err
	}
	return dfn.LoadFamilyCatalog(data)
}

func makeOutputDirs(outputFolder string) error {
	for _, sub := range []string{"", "radii", "polys"} {
		if err := os.MkdirAll(filepath.Join(outputFolder, sub), 0o755); err != nil {
			return err
		}
	}
	return nil
}

func writeReports(cfg *dfn.Config, driver *dfn.Driver, final []int, outputFolder string) error {
	reportPath, radiiPath := dfn.OutputPaths(outputFolder)

	reportFile, err := os.Create(reportPath)
	if err != nil {
		return err
	}
	defer reportFile.Close()
	if err := dfn.WriteOutputReport(reportFile, cfg, driver, final); err != nil {
		return err
	}

	if !cfg.OutputAllRadii {
		return nil
	}
	radiiFile, err := os.Create(radiiPath)
	if err != nil {
		return err
	}
	defer radiiFile.Close()
	return dfn.WriteRadiiReport(radiiFile, driver.Network())
}
