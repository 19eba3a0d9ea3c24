//go:build mage

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/magefile/mage/mg"
)

// runCLI invokes the built coursegraph binary with args.
func runCLI(args ...string) error {
	cmd := exec.Command(filepath.Join(binDir, binName), args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Fetch scrapes the OCW catalog and writes the course graph.
func Fetch() error {
	mg.Deps(Build, Init)
	fmt.Println("[pipeline] Scraping the OCW catalog.")
	return runCLI("fetch")
}

// Graph rebuilds the graph document from the local course index.
func Graph() error {
	mg.Deps(Build)
	fmt.Println("[pipeline] Assembling the course graph from the index.")
	return runCLI("graph")
}

// Analyze prints the statistics report for the current graph document.
func Analyze() error {
	mg.Deps(Build)
	fmt.Println("[pipeline] Analyzing the course graph.")
	return runCLI("stats")
}

// Topics curates PhD thesis topics from OpenAlex.
func Topics() error {
	mg.Deps(Build, Init)
	fmt.Println("[pipeline] Curating thesis topics from OpenAlex.")
	return runCLI("topics")
}
