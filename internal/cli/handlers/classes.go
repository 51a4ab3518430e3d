// Package handlers implements the CLI commands on top of the service layer.
// Each handler writes to the injected stdout and stderr and reports failure
// through deps.Exit.
package handlers

import (
	"fmt"
	"strings"

	"github.com/reasonance-lab/artifactmaker/internal/classes"
	"github.com/reasonance-lab/artifactmaker/internal/cli"
)

// ListClasses prints the configured classes
func ListClasses(deps *cli.Deps) {
	list := deps.Services.Gallery.Classes()

	_, _ = fmt.Fprintf(deps.Stdout, "Classes (%d):\n", len(list))
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 60))
	for _, c := range list {
		_, _ = fmt.Fprintf(deps.Stdout, "%-30s %s\n", c.Name, c.Slug)
	}
}

// resolveClass looks up the --class value, reporting a missing or unknown
// class on stderr.
func resolveClass(deps *cli.Deps, name string) (classes.ClassInfo, bool) {
	known := strings.Join(deps.Services.Classes.Names(), ", ")
	if strings.TrimSpace(name) == "" {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: A class is required")
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Pass --class with one of: %s\n", known)
		deps.Exit(1)
		return classes.ClassInfo{}, false
	}
	class, err := deps.Services.Gallery.Resolve(name)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Unknown class '%s'\n", name)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Available classes: %s\n", known)
		deps.Exit(1)
		return classes.ClassInfo{}, false
	}
	return class, true
}
