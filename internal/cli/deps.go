package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/reasonance-lab/artifactmaker/internal/service"
)

// Deps contains all dependencies for CLI operations
type Deps struct {
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
	Exit   func(code int)

	// Services is built on first use by LoadServices when nil.
	Services    *service.Services
	NewServices func() (*service.Services, error)
}

// DefaultDeps creates a new Deps with default values. Services are loaded
// lazily so commands that do not need them (completion, help) never touch
// the config file or log directory.
func DefaultDeps() *Deps {
	return &Deps{
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Stdin:       os.Stdin,
		Exit:        os.Exit,
		NewServices: service.NewServices,
	}
}

// NewDeps creates a new Deps with the given services
func NewDeps(services *service.Services) *Deps {
	d := DefaultDeps()
	d.Services = services
	return d
}

// LoadServices makes sure Services is set. On failure it reports the error,
// calls Exit(1), and returns false.
func (d *Deps) LoadServices() bool {
	if d.Services != nil {
		return true
	}
	if d.NewServices == nil {
		_, _ = fmt.Fprintln(d.Stderr, "Error: No services configured")
		d.Exit(1)
		return false
	}
	services, err := d.NewServices()
	if err != nil {
		_, _ = fmt.Fprintln(d.Stderr, "Error: Failed to load configuration")
		_, _ = fmt.Fprintf(d.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(d.Stderr, "Hint: Run 'artifactmaker config' to see the config file location")
		d.Exit(1)
		return false
	}
	d.Services = services
	return true
}

// Close releases the services, if they were loaded.
func (d *Deps) Close() {
	if d.Services != nil {
		_ = d.Services.Close()
	}
}
