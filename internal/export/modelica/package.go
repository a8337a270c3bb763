package modelica

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
)

// writePackage writes the package.mo declaration for one directory of
// the generated tree.
//
// Parameters:
//   - dir: Directory the package.mo belongs to (created if missing)
//   - name: Modelica package name
//   - within: Enclosing package path, empty at the project root
//   - uses: Library version annotations, project root only
func writePackage(dir, name, within string, uses []string) error {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("creating package directory: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, "package.mo"))
	if err != nil {
		return fmt.Errorf("creating package.mo: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if within == "" {
		fmt.Fprintf(w, "within ;\n")
	} else {
		fmt.Fprintf(w, "within %s;\n", within)
	}
	fmt.Fprintf(w, "package %s\n", name)
	if len(uses) > 0 {
		fmt.Fprintf(w, "  annotation(uses(")
		for i, use := range uses {
			if i > 0 {
				fmt.Fprintf(w, ", ")
			}
			fmt.Fprintf(w, "%s", use)
		}
		fmt.Fprintf(w, "));\n")
	}
	fmt.Fprintf(w, "end %s;\n", name)

	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing package.mo: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing package.mo: %w", err)
	}
	return nil
}

// writePackageOrder writes the package.order manifest listing the
// contained packages and models, one name per line, in load order.
func writePackageOrder(dir string, names []string) error {
	f, err := os.Create(filepath.Join(dir, "package.order"))
	if err != nil {
		return fmt.Errorf("creating package.order: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, name := range names {
		fmt.Fprintf(w, "%s\n", name)
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing package.order: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing package.order: %w", err)
	}
	return nil
}
