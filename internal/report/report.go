// Package report writes solver results for humans.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/cwbudde/baryroot/internal/roots"
	"github.com/cwbudde/baryroot/internal/table"
)

// Print writes the abscissa found for target and the iteration count.
func Print(w io.Writer, target table.Charge, r roots.Result) error {
	_, err := fmt.Fprintf(w, "Abscissa value that yields a potential of %s = %v\nRoot was found in %d iterations.\n",
		strconv.FormatFloat(float64(target), 'g', -1, 64), table.Energy(r.Root), r.Iterations)
	return err
}
