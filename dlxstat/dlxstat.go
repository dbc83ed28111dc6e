// Package dlxstat renders a Matrix as a human-readable bitmap dump and
// a one-line statistics summary. It supplements the original's
// operator<<(ostream&, DLXMatrix&) (row_to_boolvector joined with
// newlines) in the style of lvlath's Dense.String(): build per-row
// strings, then concatenate.
package dlxstat

import (
	"fmt"
	"strings"

	"github.com/hivert/dlxgo/dlx"
)

// Render dumps every option of m as a dense 0/1 row, one per line, in
// insertion order. It never mutates m.
//
// Complexity: O(NbOptions * NbItems).
func Render(m *dlx.Matrix) string {
	var b strings.Builder
	for i := 0; i < m.NbOptions(); i++ {
		row, err := m.OptionDense(i)
		if err != nil {
			continue // unreachable: i is always in range
		}
		b.WriteString("[")
		for j, v := range row {
			if v {
				b.WriteString("1")
			} else {
				b.WriteString("0")
			}
			if j < len(row)-1 {
				b.WriteString(", ")
			}
		}
		b.WriteString("]\n")
	}
	return b.String()
}

// Summary returns a one-line count of choices, dances, and solutions
// recorded on m since its last Reset (or last SearchRec call).
func Summary(m *dlx.Matrix) string {
	return fmt.Sprintf("%d choices, %d dances, %d solutions", m.NbChoices(), m.NbDances(), m.NbSolutions())
}
