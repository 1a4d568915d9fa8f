package rfft

import (
	"bufio"
	"io"
	"math"
	"strconv"
)

// WriteBracketed writes values as "[  v0 v1 ... ]" followed by a newline,
// each value in fixed notation with six decimals. Non-finite values are
// written as nan, inf and -inf.
func WriteBracketed(w io.Writer, values []float64) error {
	bw := bufio.NewWriter(w)
	_, _ = bw.WriteString("[  ")
	var num []byte
	for _, v := range values {
		switch {
		case math.IsNaN(v):
			_, _ = bw.WriteString("nan")
		case math.IsInf(v, 1):
			_, _ = bw.WriteString("inf")
		case math.IsInf(v, -1):
			_, _ = bw.WriteString("-inf")
		default:
			num = strconv.AppendFloat(num[:0], v, 'f', 6, 64)
			_, _ = bw.Write(num)
		}
		_ = bw.WriteByte(' ')
	}
	_, _ = bw.WriteString("]\n")
	return bw.Flush()
}
