package placer

import (
	"bytes"
	"strconv"

	"github.com/gekko3d/assetplacer/input"
)

// NumericEntry accumulates a typed number while a control mode is active.
type NumericEntry struct {
	digits   []byte
	negative bool
}

func (n *NumericEntry) Active() bool {
	return len(n.digits) > 0 || n.negative
}

// Text is the buffer as shown to the user.
func (n *NumericEntry) Text() string {
	if n.negative {
		return "-" + string(n.digits)
	}
	return string(n.digits)
}

func (n *NumericEntry) Clear() {
	n.digits = n.digits[:0]
	n.negative = false
}

// Feed applies one frame of numeric input. It returns the parsed value and
// true when Enter submits a valid number; the buffer is cleared on submit.
func (n *NumericEntry) Feed(in input.NumericInputState) (float32, bool) {
	switch {
	case in.Digit >= 0:
		n.digits = append(n.digits, byte('0'+in.Digit))
	case in.Decimal:
		if bytes.IndexByte(n.digits, '.') < 0 {
			if len(n.digits) == 0 {
				n.digits = append(n.digits, '0')
			}
			n.digits = append(n.digits, '.')
		}
	case in.Minus:
		n.negative = !n.negative
	case in.Plus, in.Equals:
		n.negative = false
	case in.Backspace:
		if len(n.digits) == 0 {
			n.negative = false
			break
		}
		n.digits = n.digits[:len(n.digits)-1]
	}

	if !in.Enter || len(n.digits) == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(n.Text(), 32)
	n.Clear()
	if err != nil {
		return 0, false
	}
	return float32(v), true
}
