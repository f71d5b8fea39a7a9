package color

import (
	"fmt"
	"strconv"
)

// RGB is a 24-bit color. Components are expected in [0,255] but are not
// validated: out-of-range values are rendered as-is and the terminal decides
// what to do with them. Use Clamp when a caller needs well-formed output.
type RGB struct {
	R, G, B int
}

// params renders the "R;G;B" parameter list.
func (c RGB) params() string {
	return strconv.Itoa(c.R) + ";" + strconv.Itoa(c.G) + ";" + strconv.Itoa(c.B)
}

// Foreground returns the 24-bit foreground sequence ESC[38;2;R;G;Bm.
func (c RGB) Foreground() string {
	return csi + "38;2;" + c.params() + "m"
}

// Background returns the 24-bit background sequence ESC[48;2;R;G;Bm.
func (c RGB) Background() string {
	return csi + "48;2;" + c.params() + "m"
}

// Clamp returns a copy with every component limited to [0,255].
func (c RGB) Clamp() RGB {
	return RGB{R: clampComponent(c.R), G: clampComponent(c.G), B: clampComponent(c.B)}
}

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// FgBg returns a single sequence setting both the foreground and the
// background, foreground first: ESC[38;2;R;G;B;48;2;R;G;Bm.
func FgBg(fg, bg RGB) string {
	return csi + "38;2;" + fg.params() + ";48;2;" + bg.params() + "m"
}

func clampComponent(v int) int {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	default:
		return v
	}
}
