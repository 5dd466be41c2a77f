package subjective

import "fmt"

// Color is an RGB value with components in 0..1, matching the on-disk
// encoding used by subject colors.
type Color struct {
	Red   float64 `json:"red"`
	Green float64 `json:"green"`
	Blue  float64 `json:"blue"`
}

// SubjectiveBlue is the brand color, used when no subject color applies.
var SubjectiveBlue = Color{Red: 0.212, Green: 0.525, Blue: 1}

// Hex renders the color as a #rrggbb string suitable for lipgloss truecolor.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", byte(c.Red*255), byte(c.Green*255), byte(c.Blue*255))
}
