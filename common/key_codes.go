package common

// Virtual key codes used by the viewer's input mapping.
// The values match GLFW key codes, which use ASCII for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyR     = 82  // R key (ASCII)
	KeyEqual = 61  // = / + key (ASCII)
	KeyMinus = 45  // - key (ASCII)
	KeyEsc   = 256 // Escape key (GLFW)

	KeyRight = 262
	KeyLeft  = 263
	KeyDown  = 264
	KeyUp    = 265
)
