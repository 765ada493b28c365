package camera

// CameraController owns the eye position of an orbit camera.
// The eye sits on a sphere around the target described by radius, azimuth (around +Y) and
// elevation (above the XZ plane). Camera reads Position and Target each Update.
type CameraController interface {
	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - x, y, z: world-space camera position
	Position() (x, y, z float32)

	// Target returns the look-at point.
	//
	// Returns:
	//   - x, y, z: world-space target position
	Target() (x, y, z float32)

	// SetTarget sets the pivot point and recomputes the position.
	//
	// Parameters:
	//   - x, y, z: world-space coordinates
	SetTarget(x, y, z float32)

	// Orbit rotates around the target by the given angles. Elevation is clamped to its bounds.
	//
	// Parameters:
	//   - dAzimuth: change in azimuth, radians
	//   - dElevation: change in elevation, radians
	Orbit(dAzimuth, dElevation float32)

	// OrbitLeft rotates left by one orbit speed step.
	OrbitLeft()

	// OrbitRight rotates right by one orbit speed step.
	OrbitRight()

	// OrbitUp tilts upward by one orbit speed step.
	OrbitUp()

	// OrbitDown tilts downward by one orbit speed step.
	OrbitDown()

	// Drag orbits by a mouse movement in pixels, scaled by the mouse sensitivity.
	//
	// Parameters:
	//   - dx, dy: cursor movement since the last drag event
	Drag(dx, dy float32)

	// Zoom moves toward the target. Positive delta zooms in.
	//
	// Parameters:
	//   - delta: zoom amount, scaled by the zoom speed
	Zoom(delta float32)

	// Radius returns the distance from the target.
	//
	// Returns:
	//   - float32: current orbit radius
	Radius() float32

	// SetRadius sets the orbit radius, clamped to its bounds.
	//
	// Parameters:
	//   - radius: new distance from target
	SetRadius(radius float32)

	// Azimuth returns the horizontal angle around the Y axis in radians.
	Azimuth() float32

	// Elevation returns the vertical angle from the horizontal plane in radians.
	Elevation() float32

	// Fit frames a bounding sphere: the target moves to center, the radius becomes
	// distance × sphereRadius and the zoom bounds and speed scale with the sphere.
	// The framed state becomes the new Reset state.
	//
	// Parameters:
	//   - center: sphere center
	//   - sphereRadius: sphere radius (values <= 0 are treated as 1)
	//   - distance: eye distance in sphere radii
	Fit(center [3]float32, sphereRadius, distance float32)

	// Reset restores the state captured at construction or by the last Fit.
	Reset()
}
