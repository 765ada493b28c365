package camera

import (
	"sync"

	"github.com/chewxy/math32"
)

// orbitState is the part of the controller that Reset restores.
type orbitState struct {
	target    [3]float32
	radius    float32
	azimuth   float32
	elevation float32
}

// cameraControllerImpl is the orbit implementation of CameraController.
type cameraControllerImpl struct {
	mu *sync.Mutex

	orbitState
	home orbitState

	// computed from target + spherical coords
	position [3]float32

	minRadius    float32
	maxRadius    float32
	minElevation float32
	maxElevation float32

	orbitSpeed       float32
	mouseSensitivity float32
	zoomSpeed        float32
}

var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a new orbit controller.
// By default it looks at the origin from 5 units away, slightly above the horizon.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		mu: &sync.Mutex{},
		orbitState: orbitState{
			radius:    5,
			azimuth:   0,
			elevation: math32.Pi / 8,
		},

		minRadius:    0.01,
		maxRadius:    1000,
		minElevation: -math32.Pi/2 + 0.05,
		maxElevation: math32.Pi/2 - 0.05,

		orbitSpeed:       0.03,
		mouseSensitivity: 0.005,
		zoomSpeed:        0.25,
	}

	for _, option := range options {
		option(cc)
	}

	cc.clamp()
	cc.home = cc.orbitState
	cc.updatePosition()
	return cc
}

// clamp applies the radius and elevation bounds. Caller must hold the mutex.
func (cc *cameraControllerImpl) clamp() {
	cc.radius = min(max(cc.radius, cc.minRadius), cc.maxRadius)
	cc.elevation = min(max(cc.elevation, cc.minElevation), cc.maxElevation)
}

// updatePosition recomputes the eye from spherical coordinates. Caller must hold the mutex.
func (cc *cameraControllerImpl) updatePosition() {
	sinElev, cosElev := math32.Sincos(cc.elevation)
	sinAzim, cosAzim := math32.Sincos(cc.azimuth)

	cc.position[0] = cc.target[0] + cc.radius*cosElev*sinAzim
	cc.position[1] = cc.target[1] + cc.radius*sinElev
	cc.position[2] = cc.target[2] + cc.radius*cosElev*cosAzim
}

func (cc *cameraControllerImpl) Position() (x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.position[0], cc.position[1], cc.position[2]
}

func (cc *cameraControllerImpl) Target() (x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.target[0], cc.target[1], cc.target[2]
}

func (cc *cameraControllerImpl) SetTarget(x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.target = [3]float32{x, y, z}
	cc.updatePosition()
}

func (cc *cameraControllerImpl) Orbit(dAzimuth, dElevation float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.azimuth = math32.Remainder(cc.azimuth+dAzimuth, 2*math32.Pi)
	cc.elevation += dElevation
	cc.clamp()
	cc.updatePosition()
}

func (cc *cameraControllerImpl) OrbitLeft() {
	cc.Orbit(-cc.orbitSpeed, 0)
}

func (cc *cameraControllerImpl) OrbitRight() {
	cc.Orbit(cc.orbitSpeed, 0)
}

func (cc *cameraControllerImpl) OrbitUp() {
	cc.Orbit(0, cc.orbitSpeed)
}

func (cc *cameraControllerImpl) OrbitDown() {
	cc.Orbit(0, -cc.orbitSpeed)
}

func (cc *cameraControllerImpl) Drag(dx, dy float32) {
	// dragging right swings the eye left so the model appears to follow the cursor
	cc.Orbit(-dx*cc.mouseSensitivity, dy*cc.mouseSensitivity)
}

func (cc *cameraControllerImpl) Zoom(delta float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.radius -= delta * cc.zoomSpeed
	cc.clamp()
	cc.updatePosition()
}

func (cc *cameraControllerImpl) Radius() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.radius
}

func (cc *cameraControllerImpl) SetRadius(radius float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.radius = radius
	cc.clamp()
	cc.updatePosition()
}

func (cc *cameraControllerImpl) Azimuth() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.azimuth
}

func (cc *cameraControllerImpl) Elevation() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.elevation
}

func (cc *cameraControllerImpl) Fit(center [3]float32, sphereRadius, distance float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	if sphereRadius <= 0 {
		sphereRadius = 1
	}
	cc.target = center
	cc.minRadius = sphereRadius * 0.05
	cc.maxRadius = sphereRadius * 100
	cc.zoomSpeed = sphereRadius * 0.1
	cc.radius = sphereRadius * distance
	cc.clamp()
	cc.home = cc.orbitState
	cc.updatePosition()
}

func (cc *cameraControllerImpl) Reset() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.orbitState = cc.home
	cc.updatePosition()
}
