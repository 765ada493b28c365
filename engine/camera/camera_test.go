package camera

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGPUCameraUniformLayout(t *testing.T) {
	u := GPUCameraUniform{
		ViewProj:       mgl32.Ident4(),
		CameraPosition: mgl32.Vec3{1, 2, 3},
	}
	require.Equal(t, 80, u.Size())

	buf := u.Marshal()
	require.Len(t, buf, 80)
	read := func(off int) float32 { return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:])) }
	assert.Equal(t, float32(1), read(0))
	assert.Equal(t, float32(0), read(4))
	assert.Equal(t, float32(1), read(60))
	assert.Equal(t, float32(1), read(64))
	assert.Equal(t, float32(2), read(68))
	assert.Equal(t, float32(3), read(72))
	assert.Equal(t, float32(0), read(76))

	assert.Contains(t, GPUCameraUniformSource, "view_proj: mat4x4<f32>")
}

func TestControllerPosition(t *testing.T) {
	cc := NewCameraController(WithTarget(1, 2, 3), WithRadius(5), WithElevation(0), WithAzimuth(0))
	x, y, z := cc.Position()
	assert.InDelta(t, 1, x, 1e-5)
	assert.InDelta(t, 2, y, 1e-5)
	assert.InDelta(t, 8, z, 1e-5)

	cc.Orbit(math.Pi/2, 0)
	x, y, z = cc.Position()
	assert.InDelta(t, 6, x, 1e-5)
	assert.InDelta(t, 2, y, 1e-5)
	assert.InDelta(t, 3, z, 1e-5)
}

func TestControllerClamping(t *testing.T) {
	cc := NewCameraController(WithRadiusBounds(1, 10), WithElevationBounds(-0.5, 0.5), WithZoomSpeed(1))

	cc.Orbit(0, 3)
	assert.InDelta(t, 0.5, cc.Elevation(), 1e-6)
	cc.Orbit(0, -3)
	assert.InDelta(t, -0.5, cc.Elevation(), 1e-6)

	cc.Zoom(100)
	assert.Equal(t, float32(1), cc.Radius())
	cc.Zoom(-100)
	assert.Equal(t, float32(10), cc.Radius())

	cc.SetRadius(0)
	assert.Equal(t, float32(1), cc.Radius())
}

func TestControllerFitAndReset(t *testing.T) {
	cc := NewCameraController()
	cc.Fit([3]float32{10, 0, 0}, 2, 3)

	tx, ty, tz := cc.Target()
	assert.Equal(t, [3]float32{10, 0, 0}, [3]float32{tx, ty, tz})
	assert.InDelta(t, 6, cc.Radius(), 1e-6)

	az, el := cc.Azimuth(), cc.Elevation()
	cc.Drag(40, 10)
	cc.Zoom(1)
	assert.NotEqual(t, az, cc.Azimuth())

	cc.Reset()
	assert.InDelta(t, 6, cc.Radius(), 1e-6)
	assert.Equal(t, az, cc.Azimuth())
	assert.Equal(t, el, cc.Elevation())
}

func TestControllerFitDegenerateSphere(t *testing.T) {
	cc := NewCameraController()
	cc.Fit([3]float32{}, 0, 4)
	assert.InDelta(t, 4, cc.Radius(), 1e-6)
}

func TestCameraDepthRange(t *testing.T) {
	cc := NewCameraController(WithRadius(5), WithElevation(0), WithAzimuth(0))
	c := NewCamera(WithController(cc), WithClipPlanes(1, 50), WithAspect(1))

	project := func(p mgl32.Vec3) float32 {
		clip := c.ViewProjection().Mul4x1(p.Vec4(1))
		return clip.Z() / clip.W()
	}

	// eye sits at z=5 looking down -z
	assert.InDelta(t, 0, project(mgl32.Vec3{0, 0, 4}), 1e-4)
	assert.InDelta(t, 1, project(mgl32.Vec3{0, 0, -45}), 1e-4)
	mid := project(mgl32.Vec3{0, 0, 0})
	assert.Greater(t, mid, float32(0))
	assert.Less(t, mid, float32(1))
}

func TestCameraUniformTracksController(t *testing.T) {
	cc := NewCameraController(WithRadius(5), WithElevation(0))
	c := NewCamera(WithController(cc))

	u := c.Uniform()
	assert.InDelta(t, 5, u.CameraPosition.Z(), 1e-5)

	cc.SetRadius(8)
	c.Update()
	assert.InDelta(t, 8, c.Uniform().CameraPosition.Z(), 1e-5)
	assert.Equal(t, c.ViewProjection(), c.Uniform().ViewProj)
}

func TestCameraWithoutController(t *testing.T) {
	c := NewCamera()
	c.Update()
	assert.Nil(t, c.Controller())
	assert.Equal(t, mgl32.Mat4{}, c.ViewProjection())
	assert.NotEmpty(t, c.BindGroupProvider().Label())

	c.SetAspect(-1)
	assert.Equal(t, float32(1), c.Aspect())
}
