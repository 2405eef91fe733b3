package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// CameraConfig contains all parameters needed to create a camera
type CameraConfig struct {
	Center        core.Vec3 // Camera position
	LookAt        core.Vec3 // Point the camera is looking at
	Up            core.Vec3 // World-up hint
	VFov          float64   // Vertical field of view in degrees
	AspectRatio   float64   // Width / height
	Aperture      float64   // Lens diameter (0 = pinhole)
	FocusDistance float64   // Distance to the focal plane (0 = distance to LookAt)
}

// Camera maps image-plane coordinates in [-1, 1] to world-space rays
type Camera struct {
	origin        core.Vec3
	forward       core.Vec3 // unit vector toward LookAt
	right         core.Vec3 // unit
	up            core.Vec3 // unit
	halfWidth     float64
	halfHeight    float64
	lensRadius    float64
	focusDistance float64
}

// NewCamera creates a camera from the given configuration
func NewCamera(config CameraConfig) *Camera {
	focusDistance := config.FocusDistance
	if focusDistance == 0 {
		focusDistance = config.Center.Subtract(config.LookAt).Length()
	}

	// Viewport height is 2*tan(fov/2); right and up are scaled by half the extents
	theta := config.VFov * math.Pi / 180.0
	halfHeight := math.Tan(theta / 2)
	halfWidth := config.AspectRatio * halfHeight

	forward := config.LookAt.Subtract(config.Center).Normalize()
	right := forward.Cross(config.Up).Normalize()
	up := right.Cross(forward)

	return &Camera{
		origin:        config.Center,
		forward:       forward,
		right:         right,
		up:            up,
		halfWidth:     halfWidth,
		halfHeight:    halfHeight,
		lensRadius:    config.Aperture / 2,
		focusDistance: focusDistance,
	}
}

// GetRay returns the ray through image-plane point (u, v), u and v in [-1, 1].
// The origin is jittered across the lens disk for depth of field; the direction is unit length.
func (c *Camera) GetRay(u, v float64, sampler core.Sampler) core.Ray {
	rd := core.RandomInUnitDisk(sampler).Multiply(c.lensRadius)
	offset := c.right.Multiply(rd.X).Add(c.up.Multiply(rd.Y))

	target := c.forward.
		Add(c.right.Multiply(u * c.halfWidth)).
		Add(c.up.Multiply(v * c.halfHeight)).
		Multiply(c.focusDistance)

	return core.NewRay(c.origin.Add(offset), target.Subtract(offset))
}

// Forward returns the unit viewing direction
func (c *Camera) Forward() core.Vec3 {
	return c.forward
}

// MergeCameraConfig returns base with every non-zero field of override applied
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	zero := core.Vec3{}
	if override.Center != zero {
		result.Center = override.Center
	}
	if override.LookAt != zero {
		result.LookAt = override.LookAt
	}
	if override.Up != zero {
		result.Up = override.Up
	}
	if override.VFov != 0 {
		result.VFov = override.VFov
	}
	if override.AspectRatio != 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.Aperture != 0 {
		result.Aperture = override.Aperture
	}
	if override.FocusDistance != 0 {
		result.FocusDistance = override.FocusDistance
	}
	return result
}
