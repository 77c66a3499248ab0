package geom

import "github.com/go-gl/mathgl/mgl64"

// Transform is the position and orientation of a scene object.
type Transform struct {
	Position Vec3
	Rotation Quat
}

// NewTransform creates an identity transform at pos.
func NewTransform(pos Vec3) Transform {
	return Transform{
		Position: pos,
		Rotation: mgl64.QuatIdent(),
	}
}

func (t Transform) Forward() Vec3 {
	return ForwardOf(t.Rotation)
}
