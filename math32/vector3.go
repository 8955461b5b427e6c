package math32

import "fmt"

// Vector3 represents a 3D vector. Y is up; agents walk on the XZ plane.
type Vector3 struct {
	X float32 `json:"x" yaml:"x"`
	Y float32 `json:"y" yaml:"y"`
	Z float32 `json:"z" yaml:"z"`
}

// Vec3 builds a Vector3.
func Vec3(x, y, z float32) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Add adds two vectors.
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub subtracts two vectors.
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Mul multiplies a vector by a scalar.
func (v Vector3) Mul(s float32) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// Length calculates the length of a vector.
func (v Vector3) Length() float32 {
	return Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Distance calculates the distance between two vectors.
func (v Vector3) Distance(other Vector3) float32 {
	return v.Sub(other).Length()
}

// Normalize normalizes a vector. The zero vector stays zero.
func (v Vector3) Normalize() Vector3 {
	l := v.Length()
	if l == 0 {
		return Vector3{}
	}
	return v.Mul(1.0 / l)
}

// Planar drops the vertical component.
func (v Vector3) Planar() Vector3 {
	return Vector3{X: v.X, Z: v.Z}
}

// RotateY rotates v about the +Y axis by angle radians (right-handed).
func (v Vector3) RotateY(angle float32) Vector3 {
	s, c := Sin(angle), Cos(angle)
	return Vector3{
		X: v.X*c + v.Z*s,
		Y: v.Y,
		Z: -v.X*s + v.Z*c,
	}
}

// Yaw returns the rotation about +Y that points a +Z-forward model along v.
func (v Vector3) Yaw() float32 {
	return Atan2(v.X, v.Z)
}

// String returns a string representation of the vector.
func (v Vector3) String() string {
	return fmt.Sprintf("[%2f,%2f,%2f]", v.X, v.Y, v.Z)
}
