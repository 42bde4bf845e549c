package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	T        float32  // Parameter t along the ray
	Point    Vec3     // Point of intersection
	Normal   Vec3     // Unit surface normal at intersection, pointing outward
	Material Material // Material of the hit object
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   Ray  // The scattered ray
	Attenuation Vec3 // Color attenuation
}

// Material interface for objects that can scatter rays.
// A false return means the ray was absorbed and contributes no radiance.
type Material interface {
	Scatter(rayIn Ray, hit HitRecord, sampler Sampler) (ScatterResult, bool)
}

// Shape interface for objects that can be intersected by rays
type Shape interface {
	Hit(ray Ray, tMin, tMax float32) (*HitRecord, bool)
}
