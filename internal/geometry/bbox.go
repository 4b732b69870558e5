package geometry

import (
	"fmt"
	"math"
)

// BoundingBox represents an axis-aligned 3D bounding box
type BoundingBox struct {
	MinX, MinY, MinZ float64
	MaxX, MaxY, MaxZ float64
}

// Width returns the width (X dimension) of the bounding box
func (b *BoundingBox) Width() float64 {
	return b.MaxX - b.MinX
}

// Height returns the height (Y dimension) of the bounding box
func (b *BoundingBox) Height() float64 {
	return b.MaxY - b.MinY
}

// Depth returns the depth (Z dimension) of the bounding box
func (b *BoundingBox) Depth() float64 {
	return b.MaxZ - b.MinZ
}

// Center returns the midpoint of the box
func (b *BoundingBox) Center() Vector3d {
	return Vector3d{
		X: (b.MinX + b.MaxX) / 2,
		Y: (b.MinY + b.MaxY) / 2,
		Z: (b.MinZ + b.MaxZ) / 2,
	}
}

// Extend grows the box so it contains p
func (b *BoundingBox) Extend(p Vector3d) {
	b.MinX = math.Min(b.MinX, p.X)
	b.MinY = math.Min(b.MinY, p.Y)
	b.MinZ = math.Min(b.MinZ, p.Z)
	b.MaxX = math.Max(b.MaxX, p.X)
	b.MaxY = math.Max(b.MaxY, p.Y)
	b.MaxZ = math.Max(b.MaxZ, p.Z)
}

func (b *BoundingBox) String() string {
	return fmt.Sprintf("[%g, %g] × [%g, %g] × [%g, %g]", b.MinX, b.MaxX, b.MinY, b.MaxY, b.MinZ, b.MaxZ)
}

// CalculateBoundingBox returns the smallest box containing all points
func CalculateBoundingBox(points []Vector3d) (*BoundingBox, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("no points provided")
	}

	// Initialize with first point
	first := points[0]
	bbox := &BoundingBox{
		MinX: first.X,
		MinY: first.Y,
		MinZ: first.Z,
		MaxX: first.X,
		MaxY: first.Y,
		MaxZ: first.Z,
	}

	for _, p := range points[1:] {
		bbox.Extend(p)
	}

	return bbox, nil
}

// CalculatePlacedBoundingBox returns the box spanned by the translations of
// the given transforms
func CalculatePlacedBoundingBox(transforms []Transform) (*BoundingBox, error) {
	if len(transforms) == 0 {
		return nil, fmt.Errorf("no transforms provided")
	}

	points := make([]Vector3d, 0, len(transforms))
	for _, t := range transforms {
		points = append(points, t.Translation())
	}

	return CalculateBoundingBox(points)
}
