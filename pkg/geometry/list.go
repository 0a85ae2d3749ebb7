package geometry

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

// ShapeList is an ordered collection of shapes that is itself a Shape.
// Hit returns the closest intersection across all members.
type ShapeList []Shape

// Add appends shapes to the list
func (l *ShapeList) Add(shapes ...Shape) {
	*l = append(*l, shapes...)
}

// Hit checks every member, narrowing the interval to the closest hit found so far
func (l ShapeList) Hit(ray core.Ray, interval core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := interval

	for _, shape := range l {
		if hit, isHit := shape.Hit(ray, closestSoFar, sampler); isHit {
			closestSoFar = closestSoFar.WithMax(hit.T)
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
