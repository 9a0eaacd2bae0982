package mesh

import (
	"image/color"
	"math"

	"github.com/rotisserie/eris"
)

// AddTriangle appends a solid triangle
func (m *Mesh) AddTriangle(p1, p2, p3 Point, c color.Color) error {
	if err := m.ensure(3); err != nil {
		return err
	}
	r, g, b, a := premultiplied(c)
	base := uint16(len(m.vertices))
	m.vertex(p1.X, p1.Y, r, g, b, a)
	m.vertex(p2.X, p2.Y, r, g, b, a)
	m.vertex(p3.X, p3.Y, r, g, b, a)
	m.indices = append(m.indices, base, base+1, base+2)
	return nil
}

// AddQuad appends a solid quad from four corners in winding order
func (m *Mesh) AddQuad(p1, p2, p3, p4 Point, c color.Color) error {
	if err := m.ensure(4); err != nil {
		return err
	}
	r, g, b, a := premultiplied(c)
	base := uint16(len(m.vertices))
	m.vertex(p1.X, p1.Y, r, g, b, a)
	m.vertex(p2.X, p2.Y, r, g, b, a)
	m.vertex(p3.X, p3.Y, r, g, b, a)
	m.vertex(p4.X, p4.Y, r, g, b, a)
	m.indices = append(m.indices, base, base+1, base+2, base, base+2, base+3)
	return nil
}

// AddRect appends an axis-aligned solid rectangle
func (m *Mesh) AddRect(x, y, w, h float64, c color.Color) error {
	return m.AddQuad(
		Point{x, y},
		Point{x + w, y},
		Point{x + w, y + h},
		Point{x, y + h},
		c,
	)
}

// AddLine appends a line segment rendered as a quad of the given
// thickness. Zero-length segments add nothing.
func (m *Mesh) AddLine(p1, p2 Point, thickness float64, c color.Color) error {
	dx, dy := p2.X-p1.X, p2.Y-p1.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return nil
	}
	// Perpendicular half-thickness offset
	nx := -dy / length * thickness / 2
	ny := dx / length * thickness / 2
	return m.AddQuad(
		Point{p1.X + nx, p1.Y + ny},
		Point{p2.X + nx, p2.Y + ny},
		Point{p2.X - nx, p2.Y - ny},
		Point{p1.X - nx, p1.Y - ny},
		c,
	)
}

// AddCircle appends a solid circle as a triangle fan around the
// center. Segment counts below 3 are clamped to 3.
func (m *Mesh) AddCircle(cx, cy, radius float64, segments int, c color.Color) error {
	if segments < 3 {
		segments = 3
	}
	if err := m.ensure(segments + 1); err != nil {
		return err
	}
	r, g, b, a := premultiplied(c)
	base := uint16(len(m.vertices))
	m.vertex(cx, cy, r, g, b, a)
	for i := 0; i < segments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		sin, cos := math.Sincos(angle)
		m.vertex(cx+radius*cos, cy+radius*sin, r, g, b, a)
	}
	for i := 0; i < segments; i++ {
		next := uint16(i+1)%uint16(segments) + 1
		m.indices = append(m.indices, base, base+uint16(i)+1, base+next)
	}
	return nil
}

// AddPolygon appends a convex polygon as a fan from the first point
func (m *Mesh) AddPolygon(points []Point, c color.Color) error {
	if len(points) < 3 {
		return eris.Errorf("mesh: polygon needs at least 3 points, got %d", len(points))
	}
	if err := m.ensure(len(points)); err != nil {
		return err
	}
	r, g, b, a := premultiplied(c)
	base := uint16(len(m.vertices))
	for _, p := range points {
		m.vertex(p.X, p.Y, r, g, b, a)
	}
	for i := 1; i < len(points)-1; i++ {
		m.indices = append(m.indices, base, base+uint16(i), base+uint16(i)+1)
	}
	return nil
}
