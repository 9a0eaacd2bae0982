// Package mesh provides renderable 2D geometry on top of Ebitengine's
// triangle-drawing path. A Mesh accumulates vertices and indices
// through the primitive builders and renders with a single
// DrawTriangles call.
package mesh

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rotisserie/eris"
)

// MaxVertices is the hard ceiling imposed by uint16 indices
const MaxVertices = 65535

// ErrMeshFull is returned by builders that would overflow the vertex
// buffer past MaxVertices.
var ErrMeshFull = eris.New("mesh: vertex buffer full")

// Untextured geometry samples the center pixel of a small white image,
// the usual Ebitengine idiom for solid-color triangles.
var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage *ebiten.Image
)

func init() {
	whiteImage.Fill(color.White)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// Point is a position in model space
type Point struct {
	X, Y float64
}

// Mesh holds vertex and index buffers plus the texture they sample
type Mesh struct {
	vertices []ebiten.Vertex
	indices  []uint16
	texture  *ebiten.Image
	scratch  []ebiten.Vertex
}

// New creates an empty untextured mesh
func New() *Mesh {
	return &Mesh{texture: whiteSubImage}
}

// NewTextured creates an empty mesh sampling the given image
func NewTextured(texture *ebiten.Image) *Mesh {
	return &Mesh{texture: texture}
}

// DrawOptions positions a mesh on the destination image. Zero scale is
// treated as unit scale so the zero value draws the mesh as built.
type DrawOptions struct {
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64 // radians, applied before translation
	Tint     color.Color
}

// Draw renders the mesh onto dst with one DrawTriangles call. The
// transform is applied CPU-side to a scratch buffer; the mesh's own
// vertices are never modified.
func (m *Mesh) Draw(dst *ebiten.Image, opts DrawOptions) {
	if len(m.indices) == 0 {
		return
	}

	sx, sy := opts.ScaleX, opts.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	sin, cos := 0.0, 1.0
	if opts.Rotation != 0 {
		sin, cos = math.Sincos(opts.Rotation)
	}
	tr, tg, tb, ta := float32(1), float32(1), float32(1), float32(1)
	if opts.Tint != nil {
		tr, tg, tb, ta = premultiplied(opts.Tint)
	}

	m.scratch = m.scratch[:0]
	for _, v := range m.vertices {
		x := float64(v.DstX) * sx
		y := float64(v.DstY) * sy
		if opts.Rotation != 0 {
			x, y = x*cos-y*sin, x*sin+y*cos
		}
		v.DstX = float32(x + opts.X)
		v.DstY = float32(y + opts.Y)
		v.ColorR *= tr
		v.ColorG *= tg
		v.ColorB *= tb
		v.ColorA *= ta
		m.scratch = append(m.scratch, v)
	}

	dst.DrawTriangles(m.scratch, m.indices, m.texture, &ebiten.DrawTrianglesOptions{})
}

// Clear empties the mesh, retaining buffer capacity
func (m *Mesh) Clear() {
	m.vertices = m.vertices[:0]
	m.indices = m.indices[:0]
}

// VertexCount returns the number of vertices currently in the mesh
func (m *Mesh) VertexCount() int {
	return len(m.vertices)
}

// TriangleCount returns the number of triangles currently in the mesh
func (m *Mesh) TriangleCount() int {
	return len(m.indices) / 3
}

// Bounds returns the model-space AABB of the mesh. An empty mesh
// reports a zero rectangle.
func (m *Mesh) Bounds() (minX, minY, maxX, maxY float64) {
	if len(m.vertices) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, v := range m.vertices {
		minX = math.Min(minX, float64(v.DstX))
		minY = math.Min(minY, float64(v.DstY))
		maxX = math.Max(maxX, float64(v.DstX))
		maxY = math.Max(maxY, float64(v.DstY))
	}
	return minX, minY, maxX, maxY
}

// ensure reports whether n more vertices fit in the buffer
func (m *Mesh) ensure(n int) error {
	if len(m.vertices)+n > MaxVertices {
		return eris.Wrapf(ErrMeshFull, "adding %d vertices to %d", n, len(m.vertices))
	}
	return nil
}

// vertex appends one vertex sampling the white pixel
func (m *Mesh) vertex(x, y float64, r, g, b, a float32) {
	m.vertices = append(m.vertices, ebiten.Vertex{
		DstX:   float32(x),
		DstY:   float32(y),
		SrcX:   1,
		SrcY:   1,
		ColorR: r,
		ColorG: g,
		ColorB: b,
		ColorA: a,
	})
}

// premultiplied converts a color to premultiplied float32 channels
func premultiplied(c color.Color) (r, g, b, a float32) {
	cr, cg, cb, ca := c.RGBA()
	return float32(cr) / 0xffff, float32(cg) / 0xffff, float32(cb) / 0xffff, float32(ca) / 0xffff
}
