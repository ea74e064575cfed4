// Package pointlocation accelerates point-location queries against a
// [dcel.Subdivision] with a randomized-incremental trapezoidal map: a search DAG of
// x-nodes, y-nodes, and trapezoid leaves, built once in [Build] and walked in
// expected O(log n) time per [Locator.Find] call, instead of the subdivision's own
// O(n) brute-force [dcel.Subdivision.Find].
package pointlocation

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/gopherplane/geom2d/dcel"
	"github.com/gopherplane/geom2d/geom2derrors"
	"github.com/gopherplane/geom2d/options"
	"github.com/gopherplane/geom2d/point"
)

// segment is a non-horizontal subdivision edge, oriented from its lexicographically
// smaller endpoint p to its larger endpoint q, with edge naming the half-edge whose
// Origin is p (so an exact on-segment query answers with the "lower-left-first"
// half-edge convention without any extra bookkeeping).
type segment struct {
	p, q point.Point
	edge dcel.EdgeID
}

func (s segment) yAt(x float64) float64 {
	if s.q.X() == s.p.X() {
		return s.p.Y()
	}
	t := (x - s.p.X()) / (s.q.X() - s.p.X())
	return s.p.Y() + t*(s.q.Y()-s.p.Y())
}

type nodeKind uint8

const (
	leafNode nodeKind = iota
	xNode
	yNode
)

// node is one entry of the search DAG. For an xNode, left/right hold the children
// for query points lexicographically before/at-or-after point. For a yNode, left is
// the branch above seg (smaller y), right is below.
type node struct {
	kind  nodeKind
	trap  int
	point point.Point
	seg   int
	left  int
	right int
}

// trapezoid is a leaf cell of the decomposition: the open region between two
// vertical lines at leftX and rightX, bounded above by topSeg and below by
// bottomSeg (either may be -1, meaning the enclosing bounding box edge instead of
// a real subdivision segment). leaf names the slot in the node arena that must
// currently be a leafNode naming this trapezoid; a trapezoid whose leaf has since
// been overwritten (because it was split by a later insertion) is dead and
// ignored.
type trapezoid struct {
	leftX, rightX     float64
	topSeg, bottomSeg int
	leaf              int
	face              dcel.FaceID
}

// Locator answers sublinear point-location queries against the [dcel.Subdivision]
// it was built from, via [Build].
type Locator struct {
	sub        *dcel.Subdivision
	segments   []segment
	trapezoids []trapezoid
	nodes      []node
	epsilon    float64
	bboxTop    float64
	bboxBottom float64
}

// Build constructs a Locator over sub's non-horizontal half-edges.
//
// Parameters:
//   - sub (*dcel.Subdivision): The subdivision to accelerate.
//   - seed (uint64): Seeds the deterministic RNG used to shuffle segment insertion
//     order, so results are reproducible for a given subdivision and seed.
//   - opts: A variadic slice of [options.GeometryOptionsFunc]. [options.WithEpsilon]
//     sets the tolerance [Locator.Find] uses for on-edge and on-vertex tests.
//
// Returns:
//   - *Locator: Ready to answer [Locator.Find] queries.
//
// Behavior:
//   - Builds the enclosing bounding box slightly larger than sub's vertex extent.
//   - Collects one segment per undirected, non-horizontal edge, oriented
//     lexicographically left-to-right.
//   - Shuffles the segment list with the seeded RNG, then inserts segments one at a
//     time: each insertion locates every trapezoid the new segment crosses and
//     replaces it with an x-node/y-node subtree splitting it into up to four
//     pieces (a left remainder if the segment's left endpoint lands inside the
//     trapezoid, a right remainder symmetrically, and the segment-bisected middle).
//     The replaced trapezoid's former leaf node is overwritten in place, so every
//     existing DAG reference to it automatically observes the new subtree without
//     needing parent pointers.
//   - Once every segment is inserted, every remaining leaf trapezoid's face is
//     resolved once via [dcel.Subdivision.Find] on an interior sample point and
//     cached, so [Locator.Find] never has to re-derive face membership from the
//     trapezoid decomposition's own (otherwise unrelated) above/below bookkeeping.
func Build(sub *dcel.Subdivision, seed uint64, opts ...options.GeometryOptionsFunc) *Locator {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{}, opts...)

	l := &Locator{
		sub:      sub,
		segments: collectSegments(sub),
		epsilon:  geoOpts.Epsilon,
	}

	minX, minY, maxX, maxY := boundingBox(sub)
	margin := math.Max(maxX-minX, maxY-minY)*0.1 + 1
	l.bboxTop = minY - margin
	l.bboxBottom = maxY + margin

	rootTrap := trapezoid{leftX: minX - margin, rightX: maxX + margin, topSeg: -1, bottomSeg: -1, leaf: 0}
	l.trapezoids = append(l.trapezoids, rootTrap)
	l.nodes = append(l.nodes, node{kind: leafNode, trap: 0})

	order := make([]int, len(l.segments))
	for i := range order {
		order[i] = i
	}
	rng := rand.New(rand.NewSource(int64(seed)))
	rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	for _, idx := range order {
		l.insertSegment(idx)
	}

	l.cacheFaces(opts...)

	return l
}

// collectSegments returns one segment per undirected, non-horizontal edge of sub.
func collectSegments(sub *dcel.Subdivision) []segment {
	var segs []segment
	for e := 0; e < sub.EdgeCount(); e += 2 {
		eid := dcel.EdgeID(e)
		a := sub.VertexAt(sub.Origin(eid)).Point
		b := sub.VertexAt(sub.Destination(eid)).Point
		if a.Y() == b.Y() {
			continue
		}

		p, q, canonical := a, b, eid
		if p.X() > q.X() || (p.X() == q.X() && p.Y() > q.Y()) {
			p, q = q, p
			canonical = eid.Twin()
		}
		segs = append(segs, segment{p: p, q: q, edge: canonical})
	}
	return segs
}

// boundingBox returns the coordinate extent of sub's vertices.
func boundingBox(sub *dcel.Subdivision) (minX, minY, maxX, maxY float64) {
	if sub.VertexCount() == 0 {
		return -1, -1, 1, 1
	}

	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for i := 0; i < sub.VertexCount(); i++ {
		p := sub.VertexAt(dcel.VertexID(i)).Point
		minX = math.Min(minX, p.X())
		minY = math.Min(minY, p.Y())
		maxX = math.Max(maxX, p.X())
		maxY = math.Max(maxY, p.Y())
	}
	return
}

func (l *Locator) newTrapezoidLeaf(leftX, rightX float64, topSeg, bottomSeg int) int {
	ti := len(l.trapezoids)
	ni := len(l.nodes)
	l.trapezoids = append(l.trapezoids, trapezoid{leftX: leftX, rightX: rightX, topSeg: topSeg, bottomSeg: bottomSeg, leaf: ni})
	l.nodes = append(l.nodes, node{kind: leafNode, trap: ti})
	return ni
}

func (l *Locator) newNode(n node) int {
	ni := len(l.nodes)
	l.nodes = append(l.nodes, n)
	return ni
}

func (l *Locator) topY(t trapezoid, x float64) float64 {
	if t.topSeg == -1 {
		return l.bboxTop
	}
	return l.segments[t.topSeg].yAt(x)
}

func (l *Locator) bottomY(t trapezoid, x float64) float64 {
	if t.bottomSeg == -1 {
		return l.bboxBottom
	}
	return l.segments[t.bottomSeg].yAt(x)
}

const epsX = 1e-9

// insertSegment splits every currently-live trapezoid the segment at
// l.segments[idx] passes through.
func (l *Locator) insertSegment(idx int) {
	seg := l.segments[idx]

	type crossing struct {
		trapIdx int
		lo, hi  float64
	}

	var crossed []crossing
	for ti, t := range l.trapezoids {
		if t.leaf == -1 || l.nodes[t.leaf].kind != leafNode {
			continue
		}
		lo := math.Max(t.leftX, seg.p.X())
		hi := math.Min(t.rightX, seg.q.X())
		if hi-lo <= epsX {
			continue
		}

		mx := (lo + hi) / 2
		my := seg.yAt(mx)
		if my > l.topY(t, mx)+l.epsilon && my < l.bottomY(t, mx)-l.epsilon {
			crossed = append(crossed, crossing{ti, lo, hi})
		}
	}

	sort.Slice(crossed, func(a, b int) bool { return crossed[a].lo < crossed[b].lo })

	for _, c := range crossed {
		l.splitTrapezoid(c.trapIdx, idx, c.lo, c.hi)
	}
}

// splitTrapezoid replaces the trapezoid at l.trapezoids[ti] with an x-node/y-node
// subtree reflecting segIdx's pass through it, over the overlap range [lo,hi].
func (l *Locator) splitTrapezoid(ti, segIdx int, lo, hi float64) {
	t := l.trapezoids[ti]
	seg := l.segments[segIdx]

	hasLeft := t.leftX < lo-epsX
	hasRight := hi < t.rightX-epsX

	upper := l.newTrapezoidLeaf(lo, hi, t.topSeg, segIdx)
	lower := l.newTrapezoidLeaf(lo, hi, segIdx, t.bottomSeg)
	result := l.newNode(node{kind: yNode, seg: segIdx, left: upper, right: lower})

	if hasRight {
		right := l.newTrapezoidLeaf(hi, t.rightX, t.topSeg, t.bottomSeg)
		result = l.newNode(node{kind: xNode, point: seg.q, left: result, right: right})
	}
	if hasLeft {
		left := l.newTrapezoidLeaf(t.leftX, lo, t.topSeg, t.bottomSeg)
		result = l.newNode(node{kind: xNode, point: seg.p, left: left, right: result})
	}

	l.nodes[t.leaf] = l.nodes[result]
	l.trapezoids[ti].leaf = -1
}

// cacheFaces resolves and stores the owning face of every live leaf trapezoid, via
// a single [dcel.Subdivision.Find] per trapezoid on an interior sample point.
func (l *Locator) cacheFaces(opts ...options.GeometryOptionsFunc) {
	for i := range l.trapezoids {
		t := &l.trapezoids[i]
		if t.leaf < 0 || t.leaf >= len(l.nodes) || l.nodes[t.leaf].kind != leafNode {
			continue
		}

		mx := (t.leftX + t.rightX) / 2
		my := (l.topY(*t, mx) + l.bottomY(*t, mx)) / 2
		elem := l.sub.Find(point.New(mx, my), opts...)
		t.face = elem.Face
	}
}

func lexLess(a, b point.Point) bool {
	if a.X() != b.X() {
		return a.X() < b.X()
	}
	return a.Y() < b.Y()
}

// sideOfSegment reports q's position relative to seg: -1 above (smaller y), 0 on
// the segment within epsilon, +1 below.
func sideOfSegment(seg segment, q point.Point, epsilon float64) int {
	if seg.q.X() != seg.p.X() {
		d := q.Y() - seg.yAt(q.X())
		if math.Abs(d) <= epsilon {
			return 0
		}
		if d < 0 {
			return -1
		}
		return 1
	}

	lo, hi := seg.p.Y(), seg.q.Y()
	if lo > hi {
		lo, hi = hi, lo
	}
	if q.X() == seg.p.X() && q.Y() >= lo-epsilon && q.Y() <= hi+epsilon {
		return 0
	}
	if q.Y() < (lo+hi)/2 {
		return -1
	}
	return 1
}

// Find locates q within the subdivision Locator was built from.
//
// Parameters:
//   - q (point.Point): The query point.
//   - opts: A variadic slice of [options.GeometryOptionsFunc]. [options.WithEpsilon]
//     overrides the tolerance Locator was built with for this call.
//
// Returns:
//   - dcel.SubdivisionElement: The same tagged Face/Edge/Vertex result
//     [dcel.Subdivision.Find] would give for q, computed via an expected O(log n)
//     descent of the trapezoidal map's search DAG instead of a brute scan.
//
// Behavior:
//   - Checks for an exact vertex match first, via the subdivision's own O(log n)
//     vertex index.
//   - Otherwise descends the DAG: at an x-node, routes by lexicographic comparison
//     against the node's point; at a y-node, routes by q's side of the node's
//     segment, returning that segment's edge immediately if q lies on it within
//     epsilon (the edge is always the half-edge whose origin is the
//     lexicographically smaller endpoint, per the "lower-left-first" convention).
//   - A leaf names a trapezoid whose owning face was resolved once at build time.
func (l *Locator) Find(q point.Point, opts ...options.GeometryOptionsFunc) dcel.SubdivisionElement {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{Epsilon: l.epsilon}, opts...)

	if v, ok := l.sub.FindVertex(q); ok {
		if l.sub.VertexAt(v).Point.Eq(q, opts...) {
			return dcel.SubdivisionElement{Kind: dcel.ElementVertex, Vertex: v}
		}
	}

	idx := 0
	for {
		n := l.nodes[idx]
		switch n.kind {
		case xNode:
			if lexLess(q, n.point) {
				idx = n.left
			} else {
				idx = n.right
			}
		case yNode:
			seg := l.segments[n.seg]
			switch sideOfSegment(seg, q, geoOpts.Epsilon) {
			case 0:
				return dcel.SubdivisionElement{Kind: dcel.ElementEdge, Edge: seg.edge}
			case -1:
				idx = n.left
			default:
				idx = n.right
			}
		default:
			return dcel.SubdivisionElement{Kind: dcel.ElementFace, Face: l.trapezoids[n.trap].face}
		}
	}
}

// Validate checks the structural invariants of Locator's search DAG and trapezoid
// arena, returning the first violation found, or nil if none.
func (l *Locator) Validate() error {
	for i, n := range l.nodes {
		switch n.kind {
		case xNode, yNode:
			if n.left < 0 || n.left >= len(l.nodes) || n.right < 0 || n.right >= len(l.nodes) {
				return geom2derrors.New(geom2derrors.TopologyViolation, "pointlocation.Validate",
					fmt.Sprintf("node %d has an out-of-range child", i))
			}
			if n.kind == yNode && (n.seg < 0 || n.seg >= len(l.segments)) {
				return geom2derrors.New(geom2derrors.TopologyViolation, "pointlocation.Validate",
					fmt.Sprintf("y-node %d references an invalid segment", i))
			}
		case leafNode:
			if n.trap < 0 || n.trap >= len(l.trapezoids) {
				return geom2derrors.New(geom2derrors.TopologyViolation, "pointlocation.Validate",
					fmt.Sprintf("leaf %d references an invalid trapezoid", i))
			}
			if t := l.trapezoids[n.trap]; t.leftX > t.rightX+epsX {
				return geom2derrors.New(geom2derrors.TopologyViolation, "pointlocation.Validate",
					fmt.Sprintf("trapezoid %d has inverted x-bounds", n.trap))
			}
		default:
			return geom2derrors.New(geom2derrors.TopologyViolation, "pointlocation.Validate",
				fmt.Sprintf("node %d has an unrecognized kind", i))
		}
	}
	return nil
}
