package gen

// Noise is a seeded 2-D simplex noise source with output in [-1, 1].
type Noise struct {
	perm [512]uint8
}

var grad2 = [8][2]float64{
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
}

// NewNoise builds the permutation table from seed with an LCG-driven
// Fisher-Yates shuffle.
func NewNoise(seed int64) *Noise {
	var p [256]uint8
	for i := range p {
		p[i] = uint8(i)
	}
	s := uint64(seed)
	for i := 255; i > 0; i-- {
		s = s*6364136223846793005 + 1442695040888963407
		j := int((s >> 33) % uint64(i+1))
		p[i], p[j] = p[j], p[i]
	}
	n := &Noise{}
	for i := range n.perm {
		n.perm[i] = p[i&255]
	}
	return n
}

// At returns the noise value at (x, y).
func (n *Noise) At(x, y float64) float64 {
	const (
		f2 = 0.36602540378443864676 // (sqrt(3) - 1) / 2
		g2 = 0.21132486540518711775 // (3 - sqrt(3)) / 6
	)

	s := (x + y) * f2
	i := floor(x + s)
	j := floor(y + s)
	t := float64(i+j) * g2

	// Offsets of the three simplex corners.
	x0, y0 := x-(float64(i)-t), y-(float64(j)-t)
	i1, j1 := 0, 1
	if x0 > y0 {
		i1, j1 = 1, 0
	}
	x1, y1 := x0-float64(i1)+g2, y0-float64(j1)+g2
	x2, y2 := x0-1+2*g2, y0-1+2*g2

	ii, jj := i&255, j&255
	return 70 * (n.corner(ii, jj, x0, y0) +
		n.corner(ii+i1, jj+j1, x1, y1) +
		n.corner(ii+1, jj+1, x2, y2))
}

// Octaves sums octaves of noise with halving amplitude scaled by
// persistence, normalised back to about [-1, 1].
func (n *Noise) Octaves(x, y float64, octaves int, persistence float64) float64 {
	var total, norm float64
	amp, freq := 1.0, 1.0
	for range octaves {
		total += n.At(x*freq, y*freq) * amp
		norm += amp
		amp *= persistence
		freq *= 2
	}
	if norm == 0 {
		return 0
	}
	return total / norm
}

func (n *Noise) corner(i, j int, x, y float64) float64 {
	t := 0.5 - x*x - y*y
	if t < 0 {
		return 0
	}
	g := grad2[n.perm[i+int(n.perm[j])]&7]
	t *= t
	return t * t * (g[0]*x + g[1]*y)
}

func floor(x float64) int {
	xi := int(x)
	if x < float64(xi) {
		return xi - 1
	}
	return xi
}
