package lutfilter

// Sample returns the trilinearly interpolated cube color for a pixel whose
// red, green, and blue channel values are given in the [0, 255] range.
// The result is a normalized [0,1] RGBA color.
//
// Inputs that land exactly on a grid coordinate return the stored grid
// value with no interpolation error.
func (c *Cube) Sample(r, g, b float64) RGBA {
	sr, sg, sb, sa := c.sample(float32(r), float32(g), float32(b))
	return RGBA{R: float64(sr), G: float64(sg), B: float64(sb), A: float64(sa)}
}

// sample is the scalar trilinear kernel shared by Sample and the per-pixel
// transform loop. Channel inputs are in [0, 255].
//
// Interpolation runs along r, then g, then b, in that fixed order. The
// a*(1-t) + b*t form keeps weights of exactly 0 or 1 drift-free, so grid
// aligned inputs reproduce stored values bit for bit.
func (c *Cube) sample(r, g, b float32) (float32, float32, float32, float32) {
	n := c.dimension
	nm1 := float32(n - 1)

	// The division form keeps grid-aligned inputs exact: r*(N-1) is an
	// integer below 2^24, and when 255 divides it the quotient is too.
	rf := r * nm1 / 255.0
	gf := g * nm1 / 255.0
	bf := b * nm1 / 255.0

	r0, rd := splitCoord(rf, n)
	g0, gd := splitCoord(gf, n)
	b0, bd := splitCoord(bf, n)

	r1 := r0 + 1
	g1 := g0 + 1
	b1 := b0 + 1

	// 8 corners of the enclosing unit cube.
	c000r, c000g, c000b, c000a := c.at(r0, g0, b0)
	c100r, c100g, c100b, c100a := c.at(r1, g0, b0)
	c010r, c010g, c010b, c010a := c.at(r0, g1, b0)
	c110r, c110g, c110b, c110a := c.at(r1, g1, b0)
	c001r, c001g, c001b, c001a := c.at(r0, g0, b1)
	c101r, c101g, c101b, c101a := c.at(r1, g0, b1)
	c011r, c011g, c011b, c011a := c.at(r0, g1, b1)
	c111r, c111g, c111b, c111a := c.at(r1, g1, b1)

	// Along r.
	c00r, c00g, c00b, c00a := lerp4(c000r, c000g, c000b, c000a, c100r, c100g, c100b, c100a, rd)
	c10r, c10g, c10b, c10a := lerp4(c010r, c010g, c010b, c010a, c110r, c110g, c110b, c110a, rd)
	c01r, c01g, c01b, c01a := lerp4(c001r, c001g, c001b, c001a, c101r, c101g, c101b, c101a, rd)
	c11r, c11g, c11b, c11a := lerp4(c011r, c011g, c011b, c011a, c111r, c111g, c111b, c111a, rd)

	// Along g.
	c0r, c0g, c0b, c0a := lerp4(c00r, c00g, c00b, c00a, c10r, c10g, c10b, c10a, gd)
	c1r, c1g, c1b, c1a := lerp4(c01r, c01g, c01b, c01a, c11r, c11g, c11b, c11a, gd)

	// Along b.
	return lerp4(c0r, c0g, c0b, c0a, c1r, c1g, c1b, c1a, bd)
}

// splitCoord splits a continuous LUT coordinate into the lower grid index
// and the fractional remainder. The index is clamped to [0, N-2] so the
// upper corner always exists; a coordinate at the top edge yields a
// remainder of exactly 1.
func splitCoord(f float32, n int) (int, float32) {
	i := int(f)
	if i < 0 {
		i = 0
	}
	if i > n-2 {
		i = n - 2
	}
	return i, f - float32(i)
}

// lerp4 interpolates two RGBA corner values by t.
func lerp4(ar, ag, ab, aa, br, bg, bb, ba, t float32) (float32, float32, float32, float32) {
	inv := 1 - t
	return ar*inv + br*t,
		ag*inv + bg*t,
		ab*inv + bb*t,
		aa*inv + ba*t
}

// BlendIntensity mixes a sampled color with the original pixel color by
// intensity k in [0, 1]: k*sampled + (1-k)*original per color channel.
// The alpha channel always passes through from the original pixel.
// k=0 is an exact identity; k=1 is a pure LUT application.
func BlendIntensity(sampled, original RGBA, k float64) RGBA {
	inv := 1 - k
	return RGBA{
		R: sampled.R*k + original.R*inv,
		G: sampled.G*k + original.G*inv,
		B: sampled.B*k + original.B*inv,
		A: original.A,
	}
}
