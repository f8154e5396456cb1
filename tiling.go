package penrose

import (
	"runtime"
	"sync"
)

// Decompose applies the substitution rule to one triangle.
//
// A small triangle splits into a small DCA and a large CDB triangle, with
// |BD| = |BA| / phi:
//
//	       B
//	       /\
//	      /  \
//	  D  *    \
//	    /      \
//	 A /________\ C
//
// A large triangle splits into large EDA and CEB triangles and a small DEB
// triangle, with |AD| = |AB| / phi and |AE| = |AC| / phi:
//
//	    A
//	    |\
//	    | * D
//	    |  \
//	  E *   \ B
//	    |   /
//	    |  /
//	    | /
//	    |/
//	    C
func Decompose(t Triangle) []Triangle {
	a, b, c := t.a, t.b, t.c
	switch t.kind {
	case Small:
		d := b.Plus(Div(a.Minus(b), PHI))
		return []Triangle{
			MustTriangle(d, c, a),
			MustTriangle(c, d, b),
		}
	default:
		d := a.Plus(Div(b.Minus(a), PHI))
		e := a.Plus(Div(c.Minus(a), PHI))
		return []Triangle{
			MustTriangle(e, d, a),
			MustTriangle(c, e, b),
			MustTriangle(d, e, b),
		}
	}
}

func decomposeAll(ts []Triangle) []Triangle {
	r := make([]Triangle, 0, 3*len(ts))
	for _, t := range ts {
		r = append(r, Decompose(t)...)
	}
	return r
}

// GenerateTiling decomposes every triangle of seed, generations times.  Zero
// generations returns a copy of seed.  Triangle count grows by roughly 2.6
// per generation, so anything past 12 or so needs a lot of memory.
func GenerateTiling(seed []Triangle, generations int) []Triangle {
	log := Logger()
	r := append([]Triangle{}, seed...)
	log.Debug("starting tiling", "triangles", len(r), "generations", generations)
	for i := 0; i < generations; i++ {
		r = decomposeAll(r)
		log.Debug("decomposed", "generation", i+1, "triangles", len(r))
	}
	return r
}

// GenerateTilingConcurrent is GenerateTiling with each generation split into
// contiguous chunks decomposed by up to workers goroutines.  Chunks are
// stitched back in order, so the result is identical to GenerateTiling.
// workers <= 0 means GOMAXPROCS.
func GenerateTilingConcurrent(seed []Triangle, generations, workers int) []Triangle {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	log := Logger()
	r := append([]Triangle{}, seed...)
	log.Debug("starting tiling", "triangles", len(r), "generations", generations, "workers", workers)
	for i := 0; i < generations; i++ {
		r = decomposeChunked(r, workers)
		log.Debug("decomposed", "generation", i+1, "triangles", len(r))
	}
	return r
}

func decomposeChunked(ts []Triangle, workers int) []Triangle {
	if len(ts) < 2*workers {
		return decomposeAll(ts)
	}
	size := (len(ts) + workers - 1) / workers
	chunks := make([][]Triangle, 0, workers)
	for lo := 0; lo < len(ts); lo += size {
		chunks = append(chunks, ts[lo:min(lo+size, len(ts))])
	}

	out := make([][]Triangle, len(chunks))
	var wg sync.WaitGroup
	for i, chunk := range chunks {
		wg.Add(1)
		go func(i int, chunk []Triangle) {
			defer wg.Done()
			out[i] = decomposeAll(chunk)
		}(i, chunk)
	}
	wg.Wait()

	total := 0
	for _, o := range out {
		total += len(o)
	}
	r := make([]Triangle, 0, total)
	for _, o := range out {
		r = append(r, o...)
	}
	return r
}

// Count predicts how many small and large triangles are left after
// decomposing small and large triangles for the given number of generations.
func Count(small, large, generations int) (int, int) {
	for i := 0; i < generations; i++ {
		small, large = small+large, small+2*large
	}
	return small, large
}

// CountKinds tallies triangles by kind.
func CountKinds(ts []Triangle) (small, large int) {
	for _, t := range ts {
		if t.kind == Small {
			small++
		} else {
			large++
		}
	}
	return small, large
}
