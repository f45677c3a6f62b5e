package embedding

import (
	"context"
	"hash/fnv"
	"math"
	"regexp"
	"strings"
)

const defaultHashingDimension = 384

var wordRe = regexp.MustCompile(`[\p{L}\p{M}\p{N}_]+`)

// HashingEmbedder is a deterministic bag-of-words embedder that needs no
// model server. Lower-cased word tokens are hashed into buckets and the
// vector is L2-normalized. Text without any word token embeds as the zero
// vector, which is similar to nothing.
type HashingEmbedder struct {
	dimension int
}

func NewHashingEmbedder(dimension int) *HashingEmbedder {
	if dimension <= 0 {
		dimension = defaultHashingDimension
	}
	return &HashingEmbedder{dimension: dimension}
}

func (e *HashingEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	tokens := wordRe.FindAllString(strings.ToLower(text), -1)
	vec := make([]float32, e.dimension)
	if len(tokens) == 0 {
		return vec, nil
	}

	for _, token := range tokens {
		h := fnv.New32a()
		_, _ = h.Write([]byte(token))
		vec[h.Sum32()%uint32(e.dimension)]++
	}

	var norm float64
	for _, v := range vec {
		norm += float64(v * v)
	}
	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i] = float32(float64(vec[i]) / norm)
	}

	return vec, nil
}
