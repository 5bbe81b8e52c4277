package suggest

import (
	"github.com/leapstack-labs/tokenguard/pkg/classify"
	"github.com/leapstack-labs/tokenguard/pkg/vocab"
)

func shadow(base string) []string {
	reps, _ := vocab.ShadowTable.Find(base)
	return reps
}

func radius(base string) []string {
	parts, ok := classify.SplitRadius(base)
	if !ok {
		return nil
	}
	sizes, ok := vocab.RadiusTable.Find(parts.Size)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(sizes))
	for _, size := range sizes {
		out = append(out, parts.With(size))
	}
	return out
}
