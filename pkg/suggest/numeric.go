package suggest

import (
	"github.com/leapstack-labs/tokenguard/pkg/classify"
	"github.com/leapstack-labs/tokenguard/pkg/scale"
	"github.com/leapstack-labs/tokenguard/pkg/vocab"
)

func (r Resolver) sizing(base string) []string {
	prefix, value, ok := classify.SplitSizing(base)
	if !ok {
		return nil
	}
	v := scale.ParseValue(value)
	if v.Kind != scale.KindNumber {
		return nil
	}
	var out []string
	for _, m := range vocab.SizingSteps.Nearest(v.Number, r.SizingMaxDistance) {
		out = append(out, prefix+"-"+vocab.SizingToken+"-"+m.Step.Name)
	}
	return out
}

func (r Resolver) spacing(base string) []string {
	parts, ok := classify.SplitSpacing(base)
	if !ok {
		return nil
	}
	// arbitrary values have no unit conversion
	v := scale.ParseValue(parts.Value)
	if v.Kind != scale.KindNumber {
		return nil
	}
	var out []string
	for _, m := range vocab.SpacingSteps.Nearest(v.Number, r.SpacingMaxDistance) {
		out = append(out, parts.Utility()+"-"+vocab.SpacingToken+"-"+m.Step.Name)
	}
	return out
}
