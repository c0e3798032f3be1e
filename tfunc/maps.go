package tfunc

import (
	"github.com/imdario/mergo"
)

type _map = map[string]interface{}

// mergeMap returns a copy of dstMap with the keys it is missing filled in
// from srcMap.
func mergeMap(dstMap _map, srcMap _map, args ...func(*mergo.Config)) (_map, error) {
	out := make(_map, len(dstMap))
	for k, v := range dstMap {
		out[k] = v
	}
	if err := mergo.Map(&out, srcMap, args...); err != nil {
		return nil, err
	}
	return out, nil
}

// mergeMapWithOverride is mergeMap with srcMap values winning over dstMap.
func mergeMapWithOverride(dstMap _map, srcMap _map) (_map, error) {
	return mergeMap(dstMap, srcMap, mergo.WithOverride)
}
