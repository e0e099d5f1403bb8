package tokens

// Merge deep-merges override into a copy of base and returns the copy.
//
// Keys present on only one side pass through. When both sides hold a mapping
// the merge recurses; in every other case the override value replaces the
// base value. Lists are leaves and are never concatenated. Neither input is
// modified.
func Merge(base, override *Map) *Map {
	out := base.Clone()
	if override == nil {
		return out
	}

	for _, key := range override.keys {
		ov := override.values[key]
		if ov == nil {
			continue
		}

		if bv, ok := out.values[key]; ok {
			bm, baseIsMap := bv.Map()
			om, overrideIsMap := ov.Map()
			if baseIsMap && overrideIsMap {
				out.Set(key, FromMap(Merge(bm, om)))
				continue
			}
		}

		out.Set(key, ov.Clone())
	}

	for _, key := range override.dups {
		out.markDuplicate(key)
	}

	return out
}
