package problemgen

// Difficulty levels. Any level outside [MinLevel, MaxLevel] selects the
// kind's fallback band instead of failing.
const (
	MinLevel = 1
	MaxLevel = 5
)

// bands is a per-level parameter table with a fallback for out-of-range
// levels. The fallback sits between level 2 and level 3.
type bands[T any] struct {
	levels   [MaxLevel]T
	fallback T
}

func (b bands[T]) at(level int) T {
	if level < MinLevel || level > MaxLevel {
		return b.fallback
	}
	return b.levels[level-1]
}

// ValidLevel reports whether level is within [MinLevel, MaxLevel].
func ValidLevel(level int) bool {
	return level >= MinLevel && level <= MaxLevel
}

// ClampLevel forces level into [MinLevel, MaxLevel].
func ClampLevel(level int) int {
	return max(MinLevel, min(MaxLevel, level))
}

// rangeBand draws operands from [Min, Max].
type rangeBand struct {
	Min, Max int
}
