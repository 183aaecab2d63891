package layout

// Option configures a Layout at construction. Options never mutate process
// state outside the Layout being built — the functional-options idiom used
// throughout this module (see tile.Option for the same pattern on Tile).
type Option func(*Layout)

// WithCheckDims enables the build-time bounds-check toggle on Size and
// IsPeriodic: out-of-range axis arguments return an OutOfRangeError instead
// of the default undefined behaviour. Off by default, since the check costs
// a branch on every access that most release builds don't want to pay for.
func WithCheckDims() Option {
	return func(l *Layout) { l.checkDims = true }
}
