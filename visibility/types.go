package visibility

import (
	"errors"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/delve/tilegrid"
)

// ErrNilTiles is returned when New receives a nil tile reader.
var ErrNilTiles = errors.New("visibility: tiles are nil")

// Option configures a Visibility.
type Option func(*Options)

// Options holds the sight-blocking predicate.
type Options struct {
	// Blocking reports whether a tile code obstructs sight.
	Blocking func(code int) bool
}

// DefaultOptions returns Options where every code except 0 blocks sight.
func DefaultOptions() Options {
	return Options{Blocking: func(code int) bool { return code != 0 }}
}

// WithBlocking makes exactly the given codes block sight.
func WithBlocking(codes ...int) Option {
	return func(o *Options) {
		o.Blocking = tilegrid.OneOf(codes...)
	}
}

// WithBlockingFunc installs a custom sight-blocking predicate.
func WithBlockingFunc(fn func(code int) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.Blocking = fn
		}
	}
}

// Report bundles one field-of-view computation.
type Report struct {
	Visible   mapset.Set[tilegrid.Point]
	Count     int
	BlockedBy []tilegrid.Point // visible blocking cells, row-major
	Origin    tilegrid.Point
	Radius    int
}
