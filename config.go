package quads

const (
	// DefaultMaxNodeItems is the leaf capacity used by DefaultConfig.
	DefaultMaxNodeItems = 10
	// DefaultMaxDepth is the subdivision limit used by DefaultConfig.
	DefaultMaxDepth = 5
)

// Bounds extracts the edge coordinates of an item.
//
// Implementations must be stateless and side-effect-free; the tree calls
// them on every insertion and on bounds-derived queries. Top returns the
// smaller Y value (Y grows downward). A zero-size struct type makes a
// good implementation.
type Bounds[T any] interface {
	Left(item T) float64
	Top(item T) float64
	Right(item T) float64
	Bottom(item T) float64
}

// Config configures a quadrant tree.
//
// MaxNodeItems and MaxDepth are taken literally, including zero: a tree
// with MaxNodeItems=0 subdivides on the first insertion into any leaf,
// and a tree with MaxDepth=0 never subdivides at all. Use DefaultConfig
// for the standard tuning. Both values are copied into the tree at
// construction and never change afterwards.
type Config[T any] struct {
	// Bounds extracts item edges. Required.
	Bounds Bounds[T]
	// MaxNodeItems is the item count a leaf may hold before it splits.
	MaxNodeItems int
	// MaxDepth is the maximum subdivision depth; the root has depth 0.
	MaxDepth int
}

// DefaultConfig returns a configuration with the standard tuning values.
func DefaultConfig[T any](b Bounds[T]) Config[T] {
	return Config[T]{
		Bounds:       b,
		MaxNodeItems: DefaultMaxNodeItems,
		MaxDepth:     DefaultMaxDepth,
	}
}

func (cfg Config[T]) validate() error {
	if cfg.Bounds == nil {
		return ErrNoBounds
	}
	return nil
}
