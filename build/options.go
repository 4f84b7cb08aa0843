package build

import "github.com/npillmayer/exprtree"

// DefaultMaxDepth is the nesting depth up to which a builder descends into an
// expression graph, unless configured otherwise.
const DefaultMaxDepth = 1000

// Option configures a builder.
type Option func(b *Builder)

// WithIDSource lets a builder draw node IDs from ids, e.g. exprtree.GlobalIDs.
// The default is a fresh counter per builder.
func WithIDSource(ids exprtree.IDSource) Option {
	return func(b *Builder) {
		if ids != nil {
			b.ids = ids
		}
	}
}

// WithMaxDepth sets the maximum nesting depth of expression graphs. Values below
// 1 are ignored.
func WithMaxDepth(depth int) Option {
	return func(b *Builder) {
		if depth > 0 {
			b.maxDepth = depth
		}
	}
}

// WithAnonymizedVars lets a builder label variables with an alias instead of
// "var", i.e. "var0/Person" instead of "var/Person". Aliases are handed out per
// call to Build, in the order variables are declared or first referenced.
func WithAnonymizedVars() Option {
	return func(b *Builder) {
		b.anonymize = true
	}
}

// WithCanonicalOrder lets a builder sort the operands of commutative operators
// after building a tree (see package canon).
func WithCanonicalOrder() Option {
	return func(b *Builder) {
		b.canonical = true
	}
}
