package inline

// Context carries the flags and recursion-entry state threaded through the
// inline parser (spec.md §4.5: "context flags {logic_only, keep_whitespaces,
// allow_implicits}").
type Context struct {
	LogicOnly       bool
	KeepWhitespaces bool
	AllowImplicits  bool

	// Depth guards against pathological nesting the same way the scoped
	// iterator's soft scope-depth limit does (spec.md §5).
	Depth int
}

const maxRecursionDepth = 128

// DefaultContext returns the context used at the top of a paragraph/heading.
func DefaultContext() *Context {
	return &Context{AllowImplicits: true}
}

func (c *Context) child() *Context {
	cp := *c
	cp.Depth++
	return &cp
}
