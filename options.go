package tasktree

// StopFunc replaces the default stop behavior of a node. It receives the
// node being stopped and the deferLater hint. Implementations that only
// want to add self-cancellation should still call [Node.StopChildren] to
// keep the cascade going.
type StopFunc func(n *Node, deferLater bool)

// StoppedFunc replaces the default stopped predicate of a node. A concrete
// task type supplies one reflecting its real execution state.
type StoppedFunc func(n *Node) bool

// BacktraceFunc supplies backtrace lines for a node: up to length lines
// starting at frame offset from. It may return nil when no backtrace is
// available.
type BacktraceFunc func(from, length int) []string

type config struct {
	parent      *Node
	annotation  string
	transient   bool
	kind        string
	stopFn      StopFunc
	stoppedFn   StoppedFunc
	backtraceFn BacktraceFunc
}

// Option configures a [Node] at construction.
type Option func(*config)

func defaultConfig() config {
	return config{
		kind: "node",
	}
}

// WithParent attaches the new node under parent immediately, equivalent to
// constructing it standalone and calling [Node.SetParent]. Attachment
// happens after all other options are applied, so the parent's transient
// bookkeeping sees the final transient flag.
func WithParent(parent *Node) Option {
	return func(c *config) {
		c.parent = parent
	}
}

// WithAnnotation sets the initial diagnostic annotation.
func WithAnnotation(annotation string) Option {
	return func(c *config) {
		c.annotation = annotation
	}
}

// WithTransient marks the node transient: its parent may be considered
// finished while this node is still present. The flag is fixed for the
// node's lifetime.
func WithTransient() Option {
	return func(c *config) {
		c.transient = true
	}
}

// WithKind labels the node with the concrete task type's name, used in
// [Node.Description]. The default kind is "node".
// It panics if kind is empty.
func WithKind(kind string) Option {
	return func(c *config) {
		if kind == "" {
			panic("tasktree: kind must not be empty")
		}
		c.kind = kind
	}
}

// WithStop installs a custom stop hook invoked by [Node.Stop] instead of
// the default child cascade.
func WithStop(fn StopFunc) Option {
	return func(c *config) {
		c.stopFn = fn
	}
}

// WithStopped installs a custom stopped predicate used by [Node.Stopped].
func WithStopped(fn StoppedFunc) Option {
	return func(c *config) {
		c.stoppedFn = fn
	}
}

// WithBacktrace installs a backtrace supplier used by [Node.Backtrace],
// [Node.Description], and [Node.PrintHierarchy].
func WithBacktrace(fn BacktraceFunc) Option {
	return func(c *config) {
		c.backtraceFn = fn
	}
}
