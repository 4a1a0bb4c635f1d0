// Package tasktree implements the task hierarchy used by a cooperative
// task scheduler: an intrusive tree of nodes that tracks parent/child
// relationships between logical tasks, cascades stop and terminate
// requests down the tree, and reclaims finished subtrees.
//
// # Building Trees
//
// Create nodes with [New], attaching them under a parent either at
// construction or later with [Node.SetParent]:
//
//	root := tasktree.New(tasktree.WithKind("reactor"))
//	worker := tasktree.New(
//	    tasktree.WithParent(root),
//	    tasktree.WithAnnotation("serving requests"),
//	)
//	monitor := tasktree.New(
//	    tasktree.WithParent(root),
//	    tasktree.WithTransient(),
//	)
//
// A transient node is excluded from its parent's finished determination:
// root above is [Node.Finished] once worker is gone, even while monitor
// remains.
//
// # Cascades and Reclamation
//
// [Node.Stop] cascades a stop request to every non-transient child;
// [Node.Terminate] shuts down the whole subtree unconditionally, transient
// children included. [Node.Consume] collapses a finished node out of the
// tree, dropping its finished children and promoting unfinished ones to
// the former parent, then recurses upward so a whole chain of finished
// ancestors collapses in one call.
//
// # Extension Points
//
// A concrete task type customizes a node through hooks installed at
// construction: [WithStop] to deliver real cancellation, [WithStopped] to
// reflect real execution state, and [WithBacktrace] (for example with
// [CapturedBacktrace]) to report where the task came from. The base node
// supplies the defaults, so the hierarchy is usable on its own.
//
// # Diagnostics
//
// [Node.Description] derives a stable one-line identifier from the node's
// kind, ID, transient flag, and annotation or backtrace.
// [Node.PrintHierarchy] writes an indented rendering of a subtree to any
// [io.Writer]. [Node.AnnotateDuring] temporarily relabels a node for the
// duration of a body of work and restores the previous annotation on every
// exit path.
//
// # Concurrency
//
// The hierarchy is single-threaded by design: it is mutated and traversed
// entirely within one logical execution context, the scheduler's own
// control flow, and uses no locks or atomics. What it does guarantee is
// re-entrancy: traversal tolerates the current node, or any not-yet-visited
// node, detaching itself as a side effect of the loop body, so nested
// Stop/Terminate/Consume calls during a walk of the same tree always
// observe consistent links. See [ChildList.Each].
package tasktree
