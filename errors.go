package polyui

import "fmt"

// Structural errors indicate programmer misuse of the tree-mutation API.
// They are always returned to the caller, never swallowed: continuing after
// one would leave the tree inconsistent. Every message carries the full
// ancestor path of the offending node so nested layout bugs can be located
// without a debugger.

// DuplicateChildError is returned by AddChild when the child is already in
// the parent's children, or is still owned by a different parent.
type DuplicateChildError struct {
	Parent *Component
	Child  *Component
	Owner  *Component // current owner when it differs from Parent
}

func (e *DuplicateChildError) Error() string {
	if e.Owner != nil && e.Owner != e.Parent {
		return fmt.Sprintf("polyui: cannot add %s to %s: still owned by %s",
			e.Child.TreePath(), e.Parent.TreePath(), e.Owner.TreePath())
	}
	return fmt.Sprintf("polyui: %s already a child of %s",
		e.Child.TreePath(), e.Parent.TreePath())
}

// NotFoundError is returned when a component passed to RemoveChild or
// Replace is not actually a child of the receiver.
type NotFoundError struct {
	Parent *Component
	Child  *Component
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("polyui: %s is not a child of %s",
		e.Child.TreePath(), e.Parent.TreePath())
}

// NoParentError is returned by Remove when called on a root component.
type NoParentError struct {
	Node *Component
}

func (e *NoParentError) Error() string {
	return fmt.Sprintf("polyui: %s has no parent", e.Node.TreePath())
}

// IndexOutOfRangeError is returned by RemoveChildAt for an invalid index.
type IndexOutOfRangeError struct {
	Parent *Component
	Index  int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("polyui: child index %d out of range for %s (%d children)",
		e.Index, e.Parent.TreePath(), len(e.Parent.children))
}

// UnresolvedSizeError is returned by the positioner when a component has no
// explicit size, no way to size itself, and no children to infer a size
// from. It surfaces at Setup/Position time rather than at render time.
type UnresolvedSizeError struct {
	Node *Component
}

func (e *UnresolvedSizeError) Error() string {
	return fmt.Sprintf("polyui: cannot resolve size of %s: no explicit size, no sizer and no children",
		e.Node.TreePath())
}
