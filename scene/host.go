// SPDX-License-Identifier: Unlicense OR MIT

package scene

import "sceneui.org/f32"

// Host is the rendering collaborator a surface commits its tree to.
// Implementations are expected to walk the tree synchronously during
// Commit; the tree must not be retained past the call.
type Host interface {
	// Commit installs the tree rooted at root as the active one.
	Commit(root *Group) error
	// Bounds reports the surface dimensions.
	Bounds() f32.Point
}

// CommitError reports a render host rejecting a committed tree. It is
// fatal to the component that performed the write; there is no retry.
type CommitError struct {
	Err error
}

func (e *CommitError) Error() string {
	return "scene: render commit rejected: " + e.Err.Error()
}

func (e *CommitError) Unwrap() error {
	return e.Err
}
