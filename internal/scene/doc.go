// Package scene implements the editable scene graph: a tree of nodes, each
// carrying named attributes and a list of components.
//
// Every node and component is registered with its owning Scene under a stable
// numeric ID. The IDs survive serialization, which is what allows the undo
// engine to refer to objects without holding them alive: a snapshot taken
// before a structural change can be restored later and the restored objects
// keep their original IDs.
//
// Mutation callbacks (node/component added and removed, attribute changed)
// fire synchronously on the caller's goroutine. Removal callbacks fire before
// the object is detached so observers can still capture its parent and
// sibling position. Reparenting fires no add/remove callbacks.
package scene
