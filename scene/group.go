package scene

import (
	"vincit.fi/scene-widgets/api"
	"vincit.fi/scene-widgets/api/apitype"
)

// Group is an actor with children positioned relative to it. Group
// transforms are limited to translation when drawing.
type Group struct {
	Actor

	owner    Node
	children []Node
}

func NewGroup() *Group {
	group := &Group{}
	InitGroup(group, group)
	return group
}

// InitGroup prepares a Group embedded in owner. Children report owner as
// their parent, so owner receives hierarchy invalidation.
func InitGroup(group *Group, owner Node) {
	group.Actor.init()
	group.owner = owner
}

func (s *Group) AddActor(node Node) {
	actor := node.Base()
	if actor.parent != nil {
		if parent, ok := actor.parent.(interface{ RemoveActor(Node) bool }); ok {
			parent.RemoveActor(node)
		}
	}
	actor.parent = s.owner
	s.children = append(s.children, node)
	s.childrenChanged()
}

func (s *Group) RemoveActor(node Node) bool {
	for i, child := range s.children {
		if child == node {
			s.children = append(s.children[:i], s.children[i+1:]...)
			node.Base().parent = nil
			s.childrenChanged()
			return true
		}
	}
	return false
}

func (s *Group) Children() []Node {
	return s.children
}

func (s *Group) Clear() {
	for _, child := range s.children {
		child.Base().parent = nil
	}
	s.children = nil
	s.childrenChanged()
}

func (s *Group) childrenChanged() {
	if layout, ok := s.owner.(api.Layout); ok {
		layout.InvalidateHierarchy()
	}
}

func (s *Group) Draw(batch api.Batch, parentAlpha float32) {
	alpha := parentAlpha * s.Color().A
	translated := &translatedBatch{Batch: batch, offsetX: s.X(), offsetY: s.Y()}
	for _, child := range s.children {
		if !child.Base().IsVisible() {
			continue
		}
		child.Draw(translated, alpha)
	}
}

// Hit returns the top most touchable node under the point given in the
// group's local coordinates, the group itself if it has a size and
// contains the point, or nil.
func (s *Group) Hit(x float32, y float32) Node {
	if !s.IsVisible() {
		return nil
	}
	for i := len(s.children) - 1; i >= 0; i-- {
		child := s.children[i]
		actor := child.Base()
		if !actor.IsVisible() {
			continue
		}
		childX, childY := actor.ParentToLocal(x, y)
		if group, ok := child.(interface{ Hit(x, y float32) Node }); ok {
			if hit := group.Hit(childX, childY); hit != nil {
				return hit
			}
			continue
		}
		if actor.IsTouchable() && actor.Contains(childX, childY) {
			return child
		}
	}
	if s.IsTouchable() && s.Contains(x, y) {
		return s.owner
	}
	return nil
}

type translatedBatch struct {
	api.Batch
	offsetX float32
	offsetY float32
}

func (s *translatedBatch) Draw(region *apitype.TextureRegion, x, y, width, height float32) {
	s.Batch.Draw(region, x+s.offsetX, y+s.offsetY, width, height)
}

func (s *translatedBatch) DrawTransformed(region *apitype.TextureRegion, x, y, originX, originY, width, height, scaleX, scaleY, rotation float32) {
	s.Batch.DrawTransformed(region, x+s.offsetX, y+s.offsetY, originX, originY, width, height, scaleX, scaleY, rotation)
}
