// Package ui contains widgets: actors that size their content during a
// layout pass and ask their parents to lay out again when their preferred
// size changes.
package ui

import (
	"vincit.fi/scene-widgets/api"
	"vincit.fi/scene-widgets/common/logger"
	"vincit.fi/scene-widgets/scene"
)

// Widget is embedded by concrete widgets, which pass themselves to
// initWidget so that Validate and Pack reach their Layout and sizes.
type Widget struct {
	scene.Actor

	self        api.Layout
	needsLayout bool
}

func (s *Widget) initWidget(self api.Layout) {
	scene.InitActor(&s.Actor)
	s.self = self
	s.needsLayout = true
}

func (s *Widget) NeedsLayout() bool {
	return s.needsLayout
}

// Invalidate marks the widget for layout on the next Validate.
func (s *Widget) Invalidate() {
	s.needsLayout = true
}

// InvalidateHierarchy invalidates the widget and every ancestor that lays
// out its children.
func (s *Widget) InvalidateHierarchy() {
	s.Invalidate()
	if parent, ok := s.Parent().(api.Layout); ok {
		parent.InvalidateHierarchy()
	}
}

// Validate runs the layout pass if the widget was invalidated.
func (s *Widget) Validate() {
	if !s.needsLayout {
		return
	}
	s.needsLayout = false
	logger.Trace.Printf("Layout %s", &s.Actor)
	s.self.Layout()
}

// Pack sizes the widget to its preferred size and lays it out.
func (s *Widget) Pack() {
	s.SetSize(s.self.PrefWidth(), s.self.PrefHeight())
	s.Validate()
}

func (s *Widget) SetSize(width float32, height float32) {
	if width == s.Width() && height == s.Height() {
		return
	}
	s.Actor.SetSize(width, height)
	s.Invalidate()
}

func (s *Widget) SetBounds(x float32, y float32, width float32, height float32) {
	s.SetPosition(x, y)
	s.SetSize(width, height)
}

func (s *Widget) Layout() {
}

func (s *Widget) MinWidth() float32 {
	return s.self.PrefWidth()
}

func (s *Widget) MinHeight() float32 {
	return s.self.PrefHeight()
}

func (s *Widget) PrefWidth() float32 {
	return 0
}

func (s *Widget) PrefHeight() float32 {
	return 0
}
