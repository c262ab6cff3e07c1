// Package view is a small retained component tree for the terminal UI.
//
// Components are mounted into Containers with Render, detached with Remove and
// swapped in place with Replace. Mount order is display order.
package view

import (
	"errors"
	"reflect"
	"slices"

	"github.com/charmbracelet/lipgloss"
)

var (
	ErrNotMounted = errors.New("component is not mounted")
	ErrNoParent   = errors.New("container has no parent")
	ErrNilTarget  = errors.New("nil component or container")
)

type Position int

const (
	// BeforeEnd appends as the container's last child. It is the default.
	BeforeEnd Position = iota
	AfterBegin
	// BeforeBegin and AfterEnd place the component next to the container, inside
	// the container's own parent.
	BeforeBegin
	AfterEnd
)

// Node carries mount bookkeeping. Embed it in every component.
type Node struct {
	parent *Container
}

func (n *Node) node() *Node { return n }

func (n *Node) Mounted() bool { return n.parent != nil }

func (n *Node) Parent() *Container { return n.parent }

type Component interface {
	View() string
	node() *Node
}

type Container struct {
	Node

	style    lipgloss.Style
	children []Component
}

func NewContainer(style lipgloss.Style) *Container {
	return &Container{style: style}
}

func (c *Container) View() string {
	if len(c.children) == 0 {
		return ""
	}
	parts := make([]string, 0, len(c.children))
	for _, ch := range c.children {
		parts = append(parts, ch.View())
	}
	return c.style.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (c *Container) Len() int { return len(c.children) }

// Children returns the mounted children in display order.
func (c *Container) Children() []Component {
	return slices.Clone(c.children)
}

// Index returns the position of child in c, or -1.
func (c *Container) Index(child Component) int {
	for i, ch := range c.children {
		if ch == child {
			return i
		}
	}
	return -1
}

func (c *Container) insert(i int, child Component) {
	c.children = slices.Insert(c.children, i, child)
	child.node().parent = c
}

func (c *Container) detach(child Component) {
	i := c.Index(child)
	if i < 0 {
		return
	}
	c.children = slices.Delete(c.children, i, i+1)
	child.node().parent = nil
}

// Render mounts c relative to into. A component that is already mounted is
// moved to its new place.
func Render(c Component, into *Container, pos ...Position) error {
	if isNil(c) || into == nil {
		return ErrNilTarget
	}
	p := BeforeEnd
	if len(pos) > 0 {
		p = pos[0]
	}

	switch p {
	case AfterBegin:
		Remove(c)
		into.insert(0, c)
	case BeforeBegin, AfterEnd:
		parent := into.parent
		if parent == nil {
			return ErrNoParent
		}
		Remove(c)
		i := parent.Index(into)
		if p == AfterEnd {
			i++
		}
		parent.insert(i, c)
	default:
		Remove(c)
		into.insert(len(into.children), c)
	}
	return nil
}

// Remove detaches c from its parent. Unmounted or nil components are ignored.
func Remove(c Component) {
	if isNil(c) {
		return
	}
	if parent := c.node().parent; parent != nil {
		parent.detach(c)
	}
}

// Replace puts newC where oldC is mounted and detaches oldC.
func Replace(newC, oldC Component) error {
	if isNil(newC) || isNil(oldC) {
		return ErrNilTarget
	}
	parent := oldC.node().parent
	if parent == nil {
		return ErrNotMounted
	}
	if newC == oldC {
		return nil
	}
	Remove(newC)
	i := parent.Index(oldC)
	parent.children[i] = newC
	newC.node().parent = parent
	oldC.node().parent = nil
	return nil
}

func isNil(c Component) bool {
	if c == nil {
		return true
	}
	v := reflect.ValueOf(c)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
