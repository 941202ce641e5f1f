package mount

import "strings"

// Builder builds the ordered list of mount specs
type Builder struct {
	Mounts []Spec
}

// NewBuilder creates new mount builder instance
func NewBuilder() *Builder {
	return &Builder{}
}

// WithBind adds a bind mount of path from the alternate root
func (b *Builder) WithBind(path string, optional bool) *Builder {
	b.Mounts = append(b.Mounts, Spec{
		Path:     path,
		Optional: optional,
	})
	return b
}

// WithBinds adds bind mounts for every path, keeping their order
func (b *Builder) WithBinds(paths []string, optional bool) *Builder {
	for _, p := range paths {
		b.WithBind(p, optional)
	}
	return b
}

func (b Builder) String() string {
	var sb strings.Builder
	sb.WriteString("Mounts: ")
	for i, m := range b.Mounts {
		sb.WriteString(m.String())
		if i != len(b.Mounts)-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}
