package overrides

import (
	"sync"

	"github.com/vperelygin/go-conf-sync/models"
)

// Source is the process-scoped holder of the override tree. It is
// constructed once at startup with the raw inputs and parses them lazily on
// first use; concurrent first calls serialize on the once guard so the
// inputs are never parsed twice.
//
// The returned tree is shared and must be treated as read-only by callers.
type Source struct {
	args    []string
	environ []string

	parse func([]string, []string) models.Tree

	once sync.Once
	tree models.Tree
}

// NewSource creates a Source over the given process arguments (without the
// program name) and environment entries (os.Environ form).
func NewSource(args, environ []string) *Source {
	return &Source{
		args:    args,
		environ: environ,
		parse:   Parse,
	}
}

// Tree returns the override tree, parsing the inputs exactly once.
func (s *Source) Tree() models.Tree {
	s.once.Do(func() {
		s.tree = s.parse(s.args, s.environ)
	})
	return s.tree
}
