package planner

import (
	"strings"

	"github.com/tourism-route-service/internal/domain"
)

// SelectionMode - какую конечную точку назначает следующий клик
type SelectionMode string

const (
	ModeNone  SelectionMode = ""
	ModeStart SelectionMode = "start"
	ModeEnd   SelectionMode = "end"
)

// ParseSelectionMode принимает "", "none", "start", "end"
func ParseSelectionMode(s string) (SelectionMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return ModeNone, true
	case "start":
		return ModeStart, true
	case "end":
		return ModeEnd, true
	default:
		return ModeNone, false
	}
}

func (m SelectionMode) String() string {
	if m == ModeNone {
		return "none"
	}
	return string(m)
}

// SelectionController решает, в какой слот попадает новая координата.
// Режим сохраняется до явной смены.
type SelectionController struct {
	mode SelectionMode
}

func (c *SelectionController) SetMode(mode SelectionMode) {
	c.mode = mode
}

func (c *SelectionController) Mode() SelectionMode {
	return c.mode
}

// Resolve: явный режим, иначе сначала start, потом end, потом перезапись end
func (c *SelectionController) Resolve(draft *domain.RouteDraft) domain.PointRole {
	switch c.mode {
	case ModeStart:
		return domain.RoleStart
	case ModeEnd:
		return domain.RoleEnd
	}

	if draft.Start == nil {
		return domain.RoleStart
	}
	return domain.RoleEnd
}
