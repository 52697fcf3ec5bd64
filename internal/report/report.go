// Package report renders the parameters and keyframes of an animation model
// as a text table for terminals.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ivlev/keyframes/internal/animation"
	"github.com/ivlev/keyframes/internal/registry"
)

// Surface is the read-only view of a model that a report needs.
type Surface interface {
	ParameterCount() int
	Parameter(i int) (registry.Parameter, bool)
	KeyframeCount(i int) int
	Keyframe(i, keyframeIndex int) (animation.KeyframeInfo, bool)
	GangedProperties(i int) []string
	ValueRange(i int) (lowest, highest float64, ok bool)
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	detailStyle = lipgloss.NewStyle().Faint(true)
	rowStyle    = lipgloss.NewStyle().PaddingLeft(2)
)

// Render lists every parameter followed by its keyframes
func Render(s Surface) string {
	if s.ParameterCount() == 0 {
		return detailStyle.Render("(no animatable parameters)")
	}

	var blocks []string
	for i := 0; i < s.ParameterCount(); i++ {
		blocks = append(blocks, renderParameter(s, i))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func renderParameter(s Surface, i int) string {
	p, _ := s.Parameter(i)
	kind := "scalar"
	if p.IsCurve {
		kind = "curve"
	}
	header := headerStyle.Render(fmt.Sprintf("[%d] %s", p.Index, p.Name))
	details := fmt.Sprintf("%s, %s, range [%g, %g]", p.PropertyName, kind, p.MinValue, p.MaxValue)
	if lo, hi, ok := s.ValueRange(i); ok {
		details += fmt.Sprintf(", keyed [%g, %g]", lo, hi)
	}
	if gang := s.GangedProperties(i); len(gang) > 0 {
		details += ", ganged with " + strings.Join(gang, " ")
	}
	lines := []string{header + " " + detailStyle.Render(details)}

	for k := 0; k < s.KeyframeCount(i); k++ {
		info, _ := s.Keyframe(i, k)
		prev := "-"
		if info.HasPrevious {
			prev = info.PreviousType.String()
		}
		lines = append(lines, rowStyle.Render(fmt.Sprintf(
			"#%-3d frame %-6d value %-10g %-20s prev %-20s frames [%d, %d] values [%g, %g]",
			k, info.Position, info.Value, info.Type, prev,
			info.MinFrame, info.MaxFrame, info.LowestValue, info.HighestValue)))
	}
	return strings.Join(lines, "\n")
}
