package style

import (
	"strings"

	"github.com/matzehuels/modchart/pkg/config"
)

// LabelNear computes the container label.near token.
//
// Without a location the token is the position name. With a location, the
// center-left and center-right positions are flipped to left-center and
// right-center, and border or outside locations add a "<location>-" prefix:
//
//	center-left, border  -> border-left-center
//	top-left, inside     -> top-left
//	bottom-right, (none) -> bottom-right
//
// It returns "" when no position is set.
func LabelNear(pos *config.Position, loc *config.Location) string {
	if pos == nil {
		return ""
	}
	name := string(*pos)
	if loc == nil {
		return name
	}
	if *pos == config.PositionCenterLeft || *pos == config.PositionCenterRight {
		first, second, _ := strings.Cut(name, "-")
		name = second + "-" + first
	}
	switch *loc {
	case config.LocationInside:
		return name
	default:
		return string(*loc) + "-" + name
	}
}
