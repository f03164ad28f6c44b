package aggregates

import (
	pkgerrors "socialgraph/pkg/errors"
)

// Dimension selects the rendering mode requested from external renderers
type Dimension string

const (
	Dimension2D Dimension = "2d"
	Dimension3D Dimension = "3d"
)

// ParseDimension validates a dimension mode against the supported set
func ParseDimension(s string) (Dimension, error) {
	switch Dimension(s) {
	case Dimension2D:
		return Dimension2D, nil
	case Dimension3D:
		return Dimension3D, nil
	default:
		return "", pkgerrors.NewInvalidDimensionError(s)
	}
}

// ViewSettings contains display preferences handed to external renderers.
// The engine only validates them; layout and drawing happen elsewhere.
type ViewSettings struct {
	Dimension      Dimension
	ShowLabels     bool
	HighlightCount int
}

// NewViewSettings builds validated view settings
func NewViewSettings(dimension string, showLabels bool, highlightCount int) (ViewSettings, error) {
	dim, err := ParseDimension(dimension)
	if err != nil {
		return ViewSettings{}, err
	}
	if highlightCount < 0 {
		return ViewSettings{}, pkgerrors.NewValidationError("highlight count cannot be negative")
	}
	return ViewSettings{
		Dimension:      dim,
		ShowLabels:     showLabels,
		HighlightCount: highlightCount,
	}, nil
}
