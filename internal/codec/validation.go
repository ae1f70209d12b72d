package codec

import (
	"fmt"
)

// validatePayload checks the table invariants the assembler relies on.
// Offsets read from the wire are untrusted; after this passes every index the
// assembler computes is in range.
func validatePayload(p *Payload) error {
	if len(p.Shapes) == 0 {
		return &ErrMalformedPayload{Reason: "no shapes"}
	}

	prev := int32(0)
	for i, f := range p.Figures {
		if f.Attribute > FigureCompositeCurve {
			return &ErrMalformedPayload{
				Reason: fmt.Sprintf("figure %d: unknown attribute %d", i, f.Attribute),
			}
		}
		if f.PointOffset < 0 || int(f.PointOffset) > len(p.Coordinates) {
			return &ErrMalformedPayload{
				Reason: fmt.Sprintf("figure %d: point offset %d outside [0, %d]", i, f.PointOffset, len(p.Coordinates)),
			}
		}
		if f.PointOffset < prev {
			return &ErrMalformedPayload{
				Reason: fmt.Sprintf("figure %d: point offset %d before previous figure's %d", i, f.PointOffset, prev),
			}
		}
		prev = f.PointOffset
	}

	if p.Shapes[0].ParentOffset != -1 {
		return &ErrMalformedPayload{
			Reason: fmt.Sprintf("shape 0 has parent %d, want -1", p.Shapes[0].ParentOffset),
		}
	}

	lastFigure := int32(-1)
	for i, s := range p.Shapes {
		if i > 0 && (s.ParentOffset < 0 || int(s.ParentOffset) >= i) {
			return &ErrMalformedPayload{
				Reason: fmt.Sprintf("shape %d: parent offset %d must refer to an earlier shape", i, s.ParentOffset),
			}
		}
		if s.FigureOffset < -1 || int(s.FigureOffset) >= len(p.Figures) {
			return &ErrMalformedPayload{
				Reason: fmt.Sprintf("shape %d: figure offset %d outside [-1, %d)", i, s.FigureOffset, len(p.Figures)),
			}
		}
		if s.FigureOffset >= 0 {
			if s.FigureOffset < lastFigure {
				return &ErrMalformedPayload{
					Reason: fmt.Sprintf("shape %d: figure offset %d before previous shape's %d", i, s.FigureOffset, lastFigure),
				}
			}
			lastFigure = s.FigureOffset
		}
	}

	return nil
}
