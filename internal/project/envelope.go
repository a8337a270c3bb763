package project

import (
	"fmt"

	"github.com/nerrad567/buildsim/internal/building"
)

// envelopeRecord is the serialised form of an envelope variant, shared
// by the JSON database columns and the YAML project files. The element
// count discriminates the variant; area fields beyond the variant's
// definition are ignored on decode.
type envelopeRecord struct {
	Elements        int     `json:"elements" yaml:"elements"`
	AreaOuterWall   float64 `json:"area_ow" yaml:"area_ow"`
	AreaInnerWall   float64 `json:"area_iw,omitempty" yaml:"area_iw"`
	AreaGroundFloor float64 `json:"area_gf,omitempty" yaml:"area_gf"`
	AreaRooftop     float64 `json:"area_rt,omitempty" yaml:"area_rt"`
	AreaWindow      float64 `json:"area_win" yaml:"area_win"`

	// Lumped RC parameters, two-element variant only.
	R1InnerWall    float64 `json:"r1_iw,omitempty" yaml:"r1_iw"`
	C1InnerWall    float64 `json:"c1_iw,omitempty" yaml:"c1_iw"`
	R1OuterWall    float64 `json:"r1_ow,omitempty" yaml:"r1_ow"`
	RRestOuterWall float64 `json:"r_rest_ow,omitempty" yaml:"r_rest_ow"`
	C1OuterWall    float64 `json:"c1_ow,omitempty" yaml:"c1_ow"`
}

// encodeEnvelope converts a domain envelope into its serialised form.
func encodeEnvelope(env building.Envelope) envelopeRecord {
	switch e := env.(type) {
	case building.OneElement:
		return envelopeRecord{
			Elements:      1,
			AreaOuterWall: e.AreaOuterWall,
			AreaWindow:    e.AreaWindow,
		}
	case building.TwoElement:
		return envelopeRecord{
			Elements:       2,
			AreaOuterWall:  e.AreaOuterWall,
			AreaInnerWall:  e.AreaInnerWall,
			AreaWindow:     e.AreaWindow,
			R1InnerWall:    e.R1InnerWall,
			C1InnerWall:    e.C1InnerWall,
			R1OuterWall:    e.R1OuterWall,
			RRestOuterWall: e.RRestOuterWall,
			C1OuterWall:    e.C1OuterWall,
		}
	case building.ThreeElement:
		return envelopeRecord{
			Elements:        3,
			AreaOuterWall:   e.AreaOuterWall,
			AreaInnerWall:   e.AreaInnerWall,
			AreaGroundFloor: e.AreaGroundFloor,
			AreaWindow:      e.AreaWindow,
		}
	case building.FourElement:
		return envelopeRecord{
			Elements:        4,
			AreaOuterWall:   e.AreaOuterWall,
			AreaInnerWall:   e.AreaInnerWall,
			AreaGroundFloor: e.AreaGroundFloor,
			AreaRooftop:     e.AreaRooftop,
			AreaWindow:      e.AreaWindow,
		}
	}
	// The Envelope interface is sealed; this is unreachable.
	return envelopeRecord{}
}

// decode converts the serialised form back into the proper variant.
func (r envelopeRecord) decode() (building.Envelope, error) {
	switch r.Elements {
	case 1:
		return building.OneElement{
			AreaOuterWall: r.AreaOuterWall,
			AreaWindow:    r.AreaWindow,
		}, nil
	case 2:
		return building.TwoElement{
			AreaOuterWall:  r.AreaOuterWall,
			AreaInnerWall:  r.AreaInnerWall,
			AreaWindow:     r.AreaWindow,
			R1InnerWall:    r.R1InnerWall,
			C1InnerWall:    r.C1InnerWall,
			R1OuterWall:    r.R1OuterWall,
			RRestOuterWall: r.RRestOuterWall,
			C1OuterWall:    r.C1OuterWall,
		}, nil
	case 3:
		return building.ThreeElement{
			AreaOuterWall:   r.AreaOuterWall,
			AreaInnerWall:   r.AreaInnerWall,
			AreaGroundFloor: r.AreaGroundFloor,
			AreaWindow:      r.AreaWindow,
		}, nil
	case 4:
		return building.FourElement{
			AreaOuterWall:   r.AreaOuterWall,
			AreaInnerWall:   r.AreaInnerWall,
			AreaGroundFloor: r.AreaGroundFloor,
			AreaRooftop:     r.AreaRooftop,
			AreaWindow:      r.AreaWindow,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %d elements", ErrUnknownEnvelope, r.Elements)
	}
}
