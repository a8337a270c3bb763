package building

import "testing"

func TestEnvelope_SurfaceArea(t *testing.T) {
	tests := []struct {
		name     string
		envelope Envelope
		want     float64
	}{
		{
			name:     "one element sums outer wall and window",
			envelope: OneElement{AreaOuterWall: 10, AreaWindow: 2},
			want:     12,
		},
		{
			name:     "two element adds inner wall",
			envelope: TwoElement{AreaOuterWall: 10, AreaInnerWall: 5, AreaWindow: 2},
			want:     17,
		},
		{
			name:     "three element adds ground floor",
			envelope: ThreeElement{AreaOuterWall: 10, AreaInnerWall: 5, AreaGroundFloor: 4, AreaWindow: 2},
			want:     21,
		},
		{
			name:     "four element adds rooftop",
			envelope: FourElement{AreaOuterWall: 10, AreaInnerWall: 5, AreaGroundFloor: 4, AreaRooftop: 3, AreaWindow: 2},
			want:     24,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.envelope.SurfaceArea(); got != tt.want {
				t.Errorf("SurfaceArea() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEnvelope_Elements(t *testing.T) {
	tests := []struct {
		envelope Envelope
		want     int
	}{
		{OneElement{}, 1},
		{TwoElement{}, 2},
		{ThreeElement{}, 3},
		{FourElement{}, 4},
	}

	for _, tt := range tests {
		if got := tt.envelope.Elements(); got != tt.want {
			t.Errorf("Elements() = %d, want %d", got, tt.want)
		}
	}
}
