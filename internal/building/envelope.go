package building

// Envelope is the sealed sum type over the four zone construction
// variants. The variants differ in which surfaces the envelope model
// aggregates; each carries only the area fields that apply to it.
//
// SurfaceArea sums the exterior and interior surfaces the variant
// defines (outer wall and window always, inner wall / ground floor /
// rooftop where present). Elements reports the aggregation granularity
// (1-4) the variant corresponds to.
type Envelope interface {
	SurfaceArea() float64
	Elements() int

	// sealed prevents implementations outside this package, keeping the
	// variant set closed so dispatch stays exhaustive.
	sealed()
}

// OneElement aggregates the whole envelope into a single exterior
// element: outer wall plus window.
type OneElement struct {
	AreaOuterWall float64
	AreaWindow    float64
}

// TwoElement splits interior mass from the exterior element. It carries
// the lumped RC parameters used by the two-element Modelica template.
type TwoElement struct {
	AreaOuterWall float64
	AreaInnerWall float64
	AreaWindow    float64

	// Lumped thermal network parameters (K/W and J/K). Zero values are
	// rendered as-is; the template does not derive them.
	R1InnerWall    float64
	C1InnerWall    float64
	R1OuterWall    float64
	RRestOuterWall float64
	C1OuterWall    float64
}

// ThreeElement additionally separates the ground floor.
type ThreeElement struct {
	AreaOuterWall   float64
	AreaInnerWall   float64
	AreaGroundFloor float64
	AreaWindow      float64
}

// FourElement additionally separates the rooftop.
type FourElement struct {
	AreaOuterWall   float64
	AreaInnerWall   float64
	AreaGroundFloor float64
	AreaRooftop     float64
	AreaWindow      float64
}

func (e OneElement) SurfaceArea() float64 {
	return e.AreaOuterWall + e.AreaWindow
}

func (e TwoElement) SurfaceArea() float64 {
	return e.AreaOuterWall + e.AreaInnerWall + e.AreaWindow
}

func (e ThreeElement) SurfaceArea() float64 {
	return e.AreaOuterWall + e.AreaInnerWall + e.AreaGroundFloor + e.AreaWindow
}

func (e FourElement) SurfaceArea() float64 {
	return e.AreaOuterWall + e.AreaInnerWall + e.AreaGroundFloor +
		e.AreaRooftop + e.AreaWindow
}

func (e OneElement) Elements() int   { return 1 }
func (e TwoElement) Elements() int   { return 2 }
func (e ThreeElement) Elements() int { return 3 }
func (e FourElement) Elements() int  { return 4 }

func (OneElement) sealed()   {}
func (TwoElement) sealed()   {}
func (ThreeElement) sealed() {}
func (FourElement) sealed()  {}
