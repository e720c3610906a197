// Package geometry provides reactive 2-D shape entities. Each shape exposes
// its geometrical properties in four derived groups that are recomputed
// whenever a dimension is mutated:
//
//   - "centroid": 'area [m2]', 'x [m]', 'y [m]'
//   - "areamoment_inertia": 'I_xc [m4]', 'I_yc [m4]', 'I_x [m4]', 'I_y [m4]', 'J [m4]'
//   - "radius_gyration": 'r_xc [m]', 'r_yc [m]', 'r_x [m]', 'r_y [m]', 'r_p [m]'
//   - "product_inertia": 'I_xc_yc [m4]', 'I_x_y [m4]'
//
// Properties that are not defined for a particular shape stay NaN.
//
// Reference - Wikipedia: https://en.wikipedia.org/wiki/List_of_second_moments_of_area
package geometry

import (
	"math"

	"github.com/fieldcalc/fieldcalc/pkg/fieldcalc"
)

const (
	GroupCentroid          = "centroid"
	GroupAreaMomentInertia = "areamoment_inertia"
	GroupRadiusGyration    = "radius_gyration"
	GroupProductInertia    = "product_inertia"
)

func radians(deg float64) float64 { return deg * math.Pi / 180.0 }

func shapeGroups() []fieldcalc.DerivedGroup {
	return []fieldcalc.DerivedGroup{
		{Name: GroupCentroid, Outputs: []fieldcalc.Output{
			{Name: "area", Unit: "m2"},
			{Name: "x", Unit: "m"},
			{Name: "y", Unit: "m"},
		}},
		{Name: GroupAreaMomentInertia, Outputs: []fieldcalc.Output{
			{Name: "I_xc", Unit: "m4"},
			{Name: "I_yc", Unit: "m4"},
			{Name: "I_x", Unit: "m4"},
			{Name: "I_y", Unit: "m4"},
			{Name: "J", Unit: "m4"},
		}},
		{Name: GroupRadiusGyration, Outputs: []fieldcalc.Output{
			{Name: "r_xc", Unit: "m"},
			{Name: "r_yc", Unit: "m"},
			{Name: "r_x", Unit: "m"},
			{Name: "r_y", Unit: "m"},
			{Name: "r_p", Unit: "m"},
		}},
		{Name: GroupProductInertia, Outputs: []fieldcalc.Output{
			{Name: "I_xc_yc", Unit: "m4"},
			{Name: "I_x_y", Unit: "m4"},
		}},
	}
}

// emptyShapeResults returns the full property set with every entry NaN, for
// the derive functions to fill in what their shape defines.
func emptyShapeResults() map[string]fieldcalc.Results {
	groups := make(map[string]fieldcalc.Results, 4)
	for _, g := range shapeGroups() {
		res := make(fieldcalc.Results, len(g.Outputs))
		for _, o := range g.Outputs {
			res[o.Key()] = math.NaN()
		}
		groups[g.Name] = res
	}
	return groups
}

var circleDef = fieldcalc.EntityDef{
	Name: "circle",
	Params: []fieldcalc.Param{
		fieldcalc.FloatParamMin("radius", 0.0),
	},
	Groups: shapeGroups(),
	Derive: func(in fieldcalc.Inputs) (map[string]fieldcalc.Results, error) {
		a := in.Float("radius")
		g := emptyShapeResults()

		g[GroupCentroid]["area [m2]"] = math.Pi * a * a
		g[GroupCentroid]["x [m]"] = a
		g[GroupCentroid]["y [m]"] = a

		g[GroupAreaMomentInertia]["I_xc [m4]"] = 0.25 * math.Pi * math.Pow(a, 4.0)
		g[GroupAreaMomentInertia]["I_yc [m4]"] = 0.25 * math.Pi * math.Pow(a, 4.0)
		g[GroupAreaMomentInertia]["I_x [m4]"] = 1.25 * math.Pi * math.Pow(a, 4.0)
		g[GroupAreaMomentInertia]["I_y [m4]"] = 1.25 * math.Pi * math.Pow(a, 4.0)
		g[GroupAreaMomentInertia]["J [m4]"] = 0.5 * math.Pi * math.Pow(a, 4.0)

		g[GroupRadiusGyration]["r_xc [m]"] = math.Sqrt(0.25 * a * a)
		g[GroupRadiusGyration]["r_yc [m]"] = math.Sqrt(0.25 * a * a)
		g[GroupRadiusGyration]["r_x [m]"] = math.Sqrt(1.25 * a * a)
		g[GroupRadiusGyration]["r_y [m]"] = math.Sqrt(1.25 * a * a)
		g[GroupRadiusGyration]["r_p [m]"] = math.Sqrt(0.5 * a * a)

		g[GroupProductInertia]["I_xc_yc [m4]"] = 0.0
		g[GroupProductInertia]["I_x_y [m4]"] = math.Pi * math.Pow(a, 4.0)
		return g, nil
	},
}

// NewCircle creates a circle tangent to the x- and y-axes. Args: 'radius'.
func NewCircle(args fieldcalc.Args) (*fieldcalc.Entity, error) {
	return fieldcalc.NewEntity(circleDef, args)
}

var rectangleDef = fieldcalc.EntityDef{
	Name: "rectangle",
	Params: []fieldcalc.Param{
		fieldcalc.FloatParamMin("base_width", 0.0),
		fieldcalc.FloatParamMin("height", 0.0),
	},
	Groups: shapeGroups(),
	Derive: func(in fieldcalc.Inputs) (map[string]fieldcalc.Results, error) {
		b := in.Float("base_width")
		h := in.Float("height")
		g := emptyShapeResults()

		g[GroupCentroid]["area [m2]"] = b * h
		g[GroupCentroid]["x [m]"] = 0.5 * b
		g[GroupCentroid]["y [m]"] = 0.5 * h

		g[GroupAreaMomentInertia]["I_xc [m4]"] = b * math.Pow(h, 3.0) / 12.0
		g[GroupAreaMomentInertia]["I_yc [m4]"] = h * math.Pow(b, 3.0) / 12.0
		g[GroupAreaMomentInertia]["I_x [m4]"] = b * math.Pow(h, 3.0) / 3.0
		g[GroupAreaMomentInertia]["I_y [m4]"] = h * math.Pow(b, 3.0) / 3.0
		g[GroupAreaMomentInertia]["J [m4]"] = b * h * (b*b + h*h) / 12.0

		g[GroupRadiusGyration]["r_xc [m]"] = math.Sqrt(h * h / 12.0)
		g[GroupRadiusGyration]["r_yc [m]"] = math.Sqrt(b * b / 12.0)
		g[GroupRadiusGyration]["r_x [m]"] = math.Sqrt(h * h / 3.0)
		g[GroupRadiusGyration]["r_y [m]"] = math.Sqrt(b * b / 3.0)
		g[GroupRadiusGyration]["r_p [m]"] = math.Sqrt((b*b + h*h) / 12.0)

		g[GroupProductInertia]["I_xc_yc [m4]"] = 0.0
		g[GroupProductInertia]["I_x_y [m4]"] = b * b * h * h / 4.0
		return g, nil
	},
}

// NewRectangle creates a rectangle with sides aligned with the x- and y-axes.
// Args: 'base_width', 'height'.
func NewRectangle(args fieldcalc.Args) (*fieldcalc.Entity, error) {
	return fieldcalc.NewEntity(rectangleDef, args)
}

var ringDef = fieldcalc.EntityDef{
	Name: "ring",
	Params: []fieldcalc.Param{
		fieldcalc.FloatParamMin("outer_radius", 0.0),
		fieldcalc.FloatParamMin("inner_radius", 0.0),
	},
	Constraints: []fieldcalc.Constraint{
		func(in fieldcalc.Inputs) *fieldcalc.Violation {
			if in.Float("inner_radius") > in.Float("outer_radius") {
				return &fieldcalc.Violation{
					Param:  "inner_radius",
					Value:  in.Float("inner_radius"),
					Detail: "cannot be greater than the outer radius",
				}
			}
			return nil
		},
	},
	Groups: shapeGroups(),
	Derive: func(in fieldcalc.Inputs) (map[string]fieldcalc.Results, error) {
		a := in.Float("outer_radius")
		b := in.Float("inner_radius")
		g := emptyShapeResults()

		g[GroupCentroid]["area [m2]"] = math.Pi * (a*a - b*b)
		g[GroupCentroid]["x [m]"] = a
		g[GroupCentroid]["y [m]"] = a

		g[GroupAreaMomentInertia]["I_xc [m4]"] = 0.25 * math.Pi * (math.Pow(a, 4.0) - math.Pow(b, 4.0))
		g[GroupAreaMomentInertia]["I_yc [m4]"] = 0.25 * math.Pi * (math.Pow(a, 4.0) - math.Pow(b, 4.0))
		g[GroupAreaMomentInertia]["I_x [m4]"] = 1.25*math.Pi*math.Pow(a, 4.0) -
			math.Pi*a*a*b*b - 0.25*math.Pi*math.Pow(b, 4.0)
		g[GroupAreaMomentInertia]["I_y [m4]"] = 1.25*math.Pi*math.Pow(a, 4.0) -
			math.Pi*a*a*b*b - 0.25*math.Pi*math.Pow(b, 4.0)
		g[GroupAreaMomentInertia]["J [m4]"] = 0.5 * math.Pi * (math.Pow(a, 4.0) - math.Pow(b, 4.0))

		g[GroupRadiusGyration]["r_xc [m]"] = math.Sqrt(0.25 * (a*a + b*b))
		g[GroupRadiusGyration]["r_yc [m]"] = math.Sqrt(0.25 * (a*a + b*b))
		g[GroupRadiusGyration]["r_x [m]"] = math.Sqrt(0.25 * (5.0*a*a + b*b))
		g[GroupRadiusGyration]["r_y [m]"] = math.Sqrt(0.25 * (5.0*a*a + b*b))
		g[GroupRadiusGyration]["r_p [m]"] = math.Sqrt(0.5 * (a*a + b*b))

		g[GroupProductInertia]["I_xc_yc [m4]"] = 0.0
		g[GroupProductInertia]["I_x_y [m4]"] = math.Pi * a * a * (a*a - b*b)
		return g, nil
	},
}

// NewRing creates a ring tangent to the x- and y-axes. Args: 'outer_radius',
// 'inner_radius' (at most the outer radius).
func NewRing(args fieldcalc.Args) (*fieldcalc.Entity, error) {
	return fieldcalc.NewEntity(ringDef, args)
}

var rightTriangleRightDef = fieldcalc.EntityDef{
	Name: "right_triangle_right",
	Params: []fieldcalc.Param{
		fieldcalc.FloatParamMin("base_width", 0.0),
		fieldcalc.FloatParamMin("height", 0.0),
	},
	Groups: shapeGroups(),
	Derive: func(in fieldcalc.Inputs) (map[string]fieldcalc.Results, error) {
		b := in.Float("base_width")
		h := in.Float("height")
		g := emptyShapeResults()

		g[GroupCentroid]["area [m2]"] = 0.5 * b * h
		g[GroupCentroid]["x [m]"] = 2.0 * b / 3.0
		g[GroupCentroid]["y [m]"] = h / 3.0

		g[GroupAreaMomentInertia]["I_xc [m4]"] = b * math.Pow(h, 3.0) / 36.0
		g[GroupAreaMomentInertia]["I_yc [m4]"] = h * math.Pow(b, 3.0) / 36.0
		g[GroupAreaMomentInertia]["I_x [m4]"] = b * math.Pow(h, 3.0) / 12.0
		g[GroupAreaMomentInertia]["I_y [m4]"] = h * math.Pow(b, 3.0) / 4.0

		g[GroupRadiusGyration]["r_xc [m]"] = math.Sqrt(h * h / 18.0)
		g[GroupRadiusGyration]["r_yc [m]"] = math.Sqrt(b * b / 18.0)
		g[GroupRadiusGyration]["r_x [m]"] = math.Sqrt(h * h / 6.0)
		g[GroupRadiusGyration]["r_y [m]"] = math.Sqrt(b * b / 2.0)

		g[GroupProductInertia]["I_xc_yc [m4]"] = b * b * h * h / 72.0
		g[GroupProductInertia]["I_x_y [m4]"] = b * b * h * h / 8.0
		return g, nil
	},
}

// NewRightTriangleRight creates a right triangle with the right angle on the
// right. Args: 'base_width', 'height'.
func NewRightTriangleRight(args fieldcalc.Args) (*fieldcalc.Entity, error) {
	return fieldcalc.NewEntity(rightTriangleRightDef, args)
}

var trapezoidDef = fieldcalc.EntityDef{
	Name: "trapezoid",
	Params: []fieldcalc.Param{
		fieldcalc.FloatParamMin("longest_base", 0.0),
		fieldcalc.FloatParamMin("shortest_base", 0.0),
		fieldcalc.FloatParamMin("height", 0.0),
	},
	Constraints: []fieldcalc.Constraint{
		func(in fieldcalc.Inputs) *fieldcalc.Violation {
			if in.Float("shortest_base") > in.Float("longest_base") {
				return &fieldcalc.Violation{
					Param:  "shortest_base",
					Value:  in.Float("shortest_base"),
					Detail: "cannot be greater than the longest base",
				}
			}
			return nil
		},
	},
	Groups: shapeGroups(),
	Derive: func(in fieldcalc.Inputs) (map[string]fieldcalc.Results, error) {
		b := in.Float("longest_base")
		a := in.Float("shortest_base")
		h := in.Float("height")
		g := emptyShapeResults()

		g[GroupCentroid]["area [m2]"] = 0.5 * h * (b + a)
		g[GroupCentroid]["y [m]"] = h * (2.0*a + b) / (3.0 * (a + b))

		g[GroupAreaMomentInertia]["I_xc [m4]"] = math.Pow(h, 3.0) * (a*a + 4.0*a*b + b*b) / (36.0 * (b + a))
		g[GroupAreaMomentInertia]["I_x [m4]"] = math.Pow(h, 3.0) * (3.0*a + b) / 12.0

		g[GroupRadiusGyration]["r_xc [m]"] = math.Sqrt(h * h * (a*a + 4.0*a*b + b*b) / (18.0 * (b + a)))
		g[GroupRadiusGyration]["r_x [m]"] = math.Sqrt(h * h * (3.0*a + b) / (6.0 * (b + a)))
		return g, nil
	},
}

// NewTrapezoid creates a trapezoid with the longest base aligned with the
// x-axis. Args: 'longest_base', 'shortest_base' (at most the longest base),
// 'height'. The centroid x-coordinate and the moments about the y-axis are
// not defined for this shape and stay NaN.
func NewTrapezoid(args fieldcalc.Args) (*fieldcalc.Entity, error) {
	return fieldcalc.NewEntity(trapezoidDef, args)
}

var semiCircleDef = fieldcalc.EntityDef{
	Name: "semicircle",
	Params: []fieldcalc.Param{
		fieldcalc.FloatParamMin("radius", 0.0),
	},
	Groups: shapeGroups(),
	Derive: func(in fieldcalc.Inputs) (map[string]fieldcalc.Results, error) {
		a := in.Float("radius")
		g := emptyShapeResults()

		g[GroupCentroid]["area [m2]"] = 0.5 * math.Pi * a * a
		g[GroupCentroid]["x [m]"] = a
		g[GroupCentroid]["y [m]"] = 4.0 * a / (3.0 * math.Pi)

		g[GroupAreaMomentInertia]["I_xc [m4]"] = math.Pow(a, 4.0) * (9.0*math.Pi*math.Pi - 64.0) / (72.0 * math.Pi)
		g[GroupAreaMomentInertia]["I_yc [m4]"] = 0.125 * math.Pi * math.Pow(a, 4.0)
		g[GroupAreaMomentInertia]["I_x [m4]"] = 0.125 * math.Pi * math.Pow(a, 4.0)
		g[GroupAreaMomentInertia]["I_y [m4]"] = 0.625 * math.Pi * math.Pow(a, 4.0)

		g[GroupRadiusGyration]["r_xc [m]"] = math.Sqrt(a * a * (9.0*math.Pi*math.Pi - 64.0) / (36.0 * math.Pi * math.Pi))
		g[GroupRadiusGyration]["r_yc [m]"] = math.Sqrt(0.25 * a * a)
		g[GroupRadiusGyration]["r_x [m]"] = math.Sqrt(0.25 * a * a)
		g[GroupRadiusGyration]["r_y [m]"] = math.Sqrt(1.25 * a * a)

		g[GroupProductInertia]["I_xc_yc [m4]"] = 0.0
		g[GroupProductInertia]["I_x_y [m4]"] = 2.0 * a * a / 3.0
		return g, nil
	},
}

// NewSemiCircle creates a semicircle passing through the origin with its
// center on the x-axis. Args: 'radius'.
func NewSemiCircle(args fieldcalc.Args) (*fieldcalc.Entity, error) {
	return fieldcalc.NewEntity(semiCircleDef, args)
}

var rightTriangleLeftDef = fieldcalc.EntityDef{
	Name: "right_triangle_left",
	Params: []fieldcalc.Param{
		fieldcalc.FloatParamMin("base_width", 0.0),
		fieldcalc.FloatParamMin("height", 0.0),
	},
	Groups: shapeGroups(),
	Derive: func(in fieldcalc.Inputs) (map[string]fieldcalc.Results, error) {
		b := in.Float("base_width")
		h := in.Float("height")
		g := emptyShapeResults()

		g[GroupCentroid]["area [m2]"] = 0.5 * b * h
		g[GroupCentroid]["x [m]"] = b / 3.0
		g[GroupCentroid]["y [m]"] = h / 3.0

		g[GroupAreaMomentInertia]["I_xc [m4]"] = b * math.Pow(h, 3.0) / 36.0
		g[GroupAreaMomentInertia]["I_yc [m4]"] = h * math.Pow(b, 3.0) / 36.0
		g[GroupAreaMomentInertia]["I_x [m4]"] = b * math.Pow(h, 3.0) / 12.0
		g[GroupAreaMomentInertia]["I_y [m4]"] = h * math.Pow(b, 3.0) / 12.0

		g[GroupRadiusGyration]["r_xc [m]"] = math.Sqrt(h * h / 18.0)
		g[GroupRadiusGyration]["r_yc [m]"] = math.Sqrt(b * b / 18.0)
		g[GroupRadiusGyration]["r_x [m]"] = math.Sqrt(h * h / 6.0)
		g[GroupRadiusGyration]["r_y [m]"] = math.Sqrt(b * b / 6.0)

		g[GroupProductInertia]["I_xc_yc [m4]"] = -b * b * h * h / 72.0
		g[GroupProductInertia]["I_x_y [m4]"] = b * b * h * h / 24.0
		return g, nil
	},
}

// NewRightTriangleLeft creates a right triangle with the right angle on the
// left. Args: 'base_width', 'height'.
func NewRightTriangleLeft(args fieldcalc.Args) (*fieldcalc.Entity, error) {
	return fieldcalc.NewEntity(rightTriangleLeftDef, args)
}

var triangleGenericDef = fieldcalc.EntityDef{
	Name: "triangle_generic",
	Params: []fieldcalc.Param{
		fieldcalc.FloatParamMin("base_full_width", 0.0),
		fieldcalc.FloatParamMin("base_offset", 0.0),
		fieldcalc.FloatParamMin("height", 0.0),
	},
	Constraints: []fieldcalc.Constraint{
		func(in fieldcalc.Inputs) *fieldcalc.Violation {
			if in.Float("base_offset") > in.Float("base_full_width") {
				return &fieldcalc.Violation{
					Param:  "base_offset",
					Value:  in.Float("base_offset"),
					Detail: "cannot be greater than the full base width",
				}
			}
			return nil
		},
	},
	Groups: shapeGroups(),
	Derive: func(in fieldcalc.Inputs) (map[string]fieldcalc.Results, error) {
		b := in.Float("base_full_width")
		a := in.Float("base_offset")
		h := in.Float("height")
		g := emptyShapeResults()

		g[GroupCentroid]["area [m2]"] = 0.5 * b * h
		g[GroupCentroid]["x [m]"] = (b + a) / 3.0
		g[GroupCentroid]["y [m]"] = h / 3.0

		g[GroupAreaMomentInertia]["I_xc [m4]"] = b * math.Pow(h, 3.0) / 36.0
		g[GroupAreaMomentInertia]["I_yc [m4]"] = h * b * (b*b - a*b + a*a) / 36.0
		g[GroupAreaMomentInertia]["I_x [m4]"] = b * math.Pow(h, 3.0) / 12.0
		g[GroupAreaMomentInertia]["I_y [m4]"] = h * b * (b*b + a*b + a*a) / 12.0

		g[GroupRadiusGyration]["r_xc [m]"] = math.Sqrt(h * h / 18.0)
		g[GroupRadiusGyration]["r_yc [m]"] = math.Sqrt((b*b - a*b + a*a) / 18.0)
		g[GroupRadiusGyration]["r_x [m]"] = math.Sqrt(h * h / 6.0)
		g[GroupRadiusGyration]["r_y [m]"] = math.Sqrt((b*b + a*b + a*a) / 6.0)

		g[GroupProductInertia]["I_xc_yc [m4]"] = b * h * h * (2.0*a - b) / 72.0
		g[GroupProductInertia]["I_x_y [m4]"] = b * h * h * (2.0*a + b) / 24.0
		return g, nil
	},
}

// NewTriangleGeneric creates a generic triangle with its longest edge aligned
// with the x-axis. Args: 'base_full_width', 'base_offset' (distance from the
// origin to the highest vertex, at most the full base width), 'height'.
func NewTriangleGeneric(args fieldcalc.Args) (*fieldcalc.Entity, error) {
	return fieldcalc.NewEntity(triangleGenericDef, args)
}

var parallellogramDef = fieldcalc.EntityDef{
	Name: "parallellogram",
	Params: []fieldcalc.Param{
		fieldcalc.FloatParamMin("length_x", 0.0),
		fieldcalc.FloatParamMin("length_inclined", 0.0),
		fieldcalc.FloatParam("angle", 0.0, 90.0),
	},
	Groups: shapeGroups(),
	Derive: func(in fieldcalc.Inputs) (map[string]fieldcalc.Results, error) {
		b := in.Float("length_x")
		a := in.Float("length_inclined")
		theta := radians(in.Float("angle"))
		sin, cos := math.Sin(theta), math.Cos(theta)
		g := emptyShapeResults()

		g[GroupCentroid]["area [m2]"] = a * b * sin
		g[GroupCentroid]["x [m]"] = 0.5 * (b + a*cos)
		g[GroupCentroid]["y [m]"] = 0.5 * a * sin

		g[GroupAreaMomentInertia]["I_xc [m4]"] = b * math.Pow(a, 3.0) * math.Pow(sin, 3.0) / 12.0
		g[GroupAreaMomentInertia]["I_yc [m4]"] = a * b * sin * (b*b + a*a*cos*cos) / 12.0
		g[GroupAreaMomentInertia]["I_x [m4]"] = b * math.Pow(a, 3.0) * math.Pow(sin, 3.0) / 3.0
		g[GroupAreaMomentInertia]["I_y [m4]"] = a*b*sin*(b*b+a*a*cos*cos)/3.0 -
			a*a*b*b*sin*cos/6.0

		g[GroupRadiusGyration]["r_xc [m]"] = math.Sqrt((a * sin) * (a * sin) / 12.0)
		g[GroupRadiusGyration]["r_yc [m]"] = math.Sqrt((b*b + (a*cos)*(a*cos)) / 12.0)
		g[GroupRadiusGyration]["r_x [m]"] = math.Sqrt((a * sin) * (a * sin) / 3.0)
		g[GroupRadiusGyration]["r_y [m]"] = math.Sqrt((b+a*cos)*(b+a*cos)/3.0 - a*b*cos/6.0)

		g[GroupProductInertia]["I_xc_yc [m4]"] = math.Pow(a, 3.0) * b * sin * sin * cos / 12.0
		return g, nil
	},
}

// NewParallellogram creates a parallellogram with one side aligned with the
// x-axis. Args: 'length_x', 'length_inclined', 'angle' between the x-axis and
// the inclined side in degrees [0, 90].
func NewParallellogram(args fieldcalc.Args) (*fieldcalc.Entity, error) {
	return fieldcalc.NewEntity(parallellogramDef, args)
}

var circleSectorDef = fieldcalc.EntityDef{
	Name: "circle_sector",
	Params: []fieldcalc.Param{
		fieldcalc.FloatParamMin("radius", 0.0),
		fieldcalc.FloatParam("angle", 0.0, 90.0),
	},
	Groups: shapeGroups(),
	Derive: func(in fieldcalc.Inputs) (map[string]fieldcalc.Results, error) {
		a := in.Float("radius")
		theta := radians(in.Float("angle"))
		sin, cos := math.Sin(theta), math.Cos(theta)
		g := emptyShapeResults()

		g[GroupCentroid]["area [m2]"] = a * a * theta
		g[GroupCentroid]["x [m]"] = 2.0 * a * sin / (3.0 * theta)
		g[GroupCentroid]["y [m]"] = 0.0

		g[GroupAreaMomentInertia]["I_x [m4]"] = 0.25 * math.Pow(a, 4.0) * (theta - sin*cos)
		g[GroupAreaMomentInertia]["I_y [m4]"] = 0.25 * math.Pow(a, 4.0) * (theta + sin*cos)

		g[GroupRadiusGyration]["r_x [m]"] = math.Sqrt(0.25 * a * a * (theta - sin*cos) / theta)
		g[GroupRadiusGyration]["r_y [m]"] = math.Sqrt(0.25 * a * a * (theta + sin*cos) / theta)

		g[GroupProductInertia]["I_xc_yc [m4]"] = 0.0
		g[GroupProductInertia]["I_x_y [m4]"] = 0.0
		return g, nil
	},
}

// NewCircleSector creates a circle sector bisected by the x-axis with the
// circle center at the origin. Args: 'radius', 'angle' between the x-axis and
// the sector edge in degrees [0, 90].
func NewCircleSector(args fieldcalc.Args) (*fieldcalc.Entity, error) {
	return fieldcalc.NewEntity(circleSectorDef, args)
}

var circleSegmentDef = fieldcalc.EntityDef{
	Name: "circle_segment",
	Params: []fieldcalc.Param{
		fieldcalc.FloatParamMin("radius", 0.0),
		fieldcalc.FloatParam("angle", 0.0, 90.0),
	},
	Groups: shapeGroups(),
	Derive: func(in fieldcalc.Inputs) (map[string]fieldcalc.Results, error) {
		a := in.Float("radius")
		theta := radians(in.Float("angle"))
		sin, cos := math.Sin(theta), math.Cos(theta)
		g := emptyShapeResults()

		area := a * a * (theta - 0.5*math.Sin(2.0*theta))
		g[GroupCentroid]["area [m2]"] = area
		g[GroupCentroid]["x [m]"] = 2.0 * a * math.Pow(sin, 3.0) / (3.0 * (theta - sin*cos))
		g[GroupCentroid]["y [m]"] = 0.0

		g[GroupAreaMomentInertia]["I_x [m4]"] = 0.25 * area * a * a *
			(1.0 - (2.0*math.Pow(sin, 3.0)*cos)/(3.0*theta-3.0*sin*cos))
		g[GroupAreaMomentInertia]["I_y [m4]"] = 0.25 * area * a * a *
			(1.0 + (2.0*math.Pow(sin, 3.0)*cos)/(theta-sin*cos))

		g[GroupRadiusGyration]["r_x [m]"] = math.Sqrt(0.25 * a * a *
			(1.0 - (2.0*math.Pow(sin, 3.0)*cos)/(3.0*theta-3.0*sin*cos)))
		g[GroupRadiusGyration]["r_y [m]"] = math.Sqrt(0.25 * area * a * a *
			(1.0 + (2.0*math.Pow(sin, 3.0)*cos)/(theta-sin*cos)))

		g[GroupProductInertia]["I_xc_yc [m4]"] = 0.0
		g[GroupProductInertia]["I_x_y [m4]"] = 0.0
		return g, nil
	},
}

// NewCircleSegment creates a circle segment bisected by the x-axis with the
// circle center at the origin. Args: 'radius', 'angle' between the x-axis and
// the segment edge in degrees [0, 90].
func NewCircleSegment(args fieldcalc.Args) (*fieldcalc.Entity, error) {
	return fieldcalc.NewEntity(circleSegmentDef, args)
}

var parabolaDef = fieldcalc.EntityDef{
	Name: "parabola",
	Params: []fieldcalc.Param{
		fieldcalc.FloatParamMin("width", 0.0),
		fieldcalc.FloatParamMin("height", 0.0),
	},
	Groups: shapeGroups(),
	Derive: func(in fieldcalc.Inputs) (map[string]fieldcalc.Results, error) {
		a := in.Float("width")
		b := in.Float("height")
		g := emptyShapeResults()

		g[GroupCentroid]["area [m2]"] = 4.0 * a * b / 3.0
		g[GroupCentroid]["x [m]"] = 3.0 * a / 5.0
		g[GroupCentroid]["y [m]"] = 0.0

		g[GroupAreaMomentInertia]["I_xc [m4]"] = 4.0 * a * math.Pow(b, 3.0) / 15.0
		g[GroupAreaMomentInertia]["I_yc [m4]"] = 16.0 * math.Pow(a, 3.0) * b / 175.0
		g[GroupAreaMomentInertia]["I_x [m4]"] = 4.0 * a * math.Pow(b, 3.0) / 15.0
		g[GroupAreaMomentInertia]["I_y [m4]"] = 4.0 * math.Pow(a, 3.0) * b / 7.0

		g[GroupRadiusGyration]["r_xc [m]"] = math.Sqrt(b * b / 5.0)
		g[GroupRadiusGyration]["r_yc [m]"] = math.Sqrt(12.0 * a * a / 175.0)
		g[GroupRadiusGyration]["r_x [m]"] = math.Sqrt(b * b / 5.0)
		g[GroupRadiusGyration]["r_y [m]"] = math.Sqrt(3.0 * a * a / 7.0)

		g[GroupProductInertia]["I_xc_yc [m4]"] = 0.0
		g[GroupProductInertia]["I_x_y [m4]"] = 0.0
		return g, nil
	},
}

// NewParabola creates a parabola bisected by the x-axis, opening towards the
// origin. Args: 'width', 'height'.
func NewParabola(args fieldcalc.Args) (*fieldcalc.Entity, error) {
	return fieldcalc.NewEntity(parabolaDef, args)
}

var halfParabolaDef = fieldcalc.EntityDef{
	Name: "half_parabola",
	Params: []fieldcalc.Param{
		fieldcalc.FloatParamMin("width", 0.0),
		fieldcalc.FloatParamMin("height", 0.0),
	},
	Groups: shapeGroups(),
	Derive: func(in fieldcalc.Inputs) (map[string]fieldcalc.Results, error) {
		a := in.Float("width")
		b := in.Float("height")
		g := emptyShapeResults()

		g[GroupCentroid]["area [m2]"] = 2.0 * a * b / 3.0
		g[GroupCentroid]["x [m]"] = 3.0 * a / 5.0
		g[GroupCentroid]["y [m]"] = 3.0 * b / 8.0

		g[GroupAreaMomentInertia]["I_x [m4]"] = 2.0 * a * math.Pow(b, 3.0) / 15.0
		g[GroupAreaMomentInertia]["I_y [m4]"] = 2.0 * math.Pow(a, 3.0) * b / 7.0

		g[GroupRadiusGyration]["r_x [m]"] = math.Sqrt(b * b / 5.0)
		g[GroupRadiusGyration]["r_y [m]"] = math.Sqrt(3.0 * a * a / 7.0)
		return g, nil
	},
}

// NewHalfParabola creates the half of a parabola above the x-axis. Args:
// 'width', 'height'.
func NewHalfParabola(args fieldcalc.Args) (*fieldcalc.Entity, error) {
	return fieldcalc.NewEntity(halfParabolaDef, args)
}

var nDegreeParabolaOutsideDef = fieldcalc.EntityDef{
	Name: "ndegree_parabola_outside",
	Params: []fieldcalc.Param{
		fieldcalc.FloatParamMin("width", 0.0),
		fieldcalc.FloatParamMin("height", 0.0),
		fieldcalc.FloatParamMin("exponent", 0.0),
	},
	Groups: shapeGroups(),
	Derive: func(in fieldcalc.Inputs) (map[string]fieldcalc.Results, error) {
		b := in.Float("width")
		h := in.Float("height")
		n := in.Float("exponent")
		g := emptyShapeResults()

		g[GroupCentroid]["area [m2]"] = b * h / (n + 1.0)
		g[GroupCentroid]["x [m]"] = b * (n + 1.0) / (n + 2.0)
		g[GroupCentroid]["y [m]"] = 0.5 * h * (n + 1.0) / (2.0*n + 1.0)

		g[GroupAreaMomentInertia]["I_x [m4]"] = b * math.Pow(h, 3.0) / (3.0 * (3.0*n + 1.0))
		g[GroupAreaMomentInertia]["I_y [m4]"] = h * math.Pow(b, 3.0) / (n + 3.0)

		g[GroupRadiusGyration]["r_x [m]"] = math.Sqrt(h * h * (n + 1.0) / (3.0 * (3.0*n + 1.0)))
		g[GroupRadiusGyration]["r_y [m]"] = math.Sqrt(b * b * (n + 1.0) / (n + 3.0))
		return g, nil
	},
}

// NewNDegreeParabolaOutside creates the area outside an Nth degree parabola
// y = (h / b^n) x^n above the x-axis. Args: 'width', 'height', 'exponent'.
func NewNDegreeParabolaOutside(args fieldcalc.Args) (*fieldcalc.Entity, error) {
	return fieldcalc.NewEntity(nDegreeParabolaOutsideDef, args)
}

var nDegreeParabolaInsideDef = fieldcalc.EntityDef{
	Name: "ndegree_parabola_inside",
	Params: []fieldcalc.Param{
		fieldcalc.FloatParamMin("width", 0.0),
		fieldcalc.FloatParamMin("height", 0.0),
		fieldcalc.FloatParamMin("exponent", 0.0),
	},
	Groups: shapeGroups(),
	Derive: func(in fieldcalc.Inputs) (map[string]fieldcalc.Results, error) {
		b := in.Float("width")
		h := in.Float("height")
		n := in.Float("exponent")
		g := emptyShapeResults()

		g[GroupCentroid]["area [m2]"] = (n / (n + 1.0)) * b * h
		g[GroupCentroid]["x [m]"] = b * (n + 1.0) / (2.0*n + 1.0)
		g[GroupCentroid]["y [m]"] = h * (n + 1.0) / (2.0 * (n + 2.0))

		g[GroupAreaMomentInertia]["I_x [m4]"] = b * math.Pow(h, 3.0) * n / (3.0 * (n + 3.0))
		g[GroupAreaMomentInertia]["I_y [m4]"] = h * math.Pow(b, 3.0) * n / (3.0*n + 1.0)

		g[GroupRadiusGyration]["r_x [m]"] = math.Sqrt(h * h * (n + 1.0) / (3.0 * (n + 1.0)))
		g[GroupRadiusGyration]["r_y [m]"] = math.Sqrt(b * b * (n + 1.0) / (3.0*n + 1.0))
		return g, nil
	},
}

// NewNDegreeParabolaInside creates the area between an Nth degree parabola
// y = (h / b^(1/n)) x^(1/n) and the x-axis. Args: 'width', 'height',
// 'exponent'.
func NewNDegreeParabolaInside(args fieldcalc.Args) (*fieldcalc.Entity, error) {
	return fieldcalc.NewEntity(nDegreeParabolaInsideDef, args)
}
