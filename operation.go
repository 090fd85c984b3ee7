package gizmo

import "strings"

// Operation is a bit set of the handles a gizmo presents.
type Operation uint32

const (
	TranslateX Operation = 1 << iota
	TranslateY
	TranslateZ
	RotateX
	RotateY
	RotateZ
	RotateScreen
	ScaleX
	ScaleY
	ScaleZ
	Bounds
	ScaleXU
	ScaleYU
	ScaleZU
)

const (
	Translate Operation = TranslateX | TranslateY | TranslateZ
	Rotate    Operation = RotateX | RotateY | RotateZ | RotateScreen
	Scale     Operation = ScaleX | ScaleY | ScaleZ
	ScaleU    Operation = ScaleXU | ScaleYU | ScaleZU
	Universal Operation = Translate | Rotate | ScaleU
)

// translatePlanes lists the translate bits a planar handle needs, indexed
// by the axis normal to the plane.
var translatePlanes = [3]Operation{
	TranslateY | TranslateZ,
	TranslateX | TranslateZ,
	TranslateX | TranslateY,
}

// Intersects reports whether op shares any bit with other.
func (op Operation) Intersects(other Operation) bool {
	return op&other != 0
}

// Contains reports whether every bit of other is set in op.
func (op Operation) Contains(other Operation) bool {
	return op&other == other
}

var operationNames = []struct {
	op   Operation
	name string
}{
	{Universal, "universal"},
	{Translate, "translate"},
	{Rotate, "rotate"},
	{Scale, "scale"},
	{ScaleU, "scaleu"},
	{TranslateX, "tx"}, {TranslateY, "ty"}, {TranslateZ, "tz"},
	{RotateX, "rx"}, {RotateY, "ry"}, {RotateZ, "rz"}, {RotateScreen, "rscreen"},
	{ScaleX, "sx"}, {ScaleY, "sy"}, {ScaleZ, "sz"},
	{ScaleXU, "sxu"}, {ScaleYU, "syu"}, {ScaleZU, "szu"},
	{Bounds, "bounds"},
}

func (op Operation) String() string {
	if op == 0 {
		return "none"
	}
	var parts []string
	rest := op
	for _, n := range operationNames {
		if rest.Contains(n.op) {
			parts = append(parts, n.name)
			rest &^= n.op
		}
	}
	return strings.Join(parts, "|")
}

// ParseOperation accepts the names produced by String joined with '|'.
func ParseOperation(s string) (Operation, bool) {
	var op Operation
	for _, part := range strings.Split(s, "|") {
		part = strings.TrimSpace(strings.ToLower(part))
		if part == "" || part == "none" {
			continue
		}
		found := false
		for _, n := range operationNames {
			if n.name == part {
				op |= n.op
				found = true
				break
			}
		}
		if !found {
			return 0, false
		}
	}
	return op, true
}

// Mode selects the frame translate and rotate handles are aligned to.
type Mode int

const (
	Local Mode = iota
	World
)

func (m Mode) String() string {
	if m == World {
		return "world"
	}
	return "local"
}

// Family groups handles by the kind of edit they perform.
type Family int

const (
	FamilyNone Family = iota
	FamilyTranslate
	FamilyRotate
	FamilyScale
)

// Handle identifies one concrete draggable region of a gizmo.
type Handle int

const (
	HandleNone Handle = iota
	MoveX
	MoveY
	MoveZ
	MoveYZ
	MoveZX
	MoveXY
	MoveScreen
	RotateXHandle
	RotateYHandle
	RotateZHandle
	RotateScreenHandle
	ScaleXHandle
	ScaleYHandle
	ScaleZHandle
	ScaleXYZ
)

func (h Handle) Family() Family {
	switch h {
	case MoveX, MoveY, MoveZ, MoveYZ, MoveZX, MoveXY, MoveScreen:
		return FamilyTranslate
	case RotateXHandle, RotateYHandle, RotateZHandle, RotateScreenHandle:
		return FamilyRotate
	case ScaleXHandle, ScaleYHandle, ScaleZHandle, ScaleXYZ:
		return FamilyScale
	default:
		return FamilyNone
	}
}

// Axis is the world or local axis index the handle acts along (for linear
// handles) or normal to (for planar and rotation handles). Screen and
// uniform handles return -1.
func (h Handle) Axis() int {
	switch h {
	case MoveX, MoveYZ, RotateXHandle, ScaleXHandle:
		return 0
	case MoveY, MoveZX, RotateYHandle, ScaleYHandle:
		return 1
	case MoveZ, MoveXY, RotateZHandle, ScaleZHandle:
		return 2
	default:
		return -1
	}
}

// IsPlanar reports whether h is one of the two-axis translate quads.
func (h Handle) IsPlanar() bool {
	switch h {
	case MoveYZ, MoveZX, MoveXY:
		return true
	}
	return false
}

// IsLinear reports whether h constrains the edit to a single axis.
func (h Handle) IsLinear() bool {
	switch h {
	case MoveX, MoveY, MoveZ, ScaleXHandle, ScaleYHandle, ScaleZHandle:
		return true
	}
	return false
}

var handleNames = [...]string{
	HandleNone:         "none",
	MoveX:              "move-x",
	MoveY:              "move-y",
	MoveZ:              "move-z",
	MoveYZ:             "move-yz",
	MoveZX:             "move-zx",
	MoveXY:             "move-xy",
	MoveScreen:         "move-screen",
	RotateXHandle:      "rotate-x",
	RotateYHandle:      "rotate-y",
	RotateZHandle:      "rotate-z",
	RotateScreenHandle: "rotate-screen",
	ScaleXHandle:       "scale-x",
	ScaleYHandle:       "scale-y",
	ScaleZHandle:       "scale-z",
	ScaleXYZ:           "scale-xyz",
}

func (h Handle) String() string {
	if h < 0 || int(h) >= len(handleNames) {
		return "invalid"
	}
	return handleNames[h]
}

func moveHandle(axis int) Handle   { return MoveX + Handle(axis) }
func planeHandle(axis int) Handle  { return MoveYZ + Handle(axis) }
func rotateHandle(axis int) Handle { return RotateXHandle + Handle(axis) }
func scaleHandle(axis int) Handle  { return ScaleXHandle + Handle(axis) }
