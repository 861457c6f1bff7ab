package detection

// Rejection reasons reported by PlateValidator. The evaluation order is
// fixed (aspect ratio, then area ratio, then transitions), so the reported
// reason is deterministic even when several criteria fail.
const (
	ReasonAspectRatio = "aspect ratio outside accepted range"
	ReasonAreaRatio   = "area ratio outside accepted range"
	ReasonTransitions = "normalized transitions outside accepted range"
)

// PlateValidator composes the geometric and transition criteria into a single
// accept/reject decision with a human-readable rejection reason.
type PlateValidator struct {
	Geometric GeometricFilter

	// Accepted range for a candidate's normalized transition value.
	MinTransitions float64
	MaxTransitions float64
}

// ValidatePlateRegion runs every criterion against the candidate in fixed
// order and returns whether it passed plus the first failing criterion's
// reason. A passing candidate gets an empty reason.
func (v PlateValidator) ValidatePlateRegion(plate PlateRegion, totalImageArea int) (bool, string) {
	if !v.Geometric.AcceptAspect(plate.Box) {
		return false, ReasonAspectRatio
	}
	if !v.Geometric.AcceptArea(plate.Box, totalImageArea) {
		return false, ReasonAreaRatio
	}

	normalized := plate.NormalizedTransitions()
	if normalized < v.MinTransitions || normalized > v.MaxTransitions {
		return false, ReasonTransitions
	}

	return true, ""
}
