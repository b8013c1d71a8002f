package common

const (
	// LogicalUnit is the number of logical units per step of the 16:9 ratio.
	LogicalUnit = 60

	BaseWidth  = 16 * LogicalUnit
	BaseHeight = 9 * LogicalUnit

	// GroundRatio places the ground line as a fraction of arena height.
	GroundRatio = 0.78

	// LifeBudget is shared between starting life and max stamina.
	LifeBudget = 10
)
