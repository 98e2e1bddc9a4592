package model

// ExerciseType is the equipment category of an exercise.
type ExerciseType string

const (
	ExerciseDumbbell   ExerciseType = "dumbbell"
	ExerciseKettlebell ExerciseType = "kettlebell"
	ExerciseBarbell    ExerciseType = "barbell"
	ExerciseHexbar     ExerciseType = "hexbar"
	ExerciseBodyweight ExerciseType = "bodyweight"
	ExerciseMachine    ExerciseType = "machine"
	ExerciseUnknown    ExerciseType = "unknown"
)

// ParseExerciseType maps a stored string to an ExerciseType.
// Unknown or unparseable values fall back to ExerciseUnknown so that a
// single bad column never fails a whole load.
func ParseExerciseType(s string) ExerciseType {
	switch ExerciseType(s) {
	case ExerciseDumbbell, ExerciseKettlebell, ExerciseBarbell,
		ExerciseHexbar, ExerciseBodyweight, ExerciseMachine, ExerciseUnknown:
		return ExerciseType(s)
	}
	return ExerciseUnknown
}

// WeightUnit is the unit a weight value is expressed in.
type WeightUnit string

const (
	UnitKg         WeightUnit = "kg"
	UnitLb         WeightUnit = "lb"
	UnitBodyweight WeightUnit = "bodyweight"
)

// ParseWeightUnit maps a stored string to a WeightUnit, defaulting to UnitLb.
func ParseWeightUnit(s string) WeightUnit {
	switch WeightUnit(s) {
	case UnitKg, UnitLb, UnitBodyweight:
		return WeightUnit(s)
	}
	return UnitLb
}

// Suffix returns the display suffix for the unit ("lb" or "kg").
// Bodyweight has no plate denomination and renders as pounds.
func (u WeightUnit) Suffix() string {
	if u == UnitKg {
		return "kg"
	}
	return "lb"
}

// SetType distinguishes how a set is performed.
type SetType string

const (
	SetWarmUp  SetType = "warmUp"
	SetWorking SetType = "working"
	SetDropSet SetType = "dropSet"
	SetAmrap   SetType = "amrap"
	SetFailure SetType = "failure"
)

// ParseSetType maps a stored string to a SetType, defaulting to SetWorking.
func ParseSetType(s string) SetType {
	switch SetType(s) {
	case SetWarmUp, SetWorking, SetDropSet, SetAmrap, SetFailure:
		return SetType(s)
	}
	return SetWorking
}

// BodyPartMain is the primary muscle-group classification of an exercise.
type BodyPartMain string

const (
	BodyChest     BodyPartMain = "chest"
	BodyLegs      BodyPartMain = "legs"
	BodyArms      BodyPartMain = "arms"
	BodyBack      BodyPartMain = "back"
	BodyCalves    BodyPartMain = "calves"
	BodyShoulders BodyPartMain = "shoulders"
	BodyCore      BodyPartMain = "core"
	BodyCardio    BodyPartMain = "cardio"
	BodyFullBody  BodyPartMain = "fullBody"
	BodyOther     BodyPartMain = "other"
)

// ParseBodyPartMain maps a stored string to a BodyPartMain, defaulting to
// BodyOther.
func ParseBodyPartMain(s string) BodyPartMain {
	switch BodyPartMain(s) {
	case BodyChest, BodyLegs, BodyArms, BodyBack, BodyCalves,
		BodyShoulders, BodyCore, BodyCardio, BodyFullBody, BodyOther:
		return BodyPartMain(s)
	}
	return BodyOther
}

// BodyPart classifies an exercise by muscle group, optionally with detailed
// and scientific muscle names.
type BodyPart struct {
	Main       BodyPartMain `json:"main"`
	Detailed   []string     `json:"detailed,omitempty"`
	Scientific []string     `json:"scientific,omitempty"`
}
