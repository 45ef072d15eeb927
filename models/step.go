package models

// Step names one screen of the check-in wizard.
type Step string

const (
	StepWelcome      Step = "welcome"
	StepIDCapture    Step = "id-capture"
	StepRegistration Step = "registration"
	StepRules        Step = "rules"
	StepSignature    Step = "signature"
	StepConfirmation Step = "confirmation"
	StepHistory      Step = "history"
)

// Facing selects the front ("user") or rear ("environment") camera.
type Facing string

const (
	FacingFront Facing = "user"
	FacingRear  Facing = "environment"
)

// Opposite returns the other camera.
func (f Facing) Opposite() Facing {
	if f == FacingFront {
		return FacingRear
	}
	return FacingFront
}
