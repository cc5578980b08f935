package wizard

import (
	"tastebuds/internal/domain/session"
)

type Step string

const (
	StepStudent       Step = "student"
	StepMedical       Step = "medical"
	StepQuestionnaire Step = "questionnaire"
	StepTerms         Step = "terms"
	StepPayment       Step = "payment"
	StepConfirmation  Step = "confirmation"
)

func (s Step) String() string {
	return string(s)
}

// stepDef declares one wizard step: whether the target session includes it,
// and whether a given state has completed it. The table below is the single
// source of truth for step ordering.
type stepDef struct {
	step       Step
	includedIf func(snapshot *session.Session) bool
	completed  func(state *State) bool
}

func always(*session.Session) bool { return true }

var stepTable = []stepDef{
	{
		step:       StepStudent,
		includedIf: always,
		completed:  func(s *State) bool { return s.participant != nil },
	},
	{
		step:       StepMedical,
		includedIf: always,
		completed:  func(s *State) bool { return s.medicalInfo != nil },
	},
	{
		step: StepQuestionnaire,
		includedIf: func(snapshot *session.Session) bool {
			return snapshot.ClassType().RequiresQuestionnaire()
		},
		completed: func(s *State) bool { return s.questionnaire != nil },
	},
	{
		step:       StepTerms,
		includedIf: always,
		completed:  func(s *State) bool { return s.termsAccepted },
	},
}
