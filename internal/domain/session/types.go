package session

type ClassType string

const (
	// ClassKidsAfterSchool sessions require the allergy questionnaire.
	ClassKidsAfterSchool  ClassType = "kidsAfterSchool"
	ClassYoungAdultWeekend ClassType = "youngAdultWeekend"
)

func (t ClassType) String() string {
	return string(t)
}

func (t ClassType) IsValid() bool {
	switch t {
	case ClassKidsAfterSchool, ClassYoungAdultWeekend:
		return true
	default:
		return false
	}
}

func (t ClassType) RequiresQuestionnaire() bool {
	return t == ClassKidsAfterSchool
}

type Status string

const (
	StatusOpen      Status = "open"
	StatusFull      Status = "full"
	StatusClosed    Status = "closed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusFull, StatusClosed, StatusCancelled:
		return true
	default:
		return false
	}
}
