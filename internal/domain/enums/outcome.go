package enums

type EnforcementOutcome string

const (
	EnforcementSkipped EnforcementOutcome = "SKIPPED"
	EnforcementDone    EnforcementOutcome = "DONE"
	EnforcementFailed  EnforcementOutcome = "FAILED"
)
