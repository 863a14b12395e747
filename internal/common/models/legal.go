package models

// Phase is one of the five ordered lifecycle stages of a case.
type Phase string

const (
	PhaseIntake      Phase = "intake_risk_assessment"
	PhasePreparation Phase = "pre_proceeding_preparation"
	PhaseProceedings Phase = "formal_proceedings"
	PhaseResolution  Phase = "resolution_post_proceeding"
	PhaseClosure     Phase = "closure_review_archiving"
)

// Phases lists every phase in lifecycle order.
var Phases = []Phase{
	PhaseIntake,
	PhasePreparation,
	PhaseProceedings,
	PhaseResolution,
	PhaseClosure,
}

// Index returns the position of p in Phases, or -1.
func (p Phase) Index() int {
	for i, phase := range Phases {
		if phase == p {
			return i
		}
	}
	return -1
}

func (p Phase) IsValid() bool { return p.Index() >= 0 }

func (p Phase) IsTerminal() bool { return p == PhaseClosure }

func (p Phase) Label() string {
	switch p {
	case PhaseIntake:
		return "Intake & Risk Assessment"
	case PhasePreparation:
		return "Pre-Proceeding Preparation"
	case PhaseProceedings:
		return "Formal Proceedings"
	case PhaseResolution:
		return "Resolution & Post-Proceeding"
	case PhaseClosure:
		return "Closure, Review & Archiving"
	}
	return string(p)
}

type CaseType string

const (
	CaseTypeContractDispute    CaseType = "contract_dispute"
	CaseTypeCriminalDefense    CaseType = "criminal_defense"
	CaseTypeDivorceFamily      CaseType = "divorce_family"
	CaseTypeMedicalMalpractice CaseType = "medical_malpractice"
	CaseTypePersonalInjury     CaseType = "personal_injury"
)

var CaseTypes = []CaseType{
	CaseTypeContractDispute,
	CaseTypeCriminalDefense,
	CaseTypeDivorceFamily,
	CaseTypeMedicalMalpractice,
	CaseTypePersonalInjury,
}

func (t CaseType) IsValid() bool {
	for _, ct := range CaseTypes {
		if ct == t {
			return true
		}
	}
	return false
}

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleAttorney  Role = "attorney"
	RoleParalegal Role = "paralegal"
	RoleAssistant Role = "assistant"
	RoleClient    Role = "client"
)

var Roles = []Role{RoleAdmin, RoleAttorney, RoleParalegal, RoleAssistant, RoleClient}

func (r Role) IsValid() bool {
	for _, role := range Roles {
		if role == r {
			return true
		}
	}
	return false
}

type CaseStatus string

const (
	CaseStatusOpen       CaseStatus = "open"
	CaseStatusInProgress CaseStatus = "in_progress"
	CaseStatusOnHold     CaseStatus = "on_hold"
	CaseStatusSettled    CaseStatus = "settled"
	CaseStatusDismissed  CaseStatus = "dismissed"
	CaseStatusClosed     CaseStatus = "closed"
	CaseStatusArchived   CaseStatus = "archived"
)

var CaseStatuses = []CaseStatus{
	CaseStatusOpen,
	CaseStatusInProgress,
	CaseStatusOnHold,
	CaseStatusSettled,
	CaseStatusDismissed,
	CaseStatusClosed,
	CaseStatusArchived,
}

func (s CaseStatus) IsValid() bool {
	for _, status := range CaseStatuses {
		if status == s {
			return true
		}
	}
	return false
}

// CaseState is the view of a case the transition rules are evaluated against.
type CaseState struct {
	Phase    Phase          `json:"phase"`
	Status   CaseStatus     `json:"status"`
	CaseType CaseType       `json:"case_type"`
	Metadata map[string]any `json:"metadata,omitempty"`
}
