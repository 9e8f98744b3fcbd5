package model

// UrgencyLevel is the model's overall urgency assessment.
// Values outside the named levels are kept as-is.
type UrgencyLevel string

const (
	UrgencyLow    UrgencyLevel = "Low"
	UrgencyMedium UrgencyLevel = "Medium"
	UrgencyHigh   UrgencyLevel = "High"
)

// LetterStatusPendingApproval is the only status a drafted letter is created with.
const LetterStatusPendingApproval = "Pending Approval"

// WorkflowResult is the structured output of one analysis.
// JSON names match the response schema sent to the model.
type WorkflowResult struct {
	CaseID                  string           `json:"caseId"`
	InitialProcessing       IntakeSummary    `json:"initialProcessing"`
	AnalysisAndStorage      DocumentAnalysis `json:"analysisAndStorage"`
	PlanningAndTasks        PlanningOutput   `json:"planningAndTasks"`
	NotificationsAndUrgency UrgencyReport    `json:"notificationsAndUrgency"`
	AIAgentActions          AgentActions     `json:"aiAgentActions"`
}

// IntakeSummary is the simulated receipt of the incoming document.
type IntakeSummary struct {
	AcknowledgedToSender   string  `json:"acknowledgedToSender"`
	DocumentTypeIdentified string  `json:"documentTypeIdentified"`
	EmployeeName           *string `json:"employeeName"`
	DateOfIncident         *string `json:"dateOfIncident"` // YYYY-MM-DD
	DateReceived           string  `json:"dateReceived"`   // YYYY-MM-DD
}

// DocumentAnalysis summarises the document. Storage is simulated only.
type DocumentAnalysis struct {
	Summary                      string   `json:"summary"`
	KeyPoints                    []string `json:"keyPoints"`
	DisabilityDetails            string   `json:"disabilityDetails"`
	SimulatedStorageConfirmation string   `json:"simulatedStorageConfirmation"`
}

type CasePlan struct {
	PlanDetails string `json:"planDetails"`
	Reasoning   string `json:"reasoning"`
}

type SuggestedTask struct {
	Title                string `json:"title"`
	Details              string `json:"details"`
	DueDateSuggestion    string `json:"dueDateSuggestion"`
	AssignedToSuggestion string `json:"assignedToSuggestion"`
}

type SuggestedCalendarEvent struct {
	Title                        string   `json:"title"`
	Description                  string   `json:"description"`
	StartTimeSuggestion          string   `json:"startTimeSuggestion"`
	EndTimeSuggestion            string   `json:"endTimeSuggestion"`
	AlertMinutesBeforeSuggestion *float64 `json:"alertMinutesBeforeSuggestion,omitempty"`
}

type PlanningOutput struct {
	CasePlan                CasePlan                 `json:"casePlan"`
	SuggestedTasks          []SuggestedTask          `json:"suggestedTasks"`
	SuggestedCalendarEvents []SuggestedCalendarEvent `json:"suggestedCalendarEvents"`
}

type SimulatedAlert struct {
	RecipientSuggestion string `json:"recipientSuggestion"`
	ChannelSuggestion   string `json:"channelSuggestion"`
	Message             string `json:"message"`
}

type UrgencyReport struct {
	SimulatedAlerts     []SimulatedAlert `json:"simulatedAlerts"`
	OverallUrgencyLevel UrgencyLevel     `json:"overallUrgencyLevel"`
}

type DraftLetter struct {
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
	Content   string `json:"content"`
	Context   string `json:"context"`
	Status    string `json:"status"`
}

type StakeholderCommunication struct {
	Stakeholder string `json:"stakeholder"`
	UpdateType  string `json:"updateType"`
	Notes       string `json:"notes"`
}

type AgentActions struct {
	DraftLetters              []DraftLetter              `json:"draftLetters"`
	StakeholderCommunications []StakeholderCommunication `json:"stakeholderCommunications"`
}
