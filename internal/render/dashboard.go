package render

import (
	"strconv"
	"strings"

	"github.com/samber/lo"

	"casewrite/internal/model"
)

// NotSpecified replaces every empty or missing scalar on the dashboard.
const NotSpecified = "Not specified"

// Placeholder sentences for empty lists.
const (
	EmptyLetters      = "No formal letters required for this update."
	EmptyStakeholders = "No additional stakeholder updates needed."
	EmptyKeyPoints    = "No specific key points identified."
	EmptyTasks        = "No specific tasks suggested."
	EmptyCalendar     = "No calendar events suggested."
	EmptyAlerts       = "No specific alerts simulated."
)

// Panel titles in display order.
const (
	TitleAgentActions = "AI Agent Actions"
	TitleIntake       = "Initial Processing & Receipt"
	TitleAnalysis     = "Document Analysis & Simulated Storage"
	TitlePlan         = "Case Plan Update"
	TitleTasks        = "Suggested Tasks"
	TitleCalendar     = "Suggested Calendar Events"
	TitleUrgency      = "Simulated Alerts & Urgency"
)

// UrgencyTier selects the badge style for an urgency level.
type UrgencyTier string

const (
	TierLow     UrgencyTier = "low"
	TierMedium  UrgencyTier = "medium"
	TierHigh    UrgencyTier = "high"
	TierDefault UrgencyTier = "default"
)

// ClassifyUrgency maps a level to its tier, ignoring case.
// Unknown or empty levels get TierDefault.
func ClassifyUrgency(level model.UrgencyLevel) UrgencyTier {
	switch strings.ToLower(strings.TrimSpace(string(level))) {
	case "low":
		return TierLow
	case "medium":
		return TierMedium
	case "high":
		return TierHigh
	default:
		return TierDefault
	}
}

// Field is a labelled scalar. Missing is set when Value is the fallback.
type Field struct {
	Label   string
	Value   string
	Missing bool
}

func text(v string) (string, bool) {
	if strings.TrimSpace(v) == "" {
		return NotSpecified, true
	}
	return v, false
}

func field(label, v string) Field {
	val, missing := text(v)
	return Field{Label: label, Value: val, Missing: missing}
}

func optField(label string, v *string) Field {
	return field(label, lo.FromPtr(v))
}

func orNotSpecified(v string) string {
	val, _ := text(v)
	return val
}

type LetterView struct {
	Context   string
	Recipient string
	Subject   string
	Content   string
	Status    string
}

type StakeholderRow struct {
	Stakeholder string
	UpdateType  string
	Notes       string
}

type AgentActionsPanel struct {
	Title             string
	Letters           []LetterView
	LettersEmpty      string
	Stakeholders      []StakeholderRow
	StakeholdersEmpty string
}

type IntakePanel struct {
	Title  string
	Fields []Field
}

type AnalysisPanel struct {
	Title               string
	Summary             Field
	KeyPoints           []string
	KeyPointsEmpty      string
	DisabilityDetails   Field
	StorageConfirmation string
}

type PlanPanel struct {
	Title     string
	Plan      Field
	Reasoning Field
}

type TaskView struct {
	Title    string
	Details  string
	Due      Field
	Assignee Field
}

type TasksPanel struct {
	Title string
	Items []TaskView
	Empty string
}

type EventView struct {
	Title       string
	Description string
	Start       Field
	End         Field
	Reminder    Field
}

type CalendarPanel struct {
	Title string
	Items []EventView
	Empty string
}

type AlertView struct {
	Message   string
	Recipient string
	Channel   string
}

type UrgencyPanel struct {
	Title  string
	Level  string
	Tier   UrgencyTier
	Alerts []AlertView
	Empty  string
}

// Dashboard is the display-ready form of a WorkflowResult.
type Dashboard struct {
	Heading      string
	AgentActions AgentActionsPanel
	Intake       IntakePanel
	Analysis     AnalysisPanel
	Plan         PlanPanel
	Tasks        TasksPanel
	Calendar     CalendarPanel
	Urgency      UrgencyPanel
}

// PanelTitles lists the panel titles in the order they are rendered.
func (d *Dashboard) PanelTitles() []string {
	return []string{
		d.AgentActions.Title,
		d.Intake.Title,
		d.Analysis.Title,
		d.Plan.Title,
		d.Tasks.Title,
		d.Calendar.Title,
		d.Urgency.Title,
	}
}

func emptyUnless[T any](items []T, sentence string) string {
	if len(items) == 0 {
		return sentence
	}
	return ""
}

// Build converts res into a Dashboard. A nil result yields nil.
// res is read only.
func Build(res *model.WorkflowResult) *Dashboard {
	if res == nil {
		return nil
	}
	ip := res.InitialProcessing
	an := res.AnalysisAndStorage
	pl := res.PlanningAndTasks
	nu := res.NotificationsAndUrgency
	aa := res.AIAgentActions

	letters := lo.Map(aa.DraftLetters, func(l model.DraftLetter, _ int) LetterView {
		return LetterView{
			Context:   orNotSpecified(l.Context),
			Recipient: orNotSpecified(l.Recipient),
			Subject:   orNotSpecified(l.Subject),
			Content:   orNotSpecified(l.Content),
			Status:    strings.ToUpper(orNotSpecified(l.Status)),
		}
	})
	stakeholders := lo.Map(aa.StakeholderCommunications, func(s model.StakeholderCommunication, _ int) StakeholderRow {
		return StakeholderRow{
			Stakeholder: orNotSpecified(s.Stakeholder),
			UpdateType:  orNotSpecified(s.UpdateType),
			Notes:       orNotSpecified(s.Notes),
		}
	})
	keyPoints := lo.Filter(an.KeyPoints, func(p string, _ int) bool {
		return strings.TrimSpace(p) != ""
	})
	tasks := lo.Map(pl.SuggestedTasks, func(t model.SuggestedTask, _ int) TaskView {
		return TaskView{
			Title:    orNotSpecified(t.Title),
			Details:  orNotSpecified(t.Details),
			Due:      field("Suggested Due Date", t.DueDateSuggestion),
			Assignee: field("Suggested Assignee", t.AssignedToSuggestion),
		}
	})
	events := lo.Map(pl.SuggestedCalendarEvents, func(e model.SuggestedCalendarEvent, _ int) EventView {
		return EventView{
			Title:       orNotSpecified(e.Title),
			Description: orNotSpecified(e.Description),
			Start:       field("Suggested Start", e.StartTimeSuggestion),
			End:         field("Suggested End", e.EndTimeSuggestion),
			Reminder:    reminder(e.AlertMinutesBeforeSuggestion),
		}
	})
	alerts := lo.Map(nu.SimulatedAlerts, func(a model.SimulatedAlert, _ int) AlertView {
		return AlertView{
			Message:   orNotSpecified(a.Message),
			Recipient: orNotSpecified(a.RecipientSuggestion),
			Channel:   orNotSpecified(a.ChannelSuggestion),
		}
	})

	return &Dashboard{
		Heading: "Casewrite AI Workflow Results for Case ID: " + orNotSpecified(res.CaseID),
		AgentActions: AgentActionsPanel{
			Title:             TitleAgentActions,
			Letters:           letters,
			LettersEmpty:      emptyUnless(letters, EmptyLetters),
			Stakeholders:      stakeholders,
			StakeholdersEmpty: emptyUnless(stakeholders, EmptyStakeholders),
		},
		Intake: IntakePanel{
			Title: TitleIntake,
			Fields: []Field{
				field("Case ID", res.CaseID),
				field("Simulated Acknowledgement", ip.AcknowledgedToSender),
				field("Document Type Identified", ip.DocumentTypeIdentified),
				optField("Employee Name", ip.EmployeeName),
				optField("Date of Incident", ip.DateOfIncident),
				field("Date Received", ip.DateReceived),
			},
		},
		Analysis: AnalysisPanel{
			Title:               TitleAnalysis,
			Summary:             field("AI Summary", an.Summary),
			KeyPoints:           keyPoints,
			KeyPointsEmpty:      emptyUnless(keyPoints, EmptyKeyPoints),
			DisabilityDetails:   field("Disability Details", an.DisabilityDetails),
			StorageConfirmation: orNotSpecified(an.SimulatedStorageConfirmation),
		},
		Plan: PlanPanel{
			Title:     TitlePlan,
			Plan:      field("Proposed Plan", pl.CasePlan.PlanDetails),
			Reasoning: field("Reasoning", pl.CasePlan.Reasoning),
		},
		Tasks: TasksPanel{
			Title: TitleTasks,
			Items: tasks,
			Empty: emptyUnless(tasks, EmptyTasks),
		},
		Calendar: CalendarPanel{
			Title: TitleCalendar,
			Items: events,
			Empty: emptyUnless(events, EmptyCalendar),
		},
		Urgency: UrgencyPanel{
			Title:  TitleUrgency,
			Level:  orNotSpecified(string(nu.OverallUrgencyLevel)),
			Tier:   ClassifyUrgency(nu.OverallUrgencyLevel),
			Alerts: alerts,
			Empty:  emptyUnless(alerts, EmptyAlerts),
		},
	}
}

func reminder(minutes *float64) Field {
	if minutes == nil {
		return Field{Label: "Reminder", Value: NotSpecified, Missing: true}
	}
	return Field{Label: "Reminder", Value: strconv.FormatFloat(*minutes, 'f', -1, 64) + " minutes before"}
}
