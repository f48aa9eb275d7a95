package models

// Agent log statuses
const (
	StatusProcessing = "processing"
	StatusComplete   = "complete"
	StatusWarning    = "warning"
	StatusError      = "error"
)

// AgentLog records one pipeline stage's progress
type AgentLog struct {
	Agent   string `json:"agent"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// AgentLogs is an ordered pipeline execution log, appended in stage order
type AgentLogs []AgentLog

// Start appends a new stage entry in the processing state.
func (l *AgentLogs) Start(agent, message string) {
	*l = append(*l, AgentLog{Agent: agent, Message: message, Status: StatusProcessing})
}

// Finish updates the most recent entry's status in place.
func (l AgentLogs) Finish(status string) {
	if len(l) > 0 {
		l[len(l)-1].Status = status
	}
}

// AppendMessage extends the most recent entry's message.
func (l AgentLogs) AppendMessage(suffix string) {
	if len(l) > 0 {
		l[len(l)-1].Message += suffix
	}
}
