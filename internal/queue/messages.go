package queue

// 联系人变更动作
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// ContactEventMessage 联系人变更事件，发给下游同步/审计用
type ContactEventMessage struct {
	EventID    string `json:"event_id"`
	Action     string `json:"action"`
	Username   string `json:"username"`
	ContactID  int64  `json:"contact_id"`
	OccurredAt string `json:"occurred_at"`
}
