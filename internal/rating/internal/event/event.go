package event

const (
	// RatingEventTopic 评价状态变化事件
	RatingEventTopic = "rating_events"
)

const (
	// ActionReceived 评价已提交，等待被评价人查看
	ActionReceived = "received"
	// ActionApproved 评价已通过审核
	ActionApproved = "approved"
	// ActionRejected 评价被驳回
	ActionRejected = "rejected"
)

type RatingEvent struct {
	RatingId        int64  `json:"ratingId"`
	EvaluatorId     int64  `json:"evaluatorId"`
	EvaluatedUserId int64  `json:"evaluatedUserId"`
	Kind            string `json:"kind"`
	Action          string `json:"action"`
	// Reason 驳回时的原因说明
	Reason        string `json:"reason,omitempty"`
	EvaluatorName string `json:"evaluatorName,omitempty"`
}

func (RatingEvent) Topic() string {
	return RatingEventTopic
}
