package swap

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// SwapRequest is an offer from one member to trade skills with another.
// JSON field names follow the original wire contract.
type SwapRequest struct {
	ID         int64     `json:"id"`
	FromUserID int64     `json:"fromUserId"`
	ToUserID   int64     `json:"toUserId"`
	FromSkill  string    `json:"fromSkill"`
	ToSkill    string    `json:"toSkill"`
	Message    string    `json:"message"`
	Status     Status    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

// CreateSwapReq carries a new swap request. FromUserID is always the
// authenticated caller and never read from the payload.
type CreateSwapReq struct {
	FromUserID int64  `json:"-"`
	ToUserID   int64  `json:"toUserId"`
	FromSkill  string `json:"fromSkill"`
	ToSkill    string `json:"toSkill"`
	Message    string `json:"message"`
}

type UpdateStatusCmd struct {
	SwapID   int64  `json:"-"`
	CallerID int64  `json:"-"`
	Status   Status `json:"status"`
}
