package model

import (
	"encoding/json"
	"time"
)

// ActivityLog is an append-only audit record. Rows are written inside the
// transactions of the operations they describe and are never updated.
type ActivityLog struct {
	ID        int64           `json:"id"`
	UserID    int64           `json:"userId"`
	Action    string          `json:"action"`
	Details   json.RawMessage `json:"details,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

type ListActivityQuery struct {
	UserID int64 `form:"userId"`
	Page   int   `form:"page,default=1"`
	Limit  int   `form:"limit,default=20"`
}

func (q *ListActivityQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 || q.Limit > 100 {
		q.Limit = 20
	}
}
