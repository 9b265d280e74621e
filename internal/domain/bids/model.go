package bids

import "time"

const StatusPending = "pending"

type Bid struct {
	ID           int64     `gorm:"column:bid_id;primaryKey" json:"bid_id"`
	ProjectID    int64     `gorm:"column:project_id;index" json:"project_id"`
	FreelancerID int64     `gorm:"column:freelancer_id" json:"freelancer_id"`
	Amount       *float64  `gorm:"column:amount;type:numeric(10,2)" json:"amount"`
	Message      *string   `gorm:"column:message" json:"message"`
	Status       string    `gorm:"column:status;default:pending" json:"status"`
	CreatedAt    time.Time `gorm:"column:created_at;<-:false;autoCreateTime:false" json:"created_at"`
}

func (Bid) TableName() string {
	return "bids"
}

// BidWithBidder is a bid joined with the bidder's display name.
type BidWithBidder struct {
	Bid
	FreelancerName string `gorm:"column:freelancer_name" json:"freelancer_name"`
}

type CreateInput struct {
	ProjectID int64
	Amount    *float64
	Message   *string
}
