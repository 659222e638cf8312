package dto

import "time"

type CreateBlogRequest struct {
	Link string `json:"link" binding:"required,url"`
}

type BlogApprovalResponse struct {
	BlogID         uint       `json:"blogId"`
	Link           string     `json:"link"`
	ApprovalStatus string     `json:"approvalStatus"`
	ApprovedBy     string     `json:"approvedBy"`
	ApprovedAt     *time.Time `json:"approvedAt"`
}

type PendingBlogResponse struct {
	BlogID    uint      `json:"blogId"`
	Link      string    `json:"link"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
}
