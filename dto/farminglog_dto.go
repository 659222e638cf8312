package dto

import "time"

type CreateFarmingLogRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type FarmingLogResponse struct {
	FarmingLogID uint      `json:"farmingLogId"`
	Author       string    `json:"author"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	CreatedAt    time.Time `json:"createdAt"`
}

type PageResponse struct {
	List       interface{} `json:"list"`
	Page       int         `json:"page"`
	Size       int         `json:"size"`
	Total      int64       `json:"total"`
	TotalPages int         `json:"totalPages"`
}
