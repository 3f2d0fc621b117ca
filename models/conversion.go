package models

import "time"

// Conversion 转换记录
type Conversion struct {
	ID        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Direction string    `json:"direction" gorm:"size:8;index"`
	Kind      string    `json:"kind" gorm:"size:16;index"`
	Offset    uint8     `json:"offset" gorm:"column:bit_offset"`
	Tag       uint8     `json:"tag"`
	Input     string    `json:"input"`
	Output    string    `json:"output"`
	Error     string    `json:"error,omitempty"`
	Source    string    `json:"source" gorm:"size:16"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

// ConversionFilter 转换记录查询条件
type ConversionFilter struct {
	Direction string
	Kind      string
	Failed    *bool
	StartTime time.Time
	EndTime   time.Time
	Limit     int
	Offset    int
}
