package models

import (
	"gorm.io/gorm"
	"time"
)

type Confession struct {
	gorm.Model

	Message   string    `gorm:"column:message;not null"`
	Timestamp time.Time `gorm:"column:timestamp;index"` // 排序使用
}
