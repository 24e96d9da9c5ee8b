package models

import (
	"gorm.io/gorm"
	"time"
)

// SettingsID 设置表只有这一行
const SettingsID = 1

type Settings struct {
	gorm.Model

	SiteName        string    `gorm:"column:site_name"`
	SiteTitle       string    `gorm:"column:site_title"`
	SiteDescription string    `gorm:"column:site_description"`
	WelcomeText     string    `gorm:"column:welcome_text"`
	LastUpdated     time.Time `gorm:"column:last_updated"`
}
