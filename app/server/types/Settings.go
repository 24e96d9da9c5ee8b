package types

import (
	"class-website/app/server/constants"
	"time"
)

type Settings struct {
	ID              string    `json:"id"`
	SiteName        string    `json:"siteName"`
	SiteTitle       string    `json:"siteTitle"`
	SiteDescription string    `json:"siteDescription"`
	WelcomeText     string    `json:"welcomeText"`
	LastUpdated     time.Time `json:"lastUpdated"` // 由服务器在每次写入时设置
}

// SettingsPatch 不包含 lastUpdated ，客户端提交的值会被忽略
type SettingsPatch struct {
	SiteName        *string `json:"siteName"`
	SiteTitle       *string `json:"siteTitle"`
	SiteDescription *string `json:"siteDescription"`
	WelcomeText     *string `json:"welcomeText"`
}

func (p *SettingsPatch) Apply(s *Settings) {
	if p.SiteName != nil {
		s.SiteName = *p.SiteName
	}
	if p.SiteTitle != nil {
		s.SiteTitle = *p.SiteTitle
	}
	if p.SiteDescription != nil {
		s.SiteDescription = *p.SiteDescription
	}
	if p.WelcomeText != nil {
		s.WelcomeText = *p.WelcomeText
	}
}

func DefaultSettings() Settings {
	return Settings{
		SiteName:        constants.DefaultSiteName,
		SiteTitle:       constants.DefaultSiteTitle,
		SiteDescription: constants.DefaultSiteDescription,
		WelcomeText:     constants.DefaultWelcomeText,
	}
}
