package constants

// 站点设置默认值
const (
	DefaultSiteName        = "PPLGTWO"
	DefaultSiteTitle       = "PPLGTWO - Website Kelas"
	DefaultSiteDescription = "Menciptakan masa depan digital dengan kreativitas, inovasi, dan kolaborasi yang tak terbatas"
	DefaultWelcomeText     = "Welcome to PPLGTWO Digital Space"
)
