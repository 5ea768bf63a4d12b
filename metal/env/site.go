package env

const DefaultSiteName = "Notive"
const DefaultSiteDescription = "Notion based blog"
const DefaultSiteProfileRole = "Creator"

type SiteEnvironment struct {
	Name         string `validate:"required"`
	Description  string `validate:"required"`
	ProfileRole  string `validate:"required"`
	DefaultsFile string `validate:"omitempty,file"`
}
