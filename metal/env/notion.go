package env

const DefaultNotionBaseURL = "https://api.notion.com"
const DefaultNotionVersion = "2022-06-28"

type NotionEnvironment struct {
	Token   string `validate:"required,min=8"`
	PageID  string `validate:"required"`
	BaseURL string `validate:"required,url"`
	Version string `validate:"required"`
}
