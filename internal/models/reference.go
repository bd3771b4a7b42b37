package models

// Reference master data used by the mobile client for pickers and
// autocomplete. Areas are deliberately not a foreign key target: the area
// fields on customers and service calls stay free text.

type Area struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

type Product struct {
	ID    int64   `json:"id" db:"id"`
	Name  string  `json:"name" db:"name"`
	Price float64 `json:"price" db:"price"`
}

type CommonIssue struct {
	ID        int64  `json:"id" db:"id"`
	IssueText string `json:"issue_text" db:"issue_text"`
}

type CommonResolution struct {
	ID             int64  `json:"id" db:"id"`
	ResolutionText string `json:"resolution_text" db:"resolution_text"`
}

type SettingInput struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
