package dto

type MonthsResponse struct {
	MonthStarts []string `json:"monthStarts"`
}

type FormatMetadata struct {
	Timezone string `json:"timezone"`
	Format   string `json:"format"`
}

type FormattedMonthsResponse struct {
	MonthStarts []string       `json:"monthStarts"`
	Metadata    FormatMetadata `json:"metadata"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
