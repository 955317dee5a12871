package analytics

// Dashboard is the multi-facet summary for a time window. Breakdown maps
// omit empty groups; absence reads as zero.
type Dashboard struct {
	TotalReports      int64            `json:"totalReports"`
	StatusBreakdown   map[string]int64 `json:"statusBreakdown"`
	SeverityBreakdown map[string]int64 `json:"severityBreakdown"`
	ReportsOverTime   []DailyCount     `json:"reportsOverTime"`
	DateRange         string           `json:"dateRange"`
}

// DailyCount is the report count for one UTC calendar day, YYYY-MM-DD.
type DailyCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// facetResult is the raw shape the $facet stage produces.
type facetResult struct {
	TotalReports []struct {
		Count int64 `bson:"count"`
	} `bson:"totalReports"`
	StatusBreakdown   []groupCount `bson:"statusBreakdown"`
	SeverityBreakdown []groupCount `bson:"severityBreakdown"`
	ReportsOverTime   []groupCount `bson:"reportsOverTime"`
}

type groupCount struct {
	ID    string `bson:"_id"`
	Count int64  `bson:"count"`
}
