// Package deprivation joins station wards to LSOA-level index of multiple
// deprivation data and summarises it per station.
package deprivation

// LSOARecord is one matched LSOA with its deprivation ranks and deciles.
// Pointer fields are nil when the source file had no usable value.
type LSOARecord struct {
	LSOACode  string `json:"lsoaCode"`
	LSOAName  string `json:"lsoaName"`
	IMDRank   *int   `json:"imdRank"`
	IMDDecile *int   `json:"imdDecile"`

	IncomeDecile     *int `json:"incomeDecile"`
	EmploymentDecile *int `json:"employmentDecile"`
	EducationDecile  *int `json:"educationDecile"`
	HealthDecile     *int `json:"healthDecile"`
	CrimeDecile      *int `json:"crimeDecile"`
	BarriersDecile   *int `json:"barriersDecile"`
	LivingEnvDecile  *int `json:"livingEnvironmentDecile"`

	// Quintile is derived from IMDDecile; 0 means unclassified.
	Quintile int `json:"quintile"`
}

// QuintileShare is the share of matched LSOAs falling in one quintile.
type QuintileShare struct {
	Quintile   int     `json:"quintile"`
	Label      string  `json:"label"`
	Percentage float64 `json:"percentage"`
}

// Summary is the per-station deprivation view.
type Summary struct {
	Station      string          `json:"station"`
	MatchedLSOAs int             `json:"matchedLsoas"`
	Records      []LSOARecord    `json:"records"`
	Quintiles    []QuintileShare `json:"quintiles"`
}
