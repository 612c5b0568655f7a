package db

// Member represents a database roster member record
type Member struct {
	Name          string `ssql_header:"name" ssql_type:"text"`
	Progress      string `ssql_header:"progress" ssql_type:"text"`
	Power         string `ssql_header:"power" ssql_type:"text"`
	Answer        string `ssql_header:"answer" ssql_type:"text"`
	SpecificDates string `ssql_header:"specific_dates" ssql_type:"text"`
	Cap           int    `ssql_header:"cap" ssql_type:"int"`
	UpdatedAt     string `ssql_header:"updated_at" ssql_type:"text"`
}

// ScheduleRun represents a database record of a completed schedule build
type ScheduleRun struct {
	ID         string `ssql_header:"id" ssql_type:"uuid"`
	Start      string `ssql_header:"start" ssql_type:"date"`
	End        string `ssql_header:"end" ssql_type:"date"`
	Mode       string `ssql_header:"mode" ssql_type:"text"`
	DayCount   int    `ssql_header:"day_count" ssql_type:"int"`
	FixedCount int    `ssql_header:"fixed_count" ssql_type:"int"`
	CreatedAt  string `ssql_header:"created_at" ssql_type:"text"`
}
