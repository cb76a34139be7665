package types

// Country is a reference record from the countries collection. Code is the
// two-letter short form ("US"), Name the full form ("United States").
type Country struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// Technology is a reference record from the technologies collection.
type Technology struct {
	Identifier string `json:"identifier"`
	Name       string `json:"name"`
}

// Group is a reference record from the server groups collection.
type Group struct {
	Identifier string `json:"identifier"`
	Title      string `json:"title"`
}

// Server is one candidate returned by the servers endpoints. Load is the
// reported utilization in percent, lower is better. Technologies and Groups
// hold the identifiers the server supports.
type Server struct {
	Hostname     string
	Address      string
	Load         int
	Technologies []string
	Groups       []string
}
