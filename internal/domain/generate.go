package domain

// Outcome reports one half of a generation run. The two halves are written
// independently, so one may succeed while the other fails.
type Outcome struct {
	Inserted int      `json:"inserted"`
	Missing  []string `json:"missing,omitempty"`
	Error    string   `json:"error,omitempty"`
}

func (o Outcome) Failed() bool { return o.Error != "" }

// GenerateReport is the result of a full rate-generation run: one outcome
// per record kind.
type GenerateReport struct {
	Rates Outcome `json:"rates"`
	Gold  Outcome `json:"gold"`
}

// PartialFailure reports whether exactly one of the two batch writes failed.
func (r GenerateReport) PartialFailure() bool {
	return r.Rates.Failed() != r.Gold.Failed()
}
