package model

// GenericRecord is a schema-agnostic map for semi-structured API payloads
type GenericRecord map[string]interface{}

// Submission is the raw record returned by the form API. The interesting
// part lives under "content", which may be absent, a single object, or a
// non-empty list whose first element holds the "answers" mapping.
type Submission struct {
	ResponseCode int           `json:"responseCode,omitempty"`
	Message      string        `json:"message,omitempty"`
	Content      interface{}   `json:"content,omitempty"`
	Raw          GenericRecord `json:"-"`
}

// Field is one answer entry of a submission, keyed by a stable field id.
// It is a transient working copy built once per run and never shared.
type Field struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Order     int         `json:"order"`
	Text      string      `json:"text"`
	Answer    interface{} `json:"answer,omitempty"`
	HasAnswer bool        `json:"-"`
	Rows      string      `json:"mrows,omitempty"`
}

// Field types the pipeline cares about. Everything else is ignored.
const (
	TypeEmail    = "control_email"
	TypeDropdown = "control_dropdown"
	TypeMatrix   = "control_matrix"
)

// TableField is the reshaped form of a matrix field: the answer grid
// flattened into Values with one row label per cell in Labels.
type TableField struct {
	ID     string        `json:"id"`
	Order  int           `json:"order"`
	Text   string        `json:"text"`
	Values []interface{} `json:"values"`
	Labels []string      `json:"labels"`
}

// OrderResult is the final output of a run: customer identity plus three
// parallel sequences, one position per order line. Immutable once returned.
type OrderResult struct {
	Email        string    `json:"email"`
	SalesRep     string    `json:"sales_rep,omitempty"`
	ClientID     string    `json:"client_id,omitempty"`
	Descriptions []string  `json:"all_descriptions"`
	Quantities   []float64 `json:"all_quantities"`
	ProductIDs   []string  `json:"all_product_ids"`
	Bulk         bool      `json:"bulk"`
}

// EmptyOrderResult is the all-empty shape returned when the submission is
// missing, fetch fails, or the record carries no content.
func EmptyOrderResult() OrderResult {
	return OrderResult{
		Descriptions: []string{},
		Quantities:   []float64{},
		ProductIDs:   []string{},
	}
}

// LineCount returns the number of order lines in the result.
func (r OrderResult) LineCount() int {
	return len(r.ProductIDs)
}
