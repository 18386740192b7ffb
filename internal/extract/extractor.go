// Package extract maps raw report text onto the canonical incident record,
// one extractor per operator document layout. Extraction rules are
// independent: a rule that fails to match yields a null/default for its field
// and never aborts the rest of the document.
package extract

import (
	"log/slog"
	"strings"

	"github.com/enviro-data/incident-etl/constants"
	"github.com/enviro-data/incident-etl/internal/entity"
)

// Extractor converts one operator's report text into an incident record.
// Implementations must never return an error for malformed or absent fields;
// only an empty IncidentID signals that the document could not be identified.
type Extractor interface {
	Operator() constants.Operator
	Extract(text string) entity.Incident
}

// registration pairs an identifying keyword with its extractor. Keywords are
// matched as case-insensitive substrings, in slice order.
type registration struct {
	keyword string
	ext     Extractor
}

// Dispatcher selects the extractor for a document by scanning its text for
// operator keywords. The registry is fixed at construction; order is the
// tie-break, so an operator's alias keywords must sit adjacent to (and after)
// its canonical keyword, and specific keywords must precede generic ones.
type Dispatcher struct {
	regs []registration
}

// NewDispatcher builds the dispatcher with the closed set of known operators.
// To add an operator: implement Extractor and append a registration here.
func NewDispatcher(logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	petsud := NewPetSud(logger)
	pcr := NewPCR(logger)
	return &Dispatcher{regs: []registration{
		{"YPF S.A.", NewYPF(logger)},
		{"PLUSPETROL", NewPluspetrol(logger)},
		{"PETRÓLEOS SUDAMERICANOS", petsud},
		{"PETROLEOS SUDAMERICANOS", petsud}, // unaccented alias
		{"ACONCAGUA ENERGIA", NewAconcagua(logger)},
		{"PCR", pcr},
		{"COMODORO RIVADAVIA", pcr}, // alias of PCR
	}}
}

// Select returns the first registered extractor whose keyword appears in the
// document text, or false when the format is unrecognized. The caller must
// skip unrecognized documents rather than fail the batch.
func (d *Dispatcher) Select(text string) (Extractor, bool) {
	up := strings.ToUpper(text)
	for _, r := range d.regs {
		if strings.Contains(up, r.keyword) {
			return r.ext, true
		}
	}
	return nil, false
}
