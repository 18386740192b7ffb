package constants

// DocStatus is the terminal state of one document in an ingestion run.
type DocStatus string

// Stable values (these exact strings appear in run logs).
const (
	DocStatusPersisted        DocStatus = "PERSISTED"         // new record committed
	DocStatusDuplicate        DocStatus = "DUPLICATE"         // incident_id already stored
	DocStatusUnrecognized     DocStatus = "UNRECOGNIZED"      // no operator keyword matched
	DocStatusExtractionFailed DocStatus = "EXTRACTION_FAILED" // no incident identifier found
	DocStatusErrored          DocStatus = "ERRORED"           // text source or store failure
)
