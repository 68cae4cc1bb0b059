package db

import "context"

// ProbeStatus is the outcome of a database capability probe.
type ProbeStatus string

const (
	ProbeAvailable   ProbeStatus = "available"
	ProbeUnavailable ProbeStatus = "unavailable"
	ProbeError       ProbeStatus = "error"
)

// ProbeResult reports whether the optional database dependency can be
// reached. Connected distinguishes "connected but a follow-up query
// failed" from "never connected".
type ProbeResult struct {
	Status    ProbeStatus
	Connected bool
	Err       string
	Tables    []string
}

// Probe checks the optional database dependency without ever failing the
// caller: an unset connection string reports unavailable, and any
// connection or query failure is captured as a message on the result.
func Probe(ctx context.Context, connectionString string) ProbeResult {
	if connectionString == "" {
		return ProbeResult{Status: ProbeUnavailable}
	}

	database, err := New(ctx, connectionString)
	if err != nil {
		return ProbeResult{Status: ProbeError, Err: err.Error()}
	}
	defer database.Close()

	tables, err := database.ListTables(ctx, 10)
	if err != nil {
		return ProbeResult{Status: ProbeError, Connected: true, Err: err.Error()}
	}
	return ProbeResult{Status: ProbeAvailable, Connected: true, Tables: tables}
}
