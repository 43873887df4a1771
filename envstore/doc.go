// Package envstore provides key/value views for loaded variables.
//
// Process reads and writes the process environment table. Map is an
// in-memory store for process-scoped values. Filter scans KEY=VALUE pairs
// such as os.Environ() by prefix.
//
// Example:
//
//	ns := &dotenv.Namespace{
//	    Primary:   envstore.NewMap(),
//	    Secondary: envstore.NewMap(),
//	    Process:   envstore.Process{},
//	}
package envstore
