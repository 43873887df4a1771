// Package sourcefile reads dotenv definition files as numbered lines.
//
// A missing file is not an error unless Options.Required is set.
//
// Example:
//
//	lines, found, err := sourcefile.Read("/srv/app/.env", sourcefile.Options{})
package sourcefile
