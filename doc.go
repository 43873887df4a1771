// Package dotenv loads name=value definition files into the environment.
//
// Quick Start:
//
//	loaded, err := dotenv.New("/srv/app", dotenv.Options{}).Load()
//
// File format, one assignment per line:
//
//	# full-line comment
//	export HOST=localhost
//	PORT=8080 # trailing comment (unquoted values only)
//	GREETING="hello world"
//	QUOTED='it\'s'
//	DATA_DIR=${HOME}/data
//
// Unquoted values may not contain whitespace. ${NAME} references are
// resolved against the namespace at the time the line is read, so earlier
// lines are visible to later ones. Existing non-empty values are never
// overwritten, independently in each of the namespace's three views.
//
// See example_test.go for detailed usage.
package dotenv
