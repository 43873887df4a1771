package dotenv

import (
	"fmt"

	"github.com/Azhovan/dotenv/envstore"
)

// Store is a single key/value view of the environment namespace.
type Store interface {
	// Lookup returns the value for name and whether it is present.
	Lookup(name string) (string, bool)

	// Set assigns value to name.
	Set(name, value string) error
}

// Namespace groups the three independent views loaded variables are written to.
// Nil views are skipped.
//
// The loader assumes a single writer: checking a view and then writing it is
// not atomic, so Load must not run concurrently against the same Namespace.
type Namespace struct {
	Primary   Store // Consulted first when resolving references
	Secondary Store // Consulted second
	Process   Store // Generic environment table, consulted last
}

var defaultNamespace = &Namespace{
	Primary:   envstore.NewMap(),
	Secondary: envstore.NewMap(),
	Process:   envstore.Process{},
}

// DefaultNamespace returns the process-wide namespace: two in-memory stores
// shared by every default Loader, plus the process environment table.
func DefaultNamespace() *Namespace {
	return defaultNamespace
}

// Store returns the store for a view, or nil.
func (ns *Namespace) Store(v View) Store {
	switch v {
	case ViewPrimary:
		return ns.Primary
	case ViewSecondary:
		return ns.Secondary
	case ViewProcess:
		return ns.Process
	default:
		return nil
	}
}

// resolutionOrder is the order views are consulted by Get.
var resolutionOrder = [...]View{ViewPrimary, ViewSecondary, ViewProcess}

// Get returns the first non-empty value for name, checking Primary,
// then Secondary, then Process.
func (ns *Namespace) Get(name string) (string, bool) {
	for _, v := range resolutionOrder {
		store := ns.Store(v)
		if store == nil {
			continue
		}
		if value, ok := store.Lookup(name); ok && value != "" {
			return value, true
		}
	}
	return "", false
}

// SetIfEmpty writes value into every view that has no value, or only an
// empty one, for name. Each view is checked on its own, so a name already
// present in one view is still written to the others.
// It returns the views that were written.
func (ns *Namespace) SetIfEmpty(name, value string) ([]View, error) {
	var written []View

	for _, v := range resolutionOrder {
		store := ns.Store(v)
		if store == nil {
			continue
		}
		if current, ok := store.Lookup(name); ok && current != "" {
			continue
		}
		if err := store.Set(name, value); err != nil {
			return written, fmt.Errorf("set %s in %s view: %w", name, v, err)
		}
		written = append(written, v)
	}

	return written, nil
}
