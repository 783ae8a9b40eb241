package option

import "errors"

// ErrConfigNotFound is returned when no .idp.yaml is found walking up from
// the search directory. Grounded on hemanta212-scaf's errors.go sentinel
// style (ErrConfigNotFound there, same name and shape here).
var ErrConfigNotFound = errors.New("idp: no .idp.yaml found")
