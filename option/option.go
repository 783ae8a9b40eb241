// Package option implements the process-wide mutable configuration bag from
// SPEC_FULL.md §3.6 / spec.md §5 ("Option state"): nested bootstrapping
// operations save the previous bag, install a new one, and restore it on
// every exit path via a scoped acquire/release protocol.
//
// Grounded on hemanta212-scaf's config.go (a YAML-backed settings struct
// with an upward directory search for its file) generalized from "database
// connection settings" to "engine tuning knobs", and on spec.md §4.7's
// open_block/close_block counted-push/pop discipline, which Acquire/release
// mirrors at the bag level instead of the using-stack level.
package option

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Bag holds the tunable engine-wide settings. The zero value is not
// Defaults(): its window bounds are 0 and its flags are false.
type Bag struct {
	// The fields below are stored, loaded and installed by this package;
	// no other package of this module reads them.

	// FastIntLo/FastIntHi describe the element factory's fast-path integer
	// window (the parameters of element.NewFactoryWithWindow).
	FastIntLo int64 `yaml:"fast_int_lo"`
	FastIntHi int64 `yaml:"fast_int_hi"`

	// IncludeBuiltins names the choice of whether a freshly created
	// vocabulary starts with nat/int/real/char/string; the
	// vocabulary.Engine.NewVocabulary flag is passed separately.
	IncludeBuiltins bool `yaml:"include_builtins"`

	// StrictArity names strict argument-count checking; sort derivation
	// does not consult it.
	StrictArity bool `yaml:"strict_arity"`

	// Verbose names informational (DerivedVarSort-style) diagnostics; sort
	// derivation does not consult it and reports no such diagnostics.
	Verbose bool `yaml:"verbose"`
}

// Defaults returns the engine's default option bag.
func Defaults() Bag {
	return Bag{
		FastIntLo:       -128,
		FastIntHi:       1024,
		IncludeBuiltins: true,
		StrictArity:     true,
		Verbose:         false,
	}
}

var current = Defaults()

// Current returns the currently installed bag.
func Current() Bag {
	return current
}

// Acquire installs bag as the current one and returns a release func that
// restores the previous bag. Callers must defer the release on every exit
// path, matching spec §5's "acquire on entry, guaranteed release on every
// exit path including error":
//
//	release := option.Acquire(tmp)
//	defer release()
func Acquire(bag Bag) (release func()) {
	prev := current
	current = bag
	return func() { current = prev }
}

// DefaultConfigNames are the filenames searched for by Find, in order.
var DefaultConfigNames = []string{".idp.yaml", ".idp.yml", "idp.yaml", "idp.yml"}

// Find searches for a config file starting from dir and walking up to the
// filesystem root, mirroring hemanta212-scaf's config.go FindConfig.
func Find(dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for d := absDir; ; {
		for _, name := range DefaultConfigNames {
			path := filepath.Join(d, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}

		parent := filepath.Dir(d)
		if parent == d {
			return "", ErrConfigNotFound
		}
		d = parent
	}
}

// Load finds and loads the nearest config file walking up from dir. Missing
// fields fall back to Defaults().
func Load(dir string) (Bag, error) {
	path, err := Find(dir)
	if err != nil {
		return Bag{}, err
	}
	return LoadFile(path)
}

// LoadFile loads a Bag from a specific YAML file, starting from Defaults()
// so a partial file only overrides the fields it sets.
func LoadFile(path string) (Bag, error) {
	bag := Defaults()

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Bag{}, err
	}

	if err := yaml.Unmarshal(data, &bag); err != nil {
		return Bag{}, err
	}

	return bag, nil
}
