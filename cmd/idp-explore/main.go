// Command idp-explore is a read-only terminal browser over a registry
// namespace tree: vocabularies, structures and theories loaded from
// files on the command line, walked the way cmd/crud-tui walks its
// posts/comments/replies, but over namespace/vocabulary/structure/
// theory bindings instead of CRUD records.
package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/KULeuven-KRR/idp-core/persist"
	"github.com/KULeuven-KRR/idp-core/registry"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "idp-explore: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	root, err := buildRoot(args)
	if err != nil {
		return err
	}

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		opts = append(opts, tea.WithInput(nil))
	}

	p := tea.NewProgram(newModel(root), opts...)
	_, err = p.Run()
	return err
}

// buildRoot loads every "vocab.yaml" argument as a vocabulary bound at
// the root namespace under its own declared name, and every
// "name=structure.yaml" argument as a structure bound to the
// already-loaded vocabulary called name.
func buildRoot(args []string) (*registry.Namespace, error) {
	root := registry.NewNamespace("", nil)

	if len(args) == 0 {
		return nil, fmt.Errorf("usage: idp-explore <vocab.yaml>... [<name>=<structure.yaml>]...")
	}

	for _, arg := range args {
		if name, path, ok := strings.Cut(arg, "="); ok {
			voc, ok := root.Vocabularies[name]
			if !ok {
				return nil, fmt.Errorf("structure %s: no vocabulary named %s loaded yet", path, name)
			}
			s, err := persist.LoadStructure(path, voc)
			if err != nil {
				return nil, fmt.Errorf("loading structure %s: %w", path, err)
			}
			if err := root.AddStructure(name, s); err != nil {
				return nil, err
			}
			continue
		}

		voc, err := persist.LoadVocabulary(arg)
		if err != nil {
			return nil, fmt.Errorf("loading vocabulary %s: %w", arg, err)
		}
		if err := root.AddVocabulary(voc.Name, voc); err != nil {
			return nil, err
		}
	}

	return root, nil
}
