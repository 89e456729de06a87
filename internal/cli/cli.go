// Package cli implements zcampus's command-line subcommands.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/zarlcorp/zcampus/internal/identity"
	"github.com/zarlcorp/zcampus/internal/university"
)

// ErrUsage is wrapped by errors caused by bad arguments.
var ErrUsage = errors.New("usage")

// Runner executes subcommands against a shared generator and catalog.
type Runner struct {
	Out     io.Writer
	Gen     *identity.Generator
	Catalog *university.Catalog
	// Count is the default number of sample rows.
	Count int
}

// LoadCatalog loads the catalog at path. Absent and unreadable catalogs
// both return nil so callers fall back to generic domains; only the
// unreadable case is logged as a warning.
func LoadCatalog(path string) *university.Catalog {
	c, ok, err := university.LoadPath(path)
	if err != nil {
		slog.Warn("catalog unreadable, using generic domains", "path", path, "err", err)
		return nil
	}
	if !ok {
		slog.Debug("no catalog, using generic domains", "path", path)
		return nil
	}
	slog.Debug("catalog loaded", "path", path, "universities", c.Len(), "files", len(c.Sources))
	return c
}

// Sample prints demo rows: sample [-n N] [--json].
func (r *Runner) Sample(args []string) error {
	pos, flags, err := splitArgs(args, "-n")
	if err != nil {
		return err
	}
	if len(pos) > 0 {
		return fmt.Errorf("%w: zcampus sample [-n N] [--json]", ErrUsage)
	}

	n := r.Count
	if v, ok := flags["-n"]; ok {
		n, err = strconv.Atoi(v)
		if err != nil || n < 0 {
			return fmt.Errorf("%w: -n wants a non-negative number, got %q", ErrUsage, v)
		}
	}

	roster := r.Gen.Roster(r.Catalog, n)
	if _, ok := flags["--json"]; ok {
		return printJSON(r.Out, roster)
	}

	for i, s := range roster {
		fmt.Fprintln(r.Out, FormatRow(i+1, s))
	}
	return nil
}

// Identity prints one student: identity [--json] [--university NAME].
// Without --university the student is placed at a random catalog entry.
func (r *Runner) Identity(args []string) error {
	pos, flags, err := splitArgs(args, "--university")
	if err != nil {
		return err
	}
	if len(pos) > 0 {
		return fmt.Errorf("%w: zcampus identity [--json] [--university NAME]", ErrUsage)
	}

	var s identity.Student
	if name, ok := flags["--university"]; ok {
		s = r.Gen.Student(name)
	} else {
		s = r.Gen.Sample(r.Catalog)
	}

	if _, ok := flags["--json"]; ok {
		return printJSON(r.Out, s)
	}

	printStudent(r.Out, s)
	return nil
}

// Email prints one address: email FIRST LAST [UNIVERSITY...].
func (r *Runner) Email(args []string) error {
	pos, _, err := splitArgs(args)
	if err != nil {
		return err
	}
	if len(pos) < 2 {
		return fmt.Errorf("%w: zcampus email FIRST LAST [UNIVERSITY...]", ErrUsage)
	}

	uni := strings.Join(pos[2:], " ")
	fmt.Fprintln(r.Out, r.Gen.Email(pos[0], pos[1], uni))
	return nil
}

// Domain prints the resolved domain: domain UNIVERSITY... With --catalog
// the arguments filter the catalog and every match is resolved.
func (r *Runner) Domain(args []string) error {
	pos, flags, err := splitArgs(args)
	if err != nil {
		return err
	}

	query := strings.Join(pos, " ")

	if _, ok := flags["--catalog"]; ok {
		matches := r.Catalog.Search(query)
		if len(matches) == 0 {
			fmt.Fprintln(r.Out, "no matching universities")
			return nil
		}
		for _, u := range matches {
			fmt.Fprintf(r.Out, "  %-20s %s\n", r.Gen.Domain(u.Name), u.Name)
		}
		return nil
	}

	if query == "" {
		return fmt.Errorf("%w: zcampus domain [--catalog] UNIVERSITY...", ErrUsage)
	}

	fmt.Fprintln(r.Out, r.Gen.Domain(query))
	return nil
}

// FormatRow renders one demo line.
func FormatRow(i int, s identity.Student) string {
	return fmt.Sprintf("%d. %-25s | %s | %s | %-40s | %s",
		i,
		s.FullName,
		s.Gender,
		s.BirthDate,
		s.Email,
		s.University,
	)
}

func printStudent(w io.Writer, s identity.Student) {
	fmt.Fprintf(w, "  name:       %s\n", s.FullName)
	fmt.Fprintf(w, "  gender:     %s\n", s.Gender)
	fmt.Fprintf(w, "  dob:        %s\n", s.BirthDate)
	fmt.Fprintf(w, "  email:      %s\n", s.Email)
	fmt.Fprintf(w, "  university: %s\n", s.University)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// splitArgs separates positional arguments from flags. Flags named in
// valued take the next argument (or an =value suffix); other flags map to
// "". Flag names are matched case-insensitively.
func splitArgs(args []string, valued ...string) (pos []string, flags map[string]string, err error) {
	flags = make(map[string]string)

	for i := 0; i < len(args); i++ {
		a := args[i]
		if !strings.HasPrefix(a, "-") || a == "-" {
			pos = append(pos, a)
			continue
		}

		name, value, hasValue := strings.Cut(a, "=")
		name = strings.ToLower(name)

		if !hasFlag(valued, name) {
			flags[name] = value
			continue
		}

		if !hasValue {
			if i+1 >= len(args) {
				return nil, nil, fmt.Errorf("%w: %s needs a value", ErrUsage, name)
			}
			i++
			value = args[i]
		}
		flags[name] = value
	}

	return pos, flags, nil
}

func hasFlag(args []string, flag string) bool {
	for _, a := range args {
		if strings.EqualFold(a, flag) {
			return true
		}
	}
	return false
}
