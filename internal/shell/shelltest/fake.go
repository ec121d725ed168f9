// Package shelltest provides a scripted shell.Runner for tests.
package shelltest

import (
	"context"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// Call is one recorded invocation.
type Call struct {
	Dir  string
	Name string
	Args []string
}

// String renders the call the way it would be typed, e.g. "git init".
func (c Call) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// Result is the canned response for a command line.
type Result struct {
	Output string
	Err    error
}

// Fake records calls and answers from Results, keyed by Call.String().
// Binaries listed in Paths are "installed"; everything else fails LookPath.
type Fake struct {
	Calls   []Call
	Results map[string]Result
	Paths   map[string]string
	Root    bool
}

// New returns a Fake with the given binaries available on PATH.
func New(bins ...string) *Fake {
	f := &Fake{
		Results: map[string]Result{},
		Paths:   map[string]string{},
	}
	for _, b := range bins {
		f.Paths[b] = "/usr/bin/" + b
	}
	return f
}

// On scripts the response for an exact command line.
func (f *Fake) On(cmdline string, output string, err error) *Fake {
	f.Results[cmdline] = Result{Output: output, Err: err}
	return f
}

func (f *Fake) Run(_ context.Context, dir, name string, args ...string) ([]byte, error) {
	c := Call{Dir: dir, Name: name, Args: append([]string(nil), args...)}
	f.Calls = append(f.Calls, c)
	if r, ok := f.Results[c.String()]; ok {
		return []byte(r.Output), r.Err
	}
	return nil, nil
}

func (f *Fake) LookPath(name string) (string, error) {
	if p, ok := f.Paths[name]; ok {
		return p, nil
	}
	return "", errors.Errorf("%s not found on PATH", name)
}

func (f *Fake) IsRoot() bool {
	return f.Root
}

// Commands returns every recorded call as a command line.
func (f *Fake) Commands() []string {
	out := make([]string, 0, len(f.Calls))
	for _, c := range f.Calls {
		out = append(out, c.String())
	}
	return out
}
