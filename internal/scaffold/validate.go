package scaffold

import (
	"os"
	"regexp"
	"strings"

	"gitlab.com/tozd/go/errors"
)

var nameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

// ErrNotDirectory is returned when the target path exists but is not a directory.
var ErrNotDirectory = errors.New("target exists and is not a directory")

// cxxKeywords cannot be used as a namespace or GoogleTest suite name.
var cxxKeywords = map[string]bool{
	"alignas": true, "alignof": true, "and": true, "and_eq": true, "asm": true,
	"auto": true, "bitand": true, "bitor": true, "bool": true, "break": true,
	"case": true, "catch": true, "char": true, "char8_t": true, "char16_t": true,
	"char32_t": true, "class": true, "compl": true, "concept": true, "const": true,
	"consteval": true, "constexpr": true, "constinit": true, "const_cast": true, "continue": true,
	"co_await": true, "co_return": true, "co_yield": true, "decltype": true, "default": true,
	"delete": true, "do": true, "double": true, "dynamic_cast": true, "else": true,
	"enum": true, "explicit": true, "export": true, "extern": true, "false": true,
	"float": true, "for": true, "friend": true, "goto": true, "if": true,
	"inline": true, "int": true, "long": true, "mutable": true, "namespace": true,
	"new": true, "noexcept": true, "not": true, "not_eq": true, "nullptr": true,
	"operator": true, "or": true, "or_eq": true, "private": true, "protected": true,
	"public": true, "register": true, "reinterpret_cast": true, "requires": true, "return": true,
	"short": true, "signed": true, "sizeof": true, "static": true, "static_assert": true,
	"static_cast": true, "struct": true, "switch": true, "template": true, "this": true,
	"thread_local": true, "throw": true, "true": true, "try": true, "typedef": true,
	"typeid": true, "typename": true, "union": true, "unsigned": true, "using": true,
	"virtual": true, "void": true, "volatile": true, "wchar_t": true, "while": true,
	"xor": true, "xor_eq": true,
}

// cmakeReserved are target names CMake keeps for itself (policy CMP0037).
var cmakeReserved = map[string]bool{
	"all": true, "clean": true, "help": true, "install": true, "test": true,
	"package": true, "package_source": true, "edit_cache": true, "rebuild_cache": true,
	"list_install_components": true, "ALL_BUILD": true, "ZERO_CHECK": true,
	"RUN_TESTS": true, "INSTALL": true, "PACKAGE": true,
}

// ValidateName checks that name can be used as a CMake project and target
// and, after Identifier, as a C++ namespace.
func ValidateName(name string) error {
	if name == "" {
		return errors.New("project name is empty")
	}
	if !nameRe.MatchString(name) {
		return errors.Errorf("invalid project name %q: use letters, digits, '_' or '-', not starting with a digit", name)
	}
	if ident := Identifier(name); cxxKeywords[ident] {
		return errors.Errorf("invalid project name %q: %s is a C++ keyword", name, ident)
	}
	if cmakeReserved[name] || cmakeReserved[Identifier(name)] {
		return errors.Errorf("invalid project name %q: reserved CMake target name", name)
	}
	return nil
}

// Identifier turns a project name into a C++ identifier.
func Identifier(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

// PrepareDir makes sure dir is a usable project root, creating it if needed.
// It reports whether the directory already existed.
func PrepareDir(dir string, dryRun bool) (bool, error) {
	info, err := os.Stat(dir)
	switch {
	case err == nil && !info.IsDir():
		return true, errors.Errorf("%s: %w", dir, ErrNotDirectory)
	case err == nil:
		return true, nil
	case !os.IsNotExist(err):
		return false, errors.Errorf("checking %s: %w", dir, err)
	}

	if dryRun {
		return false, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false, errors.Errorf("creating %s: %w", dir, err)
	}
	return false, nil
}
