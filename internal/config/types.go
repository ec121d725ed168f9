package config

// Project types understood by the generator.
const (
	TypeExecutable = "executable"
	TypeLibrary    = "library"
)

// DefaultStandard is the C++ standard used when neither flag nor config sets one.
const DefaultStandard = 17

// SupportedStandards lists the values accepted for CMAKE_CXX_STANDARD.
var SupportedStandards = []int{11, 14, 17, 20, 23}

// Config holds user defaults read from the YAML config file. Command-line
// flags always win over these values.
//
// Example:
//
//	author: Jane Doe
//	cxx_standard: 20
//	project_type: library
//	tests: true
//	git:
//	  commit: true
//	  message: "chore: scaffold"
//	extra_packages: [clang-format, ccache]
//	skip: ["docs/**"]
//	gitignore_extra: [".cache/"]
type Config struct {
	Author         string    `yaml:"author"`
	CXXStandard    int       `yaml:"cxx_standard"`
	ProjectType    string    `yaml:"project_type"`
	Tests          *bool     `yaml:"tests"`     // nil means "not set", tests default to on
	Generator      string    `yaml:"generator"` // cmake -G value; empty picks Ninja when available
	Git            GitConfig `yaml:"git"`
	ExtraPackages  []string  `yaml:"extra_packages"`  // appended to the toolchain package list
	Skip           []string  `yaml:"skip"`            // doublestar globs of template paths not to write
	GitignoreExtra []string  `yaml:"gitignore_extra"` // extra lines appended to .gitignore
}

// GitConfig controls repository initialization.
type GitConfig struct {
	Commit  bool   `yaml:"commit"`
	Message string `yaml:"message"`
}

// TestsEnabled resolves the optional tests setting.
func (c Config) TestsEnabled() bool {
	return c.Tests == nil || *c.Tests
}
