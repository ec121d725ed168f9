package main

import (
	"github.com/Fabio3rs/init-my-cpp-proj/cmd" // CLI commands and their execution logic
)

// main delegates to cmd.Execute, which parses the command line and runs the
// requested subcommand.
//
// init-cpp-proj is a one-shot generator for CMake based C++ projects:
//   - writes the directory layout, CMakeLists.txt, .gitignore, .clang-format,
//     README and placeholder sources, headers and GoogleTest tests
//   - never overwrites files that already exist unless --force is given, so
//     it can be re-run on a partially scaffolded tree
//   - optionally initializes git, installs the toolchain through the detected
//     OS package manager and runs the first cmake configure/build
//   - records what it generated in .init-cpp-proj.json so "status" can tell
//     which files were edited since
func main() {
	cmd.Execute()
}
