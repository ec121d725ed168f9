package pkgmgr

// Tool is a toolchain concept that maps to different package names per distro.
type Tool string

const (
	Compiler Tool = "compiler"
	CMake    Tool = "cmake"
	Git      Tool = "git"
	Ninja    Tool = "ninja"
	GTest    Tool = "gtest"
)

// Toolchain is everything a freshly generated project needs to configure,
// build and run its tests.
var Toolchain = []Tool{Compiler, CMake, Git, Ninja, GTest}

// Manager describes one OS package manager.
type Manager struct {
	Name   string // Short name used by --manager, e.g. "apt"
	Binary string // Executable looked up on PATH
	Sudo   bool   // Needs root to install
	// Refresh, when set, updates the package index before installing.
	Refresh []string
	// installArgs builds the argv (without the binary) for installing pkgs.
	installArgs func(yes bool, pkgs []string) []string
	Packages    map[Tool][]string
}

// InstallArgs returns the arguments passed to Binary to install pkgs.
func (m *Manager) InstallArgs(yes bool, pkgs []string) []string {
	return m.installArgs(yes, pkgs)
}

// simpleInstall covers managers spelled "<bin> install [-y] pkgs...".
func simpleInstall(yesFlag string) func(bool, []string) []string {
	return func(yes bool, pkgs []string) []string {
		args := []string{"install"}
		if yes && yesFlag != "" {
			args = append(args, yesFlag)
		}
		return append(args, pkgs...)
	}
}

var (
	apt = &Manager{
		Name:        "apt",
		Binary:      "apt-get",
		Sudo:        true,
		Refresh:     []string{"update"},
		installArgs: simpleInstall("-y"),
		Packages: map[Tool][]string{
			Compiler: {"build-essential"},
			CMake:    {"cmake"},
			Git:      {"git"},
			Ninja:    {"ninja-build"},
			GTest:    {"libgtest-dev"},
		},
	}

	dnf = &Manager{
		Name:        "dnf",
		Binary:      "dnf",
		Sudo:        true,
		installArgs: simpleInstall("-y"),
		Packages: map[Tool][]string{
			Compiler: {"gcc-c++", "make"},
			CMake:    {"cmake"},
			Git:      {"git"},
			Ninja:    {"ninja-build"},
			GTest:    {"gtest-devel"},
		},
	}

	yum = &Manager{
		Name:        "yum",
		Binary:      "yum",
		Sudo:        true,
		installArgs: simpleInstall("-y"),
		Packages:    dnf.Packages,
	}

	pacman = &Manager{
		Name:   "pacman",
		Binary: "pacman",
		Sudo:   true,
		installArgs: func(yes bool, pkgs []string) []string {
			args := []string{"-S", "--needed"}
			if yes {
				args = append(args, "--noconfirm")
			}
			return append(args, pkgs...)
		},
		Packages: map[Tool][]string{
			Compiler: {"base-devel"},
			CMake:    {"cmake"},
			Git:      {"git"},
			Ninja:    {"ninja"},
			GTest:    {"gtest"},
		},
	}

	zypper = &Manager{
		Name:   "zypper",
		Binary: "zypper",
		Sudo:   true,
		installArgs: func(yes bool, pkgs []string) []string {
			// --non-interactive is a global option and must precede the command
			var args []string
			if yes {
				args = append(args, "--non-interactive")
			}
			return append(append(args, "install"), pkgs...)
		},
		Packages: map[Tool][]string{
			Compiler: {"gcc-c++", "make"},
			CMake:    {"cmake"},
			Git:      {"git"},
			Ninja:    {"ninja"},
			GTest:    {"gtest"},
		},
	}

	// The compiler ships with the Xcode command line tools, not Homebrew.
	brew = &Manager{
		Name:        "brew",
		Binary:      "brew",
		installArgs: simpleInstall(""),
		Packages: map[Tool][]string{
			CMake: {"cmake"},
			Git:   {"git"},
			Ninja: {"ninja"},
			GTest: {"googletest"},
		},
	}
)

// linuxOrder is the detection order on non-darwin systems. dnf comes before
// yum because modern Fedora/RHEL ship a yum compatibility shim.
var linuxOrder = []*Manager{apt, dnf, yum, pacman, zypper}

// All lists every known manager.
var All = []*Manager{apt, dnf, yum, pacman, zypper, brew}
