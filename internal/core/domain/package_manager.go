package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// PackageManagerKind identifies a JavaScript package manager dialect.
type PackageManagerKind int

const (
	// Npm is the npm package manager.
	Npm PackageManagerKind = iota
	// Yarn is the yarn package manager.
	Yarn
	// Pnpm is the pnpm package manager.
	Pnpm
	// Bun is the bun runtime's package manager.
	Bun
)

// PackageManagerKinds lists every supported kind in detection order.
var PackageManagerKinds = []PackageManagerKind{Npm, Yarn, Pnpm, Bun}

// String returns the lower-case executable name of the kind.
func (k PackageManagerKind) String() string {
	return k.Executable()
}

// LockfileNames returns the lockfile file names produced by the kind.
func (k PackageManagerKind) LockfileNames() []string {
	switch k {
	case Npm:
		return []string{"package-lock.json"}
	case Yarn:
		return []string{"yarn.lock"}
	case Pnpm:
		return []string{"pnpm-lock.yaml"}
	case Bun:
		return []string{"bun.lockb"}
	default:
		return nil
	}
}

// Executable returns the name of the package manager binary.
func (k PackageManagerKind) Executable() string {
	switch k {
	case Npm:
		return "npm"
	case Yarn:
		return "yarn"
	case Pnpm:
		return "pnpm"
	case Bun:
		return "bun"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// InstallSubcommand returns the subcommand that materializes dependencies.
func (k PackageManagerKind) InstallSubcommand() string {
	return "install"
}

// CorepackName returns the name under which corepack registers the kind.
// Bun is not corepack-registered.
func (k PackageManagerKind) CorepackName() (string, bool) {
	switch k {
	case Npm:
		return "npm", true
	case Yarn:
		return "yarn", true
	case Pnpm:
		return "pnpm", true
	case Bun:
		return "", false
	default:
		return "", false
	}
}

// SupportsNegation reports whether workspace patterns may be negated with "!".
func (k PackageManagerKind) SupportsNegation() bool {
	switch k {
	case Npm, Pnpm:
		return true
	case Yarn, Bun:
		return false
	default:
		return false
	}
}

// ParsePackageManagerKind maps an executable name to its kind.
func ParsePackageManagerKind(name string) (PackageManagerKind, bool) {
	for _, k := range PackageManagerKinds {
		if k.Executable() == name {
			return k, true
		}
	}
	return Npm, false
}

var corepackPattern = func() *regexp.Regexp {
	names := make([]string, 0, len(PackageManagerKinds))
	for _, k := range PackageManagerKinds {
		if name, ok := k.CorepackName(); ok {
			names = append(names, regexp.QuoteMeta(name))
		}
	}
	return regexp.MustCompile(`^(` + strings.Join(names, "|") + `)(?:@.*)?$`)
}()

// ResolveKind applies a manifest "packageManager" declaration
// ("name" or "name@version[+integrity]") on top of the detected kind.
// Unrecognized declarations keep the detected kind.
func ResolveKind(packageManager string, detected PackageManagerKind) PackageManagerKind {
	m := corepackPattern.FindStringSubmatch(packageManager)
	if m == nil {
		return detected
	}
	for _, k := range PackageManagerKinds {
		if name, ok := k.CorepackName(); ok && name == m[1] {
			return k
		}
	}
	return detected
}
