package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidDepType is returned when a dependency type name is not recognized.
	ErrInvalidDepType = zerr.New("invalid dependency type, expected one of: all, build, exec, test")

	// ErrInvalidAction is returned when an action name is not recognized.
	ErrInvalidAction = zerr.New(
		"invalid action, expected one of: print, colcon-ignore, catkin-ignore, ament-ignore, remove",
	)

	// ErrInvalidReportFormat is returned when a report format is not recognized.
	ErrInvalidReportFormat = zerr.New("invalid report format, expected one of: text, json, yaml")

	// ErrUpstreamRequired is returned when no upstream path was given.
	ErrUpstreamRequired = zerr.New("an upstream path is required")

	// ErrConflictingTargets is returned when both workspaces and packages are requested.
	ErrConflictingTargets = zerr.New("workspaces and packages cannot be combined")

	// ErrEmptyWorkspace is returned when the kept set is empty, which would mark every
	// upstream package as unused.
	ErrEmptyWorkspace = zerr.New("the filtered workspace is empty, this would remove all packages")

	// ErrPathResolveFailed is returned when a path cannot be made absolute.
	ErrPathResolveFailed = zerr.New("failed to resolve path")

	// ErrScanFailed is returned when a directory cannot be enumerated.
	ErrScanFailed = zerr.New("failed to scan directory")

	// ErrInvalidExcludePattern is returned when an exclude pattern is not a valid glob.
	ErrInvalidExcludePattern = zerr.New("invalid exclude pattern")

	// ErrManifestOpenFailed is returned when a manifest file cannot be opened.
	ErrManifestOpenFailed = zerr.New("failed to open manifest")

	// ErrManifestMissingRoot is returned when a manifest contains no root element.
	ErrManifestMissingRoot = zerr.New("manifest has no root element")

	// ErrManifestInvalidRoot is returned when the root element is not <package>.
	ErrManifestInvalidRoot = zerr.New("manifest root element must be <package>")

	// ErrManifestMissingName is returned when a manifest has no <name> element.
	ErrManifestMissingName = zerr.New("manifest has no <name> element")

	// ErrManifestDuplicateName is returned when a manifest has more than one <name> element.
	ErrManifestDuplicateName = zerr.New("manifest has more than one <name> element")

	// ErrManifestNestedElement is returned when a recognized element contains child elements.
	ErrManifestNestedElement = zerr.New("manifest element must not contain child elements")

	// ErrManifestEmptyElement is returned when a recognized element has no text.
	ErrManifestEmptyElement = zerr.New("manifest element must not be empty")

	// ErrManifestMalformed is returned when a manifest is not well-formed XML.
	ErrManifestMalformed = zerr.New("malformed manifest")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrFingerprintMismatch is returned when the computed fingerprint differs from the expected one.
	ErrFingerprintMismatch = zerr.New("unused package set does not match the expected fingerprint")

	// ErrHashFailed is returned when a fingerprint cannot be computed.
	ErrHashFailed = zerr.New("failed to compute fingerprint")

	// ErrMarkerCreateFailed is returned when an ignore marker cannot be created.
	ErrMarkerCreateFailed = zerr.New("failed to create ignore marker")

	// ErrRemoveFailed is returned when a package directory cannot be removed.
	ErrRemoveFailed = zerr.New("failed to remove package directory")

	// ErrUnsafeRemovalPath is returned when a package path is empty, relative or a file system root.
	ErrUnsafeRemovalPath = zerr.New("refusing to act on unsafe path")

	// ErrReportRenderFailed is returned when a report cannot be written.
	ErrReportRenderFailed = zerr.New("failed to render report")
)
