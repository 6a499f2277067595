package model

import (
	"strconv"
	"strings"
)

// Output keys written to the version output, in declaration order
const (
	KeyPackageName          = "package_name"
	KeyPackageVersionFull   = "package_version_full"
	KeyPackageVersionLatest = "package_version_latest"
	KeyVersionFull          = "version_full"
	KeyVersionBase          = "version_base"
	KeyChannel              = "channel"
	KeyUser                 = "user"
	KeyIsReleaseBranch      = "is_release_branch"
)

// Field is a single key=value pair of a resolution
type Field struct {
	Key   string
	Value string
}

// IsFull reports whether the field carries build-specific (full) data
func (f Field) IsFull() bool {
	return strings.HasSuffix(f.Key, "_full")
}

// Resolution is the outcome of resolving one package for one CI invocation
type Resolution struct {
	Coordinate PackageCoordinate
	IsRelease  bool
}

// Fields returns the reported fields in their fixed order
func (r *Resolution) Fields() []Field {
	c := r.Coordinate
	return []Field{
		{Key: KeyPackageName, Value: c.Name},
		{Key: KeyPackageVersionFull, Value: c.Full()},
		{Key: KeyPackageVersionLatest, Value: c.Latest()},
		{Key: KeyVersionFull, Value: c.Version.Full()},
		{Key: KeyVersionBase, Value: c.Version.Base},
		{Key: KeyChannel, Value: c.Channel.Name},
		{Key: KeyUser, Value: c.Channel.User},
	}
}

// Variables returns the fields written to the version output. It extends
// Fields with the release branch marker.
func (r *Resolution) Variables() []Field {
	return append(r.Fields(), Field{
		Key:   KeyIsReleaseBranch,
		Value: strconv.FormatBool(r.Coordinate.Channel.IsReleaseBranch),
	})
}
