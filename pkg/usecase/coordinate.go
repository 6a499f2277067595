package usecase

import "github.com/m-mizutani/pkgcoord/pkg/domain/model"

// BuildCoordinate assembles the coordinate of a package. A channel without a
// user is dropped so that the reported channel always matches the reference.
func BuildCoordinate(name string, version model.VersionSpec, channel model.Channel) model.PackageCoordinate {
	if channel.User == "" {
		channel.Name = ""
	}

	return model.PackageCoordinate{
		Name:    name,
		Version: version,
		Channel: channel,
	}
}
