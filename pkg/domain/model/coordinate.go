package model

// PackageCoordinate identifies a package as name/version[@user/channel]
type PackageCoordinate struct {
	Name    string
	Version VersionSpec
	Channel Channel
}

// Full returns the reference carrying the full version, including build metadata
func (p PackageCoordinate) Full() string {
	return p.Name + "/" + p.Version.Full() + p.Channel.Suffix()
}

// Latest returns the reference carrying only the base version
func (p PackageCoordinate) Latest() string {
	return p.Name + "/" + p.Version.Base + p.Channel.Suffix()
}
