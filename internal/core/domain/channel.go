package domain

// Channel is the release-stability designation controlling version-string
// formatting. Any value other than the three named channels behaves as a
// development build.
type Channel string

const (
	ChannelStable  Channel = "stable"
	ChannelBeta    Channel = "beta"
	ChannelNightly Channel = "nightly"
	ChannelDev     Channel = "dev"
)

// UnstableFeatures reports whether unstable features should be enabled for
// the compiler being built on this channel.
func (c Channel) UnstableFeatures() bool {
	switch c {
	case ChannelStable, ChannelBeta:
		return false
	default:
		return true
	}
}
