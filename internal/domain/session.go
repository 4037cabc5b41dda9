package domain

// MountState tracks a mount session through its lifecycle.
type MountState int

const (
	MountIdle MountState = iota
	MountProbing
	MountMounting
	MountVerifying
	MountMounted
	MountUnmounting
	MountRollingBack
	MountFailed
)

func (s MountState) String() string {
	switch s {
	case MountIdle:
		return "idle"
	case MountProbing:
		return "probing"
	case MountMounting:
		return "mounting"
	case MountVerifying:
		return "verifying"
	case MountMounted:
		return "mounted"
	case MountUnmounting:
		return "unmounting"
	case MountRollingBack:
		return "rolling back"
	case MountFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// MountSession is the record of one established (or in-progress) SSHFS mount.
// A session is exclusively owned by the invocation that created it.
type MountSession struct {
	RemoteRoot string
	MountPoint string
	Transport  Transport
	Sudo       bool
	State      MountState
}
