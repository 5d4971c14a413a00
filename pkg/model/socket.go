package model

// Proto identifies the protocol and address family of a socket.
type Proto string

const (
	ProtoTCP  Proto = "TCP"
	ProtoTCP6 Proto = "TCP6"
	ProtoUDP  Proto = "UDP"
	ProtoUDP6 Proto = "UDP6"
)

// IPv6 reports whether the socket belongs to the IPv6 family.
func (p Proto) IPv6() bool {
	return p == ProtoTCP6 || p == ProtoUDP6
}

// UIDNone marks a socket whose table entry carries no owning UID.
const UIDNone = -1

// Socket is one entry of the kernel socket table, immutable once read.
//
// Key is the platform linking key: the socket inode on Linux, a synthetic
// per-connection handle elsewhere. OwnerPID is set only on platforms whose
// connection table reports the owner directly; 0 means "join via Key".
type Socket struct {
	Proto      Proto
	LocalAddr  string
	LocalPort  int
	RemoteAddr string
	RemotePort int
	State      string // LISTEN, ESTABLISHED, ...; empty when the platform reports none
	Key        string
	OwnerPID   int
	UID        int // owning UID from the socket table, UIDNone if not exposed
}
