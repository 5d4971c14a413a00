package procsnap

import (
	"os/user"
	"strconv"

	"github.com/portkit/whoport/pkg/model"
)

// Usernames resolves UIDs against the system user database, caching
// lookups for the lifetime of one snapshot. A UID with no mapping (deleted
// user, container UID mismatch) resolves to the unknown sentinel.
type Usernames struct {
	cache map[int]string
}

func NewUsernames() *Usernames {
	return &Usernames{cache: make(map[int]string)}
}

func (u *Usernames) Lookup(uid int) string {
	if uid == model.UIDNone {
		return model.Unknown
	}
	if name, ok := u.cache[uid]; ok {
		return name
	}

	name := model.Unknown
	if usr, err := user.LookupId(strconv.Itoa(uid)); err == nil {
		name = usr.Username
	}
	u.cache[uid] = name
	return name
}
