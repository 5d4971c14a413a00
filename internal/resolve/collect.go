package resolve

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/portkit/whoport/internal/netstat"
	"github.com/portkit/whoport/internal/procsnap"
	"github.com/portkit/whoport/pkg/model"
)

// Config wires the two enumerators and the username lookup into one
// resolution pass. The zero value is not usable; call SystemConfig for the
// real platform sources, or inject synthetic ones in tests.
type Config struct {
	Sockets    func() ([]model.Socket, error)
	Processes  func() ([]model.Process, error)
	LookupUser func(int) string
}

// SystemConfig returns the platform enumerators and a cached user lookup.
func SystemConfig() Config {
	users := procsnap.NewUsernames()
	return Config{
		Sockets:    netstat.Sockets,
		Processes:  procsnap.Snapshot,
		LookupUser: users.Lookup,
	}
}

// Run executes one full resolution pass: both enumerations (concurrently,
// they share no state), then the link and merge. Either source failing
// entirely is fatal and names the source; per-entity failures have already
// degraded to unknown inside the enumerators.
func Run(cfg Config) ([]model.Record, error) {
	var (
		wg      sync.WaitGroup
		sockets []model.Socket
		procs   []model.Process
		sockErr error
		procErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		sockets, sockErr = cfg.Sockets()
	}()
	go func() {
		defer wg.Done()
		procs, procErr = cfg.Processes()
	}()
	wg.Wait()

	if sockErr != nil {
		return nil, fmt.Errorf("enumerate sockets: %w", sockErr)
	}
	if procErr != nil {
		return nil, fmt.Errorf("enumerate processes: %w", procErr)
	}

	log.Debug().
		Int("sockets", len(sockets)).
		Int("processes", len(procs)).
		Msg("snapshots collected")

	return Resolve(Snapshot{Sockets: sockets, Processes: procs}, cfg.LookupUser), nil
}
