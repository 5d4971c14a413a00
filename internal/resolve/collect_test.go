package resolve

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portkit/whoport/pkg/model"
)

func TestRunJoinsBothEnumerations(t *testing.T) {
	cfg := Config{
		Sockets: func() ([]model.Socket, error) {
			return []model.Socket{
				{Proto: model.ProtoTCP, LocalAddr: "127.0.0.1", LocalPort: 8080, State: "LISTEN", Key: "i1", UID: model.UIDNone},
			}, nil
		},
		Processes: func() ([]model.Process, error) {
			return []model.Process{
				{PID: 42, UID: 1000, Name: "webapp", Keys: []string{"i1"}},
			}, nil
		},
		LookupUser: func(uid int) string { return "dev" },
	}

	records, err := Run(cfg)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "42", records[0].Process.PID)
	assert.Equal(t, "webapp", records[0].Process.Name)
	assert.Equal(t, "dev", records[0].Process.User)
}

func TestRunSocketSourceFailureIsFatal(t *testing.T) {
	unavailable := errors.New("socket tables unavailable")
	cfg := Config{
		Sockets:   func() ([]model.Socket, error) { return nil, unavailable },
		Processes: func() ([]model.Process, error) { return nil, nil },
	}

	_, err := Run(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, unavailable)
	assert.Contains(t, err.Error(), "enumerate sockets")
}

func TestRunProcessSourceFailureIsFatal(t *testing.T) {
	unavailable := errors.New("process table unavailable")
	cfg := Config{
		Sockets:   func() ([]model.Socket, error) { return nil, nil },
		Processes: func() ([]model.Process, error) { return nil, unavailable },
	}

	_, err := Run(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, unavailable)
	assert.Contains(t, err.Error(), "enumerate processes")
}

func TestRunEmptySnapshotsYieldEmptyRecords(t *testing.T) {
	cfg := Config{
		Sockets:   func() ([]model.Socket, error) { return nil, nil },
		Processes: func() ([]model.Process, error) { return nil, nil },
	}

	records, err := Run(cfg)
	require.NoError(t, err)
	assert.Empty(t, records)
}
