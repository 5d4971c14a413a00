package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portkit/whoport/pkg/model"
)

func TestFilterPortMatchesLocalAndRemote(t *testing.T) {
	records := []model.Record{
		{Proto: model.ProtoTCP, LocalPort: 53},
		{Proto: model.ProtoTCP, LocalPort: 443, RemotePort: 53},
		{Proto: model.ProtoTCP, LocalPort: 8080, RemotePort: 443},
	}

	matched := FilterPort(records, 53)
	require.Len(t, matched, 2)
	assert.Equal(t, 53, matched[0].LocalPort)
	assert.Equal(t, 53, matched[1].RemotePort)
}

func TestFilterPortKeepsEveryProtocolOnSharedPort(t *testing.T) {
	records := []model.Record{
		{Proto: model.ProtoTCP, LocalPort: 53},
		{Proto: model.ProtoUDP, LocalPort: 53},
		{Proto: model.ProtoTCP6, LocalPort: 53},
	}

	matched := FilterPort(records, 53)
	require.Len(t, matched, 3, "same-port records must not be collapsed")
}

func TestFilterPortNoMatchIsEmptyNotError(t *testing.T) {
	records := []model.Record{
		{Proto: model.ProtoTCP, LocalPort: 80},
	}

	assert.Empty(t, FilterPort(records, 9999))
	assert.Empty(t, FilterPort(nil, 80))
}
