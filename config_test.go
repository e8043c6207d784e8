package sonar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/outofforest/sonar/wire"
)

func TestTimeoutsPerKindClass(t *testing.T) {
	requireT := require.New(t)

	timeouts := Config{}.withDefaults().Timeouts

	requireT.Equal(4*time.Second, timeouts.forClass(wire.ClassOf(&wire.Ping{})))
	requireT.Equal(4*time.Second, timeouts.forClass(wire.ClassOf(&wire.Status{})))
	requireT.Equal(4*time.Second, timeouts.forClass(wire.ClassOf(&wire.GetTip{})))
	requireT.Equal(4*time.Second, timeouts.forClass(wire.ClassOf(&wire.GetHash{})))
	requireT.Equal(120*time.Second, timeouts.forClass(wire.ClassOf(&wire.GetBlocksByRange{})))
	requireT.Equal(120*time.Second, timeouts.forClass(wire.ClassOf(&wire.GetHeadersByRange{})))
	requireT.Equal(30*time.Second, timeouts.forClass(wire.ClassDefault))
}

func TestConfigKeepsExplicitValues(t *testing.T) {
	requireT := require.New(t)

	config := Config{
		MaxMessageSize:        512,
		MaxConcurrentHandlers: 2,
		MaxQueuedHandlers:     3,
		AdmissionTimeout:      time.Second,
		MaxPendingRequests:    5,
		Timeouts: Timeouts{
			Light:   time.Second,
			Default: 2 * time.Second,
			Bulk:    3 * time.Second,
		},
	}.withDefaults()

	requireT.Equal(uint64(512), config.MaxMessageSize)
	requireT.Equal(2, config.MaxConcurrentHandlers)
	requireT.Equal(3, config.MaxQueuedHandlers)
	requireT.Equal(time.Second, config.AdmissionTimeout)
	requireT.Equal(5, config.MaxPendingRequests)
	requireT.Equal(time.Second, config.Timeouts.Light)
	requireT.Equal(2*time.Second, config.Timeouts.Default)
	requireT.Equal(3*time.Second, config.Timeouts.Bulk)
}
