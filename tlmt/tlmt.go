// Package tlmt defines the anonymous usage telemetry interface.
package tlmt

import (
	"context"
	"crypto/sha256"
	"fmt"
	"runtime"
	"sync"

	"github.com/google/uuid"
	"github.com/shirou/gopsutil/v4/host"
)

var (
	once       sync.Once
	identifier machineIdentifier
)

type Event struct {
	AnonymousID string
	Name        string
	Properties  map[string]any
}

func NewEvent(name string, props map[string]any) Event {
	machine := generateMachineID()

	ev := Event{
		AnonymousID: machine.id,
		Name:        name,
		Properties:  make(map[string]any, len(machine.meta)+len(props)),
	}

	for k, v := range machine.meta {
		ev.Properties[k] = v
	}

	for k, v := range props {
		ev.Properties[k] = v
	}

	return ev
}

type Telemetry interface {
	Send(ctx context.Context, event Event) error
	Close() error
}

type machineIdentifier struct {
	id   string
	meta map[string]any
}

// generateMachineID derives a stable anonymous id from the host id and the
// build environment. No network calls are made.
func generateMachineID() machineIdentifier {
	once.Do(func() {
		seed := uuid.New().String()

		meta := make(map[string]any)

		info, err := host.Info()
		if err == nil {
			if info.HostID != "" {
				seed = info.HostID
			}

			meta["os"] = info.OS
			meta["platform"] = info.Platform
			meta["platform_version"] = info.PlatformVersion
		}

		hash := sha256.New()
		hash.Write([]byte(seed))
		hash.Write([]byte(runtime.GOARCH))
		hash.Write([]byte(runtime.GOOS))
		hash.Write([]byte(runtime.Version()))

		identifier.id = fmt.Sprintf("%x", hash.Sum(nil))
		identifier.meta = meta
	})

	return identifier
}
