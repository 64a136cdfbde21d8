// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package triangle

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	// Import Vulkan backend so it registers via init().
	_ "github.com/gogpu/wgpu/hal/vulkan"
)

// instanceFactory creates hal instances. hal backends and the noop API
// both satisfy it.
type instanceFactory interface {
	CreateInstance(desc *hal.InstanceDescriptor) (hal.Instance, error)
}

// openedDevice is the result of device bootstrap.
type openedDevice struct {
	instance hal.Instance
	device   hal.Device
	queue    hal.Queue
	adapter  string
}

// openDevice creates an instance for the given backend and opens the
// adapter preferred by pref.
func openDevice(backend gputypes.Backend, pref gputypes.PowerPreference) (*openedDevice, error) {
	api, ok := hal.GetBackend(backend)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, backend)
	}
	return openDeviceWith(api, pref)
}

// openDeviceWith runs instance -> adapter -> device on factory.
func openDeviceWith(factory instanceFactory, pref gputypes.PowerPreference) (*openedDevice, error) {
	instance, err := factory.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil, fmt.Errorf("create instance: %w", err)
	}

	adapters := instance.EnumerateAdapters(nil)
	selected := selectAdapter(adapters, pref)
	if selected == nil {
		instance.Destroy()
		return nil, ErrNoAdapter
	}

	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return nil, fmt.Errorf("open device: %w", err)
	}

	Logger().Info("triangle: adapter selected",
		"name", selected.Info.Name,
		"type", selected.Info.DeviceType,
		"preference", pref)

	return &openedDevice{
		instance: instance,
		device:   openDev.Device,
		queue:    openDev.Queue,
		adapter:  selected.Info.Name,
	}, nil
}

// selectAdapter picks an adapter by power preference. High performance
// ranks discrete GPUs first, anything else ranks integrated GPUs first.
// Falls back to the first adapter; returns nil if there are none.
func selectAdapter(adapters []hal.ExposedAdapter, pref gputypes.PowerPreference) *hal.ExposedAdapter {
	if len(adapters) == 0 {
		return nil
	}

	order := []gputypes.DeviceType{gputypes.DeviceTypeIntegratedGPU, gputypes.DeviceTypeDiscreteGPU}
	if pref == gputypes.PowerPreferenceHighPerformance {
		order = []gputypes.DeviceType{gputypes.DeviceTypeDiscreteGPU, gputypes.DeviceTypeIntegratedGPU}
	}

	for _, want := range order {
		for i := range adapters {
			if adapters[i].Info.DeviceType == want {
				return &adapters[i]
			}
		}
	}
	return &adapters[0]
}
