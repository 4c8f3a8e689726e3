package module

import (
	"context"

	channelsdom "medlens/internal/services/api/channels/domain"
	channelssvc "medlens/internal/services/api/channels/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptChannelsPort adapts the channels service to the domain port interface
type adaptChannelsPort struct{ svc channelssvc.Service }

// List implements the domain ServicePort interface
func (a adaptChannelsPort) List(ctx context.Context, in channelsdom.ListInput) ([]channelsdom.Channel, error) {
	return a.svc.List(ctx, in)
}

// ByName implements the domain ServicePort interface
func (a adaptChannelsPort) ByName(ctx context.Context, name string) (channelsdom.Channel, error) {
	return a.svc.ByName(ctx, name)
}

// Activity implements the domain ServicePort interface
func (a adaptChannelsPort) Activity(ctx context.Context, name string, in channelsdom.ActivityInput) ([]channelsdom.ActivityPoint, error) {
	return a.svc.Activity(ctx, name, in)
}

// Stats implements the domain ServicePort interface
func (a adaptChannelsPort) Stats(ctx context.Context, name string, in channelsdom.StatsInput) (channelsdom.Stats, error) {
	return a.svc.Stats(ctx, name, in)
}

// Compare implements the domain ServicePort interface
func (a adaptChannelsPort) Compare(ctx context.Context, name string, in channelsdom.CompareInput) (channelsdom.Comparison, error) {
	return a.svc.Compare(ctx, name, in)
}
