// Package app lists the modules that make up the site.
package app

import (
	"github.com/nfrund/ledgerline/internal/module"
	"github.com/nfrund/ledgerline/internal/modules/acknowledgement"
	"github.com/nfrund/ledgerline/internal/modules/leadcapture"
	"github.com/nfrund/ledgerline/internal/modules/livecontent"
	"github.com/nfrund/ledgerline/internal/modules/tracking"
)

// NewModules creates and returns the list of all active modules.
// This is the single source of truth for which features are enabled.
func NewModules(deps Dependencies) []module.Module {
	return []module.Module{
		livecontent.New(deps.Logger),
		tracking.New(trackingDeps(deps)),
		acknowledgement.New(acknowledgementDeps(deps)),
		leadcapture.New(leadCaptureDeps(deps)),
	}
}
