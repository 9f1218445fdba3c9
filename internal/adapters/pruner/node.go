package pruner

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wsprune/internal/adapters/logger"
	"go.trai.ch/wsprune/internal/core/ports"
)

// NodeID is the unique identifier for the pruner Graft node.
const NodeID graft.ID = "adapter.pruner"

func init() {
	graft.Register(graft.Node[ports.Pruner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Pruner, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewPruner(log), nil
		},
	})
}
