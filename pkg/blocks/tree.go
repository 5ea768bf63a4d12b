package blocks

import (
	"context"
	"fmt"

	"github.com/paragon0107/notive/pkg/notion"
	"golang.org/x/sync/errgroup"
)

// FanOut bounds how many siblings of one level are expanded at once.
const FanOut = 8

// FetchTree lists the direct children of rootID and hydrates them.
func FetchTree(ctx context.Context, api notion.API, rootID string) ([]notion.Block, error) {
	top, err := notion.ListAllChildren(ctx, api, rootID)

	if err != nil {
		return nil, fmt.Errorf("blocks: list children of %s: %w", rootID, err)
	}

	return Hydrate(ctx, api, top)
}

// Hydrate returns a copy of nodes where every block flagged with children has
// them fetched and hydrated recursively. Output order mirrors input order.
func Hydrate(ctx context.Context, api notion.API, nodes []notion.Block) ([]notion.Block, error) {
	out := make([]notion.Block, len(nodes))
	copy(out, nodes)

	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(FanOut)

	for i := range out {
		if !out[i].HasChildren {
			continue
		}

		group.Go(func() error {
			children, err := notion.ListAllChildren(gctx, api, out[i].ID)
			if err != nil {
				return fmt.Errorf("blocks: list children of %s: %w", out[i].ID, err)
			}

			hydrated, err := Hydrate(gctx, api, children)
			if err != nil {
				return err
			}

			out[i].Children = hydrated

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// Walk visits every node depth first, parents before children.
func Walk(nodes []notion.Block, visit func(notion.Block)) {
	for _, node := range nodes {
		visit(node)
		Walk(node.Children, visit)
	}
}
