// Package refdata supplies the reference-data collections the wizard
// consumes: assets, groups, users, suppliers, templates, categories.
//
// A failed fetch never blocks a wizard step. The provider substitutes a
// small built-in placeholder collection, logs a non-fatal warning, and moves
// on. Successful results are cached for the provider's lifetime.
package refdata

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/helloakshay27/fm-matrix-revamp-sub008/internal/domain"
)

// Kind identifies one reference-data collection.
type Kind string

// Reference-data collection kinds.
const (
	KindAsset            Kind = "assets"
	KindAssetGroup       Kind = "asset_groups"
	KindEmailRule        Kind = "email_rules"
	KindUser             Kind = "users"
	KindSupplier         Kind = "suppliers"
	KindUserGroup        Kind = "user_groups"
	KindTemplate         Kind = "templates"
	KindHelpdeskCategory Kind = "helpdesk_categories"
	KindTaskGroup        Kind = "task_groups"

	// KindTaskSubGroup is parameterized by group id, so it is excluded from
	// Kinds() and never prefetched; it exists for its placeholder set.
	KindTaskSubGroup Kind = "task_sub_groups"
)

// Kinds lists all reference-data kinds.
func Kinds() []Kind {
	return []Kind{
		KindAsset, KindAssetGroup, KindEmailRule, KindUser, KindSupplier,
		KindUserGroup, KindTemplate, KindHelpdeskCategory, KindTaskGroup,
	}
}

// Fetcher is the backend surface the provider consumes. Implemented by
// fmapi.Client.
type Fetcher interface {
	Assets(ctx context.Context) ([]domain.CatalogItem, error)
	AssetGroups(ctx context.Context) ([]domain.CatalogItem, error)
	EmailRules(ctx context.Context) ([]domain.CatalogItem, error)
	Users(ctx context.Context) ([]domain.CatalogItem, error)
	Suppliers(ctx context.Context) ([]domain.CatalogItem, error)
	UserGroups(ctx context.Context) ([]domain.CatalogItem, error)
	Templates(ctx context.Context) ([]domain.CatalogItem, error)
	HelpdeskCategories(ctx context.Context) ([]domain.CatalogItem, error)
	TaskGroups(ctx context.Context) ([]domain.CatalogItem, error)
	TaskSubGroups(ctx context.Context, groupID string) ([]domain.CatalogItem, error)
}

// Provider serves reference-data collections with placeholder fallback.
// It is safe for concurrent use.
type Provider struct {
	api Fetcher
	log zerolog.Logger

	mu    sync.RWMutex
	cache map[Kind][]domain.CatalogItem
}

// NewProvider creates a provider backed by the given fetcher.
func NewProvider(api Fetcher, log zerolog.Logger) *Provider {
	return &Provider{
		api:   api,
		log:   log.With().Str("component", "refdata").Logger(),
		cache: make(map[Kind][]domain.CatalogItem),
	}
}

// List returns the collection for the kind. On fetch failure it returns the
// built-in placeholders and logs a warning; it never returns an error so a
// wizard step is never blocked on reference data.
func (p *Provider) List(ctx context.Context, kind Kind) []domain.CatalogItem {
	p.mu.RLock()
	cached, ok := p.cache[kind]
	p.mu.RUnlock()
	if ok {
		return cached
	}

	items, err := p.fetch(ctx, kind)
	if err != nil {
		p.log.Warn().Err(err).Str("kind", string(kind)).Msg("reference fetch failed, using placeholders")
		return Placeholders(kind)
	}

	p.mu.Lock()
	p.cache[kind] = items
	p.mu.Unlock()
	return items
}

// SubGroups returns the sub-groups of a task group, substituting the
// placeholder collection on failure. Per-group caching is the wizard
// session's concern; the provider stays stateless for parameterized lists.
func (p *Provider) SubGroups(ctx context.Context, groupID string) ([]domain.CatalogItem, error) {
	items, err := p.api.TaskSubGroups(ctx, groupID)
	if err != nil {
		p.log.Warn().Err(err).Str("group_id", groupID).Msg("sub-group fetch failed, using placeholders")
		return Placeholders(KindTaskSubGroup), nil
	}
	return items, nil
}

// Prefetch warms every collection concurrently. Individual failures are
// absorbed by the placeholder fallback, so Prefetch itself never fails.
func (p *Provider) Prefetch(ctx context.Context) {
	g, ctx := errgroup.WithContext(ctx)
	for _, kind := range Kinds() {
		g.Go(func() error {
			p.List(ctx, kind)
			return nil
		})
	}
	_ = g.Wait()
}

func (p *Provider) fetch(ctx context.Context, kind Kind) ([]domain.CatalogItem, error) {
	switch kind {
	case KindAsset:
		return p.api.Assets(ctx)
	case KindAssetGroup:
		return p.api.AssetGroups(ctx)
	case KindEmailRule:
		return p.api.EmailRules(ctx)
	case KindUser:
		return p.api.Users(ctx)
	case KindSupplier:
		return p.api.Suppliers(ctx)
	case KindUserGroup:
		return p.api.UserGroups(ctx)
	case KindTemplate:
		return p.api.Templates(ctx)
	case KindHelpdeskCategory:
		return p.api.HelpdeskCategories(ctx)
	case KindTaskGroup:
		return p.api.TaskGroups(ctx)
	default:
		return nil, nil
	}
}
