package refdata

import "github.com/helloakshay27/fm-matrix-revamp-sub008/internal/domain"

// placeholderSets are the small built-in collections substituted when a
// reference fetch fails. Ids use a "ph-" prefix so a submitted payload that
// accidentally carries one is recognizable server-side.
var placeholderSets = map[Kind][]domain.CatalogItem{
	KindAsset: {
		{ID: "ph-asset-1", Name: "Unlisted Asset"},
	},
	KindAssetGroup: {
		{ID: "ph-ag-1", Name: "General"},
	},
	KindEmailRule: {
		{ID: "ph-er-1", Name: "Default Escalation"},
	},
	KindUser: {
		{ID: "ph-user-1", Name: "Unassigned"},
	},
	KindSupplier: {
		{ID: "ph-sup-1", Name: "Unlisted Supplier"},
	},
	KindUserGroup: {
		{ID: "ph-ug-1", Name: "All Staff"},
	},
	KindTemplate: {
		{ID: "ph-tpl-1", Name: "Blank Checklist"},
	},
	KindHelpdeskCategory: {
		{ID: "ph-hc-1", Name: "General Maintenance"},
	},
	KindTaskGroup: {
		{ID: "ph-tg-1", Name: "General"},
	},
	KindTaskSubGroup: {
		{ID: "ph-tsg-1", Name: "General Sub-group"},
	},
}

// Placeholders returns the built-in fallback collection for the kind.
// The returned slice is a copy; callers may mutate it freely.
func Placeholders(kind Kind) []domain.CatalogItem {
	return append([]domain.CatalogItem(nil), placeholderSets[kind]...)
}
