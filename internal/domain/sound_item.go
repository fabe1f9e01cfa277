package domain

type itemKind int

const (
	itemAsset itemKind = iota + 1
	itemAddEntry
)

// SoundListItem is either an asset or the "import a new sound" sentinel.
// The zero value is neither and never produced by the constructors.
//
// Consumers dispatch with Match or MatchItem, which take one handler per
// variant so a new variant cannot be added without touching every call site.
type SoundListItem struct {
	asset SoundAsset
	kind  itemKind
}

// NewAssetItem wraps an asset as a list item
func NewAssetItem(asset SoundAsset) SoundListItem {
	return SoundListItem{asset: asset, kind: itemAsset}
}

// NewAddEntryItem returns the import sentinel
func NewAddEntryItem() SoundListItem {
	return SoundListItem{kind: itemAddEntry}
}

// Match calls exactly one of the handlers depending on the variant
func (i SoundListItem) Match(onAsset func(SoundAsset), onAddEntry func()) {
	switch i.kind {
	case itemAsset:
		onAsset(i.asset)
	case itemAddEntry:
		onAddEntry()
	}
}

// MatchItem is the value-returning form of Match. The zero item yields the zero R.
func MatchItem[R any](i SoundListItem, onAsset func(SoundAsset) R, onAddEntry func() R) R {
	switch i.kind {
	case itemAsset:
		return onAsset(i.asset)
	case itemAddEntry:
		return onAddEntry()
	}
	var zero R
	return zero
}

// Asset returns the wrapped asset, false for the sentinel
func (i SoundListItem) Asset() (SoundAsset, bool) {
	if i.kind != itemAsset {
		return SoundAsset{}, false
	}
	return i.asset, true
}

// IsAddEntry reports whether the item is the import sentinel
func (i SoundListItem) IsAddEntry() bool {
	return i.kind == itemAddEntry
}

// String renders the item for logs and tests
func (i SoundListItem) String() string {
	return MatchItem(i,
		func(a SoundAsset) string { return "asset(" + a.FileName + ")" },
		func() string { return "addEntry" },
	)
}
