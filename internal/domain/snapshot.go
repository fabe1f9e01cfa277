package domain

// CatalogSection is one headed group of list items
type CatalogSection struct {
	Items []SoundListItem
	Key   string
}

// CatalogSnapshot is an immutable view of the sound catalog at one point in time
type CatalogSnapshot struct {
	Sections []CatalogSection
}

// NewCatalogSnapshot packages sorted custom and default assets under the fixed
// section keys. The import sentinel is always appended to the custom section.
func NewCatalogSnapshot(custom, defaults []SoundAsset) CatalogSnapshot {
	customItems := make([]SoundListItem, 0, len(custom)+1)
	for _, asset := range custom {
		customItems = append(customItems, NewAssetItem(asset))
	}
	customItems = append(customItems, NewAddEntryItem())

	defaultItems := make([]SoundListItem, 0, len(defaults))
	for _, asset := range defaults {
		defaultItems = append(defaultItems, NewAssetItem(asset))
	}

	return CatalogSnapshot{
		Sections: []CatalogSection{
			{Key: SectionCustomSounds, Items: customItems},
			{Key: SectionDefaultSounds, Items: defaultItems},
		},
	}
}

// Section returns the items under key, nil when the key is unknown
func (s CatalogSnapshot) Section(key string) []SoundListItem {
	for _, section := range s.Sections {
		if section.Key == key {
			return section.Items
		}
	}
	return nil
}

// CustomSounds returns the custom section including the trailing sentinel
func (s CatalogSnapshot) CustomSounds() []SoundListItem {
	return s.Section(SectionCustomSounds)
}

// DefaultSounds returns the bundled default section
func (s CatalogSnapshot) DefaultSounds() []SoundListItem {
	return s.Section(SectionDefaultSounds)
}

// Assets returns every asset in section order, skipping the sentinel
func (s CatalogSnapshot) Assets() []SoundAsset {
	var assets []SoundAsset
	for _, section := range s.Sections {
		for _, item := range section.Items {
			if asset, ok := item.Asset(); ok {
				assets = append(assets, asset)
			}
		}
	}
	return assets
}

// FindCustom looks up a custom asset by file name or display name
func (s CatalogSnapshot) FindCustom(name string) (SoundAsset, bool) {
	return findIn(s.CustomSounds(), name)
}

// Find looks up an asset by file name or display name, custom sounds first
func (s CatalogSnapshot) Find(name string) (SoundAsset, bool) {
	if asset, ok := findIn(s.CustomSounds(), name); ok {
		return asset, true
	}
	return findIn(s.DefaultSounds(), name)
}

func findIn(items []SoundListItem, name string) (SoundAsset, bool) {
	for _, item := range items {
		asset, ok := item.Asset()
		if !ok {
			continue
		}
		if asset.FileName == name || asset.Name == name {
			return asset, true
		}
	}
	return SoundAsset{}, false
}
