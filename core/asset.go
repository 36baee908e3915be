package core

// AssetKind says how an asset is instantiated.
type AssetKind int

const (
	AssetMesh AssetKind = iota
	AssetMeshLibraryItem
	AssetScene
)

func (k AssetKind) String() string {
	switch k {
	case AssetMesh:
		return "mesh"
	case AssetMeshLibraryItem:
		return "meshlib_item"
	case AssetScene:
		return "scene"
	}
	return "unknown"
}

// Asset identifies what a placement session instantiates: a mesh resource,
// one item of a mesh library, or a packed scene file.
type Asset struct {
	Kind AssetKind
	// Path is the resource path of the mesh, library or scene.
	Path string
	// ItemID selects the mesh library item.
	ItemID int
	// Name is used for the created node; it falls back to the path.
	Name string
}

func (a Asset) DisplayName() string {
	if a.Name != "" {
		return a.Name
	}
	return a.Path
}
